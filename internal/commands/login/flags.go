package login

const (
	flagEmail      = "email"
	flagEmailShort = "e"
	flagEmailUsage = "the email of the portal member"

	flagPassword      = "password"
	flagPasswordShort = "p"
	flagPasswordUsage = "the password of the portal member"

	flagRedirect      = "redirect"
	flagRedirectUsage = "the portal page to land on once logged in, defaults to the page you were sent to log in from"
)
