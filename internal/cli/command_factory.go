package cli

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/ldxinsight/ldx-cli/internal/auth"
	"github.com/ldxinsight/ldx-cli/internal/cloud/hub"
	"github.com/ldxinsight/ldx-cli/internal/cookie"
	"github.com/ldxinsight/ldx-cli/internal/telemetry"
	"github.com/ldxinsight/ldx-cli/internal/terminal"
	"github.com/ldxinsight/ldx-cli/internal/utils/flags"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// set of global CLI flags
const (
	flagProfile      = "profile"
	flagProfileUsage = "this is the CLI profile to use for your command"

	flagAPIBaseURL      = "api-url"
	flagAPIBaseURLUsage = "specify the base url of the Open Linked Hub API"
)

// CommandFactory is a command factory
type CommandFactory struct {
	profile          *Profile
	ui               terminal.UI
	uiConfig         terminal.UIConfig
	inReader         io.Reader
	outWriter        io.Writer
	errWriter        io.Writer
	outFile          *os.File
	errLogger        *log.Logger
	telemetryService telemetry.Service
	newTelemetry     func(config telemetry.Config) telemetry.Service
}

// NewCommandFactory creates a new command factory
func NewCommandFactory() *CommandFactory {
	errLogger := log.New(os.Stderr, "UTC ERROR ", log.Ltime|log.Lmsgprefix)

	profile, profileErr := NewDefaultProfile()
	if profileErr != nil {
		errLogger.Fatal(profileErr)
	}

	return &CommandFactory{
		profile:      profile,
		errLogger:    errLogger,
		newTelemetry: telemetry.NewService,
	}
}

// Build builds a Cobra command from the specified CommandDefinition
func (factory *CommandFactory) Build(command CommandDefinition) *cobra.Command {
	display := command.Display
	if display == "" {
		display = command.Use
	}

	cmd := cobra.Command{
		Use:     command.Use,
		Short:   command.Description,
		Long:    command.Help,
		Aliases: command.Aliases,
	}

	cmd.InheritedFlags().SortFlags = false // ensures command usage text displays global flags unsorted

	for _, subCommand := range command.SubCommands {
		cmd.AddCommand(factory.Build(subCommand))
	}

	if command.Command == nil {
		return &cmd
	}

	if command, ok := command.Command.(CommandFlagger); ok {
		fs := cmd.Flags()
		fs.SortFlags = false // ensures command flags are added unsorted
		command.Flags(fs)
	}

	cmd.PersistentPreRun = func(c *cobra.Command, a []string) {
		factory.ensureUI()
		c.SetIn(factory.inReader)
		c.SetOut(factory.outWriter)
		c.SetErr(factory.errWriter)

		if err := factory.profile.ResolveFlags(); err != nil {
			factory.ui.Print(terminal.NewErrorLog(err))
			os.Exit(1)
		}
	}

	if command, ok := command.Command.(CommandInputs); ok {
		cmd.PreRunE = func(c *cobra.Command, a []string) error {
			if err := command.Inputs().Resolve(factory.profile, factory.ui); err != nil {
				return fmt.Errorf("%s setup failed: %w", display, err)
			}
			return nil
		}
	}

	cmd.RunE = func(c *cobra.Command, a []string) error {
		return factory.run(command, display)
	}

	return &cmd
}

func (factory *CommandFactory) run(command CommandDefinition, display string) error {
	clients, nav, err := factory.newClients(command.Route)
	if err != nil {
		return fmt.Errorf("%s failed: %w", display, errDisableUsage{err})
	}

	factory.telemetryService = factory.newTelemetry(telemetry.Config{
		Mode:       factory.profile.TelemetryMode(),
		UserID:     sessionSubject(clients.Session.Session()),
		Command:    display,
		Version:    Version,
		Out:        factory.outWriter,
		Fs:         factory.profile.Fs(),
		EventsPath: factory.profile.EventsPath(),
	})
	factory.telemetryService.TrackEvent(telemetry.EventTypeCommandStart)

	handlerErr := command.Command.Handler(factory.profile, factory.ui, clients)

	if nav.Navigated() {
		if err := factory.profile.Save(); err != nil {
			factory.errLogger.Print(err)
		}
	}

	if handlerErr != nil {
		factory.telemetryService.TrackEvent(
			telemetry.EventTypeCommandError,
			telemetry.EventData{Key: telemetry.EventDataKeyError, Value: handlerErr},
			telemetry.EventData{Key: telemetry.EventDataKeyRoute, Value: nav.Current().String()},
		)
		return fmt.Errorf("%s failed: %w", display, errDisableUsage{suggestLogin(handlerErr, command.Route)})
	}

	factory.telemetryService.TrackEvent(
		telemetry.EventTypeCommandComplete,
		telemetry.EventData{Key: telemetry.EventDataKeyRoute, Value: nav.Current().String()},
	)
	return nil
}

// newClients wires the session cookie jar, the session store navigating
// from the provided page and the hub client authenticating with it
func (factory *CommandFactory) newClients(route string) (Clients, *navigator, error) {
	jar, err := cookie.New(cookie.NewFileStrategy(factory.profile.Fs(), factory.profile.CookiesPath()))
	if err != nil {
		return Clients{}, nil, err
	}

	nav := newNavigator(factory.profile, factory.ui, route)

	session := auth.NewStore(jar, nav, auth.Config{
		CookieKeys: factory.profile.CookieKeys(),
		Pages:      factory.profile.Pages(),
	})

	deps := hub.NewDependencies()

	client := hub.NewAuthClient(hub.Config{
		BaseURL: factory.profile.APIBaseURL(),
		Timeout: factory.profile.RequestTimeout(),
		Logger:  factory.errLogger,
	}, session, deps)

	return Clients{Hub: client, Session: session, Deps: deps}, nav, nil
}

func sessionSubject(session auth.Session) string {
	claims, err := session.AccessTokenClaims()
	if err != nil {
		return ""
	}
	return claims.Subject
}

// Close closes the command factory
func (factory *CommandFactory) Close() {
	if factory.telemetryService != nil {
		factory.telemetryService.Close()
	}

	if factory.outFile != nil {
		factory.outFile.Close()
	}
}

// Run executes the command
func (factory *CommandFactory) Run(cmd *cobra.Command) {
	if err := cmd.Execute(); err != nil {
		handleUsage(cmd, err)

		if factory.ui == nil {
			factory.errLogger.Fatal(err)
		}

		factory.ui.Print(errorLogs(err)...)
		factory.Close()
		os.Exit(1)
	}
}

func errorLogs(err error) []terminal.Log {
	logs := []terminal.Log{terminal.NewErrorLog(err)}

	var suggester CommandSuggester
	if errors.As(err, &suggester) {
		logs = append(logs, terminal.NewFollowupLog(terminal.MsgSuggestedCommands, suggester.SuggestedCommands()...))
	}

	var referrer LinkReferrer
	if errors.As(err, &referrer) {
		logs = append(logs, terminal.NewFollowupLog(terminal.MsgReferenceLinks, referrer.ReferenceLinks()...))
	}

	return logs
}

// SetGlobalFlags sets the global flags
func (factory *CommandFactory) SetGlobalFlags(fs *pflag.FlagSet) {
	fs.SortFlags = false // ensures global flags are added unsorted

	// profile flags
	fs.StringVar(&factory.profile.Name, flagProfile, DefaultProfile, flagProfileUsage)
	fs.Var(&factory.profile.telemetryMode, telemetry.FlagMode, telemetry.FlagModeUsage)

	// ui flags
	fs.StringVarP(&factory.uiConfig.OutputTarget, terminal.FlagOutputTarget, terminal.FlagOutputTargetShort, "", terminal.FlagOutputTargetUsage)
	fs.VarP(&factory.uiConfig.OutputFormat, terminal.FlagOutputFormat, terminal.FlagOutputFormatShort, terminal.FlagOutputFormatUsage)
	fs.BoolVar(&factory.uiConfig.DisableColors, terminal.FlagDisableColors, false, terminal.FlagDisableColorsUsage)
	fs.BoolVarP(&factory.uiConfig.AutoConfirm, terminal.FlagAutoConfirm, terminal.FlagAutoConfirmShort, false, terminal.FlagAutoConfirmUsage)

	// hidden flags
	fs.StringVar(&factory.profile.apiBaseURL, flagAPIBaseURL, "", flagAPIBaseURLUsage)
	flags.MarkHidden(fs, flagAPIBaseURL)
}

// Setup initializes the command factory
func (factory *CommandFactory) Setup() {
	if err := factory.profile.Load(); err != nil {
		factory.errLogger.Fatal(err)
	}

	if filepath := factory.uiConfig.OutputTarget; filepath != "" {
		f, err := os.OpenFile(filepath, os.O_CREATE|os.O_RDWR|os.O_APPEND, 0660)
		if err != nil {
			factory.errLogger.Fatal(fmt.Errorf("failed to open target file: %w", err))
		}
		factory.outFile = f
		factory.outWriter = f
	}
}

func (factory *CommandFactory) ensureUI() {
	if factory.inReader == nil {
		factory.inReader = os.Stdin
	}

	if factory.outWriter == nil {
		factory.outWriter = os.Stdout
	}

	if factory.errWriter == nil {
		if factory.uiConfig.OutputTarget != "" {
			factory.errWriter = factory.outWriter
		} else {
			factory.errWriter = os.Stderr
		}
	}

	if factory.ui == nil {
		factory.ui = terminal.NewUI(factory.uiConfig, factory.inReader, factory.outWriter, factory.errWriter)
	}
}

func handleUsage(cmd *cobra.Command, err error) {
	if _, ok := errors.Unwrap(err).(DisableUsage); ok {
		return
	}
	fmt.Println(cmd.UsageString())
}
