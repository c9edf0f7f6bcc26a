package cli

import (
	"errors"
	"fmt"

	"github.com/ldxinsight/ldx-cli/internal/cloud/hub"
)

// DisableUsage disables the usage printing when an error occurs
type DisableUsage interface {
	DisableUsage() struct{}
}

type errDisableUsage struct {
	error
}

func (err errDisableUsage) DisableUsage() struct{} { return struct{}{} }

func (err errDisableUsage) Unwrap() error { return err.error }

// CommandSuggester handles any suggestions to run if the current command isn't working
type CommandSuggester interface {
	SuggestedCommands() []string
}

// LinkReferrer gives a list of links that relate to this command to give the user more context
type LinkReferrer interface {
	ReferenceLinks() []string
}

// errSessionExpired is returned once the session could not be refreshed
type errSessionExpired struct {
	error
	redirect string
}

func (err errSessionExpired) Unwrap() error { return err.error }

func (err errSessionExpired) SuggestedCommands() []string {
	return []string{loginCommand(err.redirect)}
}

func suggestLogin(err error, redirect string) error {
	if !errors.Is(err, hub.ErrTokenRefresh) {
		return err
	}
	return errSessionExpired{err, redirect}
}

func loginCommand(redirect string) string {
	if redirect == "" {
		return fmt.Sprintf("%s login", Name)
	}
	return fmt.Sprintf("%s login --redirect %s", Name, redirect)
}
