package terminal

import (
	"errors"
	"fmt"
	"strings"
)

// set of followup messages
const (
	MsgReferenceLinks    = "Refer to the following link"
	MsgSuggestedCommands = "Try the following command"
)

const (
	logFieldFollowups = "followups"
)

var (
	followupFields = []string{logFieldMessage, logFieldFollowups}

	errEmptyFollowup = errors.New("empty followup message")
)

type followupMessage struct {
	message   string
	followups []string
}

func (fm followupMessage) validate() error {
	if fm.message == "" || len(fm.followups) == 0 {
		return errEmptyFollowup
	}
	return nil
}

func (fm followupMessage) Message() (string, error) {
	if err := fm.validate(); err != nil {
		return "", err
	}

	if len(fm.followups) == 1 {
		return fmt.Sprintf("%s %s", fm.message, fm.followups[0]), nil
	}

	lines := make([]string, 0, len(fm.followups)+1)
	lines = append(lines, fm.message+"s")
	for _, followup := range fm.followups {
		lines = append(lines, Indent+followup)
	}
	return strings.Join(lines, "\n"), nil
}

func (fm followupMessage) Payload() ([]string, map[string]interface{}, error) {
	if err := fm.validate(); err != nil {
		return nil, nil, err
	}
	return followupFields, map[string]interface{}{
		logFieldMessage:   fm.message,
		logFieldFollowups: fm.followups,
	}, nil
}
