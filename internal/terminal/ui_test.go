package terminal_test

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/ldxinsight/ldx-cli/internal/terminal"
	"github.com/ldxinsight/ldx-cli/internal/utils/test/assert"
)

var logTime = time.Date(2024, 3, 1, 1, 23, 45, 0, time.UTC)

func TestUIPrint(t *testing.T) {
	for _, tc := range []struct {
		description string
		log         terminal.Log
		expectedOut string
		expectedErr string
	}{
		{
			description: "Should use the default writer while printing an INFO log",
			log:         terminal.NewTextLog("test log"),
			expectedOut: "01:23:45 UTC INFO  test log\n",
		},
		{
			description: "Should use the error writer while printing an ERROR log",
			log:         terminal.NewErrorLog(errors.New("something bad happened")),
			expectedErr: "01:23:45 UTC ERROR something bad happened\n",
		},
	} {
		t.Run(tc.description, func(t *testing.T) {
			out, err := new(bytes.Buffer), new(bytes.Buffer)
			ui := terminal.NewUI(terminal.UIConfig{}, nil, out, err)

			tc.log.Time = logTime
			ui.Print(tc.log)

			assert.Equal(t, tc.expectedOut, out.String())
			assert.Equal(t, tc.expectedErr, err.String())
		})
	}

	t.Run("Should print JSON logs", func(t *testing.T) {
		out := new(bytes.Buffer)
		ui := terminal.NewUI(terminal.UIConfig{OutputFormat: terminal.OutputFormatJSON}, nil, out, out)

		log := terminal.NewTextLog("test log")
		log.Time = logTime
		ui.Print(log)

		assert.Equal(t, `{"time":"2024-03-01T01:23:45Z","level":"info","message":"test log"}`+"\n", out.String())
	})
}

func TestUIConfirm(t *testing.T) {
	t.Run("Should confirm without prompting when auto confirm is set", func(t *testing.T) {
		ui := terminal.NewUI(terminal.UIConfig{AutoConfirm: true}, nil, new(bytes.Buffer), new(bytes.Buffer))

		assert.True(t, ui.AutoConfirm(), "expected auto confirm")

		proceed, err := ui.Confirm("Delete dataset d1?", false)
		assert.Nil(t, err)
		assert.True(t, proceed, "expected confirmation")
	})
}
