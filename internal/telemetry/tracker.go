package telemetry

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/spf13/afero"
)

// Tracker records events
type Tracker interface {
	Track(event event)
	Close()
}

type noopTracker struct{}

func (tracker noopTracker) Track(event event) {}

func (tracker noopTracker) Close() {}

type stdoutTracker struct {
	out io.Writer
}

func (tracker stdoutTracker) Track(event event) {
	fmt.Fprintf(tracker.out, "%s UTC TELEMETRY %s (%s) %s\n",
		event.Time.UTC().Format("15:04:05"),
		event.Type,
		event.ID,
		event.Command,
	)
}

func (tracker stdoutTracker) Close() {}

// fileTracker appends events as JSON lines
type fileTracker struct {
	mu   sync.Mutex
	fs   afero.Fs
	path string
	file afero.File
}

func newFileTracker(fs afero.Fs, path string) *fileTracker {
	return &fileTracker{fs: fs, path: path}
}

func (tracker *fileTracker) Track(event event) {
	tracker.mu.Lock()
	defer tracker.mu.Unlock()

	if tracker.file == nil {
		if err := tracker.fs.MkdirAll(filepath.Dir(tracker.path), 0700); err != nil {
			return
		}
		file, err := tracker.fs.OpenFile(tracker.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
		if err != nil {
			return
		}
		tracker.file = file
	}

	data := make([]EventData, 0, len(event.Data))
	for _, d := range event.Data {
		data = append(data, EventData{d.Key, d.value()})
	}
	event.Data = data

	line, err := json.Marshal(event)
	if err != nil {
		return
	}
	tracker.file.Write(append(line, '\n'))
}

func (tracker *fileTracker) Close() {
	tracker.mu.Lock()
	defer tracker.mu.Unlock()

	if tracker.file != nil {
		tracker.file.Close()
		tracker.file = nil
	}
}
