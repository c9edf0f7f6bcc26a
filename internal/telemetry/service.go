package telemetry

import (
	"io"
	"os"
	"time"

	"github.com/spf13/afero"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Service tracks telemetry events
type Service interface {
	TrackEvent(eventType EventType, data ...EventData)
	Close()
}

// Config is the telemetry service config
type Config struct {
	Mode    Mode
	UserID  string
	Command string
	Version string

	// Out receives the events tracked in stdout mode
	Out io.Writer

	// Fs and EventsPath locate the events file appended to in on mode
	Fs         afero.Fs
	EventsPath string
}

// NewService creates a new telemetry service
func NewService(config Config) Service {
	svc := service{
		userID:      config.UserID,
		command:     config.Command,
		version:     config.Version,
		executionID: primitive.NewObjectID().Hex(),
		now:         time.Now,
	}

	switch config.Mode {
	case ModeOn:
		fs := config.Fs
		if fs == nil {
			fs = afero.NewOsFs()
		}
		if config.EventsPath == "" {
			svc.tracker = noopTracker{}
			break
		}
		svc.tracker = newFileTracker(fs, config.EventsPath)
	case ModeStdout:
		out := config.Out
		if out == nil {
			out = os.Stdout
		}
		svc.tracker = stdoutTracker{out}
	default:
		svc.tracker = noopTracker{}
	}

	return &svc
}

type service struct {
	userID      string
	command     string
	version     string
	executionID string
	tracker     Tracker
	now         func() time.Time
}

func (s *service) TrackEvent(eventType EventType, data ...EventData) {
	s.tracker.Track(event{
		ID:          primitive.NewObjectID().Hex(),
		Type:        eventType,
		UserID:      s.userID,
		Time:        s.now(),
		ExecutionID: s.executionID,
		Command:     s.command,
		Version:     s.version,
		Data:        data,
	})
}

func (s *service) Close() {
	s.tracker.Close()
}
