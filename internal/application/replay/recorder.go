package replay

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/younwookim/blockfall/internal/application/session"
)

// ErrNoActions is returned when saving a recording that holds nothing
var ErrNoActions = errors.New("no actions to save")

// Recorder captures session actions for replay
type Recorder struct {
	data      Recording
	recording bool
}

// NewRecorder creates a recorder for a session started with seed
func NewRecorder(seed uint64) *Recorder {
	return &Recorder{
		data: Recording{
			Version:   FormatVersion,
			ID:        uuid.New().String(),
			Seed:      seed,
			StartTime: time.Now().Format(time.RFC3339),
			Actions:   make([]ActionRecord, 0, 1024),
		},
		recording: true,
	}
}

// Record appends an action applied on frame
func (r *Recorder) Record(frame int, a session.Action) {
	if !r.recording || a == session.ActionNone {
		return
	}
	r.data.Actions = append(r.data.Actions, ActionRecord{F: frame, A: a.Code()})
}

// Save writes the recording to path as indented JSON
func (r *Recorder) Save(path string) error {
	if len(r.data.Actions) == 0 {
		return ErrNoActions
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() { _ = file.Close() }()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(r.data); err != nil {
		return fmt.Errorf("failed to encode replay: %w", err)
	}

	return nil
}

// Stop stops recording
func (r *Recorder) Stop() {
	r.recording = false
}

// IsRecording returns whether recording is active
func (r *Recorder) IsRecording() bool {
	return r.recording
}

// Count returns the number of recorded actions
func (r *Recorder) Count() int {
	return len(r.data.Actions)
}

// Data returns the recording collected so far
func (r *Recorder) Data() Recording {
	return r.data
}

// GenerateFilename returns a timestamped replay path inside dir
func GenerateFilename(dir string) string {
	return filepath.Join(dir, fmt.Sprintf("replay_%s.json", time.Now().Format("20060102_150405")))
}
