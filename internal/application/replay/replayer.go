package replay

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/younwookim/blockfall/internal/application/session"
)

// ErrUnknownAction is returned for a recording containing an unrecognised action code
var ErrUnknownAction = errors.New("unknown action code")

type timedAction struct {
	frame  int
	action session.Action
}

// Replayer plays recorded actions back in order
type Replayer struct {
	seed    uint64
	actions []timedAction
	pos     int
}

// NewReplayer decodes the actions of data
func NewReplayer(data Recording) (*Replayer, error) {
	actions := make([]timedAction, 0, len(data.Actions))
	for i, rec := range data.Actions {
		a, ok := session.ParseAction(rec.A)
		if !ok {
			return nil, fmt.Errorf("action %d (%q): %w", i, rec.A, ErrUnknownAction)
		}
		actions = append(actions, timedAction{frame: rec.F, action: a})
	}

	return &Replayer{seed: data.Seed, actions: actions}, nil
}

// Load loads recording data from a file
func Load(filename string) (*Recording, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var data Recording
	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}

	return &data, nil
}

// Next returns the next action with its frame and advances
func (r *Replayer) Next() (int, session.Action, bool) {
	if r.pos >= len(r.actions) {
		return 0, session.ActionNone, false
	}
	ta := r.actions[r.pos]
	r.pos++
	return ta.frame, ta.action, true
}

// Position returns how many actions have been consumed
func (r *Replayer) Position() int {
	return r.pos
}

// Total returns the total number of actions
func (r *Replayer) Total() int {
	return len(r.actions)
}

// Seed returns the seed of the recorded session
func (r *Replayer) Seed() uint64 {
	return r.seed
}

// Reset rewinds to the first action
func (r *Replayer) Reset() {
	r.pos = 0
}

// Play rewinds and re-runs the whole recording on a fresh session
func (r *Replayer) Play(logger *zap.Logger) *session.Session {
	r.Reset()
	s := session.New(r.seed, logger)
	for {
		_, a, ok := r.Next()
		if !ok {
			return s
		}
		s.Apply(a)
	}
}
