package replay

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/blockfall/internal/application/session"
)

func TestNewRecorder(t *testing.T) {
	r := NewRecorder(123)
	data := r.Data()

	assert.Equal(t, FormatVersion, data.Version)
	assert.Equal(t, uint64(123), data.Seed)
	assert.NotEmpty(t, data.StartTime)
	assert.True(t, r.IsRecording())
	assert.Equal(t, 0, r.Count())

	_, err := uuid.Parse(data.ID)
	assert.NoError(t, err, "recording id must be a uuid")
	assert.NotEqual(t, data.ID, NewRecorder(123).Data().ID)
}

func TestRecorder_Record(t *testing.T) {
	r := NewRecorder(1)

	r.Record(0, session.ActionMoveLeft)
	r.Record(3, session.ActionNone)
	r.Record(4, session.ActionPause)

	require.Equal(t, 2, r.Count(), "ActionNone is not recorded")
	assert.Equal(t, []ActionRecord{{F: 0, A: "l"}, {F: 4, A: "p"}}, r.Data().Actions)
}

func TestRecorder_Stop(t *testing.T) {
	r := NewRecorder(1)
	r.Record(0, session.ActionTick)
	r.Stop()
	r.Record(1, session.ActionTick)

	assert.False(t, r.IsRecording())
	assert.Equal(t, 1, r.Count())
}

func TestRecorder_SaveEmpty(t *testing.T) {
	r := NewRecorder(1)
	err := r.Save(filepath.Join(t.TempDir(), "empty.json"))
	assert.ErrorIs(t, err, ErrNoActions)
}

func TestRecorder_SaveBadPath(t *testing.T) {
	r := NewRecorder(1)
	r.Record(0, session.ActionTick)

	err := r.Save(filepath.Join(t.TempDir(), "missing", "dir", "replay.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create file")
}

func TestGenerateFilename(t *testing.T) {
	name := GenerateFilename("records")

	assert.Equal(t, "records", filepath.Dir(name))
	base := filepath.Base(name)
	assert.True(t, strings.HasPrefix(base, "replay_"))
	assert.True(t, strings.HasSuffix(base, ".json"))
}
