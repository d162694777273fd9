package runlog

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestLog(t *testing.T) *Log {
	t.Helper()
	log, err := Open(filepath.Join(t.TempDir(), "runlog.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = log.Close() })
	return log
}

func TestRecordAndReadBack(t *testing.T) {
	log := openTestLog(t)

	log.RecordStage("run-1", "opener", 0, "structured=true")
	log.RecordStage("run-1", "writer", 1, "chars=1200")
	log.RecordStage("run-2", "opener", 0, "structured=false")

	events, err := log.Events("run-1")
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "opener", events[0].Stage)
	assert.Equal(t, 0, events[0].Iteration)
	assert.Equal(t, "writer", events[1].Stage)
	assert.Equal(t, 1, events[1].Iteration)
	assert.Equal(t, "chars=1200", events[1].Note)
	assert.NotEmpty(t, events[0].RecordedAt)
}

func TestEvents_UnknownRunIsEmpty(t *testing.T) {
	log := openTestLog(t)
	events, err := log.Events("missing")
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestNilLogIsNoOp(t *testing.T) {
	var log *Log
	log.RecordStage("run", "stage", 0, "")
	events, err := log.Events("run")
	require.NoError(t, err)
	assert.Nil(t, events)
	assert.NoError(t, log.Close())
}

func TestFromEnv(t *testing.T) {
	t.Setenv(PathEnv, "")
	log, err := FromEnv()
	require.NoError(t, err)
	assert.Nil(t, log)

	path := filepath.Join(t.TempDir(), "runlog.db")
	t.Setenv(PathEnv, path)
	log, err = FromEnv()
	require.NoError(t, err)
	require.NotNil(t, log)
	defer func() { _ = log.Close() }()

	log.RecordStage("run-env", "opener", 0, "")
	events, err := log.Events("run-env")
	require.NoError(t, err)
	assert.Len(t, events, 1)
}
