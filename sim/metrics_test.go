package sim

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_RecordFailure_GroupsByKind(t *testing.T) {
	m := NewMetrics()

	m.RecordFailure(ErrNoFreeTable)
	m.RecordFailure(ErrNoFreeTable)
	m.RecordFailure(errors.New("disk on fire"))

	assert.Equal(t, 2, m.FailedCommands[ErrNoFreeTable.Error()])
	assert.Equal(t, 1, m.FailedCommands["other"])
	assert.Equal(t, 3, m.TotalFailures())
}

func TestMetrics_AverageBill(t *testing.T) {
	m := NewMetrics()
	assert.Zero(t, m.AverageBill())

	m.ReceiptsIssued, m.Revenue = 4, 1000
	assert.Equal(t, 250.0, m.AverageBill())
}

func TestSaveResults_WritesHeaderAndFile(t *testing.T) {
	// GIVEN metrics with some activity
	m := NewMetrics()
	m.GroupsAdmitted = 2
	m.Revenue = 7300
	m.RecordFailure(ErrNoClientsInQueue)
	path := filepath.Join(t.TempDir(), "metrics.json")
	var out bytes.Buffer

	// WHEN they are saved
	require.NoError(t, m.SaveResults(&out, path))

	// THEN stdout carries the header and the file carries the same JSON
	assert.Contains(t, out.String(), "=== Simulation Metrics ===")
	assert.Contains(t, out.String(), `"revenue": 7300`)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var got map[string]any
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, float64(2), got["groups_admitted"])
	assert.Equal(t, map[string]any{ErrNoClientsInQueue.Error(): float64(1)}, got["failed_commands"])
}

func TestSaveResults_NoPath_StdoutOnly(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, NewMetrics().SaveResults(&out, ""))
	assert.Contains(t, out.String(), `"commands": 0`)
}

func TestSaveResults_BadPath(t *testing.T) {
	var out bytes.Buffer
	err := NewMetrics().SaveResults(&out, filepath.Join(t.TempDir(), "missing", "m.json"))
	assert.Error(t, err)
}

func TestErrorKind(t *testing.T) {
	assert.Equal(t, "", ErrorKind(nil))
	assert.Equal(t, ErrTableNotReadyToBeCleaned.Error(), ErrorKind(NewTable(1, 2).Clean()))
}
