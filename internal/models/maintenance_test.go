package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newScheduledRecord() *MaintenanceRecord {
	return &MaintenanceRecord{
		ArtifactID:  42,
		Kind:        MaintenanceKindRoutine,
		Description: "Dust cabinets",
		StartedAt:   time.Now().Add(-time.Hour),
		Status:      MaintenanceStatusScheduled,
	}
}

func TestMaintenanceRecord_Start(t *testing.T) {
	t.Run("scheduled record moves to in progress", func(t *testing.T) {
		record := newScheduledRecord()

		require.NoError(t, record.Start())
		assert.Equal(t, MaintenanceStatusInProgress, record.Status)
		assert.Nil(t, record.CompletedAt)
	})

	t.Run("second start is rejected", func(t *testing.T) {
		record := newScheduledRecord()
		require.NoError(t, record.Start())

		err := record.Start()
		assert.ErrorIs(t, err, ErrInvalidTransition)
		assert.Equal(t, MaintenanceStatusInProgress, record.Status)
	})

	t.Run("start on done record is rejected", func(t *testing.T) {
		record := newScheduledRecord()
		require.NoError(t, record.Complete("done"))

		assert.ErrorIs(t, record.Start(), ErrInvalidTransition)
	})
}

func TestMaintenanceRecord_Complete(t *testing.T) {
	t.Run("sets status, notes, and completion time", func(t *testing.T) {
		record := newScheduledRecord()
		require.NoError(t, record.Start())

		require.NoError(t, record.Complete("Done, all clean"))

		assert.Equal(t, MaintenanceStatusDone, record.Status)
		require.NotNil(t, record.Notes)
		assert.Equal(t, "Done, all clean", *record.Notes)
		require.NotNil(t, record.CompletedAt)
		assert.False(t, record.CompletedAt.Before(record.StartedAt))
	})

	t.Run("overwrites existing notes", func(t *testing.T) {
		record := newScheduledRecord()
		record.AppendNote("prior note")

		require.NoError(t, record.Complete("final summary"))
		assert.Equal(t, "final summary", *record.Notes)
	})

	t.Run("complete on done record is rejected", func(t *testing.T) {
		record := newScheduledRecord()
		require.NoError(t, record.Complete("first"))

		err := record.Complete("second")
		assert.ErrorIs(t, err, ErrInvalidTransition)
		assert.Equal(t, "first", *record.Notes)
	})
}

func TestMaintenanceRecord_Cancel(t *testing.T) {
	t.Run("cancel from scheduled", func(t *testing.T) {
		record := newScheduledRecord()

		require.NoError(t, record.Cancel("artifact on loan"))

		assert.Equal(t, MaintenanceStatusDone, record.Status)
		require.NotNil(t, record.Notes)
		assert.Equal(t, "CANCELLED: artifact on loan", *record.Notes)
		assert.NotNil(t, record.CompletedAt)
	})

	t.Run("cancel from in progress", func(t *testing.T) {
		record := newScheduledRecord()
		require.NoError(t, record.Start())

		require.NoError(t, record.Cancel("staff unavailable"))
		assert.True(t, record.IsTerminal())
	})

	t.Run("cancel on done record is rejected", func(t *testing.T) {
		record := newScheduledRecord()
		require.NoError(t, record.Complete("done"))

		assert.ErrorIs(t, record.Cancel("too late"), ErrInvalidTransition)
	})
}

func TestMaintenanceRecord_AppendNote(t *testing.T) {
	t.Run("appends to existing notes with newline", func(t *testing.T) {
		record := newScheduledRecord()
		existing := "A"
		record.Notes = &existing

		record.AppendNote("B")

		require.NotNil(t, record.Notes)
		assert.Equal(t, "A\nB", *record.Notes)
	})

	t.Run("sets note when notes empty", func(t *testing.T) {
		record := newScheduledRecord()

		record.AppendNote("B")

		require.NotNil(t, record.Notes)
		assert.Equal(t, "B", *record.Notes)
	})

	t.Run("allowed on terminal record", func(t *testing.T) {
		record := newScheduledRecord()
		require.NoError(t, record.Complete("done"))

		record.AppendNote("post-completion audit")
		assert.Equal(t, "done\npost-completion audit", *record.Notes)
	})
}

func TestMaintenanceRecord_BeforeCreateDefaults(t *testing.T) {
	record := &MaintenanceRecord{
		ArtifactID:  7,
		Description: "Check humidity",
	}

	require.NoError(t, record.BeforeCreate(nil))

	assert.Equal(t, MaintenanceStatusScheduled, record.Status)
	assert.WithinDuration(t, time.Now(), record.StartedAt, time.Second)
	assert.Nil(t, record.CompletedAt)
	assert.Nil(t, record.StaffID)
}

func TestMaintenanceRecord_BeforeCreateValidation(t *testing.T) {
	tests := []struct {
		name      string
		record    *MaintenanceRecord
		expectErr bool
	}{
		{
			name:      "missing artifact",
			record:    &MaintenanceRecord{Description: "Dust cabinets"},
			expectErr: true,
		},
		{
			name:      "missing description",
			record:    &MaintenanceRecord{ArtifactID: 42},
			expectErr: true,
		},
		{
			name:      "valid without staff",
			record:    &MaintenanceRecord{ArtifactID: 42, Description: "Dust cabinets"},
			expectErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.record.BeforeCreate(nil)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestArtifact_DisplayName(t *testing.T) {
	artifact := &Artifact{Code: "ARK-001", Name: "Bronze Kris"}
	assert.Equal(t, "Bronze Kris (ARK-001)", artifact.DisplayName())

	unnamed := &Artifact{Name: "Bronze Kris"}
	assert.Equal(t, "Bronze Kris", unnamed.DisplayName())
}
