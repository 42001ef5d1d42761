package maintenanceController

import (
	"context"
	"strings"
	"testing"

	"musea/config"
	"musea/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestController() *MaintenanceController {
	return &MaintenanceController{
		Config: config.Config{Environment: "test"},
	}
}

func TestMaintenanceControllerRequestValidation(t *testing.T) {
	controller := newTestController()
	ctx := context.Background()

	tests := []struct {
		name    string
		request *MaintenanceRequest
	}{
		{
			name:    "nil request",
			request: nil,
		},
		{
			name: "invalid startedAt format",
			request: &MaintenanceRequest{
				ArtifactID:  1,
				Description: "Check frame",
				StartedAt:   "09/01/2026",
			},
		},
		{
			name: "description too long",
			request: &MaintenanceRequest{
				ArtifactID:  1,
				Description: strings.Repeat("x", MaxDescriptionLength+1),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := controller.Create(ctx, tt.request)
			require.Error(t, err)
			assert.ErrorIs(t, err, services.ErrValidation)
		})
	}
}

func TestMaintenanceControllerToDTO(t *testing.T) {
	controller := newTestController()

	dto, err := controller.toDTO(context.Background(), &MaintenanceRequest{
		ArtifactID:  42,
		Description: "Re-oil hinges",
		StartedAt:   "2026-09-15T09:00:00Z",
	})
	require.NoError(t, err)

	assert.Equal(t, 42, dto.ArtifactID)
	assert.Equal(t, "Re-oil hinges", dto.Description)
	assert.Equal(t, 2026, dto.StartedAt.Year())
	assert.Nil(t, dto.StaffID)
}

func TestMaintenanceControllerCancelRequiresReason(t *testing.T) {
	controller := newTestController()

	_, err := controller.Cancel(context.Background(), 1, &CancelRequest{Reason: ""})
	require.Error(t, err)
	assert.ErrorIs(t, err, services.ErrValidation)

	_, err = controller.Cancel(context.Background(), 1, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, services.ErrValidation)
}

func TestMaintenanceControllerRecordActionRequiresNote(t *testing.T) {
	controller := newTestController()

	_, err := controller.RecordAction(context.Background(), 1, &NoteRequest{Note: ""})
	require.Error(t, err)
	assert.ErrorIs(t, err, services.ErrValidation)

	_, err = controller.RecordAction(context.Background(), 1, &NoteRequest{
		Note: strings.Repeat("x", MaxNotesLength+1),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, services.ErrValidation)
}

func TestMaintenanceControllerListBetweenRejectsBadWindow(t *testing.T) {
	controller := newTestController()

	_, err := controller.ListBetween(context.Background(), "not-a-date", "2026-09-30T00:00:00Z")
	require.Error(t, err)
	assert.ErrorIs(t, err, services.ErrValidation)

	_, err = controller.ListBetween(context.Background(), "2026-09-01T00:00:00Z", "bogus")
	require.Error(t, err)
	assert.ErrorIs(t, err, services.ErrValidation)
}
