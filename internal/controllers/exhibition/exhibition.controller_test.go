package exhibitionController

import (
	"context"
	"testing"
	"time"

	"musea/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestExhibitionControllerValidate(t *testing.T) {
	controller := &ExhibitionController{}
	ctx := context.Background()

	tests := []struct {
		name    string
		request *ExhibitionRequest
		wantErr bool
	}{
		{
			name:    "nil request",
			request: nil,
			wantErr: true,
		},
		{
			name: "missing name",
			request: &ExhibitionRequest{
				StartDate: "2026-10-01",
				EndDate:   "2026-12-01",
			},
			wantErr: true,
		},
		{
			name: "invalid start date",
			request: &ExhibitionRequest{
				Name:      "Spice Routes",
				StartDate: "October 1st",
				EndDate:   "2026-12-01",
			},
			wantErr: true,
		},
		{
			name: "end before start",
			request: &ExhibitionRequest{
				Name:      "Spice Routes",
				StartDate: "2026-12-01",
				EndDate:   "2026-10-01",
			},
			wantErr: true,
		},
		{
			name: "valid range",
			request: &ExhibitionRequest{
				Name:      "Spice Routes",
				Theme:     "Trade",
				StartDate: "2026-10-01",
				EndDate:   "2026-12-01",
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exhibition, err := controller.validate(ctx, tt.request)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, services.ErrValidation)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "Spice Routes", exhibition.Name)

			start := time.Time(exhibition.StartDate)
			end := time.Time(exhibition.EndDate)
			assert.True(t, start.Before(end))
			assert.Equal(t, datatypes.Date(start), exhibition.StartDate)
		})
	}
}

func TestExhibitionControllerSingleDayRunAllowed(t *testing.T) {
	controller := &ExhibitionController{}

	exhibition, err := controller.validate(context.Background(), &ExhibitionRequest{
		Name:      "One Night Gala",
		StartDate: "2026-11-05",
		EndDate:   "2026-11-05",
	})
	require.NoError(t, err)
	assert.Equal(t, exhibition.StartDate, exhibition.EndDate)
}
