package validation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/nordport/terminal-orders/internal/domain"
)

func datePtr(y int, m time.Month, d int) *domain.Date {
	dt := domain.NewDate(y, m, d)
	return &dt
}

func TestValidateServiceDates(t *testing.T) {
	eta := datePtr(2024, time.June, 12)
	etd := datePtr(2024, time.June, 14)

	testCases := []struct {
		name    string
		eta     *domain.Date
		etd     *domain.Date
		service domain.ServiceType

		wantValid   bool
		wantMessage string
	}{
		{
			name:      "unset service is unconstrained",
			service:   domain.ServiceUnset,
			wantValid: true,
		},
		{
			name:        "into storage with neither date",
			service:     domain.ServiceIntoPlukkStorage,
			wantValid:   false,
			wantMessage: "Into Plukk Storage requires either ETA date OR ETD date",
		},
		{
			name:        "into storage with both dates",
			eta:         eta,
			etd:         etd,
			service:     domain.ServiceIntoPlukkStorage,
			wantValid:   false,
			wantMessage: "Into Plukk Storage can only have ONE section: ETA or ETD",
		},
		{
			name:      "into storage with only ETA",
			eta:       eta,
			service:   domain.ServiceIntoPlukkStorage,
			wantValid: true,
		},
		{
			name:      "into storage with only ETD",
			etd:       etd,
			service:   domain.ServiceIntoPlukkStorage,
			wantValid: true,
		},
		{
			name:      "reload car-car with both dates",
			eta:       eta,
			etd:       etd,
			service:   domain.ServiceReloadCarCar,
			wantValid: true,
		},
		{
			name:        "reload car-car missing ETD",
			eta:         eta,
			service:     domain.ServiceReloadCarCar,
			wantValid:   false,
			wantMessage: "Reload Car-Car requires both ETA date and ETD date",
		},
		{
			name:        "reload car-terminal-car missing ETA",
			etd:         etd,
			service:     domain.ServiceReloadCarTermCar,
			wantValid:   false,
			wantMessage: "Reload Car-Terminal-Car requires both ETA date and ETD date",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			res := ValidateServiceDates(tc.eta, tc.etd, tc.service)
			require.Equal(t, tc.wantValid, res.Valid)
			if tc.wantMessage != "" {
				require.Equal(t, tc.wantMessage, res.Message)
			} else {
				require.Empty(t, res.Message)
			}
		})
	}
}

func TestValidateServiceDatesZeroDatePointer(t *testing.T) {
	// A pointer to a zero Date counts as absent, same as nil.
	var zero domain.Date
	res := ValidateServiceDates(&zero, nil, domain.ServiceIntoPlukkStorage)
	require.False(t, res.Valid)
	require.Contains(t, res.Message, "requires either")
}
