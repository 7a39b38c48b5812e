package validation

import (
	"fmt"

	"github.com/nordport/terminal-orders/internal/domain"
)

// Result is a business-rule outcome. Rule violations are values, not
// errors: callers must check Valid.
type Result struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message,omitempty"`
}

func ok() Result { return Result{Valid: true} }

func invalid(format string, args ...any) Result {
	return Result{Message: fmt.Sprintf(format, args...)}
}

// ValidateServiceDates checks which of the ETA/ETD dates the chosen service
// requires. Into Plukk Storage is a single-leg movement and takes exactly
// one of the two; every other known service is two-leg and takes both. An
// unset service is unconstrained.
func ValidateServiceDates(eta, etd *domain.Date, service domain.ServiceType) Result {
	hasEta := eta != nil && !eta.IsZero()
	hasEtd := etd != nil && !etd.IsZero()

	switch {
	case service == domain.ServiceUnset:
		return ok()
	case service == domain.ServiceIntoPlukkStorage:
		if hasEta && hasEtd {
			return invalid("%s can only have ONE section: ETA or ETD", service)
		}
		if !hasEta && !hasEtd {
			return invalid("%s requires either ETA date OR ETD date", service)
		}
		return ok()
	default:
		if !hasEta || !hasEtd {
			return invalid("%s requires both ETA date and ETD date", service)
		}
		return ok()
	}
}
