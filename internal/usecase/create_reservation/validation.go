package create_reservation

import (
	"fmt"
	"strings"

	"github.com/m04kA/GYM-ReservationService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.SlotID <= 0 {
		return fmt.Errorf("%w: slotID must be positive", ErrInvalidInput)
	}

	hasMember := req.MemberID != nil
	hasWalkIn := req.ClientName != nil && strings.TrimSpace(*req.ClientName) != ""

	// Резервация привязана либо к участнику, либо к walk-in клиенту
	if !hasMember && !hasWalkIn {
		return fmt.Errorf("%w: either memberID or clientName is required", ErrInvalidInput)
	}
	if hasMember && hasWalkIn {
		return fmt.Errorf("%w: memberID and clientName are mutually exclusive", ErrInvalidInput)
	}

	if hasMember && *req.MemberID <= 0 {
		return fmt.Errorf("%w: memberID must be positive", ErrInvalidInput)
	}

	if hasWalkIn && len(*req.ClientName) > domain.MaxClientNameLength {
		return fmt.Errorf("%w: clientName exceeds %d characters", ErrInvalidInput, domain.MaxClientNameLength)
	}
	if req.ClientPhone != nil && len(*req.ClientPhone) > domain.MaxClientPhoneLength {
		return fmt.Errorf("%w: clientPhone exceeds %d characters", ErrInvalidInput, domain.MaxClientPhoneLength)
	}
	if req.ClientEmail != nil && len(*req.ClientEmail) > domain.MaxClientEmailLength {
		return fmt.Errorf("%w: clientEmail exceeds %d characters", ErrInvalidInput, domain.MaxClientEmailLength)
	}

	return nil
}
