package create_reservation

import (
	"time"

	"github.com/m04kA/GYM-ReservationService/internal/domain"
	createReservation "github.com/m04kA/GYM-ReservationService/internal/usecase/create_reservation"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	SlotID      int64   `json:"slotId"`
	MemberID    *int64  `json:"memberId,omitempty"`
	ClientName  *string `json:"clientName,omitempty"`
	ClientPhone *string `json:"clientPhone,omitempty"`
	ClientEmail *string `json:"clientEmail,omitempty"`
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID          int64   `json:"id"`
	SlotID      int64   `json:"slotId"`
	MemberID    *int64  `json:"memberId,omitempty"`
	ClientName  *string `json:"clientName,omitempty"`
	ClientPhone *string `json:"clientPhone,omitempty"`
	ClientEmail *string `json:"clientEmail,omitempty"`
	SlotDate    string  `json:"slotDate"`
	StartTime   string  `json:"startTime"`
	Attendance  string  `json:"attendance"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateReservationRequest) ToUseCaseRequest() *createReservation.Request {
	return &createReservation.Request{
		SlotID:      r.SlotID,
		MemberID:    r.MemberID,
		ClientName:  r.ClientName,
		ClientPhone: r.ClientPhone,
		ClientEmail: r.ClientEmail,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createReservation.Response) *ReservationResponse {
	return &ReservationResponse{
		ID:          resp.ID,
		SlotID:      resp.SlotID,
		MemberID:    resp.MemberID,
		ClientName:  resp.ClientName,
		ClientPhone: resp.ClientPhone,
		ClientEmail: resp.ClientEmail,
		SlotDate:    resp.SlotDate.Format(domain.DateFormat),
		StartTime:   resp.StartTime.String(),
		Attendance:  resp.Attendance,
		CreatedAt:   resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   resp.UpdatedAt.Format(time.RFC3339),
	}
}
