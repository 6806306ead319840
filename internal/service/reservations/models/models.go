package models

import (
	"time"

	"github.com/m04kA/GYM-ReservationService/internal/domain"
)

// ReservationResponse модель резервации для отдачи наружу
type ReservationResponse struct {
	ID          int64
	SlotID      int64
	MemberID    *int64
	ClientName  *string
	ClientPhone *string
	ClientEmail *string
	Attendance  string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// FromDomainReservation конвертирует доменную модель в response
func FromDomainReservation(res *domain.Reservation) *ReservationResponse {
	return &ReservationResponse{
		ID:          res.ID,
		SlotID:      res.SlotID,
		MemberID:    res.MemberID,
		ClientName:  res.ClientName,
		ClientPhone: res.ClientPhone,
		ClientEmail: res.ClientEmail,
		Attendance:  string(res.AttendanceState()),
		CreatedAt:   res.CreatedAt,
		UpdatedAt:   res.UpdatedAt,
	}
}
