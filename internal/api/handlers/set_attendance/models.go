package set_attendance

import (
	"time"

	setAttendance "github.com/m04kA/GYM-ReservationService/internal/usecase/set_attendance"
)

// SetAttendanceRequest HTTP request model
type SetAttendanceRequest struct {
	Attended *bool `json:"attended"`
}

// AttendanceResponse HTTP response model
type AttendanceResponse struct {
	ID         int64   `json:"id"`
	SlotID     int64   `json:"slotId"`
	MemberID   *int64  `json:"memberId,omitempty"`
	ClientName *string `json:"clientName,omitempty"`
	Attendance string  `json:"attendance"`
	UpdatedAt  string  `json:"updatedAt"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *setAttendance.Response) *AttendanceResponse {
	return &AttendanceResponse{
		ID:         resp.ID,
		SlotID:     resp.SlotID,
		MemberID:   resp.MemberID,
		ClientName: resp.ClientName,
		Attendance: resp.Attendance,
		UpdatedAt:  resp.UpdatedAt.Format(time.RFC3339),
	}
}
