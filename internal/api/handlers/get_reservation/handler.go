package get_reservation

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/GYM-ReservationService/internal/api/handlers"
	"github.com/m04kA/GYM-ReservationService/internal/service/reservations"
	"github.com/m04kA/GYM-ReservationService/internal/service/reservations/models"
)

const (
	msgInvalidReservationID = "identificador de reserva inválido"
	msgReservationNotFound  = "reserva no encontrada"
)

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID          int64   `json:"id"`
	SlotID      int64   `json:"slotId"`
	MemberID    *int64  `json:"memberId,omitempty"`
	ClientName  *string `json:"clientName,omitempty"`
	ClientPhone *string `json:"clientPhone,omitempty"`
	ClientEmail *string `json:"clientEmail,omitempty"`
	Attendance  string  `json:"attendance"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

type Handler struct {
	service ReservationsService
	logger  Logger
}

func NewHandler(service ReservationsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/reservations/{reservationId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	reservationID, err := strconv.ParseInt(mux.Vars(r)["reservationId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /reservations/{id} - Invalid reservation id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	result, err := h.service.GetByID(r.Context(), reservationID)
	if err != nil {
		if errors.Is(err, reservations.ErrReservationNotFound) {
			h.logger.Warn("GET /reservations/{id} - Not found: reservation_id=%d", reservationID)
			handlers.RespondNotFound(w, msgReservationNotFound)
			return
		}
		h.logger.Error("GET /reservations/{id} - Failed: reservation_id=%d, error=%v", reservationID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, fromServiceResponse(result))
}

func fromServiceResponse(resp *models.ReservationResponse) *ReservationResponse {
	return &ReservationResponse{
		ID:          resp.ID,
		SlotID:      resp.SlotID,
		MemberID:    resp.MemberID,
		ClientName:  resp.ClientName,
		ClientPhone: resp.ClientPhone,
		ClientEmail: resp.ClientEmail,
		Attendance:  resp.Attendance,
		CreatedAt:   resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   resp.UpdatedAt.Format(time.RFC3339),
	}
}
