package cancel_reservation

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/GYM-ReservationService/internal/api/handlers"
	"github.com/m04kA/GYM-ReservationService/internal/service/reservations"
)

const (
	msgInvalidReservationID = "identificador de reserva inválido"
	msgReservationNotFound  = "reserva no encontrada"
)

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

// Handle DELETE /api/v1/reservations/{reservationId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	reservationID, err := strconv.ParseInt(mux.Vars(r)["reservationId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /reservations/{id} - Invalid reservation id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	if err := h.service.Cancel(r.Context(), reservationID); err != nil {
		if errors.Is(err, reservations.ErrReservationNotFound) {
			h.logger.Warn("DELETE /reservations/{id} - Not found: reservation_id=%d", reservationID)
			handlers.RespondNotFound(w, msgReservationNotFound)
			return
		}
		h.logger.Error("DELETE /reservations/{id} - Failed: reservation_id=%d, error=%v", reservationID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /reservations/{id} - Cancelled: reservation_id=%d", reservationID)
	handlers.RespondNoContent(w)
}
