package set_attendance

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/GYM-ReservationService/internal/api/handlers"
	setAttendance "github.com/m04kA/GYM-ReservationService/internal/usecase/set_attendance"
)

const (
	msgInvalidRequestBody   = "cuerpo de solicitud inválido"
	msgInvalidReservationID = "identificador de reserva inválido"
	msgAttendedRequired     = "el campo attended es obligatorio"
	msgReservationNotFound  = "reserva no encontrada"
	msgNotStarted           = "la sesión aún no comenzó"
	msgWindowExpired        = "pasaron más de 24 horas desde el horario programado; la asistencia ya no puede modificarse"
	msgInvalidTransition    = "cambio de asistencia no permitido"
)

type Handler struct {
	useCase SetAttendanceUseCase
	logger  Logger
}

func NewHandler(useCase SetAttendanceUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/reservations/{reservationId}/attendance
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	reservationID, err := strconv.ParseInt(mux.Vars(r)["reservationId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /reservations/{id}/attendance - Invalid reservation id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	var req SetAttendanceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /reservations/{id}/attendance - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.Attended == nil {
		h.logger.Warn("PATCH /reservations/{id}/attendance - Missing attended field: reservation_id=%d", reservationID)
		handlers.RespondBadRequest(w, msgAttendedRequired)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &setAttendance.Request{
		ReservationID: reservationID,
		Attended:      *req.Attended,
	})
	if err != nil {
		switch {
		case errors.Is(err, setAttendance.ErrReservationNotFound):
			h.logger.Warn("PATCH /reservations/{id}/attendance - Not found: reservation_id=%d", reservationID)
			handlers.RespondNotFound(w, msgReservationNotFound)

		case errors.Is(err, setAttendance.ErrNotStarted):
			h.logger.Warn("PATCH /reservations/{id}/attendance - Not started: reservation_id=%d", reservationID)
			handlers.RespondUnprocessable(w, msgNotStarted)

		case errors.Is(err, setAttendance.ErrWindowExpired):
			h.logger.Warn("PATCH /reservations/{id}/attendance - Window expired: reservation_id=%d", reservationID)
			handlers.RespondUnprocessable(w, msgWindowExpired)

		case errors.Is(err, setAttendance.ErrInvalidTransition):
			h.logger.Warn("PATCH /reservations/{id}/attendance - Invalid transition: reservation_id=%d", reservationID)
			handlers.RespondConflict(w, msgInvalidTransition)

		case errors.Is(err, setAttendance.ErrInvalidInput):
			h.logger.Warn("PATCH /reservations/{id}/attendance - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidReservationID)

		default:
			h.logger.Error("PATCH /reservations/{id}/attendance - Failed: reservation_id=%d, error=%v",
				reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /reservations/{id}/attendance - Updated: reservation_id=%d, attendance=%s",
		reservationID, result.Attendance)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
