package create_reservation

import (
	"errors"
	"net/http"

	"github.com/m04kA/GYM-ReservationService/internal/api/handlers"
	createReservation "github.com/m04kA/GYM-ReservationService/internal/usecase/create_reservation"
)

const (
	msgInvalidRequestBody = "cuerpo de solicitud inválido"
	msgSlotNotFound       = "horario no encontrado"
	msgSlotNotBookable    = "el horario fue cancelado"
	msgSlotFull           = "cupo completo"
	msgAlreadyBooked      = "el socio ya tiene una reserva para este horario"
	msgInvalidInput       = "se requiere un socio o el nombre del cliente"
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, createReservation.ErrSlotFull):
			h.logger.Warn("POST /reservations - Slot full: slot_id=%d", req.SlotID)
			handlers.RespondConflict(w, msgSlotFull)

		case errors.Is(err, createReservation.ErrAlreadyBooked):
			h.logger.Warn("POST /reservations - Already booked: slot_id=%d, member_id=%v", req.SlotID, req.MemberID)
			handlers.RespondConflict(w, msgAlreadyBooked)

		case errors.Is(err, createReservation.ErrSlotNotFound):
			h.logger.Warn("POST /reservations - Slot not found: slot_id=%d", req.SlotID)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, createReservation.ErrSlotNotBookable):
			h.logger.Warn("POST /reservations - Slot not bookable: slot_id=%d", req.SlotID)
			handlers.RespondConflict(w, msgSlotNotBookable)

		case errors.Is(err, createReservation.ErrInvalidInput):
			h.logger.Warn("POST /reservations - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: slot_id=%d, error=%v",
				req.SlotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations - Reservation created successfully: reservation_id=%d, slot_id=%d",
		result.ID, req.SlotID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
