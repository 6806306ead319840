package get_day_schedule

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/GYM-ReservationService/internal/api/handlers"
	"github.com/m04kA/GYM-ReservationService/internal/domain"
	getDaySchedule "github.com/m04kA/GYM-ReservationService/internal/usecase/get_day_schedule"
)

const (
	msgInvalidDate = "formato de fecha inválido, se espera YYYY-MM-DD"
)

type Handler struct {
	useCase GetDayScheduleUseCase
	logger  Logger
}

func NewHandler(useCase GetDayScheduleUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/schedule/{date}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	rawDate := mux.Vars(r)["date"]

	date, err := time.Parse(domain.DateFormat, rawDate)
	if err != nil {
		h.logger.Warn("GET /schedule/{date} - Invalid date %q: %v", rawDate, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getDaySchedule.Request{Date: date})
	if err != nil {
		h.logger.Error("GET /schedule/{date} - Failed: date=%s, error=%v", rawDate, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
