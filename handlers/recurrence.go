package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/fiscaldesk/portal/recurrence"
)

// RecurrenceHandler exposes the generation engine to the scheduled trigger
// (e.g. an external cron hitting the endpoint once a day). The URL secret is
// the only authorization; the engine's gate and period guard make repeated
// calls harmless.
type RecurrenceHandler struct {
	engine *recurrence.Engine
	secret string
	now    func() time.Time
}

func NewRecurrenceHandler(engine *recurrence.Engine, secret string) *RecurrenceHandler {
	return &RecurrenceHandler{engine: engine, secret: secret, now: time.Now}
}

// Trigger runs one generation pass
// @Summary      Trigger recurrence generation
// @Description  Run the next-period generation engine for the current period. Skips outside the first day of the month.
// @Tags         recurrence
// @Produce      json
// @Param        secret  path      string  true  "Shared cron secret"
// @Success      200     {object}  Response{data=recurrence.Result}
// @Failure      401     {object}  Response{error=string}
// @Failure      500     {object}  Response{error=string}
// @Router       /recurrence/{secret} [post]
func (h *RecurrenceHandler) Trigger(w http.ResponseWriter, r *http.Request) {
	if h.secret == "" || chi.URLParam(r, "secret") != h.secret {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	result, err := h.engine.Run(r.Context(), h.now())
	if err != nil {
		slog.Error("recurrence generation failed", "error", err, "generated_before_failure", result.Generated)
		writeError(w, http.StatusInternalServerError, "recurrence generation failed")
		return
	}
	writeJSON(w, http.StatusOK, result)
}
