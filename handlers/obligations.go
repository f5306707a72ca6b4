package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/fiscaldesk/portal/models"
	"github.com/fiscaldesk/portal/recurrence"
	"github.com/fiscaldesk/portal/store"
)

// ListObligations lists all obligations
// @Summary      List obligations
// @Description  Get all fiscal obligations, optionally filtered by client, status, or template flag.
// @Tags         obligations
// @Produce      json
// @Param        client_id  query     string  false  "Filter by client"
// @Param        status     query     string  false  "Filter by status"
// @Param        templates  query     bool    false  "Only root templates eligible for auto-generation"
// @Success      200        {object}  Response{data=[]models.Obligation}
// @Router       /obligations [get]
func ListObligations(w http.ResponseWriter, r *http.Request) {
	obligations, err := Store.ListObligations(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	clientID := r.URL.Query().Get("client_id")
	status := r.URL.Query().Get("status")
	templatesOnly := r.URL.Query().Get("templates") == "true"

	filtered := []models.Obligation{}
	for _, o := range obligations {
		if clientID != "" && o.ClientID != clientID {
			continue
		}
		if status != "" && string(o.Status) != status {
			continue
		}
		if templatesOnly && !o.IsTemplate() {
			continue
		}
		filtered = append(filtered, o)
	}
	writeJSON(w, http.StatusOK, filtered)
}

// GetObligation retrieves a single obligation by ID
// @Summary      Get obligation
// @Tags         obligations
// @Produce      json
// @Param        id   path      string  true  "Obligation ID"
// @Success      200  {object}  Response{data=models.Obligation}
// @Failure      404  {object}  Response{error=string}
// @Router       /obligations/{id} [get]
func GetObligation(w http.ResponseWriter, r *http.Request) {
	o, err := Store.GetObligation(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "obligation not found")
		} else {
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}
	writeJSON(w, http.StatusOK, o)
}

// CreateObligation creates a new obligation
// @Summary      Create obligation
// @Tags         obligations
// @Accept       json
// @Produce      json
// @Param        obligation  body      models.ObligationInput  true  "Obligation contents"
// @Success      201         {object}  Response{data=models.Obligation}
// @Failure      400         {object}  Response{error=string}
// @Router       /obligations [post]
func CreateObligation(w http.ResponseWriter, r *http.Request) {
	var input models.ObligationInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if msg := input.Validate(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	o := obligationFromInput(input)
	o.ID = uuid.NewString()
	o.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	if err := Store.SaveObligation(r.Context(), o); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	created, err := Store.GetObligation(r.Context(), o.ID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to re-fetch created obligation: "+err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// UpdateObligation updates an existing obligation
// @Summary      Update obligation
// @Tags         obligations
// @Accept       json
// @Produce      json
// @Param        id          path      string                  true  "Obligation ID"
// @Param        obligation  body      models.ObligationInput  true  "Updated obligation contents"
// @Success      200         {object}  Response{data=models.Obligation}
// @Failure      400         {object}  Response{error=string}
// @Failure      404         {object}  Response{error=string}
// @Router       /obligations/{id} [put]
func UpdateObligation(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var input models.ObligationInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if msg := input.Validate(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	existing, err := Store.GetObligation(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "obligation not found")
		} else {
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	o := obligationFromInput(input)
	o.ID = existing.ID
	o.ParentObligationID = existing.ParentObligationID
	o.GeneratedFor = existing.GeneratedFor
	o.CreatedAt = existing.CreatedAt
	if err := Store.SaveObligation(r.Context(), o); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	updated, err := Store.GetObligation(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to re-fetch updated obligation: "+err.Error())
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// DeleteObligation deletes an obligation
// @Summary      Delete obligation
// @Description  Remove an obligation and any instances generated from it.
// @Tags         obligations
// @Produce      json
// @Param        id   path      string  true  "Obligation ID"
// @Success      200  {object}  Response{data=map[string]string}
// @Failure      404  {object}  Response{error=string}
// @Router       /obligations/{id} [delete]
func DeleteObligation(w http.ResponseWriter, r *http.Request) {
	if err := Store.DeleteObligation(r.Context(), chi.URLParam(r, "id")); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "obligation not found")
		} else {
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "deleted"})
}

// GetObligationDueDate computes the obligation's next due date
// @Summary      Get obligation due date
// @Description  Compute the next weekend-adjusted due date from the obligation's recurrence rule.
// @Tags         obligations
// @Produce      json
// @Param        id   path      string  true  "Obligation ID"
// @Success      200  {object}  Response{data=map[string]string}
// @Failure      404  {object}  Response{error=string}
// @Failure      422  {object}  Response{error=string}
// @Router       /obligations/{id}/due-date [get]
func GetObligationDueDate(w http.ResponseWriter, r *http.Request) {
	o, err := Store.GetObligation(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "obligation not found")
		} else {
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	due, err := recurrence.ObligationDueDate(o, time.Now())
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"due_date": due.Format(time.RFC3339)})
}

func obligationFromInput(input models.ObligationInput) models.Obligation {
	return models.Obligation{
		Name:         input.Name,
		Description:  input.Description,
		ClientID:     input.ClientID,
		TaxID:        input.TaxID,
		DueDay:       input.DueDay,
		DueMonth:     input.DueMonth,
		Frequency:    input.Frequency,
		WeekendRule:  input.WeekendRule,
		Status:       input.Status,
		AutoGenerate: input.AutoGenerate,
		CompletedAt:  input.CompletedAt,
	}
}
