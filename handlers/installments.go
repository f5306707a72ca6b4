package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/fiscaldesk/portal/models"
	"github.com/fiscaldesk/portal/store"
)

// ListInstallments lists all installments
// @Summary      List installments
// @Tags         installments
// @Produce      json
// @Param        client_id  query     string  false  "Filter by client"
// @Param        open       query     bool    false  "Only plans that have not reached their final installment"
// @Success      200        {object}  Response{data=[]models.Installment}
// @Router       /installments [get]
func ListInstallments(w http.ResponseWriter, r *http.Request) {
	installments, err := Store.ListInstallments(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	clientID := r.URL.Query().Get("client_id")
	openOnly := r.URL.Query().Get("open") == "true"

	filtered := []models.Installment{}
	for _, i := range installments {
		if clientID != "" && i.ClientID != clientID {
			continue
		}
		if openOnly && i.Exhausted() {
			continue
		}
		filtered = append(filtered, i)
	}
	writeJSON(w, http.StatusOK, filtered)
}

// GetInstallment retrieves a single installment by ID
// @Summary      Get installment
// @Tags         installments
// @Produce      json
// @Param        id   path      string  true  "Installment ID"
// @Success      200  {object}  Response{data=models.Installment}
// @Failure      404  {object}  Response{error=string}
// @Router       /installments/{id} [get]
func GetInstallment(w http.ResponseWriter, r *http.Request) {
	i, err := Store.GetInstallment(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "installment not found")
		} else {
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}
	writeJSON(w, http.StatusOK, i)
}

// CreateInstallment creates a new installment
// @Summary      Create installment
// @Tags         installments
// @Accept       json
// @Produce      json
// @Param        installment  body      models.InstallmentInput  true  "Installment contents"
// @Success      201          {object}  Response{data=models.Installment}
// @Failure      400          {object}  Response{error=string}
// @Router       /installments [post]
func CreateInstallment(w http.ResponseWriter, r *http.Request) {
	var input models.InstallmentInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if msg := input.Validate(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	i := installmentFromInput(input)
	i.ID = uuid.NewString()
	i.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	if err := Store.SaveInstallment(r.Context(), i); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	created, err := Store.GetInstallment(r.Context(), i.ID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to re-fetch created installment: "+err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// UpdateInstallment updates an existing installment
// @Summary      Update installment
// @Tags         installments
// @Accept       json
// @Produce      json
// @Param        id           path      string                   true  "Installment ID"
// @Param        installment  body      models.InstallmentInput  true  "Updated installment contents"
// @Success      200          {object}  Response{data=models.Installment}
// @Failure      400          {object}  Response{error=string}
// @Failure      404          {object}  Response{error=string}
// @Router       /installments/{id} [put]
func UpdateInstallment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var input models.InstallmentInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if msg := input.Validate(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	existing, err := Store.GetInstallment(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "installment not found")
		} else {
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	i := installmentFromInput(input)
	i.ID = existing.ID
	i.CreatedAt = existing.CreatedAt
	if err := Store.SaveInstallment(r.Context(), i); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	updated, err := Store.GetInstallment(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to re-fetch updated installment: "+err.Error())
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// DeleteInstallment deletes an installment
// @Summary      Delete installment
// @Tags         installments
// @Produce      json
// @Param        id   path      string  true  "Installment ID"
// @Success      200  {object}  Response{data=map[string]string}
// @Failure      404  {object}  Response{error=string}
// @Router       /installments/{id} [delete]
func DeleteInstallment(w http.ResponseWriter, r *http.Request) {
	if err := Store.DeleteInstallment(r.Context(), chi.URLParam(r, "id")); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "installment not found")
		} else {
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "deleted"})
}

func installmentFromInput(input models.InstallmentInput) models.Installment {
	return models.Installment{
		Name:               input.Name,
		ClientID:           input.ClientID,
		TaxID:              input.TaxID,
		InstallmentCount:   input.InstallmentCount,
		CurrentInstallment: input.CurrentInstallment,
		DueDay:             input.DueDay,
		FirstDueDate:       input.FirstDueDate,
		WeekendRule:        input.WeekendRule,
		AutoGenerate:       input.AutoGenerate,
		Recurrence:         input.Recurrence,
		RecurrenceInterval: input.RecurrenceInterval,
		Status:             input.Status,
	}
}
