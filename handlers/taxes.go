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

// ListTaxes lists all taxes
// @Summary      List taxes
// @Tags         taxes
// @Produce      json
// @Param        period  query     string  false  "Only taxes generated for a period (YYYY-MM)"
// @Success      200     {object}  Response{data=[]models.Tax}
// @Router       /taxes [get]
func ListTaxes(w http.ResponseWriter, r *http.Request) {
	taxes, err := Store.ListTaxes(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if period := r.URL.Query().Get("period"); period != "" {
		filtered := []models.Tax{}
		for _, t := range taxes {
			if t.GeneratedFor(period) {
				filtered = append(filtered, t)
			}
		}
		taxes = filtered
	}
	writeJSON(w, http.StatusOK, taxes)
}

// GetTax retrieves a single tax by ID
// @Summary      Get tax
// @Tags         taxes
// @Produce      json
// @Param        id   path      string  true  "Tax ID"
// @Success      200  {object}  Response{data=models.Tax}
// @Failure      404  {object}  Response{error=string}
// @Router       /taxes/{id} [get]
func GetTax(w http.ResponseWriter, r *http.Request) {
	t, err := Store.GetTax(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "tax not found")
		} else {
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}
	writeJSON(w, http.StatusOK, t)
}

// CreateTax creates a new tax
// @Summary      Create tax
// @Tags         taxes
// @Accept       json
// @Produce      json
// @Param        tax  body      models.TaxInput  true  "Tax contents"
// @Success      201  {object}  Response{data=models.Tax}
// @Failure      400  {object}  Response{error=string}
// @Failure      409  {object}  Response{error=string}
// @Router       /taxes [post]
func CreateTax(w http.ResponseWriter, r *http.Request) {
	var input models.TaxInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if msg := input.Validate(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	t := models.Tax{
		ID:          uuid.NewString(),
		Name:        input.Name,
		Description: input.Description,
		DueDay:      input.DueDay,
		CreatedAt:   time.Now().UTC().Format(time.RFC3339),
	}
	if err := Store.SaveTax(r.Context(), t); err != nil {
		if errors.Is(err, recurrence.ErrDuplicateGeneration) {
			writeError(w, http.StatusConflict, "a tax with this name already exists for this period")
		} else {
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}
	writeJSON(w, http.StatusCreated, t)
}

// UpdateTax updates an existing tax
// @Summary      Update tax
// @Tags         taxes
// @Accept       json
// @Produce      json
// @Param        id   path      string           true  "Tax ID"
// @Param        tax  body      models.TaxInput  true  "Updated tax contents"
// @Success      200  {object}  Response{data=models.Tax}
// @Failure      400  {object}  Response{error=string}
// @Failure      404  {object}  Response{error=string}
// @Failure      409  {object}  Response{error=string}
// @Router       /taxes/{id} [put]
func UpdateTax(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var input models.TaxInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if msg := input.Validate(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	existing, err := Store.GetTax(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "tax not found")
		} else {
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	existing.Name = input.Name
	existing.Description = input.Description
	existing.DueDay = input.DueDay
	if err := Store.SaveTax(r.Context(), existing); err != nil {
		if errors.Is(err, recurrence.ErrDuplicateGeneration) {
			writeError(w, http.StatusConflict, "a tax with this name already exists for this period")
		} else {
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}
	writeJSON(w, http.StatusOK, existing)
}

// DeleteTax deletes a tax
// @Summary      Delete tax
// @Tags         taxes
// @Produce      json
// @Param        id   path      string  true  "Tax ID"
// @Success      200  {object}  Response{data=map[string]string}
// @Failure      404  {object}  Response{error=string}
// @Router       /taxes/{id} [delete]
func DeleteTax(w http.ResponseWriter, r *http.Request) {
	if err := Store.DeleteTax(r.Context(), chi.URLParam(r, "id")); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "tax not found")
		} else {
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "deleted"})
}
