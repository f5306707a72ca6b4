package handlers

import (
	"net/http"
	"testing"
)

func TestCreateTax_DuplicateNameInPeriod(t *testing.T) {
	router := setupAPI(t)

	rec, body := doJSON(t, router, http.MethodPost, "/api/v1/taxes/",
		`{"name": "ISS", "due_day": 10}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d (%s)", rec.Code, body.Error)
	}

	// Creating the same name again lands in the same created_at period.
	rec, body = doJSON(t, router, http.MethodPost, "/api/v1/taxes/",
		`{"name": "ISS", "due_day": 10}`)
	if rec.Code != http.StatusConflict {
		t.Errorf("expected 409, got %d", rec.Code)
	}
	if body.Error == "" {
		t.Errorf("expected an error message")
	}

	// A different name is fine.
	rec, body = doJSON(t, router, http.MethodPost, "/api/v1/taxes/",
		`{"name": "ICMS", "due_day": 20}`)
	if rec.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d (%s)", rec.Code, body.Error)
	}
}

func TestUpdateTax_RenameOntoOccupiedSlot(t *testing.T) {
	router := setupAPI(t)

	doJSON(t, router, http.MethodPost, "/api/v1/taxes/", `{"name": "ISS", "due_day": 10}`)
	_, body := doJSON(t, router, http.MethodPost, "/api/v1/taxes/", `{"name": "ICMS", "due_day": 20}`)
	id := body.Data.(map[string]any)["id"].(string)

	rec, _ := doJSON(t, router, http.MethodPut, "/api/v1/taxes/"+id, `{"name": "ISS", "due_day": 20}`)
	if rec.Code != http.StatusConflict {
		t.Errorf("expected 409 renaming onto an occupied slot, got %d", rec.Code)
	}

	// Updating without renaming succeeds.
	rec, body = doJSON(t, router, http.MethodPut, "/api/v1/taxes/"+id, `{"name": "ICMS", "due_day": 25}`)
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d (%s)", rec.Code, body.Error)
	}
}
