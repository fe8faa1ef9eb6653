package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"dietlog/internal/auth"
	"dietlog/internal/meal"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// MealHandler owns the mutating meal routes. Reads live on MealReadHandler.
type MealHandler struct {
	Svc *meal.Service
}

type mealReq struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description" validate:"required"`
	DateTime    string `json:"dateTime" validate:"required"`
	IsOnDiet    *bool  `json:"isOnDiet" validate:"required"`
}

type mealDTO struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	DateTime    time.Time `json:"date_time"`
	IsOnDiet    bool      `json:"is_on_diet"`
	CreatedAt   time.Time `json:"created_at"`
}

func toMealDTO(m meal.Meal) mealDTO {
	return mealDTO{
		ID:          m.ID,
		UserID:      m.UserID,
		Name:        m.Name,
		Description: m.Description,
		DateTime:    m.DateTime,
		IsOnDiet:    m.IsOnDiet,
		CreatedAt:   m.CreatedAt,
	}
}

func (r mealReq) toInput() (meal.Input, error) {
	dt, err := time.Parse(time.RFC3339, r.DateTime)
	if err != nil {
		return meal.Input{}, err
	}
	return meal.Input{
		Name:        r.Name,
		Description: r.Description,
		DateTime:    dt,
		IsOnDiet:    *r.IsOnDiet,
	}, nil
}

// mealID parses the {id} path param, enforcing the UUID format.
func mealID(r *http.Request) (string, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return "", false
	}
	return id.String(), true
}

func writeMealError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, meal.ErrNotFound):
		writeMessage(w, http.StatusNotFound, "This meal does not exist")
	case errors.Is(err, meal.ErrForbidden):
		writeMessage(w, http.StatusForbidden, "Unauthorized")
	default:
		writeMessage(w, http.StatusInternalServerError, "server error")
	}
}

func (h *MealHandler) Create(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())

	var req mealReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "bad json")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeValidationError(w, err)
		return
	}
	in, err := req.toInput()
	if err != nil {
		writeViolations(w, "dateTime: must be an RFC3339 timestamp")
		return
	}

	m, err := h.Svc.Create(r.Context(), uid, in)
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "server error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"meal": toMealDTO(*m)})
}

func (h *MealHandler) Update(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())

	id, ok := mealID(r)
	if !ok {
		writeViolations(w, "id: must be a UUID")
		return
	}

	var req mealReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "bad json")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeValidationError(w, err)
		return
	}
	in, err := req.toInput()
	if err != nil {
		writeViolations(w, "dateTime: must be an RFC3339 timestamp")
		return
	}

	m, err := h.Svc.Update(r.Context(), uid, id, in)
	if err != nil {
		writeMealError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"updatedMeal": toMealDTO(*m)})
}

func (h *MealHandler) Delete(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())

	id, ok := mealID(r)
	if !ok {
		writeViolations(w, "id: must be a UUID")
		return
	}

	if err := h.Svc.Delete(r.Context(), uid, id); err != nil {
		writeMealError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
