package handler

import (
	"net/http"

	"dietlog/internal/auth"
	"dietlog/internal/meal"

	"gorm.io/gorm"
)

type MealReadHandler struct {
	DB  *gorm.DB
	Svc *meal.Service
}

func (h *MealReadHandler) List(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())

	var rows []meal.Meal
	if err := h.DB.WithContext(r.Context()).Where("user_id = ?", uid).Find(&rows).Error; err != nil {
		writeMessage(w, http.StatusInternalServerError, "server error")
		return
	}

	out := make([]mealDTO, 0, len(rows))
	for _, m := range rows {
		out = append(out, toMealDTO(m))
	}

	writeJSON(w, http.StatusOK, map[string]any{"userMeals": out})
}

type summaryDTO struct {
	Total   int64 `gorm:"column:total" json:"quantiyOfMeals"`
	OnDiet  int64 `gorm:"column:on_diet" json:"quantityOfMealsOnDiet"`
	OutDiet int64 `gorm:"column:out_diet" json:"quantityOfMealsOutDiet"`
}

func (h *MealReadHandler) Summary(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())

	var out summaryDTO
	if err := h.DB.WithContext(r.Context()).Raw(`
		select count(*) as total,
		       coalesce(sum(case when is_on_diet then 1 else 0 end), 0) as on_diet,
		       coalesce(sum(case when is_on_diet then 0 else 1 end), 0) as out_diet
		from meals
		where user_id = ?
	`, uid).Scan(&out).Error; err != nil {
		writeMessage(w, http.StatusInternalServerError, "server error")
		return
	}

	writeJSON(w, http.StatusOK, out)
}

func (h *MealReadHandler) GetOne(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())

	id, ok := mealID(r)
	if !ok {
		writeViolations(w, "id: must be a UUID")
		return
	}

	m, err := h.Svc.Get(r.Context(), uid, id)
	if err != nil {
		writeMealError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"userMeal": toMealDTO(*m)})
}
