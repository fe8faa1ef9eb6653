package http

import (
	"net/http"

	"dietlog/internal/auth"
	"dietlog/internal/config"
	"dietlog/internal/http/handler"
	mw "dietlog/internal/http/middleware"
	"dietlog/internal/meal"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"gorm.io/gorm"
)

func NewRouter(cfg config.Config, db *gorm.DB, jwtSvc *auth.JWT) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)

	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(mw.CORS(cfg.CORSAllowedOrigins, cfg.CORSAllowCredentials))
	}

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	ah := &handler.AuthHandler{DB: db, JWT: jwtSvc}
	r.Post("/users", ah.Register)
	r.Post("/users/login", ah.Login)

	me := &handler.MeHandler{DB: db}
	r.With(auth.RequireAuth(jwtSvc)).Get("/me", me.Me)

	mealSvc := &meal.Service{DB: db}
	mealH := &handler.MealHandler{Svc: mealSvc}
	mealRead := &handler.MealReadHandler{DB: db, Svc: mealSvc}

	r.Route("/meals", func(r chi.Router) {
		r.Use(auth.RequireAuth(jwtSvc))

		r.Post("/", mealH.Create)
		r.Get("/", mealRead.List)

		r.Get("/summary", mealRead.Summary)

		r.Get("/{id}", mealRead.GetOne)
		r.Put("/{id}", mealH.Update)
		r.Delete("/{id}", mealH.Delete)
	})

	return r
}
