package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/mvidal21/quizshow-backend/internal/session"
	"github.com/mvidal21/quizshow-backend/internal/ws"
)

func SetupRoutes(mgr *session.Manager, log *zap.Logger, origins []string) http.Handler {
	r := chi.NewRouter()

	r.Use(cors.AllowAll().Handler)

	r.Get("/healthz", Healthz)
	r.Get("/room", RoomStatus(mgr))
	r.Get("/ws", ws.Handler(mgr, log, origins))
	return r
}
