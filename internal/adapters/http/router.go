package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/vaultscope/asset-onboarding/internal/application"
	"github.com/vaultscope/asset-onboarding/internal/ports"
)

type Handler struct {
	service  *application.Service
	verifier ports.TokenVerifier
}

func NewHandler(service *application.Service, verifier ports.TokenVerifier) *Handler {
	return &Handler{service: service, verifier: verifier}
}

func NewRouter(handler *Handler, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(requestIDMiddleware)
	r.Use(recoverMiddleware)
	r.Use(loggingMiddleware(logger))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) { writeMessage(w, http.StatusOK, "ok") })
	r.Get("/readyz", func(w http.ResponseWriter, _ *http.Request) { writeMessage(w, http.StatusOK, "ready") })

	r.Route("/v1", func(r chi.Router) {
		r.Route("/assets", func(r chi.Router) {
			r.Use(handler.authMiddleware)
			r.Get("/", handler.listAssets)
			r.Post("/", handler.createAsset)
			r.Get("/board", handler.getBoard)
			r.Route("/{asset_id}", func(r chi.Router) {
				r.Get("/", handler.getAsset)
				r.Patch("/stage", handler.moveAssetStage)
				r.Get("/transitions", handler.listTransitions)
				r.Put("/business-dd", handler.updateBusinessDD)
				r.Put("/tech-dd", handler.updateTechDD)
				r.Put("/integration-build", handler.updateIntegrationBuild)
			})
		})
	})
	return r
}
