// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package settings

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/folio/internal/platform/middleware"
	requestutil "github.com/taibuivan/folio/internal/platform/request"
	"github.com/taibuivan/folio/internal/platform/respond"
	"github.com/taibuivan/folio/internal/platform/sec"
	"github.com/taibuivan/folio/internal/platform/validate"
)

// maxDocumentBytes bounds the scoring document accepted by PUT.
const maxDocumentBytes = 64 << 10

// Handler implements the HTTP layer for settings.
type Handler struct {
	service *Service
}

// NewHandler constructs a new settings [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] mounted at /settings.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Use(middleware.RequireAuth)
	router.Get("/scoring", handler.getScoring)
	router.With(middleware.RequireRole(sec.RoleAdmin)).Put("/scoring", handler.putScoring)

	return router
}

/*
GET /api/v1/settings/scoring.

Response:
  - 200: ScoringSettings
*/
func (handler *Handler) getScoring(writer http.ResponseWriter, request *http.Request) {
	settings, err := handler.service.ScoringSettings(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, settings)
}

/*
PUT /api/v1/settings/scoring.

Request:
  - Body: Partial scoring.Config JSON overlaid on the defaults

Response:
  - 200: ScoringSettings (effective after the write)
  - 400: Malformed or invalid document
  - 403: Caller is not an admin
*/
func (handler *Handler) putScoring(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	document, err := io.ReadAll(http.MaxBytesReader(writer, request.Body, maxDocumentBytes))
	if err != nil || !json.Valid(document) {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	settings, err := handler.service.UpdateScoringConfig(request.Context(), document, userID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, settings)
}
