// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package book

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/folio/internal/platform/middleware"
	requestutil "github.com/taibuivan/folio/internal/platform/request"
	"github.com/taibuivan/folio/internal/platform/respond"
	"github.com/taibuivan/folio/internal/platform/sec"
	"github.com/taibuivan/folio/pkg/pagination"
	"github.com/taibuivan/folio/pkg/query"
	"github.com/taibuivan/folio/pkg/slice"
)

// Handler implements the HTTP layer for books and score actions.
type Handler struct {
	service *Service
}

// NewHandler constructs a new book [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] mounted at /books.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Use(middleware.RequireAuth)

	// # Catalogue
	router.Get("/", handler.listBooks)
	router.Get("/{id}", handler.getBook)

	// # Scores (read-only)
	router.Post("/scores/preview", handler.previewScores)
	router.Post("/{id}/scores/calculate", handler.calculateScores)

	// Curator Only
	router.Group(func(curatorRoute chi.Router) {
		curatorRoute.Use(middleware.RequireRole(sec.RoleCurator))

		curatorRoute.Post("/", handler.createBook)
		curatorRoute.Patch("/{id}/status", handler.updateStatus)
		curatorRoute.Post("/{id}/scores/refresh", handler.refreshScores)
	})

	return router
}

/*
GET /api/v1/books.

Request (query):
  - q: Substring of title
  - status: Comma-separated statuses, e.g. ON_HAND,IN_TRANSIT
  - author_id: Repeatable author filter
  - page, limit: Pagination

Response:
  - 200: []Book with stored dimension totals and pagination meta
*/
func (handler *Handler) listBooks(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)
	values := request.URL.Query()

	filter := Filter{
		Query:     values.Get("q"),
		Statuses:  slice.Map(query.StringSlice(values.Get("status")), func(s string) Status { return Status(s) }),
		AuthorIDs: query.IntSlice(values["author_id"]),
	}

	books, total, err := handler.service.List(request.Context(), filter, params.Limit, params.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, books, params.Meta(total))
}

/*
GET /api/v1/books/{id}.

Response:
  - 200: Book
  - 404: Unknown id
*/
func (handler *Handler) getBook(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	book, err := handler.service.Get(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, book)
}

/*
POST /api/v1/books.

Request:
  - Body: CreateInput

Response:
  - 201: Book
  - 400: Validation failure
  - 422: Unknown author, publisher or binder
*/
func (handler *Handler) createBook(writer http.ResponseWriter, request *http.Request) {
	var input CreateInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	book, err := handler.service.Create(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, book)
}

/*
PATCH /api/v1/books/{id}/status.

Request:
  - Body: {"status": "ON_HAND"}

Response:
  - 204: Updated
  - 404: Unknown id
*/
func (handler *Handler) updateStatus(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input struct {
		Status Status `json:"status"`
	}
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.UpdateStatus(request.Context(), id, input.Status); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

/*
POST /api/v1/books/{id}/scores/calculate.

Response:
  - 200: ScoreResult (never persisted)
  - 404: Unknown id
  - 422: Book has no purchase price or points at a missing reference
*/
func (handler *Handler) calculateScores(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	result, err := handler.service.CalculateScores(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, result)
}

/*
POST /api/v1/books/{id}/scores/refresh.

Response:
  - 200: ScoreResult with persisted=true
*/
func (handler *Handler) refreshScores(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	result, err := handler.service.RefreshScores(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, result)
}

/*
POST /api/v1/books/scores/preview.

Request:
  - Body: Draft

Response:
  - 200: ScoreResult for the unsaved candidate
*/
func (handler *Handler) previewScores(writer http.ResponseWriter, request *http.Request) {
	var draft Draft
	if err := requestutil.DecodeJSON(request, &draft); err != nil {
		respond.Error(writer, request, err)
		return
	}

	result, err := handler.service.PreviewScores(request.Context(), draft)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, result)
}
