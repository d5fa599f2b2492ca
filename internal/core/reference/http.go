// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package reference

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/folio/internal/core/scoring"
	"github.com/taibuivan/folio/internal/platform/middleware"
	requestutil "github.com/taibuivan/folio/internal/platform/request"
	"github.com/taibuivan/folio/internal/platform/respond"
	"github.com/taibuivan/folio/internal/platform/sec"
	"github.com/taibuivan/folio/pkg/pagination"
	"github.com/taibuivan/folio/pkg/query"
	"github.com/taibuivan/folio/pkg/slice"
)

// Handler implements the HTTP layer for reference data.
type Handler struct {
	service *Service
}

// NewHandler constructs a new reference [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] serving /authors, /publishers and /binders.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	for _, kind := range Kinds {
		router.Route("/"+string(kind)+"s", func(kindRoute chi.Router) {
			kindRoute.Get("/", handler.list(kind))
			kindRoute.Get("/{id}", handler.get(kind))

			// Curator Only
			kindRoute.Group(func(curatorRoute chi.Router) {
				curatorRoute.Use(middleware.RequireRole(sec.RoleCurator))

				curatorRoute.Post("/", handler.create(kind))
				curatorRoute.Patch("/{id}", handler.update(kind))
			})
		})
	}

	return router
}

/*
GET /api/v1/{kind}s.

Request (query):
  - q: Substring of name
  - tier: Comma-separated tiers, e.g. TIER_1,TIER_2
  - preferred: "true" to list preferred entities only
  - page, limit: Pagination

Response:
  - 200: []Entity with pagination meta
  - 400: Unknown tier
*/
func (handler *Handler) list(kind Kind) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		params := pagination.FromRequest(request)
		values := request.URL.Query()

		filter := Filter{
			Query:         values.Get("q"),
			Tiers:         slice.Map(query.StringSlice(values.Get("tier")), func(s string) scoring.Tier { return scoring.Tier(s) }),
			PreferredOnly: values.Get("preferred") == "true",
		}

		entities, total, err := handler.service.List(request.Context(), kind, filter, params.Limit, params.Offset())
		if err != nil {
			respond.Error(writer, request, err)
			return
		}

		respond.Paginated(writer, entities, params.Meta(total))
	}
}

/*
GET /api/v1/{kind}s/{id}.

Response:
  - 200: Entity
  - 404: Unknown id
*/
func (handler *Handler) get(kind Kind) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		id, err := requestutil.ID(request, "id")
		if err != nil {
			respond.Error(writer, request, err)
			return
		}

		entity, err := handler.service.Get(request.Context(), kind, id)
		if err != nil {
			respond.Error(writer, request, err)
			return
		}
		respond.OK(writer, entity)
	}
}

/*
POST /api/v1/{kind}s.

Request:
  - Body: CreateInput

Response:
  - 201: Entity
  - 400: Validation failure
  - 409: Name already exists
*/
func (handler *Handler) create(kind Kind) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		var input CreateInput
		if err := requestutil.DecodeJSON(request, &input); err != nil {
			respond.Error(writer, request, err)
			return
		}

		entity, err := handler.service.Create(request.Context(), kind, input)
		if err != nil {
			respond.Error(writer, request, err)
			return
		}
		respond.Created(writer, entity)
	}
}

/*
PATCH /api/v1/{kind}s/{id}.

Request:
  - Body: UpdateInput ("tier": "" clears the tier)

Response:
  - 200: Entity
  - 404: Unknown id
*/
func (handler *Handler) update(kind Kind) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		id, err := requestutil.ID(request, "id")
		if err != nil {
			respond.Error(writer, request, err)
			return
		}

		var input UpdateInput
		if err := requestutil.DecodeJSON(request, &input); err != nil {
			respond.Error(writer, request, err)
			return
		}

		entity, err := handler.service.Update(request.Context(), kind, id, input)
		if err != nil {
			respond.Error(writer, request, err)
			return
		}
		respond.OK(writer, entity)
	}
}
