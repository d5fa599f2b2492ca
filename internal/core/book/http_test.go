// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package book_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/folio/internal/core/book"
	"github.com/taibuivan/folio/internal/platform/ctxutil"
	"github.com/taibuivan/folio/internal/platform/sec"
	"github.com/taibuivan/folio/pkg/pointer"
)

func serve(t *testing.T, handler http.Handler, method, target, body string, role sec.UserRole) *httptest.ResponseRecorder {
	t.Helper()

	request := httptest.NewRequest(method, target, strings.NewReader(body))
	if role != "" {
		request = request.WithContext(ctxutil.WithActor(request.Context(), &sec.AuthClaims{UserID: "u-1", Role: string(role)}))
	}

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)
	return recorder
}

const tessBody = `{
	"title": "Tess of the d'Urbervilles",
	"author_id": 1,
	"publisher_id": 10,
	"purchase_price": "60",
	"value_mid": "100",
	"publication_year": 1891,
	"condition_grade": "Fine",
	"complete_set": true
}`

/*
TestHandler_ScoreLifecycle creates a book, scores it, persists the totals and reads them back.
*/
func TestHandler_ScoreLifecycle(t *testing.T) {
	f := newFixture(t)
	router := book.NewHandler(f.service).Routes()

	created := serve(t, router, http.MethodPost, "/", tessBody, sec.RoleCurator)
	require.Equal(t, http.StatusCreated, created.Code, created.Body.String())

	calculated := serve(t, router, http.MethodPost, "/1/scores/calculate", "", sec.RoleViewer)
	require.Equal(t, http.StatusOK, calculated.Code, calculated.Body.String())

	var envelope struct {
		Data struct {
			OverallScore int    `json:"overall_score"`
			Disposition  string `json:"disposition"`
			Persisted    bool   `json:"persisted"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(calculated.Body.Bytes(), &envelope))
	assert.Equal(t, 190, envelope.Data.OverallScore)
	assert.Equal(t, "STRONG", envelope.Data.Disposition)
	assert.False(t, envelope.Data.Persisted)

	refreshed := serve(t, router, http.MethodPost, "/1/scores/refresh", "", sec.RoleAdmin)
	require.Equal(t, http.StatusOK, refreshed.Code, refreshed.Body.String())
	assert.Contains(t, refreshed.Body.String(), `"persisted":true`)

	read := serve(t, router, http.MethodGet, "/1", "", sec.RoleViewer)
	require.Equal(t, http.StatusOK, read.Code)
	assert.Contains(t, read.Body.String(), `"investment_grade":45`)

	moved := serve(t, router, http.MethodPatch, "/1/status", `{"status":"ON_HAND"}`, sec.RoleCurator)
	assert.Equal(t, http.StatusNoContent, moved.Code, moved.Body.String())

	listed := serve(t, router, http.MethodGet, "/?status=ON_HAND&author_id=1", "", sec.RoleViewer)
	require.Equal(t, http.StatusOK, listed.Code)
	assert.Contains(t, listed.Body.String(), `"total":1`)
}

/*
TestHandler_Preview scores an unsaved candidate against the stored collection.
*/
func TestHandler_Preview(t *testing.T) {
	f := newFixture(t)
	f.repo.insert(t, book.Book{Title: "Jude the Obscure", AuthorID: pointer.To(authorHardy), Status: book.StatusOnHand})

	router := book.NewHandler(f.service).Routes()

	recorder := serve(t, router, http.MethodPost, "/scores/preview", tessBody, sec.RoleViewer)
	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())
	assert.Contains(t, recorder.Body.String(), `"collection_impact":15`)
	assert.Contains(t, recorder.Body.String(), `"base_currency":"USD"`)
	assert.NotContains(t, recorder.Body.String(), `"book_id"`)
}

/*
TestHandler_Errors verifies role gating and status codes.
*/
func TestHandler_Errors(t *testing.T) {
	f := newFixture(t)
	f.repo.insert(t, book.Book{Title: "Unpriced", PurchaseCurrency: "USD", Status: book.StatusEvaluating})

	router := book.NewHandler(f.service).Routes()

	tests := []struct {
		name       string
		method     string
		target     string
		body       string
		role       sec.UserRole
		wantStatus int
	}{
		{"anonymous_list", http.MethodGet, "/", "", "", http.StatusUnauthorized},
		{"viewer_create", http.MethodPost, "/", tessBody, sec.RoleViewer, http.StatusForbidden},
		{"viewer_refresh", http.MethodPost, "/1/scores/refresh", "", sec.RoleViewer, http.StatusForbidden},
		{"unknown_book", http.MethodPost, "/9/scores/calculate", "", sec.RoleViewer, http.StatusNotFound},
		{"missing_price", http.MethodPost, "/1/scores/calculate", "", sec.RoleViewer, http.StatusUnprocessableEntity},
		{"bad_id", http.MethodGet, "/abc", "", sec.RoleViewer, http.StatusBadRequest},
		{"unknown_status_filter", http.MethodGet, "/?status=SOLD", "", sec.RoleViewer, http.StatusBadRequest},
		{"unknown_status", http.MethodPatch, "/1/status", `{"status":"SOLD"}`, sec.RoleCurator, http.StatusBadRequest},
		{"unknown_author", http.MethodPost, "/scores/preview", `{"title":"X","author_id":99,"purchase_price":"10"}`, sec.RoleViewer, http.StatusUnprocessableEntity},
		{"unknown_currency", http.MethodPost, "/scores/preview", `{"title":"X","purchase_price":"10","purchase_currency":"JPY"}`, sec.RoleViewer, http.StatusBadRequest},
		{"unknown_field", http.MethodPost, "/scores/preview", `{"name":"X"}`, sec.RoleViewer, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := serve(t, router, tt.method, tt.target, tt.body, tt.role)
			assert.Equal(t, tt.wantStatus, recorder.Code, recorder.Body.String())
		})
	}
}
