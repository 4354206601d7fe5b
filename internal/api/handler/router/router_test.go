package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
)

func tagMiddleware(tag string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Add("X-Order", tag)
			next.ServeHTTP(w, r)
		})
	}
}

func TestRouter_GroupMiddlewaresRunBeforeRouteMiddlewares(t *testing.T) {
	rt := New(
		WithRoutes(Route{
			Path:    "/plain",
			Method:  http.MethodGet,
			Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}),
		}),
		WithGroup([]Middleware{tagMiddleware("group")}, Route{
			Path:        "/v1/kols/:id",
			Method:      http.MethodGet,
			Middlewares: []Middleware{tagMiddleware("route")},
			Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(httprouter.ParamsFromContext(r.Context()).ByName("id")))
			}),
		}),
	)

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/kols/K1", nil))
	assert.Equal(t, []string{"group", "route"}, rec.Header().Values("X-Order"))
	assert.Equal(t, "K1", rec.Body.String())

	rec = httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/plain", nil))
	assert.Empty(t, rec.Header().Values("X-Order"))
}

func TestRouter_NotFoundAndMethodNotAllowed(t *testing.T) {
	rt := New(WithRoutes(Route{
		Path:    "/v1/kpis",
		Method:  http.MethodGet,
		Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}),
	}))

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/unknown", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "NF_001")

	rec = httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/kpis", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
