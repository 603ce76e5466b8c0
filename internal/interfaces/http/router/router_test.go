package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakePinger struct {
	err error
}

func (p fakePinger) Ping() error {
	return p.err
}

func newTestEngine(db Pinger, playground bool) *gin.Engine {
	gin.SetMode(gin.TestMode)

	graphqlHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"data":{}}`))
	})
	playgroundHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>playground</html>"))
	})

	return New(zap.NewNop(), db, graphqlHandler, playgroundHandler, Config{
		GraphQLPath: "/graphql",
		Playground:  playground,
	})
}

func TestHealthz(t *testing.T) {
	t.Run("healthy database", func(t *testing.T) {
		engine := newTestEngine(fakePinger{}, false)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"ok"`)
	})

	t.Run("unreachable database", func(t *testing.T) {
		engine := newTestEngine(fakePinger{err: assert.AnError}, false)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}

func TestGraphQLEndpoint(t *testing.T) {
	engine := newTestEngine(fakePinger{}, false)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/graphql", strings.NewReader(`{"query":"{ __typename }"}`))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestPlayground(t *testing.T) {
	t.Run("served when enabled", func(t *testing.T) {
		engine := newTestEngine(fakePinger{}, true)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/graphql", nil)
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "playground")
	})

	t.Run("absent when disabled", func(t *testing.T) {
		engine := newTestEngine(fakePinger{}, false)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/graphql", nil)
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestRequestIDHeader(t *testing.T) {
	engine := newTestEngine(fakePinger{}, false)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	engine.ServeHTTP(w, req)

	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}
