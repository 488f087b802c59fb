package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"fyyur/internal/flash"
	"fyyur/internal/handler"
	"fyyur/internal/service/mocks"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

const (
	templateGlob  = "../../web/templates/**/*.html"
	sessionCookie = "session"
)

var fixedNow = time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

type testServices struct {
	venues  *mocks.MockVenueService
	artists *mocks.MockArtistService
	shows   *mocks.MockShowService
	flashes *flash.MemoryStore
}

// setupTestRouter wires every handler the way main does, with mocked services.
func setupTestRouter(t *testing.T, withTemplates bool) (*gin.Engine, testServices) {
	gin.SetMode(gin.TestMode)
	svc := testServices{
		venues:  mocks.NewMockVenueService(t),
		artists: mocks.NewMockArtistService(t),
		shows:   mocks.NewMockShowService(t),
		flashes: flash.NewMemoryStore(time.Minute),
	}

	router := gin.New()
	router.Use(handler.Recovery(), flash.Middleware(svc.flashes, sessionCookie))
	if withTemplates {
		router.SetFuncMap(handler.TemplateFuncs())
		router.LoadHTMLGlob(templateGlob)
	}
	router.NoRoute(handler.NotFound)

	handler.NewHomeHandler().RegisterRoutes(router)
	handler.NewVenueHandler(svc.venues).RegisterRoutes(router)
	handler.NewArtistHandler(svc.artists).RegisterRoutes(router)
	handler.NewShowHandler(svc.shows, func() time.Time { return fixedNow }).RegisterRoutes(router)

	return router, svc
}

func jsonRequest(method, target string) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	req.Header.Set("Accept", "application/json")
	return req
}

func formRequest(target string, values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")
	return req
}

func serve(router *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// flashed pops the messages stored for the session the response created.
func flashed(t *testing.T, svc testServices, w *httptest.ResponseRecorder) []flash.Message {
	t.Helper()
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == sessionCookie {
			messages, err := svc.flashes.Pop(context.Background(), cookie.Value)
			require.NoError(t, err)
			return messages
		}
	}
	t.Fatal("response has no session cookie")
	return nil
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v))
}

// formResponse is the JSON shape of a re-rendered form.
type formResponse struct {
	ID   int `json:"id"`
	Form struct {
		Name   string              `json:"name"`
		City   string              `json:"city"`
		Phone  string              `json:"phone"`
		Errors map[string][]string `json:"errors"`
	} `json:"form"`
}

func validVenueValues() url.Values {
	return url.Values{
		"name":    {"The Musical Hop"},
		"city":    {"San Francisco"},
		"state":   {"CA"},
		"address": {"1015 Folsom Street"},
		"phone":   {"123-123-1234"},
		"genres":  {"Jazz", "Reggae"},
	}
}

func validArtistValues() url.Values {
	return url.Values{
		"name":   {"Guns N Petals"},
		"city":   {"San Francisco"},
		"state":  {"CA"},
		"genres": {"Rock n Roll"},
	}
}
