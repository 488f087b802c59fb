package flash

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fyyur/internal/testutil"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()

	t.Run("Pop returns messages in order and clears them", func(t *testing.T) {
		store := NewMemoryStore(time.Minute)

		require.NoError(t, store.Add(ctx, "s1", Message{Level: LevelSuccess, Text: "first"}))
		require.NoError(t, store.Add(ctx, "s1", Message{Level: LevelError, Text: "second"}))
		require.NoError(t, store.Add(ctx, "s2", Message{Level: LevelSuccess, Text: "other"}))

		messages, err := store.Pop(ctx, "s1")
		require.NoError(t, err)
		assert.Equal(t, []Message{
			{Level: LevelSuccess, Text: "first"},
			{Level: LevelError, Text: "second"},
		}, messages)

		messages, err = store.Pop(ctx, "s1")
		require.NoError(t, err)
		assert.Empty(t, messages)
		assert.Equal(t, 1, store.Len())
	})

	t.Run("Expired sessions are dropped", func(t *testing.T) {
		store := NewMemoryStore(time.Minute)
		current := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
		store.now = func() time.Time { return current }

		require.NoError(t, store.Add(ctx, "s1", Message{Level: LevelSuccess, Text: "stale"}))
		current = current.Add(time.Minute)

		messages, err := store.Pop(ctx, "s1")
		require.NoError(t, err)
		assert.Empty(t, messages)
		assert.Zero(t, store.Len())
	})

	t.Run("Default TTL", func(t *testing.T) {
		assert.Equal(t, DefaultTTL, NewMemoryStore(0).ttl)
	})
}

func setupFlashRouter(store Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(Middleware(store, "session"))
	router.POST("/notify", func(c *gin.Context) {
		Success(c, "Venue The Musical Hop was successfully listed!")
		Error(c, "An error occurred.")
		c.Status(http.StatusNoContent)
	})
	router.GET("/read", func(c *gin.Context) {
		c.JSON(http.StatusOK, Messages(c))
	})
	return router
}

func TestMiddleware(t *testing.T) {
	store := NewMemoryStore(time.Minute)
	router := setupFlashRouter(store)

	// 第一個請求取得 session cookie
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/notify", nil))
	require.Equal(t, http.StatusNoContent, w.Code)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "session", cookies[0].Name)
	_, err := uuid.Parse(cookies[0].Value)
	require.NoError(t, err)

	// 同一個 session 讀到訊息且不再發 cookie
	req := httptest.NewRequest(http.MethodGet, "/read", nil)
	req.AddCookie(cookies[0])
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var messages []Message
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &messages))
	assert.Equal(t, []Message{
		{Level: LevelSuccess, Text: "Venue The Musical Hop was successfully listed!"},
		{Level: LevelError, Text: "An error occurred."},
	}, messages)
	assert.Empty(t, w.Result().Cookies())

	// 另一個 session 看不到
	req = httptest.NewRequest(http.MethodGet, "/read", nil)
	req.AddCookie(&http.Cookie{Name: "session", Value: "not-a-uuid"})
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, "null", w.Body.String())
	assert.Len(t, w.Result().Cookies(), 1)
}

func TestHelpersWithoutMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	assert.NotPanics(t, func() { Success(c, "ignored") })
	assert.Nil(t, Messages(c))
}

func TestRedisStore(t *testing.T) {
	rdb, cleanup, err := testutil.SetupRedisOnly()
	if err != nil {
		t.Skipf("redis is not available: %v", err)
	}
	defer cleanup()

	ctx := context.Background()
	store := NewRedisStore(rdb, time.Minute)
	session := uuid.NewString()
	defer rdb.Del(ctx, redisKey(session))

	require.NoError(t, store.Add(ctx, session, Message{Level: LevelSuccess, Text: "first"}))
	require.NoError(t, store.Add(ctx, session, Message{Level: LevelError, Text: "second"}))

	ttl, err := rdb.TTL(ctx, redisKey(session)).Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))

	messages, err := store.Pop(ctx, session)
	require.NoError(t, err)
	assert.Equal(t, []Message{
		{Level: LevelSuccess, Text: "first"},
		{Level: LevelError, Text: "second"},
	}, messages)

	messages, err = store.Pop(ctx, session)
	require.NoError(t, err)
	assert.Empty(t, messages)
}
