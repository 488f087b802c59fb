package flash

import (
	"net/http"

	"fyyur/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const contextKey = "flash.session"

type session struct {
	store Store
	id    string
}

// Middleware 確保每個請求都有 session cookie，並把 store 掛在 gin.Context 上
func Middleware(store Store, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(cookieName)
		if err == nil {
			_, err = uuid.Parse(id)
		}
		if err != nil {
			id = uuid.NewString()
			http.SetCookie(c.Writer, &http.Cookie{
				Name:     cookieName,
				Value:    id,
				Path:     "/",
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}
		c.Set(contextKey, &session{store: store, id: id})
		c.Next()
	}
}

func Success(c *gin.Context, text string) {
	add(c, Message{Level: LevelSuccess, Text: text})
}

func Error(c *gin.Context, text string) {
	add(c, Message{Level: LevelError, Text: text})
}

// Messages 取出並清除目前 session 的訊息；失敗時只記錄 log
func Messages(c *gin.Context) []Message {
	s, ok := current(c)
	if !ok {
		return nil
	}
	messages, err := s.store.Pop(c.Request.Context(), s.id)
	if err != nil {
		logger.WithComponent("flash").Warn("failed to pop flash messages", zap.Error(err))
		return nil
	}
	return messages
}

func add(c *gin.Context, msg Message) {
	s, ok := current(c)
	if !ok {
		return
	}
	if err := s.store.Add(c.Request.Context(), s.id, msg); err != nil {
		logger.WithComponent("flash").Warn("failed to add flash message",
			zap.String("level", string(msg.Level)),
			zap.Error(err),
		)
	}
}

func current(c *gin.Context) (*session, bool) {
	v, ok := c.Get(contextKey)
	if !ok {
		return nil, false
	}
	s, ok := v.(*session)
	return s, ok
}
