package handler

import (
	"html/template"
	"net/http"
	"slices"

	"fyyur/internal/flash"
	"fyyur/internal/model"
	"fyyur/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"go.uber.org/zap"
)

const (
	templateNotFound = "errors/404.html"
	templateInternal = "errors/500.html"
)

// FormView 表單頁面的資料：新增時 ID 為 0
type FormView struct {
	ID      int                `json:"id,omitempty"`
	Form    any                `json:"form"`
	Choices *model.ShowChoices `json:"choices,omitempty"`
}

// Page 是 HTML 模板收到的根物件
type Page struct {
	Data     any
	Messages []flash.Message
}

type idParam struct {
	ID int `uri:"id" binding:"required,min=1"`
}

// wantsJSON 依 Accept header 協商；沒有指定時回 HTML
func wantsJSON(c *gin.Context) bool {
	return c.NegotiateFormat(binding.MIMEHTML, binding.MIMEJSON) == binding.MIMEJSON
}

// render 輸出 view-model：JSON 直接序列化，HTML 則附上 flash 訊息
func render(c *gin.Context, status int, name string, data any) {
	if wantsJSON(c) {
		c.JSON(status, data)
		return
	}
	c.HTML(status, name, Page{
		Data:     data,
		Messages: flash.Messages(c),
	})
}

func renderNotFound(c *gin.Context) {
	if wantsJSON(c) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}
	c.HTML(http.StatusNotFound, templateNotFound, Page{})
}

func renderInternalError(c *gin.Context) {
	if wantsJSON(c) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.HTML(http.StatusInternalServerError, templateInternal, Page{})
}

// BindID 讀取路徑上的 :id；不是正整數時視為找不到
func BindID(c *gin.Context) (int, bool) {
	var param idParam
	if err := c.ShouldBindUri(&param); err != nil {
		renderNotFound(c)
		return 0, false
	}
	return param.ID, true
}

// NotFound is the NoRoute handler.
func NotFound(c *gin.Context) {
	renderNotFound(c)
}

// Recovery renders the 500 view for panics.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.WithComponent("handler").Error("panic recovered",
			zap.Any("panic", recovered),
			zap.String("path", c.Request.URL.Path),
		)
		renderInternalError(c)
		c.Abort()
	})
}

// TemplateFuncs 模板使用的函式
func TemplateFuncs() template.FuncMap {
	return template.FuncMap{
		"genres":   func() []string { return model.Genres },
		"states":   func() []string { return model.States },
		"contains": func(values []string, v string) bool { return slices.Contains(values, v) },
	}
}
