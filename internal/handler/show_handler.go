package handler

import (
	"errors"
	"net/http"
	"time"

	"fyyur/internal/flash"
	"fyyur/internal/form"
	"fyyur/internal/model"
	"fyyur/internal/service"
	apperrors "fyyur/pkg/app_errors"
	"fyyur/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	showListedMessage = "Show was successfully listed!"
	showFailedMessage = "An error occurred. Show could not be listed."
)

type ShowHandler struct {
	service service.ShowService
	now     func() time.Time
}

func NewShowHandler(service service.ShowService, now func() time.Time) *ShowHandler {
	if now == nil {
		now = time.Now
	}
	return &ShowHandler{service: service, now: now}
}

func (h *ShowHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/shows")
	{
		router.GET("", h.List)
		router.GET("/create", h.CreateForm)
		router.POST("/create", h.Create)
	}
}

func (h *ShowHandler) List(c *gin.Context) {
	shows, err := h.service.List(c)
	if err != nil {
		h.handleError(c, err, "List")
		return
	}
	render(c, http.StatusOK, "pages/shows.html", shows)
}

func (h *ShowHandler) CreateForm(c *gin.Context) {
	h.renderForm(c, http.StatusOK, form.NewShowForm(h.now()))
}

func (h *ShowHandler) Create(c *gin.Context) {
	f, ok := form.BindShow(c)
	if !ok {
		flash.Error(c, showFailedMessage)
		h.renderForm(c, http.StatusBadRequest, f)
		return
	}

	show, err := f.ToModel()
	if err == nil {
		_, err = h.service.Create(c, show)
	}
	if err != nil {
		status := http.StatusInternalServerError
		log := logger.WithComponent("handler").With(zap.String("operation", "Create"), zap.Error(err))
		// 引用不存在或重複預約：與表單驗證失敗相同處理
		if errors.Is(err, apperrors.ErrInvalidInput) {
			status = http.StatusBadRequest
			log.Warn("Show rejected")
		} else {
			log.Error("Failed to create show")
		}
		flash.Error(c, showFailedMessage)
		h.renderForm(c, status, f)
		return
	}

	flash.Success(c, showListedMessage)
	c.Redirect(http.StatusSeeOther, "/")
}

// renderForm 選項載入失敗時仍輸出表單，只是沒有下拉選單
func (h *ShowHandler) renderForm(c *gin.Context, status int, f *form.ShowForm) {
	view := FormView{Form: f}
	choices, err := h.service.Choices(c)
	if err != nil {
		logger.WithComponent("handler").Warn("failed to load show choices", zap.Error(err))
		choices = &model.ShowChoices{Artists: []model.Choice{}, Venues: []model.Choice{}}
	}
	view.Choices = choices
	render(c, status, "forms/new_show.html", view)
}

func (h *ShowHandler) handleError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))
	switch {
	case apperrors.IsNotFound(err):
		log.Warn("Not found")
		renderNotFound(c)
	default:
		log.Error("Unexpected error")
		renderInternalError(c)
	}
}
