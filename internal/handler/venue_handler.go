package handler

import (
	"errors"
	"fmt"
	"net/http"

	"fyyur/internal/flash"
	"fyyur/internal/form"
	"fyyur/internal/service"
	apperrors "fyyur/pkg/app_errors"
	"fyyur/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type VenueHandler struct {
	service service.VenueService
}

func NewVenueHandler(service service.VenueService) *VenueHandler {
	return &VenueHandler{service: service}
}

func (h *VenueHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/venues")
	{
		router.GET("", h.List)
		router.POST("/search", h.Search)
		router.GET("/create", h.CreateForm)
		router.POST("/create", h.Create)
		router.GET("/:id", h.Detail)
		router.DELETE("/:id", h.Delete)
		router.GET("/:id/edit", h.EditForm)
		router.POST("/:id/edit", h.Update)
	}
}

func (h *VenueHandler) List(c *gin.Context) {
	areas, err := h.service.ListByArea(c)
	if err != nil {
		h.handleError(c, err, "List")
		return
	}
	render(c, http.StatusOK, "pages/venues.html", areas)
}

func (h *VenueHandler) Search(c *gin.Context) {
	term := c.PostForm("search_term")
	result, err := h.service.Search(c, term)
	if err != nil {
		h.handleError(c, err, "Search")
		return
	}
	render(c, http.StatusOK, "pages/search_venues.html", gin.H{
		"search_term": term,
		"results":     result,
	})
}

func (h *VenueHandler) Detail(c *gin.Context) {
	id, ok := BindID(c)
	if !ok {
		return
	}
	detail, err := h.service.GetDetail(c, id)
	if err != nil {
		h.handleError(c, err, "Detail")
		return
	}
	render(c, http.StatusOK, "pages/show_venue.html", detail)
}

func (h *VenueHandler) CreateForm(c *gin.Context) {
	render(c, http.StatusOK, "forms/new_venue.html", FormView{Form: form.NewVenueForm()})
}

func (h *VenueHandler) Create(c *gin.Context) {
	f, ok := form.BindVenue(c)
	if !ok {
		flash.Error(c, fmt.Sprintf("An error occurred. Venue %s could not be listed.", f.Name))
		render(c, http.StatusBadRequest, "forms/new_venue.html", FormView{Form: f})
		return
	}

	venue, err := f.ToModel()
	if err == nil {
		_, err = h.service.Create(c, venue)
	}
	if err != nil {
		logger.WithComponent("handler").Error("failed to create venue", zap.String("name", f.Name), zap.Error(err))
		flash.Error(c, fmt.Sprintf("An error occurred. Venue %s could not be listed.", f.Name))
		render(c, http.StatusInternalServerError, "forms/new_venue.html", FormView{Form: f})
		return
	}

	flash.Success(c, fmt.Sprintf("Venue %s was successfully listed!", venue.Name))
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *VenueHandler) EditForm(c *gin.Context) {
	id, ok := BindID(c)
	if !ok {
		return
	}
	venue, err := h.service.Get(c, id)
	if err != nil {
		h.handleError(c, err, "EditForm")
		return
	}
	f, err := form.VenueFormFrom(venue)
	if err != nil {
		h.handleError(c, err, "EditForm")
		return
	}
	render(c, http.StatusOK, "forms/edit_venue.html", FormView{ID: id, Form: f})
}

func (h *VenueHandler) Update(c *gin.Context) {
	id, ok := BindID(c)
	if !ok {
		return
	}
	if _, err := h.service.Get(c, id); err != nil {
		h.handleError(c, err, "Update")
		return
	}

	f, ok := form.BindVenue(c)
	if !ok {
		flash.Error(c, fmt.Sprintf("An error occurred. Venue %s could not be updated.", f.Name))
		render(c, http.StatusBadRequest, "forms/edit_venue.html", FormView{ID: id, Form: f})
		return
	}

	venue, err := f.ToModel()
	if err == nil {
		venue.ID = id
		_, err = h.service.Update(c, venue)
	}
	if err != nil {
		if errors.Is(err, apperrors.ErrVenueNotFound) {
			h.handleError(c, err, "Update")
			return
		}
		logger.WithComponent("handler").Error("failed to update venue", zap.Int("venue_id", id), zap.Error(err))
		flash.Error(c, fmt.Sprintf("An error occurred. Venue %s could not be updated.", f.Name))
		render(c, http.StatusInternalServerError, "forms/edit_venue.html", FormView{ID: id, Form: f})
		return
	}

	flash.Success(c, fmt.Sprintf("Venue %s was successfully updated!", venue.Name))
	c.Redirect(http.StatusSeeOther, fmt.Sprintf("/venues/%d", id))
}

// Delete 成功時回 200 且沒有 body
func (h *VenueHandler) Delete(c *gin.Context) {
	id, ok := BindID(c)
	if !ok {
		return
	}
	venue, err := h.service.Delete(c, id)
	if err != nil {
		h.handleError(c, err, "Delete")
		return
	}
	flash.Success(c, fmt.Sprintf("Venue %s was successfully deleted!", venue.Name))
	c.Status(http.StatusOK)
}

func (h *VenueHandler) handleError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))
	switch {
	case errors.Is(err, apperrors.ErrVenueNotFound):
		log.Warn("Venue not found")
		renderNotFound(c)
	default:
		log.Error("Unexpected error")
		renderInternalError(c)
	}
}
