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

type ArtistHandler struct {
	service service.ArtistService
}

func NewArtistHandler(service service.ArtistService) *ArtistHandler {
	return &ArtistHandler{service: service}
}

func (h *ArtistHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/artists")
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

func (h *ArtistHandler) List(c *gin.Context) {
	artists, err := h.service.List(c)
	if err != nil {
		h.handleError(c, err, "List")
		return
	}
	render(c, http.StatusOK, "pages/artists.html", artists)
}

func (h *ArtistHandler) Search(c *gin.Context) {
	term := c.PostForm("search_term")
	result, err := h.service.Search(c, term)
	if err != nil {
		h.handleError(c, err, "Search")
		return
	}
	render(c, http.StatusOK, "pages/search_artists.html", gin.H{
		"search_term": term,
		"results":     result,
	})
}

func (h *ArtistHandler) Detail(c *gin.Context) {
	id, ok := BindID(c)
	if !ok {
		return
	}
	detail, err := h.service.GetDetail(c, id)
	if err != nil {
		h.handleError(c, err, "Detail")
		return
	}
	render(c, http.StatusOK, "pages/show_artist.html", detail)
}

func (h *ArtistHandler) CreateForm(c *gin.Context) {
	render(c, http.StatusOK, "forms/new_artist.html", FormView{Form: form.NewArtistForm()})
}

func (h *ArtistHandler) Create(c *gin.Context) {
	f, ok := form.BindArtist(c)
	if !ok {
		flash.Error(c, fmt.Sprintf("An error occurred. Artist %s could not be listed.", f.Name))
		render(c, http.StatusBadRequest, "forms/new_artist.html", FormView{Form: f})
		return
	}

	artist, err := f.ToModel()
	if err == nil {
		_, err = h.service.Create(c, artist)
	}
	if err != nil {
		logger.WithComponent("handler").Error("failed to create artist", zap.String("name", f.Name), zap.Error(err))
		flash.Error(c, fmt.Sprintf("An error occurred. Artist %s could not be listed.", f.Name))
		render(c, http.StatusInternalServerError, "forms/new_artist.html", FormView{Form: f})
		return
	}

	flash.Success(c, fmt.Sprintf("Artist %s was successfully listed!", artist.Name))
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *ArtistHandler) EditForm(c *gin.Context) {
	id, ok := BindID(c)
	if !ok {
		return
	}
	artist, err := h.service.Get(c, id)
	if err != nil {
		h.handleError(c, err, "EditForm")
		return
	}
	f, err := form.ArtistFormFrom(artist)
	if err != nil {
		h.handleError(c, err, "EditForm")
		return
	}
	render(c, http.StatusOK, "forms/edit_artist.html", FormView{ID: id, Form: f})
}

func (h *ArtistHandler) Update(c *gin.Context) {
	id, ok := BindID(c)
	if !ok {
		return
	}
	if _, err := h.service.Get(c, id); err != nil {
		h.handleError(c, err, "Update")
		return
	}

	f, ok := form.BindArtist(c)
	if !ok {
		flash.Error(c, fmt.Sprintf("An error occurred. Artist %s could not be updated.", f.Name))
		render(c, http.StatusBadRequest, "forms/edit_artist.html", FormView{ID: id, Form: f})
		return
	}

	artist, err := f.ToModel()
	if err == nil {
		artist.ID = id
		_, err = h.service.Update(c, artist)
	}
	if err != nil {
		if errors.Is(err, apperrors.ErrArtistNotFound) {
			h.handleError(c, err, "Update")
			return
		}
		logger.WithComponent("handler").Error("failed to update artist", zap.Int("artist_id", id), zap.Error(err))
		flash.Error(c, fmt.Sprintf("An error occurred. Artist %s could not be updated.", f.Name))
		render(c, http.StatusInternalServerError, "forms/edit_artist.html", FormView{ID: id, Form: f})
		return
	}

	flash.Success(c, fmt.Sprintf("Artist %s was successfully updated!", artist.Name))
	c.Redirect(http.StatusSeeOther, fmt.Sprintf("/artists/%d", id))
}

func (h *ArtistHandler) Delete(c *gin.Context) {
	id, ok := BindID(c)
	if !ok {
		return
	}
	artist, err := h.service.Delete(c, id)
	if err != nil {
		h.handleError(c, err, "Delete")
		return
	}
	flash.Success(c, fmt.Sprintf("Artist %s was successfully deleted!", artist.Name))
	c.Status(http.StatusOK)
}

func (h *ArtistHandler) handleError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))
	switch {
	case errors.Is(err, apperrors.ErrArtistNotFound):
		log.Warn("Artist not found")
		renderNotFound(c)
	default:
		log.Error("Unexpected error")
		renderInternalError(c)
	}
}
