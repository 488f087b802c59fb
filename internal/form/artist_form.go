package form

import (
	"fyyur/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/copier"
)

type ArtistForm struct {
	Name               string   `form:"name" json:"name" binding:"required,notblank"`
	City               string   `form:"city" json:"city" binding:"required,notblank"`
	State              string   `form:"state" json:"state" binding:"required,notblank"`
	Phone              string   `form:"phone" json:"phone"`
	ImageLink          string   `form:"image_link" json:"image_link" binding:"omitempty,absurl"`
	Genres             []string `form:"genres" json:"genres" binding:"required,min=1"`
	FacebookLink       string   `form:"facebook_link" json:"facebook_link" binding:"omitempty,absurl"`
	WebsiteLink        string   `form:"website_link" json:"website_link" binding:"omitempty,absurl"`
	SeekingVenue       bool     `form:"seeking_venue" json:"seeking_venue"`
	SeekingDescription string   `form:"seeking_description" json:"seeking_description"`

	Errors FieldErrors `form:"-" json:"errors,omitempty"`
}

func NewArtistForm() *ArtistForm {
	return &ArtistForm{Errors: FieldErrors{}}
}

func BindArtist(c *gin.Context) (*ArtistForm, bool) {
	f := NewArtistForm()
	if !bind(c, f, f.Errors) {
		return f, false
	}
	return f, f.Validate()
}

func (f *ArtistForm) Validate() bool {
	return checkProfile(f.Errors, f.Phone, f.Genres, f.State)
}

func (f *ArtistForm) ToModel() (*model.Artist, error) {
	var a model.Artist
	if err := copier.Copy(&a, f); err != nil {
		return nil, err
	}
	return &a, nil
}

func ArtistFormFrom(a *model.Artist) (*ArtistForm, error) {
	f := NewArtistForm()
	if err := copier.Copy(f, a); err != nil {
		return nil, err
	}
	return f, nil
}
