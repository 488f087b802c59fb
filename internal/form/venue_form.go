package form

import (
	"fyyur/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/copier"
)

type VenueForm struct {
	Name               string   `form:"name" json:"name" binding:"required,notblank"`
	City               string   `form:"city" json:"city" binding:"required,notblank"`
	State              string   `form:"state" json:"state" binding:"required,notblank"`
	Address            string   `form:"address" json:"address" binding:"required,notblank"`
	Phone              string   `form:"phone" json:"phone"`
	ImageLink          string   `form:"image_link" json:"image_link" binding:"omitempty,absurl"`
	Genres             []string `form:"genres" json:"genres" binding:"required,min=1"`
	FacebookLink       string   `form:"facebook_link" json:"facebook_link" binding:"omitempty,absurl"`
	WebsiteLink        string   `form:"website_link" json:"website_link" binding:"omitempty,absurl"`
	SeekingTalent      bool     `form:"seeking_talent" json:"seeking_talent"`
	SeekingDescription string   `form:"seeking_description" json:"seeking_description"`

	Errors FieldErrors `form:"-" json:"errors,omitempty"`
}

func NewVenueForm() *VenueForm {
	return &VenueForm{Errors: FieldErrors{}}
}

// BindVenue binds and validates the submitted venue form. The returned form
// is never nil.
func BindVenue(c *gin.Context) (*VenueForm, bool) {
	f := NewVenueForm()
	if !bind(c, f, f.Errors) {
		return f, false
	}
	return f, f.Validate()
}

// Validate runs the domain checks; structural validation must already have passed.
func (f *VenueForm) Validate() bool {
	return checkProfile(f.Errors, f.Phone, f.Genres, f.State)
}

func (f *VenueForm) ToModel() (*model.Venue, error) {
	var v model.Venue
	if err := copier.Copy(&v, f); err != nil {
		return nil, err
	}
	return &v, nil
}

// VenueFormFrom prefills a form from a stored venue.
func VenueFormFrom(v *model.Venue) (*VenueForm, error) {
	f := NewVenueForm()
	if err := copier.Copy(f, v); err != nil {
		return nil, err
	}
	return f, nil
}
