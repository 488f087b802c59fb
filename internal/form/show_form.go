package form

import (
	"strconv"
	"time"

	"fyyur/internal/model"

	"github.com/gin-gonic/gin"
)

// StartTimeInputLayout is the layout accepted for start_time submissions.
const StartTimeInputLayout = "2006-01-02 15:04:05"

// ShowForm only checks presence and shape; whether the artist and venue
// exist, and whether the slot is free, is decided by the show service.
type ShowForm struct {
	ArtistID  string `form:"artist_id" json:"artist_id" binding:"required,number"`
	VenueID   string `form:"venue_id" json:"venue_id" binding:"required,number"`
	StartTime string `form:"start_time" json:"start_time" binding:"required,datetime=2006-01-02 15:04:05"`

	Errors FieldErrors `form:"-" json:"errors,omitempty"`
}

// NewShowForm defaults start_time to now.
func NewShowForm(now time.Time) *ShowForm {
	return &ShowForm{
		StartTime: now.UTC().Format(StartTimeInputLayout),
		Errors:    FieldErrors{},
	}
}

func BindShow(c *gin.Context) (*ShowForm, bool) {
	f := &ShowForm{Errors: FieldErrors{}}
	if !bind(c, f, f.Errors) {
		return f, false
	}
	// ids 必須落在 INTEGER 欄位的範圍內
	for field, value := range map[string]string{"artist_id": f.ArtistID, "venue_id": f.VenueID} {
		if _, err := strconv.ParseInt(value, 10, 32); err != nil {
			f.Errors.Add(field, "Not a valid integer value.")
		}
	}
	return f, !f.Errors.Any()
}

// ToModel converts the validated fields; start_time is read as UTC.
func (f *ShowForm) ToModel() (*model.Show, error) {
	artistID, err := strconv.Atoi(f.ArtistID)
	if err != nil {
		return nil, err
	}
	venueID, err := strconv.Atoi(f.VenueID)
	if err != nil {
		return nil, err
	}
	start, err := time.ParseInLocation(StartTimeInputLayout, f.StartTime, time.UTC)
	if err != nil {
		return nil, err
	}
	return &model.Show{
		ArtistID:  artistID,
		VenueID:   venueID,
		StartTime: start,
	}, nil
}
