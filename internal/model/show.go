package model

import "time"

// StartTimeLayout is the display format for show start times.
const StartTimeLayout = "01/02/2006, 15:04"

// Show 演出：一位藝人在一個場地的一個時間點
type Show struct {
	ID        int       `json:"id" db:"id"`
	ArtistID  int       `json:"artist_id" db:"artist_id"`
	VenueID   int       `json:"venue_id" db:"venue_id"`
	StartTime time.Time `json:"start_time" db:"start_time"`
}

// IsUpcoming reports whether the show starts strictly after now.
func (s *Show) IsUpcoming(now time.Time) bool {
	return s.StartTime.After(now)
}

// FormattedStartTime renders the start time in UTC using StartTimeLayout.
func (s *Show) FormattedStartTime() string {
	return s.StartTime.UTC().Format(StartTimeLayout)
}

// ShowDetail is a show joined with the names and images of both sides.
type ShowDetail struct {
	Show
	VenueName       string `db:"venue_name"`
	VenueImageLink  string `db:"venue_image_link"`
	ArtistName      string `db:"artist_name"`
	ArtistImageLink string `db:"artist_image_link"`
}
