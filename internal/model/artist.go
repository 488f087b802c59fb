package model

// Artist 藝人
type Artist struct {
	ID                 int      `json:"id" db:"id"`
	Name               string   `json:"name" db:"name"`
	City               string   `json:"city" db:"city"`
	State              string   `json:"state" db:"state"`
	Phone              string   `json:"phone" db:"phone"`
	Genres             []string `json:"genres" db:"genres"`
	ImageLink          string   `json:"image_link" db:"image_link"`
	FacebookLink       string   `json:"facebook_link" db:"facebook_link"`
	WebsiteLink        string   `json:"website_link" db:"website_link"`
	SeekingVenue       bool     `json:"seeking_venue" db:"seeking_venue"`
	SeekingDescription string   `json:"seeking_description" db:"seeking_description"`
}
