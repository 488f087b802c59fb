package model

// View-models handed to the renderer. They are built explicitly from the
// entities so storage shape and presentation shape can drift independently.

// Summary 列表與搜尋結果中的單筆項目
type Summary struct {
	ID               int    `json:"id"`
	Name             string `json:"name"`
	NumUpcomingShows int    `json:"num_upcoming_shows"`
}

// VenueArea groups venues sharing a (city, state) pair.
type VenueArea struct {
	City   string    `json:"city"`
	State  string    `json:"state"`
	Venues []Summary `json:"venues"`
}

type SearchResult struct {
	Count int       `json:"count"`
	Data  []Summary `json:"data"`
}

type ArtistListItem struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// VenueShow is a show seen from a venue page.
type VenueShow struct {
	ArtistID        int    `json:"artist_id"`
	ArtistName      string `json:"artist_name"`
	ArtistImageLink string `json:"artist_image_link"`
	StartTime       string `json:"start_time"`
}

// ArtistShow is a show seen from an artist page.
type ArtistShow struct {
	VenueID        int    `json:"venue_id"`
	VenueName      string `json:"venue_name"`
	VenueImageLink string `json:"venue_image_link"`
	StartTime      string `json:"start_time"`
}

type VenueDetail struct {
	Venue
	Website            string      `json:"website"`
	PastShows          []VenueShow `json:"past_shows"`
	UpcomingShows      []VenueShow `json:"upcoming_shows"`
	PastShowsCount     int         `json:"past_shows_count"`
	UpcomingShowsCount int         `json:"upcoming_shows_count"`
}

type ArtistDetail struct {
	Artist
	Website            string       `json:"website"`
	PastShows          []ArtistShow `json:"past_shows"`
	UpcomingShows      []ArtistShow `json:"upcoming_shows"`
	PastShowsCount     int          `json:"past_shows_count"`
	UpcomingShowsCount int          `json:"upcoming_shows_count"`
}

// ShowListing is one row of the flat show list.
type ShowListing struct {
	VenueID         int    `json:"venue_id"`
	VenueName       string `json:"venue_name"`
	ArtistID        int    `json:"artist_id"`
	ArtistName      string `json:"artist_name"`
	ArtistImageLink string `json:"artist_image_link"`
	StartTime       string `json:"start_time"`
}

// Choice is one option of a select input.
type Choice struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// ShowChoices lists the artists and venues a show can be booked for.
type ShowChoices struct {
	Artists []Choice `json:"artists"`
	Venues  []Choice `json:"venues"`
}
