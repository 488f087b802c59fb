package service

import (
	"time"

	"fyyur/internal/model"
)

// groupByArea 依 (city, state) 分組，組別順序為第一次出現的順序
func groupByArea(venues []*model.Venue, upcoming map[int]int) []model.VenueArea {
	type areaKey struct{ city, state string }

	areas := make([]model.VenueArea, 0)
	index := make(map[areaKey]int)
	for _, v := range venues {
		key := areaKey{v.City, v.State}
		i, ok := index[key]
		if !ok {
			i = len(areas)
			index[key] = i
			areas = append(areas, model.VenueArea{
				City:   v.City,
				State:  v.State,
				Venues: make([]model.Summary, 0),
			})
		}
		areas[i].Venues = append(areas[i].Venues, model.Summary{
			ID:               v.ID,
			Name:             v.Name,
			NumUpcomingShows: upcoming[v.ID],
		})
	}
	return areas
}

func venueSearchResult(venues []*model.Venue, upcoming map[int]int) *model.SearchResult {
	data := make([]model.Summary, 0, len(venues))
	for _, v := range venues {
		data = append(data, model.Summary{ID: v.ID, Name: v.Name, NumUpcomingShows: upcoming[v.ID]})
	}
	return &model.SearchResult{Count: len(data), Data: data}
}

func artistSearchResult(artists []*model.Artist, upcoming map[int]int) *model.SearchResult {
	data := make([]model.Summary, 0, len(artists))
	for _, a := range artists {
		data = append(data, model.Summary{ID: a.ID, Name: a.Name, NumUpcomingShows: upcoming[a.ID]})
	}
	return &model.SearchResult{Count: len(data), Data: data}
}

// partitionVenueShows splits shows into past (start <= now) and upcoming
// (start > now), keeping the input order within each side.
func partitionVenueShows(shows []*model.ShowDetail, now time.Time) (past, upcoming []model.VenueShow) {
	past, upcoming = make([]model.VenueShow, 0), make([]model.VenueShow, 0)
	for _, s := range shows {
		entry := model.VenueShow{
			ArtistID:        s.ArtistID,
			ArtistName:      s.ArtistName,
			ArtistImageLink: s.ArtistImageLink,
			StartTime:       s.FormattedStartTime(),
		}
		if s.IsUpcoming(now) {
			upcoming = append(upcoming, entry)
		} else {
			past = append(past, entry)
		}
	}
	return past, upcoming
}

func partitionArtistShows(shows []*model.ShowDetail, now time.Time) (past, upcoming []model.ArtistShow) {
	past, upcoming = make([]model.ArtistShow, 0), make([]model.ArtistShow, 0)
	for _, s := range shows {
		entry := model.ArtistShow{
			VenueID:        s.VenueID,
			VenueName:      s.VenueName,
			VenueImageLink: s.VenueImageLink,
			StartTime:      s.FormattedStartTime(),
		}
		if s.IsUpcoming(now) {
			upcoming = append(upcoming, entry)
		} else {
			past = append(past, entry)
		}
	}
	return past, upcoming
}

func showListing(shows []*model.ShowDetail) []model.ShowListing {
	listing := make([]model.ShowListing, 0, len(shows))
	for _, s := range shows {
		listing = append(listing, model.ShowListing{
			VenueID:         s.VenueID,
			VenueName:       s.VenueName,
			ArtistID:        s.ArtistID,
			ArtistName:      s.ArtistName,
			ArtistImageLink: s.ArtistImageLink,
			StartTime:       s.FormattedStartTime(),
		})
	}
	return listing
}
