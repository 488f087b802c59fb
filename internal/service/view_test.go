package service

import (
	"testing"
	"time"

	"fyyur/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupByArea(t *testing.T) {
	venues := []*model.Venue{
		{ID: 1, Name: "A", City: "New York", State: "NY"},
		{ID: 2, Name: "C", City: "San Francisco", State: "CA"},
		{ID: 3, Name: "B", City: "New York", State: "NY"},
		// 同 state 不同 city 為不同組
		{ID: 4, Name: "D", City: "Buffalo", State: "NY"},
	}
	upcoming := map[int]int{1: 2, 3: 1}

	areas := groupByArea(venues, upcoming)

	require.Len(t, areas, 3)
	assert.Equal(t, model.VenueArea{
		City:  "New York",
		State: "NY",
		Venues: []model.Summary{
			{ID: 1, Name: "A", NumUpcomingShows: 2},
			{ID: 3, Name: "B", NumUpcomingShows: 1},
		},
	}, areas[0])
	assert.Equal(t, "San Francisco", areas[1].City)
	assert.Equal(t, []model.Summary{{ID: 2, Name: "C"}}, areas[1].Venues)
	assert.Equal(t, "Buffalo", areas[2].City)
}

func TestGroupByArea_Empty(t *testing.T) {
	areas := groupByArea(nil, nil)

	assert.NotNil(t, areas)
	assert.Empty(t, areas)
}

func TestPartitionShows(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	shows := []*model.ShowDetail{
		{Show: model.Show{ID: 1, ArtistID: 4, VenueID: 1, StartTime: now.Add(-time.Hour)}, ArtistName: "Guns N Petals", VenueName: "The Musical Hop"},
		{Show: model.Show{ID: 2, ArtistID: 5, VenueID: 3, StartTime: now}, ArtistName: "Matt Quevedo", VenueName: "Park Square"},
		{Show: model.Show{ID: 3, ArtistID: 6, VenueID: 3, StartTime: now.Add(time.Minute)}, ArtistName: "The Wild Sax Band", VenueName: "Park Square"},
	}

	t.Run("Venue side", func(t *testing.T) {
		past, upcoming := partitionVenueShows(shows, now)

		require.Len(t, past, 2)
		require.Len(t, upcoming, 1)
		assert.Equal(t, "Guns N Petals", past[0].ArtistName)
		// start_time == now 算過去
		assert.Equal(t, 5, past[1].ArtistID)
		assert.Equal(t, model.VenueShow{ArtistID: 6, ArtistName: "The Wild Sax Band", StartTime: "01/01/2025, 12:01"}, upcoming[0])
	})

	t.Run("Artist side", func(t *testing.T) {
		past, upcoming := partitionArtistShows(shows, now)

		require.Len(t, past, 2)
		require.Len(t, upcoming, 1)
		assert.Equal(t, "The Musical Hop", past[0].VenueName)
		assert.Equal(t, 3, upcoming[0].VenueID)
		assert.Equal(t, "Park Square", upcoming[0].VenueName)
	})

	t.Run("No shows", func(t *testing.T) {
		past, upcoming := partitionVenueShows(nil, now)

		assert.NotNil(t, past)
		assert.NotNil(t, upcoming)
		assert.Empty(t, past)
		assert.Empty(t, upcoming)
	})
}

func TestShowListing(t *testing.T) {
	shows := []*model.ShowDetail{{
		Show:            model.Show{ID: 1, ArtistID: 4, VenueID: 1, StartTime: time.Date(2019, 5, 21, 21, 30, 0, 0, time.UTC)},
		VenueName:       "The Musical Hop",
		ArtistName:      "Guns N Petals",
		ArtistImageLink: "https://images.example.com/petals.png",
	}}

	listing := showListing(shows)

	assert.Equal(t, []model.ShowListing{{
		VenueID:         1,
		VenueName:       "The Musical Hop",
		ArtistID:        4,
		ArtistName:      "Guns N Petals",
		ArtistImageLink: "https://images.example.com/petals.png",
		StartTime:       "05/21/2019, 21:30",
	}}, listing)
}
