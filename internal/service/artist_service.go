package service

import (
	"context"
	"time"

	"fyyur/internal/model"
	"fyyur/internal/repository"
	"fyyur/pkg/logger"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ArtistService interface {
	List(ctx context.Context) ([]model.ArtistListItem, error)
	Search(ctx context.Context, term string) (*model.SearchResult, error)
	GetDetail(ctx context.Context, id int) (*model.ArtistDetail, error)
	Get(ctx context.Context, id int) (*model.Artist, error)
	Create(ctx context.Context, artist *model.Artist) (*model.Artist, error)
	Update(ctx context.Context, artist *model.Artist) (*model.Artist, error)
	Delete(ctx context.Context, id int) (*model.Artist, error)
}

type ArtistServiceImpl struct {
	transactor     repository.Transactor
	repository     repository.ArtistRepository
	showRepository repository.ShowRepository
	now            func() time.Time
}

func NewArtistService(
	transactor repository.Transactor,
	artistRepository repository.ArtistRepository,
	showRepository repository.ShowRepository,
	now func() time.Time,
) ArtistService {
	if now == nil {
		now = time.Now
	}
	return &ArtistServiceImpl{
		transactor:     transactor,
		repository:     artistRepository,
		showRepository: showRepository,
		now:            now,
	}
}

func (s *ArtistServiceImpl) List(ctx context.Context) ([]model.ArtistListItem, error) {
	artists, err := s.repository.List(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]model.ArtistListItem, 0, len(artists))
	for _, a := range artists {
		items = append(items, model.ArtistListItem{ID: a.ID, Name: a.Name})
	}
	return items, nil
}

func (s *ArtistServiceImpl) Search(ctx context.Context, term string) (*model.SearchResult, error) {
	artists, err := s.repository.SearchByName(ctx, term)
	if err != nil {
		return nil, err
	}
	upcoming, err := s.showRepository.CountUpcomingByArtist(ctx, s.now())
	if err != nil {
		return nil, err
	}
	return artistSearchResult(artists, upcoming), nil
}

// GetDetail 演出項目帶的是場地資訊
func (s *ArtistServiceImpl) GetDetail(ctx context.Context, id int) (*model.ArtistDetail, error) {
	artist, err := s.repository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	shows, err := s.showRepository.ListByArtistID(ctx, id)
	if err != nil {
		return nil, err
	}

	past, upcoming := partitionArtistShows(shows, s.now())
	return &model.ArtistDetail{
		Artist:             *artist,
		Website:            artist.WebsiteLink,
		PastShows:          past,
		UpcomingShows:      upcoming,
		PastShowsCount:     len(past),
		UpcomingShowsCount: len(upcoming),
	}, nil
}

func (s *ArtistServiceImpl) Get(ctx context.Context, id int) (*model.Artist, error) {
	return s.repository.FindByID(ctx, id)
}

func (s *ArtistServiceImpl) Create(ctx context.Context, artist *model.Artist) (*model.Artist, error) {
	var created *model.Artist
	err := s.transactor.WithinTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		var err error
		created, err = s.repository.Create(ctx, tx, artist)
		return err
	})
	if err != nil {
		return nil, err
	}

	logger.WithComponent("service").Info("artist created",
		zap.Int("artist_id", created.ID),
		zap.String("name", created.Name),
	)
	return created, nil
}

func (s *ArtistServiceImpl) Update(ctx context.Context, artist *model.Artist) (*model.Artist, error) {
	var updated *model.Artist
	err := s.transactor.WithinTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		var err error
		updated, err = s.repository.Update(ctx, tx, artist)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *ArtistServiceImpl) Delete(ctx context.Context, id int) (*model.Artist, error) {
	artist, err := s.repository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	var removedShows int64
	err = s.transactor.WithinTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		var err error
		removedShows, err = s.showRepository.DeleteByArtistID(ctx, tx, id)
		if err != nil {
			return err
		}
		return s.repository.Delete(ctx, tx, id)
	})
	if err != nil {
		return nil, err
	}

	logger.WithComponent("service").Info("artist deleted",
		zap.Int("artist_id", id),
		zap.Int64("shows_deleted", removedShows),
	)
	return artist, nil
}
