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

type VenueService interface {
	// 依 (city, state) 分組的場地列表
	ListByArea(ctx context.Context) ([]model.VenueArea, error)
	Search(ctx context.Context, term string) (*model.SearchResult, error)
	GetDetail(ctx context.Context, id int) (*model.VenueDetail, error)
	Get(ctx context.Context, id int) (*model.Venue, error)
	Create(ctx context.Context, venue *model.Venue) (*model.Venue, error)
	Update(ctx context.Context, venue *model.Venue) (*model.Venue, error)
	// Delete 回傳被刪除的場地
	Delete(ctx context.Context, id int) (*model.Venue, error)
}

type VenueServiceImpl struct {
	transactor     repository.Transactor
	repository     repository.VenueRepository
	showRepository repository.ShowRepository
	now            func() time.Time
}

func NewVenueService(
	transactor repository.Transactor,
	venueRepository repository.VenueRepository,
	showRepository repository.ShowRepository,
	now func() time.Time,
) VenueService {
	if now == nil {
		now = time.Now
	}
	return &VenueServiceImpl{
		transactor:     transactor,
		repository:     venueRepository,
		showRepository: showRepository,
		now:            now,
	}
}

func (s *VenueServiceImpl) ListByArea(ctx context.Context) ([]model.VenueArea, error) {
	venues, err := s.repository.List(ctx)
	if err != nil {
		return nil, err
	}
	upcoming, err := s.showRepository.CountUpcomingByVenue(ctx, s.now())
	if err != nil {
		return nil, err
	}
	return groupByArea(venues, upcoming), nil
}

func (s *VenueServiceImpl) Search(ctx context.Context, term string) (*model.SearchResult, error) {
	venues, err := s.repository.SearchByName(ctx, term)
	if err != nil {
		return nil, err
	}
	upcoming, err := s.showRepository.CountUpcomingByVenue(ctx, s.now())
	if err != nil {
		return nil, err
	}
	return venueSearchResult(venues, upcoming), nil
}

func (s *VenueServiceImpl) GetDetail(ctx context.Context, id int) (*model.VenueDetail, error) {
	venue, err := s.repository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	shows, err := s.showRepository.ListByVenueID(ctx, id)
	if err != nil {
		return nil, err
	}

	past, upcoming := partitionVenueShows(shows, s.now())
	return &model.VenueDetail{
		Venue:              *venue,
		Website:            venue.WebsiteLink,
		PastShows:          past,
		UpcomingShows:      upcoming,
		PastShowsCount:     len(past),
		UpcomingShowsCount: len(upcoming),
	}, nil
}

func (s *VenueServiceImpl) Get(ctx context.Context, id int) (*model.Venue, error) {
	return s.repository.FindByID(ctx, id)
}

func (s *VenueServiceImpl) Create(ctx context.Context, venue *model.Venue) (*model.Venue, error) {
	var created *model.Venue
	err := s.transactor.WithinTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		var err error
		created, err = s.repository.Create(ctx, tx, venue)
		return err
	})
	if err != nil {
		return nil, err
	}

	logger.WithComponent("service").Info("venue created",
		zap.Int("venue_id", created.ID),
		zap.String("name", created.Name),
	)
	return created, nil
}

// Update 覆寫 venue.ID 對應的場地
func (s *VenueServiceImpl) Update(ctx context.Context, venue *model.Venue) (*model.Venue, error) {
	var updated *model.Venue
	err := s.transactor.WithinTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		var err error
		updated, err = s.repository.Update(ctx, tx, venue)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete 在同一個 transaction 中先刪除演出再刪除場地
func (s *VenueServiceImpl) Delete(ctx context.Context, id int) (*model.Venue, error) {
	venue, err := s.repository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	var removedShows int64
	err = s.transactor.WithinTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		var err error
		removedShows, err = s.showRepository.DeleteByVenueID(ctx, tx, id)
		if err != nil {
			return err
		}
		return s.repository.Delete(ctx, tx, id)
	})
	if err != nil {
		return nil, err
	}

	logger.WithComponent("service").Info("venue deleted",
		zap.Int("venue_id", id),
		zap.Int64("shows_deleted", removedShows),
	)
	return venue, nil
}
