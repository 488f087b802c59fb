package service

import (
	"context"
	"errors"
	"fmt"

	"fyyur/internal/model"
	"fyyur/internal/repository"
	apperrors "fyyur/pkg/app_errors"
	"fyyur/pkg/logger"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ShowService interface {
	// List 依開始時間排序
	List(ctx context.Context) ([]model.ShowListing, error)
	// Choices 建立演出表單的藝人與場地選項
	Choices(ctx context.Context) (*model.ShowChoices, error)
	Get(ctx context.Context, id int) (*model.Show, error)
	// Create 引用不存在或重複預約時回傳包裝 ErrInvalidInput 的錯誤
	Create(ctx context.Context, show *model.Show) (*model.Show, error)
}

type ShowServiceImpl struct {
	transactor       repository.Transactor
	repository       repository.ShowRepository
	venueRepository  repository.VenueRepository
	artistRepository repository.ArtistRepository
}

func NewShowService(
	transactor repository.Transactor,
	showRepository repository.ShowRepository,
	venueRepository repository.VenueRepository,
	artistRepository repository.ArtistRepository,
) ShowService {
	return &ShowServiceImpl{
		transactor:       transactor,
		repository:       showRepository,
		venueRepository:  venueRepository,
		artistRepository: artistRepository,
	}
}

func (s *ShowServiceImpl) List(ctx context.Context) ([]model.ShowListing, error) {
	shows, err := s.repository.List(ctx)
	if err != nil {
		return nil, err
	}
	return showListing(shows), nil
}

func (s *ShowServiceImpl) Choices(ctx context.Context) (*model.ShowChoices, error) {
	artists, err := s.artistRepository.List(ctx)
	if err != nil {
		return nil, err
	}
	venues, err := s.venueRepository.List(ctx)
	if err != nil {
		return nil, err
	}

	choices := &model.ShowChoices{
		Artists: make([]model.Choice, 0, len(artists)),
		Venues:  make([]model.Choice, 0, len(venues)),
	}
	for _, a := range artists {
		choices.Artists = append(choices.Artists, model.Choice{ID: a.ID, Name: a.Name})
	}
	for _, v := range venues {
		choices.Venues = append(choices.Venues, model.Choice{ID: v.ID, Name: v.Name})
	}
	return choices, nil
}

func (s *ShowServiceImpl) Get(ctx context.Context, id int) (*model.Show, error) {
	return s.repository.FindByID(ctx, id)
}

func (s *ShowServiceImpl) Create(ctx context.Context, show *model.Show) (*model.Show, error) {
	show.StartTime = show.StartTime.UTC()

	var created *model.Show
	err := s.transactor.WithinTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		// 1. 檢查藝人與場地存在
		artistExists, err := s.artistRepository.Exists(ctx, tx, show.ArtistID)
		if err != nil {
			return err
		}
		if !artistExists {
			return invalid(apperrors.ErrArtistNotFound)
		}

		venueExists, err := s.venueRepository.Exists(ctx, tx, show.VenueID)
		if err != nil {
			return err
		}
		if !venueExists {
			return invalid(apperrors.ErrVenueNotFound)
		}

		// 2. 檢查重複預約；並發情況由唯一鍵兜底
		duplicate, err := s.repository.Exists(ctx, tx, show.ArtistID, show.VenueID, show.StartTime)
		if err != nil {
			return err
		}
		if duplicate {
			return invalid(apperrors.ErrDuplicateShow)
		}

		// 3. 寫入
		created, err = s.repository.Create(ctx, tx, show)
		if errors.Is(err, apperrors.ErrDuplicateShow) {
			return invalid(err)
		}
		return err
	})
	if err != nil {
		return nil, err
	}

	logger.WithComponent("service").Info("show created",
		zap.Int("show_id", created.ID),
		zap.Int("artist_id", created.ArtistID),
		zap.Int("venue_id", created.VenueID),
	)
	return created, nil
}

func invalid(cause error) error {
	return fmt.Errorf("%w: %w", apperrors.ErrInvalidInput, cause)
}
