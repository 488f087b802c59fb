package mocks

import (
	"context"
	"time"

	"fyyur/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"
)

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

type MockVenueRepository struct {
	mock.Mock
}

func NewMockVenueRepository(t testingT) *MockVenueRepository {
	m := &MockVenueRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockVenueRepository) List(ctx context.Context) ([]*model.Venue, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Venue), args.Error(1)
}

func (m *MockVenueRepository) FindByID(ctx context.Context, id int) (*model.Venue, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Venue), args.Error(1)
}

func (m *MockVenueRepository) SearchByName(ctx context.Context, term string) ([]*model.Venue, error) {
	args := m.Called(ctx, term)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Venue), args.Error(1)
}

func (m *MockVenueRepository) Exists(ctx context.Context, tx pgx.Tx, id int) (bool, error) {
	args := m.Called(ctx, tx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockVenueRepository) Create(ctx context.Context, tx pgx.Tx, venue *model.Venue) (*model.Venue, error) {
	args := m.Called(ctx, tx, venue)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Venue), args.Error(1)
}

func (m *MockVenueRepository) Update(ctx context.Context, tx pgx.Tx, venue *model.Venue) (*model.Venue, error) {
	args := m.Called(ctx, tx, venue)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Venue), args.Error(1)
}

func (m *MockVenueRepository) Delete(ctx context.Context, tx pgx.Tx, id int) error {
	args := m.Called(ctx, tx, id)
	return args.Error(0)
}

type MockArtistRepository struct {
	mock.Mock
}

func NewMockArtistRepository(t testingT) *MockArtistRepository {
	m := &MockArtistRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockArtistRepository) List(ctx context.Context) ([]*model.Artist, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Artist), args.Error(1)
}

func (m *MockArtistRepository) FindByID(ctx context.Context, id int) (*model.Artist, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Artist), args.Error(1)
}

func (m *MockArtistRepository) SearchByName(ctx context.Context, term string) ([]*model.Artist, error) {
	args := m.Called(ctx, term)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Artist), args.Error(1)
}

func (m *MockArtistRepository) Exists(ctx context.Context, tx pgx.Tx, id int) (bool, error) {
	args := m.Called(ctx, tx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockArtistRepository) Create(ctx context.Context, tx pgx.Tx, artist *model.Artist) (*model.Artist, error) {
	args := m.Called(ctx, tx, artist)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Artist), args.Error(1)
}

func (m *MockArtistRepository) Update(ctx context.Context, tx pgx.Tx, artist *model.Artist) (*model.Artist, error) {
	args := m.Called(ctx, tx, artist)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Artist), args.Error(1)
}

func (m *MockArtistRepository) Delete(ctx context.Context, tx pgx.Tx, id int) error {
	args := m.Called(ctx, tx, id)
	return args.Error(0)
}

type MockShowRepository struct {
	mock.Mock
}

func NewMockShowRepository(t testingT) *MockShowRepository {
	m := &MockShowRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockShowRepository) List(ctx context.Context) ([]*model.ShowDetail, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.ShowDetail), args.Error(1)
}

func (m *MockShowRepository) ListByVenueID(ctx context.Context, venueID int) ([]*model.ShowDetail, error) {
	args := m.Called(ctx, venueID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.ShowDetail), args.Error(1)
}

func (m *MockShowRepository) ListByArtistID(ctx context.Context, artistID int) ([]*model.ShowDetail, error) {
	args := m.Called(ctx, artistID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.ShowDetail), args.Error(1)
}

func (m *MockShowRepository) FindByID(ctx context.Context, id int) (*model.Show, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Show), args.Error(1)
}

func (m *MockShowRepository) Exists(ctx context.Context, tx pgx.Tx, artistID, venueID int, startTime time.Time) (bool, error) {
	args := m.Called(ctx, tx, artistID, venueID, startTime)
	return args.Bool(0), args.Error(1)
}

func (m *MockShowRepository) Create(ctx context.Context, tx pgx.Tx, show *model.Show) (*model.Show, error) {
	args := m.Called(ctx, tx, show)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Show), args.Error(1)
}

func (m *MockShowRepository) DeleteByVenueID(ctx context.Context, tx pgx.Tx, venueID int) (int64, error) {
	args := m.Called(ctx, tx, venueID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockShowRepository) DeleteByArtistID(ctx context.Context, tx pgx.Tx, artistID int) (int64, error) {
	args := m.Called(ctx, tx, artistID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockShowRepository) CountUpcomingByVenue(ctx context.Context, now time.Time) (map[int]int, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int]int), args.Error(1)
}

func (m *MockShowRepository) CountUpcomingByArtist(ctx context.Context, now time.Time) (map[int]int, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int]int), args.Error(1)
}

// Transactor 不開真正的 transaction：以 nil tx 執行 callback 並記錄結果
type Transactor struct {
	// BeginErr 非 nil 時不執行 callback
	BeginErr error
	// CommitErr 在 callback 成功後回傳
	CommitErr  error
	Calls      int
	RolledBack int
}

func NewTransactor() *Transactor {
	return &Transactor{}
}

func (t *Transactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context, tx pgx.Tx) error) error {
	t.Calls++
	if t.BeginErr != nil {
		return t.BeginErr
	}
	if err := fn(ctx, nil); err != nil {
		t.RolledBack++
		return err
	}
	if t.CommitErr != nil {
		t.RolledBack++
		return t.CommitErr
	}
	return nil
}
