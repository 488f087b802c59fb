package repository_test

import (
	"context"
	"testing"

	"fyyur/internal/model"
	"fyyur/internal/repository"
	apperrors "fyyur/pkg/app_errors"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVenueRepository_Create(t *testing.T) {
	repo := repository.NewVenueRepository(getTestDB(t))
	ctx := context.Background()

	t.Run("Success - retrievable by id", func(t *testing.T) {
		var created *model.Venue
		inTx(t, func(tx pgx.Tx) {
			var err error
			created, err = repo.Create(ctx, tx, sampleVenue())
			require.NoError(t, err)
		})

		assert.NotZero(t, created.ID)

		found, err := repo.FindByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, created, found)
		assert.Equal(t, []string{"Jazz", "Reggae", "Swing"}, found.Genres)
		assert.Empty(t, found.ImageLink)
	})

	t.Run("Rolled back write leaves nothing", func(t *testing.T) {
		getTestDB(t)

		tx, err := testDB.Begin(ctx)
		require.NoError(t, err)
		_, err = repo.Create(ctx, tx, sampleVenue())
		require.NoError(t, err)
		require.NoError(t, tx.Rollback(ctx))

		assertRowCount(t, "venues", 0)
	})
}

func TestVenueRepository_FindByID(t *testing.T) {
	repo := repository.NewVenueRepository(getTestDB(t))

	_, err := repo.FindByID(context.Background(), 99999)

	assert.ErrorIs(t, err, apperrors.ErrVenueNotFound)
}

func TestVenueRepository_List(t *testing.T) {
	repo := repository.NewVenueRepository(getTestDB(t))
	ctx := context.Background()

	t.Run("EmptyList", func(t *testing.T) {
		venues, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, venues)
	})

	t.Run("Ordered by id", func(t *testing.T) {
		getTestDB(t)
		first := createTestVenue(t, "B Venue", "New York", "NY")
		second := createTestVenue(t, "A Venue", "New York", "NY")

		venues, err := repo.List(ctx)

		require.NoError(t, err)
		require.Len(t, venues, 2)
		assert.Equal(t, first, venues[0].ID)
		assert.Equal(t, second, venues[1].ID)
	})
}

func TestVenueRepository_SearchByName(t *testing.T) {
	repo := repository.NewVenueRepository(getTestDB(t))
	ctx := context.Background()

	createTestVenue(t, "The Musical Hop", "San Francisco", "CA")
	createTestVenue(t, "Park Square Live Music & Coffee", "San Francisco", "CA")
	createTestVenue(t, "The Dueling Pianos Bar", "New York", "NY")
	createTestVenue(t, "100% Jazz", "New York", "NY")

	tests := []struct {
		name     string
		term     string
		expected []string
	}{
		{"case insensitive", "MUSIC", []string{"The Musical Hop", "Park Square Live Music & Coffee"}},
		{"empty term matches all", "", []string{"The Musical Hop", "Park Square Live Music & Coffee", "The Dueling Pianos Bar", "100% Jazz"}},
		{"percent is literal", "%", []string{"100% Jazz"}},
		{"underscore is literal", "_", []string{}},
		{"no match", "opera", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			venues, err := repo.SearchByName(ctx, tt.term)

			require.NoError(t, err)
			names := make([]string, 0, len(venues))
			for _, v := range venues {
				names = append(names, v.Name)
			}
			assert.Equal(t, tt.expected, names)
		})
	}
}

func TestVenueRepository_Update(t *testing.T) {
	repo := repository.NewVenueRepository(getTestDB(t))
	ctx := context.Background()

	t.Run("Success - overwrites every field", func(t *testing.T) {
		id := createTestVenue(t, "Old Name", "New York", "NY")

		changed := sampleVenue()
		changed.ID = id
		var updated *model.Venue
		inTx(t, func(tx pgx.Tx) {
			var err error
			updated, err = repo.Update(ctx, tx, changed)
			require.NoError(t, err)
		})

		found, err := repo.FindByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, updated, found)
		assert.Equal(t, "The Musical Hop", found.Name)
		assert.Equal(t, "CA", found.State)
		assert.True(t, found.SeekingTalent)
	})

	t.Run("NotFound", func(t *testing.T) {
		missing := sampleVenue()
		missing.ID = 99999

		inTx(t, func(tx pgx.Tx) {
			_, err := repo.Update(ctx, tx, missing)
			assert.ErrorIs(t, err, apperrors.ErrVenueNotFound)
		})
	})
}

func TestVenueRepository_Delete(t *testing.T) {
	repo := repository.NewVenueRepository(getTestDB(t))
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		id := createTestVenue(t, "Gone Soon", "New York", "NY")

		inTx(t, func(tx pgx.Tx) {
			require.NoError(t, repo.Delete(ctx, tx, id))
		})

		_, err := repo.FindByID(ctx, id)
		assert.ErrorIs(t, err, apperrors.ErrVenueNotFound)
	})

	t.Run("NotFound", func(t *testing.T) {
		inTx(t, func(tx pgx.Tx) {
			assert.ErrorIs(t, repo.Delete(ctx, tx, 99999), apperrors.ErrVenueNotFound)
		})
	})
}

func TestVenueRepository_Exists(t *testing.T) {
	repo := repository.NewVenueRepository(getTestDB(t))
	ctx := context.Background()
	id := createTestVenue(t, "Here", "New York", "NY")

	inTx(t, func(tx pgx.Tx) {
		exists, err := repo.Exists(ctx, tx, id)
		require.NoError(t, err)
		assert.True(t, exists)

		exists, err = repo.Exists(ctx, tx, id+1)
		require.NoError(t, err)
		assert.False(t, exists)
	})
}
