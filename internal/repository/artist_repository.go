package repository

import (
	"context"
	"errors"
	"fmt"

	"fyyur/internal/model"
	apperrors "fyyur/pkg/app_errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ArtistRepository interface {
	List(ctx context.Context) ([]*model.Artist, error)
	FindByID(ctx context.Context, id int) (*model.Artist, error)
	SearchByName(ctx context.Context, term string) ([]*model.Artist, error)
	Exists(ctx context.Context, tx pgx.Tx, id int) (bool, error)
	Create(ctx context.Context, tx pgx.Tx, artist *model.Artist) (*model.Artist, error)
	Update(ctx context.Context, tx pgx.Tx, artist *model.Artist) (*model.Artist, error)
	Delete(ctx context.Context, tx pgx.Tx, id int) error
}

type ArtistRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewArtistRepository(pool *pgxpool.Pool) ArtistRepository {
	return &ArtistRepositoryImpl{
		pool: pool,
	}
}

const artistColumns = `id, name, city, state, phone, genres, image_link,
	facebook_link, website_link, seeking_venue, seeking_description`

func scanArtist(row pgx.Row) (*model.Artist, error) {
	var artist model.Artist
	err := row.Scan(
		&artist.ID,
		&artist.Name,
		&artist.City,
		&artist.State,
		&artist.Phone,
		&artist.Genres,
		&artist.ImageLink,
		&artist.FacebookLink,
		&artist.WebsiteLink,
		&artist.SeekingVenue,
		&artist.SeekingDescription,
	)
	if err != nil {
		return nil, err
	}
	return &artist, nil
}

func collectArtists(rows pgx.Rows) ([]*model.Artist, error) {
	defer rows.Close()

	artists := make([]*model.Artist, 0)
	for rows.Next() {
		artist, err := scanArtist(rows)
		if err != nil {
			return nil, err
		}
		artists = append(artists, artist)
	}
	return artists, rows.Err()
}

func (r *ArtistRepositoryImpl) List(ctx context.Context) ([]*model.Artist, error) {
	query := `SELECT ` + artistColumns + ` FROM artists ORDER BY id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list artists: %w", err)
	}
	return collectArtists(rows)
}

func (r *ArtistRepositoryImpl) FindByID(ctx context.Context, id int) (*model.Artist, error) {
	query := `SELECT ` + artistColumns + ` FROM artists WHERE id = $1`

	artist, err := scanArtist(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrArtistNotFound
		}
		return nil, fmt.Errorf("find artist %d: %w", id, err)
	}
	return artist, nil
}

func (r *ArtistRepositoryImpl) SearchByName(ctx context.Context, term string) ([]*model.Artist, error) {
	query := `SELECT ` + artistColumns + ` FROM artists WHERE name ILIKE $1 ORDER BY id`

	rows, err := r.pool.Query(ctx, query, containsPattern(term))
	if err != nil {
		return nil, fmt.Errorf("search artists: %w", err)
	}
	return collectArtists(rows)
}

func (r *ArtistRepositoryImpl) Exists(ctx context.Context, tx pgx.Tx, id int) (bool, error) {
	var exists bool
	err := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM artists WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check artist %d: %w", id, err)
	}
	return exists, nil
}

func (r *ArtistRepositoryImpl) Create(ctx context.Context, tx pgx.Tx, artist *model.Artist) (*model.Artist, error) {
	query := `
		INSERT INTO artists (name, city, state, phone, genres, image_link,
			facebook_link, website_link, seeking_venue, seeking_description)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + artistColumns

	created, err := scanArtist(tx.QueryRow(ctx, query,
		artist.Name,
		artist.City,
		artist.State,
		artist.Phone,
		genresOrEmpty(artist.Genres),
		artist.ImageLink,
		artist.FacebookLink,
		artist.WebsiteLink,
		artist.SeekingVenue,
		artist.SeekingDescription,
	))
	if err != nil {
		return nil, fmt.Errorf("create artist: %w", err)
	}
	return created, nil
}

func (r *ArtistRepositoryImpl) Update(ctx context.Context, tx pgx.Tx, artist *model.Artist) (*model.Artist, error) {
	query := `
		UPDATE artists
		SET name = $2, city = $3, state = $4, phone = $5, genres = $6,
			image_link = $7, facebook_link = $8, website_link = $9,
			seeking_venue = $10, seeking_description = $11
		WHERE id = $1
		RETURNING ` + artistColumns

	updated, err := scanArtist(tx.QueryRow(ctx, query,
		artist.ID,
		artist.Name,
		artist.City,
		artist.State,
		artist.Phone,
		genresOrEmpty(artist.Genres),
		artist.ImageLink,
		artist.FacebookLink,
		artist.WebsiteLink,
		artist.SeekingVenue,
		artist.SeekingDescription,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrArtistNotFound
		}
		return nil, fmt.Errorf("update artist %d: %w", artist.ID, err)
	}
	return updated, nil
}

func (r *ArtistRepositoryImpl) Delete(ctx context.Context, tx pgx.Tx, id int) error {
	result, err := tx.Exec(ctx, `DELETE FROM artists WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete artist %d: %w", id, err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrArtistNotFound
	}
	return nil
}
