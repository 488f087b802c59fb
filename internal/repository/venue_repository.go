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

type VenueRepository interface {
	List(ctx context.Context) ([]*model.Venue, error)
	FindByID(ctx context.Context, id int) (*model.Venue, error)
	SearchByName(ctx context.Context, term string) ([]*model.Venue, error)
	Exists(ctx context.Context, tx pgx.Tx, id int) (bool, error)
	Create(ctx context.Context, tx pgx.Tx, venue *model.Venue) (*model.Venue, error)
	Update(ctx context.Context, tx pgx.Tx, venue *model.Venue) (*model.Venue, error)
	Delete(ctx context.Context, tx pgx.Tx, id int) error
}

type VenueRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewVenueRepository(pool *pgxpool.Pool) VenueRepository {
	return &VenueRepositoryImpl{
		pool: pool,
	}
}

const venueColumns = `id, name, city, state, address, phone, genres, image_link,
	facebook_link, website_link, seeking_talent, seeking_description`

func scanVenue(row pgx.Row) (*model.Venue, error) {
	var venue model.Venue
	err := row.Scan(
		&venue.ID,
		&venue.Name,
		&venue.City,
		&venue.State,
		&venue.Address,
		&venue.Phone,
		&venue.Genres,
		&venue.ImageLink,
		&venue.FacebookLink,
		&venue.WebsiteLink,
		&venue.SeekingTalent,
		&venue.SeekingDescription,
	)
	if err != nil {
		return nil, err
	}
	return &venue, nil
}

func collectVenues(rows pgx.Rows) ([]*model.Venue, error) {
	defer rows.Close()

	venues := make([]*model.Venue, 0)
	for rows.Next() {
		venue, err := scanVenue(rows)
		if err != nil {
			return nil, err
		}
		venues = append(venues, venue)
	}
	return venues, rows.Err()
}

func (r *VenueRepositoryImpl) List(ctx context.Context) ([]*model.Venue, error) {
	query := `SELECT ` + venueColumns + ` FROM venues ORDER BY id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list venues: %w", err)
	}
	return collectVenues(rows)
}

func (r *VenueRepositoryImpl) FindByID(ctx context.Context, id int) (*model.Venue, error) {
	query := `SELECT ` + venueColumns + ` FROM venues WHERE id = $1`

	venue, err := scanVenue(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrVenueNotFound
		}
		return nil, fmt.Errorf("find venue %d: %w", id, err)
	}
	return venue, nil
}

// SearchByName 名稱不分大小寫包含 term；空字串回傳全部
func (r *VenueRepositoryImpl) SearchByName(ctx context.Context, term string) ([]*model.Venue, error) {
	query := `SELECT ` + venueColumns + ` FROM venues WHERE name ILIKE $1 ORDER BY id`

	rows, err := r.pool.Query(ctx, query, containsPattern(term))
	if err != nil {
		return nil, fmt.Errorf("search venues: %w", err)
	}
	return collectVenues(rows)
}

func (r *VenueRepositoryImpl) Exists(ctx context.Context, tx pgx.Tx, id int) (bool, error) {
	var exists bool
	err := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM venues WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check venue %d: %w", id, err)
	}
	return exists, nil
}

func (r *VenueRepositoryImpl) Create(ctx context.Context, tx pgx.Tx, venue *model.Venue) (*model.Venue, error) {
	query := `
		INSERT INTO venues (name, city, state, address, phone, genres, image_link,
			facebook_link, website_link, seeking_talent, seeking_description)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING ` + venueColumns

	created, err := scanVenue(tx.QueryRow(ctx, query,
		venue.Name,
		venue.City,
		venue.State,
		venue.Address,
		venue.Phone,
		genresOrEmpty(venue.Genres),
		venue.ImageLink,
		venue.FacebookLink,
		venue.WebsiteLink,
		venue.SeekingTalent,
		venue.SeekingDescription,
	))
	if err != nil {
		return nil, fmt.Errorf("create venue: %w", err)
	}
	return created, nil
}

// Update 覆寫所有可變欄位
func (r *VenueRepositoryImpl) Update(ctx context.Context, tx pgx.Tx, venue *model.Venue) (*model.Venue, error) {
	query := `
		UPDATE venues
		SET name = $2, city = $3, state = $4, address = $5, phone = $6, genres = $7,
			image_link = $8, facebook_link = $9, website_link = $10,
			seeking_talent = $11, seeking_description = $12
		WHERE id = $1
		RETURNING ` + venueColumns

	updated, err := scanVenue(tx.QueryRow(ctx, query,
		venue.ID,
		venue.Name,
		venue.City,
		venue.State,
		venue.Address,
		venue.Phone,
		genresOrEmpty(venue.Genres),
		venue.ImageLink,
		venue.FacebookLink,
		venue.WebsiteLink,
		venue.SeekingTalent,
		venue.SeekingDescription,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrVenueNotFound
		}
		return nil, fmt.Errorf("update venue %d: %w", venue.ID, err)
	}
	return updated, nil
}

func (r *VenueRepositoryImpl) Delete(ctx context.Context, tx pgx.Tx, id int) error {
	result, err := tx.Exec(ctx, `DELETE FROM venues WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete venue %d: %w", id, err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrVenueNotFound
	}
	return nil
}

// genres 欄位 NOT NULL，nil slice 會被編碼成 NULL
func genresOrEmpty(genres []string) []string {
	if genres == nil {
		return []string{}
	}
	return genres
}
