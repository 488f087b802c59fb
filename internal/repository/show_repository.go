package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fyyur/internal/model"
	apperrors "fyyur/pkg/app_errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ShowRepository interface {
	List(ctx context.Context) ([]*model.ShowDetail, error)
	ListByVenueID(ctx context.Context, venueID int) ([]*model.ShowDetail, error)
	ListByArtistID(ctx context.Context, artistID int) ([]*model.ShowDetail, error)
	FindByID(ctx context.Context, id int) (*model.Show, error)
	Exists(ctx context.Context, tx pgx.Tx, artistID, venueID int, startTime time.Time) (bool, error)
	Create(ctx context.Context, tx pgx.Tx, show *model.Show) (*model.Show, error)
	DeleteByVenueID(ctx context.Context, tx pgx.Tx, venueID int) (int64, error)
	DeleteByArtistID(ctx context.Context, tx pgx.Tx, artistID int) (int64, error)
	// 以 venue_id / artist_id 為 key 的未來演出數量，沒有演出的不在 map 中
	CountUpcomingByVenue(ctx context.Context, now time.Time) (map[int]int, error)
	CountUpcomingByArtist(ctx context.Context, now time.Time) (map[int]int, error)
}

type ShowRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewShowRepository(pool *pgxpool.Pool) ShowRepository {
	return &ShowRepositoryImpl{
		pool: pool,
	}
}

const showDetailQuery = `
	SELECT s.id, s.artist_id, s.venue_id, s.start_time,
		v.name, v.image_link, a.name, a.image_link
	FROM shows s
	JOIN venues v ON v.id = s.venue_id
	JOIN artists a ON a.id = s.artist_id
`

func (r *ShowRepositoryImpl) listDetails(ctx context.Context, where string, args ...any) ([]*model.ShowDetail, error) {
	query := showDetailQuery + where + ` ORDER BY s.start_time ASC, s.id ASC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	shows := make([]*model.ShowDetail, 0)
	for rows.Next() {
		var show model.ShowDetail
		err := rows.Scan(
			&show.ID,
			&show.ArtistID,
			&show.VenueID,
			&show.StartTime,
			&show.VenueName,
			&show.VenueImageLink,
			&show.ArtistName,
			&show.ArtistImageLink,
		)
		if err != nil {
			return nil, err
		}
		show.StartTime = show.StartTime.UTC()
		shows = append(shows, &show)
	}
	return shows, rows.Err()
}

func (r *ShowRepositoryImpl) List(ctx context.Context) ([]*model.ShowDetail, error) {
	shows, err := r.listDetails(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("list shows: %w", err)
	}
	return shows, nil
}

func (r *ShowRepositoryImpl) ListByVenueID(ctx context.Context, venueID int) ([]*model.ShowDetail, error) {
	shows, err := r.listDetails(ctx, `WHERE s.venue_id = $1`, venueID)
	if err != nil {
		return nil, fmt.Errorf("list shows of venue %d: %w", venueID, err)
	}
	return shows, nil
}

func (r *ShowRepositoryImpl) ListByArtistID(ctx context.Context, artistID int) ([]*model.ShowDetail, error) {
	shows, err := r.listDetails(ctx, `WHERE s.artist_id = $1`, artistID)
	if err != nil {
		return nil, fmt.Errorf("list shows of artist %d: %w", artistID, err)
	}
	return shows, nil
}

func (r *ShowRepositoryImpl) FindByID(ctx context.Context, id int) (*model.Show, error) {
	query := `SELECT id, artist_id, venue_id, start_time FROM shows WHERE id = $1`

	var show model.Show
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&show.ID,
		&show.ArtistID,
		&show.VenueID,
		&show.StartTime,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrShowNotFound
		}
		return nil, fmt.Errorf("find show %d: %w", id, err)
	}
	show.StartTime = show.StartTime.UTC()
	return &show, nil
}

func (r *ShowRepositoryImpl) Exists(ctx context.Context, tx pgx.Tx, artistID, venueID int, startTime time.Time) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM shows
			WHERE artist_id = $1 AND venue_id = $2 AND start_time = $3
		)
	`
	var exists bool
	err := tx.QueryRow(ctx, query, artistID, venueID, startTime).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check show: %w", err)
	}
	return exists, nil
}

// Create 唯一鍵衝突 (並發重複預約) 轉為 ErrDuplicateShow
func (r *ShowRepositoryImpl) Create(ctx context.Context, tx pgx.Tx, show *model.Show) (*model.Show, error) {
	query := `
		INSERT INTO shows (artist_id, venue_id, start_time)
		VALUES ($1, $2, $3)
		RETURNING id, artist_id, venue_id, start_time
	`
	var created model.Show
	err := tx.QueryRow(ctx, query, show.ArtistID, show.VenueID, show.StartTime).Scan(
		&created.ID,
		&created.ArtistID,
		&created.VenueID,
		&created.StartTime,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, apperrors.ErrDuplicateShow
		}
		return nil, fmt.Errorf("create show: %w", err)
	}
	created.StartTime = created.StartTime.UTC()
	return &created, nil
}

func (r *ShowRepositoryImpl) DeleteByVenueID(ctx context.Context, tx pgx.Tx, venueID int) (int64, error) {
	result, err := tx.Exec(ctx, `DELETE FROM shows WHERE venue_id = $1`, venueID)
	if err != nil {
		return 0, fmt.Errorf("delete shows of venue %d: %w", venueID, err)
	}
	return result.RowsAffected(), nil
}

func (r *ShowRepositoryImpl) DeleteByArtistID(ctx context.Context, tx pgx.Tx, artistID int) (int64, error) {
	result, err := tx.Exec(ctx, `DELETE FROM shows WHERE artist_id = $1`, artistID)
	if err != nil {
		return 0, fmt.Errorf("delete shows of artist %d: %w", artistID, err)
	}
	return result.RowsAffected(), nil
}

func (r *ShowRepositoryImpl) CountUpcomingByVenue(ctx context.Context, now time.Time) (map[int]int, error) {
	counts, err := r.countUpcoming(ctx, "venue_id", now)
	if err != nil {
		return nil, fmt.Errorf("count upcoming shows by venue: %w", err)
	}
	return counts, nil
}

func (r *ShowRepositoryImpl) CountUpcomingByArtist(ctx context.Context, now time.Time) (map[int]int, error) {
	counts, err := r.countUpcoming(ctx, "artist_id", now)
	if err != nil {
		return nil, fmt.Errorf("count upcoming shows by artist: %w", err)
	}
	return counts, nil
}

// column 只會是 venue_id 或 artist_id
func (r *ShowRepositoryImpl) countUpcoming(ctx context.Context, column string, now time.Time) (map[int]int, error) {
	query := `SELECT ` + column + `, COUNT(*) FROM shows WHERE start_time > $1 GROUP BY ` + column

	rows, err := r.pool.Query(ctx, query, now)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[int]int)
	for rows.Next() {
		var id, count int
		if err := rows.Scan(&id, &count); err != nil {
			return nil, err
		}
		counts[id] = count
	}
	return counts, rows.Err()
}
