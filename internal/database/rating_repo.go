package database

import (
	"database/sql"
	"fmt"

	"github.com/diegoclair/movie-club-bot/internal/domain/contract"
	"github.com/diegoclair/movie-club-bot/internal/domain/entity"
)

const ratingSelect = `
	SELECT r.id, r.pick_id, r.rater_id, r.value, r.review, r.rated_at,
		m.id, m.handle, m.display_name, m.position, m.created_at
	FROM ratings r
	JOIN members m ON m.id = r.rater_id
`

type ratingRepo struct {
	db dbConn
}

func newRatingRepo(db dbConn) contract.RatingRepo {
	return &ratingRepo{db: db}
}

func scanRating(row rowScanner) (*entity.Rating, error) {
	rating := &entity.Rating{Rater: &entity.Member{}}
	var position sql.NullInt64
	err := row.Scan(
		&rating.ID,
		&rating.PickID,
		&rating.RaterID,
		&rating.Value,
		&rating.Review,
		&rating.RatedAt,
		&rating.Rater.ID,
		&rating.Rater.Handle,
		&rating.Rater.DisplayName,
		&position,
		&rating.Rater.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	rating.Rater.Position = intPtr(position)
	rating.RatedAt = naiveTime(rating.RatedAt)
	return rating, nil
}

// Upsert records the rater's rating for a pick, replacing an earlier one
func (r *ratingRepo) Upsert(rating *entity.Rating) error {
	query := `
		INSERT INTO ratings (pick_id, rater_id, value, review, rated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(rater_id, pick_id) DO UPDATE SET
			value = excluded.value,
			review = excluded.review,
			rated_at = excluded.rated_at
		RETURNING id
	`

	err := r.db.QueryRow(query,
		rating.PickID,
		rating.RaterID,
		rating.Value,
		rating.Review,
		rating.RatedAt,
	).Scan(&rating.ID)
	if err != nil {
		return fmt.Errorf("failed to upsert rating: %w", err)
	}

	return nil
}

func (r *ratingRepo) Get(raterID, pickID int64) (*entity.Rating, error) {
	query := ratingSelect + ` WHERE r.rater_id = ? AND r.pick_id = ?`

	rating, err := scanRating(r.db.QueryRow(query, raterID, pickID))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get rating: %w", err)
	}
	return rating, nil
}

func (r *ratingRepo) Delete(raterID, pickID int64) (int64, error) {
	query := `DELETE FROM ratings WHERE rater_id = ? AND pick_id = ?`

	result, err := r.db.Exec(query, raterID, pickID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete rating: %w", err)
	}

	return result.RowsAffected()
}

func (r *ratingRepo) list(query string, args ...interface{}) ([]*entity.Rating, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get ratings: %w", err)
	}
	defer rows.Close()

	var ratings []*entity.Rating
	for rows.Next() {
		rating, err := scanRating(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan rating: %w", err)
		}
		ratings = append(ratings, rating)
	}

	return ratings, rows.Err()
}

func (r *ratingRepo) ListByPick(pickID int64) ([]*entity.Rating, error) {
	return r.list(ratingSelect+` WHERE r.pick_id = ? ORDER BY r.value DESC, r.rated_at ASC`, pickID)
}

func (r *ratingRepo) ListRecent(limit int) ([]*entity.Rating, error) {
	return r.list(ratingSelect+` ORDER BY r.rated_at DESC, r.id DESC LIMIT ?`, limit)
}

func (r *ratingRepo) Summary(pickID int64) (*entity.RatingSummary, error) {
	query := `SELECT COALESCE(AVG(value), 0), COUNT(*) FROM ratings WHERE pick_id = ?`

	summary := &entity.RatingSummary{PickID: pickID}
	err := r.db.QueryRow(query, pickID).Scan(&summary.Average, &summary.Count)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize ratings: %w", err)
	}

	return summary, nil
}

// TopRated ranks picks with at least one rating by average, then by count
func (r *ratingRepo) TopRated(limit int) ([]*entity.RatedPick, error) {
	query := `
		SELECT p.id, p.member_id, p.title, p.year, p.external_id, p.details, p.pick_date,
			p.period_start, p.period_end,
			m.id, m.handle, m.display_name, m.position, m.created_at,
			AVG(r.value) AS average, COUNT(r.id) AS total
		FROM picks p
		JOIN members m ON m.id = p.member_id
		JOIN ratings r ON r.pick_id = p.id
		GROUP BY p.id
		HAVING COUNT(r.id) >= 1
		ORDER BY average DESC, total DESC, p.id ASC
		LIMIT ?
	`

	rows, err := r.db.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get top rated picks: %w", err)
	}
	defer rows.Close()

	var rated []*entity.RatedPick
	for rows.Next() {
		item := &entity.RatedPick{}
		pick, err := scanPick(rows, &item.Average, &item.Count)
		if err != nil {
			return nil, fmt.Errorf("failed to scan top rated pick: %w", err)
		}
		item.Pick = pick
		rated = append(rated, item)
	}

	return rated, rows.Err()
}

func (r *ratingRepo) StatsByRater(raterID int64) (*entity.RaterStats, error) {
	query := `
		SELECT COUNT(*), COALESCE(AVG(value), 0), COALESCE(MIN(value), 0), COALESCE(MAX(value), 0)
		FROM ratings
		WHERE rater_id = ?
	`

	stats := &entity.RaterStats{}
	err := r.db.QueryRow(query, raterID).Scan(&stats.Count, &stats.Average, &stats.Min, &stats.Max)
	if err != nil {
		return nil, fmt.Errorf("failed to get rater stats: %w", err)
	}

	return stats, nil
}
