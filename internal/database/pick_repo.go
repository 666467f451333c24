package database

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/diegoclair/movie-club-bot/internal/domain/contract"
	"github.com/diegoclair/movie-club-bot/internal/domain/entity"
)

const pickSelect = `
	SELECT p.id, p.member_id, p.title, p.year, p.external_id, p.details, p.pick_date,
		p.period_start, p.period_end,
		m.id, m.handle, m.display_name, m.position, m.created_at
	FROM picks p
	JOIN members m ON m.id = p.member_id
`

type pickRepo struct {
	db dbConn
}

func newPickRepo(db dbConn) contract.PickRepo {
	return &pickRepo{db: db}
}

func scanPick(row rowScanner, extra ...interface{}) (*entity.Pick, error) {
	pick := &entity.Pick{Member: &entity.Member{}}
	var year, position sql.NullInt64
	var detailsJSON, start, end string

	dest := []interface{}{
		&pick.ID,
		&pick.MemberID,
		&pick.Title,
		&year,
		&pick.ExternalID,
		&detailsJSON,
		&pick.PickDate,
		&start,
		&end,
		&pick.Member.ID,
		&pick.Member.Handle,
		&pick.Member.DisplayName,
		&position,
		&pick.Member.CreatedAt,
	}
	if err := row.Scan(append(dest, extra...)...); err != nil {
		return nil, err
	}

	pick.Year = intPtr(year)
	pick.Member.Position = intPtr(position)
	pick.PickDate = naiveTime(pick.PickDate)

	// Convert JSON to MovieDetails
	if err := json.Unmarshal([]byte(detailsJSON), &pick.Details); err != nil {
		return nil, fmt.Errorf("failed to unmarshal pick details: %w", err)
	}

	var err error
	if pick.PeriodStart, err = parseDate(start); err != nil {
		return nil, err
	}
	if pick.PeriodEnd, err = parseDate(end); err != nil {
		return nil, err
	}
	return pick, nil
}

// Upsert inserts the pick or, when the member already picked for the same
// period, replaces that pick's selection in place
func (r *pickRepo) Upsert(pick *entity.Pick) error {
	query := `
		INSERT INTO picks (member_id, title, year, external_id, details, pick_date, period_start, period_end)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(member_id, period_start, period_end) DO UPDATE SET
			title = excluded.title,
			year = excluded.year,
			external_id = excluded.external_id,
			details = excluded.details,
			pick_date = excluded.pick_date
		RETURNING id
	`

	// Convert MovieDetails to JSON for storage
	detailsJSON, err := json.Marshal(pick.Details)
	if err != nil {
		return fmt.Errorf("failed to marshal pick details: %w", err)
	}

	err = r.db.QueryRow(query,
		pick.MemberID,
		pick.Title,
		nullableInt(pick.Year),
		pick.ExternalID,
		string(detailsJSON),
		pick.PickDate,
		formatDate(pick.PeriodStart),
		formatDate(pick.PeriodEnd),
	).Scan(&pick.ID)
	if err != nil {
		return fmt.Errorf("failed to upsert pick: %w", err)
	}

	return nil
}

func (r *pickRepo) getOne(query string, args ...interface{}) (*entity.Pick, error) {
	pick, err := scanPick(r.db.QueryRow(query, args...))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get pick: %w", err)
	}
	return pick, nil
}

func (r *pickRepo) GetByID(id int64) (*entity.Pick, error) {
	return r.getOne(pickSelect+` WHERE p.id = ?`, id)
}

func (r *pickRepo) GetByMemberAndPeriod(memberID int64, start, end time.Time) (*entity.Pick, error) {
	query := pickSelect + `
		WHERE p.member_id = ? AND p.period_start = ? AND p.period_end = ?
	`
	return r.getOne(query, memberID, formatDate(start), formatDate(end))
}

func (r *pickRepo) DeleteByMemberAndPeriod(memberID int64, start, end time.Time) (int64, error) {
	query := `DELETE FROM picks WHERE member_id = ? AND period_start = ? AND period_end = ?`

	result, err := r.db.Exec(query, memberID, formatDate(start), formatDate(end))
	if err != nil {
		return 0, fmt.Errorf("failed to delete pick: %w", err)
	}

	return result.RowsAffected()
}

// UpdatePeriod moves a pick to another period, keeping its ratings
func (r *pickRepo) UpdatePeriod(id int64, start, end time.Time) error {
	query := `UPDATE picks SET period_start = ?, period_end = ? WHERE id = ?`

	_, err := r.db.Exec(query, formatDate(start), formatDate(end), id)
	if err != nil {
		return fmt.Errorf("failed to update pick period: %w", err)
	}

	return nil
}

func (r *pickRepo) Delete(id int64) error {
	query := `DELETE FROM picks WHERE id = ?`

	_, err := r.db.Exec(query, id)
	if err != nil {
		return fmt.Errorf("failed to delete pick: %w", err)
	}

	return nil
}

func (r *pickRepo) list(query string, args ...interface{}) ([]*entity.Pick, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get picks: %w", err)
	}
	defer rows.Close()

	var picks []*entity.Pick
	for rows.Next() {
		pick, err := scanPick(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan pick: %w", err)
		}
		picks = append(picks, pick)
	}

	return picks, rows.Err()
}

func (r *pickRepo) ListRecent(limit int) ([]*entity.Pick, error) {
	return r.list(pickSelect+` ORDER BY p.pick_date DESC, p.id DESC LIMIT ?`, limit)
}

func (r *pickRepo) ListByMember(memberID int64) ([]*entity.Pick, error) {
	return r.list(pickSelect+` WHERE p.member_id = ? ORDER BY p.period_start DESC`, memberID)
}
