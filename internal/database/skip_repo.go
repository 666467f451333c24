package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/diegoclair/movie-club-bot/internal/domain/contract"
	"github.com/diegoclair/movie-club-bot/internal/domain/entity"
)

const skipSelect = `
	SELECT s.id, s.member_id, s.period_start, s.period_end, s.reason, s.skipped_by, s.skipped_at,
		m.id, m.handle, m.display_name, m.position, m.created_at
	FROM rotation_skips s
	JOIN members m ON m.id = s.member_id
`

type skipRepo struct {
	db dbConn
}

func newSkipRepo(db dbConn) contract.SkipRepo {
	return &skipRepo{db: db}
}

func scanSkip(row rowScanner) (*entity.Skip, error) {
	skip := &entity.Skip{Member: &entity.Member{}}
	var start, end string
	var position sql.NullInt64
	err := row.Scan(
		&skip.ID,
		&skip.MemberID,
		&start,
		&end,
		&skip.Reason,
		&skip.SkippedBy,
		&skip.SkippedAt,
		&skip.Member.ID,
		&skip.Member.Handle,
		&skip.Member.DisplayName,
		&position,
		&skip.Member.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	skip.Member.Position = intPtr(position)
	skip.SkippedAt = naiveTime(skip.SkippedAt)
	if skip.PeriodStart, err = parseDate(start); err != nil {
		return nil, err
	}
	if skip.PeriodEnd, err = parseDate(end); err != nil {
		return nil, err
	}
	return skip, nil
}

func (r *skipRepo) Create(skip *entity.Skip) error {
	query := `
		INSERT INTO rotation_skips (member_id, period_start, period_end, reason, skipped_by, skipped_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.Exec(query,
		skip.MemberID,
		formatDate(skip.PeriodStart),
		formatDate(skip.PeriodEnd),
		skip.Reason,
		skip.SkippedBy,
		skip.SkippedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create skip: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	skip.ID = id
	return nil
}

func (r *skipRepo) getOne(query string, args ...interface{}) (*entity.Skip, error) {
	skip, err := scanSkip(r.db.QueryRow(query, args...))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get skip: %w", err)
	}
	return skip, nil
}

func (r *skipRepo) Get(memberID int64, start, end time.Time) (*entity.Skip, error) {
	query := skipSelect + `
		WHERE s.member_id = ? AND s.period_start = ? AND s.period_end = ?
	`
	return r.getOne(query, memberID, formatDate(start), formatDate(end))
}

func (r *skipRepo) ListAll() ([]*entity.Skip, error) {
	rows, err := r.db.Query(skipSelect + ` ORDER BY s.period_start ASC, s.id ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to get skips: %w", err)
	}
	defer rows.Close()

	var skips []*entity.Skip
	for rows.Next() {
		skip, err := scanSkip(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan skip: %w", err)
		}
		skips = append(skips, skip)
	}

	return skips, rows.Err()
}

// NextUpcomingByMember returns the earliest skip of the member whose period
// has not yet elapsed at now
func (r *skipRepo) NextUpcomingByMember(memberID int64, now time.Time) (*entity.Skip, error) {
	query := skipSelect + `
		WHERE s.member_id = ? AND s.period_end > ?
		ORDER BY s.period_start ASC
		LIMIT 1
	`
	return r.getOne(query, memberID, formatDate(now))
}

func (r *skipRepo) Delete(id int64) error {
	query := `DELETE FROM rotation_skips WHERE id = ?`

	_, err := r.db.Exec(query, id)
	if err != nil {
		return fmt.Errorf("failed to delete skip: %w", err)
	}

	return nil
}

// DeleteFromByMember drops the member's skips starting on or after from
func (r *skipRepo) DeleteFromByMember(memberID int64, from time.Time) (int64, error) {
	query := `DELETE FROM rotation_skips WHERE member_id = ? AND period_start >= ?`

	result, err := r.db.Exec(query, memberID, formatDate(from))
	if err != nil {
		return 0, fmt.Errorf("failed to delete member skips: %w", err)
	}

	return result.RowsAffected()
}
