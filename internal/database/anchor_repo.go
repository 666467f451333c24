package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/diegoclair/movie-club-bot/internal/domain/contract"
	"github.com/diegoclair/movie-club-bot/internal/domain/entity"
)

type anchorRepo struct {
	db dbConn
}

func newAnchorRepo(db dbConn) contract.AnchorRepo {
	return &anchorRepo{db: db}
}

func (r *anchorRepo) Get() (*entity.Anchor, error) {
	query := `
		SELECT start_date, start_position, updated_at
		FROM rotation_anchor
		WHERE id = 1
	`

	anchor := &entity.Anchor{}
	var startDate string
	err := r.db.QueryRow(query).Scan(
		&startDate,
		&anchor.StartPosition,
		&anchor.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get rotation anchor: %w", err)
	}

	anchor.StartDate, err = parseDate(startDate)
	if err != nil {
		return nil, err
	}

	return anchor, nil
}

// Save upserts the singleton anchor row
func (r *anchorRepo) Save(anchor *entity.Anchor) error {
	query := `
		INSERT INTO rotation_anchor (id, start_date, start_position, updated_at)
		VALUES (1, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			start_date = excluded.start_date,
			start_position = excluded.start_position,
			updated_at = excluded.updated_at
	`

	if anchor.UpdatedAt.IsZero() {
		anchor.UpdatedAt = time.Now().UTC()
	}

	_, err := r.db.Exec(query,
		formatDate(anchor.StartDate),
		anchor.StartPosition,
		anchor.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save rotation anchor: %w", err)
	}

	return nil
}
