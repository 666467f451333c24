package database

import (
	"database/sql"
	"fmt"

	"github.com/diegoclair/movie-club-bot/internal/domain/contract"
	"github.com/diegoclair/movie-club-bot/internal/domain/entity"
)

const memberColumns = `id, handle, display_name, position, created_at`

type memberRepo struct {
	db dbConn
}

func newMemberRepo(db dbConn) contract.MemberRepo {
	return &memberRepo{db: db}
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanMember(row rowScanner) (*entity.Member, error) {
	member := &entity.Member{}
	var position sql.NullInt64
	err := row.Scan(
		&member.ID,
		&member.Handle,
		&member.DisplayName,
		&position,
		&member.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	member.Position = intPtr(position)
	return member, nil
}

func (r *memberRepo) Create(member *entity.Member) error {
	query := `
		INSERT INTO members (handle, display_name, position)
		VALUES (?, ?, ?)
	`

	result, err := r.db.Exec(query,
		member.Handle,
		member.DisplayName,
		nullableInt(member.Position),
	)
	if err != nil {
		return fmt.Errorf("failed to create member: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	member.ID = id
	return nil
}

func (r *memberRepo) getOne(query string, arg interface{}) (*entity.Member, error) {
	member, err := scanMember(r.db.QueryRow(query, arg))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get member: %w", err)
	}
	return member, nil
}

func (r *memberRepo) GetByID(id int64) (*entity.Member, error) {
	return r.getOne(`SELECT `+memberColumns+` FROM members WHERE id = ?`, id)
}

func (r *memberRepo) GetByHandle(handle string) (*entity.Member, error) {
	return r.getOne(`SELECT `+memberColumns+` FROM members WHERE handle = ?`, handle)
}

func (r *memberRepo) GetByDisplayName(displayName string) (*entity.Member, error) {
	return r.getOne(`SELECT `+memberColumns+` FROM members WHERE display_name = ? COLLATE NOCASE`, displayName)
}

func (r *memberRepo) list(query string) ([]*entity.Member, error) {
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to get members: %w", err)
	}
	defer rows.Close()

	var members []*entity.Member
	for rows.Next() {
		member, err := scanMember(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan member: %w", err)
		}
		members = append(members, member)
	}

	return members, rows.Err()
}

func (r *memberRepo) ListActive() ([]*entity.Member, error) {
	return r.list(`
		SELECT ` + memberColumns + `
		FROM members
		WHERE position IS NOT NULL
		ORDER BY position ASC
	`)
}

func (r *memberRepo) ListInactive() ([]*entity.Member, error) {
	return r.list(`
		SELECT ` + memberColumns + `
		FROM members
		WHERE position IS NULL
		ORDER BY display_name ASC
	`)
}

func (r *memberRepo) UpdateDisplayName(id int64, displayName string) error {
	query := `UPDATE members SET display_name = ? WHERE id = ?`

	_, err := r.db.Exec(query, displayName, id)
	if err != nil {
		return fmt.Errorf("failed to update display name: %w", err)
	}

	return nil
}

func (r *memberRepo) SetPosition(id int64, position *int) error {
	query := `UPDATE members SET position = ? WHERE id = ?`

	_, err := r.db.Exec(query, nullableInt(position), id)
	if err != nil {
		return fmt.Errorf("failed to set position: %w", err)
	}

	return nil
}

// ShiftPositions moves every position >= from by delta. SQLite checks the
// unique position index row by row, so rows are parked on negative values
// first and then moved to their final slot.
func (r *memberRepo) ShiftPositions(from, delta int) error {
	if delta == 0 {
		return nil
	}

	park := `UPDATE members SET position = -position - 1 WHERE position >= ?`
	if _, err := r.db.Exec(park, from); err != nil {
		return fmt.Errorf("failed to park positions: %w", err)
	}

	settle := `UPDATE members SET position = -position - 1 + ? WHERE position < 0`
	if _, err := r.db.Exec(settle, delta); err != nil {
		return fmt.Errorf("failed to shift positions: %w", err)
	}

	return nil
}

func (r *memberRepo) ClearPositions() error {
	query := `UPDATE members SET position = NULL WHERE position IS NOT NULL`

	_, err := r.db.Exec(query)
	if err != nil {
		return fmt.Errorf("failed to clear positions: %w", err)
	}

	return nil
}
