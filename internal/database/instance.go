package database

import (
	"context"
	"fmt"

	"github.com/diegoclair/movie-club-bot/internal/domain/contract"
)

// instance implements DataManager interface
type instance struct {
	db         *DB
	memberRepo contract.MemberRepo
	anchorRepo contract.AnchorRepo
	skipRepo   contract.SkipRepo
	pickRepo   contract.PickRepo
	ratingRepo contract.RatingRepo
}

// NewInstance creates a new database instance with all repositories
func NewInstance(db *DB) contract.DataManager {
	instance := repoInstancesWithConn(db.conn)
	instance.db = db
	return instance
}

// repoInstancesWithConn creates repository instances with custom dbConn
func repoInstancesWithConn(db dbConn) *instance {
	return &instance{
		memberRepo: newMemberRepo(db),
		anchorRepo: newAnchorRepo(db),
		skipRepo:   newSkipRepo(db),
		pickRepo:   newPickRepo(db),
		ratingRepo: newRatingRepo(db),
	}
}

func (i *instance) Member() contract.MemberRepo {
	return i.memberRepo
}

func (i *instance) Anchor() contract.AnchorRepo {
	return i.anchorRepo
}

func (i *instance) Skip() contract.SkipRepo {
	return i.skipRepo
}

func (i *instance) Pick() contract.PickRepo {
	return i.pickRepo
}

func (i *instance) Rating() contract.RatingRepo {
	return i.ratingRepo
}

// WithTransaction executes a function within a database transaction.
// Nested calls reuse the outer transaction.
func (i *instance) WithTransaction(ctx context.Context, fn func(dm contract.DataManager) error) error {
	if i.db == nil {
		return fn(i)
	}

	tx, err := i.db.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	txInstance := repoInstancesWithConn(tx)
	err = fn(txInstance)
	if err != nil {
		rbErr := tx.Rollback()
		if rbErr != nil {
			return fmt.Errorf("error rolling back transaction: %v, original error: %w", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
