package contract

import (
	"context"
	"time"

	"github.com/diegoclair/movie-club-bot/internal/domain/entity"
)

//go:generate go run go.uber.org/mock/mockgen -source=repo.go -destination=../../../mocks/repo.go -package=mocks

// DataManager aggregates all repository interfaces
type DataManager interface {
	WithTransaction(ctx context.Context, fn func(dm DataManager) error) error
	Member() MemberRepo
	Anchor() AnchorRepo
	Skip() SkipRepo
	Pick() PickRepo
	Rating() RatingRepo
}

// MemberRepo defines the contract for member repository
type MemberRepo interface {
	Create(member *entity.Member) error
	GetByID(id int64) (*entity.Member, error)
	GetByHandle(handle string) (*entity.Member, error)
	GetByDisplayName(displayName string) (*entity.Member, error)
	ListActive() ([]*entity.Member, error)
	ListInactive() ([]*entity.Member, error)
	UpdateDisplayName(id int64, displayName string) error
	SetPosition(id int64, position *int) error
	ShiftPositions(from, delta int) error
	ClearPositions() error
}

// AnchorRepo stores the singleton rotation anchor
type AnchorRepo interface {
	Get() (*entity.Anchor, error)
	Save(anchor *entity.Anchor) error
}

// SkipRepo defines the contract for the exception store
type SkipRepo interface {
	Create(skip *entity.Skip) error
	Get(memberID int64, start, end time.Time) (*entity.Skip, error)
	ListAll() ([]*entity.Skip, error)
	NextUpcomingByMember(memberID int64, now time.Time) (*entity.Skip, error)
	Delete(id int64) error
	DeleteFromByMember(memberID int64, from time.Time) (int64, error)
}

// PickRepo defines the contract for the pick registry
type PickRepo interface {
	Upsert(pick *entity.Pick) error
	GetByID(id int64) (*entity.Pick, error)
	GetByMemberAndPeriod(memberID int64, start, end time.Time) (*entity.Pick, error)
	DeleteByMemberAndPeriod(memberID int64, start, end time.Time) (int64, error)
	UpdatePeriod(id int64, start, end time.Time) error
	Delete(id int64) error
	ListRecent(limit int) ([]*entity.Pick, error)
	ListByMember(memberID int64) ([]*entity.Pick, error)
}

// RatingRepo defines the contract for the rating ledger
type RatingRepo interface {
	Upsert(rating *entity.Rating) error
	Get(raterID, pickID int64) (*entity.Rating, error)
	Delete(raterID, pickID int64) (int64, error)
	ListByPick(pickID int64) ([]*entity.Rating, error)
	ListRecent(limit int) ([]*entity.Rating, error)
	Summary(pickID int64) (*entity.RatingSummary, error)
	TopRated(limit int) ([]*entity.RatedPick, error)
	StatsByRater(raterID int64) (*entity.RaterStats, error)
}
