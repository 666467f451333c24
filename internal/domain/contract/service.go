package contract

import (
	"context"
	"time"

	"github.com/diegoclair/movie-club-bot/internal/domain"
	"github.com/diegoclair/movie-club-bot/internal/domain/entity"
)

//go:generate go run go.uber.org/mock/mockgen -source=service.go -destination=../../../mocks/service.go -package=mocks

type RosterService interface {
	SetupRoster(ctx context.Context, members []entity.MemberInput) ([]*entity.Member, error)
	AddMember(ctx context.Context, handle, displayName string) (*entity.Member, error)
	RemoveMember(ctx context.Context, handle string) (*entity.RemovalResult, error)
	ReactivateMember(ctx context.Context, handle string, position *int) (*entity.Member, error)
	SwapMembers(ctx context.Context, handleA, handleB string) error
	ReorderMembers(ctx context.Context, handles []string, allowPartial bool) ([]*entity.Member, error)
	ListMembers(ctx context.Context) (active, inactive []*entity.Member, err error)
}

type RotationService interface {
	SetRotationStart(ctx context.Context, start time.Time) error
	CurrentPicker(ctx context.Context) (*entity.Turn, error)
	NextPicker(ctx context.Context) (*entity.Turn, error)
	Schedule(ctx context.Context, k int) ([]*entity.Turn, error)
	Skip(ctx context.Context, target domain.SkipTarget, skippedBy, reason string) (*entity.SkipResult, error)
	UndoSkip(ctx context.Context, handle string) (*entity.Skip, error)
	ListSkips(ctx context.Context) ([]*entity.Skip, error)
}

type PickService interface {
	CanRegister(ctx context.Context, handle string) (*entity.Eligibility, error)
	RegisterPick(ctx context.Context, handle string, selection entity.Selection, earlyAccess bool) (*entity.Pick, error)
	ForcePick(ctx context.Context, handle string, selection entity.Selection) (*entity.Pick, error)
	AddHistoricalPick(ctx context.Context, handle string, selection entity.Selection, pickDate time.Time) (*entity.Pick, error)
	SearchMovie(ctx context.Context, title string, year *int) (*entity.MovieDetails, error)
	DeletePick(ctx context.Context, pickID int64) error
	RecentPicks(ctx context.Context, limit int) ([]*entity.Pick, error)
	MemberPicks(ctx context.Context, handle string) ([]*entity.Pick, error)
}

type RatingService interface {
	Rate(ctx context.Context, raterHandle string, pickID int64, value float64, review string) (*entity.Rating, error)
	DeleteRating(ctx context.Context, raterHandle string, pickID int64) error
	RatingsFor(ctx context.Context, pickID int64) ([]*entity.Rating, error)
	AverageRating(ctx context.Context, pickID int64) (*entity.RatingSummary, error)
	TopRated(ctx context.Context, limit int) ([]*entity.RatedPick, error)
	RecentRatings(ctx context.Context, limit int) ([]*entity.Rating, error)
	RaterStats(ctx context.Context, handle string) (*entity.RaterStats, error)
}

// Confirmer gates destructive commands behind an explicit confirmation
type Confirmer interface {
	Request(key string, action func(ctx context.Context) (string, error)) time.Time
	Confirm(ctx context.Context, key string) (string, error)
}
