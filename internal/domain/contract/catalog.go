package contract

import (
	"context"

	"github.com/diegoclair/movie-club-bot/internal/domain/entity"
)

//go:generate go run go.uber.org/mock/mockgen -source=catalog.go -destination=../../../mocks/catalog.go -package=mocks

// Catalog looks up movie details. Callers must tolerate failures.
type Catalog interface {
	Search(ctx context.Context, title string, year *int) (*entity.MovieDetails, error)
}
