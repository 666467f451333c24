package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/diegoclair/movie-club-bot/internal/domain"
	"github.com/diegoclair/movie-club-bot/internal/domain/contract"
	"github.com/diegoclair/movie-club-bot/internal/domain/entity"
	"github.com/rs/zerolog/log"
)

const maxReviewLength = 1000

type ratingService struct {
	*service
}

func newRatings(svc *service) *ratingService {
	return &ratingService{service: svc}
}

// Rate stores the rater's score for a pick, replacing an earlier one
func (s *ratingService) Rate(ctx context.Context, raterHandle string, pickID int64, value float64, review string) (*entity.Rating, error) {
	// written this way so NaN is rejected too
	if !(value >= domain.MinRating && value <= domain.MaxRating) {
		return nil, domain.OutOfRange(fmt.Sprintf("rating %g", value), domain.MinRating, domain.MaxRating)
	}
	review = strings.TrimSpace(review)
	if len(review) > maxReviewLength {
		return nil, domain.InvalidInput(fmt.Sprintf("review must be at most %d characters", maxReviewLength))
	}

	now := s.now()
	var rating *entity.Rating

	err := s.write(ctx, func(tx contract.DataManager) error {
		rater, err := tx.Member().GetByHandle(raterHandle)
		if err != nil {
			return fmt.Errorf("failed to get member: %w", err)
		}
		if rater == nil {
			return domain.NotFound("member", raterHandle)
		}
		if err := pickExists(tx, pickID); err != nil {
			return err
		}

		rating = &entity.Rating{
			PickID:  pickID,
			RaterID: rater.ID,
			Rater:   rater,
			Value:   value,
			Review:  review,
			RatedAt: now,
		}
		if err := tx.Rating().Upsert(rating); err != nil {
			return fmt.Errorf("failed to save rating: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.metrics.RatingRecorded()
	log.Info().Str("rater", raterHandle).Int64("pick_id", pickID).Float64("value", value).Msg("pick rated")
	return rating, nil
}

func pickExists(dm contract.DataManager, pickID int64) error {
	pick, err := dm.Pick().GetByID(pickID)
	if err != nil {
		return fmt.Errorf("failed to get pick: %w", err)
	}
	if pick == nil {
		return domain.NotFound("pick", strconv.FormatInt(pickID, 10))
	}
	return nil
}

func (s *ratingService) DeleteRating(ctx context.Context, raterHandle string, pickID int64) error {
	return s.write(ctx, func(tx contract.DataManager) error {
		rater, err := tx.Member().GetByHandle(raterHandle)
		if err != nil {
			return fmt.Errorf("failed to get member: %w", err)
		}
		if rater == nil {
			return domain.NotFound("member", raterHandle)
		}

		n, err := tx.Rating().Delete(rater.ID, pickID)
		if err != nil {
			return fmt.Errorf("failed to delete rating: %w", err)
		}
		if n == 0 {
			return domain.NotFound("rating", raterHandle)
		}
		return nil
	})
}

func (s *ratingService) RatingsFor(ctx context.Context, pickID int64) ([]*entity.Rating, error) {
	if err := pickExists(s.dm, pickID); err != nil {
		return nil, err
	}
	ratings, err := s.dm.Rating().ListByPick(pickID)
	if err != nil {
		return nil, fmt.Errorf("failed to list ratings: %w", err)
	}
	return ratings, nil
}

func (s *ratingService) AverageRating(ctx context.Context, pickID int64) (*entity.RatingSummary, error) {
	if err := pickExists(s.dm, pickID); err != nil {
		return nil, err
	}
	summary, err := s.dm.Rating().Summary(pickID)
	if err != nil {
		return nil, fmt.Errorf("failed to summarise ratings: %w", err)
	}
	return summary, nil
}

func (s *ratingService) TopRated(ctx context.Context, limit int) ([]*entity.RatedPick, error) {
	if limit <= 0 {
		limit = domain.DefaultListLimit
	}
	top, err := s.dm.Rating().TopRated(limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list top rated picks: %w", err)
	}
	return top, nil
}

func (s *ratingService) RecentRatings(ctx context.Context, limit int) ([]*entity.Rating, error) {
	if limit <= 0 {
		limit = domain.DefaultListLimit
	}
	ratings, err := s.dm.Rating().ListRecent(limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent ratings: %w", err)
	}
	return ratings, nil
}

func (s *ratingService) RaterStats(ctx context.Context, handle string) (*entity.RaterStats, error) {
	member, err := s.dm.Member().GetByHandle(handle)
	if err != nil {
		return nil, fmt.Errorf("failed to get member: %w", err)
	}
	if member == nil {
		return nil, domain.NotFound("member", handle)
	}

	stats, err := s.dm.Rating().StatsByRater(member.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get rater stats: %w", err)
	}
	stats.Member = member
	return stats, nil
}
