package service

import (
	"context"
	"fmt"
	"time"

	"github.com/diegoclair/movie-club-bot/internal/domain"
	"github.com/diegoclair/movie-club-bot/internal/domain/contract"
	"github.com/diegoclair/movie-club-bot/internal/domain/entity"
	"github.com/rs/zerolog/log"
)

type rotationService struct {
	*service
}

func newRotation(svc *service) *rotationService {
	return &rotationService{service: svc}
}

// SetRotationStart pins the first position of the roster to start
func (s *rotationService) SetRotationStart(ctx context.Context, start time.Time) error {
	anchor := &entity.Anchor{
		StartDate:     domain.DateOf(start),
		StartPosition: 0,
		UpdatedAt:     s.now(),
	}

	err := s.write(ctx, func(tx contract.DataManager) error {
		return tx.Anchor().Save(anchor)
	})
	if err != nil {
		return fmt.Errorf("failed to set rotation start: %w", err)
	}

	log.Info().Str("start", anchor.StartDate.Format(domain.DateLayout)).Msg("rotation start set")
	return nil
}

func (s *rotationService) CurrentPicker(ctx context.Context) (*entity.Turn, error) {
	st, err := s.resolver.load(s.dm)
	if err != nil {
		return nil, err
	}
	_, cur, _, err := s.resolver.current(st, s.now())
	if err != nil {
		return nil, err
	}
	return cur, withPicks(s.dm, cur)
}

func (s *rotationService) NextPicker(ctx context.Context) (*entity.Turn, error) {
	st, err := s.resolver.load(s.dm)
	if err != nil {
		return nil, err
	}
	_, next, err := s.resolver.currentAndNext(st, s.now())
	if err != nil {
		return nil, err
	}
	return next, withPicks(s.dm, next)
}

// Schedule lists k turns starting at the current one. Skipped turns are
// included and flagged.
func (s *rotationService) Schedule(ctx context.Context, k int) ([]*entity.Turn, error) {
	if k <= 0 {
		k = domain.DefaultScheduleLength
	}

	st, err := s.resolver.load(s.dm)
	if err != nil {
		return nil, err
	}
	turns, err := s.resolver.schedule(st, s.now(), k)
	if err != nil {
		return nil, err
	}
	return turns, withPicks(s.dm, turns...)
}

// withPicks attaches the pick registered for each turn that was not skipped
func withPicks(dm contract.DataManager, turns ...*entity.Turn) error {
	for _, t := range turns {
		if t.IsSkipped {
			continue
		}
		pick, err := dm.Pick().GetByMemberAndPeriod(t.Member.ID, t.Period.Start, t.Period.End)
		if err != nil {
			return fmt.Errorf("failed to get turn pick: %w", err)
		}
		t.Pick = pick
	}
	return nil
}

// Skip marks the current or next turn as skipped and drops any pick made for
// it. The following member inherits the same period and the skips and picks
// of later turns move along with them.
func (s *rotationService) Skip(ctx context.Context, target domain.SkipTarget, skippedBy, reason string) (*entity.SkipResult, error) {
	if !target.Valid() {
		return nil, domain.InvalidInput(fmt.Sprintf("skip target must be %q or %q", domain.SkipCurrent, domain.SkipNext))
	}

	now := s.now()
	result := &entity.SkipResult{}

	err := s.write(ctx, func(tx contract.DataManager) error {
		st, err := s.resolver.load(tx)
		if err != nil {
			return err
		}

		up, err := s.resolver.capture(tx, st, now)
		if err != nil {
			return err
		}
		idx := up.tl.cur
		if target == domain.SkipNext {
			idx = up.tl.next
		}
		turn := up.tl.turns[idx]

		existing, err := tx.Skip().Get(turn.Member.ID, turn.Period.Start, turn.Period.End)
		if err != nil {
			return fmt.Errorf("failed to check skip: %w", err)
		}
		if existing != nil {
			return domain.AlreadySkipped(turn.Member.Handle, turn.Period)
		}

		deleted, err := tx.Pick().DeleteByMemberAndPeriod(turn.Member.ID, turn.Period.Start, turn.Period.End)
		if err != nil {
			return fmt.Errorf("failed to delete skipped pick: %w", err)
		}
		result.PickDeleted = deleted > 0

		// later turns move one period earlier; their skips and picks follow
		skip := &entity.Skip{
			MemberID:    turn.Member.ID,
			Member:      turn.Member,
			PeriodStart: turn.Period.Start,
			PeriodEnd:   turn.Period.End,
			Reason:      reason,
			SkippedBy:   skippedBy,
			SkippedAt:   now,
		}
		up.marks[idx] = &mark{turn: turn, skip: skip}
		if err := s.realignFromBase(tx, up); err != nil {
			return err
		}
		result.Skip = skip

		st, err = s.resolver.load(tx)
		if err != nil {
			return err
		}
		result.Current, result.Next, err = s.resolver.currentAndNext(st, now)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.metrics.SkipRecorded(string(target))
	log.Info().
		Str("member", result.Skip.Member.Handle).
		Str("period", result.Skip.Period().String()).
		Str("skipped_by", skippedBy).
		Bool("pick_deleted", result.PickDeleted).
		Msg("rotation period skipped")

	return result, nil
}

// UndoSkip removes the member's earliest skip that has not ended yet and
// gives the turn back its period
func (s *rotationService) UndoSkip(ctx context.Context, handle string) (*entity.Skip, error) {
	now := s.now()
	var undone *entity.Skip

	err := s.write(ctx, func(tx contract.DataManager) error {
		member, err := tx.Member().GetByHandle(handle)
		if err != nil {
			return fmt.Errorf("failed to get member: %w", err)
		}
		if member == nil {
			return domain.NotFound("member", handle)
		}

		skip, err := tx.Skip().NextUpcomingByMember(member.ID, now)
		if err != nil {
			return fmt.Errorf("failed to find skip: %w", err)
		}
		if skip == nil {
			return domain.NotFound("upcoming skip", handle)
		}

		up, err := s.resolver.snapshot(tx, now)
		if err != nil {
			return err
		}

		if err := tx.Skip().Delete(skip.ID); err != nil {
			return fmt.Errorf("failed to delete skip: %w", err)
		}

		// the freed turn takes its period back and later turns move one
		// period later
		if up != nil {
			for i, mk := range up.marks {
				if mk.skip != nil && mk.skip.ID == skip.ID {
					delete(up.marks, i)
					if err := s.realignFromBase(tx, up); err != nil {
						return err
					}
					break
				}
			}
		}
		undone = skip
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info().Str("member", handle).Str("period", undone.Period().String()).Msg("skip undone")
	return undone, nil
}

// realignFromBase re-keys the rows of the running turns after the skipped
// set changed, walking from the first turn of the running period
func (s *rotationService) realignFromBase(tx contract.DataManager, up *upcoming) error {
	first := up.tl.turns[up.base]
	return s.resolver.realign(tx, up, up.base, first.Period.Start, *first.Member.Position)
}

func (s *rotationService) ListSkips(ctx context.Context) ([]*entity.Skip, error) {
	skips, err := s.dm.Skip().ListAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list skips: %w", err)
	}
	return skips, nil
}
