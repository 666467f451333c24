package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/diegoclair/movie-club-bot/internal/domain"
	"github.com/diegoclair/movie-club-bot/internal/domain/contract"
	"github.com/diegoclair/movie-club-bot/internal/domain/entity"
	"github.com/rs/zerolog/log"
)

type pickService struct {
	*service
	catalog contract.Catalog
}

func newPicks(svc *service, catalog contract.Catalog) *pickService {
	return &pickService{service: svc, catalog: catalog}
}

func (s *pickService) earlyWindow() time.Duration {
	return time.Duration(s.opts.EarlyAccessDays) * 24 * time.Hour
}

// evaluate decides whether member may pick at now given the current and
// next turns
func (s *pickService) evaluate(member *entity.Member, cur, next *entity.Turn, now time.Time) *entity.Eligibility {
	window := s.earlyWindow()

	if cur.Member.ID == member.ID {
		if cur.Period.Contains(now) {
			return &entity.Eligibility{
				Allowed: true,
				Reason:  entity.ReasonCurrentPicker,
				Message: fmt.Sprintf("It's your turn until %s", cur.Period.End.Format(domain.DateLayout)),
				Turn:    cur,
			}
		}
		opens := cur.Period.Start.Add(-window)
		if !now.Before(opens) {
			return &entity.Eligibility{
				Allowed:     true,
				EarlyAccess: true,
				Reason:      entity.ReasonEarlyAccess,
				Message:     fmt.Sprintf("Early access: your period starts in %d days", domain.DaysUntil(now, cur.Period.Start)),
				Turn:        cur,
			}
		}
		return &entity.Eligibility{
			Reason:  entity.ReasonNotStarted,
			Message: fmt.Sprintf("The rotation starts on %s, early access opens in %d days", cur.Period.Start.Format(domain.DateLayout), domain.DaysUntil(now, opens)),
			Turn:    cur,
		}
	}

	if next.Member.ID == member.ID {
		opens := next.Period.Start.Add(-window)
		if !now.Before(opens) && now.Before(next.Period.Start) {
			return &entity.Eligibility{
				Allowed:     true,
				EarlyAccess: true,
				Reason:      entity.ReasonEarlyAccess,
				Message:     fmt.Sprintf("Early access: your period starts in %d days", domain.DaysUntil(now, next.Period.Start)),
				Turn:        next,
			}
		}
		return &entity.Eligibility{
			Reason:  entity.ReasonEarlyAccessWait,
			Message: fmt.Sprintf("You're next. Early access opens in %d days", domain.DaysUntil(now, opens)),
			Turn:    next,
		}
	}

	return &entity.Eligibility{
		Reason:  entity.ReasonNotYourTurn,
		Message: fmt.Sprintf("It's %s's turn right now", cur.Member.DisplayName),
		Turn:    cur,
	}
}

func (s *pickService) eligibility(dm contract.DataManager, handle string, now time.Time) (*entity.Eligibility, error) {
	member, err := dm.Member().GetByHandle(handle)
	if err != nil {
		return nil, fmt.Errorf("failed to get member: %w", err)
	}
	if member == nil || !member.IsActive() {
		return &entity.Eligibility{
			Reason:  entity.ReasonNotInRotation,
			Message: "You're not in the rotation",
		}, nil
	}

	st, err := s.resolver.load(dm)
	if err != nil {
		return nil, err
	}
	cur, next, err := s.resolver.currentAndNext(st, now)
	if err != nil {
		return nil, err
	}
	return s.evaluate(member, cur, next, now), nil
}

func (s *pickService) CanRegister(ctx context.Context, handle string) (*entity.Eligibility, error) {
	return s.eligibility(s.dm, handle, s.now())
}

// RegisterPick records the member's selection for their period, replacing an
// earlier pick for the same period.
func (s *pickService) RegisterPick(ctx context.Context, handle string, selection entity.Selection, earlyAccess bool) (*entity.Pick, error) {
	if err := cleanSelection(&selection); err != nil {
		return nil, err
	}

	details := s.enrich(ctx, selection)
	now := s.now()
	var pick *entity.Pick

	err := s.write(ctx, func(tx contract.DataManager) error {
		el, err := s.eligibility(tx, handle, now)
		if err != nil {
			return err
		}
		if !el.Allowed {
			return domain.NotEligible(handle, el.Message)
		}
		if el.EarlyAccess != earlyAccess {
			if earlyAccess {
				return domain.NotEligible(handle, "it's already your turn, register without early access")
			}
			return domain.NotEligible(handle, "your period hasn't started, register with early access")
		}

		pick = newPick(el.Turn.Member, el.Turn.Period, selection, details, now)
		if err := tx.Pick().Upsert(pick); err != nil {
			return fmt.Errorf("failed to save pick: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.metrics.PickRegistered(earlyAccess)
	log.Info().
		Str("member", handle).
		Str("title", pick.Title).
		Str("period", pick.Period().String()).
		Bool("early_access", earlyAccess).
		Msg("pick registered")
	return pick, nil
}

// ForcePick registers a selection on behalf of the current or next picker,
// bypassing the early access window
func (s *pickService) ForcePick(ctx context.Context, handle string, selection entity.Selection) (*entity.Pick, error) {
	if err := cleanSelection(&selection); err != nil {
		return nil, err
	}

	details := s.enrich(ctx, selection)
	now := s.now()
	var pick *entity.Pick

	err := s.write(ctx, func(tx contract.DataManager) error {
		member, err := tx.Member().GetByHandle(handle)
		if err != nil {
			return fmt.Errorf("failed to get member: %w", err)
		}
		if member == nil || !member.IsActive() {
			return domain.NotFound("active member", handle)
		}

		st, err := s.resolver.load(tx)
		if err != nil {
			return err
		}
		cur, next, err := s.resolver.currentAndNext(st, now)
		if err != nil {
			return err
		}

		var turn *entity.Turn
		switch member.ID {
		case cur.Member.ID:
			turn = cur
		case next.Member.ID:
			turn = next
		default:
			return domain.NotEligible(handle, "only the current or next picker can get a forced pick, add it as a historical pick instead")
		}

		pick = newPick(turn.Member, turn.Period, selection, details, now)
		if err := tx.Pick().Upsert(pick); err != nil {
			return fmt.Errorf("failed to save pick: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("member", handle).
		Str("title", pick.Title).
		Str("period", pick.Period().String()).
		Msg("pick forced")
	return pick, nil
}

// AddHistoricalPick records a pick made before the bot tracked the club. The
// period is the one of the rotation grid holding pickDate.
func (s *pickService) AddHistoricalPick(ctx context.Context, handle string, selection entity.Selection, pickDate time.Time) (*entity.Pick, error) {
	if err := cleanSelection(&selection); err != nil {
		return nil, err
	}

	now := s.now()
	pickDate = domain.DateOf(pickDate)
	if pickDate.After(domain.DateOf(now)) {
		return nil, domain.InvalidInput("a historical pick can't be dated in the future")
	}

	details := s.enrich(ctx, selection)
	var pick *entity.Pick

	err := s.write(ctx, func(tx contract.DataManager) error {
		member, err := tx.Member().GetByHandle(handle)
		if err != nil {
			return fmt.Errorf("failed to get member: %w", err)
		}
		if member == nil {
			return domain.NotFound("member", handle)
		}

		anchor, err := tx.Anchor().Get()
		if err != nil {
			return fmt.Errorf("failed to get rotation anchor: %w", err)
		}
		if anchor == nil {
			return domain.ErrRotationNotConfigured
		}

		period := domain.PeriodContaining(anchor.StartDate, s.opts.PeriodDays, pickDate)
		pick = newPick(member, period, selection, details, pickDate)
		if err := tx.Pick().Upsert(pick); err != nil {
			return fmt.Errorf("failed to save pick: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("member", handle).
		Str("title", pick.Title).
		Str("period", pick.Period().String()).
		Msg("historical pick added")
	return pick, nil
}

// SearchMovie looks a title up in the catalog without registering anything
func (s *pickService) SearchMovie(ctx context.Context, title string, year *int) (*entity.MovieDetails, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, domain.InvalidInput("a title is required")
	}
	if s.catalog == nil {
		return nil, domain.InvalidInput("movie search is not configured")
	}

	details, err := s.catalog.Search(ctx, title, year)
	if err != nil {
		return nil, fmt.Errorf("failed to search movie: %w", err)
	}
	if details == nil {
		return nil, domain.NotFound(fmt.Sprintf("movie matching %q", title), "")
	}
	return details, nil
}

func cleanSelection(selection *entity.Selection) error {
	selection.Title = strings.TrimSpace(selection.Title)
	selection.ExternalID = strings.TrimSpace(selection.ExternalID)
	return validateStruct(selection)
}

func newPick(member *entity.Member, period domain.Period, selection entity.Selection, details entity.MovieDetails, pickDate time.Time) *entity.Pick {
	pick := &entity.Pick{
		MemberID:    member.ID,
		Member:      member,
		Title:       selection.Title,
		Year:        selection.Year,
		ExternalID:  selection.ExternalID,
		Details:     details,
		PickDate:    pickDate,
		PeriodStart: period.Start,
		PeriodEnd:   period.End,
	}
	if details.Title != "" {
		pick.Title = details.Title
	}
	if details.Year != 0 {
		year := details.Year
		pick.Year = &year
	}
	if pick.ExternalID == "" {
		pick.ExternalID = details.ImdbID
	}
	return pick
}

// enrich looks the selection up in the catalog. A failed lookup only loses
// the extra details.
func (s *pickService) enrich(ctx context.Context, selection entity.Selection) entity.MovieDetails {
	if s.catalog == nil {
		return entity.MovieDetails{}
	}

	details, err := s.catalog.Search(ctx, selection.Title, selection.Year)
	if err != nil {
		log.Warn().Err(err).Str("title", selection.Title).Msg("catalog lookup failed, using raw title")
		return entity.MovieDetails{}
	}
	if details == nil {
		return entity.MovieDetails{}
	}
	return *details
}

func (s *pickService) DeletePick(ctx context.Context, pickID int64) error {
	err := s.write(ctx, func(tx contract.DataManager) error {
		pick, err := tx.Pick().GetByID(pickID)
		if err != nil {
			return fmt.Errorf("failed to get pick: %w", err)
		}
		if pick == nil {
			return domain.NotFound("pick", strconv.FormatInt(pickID, 10))
		}
		return tx.Pick().Delete(pickID)
	})
	if err != nil {
		return err
	}

	log.Info().Int64("pick_id", pickID).Msg("pick deleted")
	return nil
}

func (s *pickService) RecentPicks(ctx context.Context, limit int) ([]*entity.Pick, error) {
	if limit <= 0 {
		limit = domain.DefaultListLimit
	}
	picks, err := s.dm.Pick().ListRecent(limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent picks: %w", err)
	}
	return picks, nil
}

func (s *pickService) MemberPicks(ctx context.Context, handle string) ([]*entity.Pick, error) {
	member, err := s.dm.Member().GetByHandle(handle)
	if err != nil {
		return nil, fmt.Errorf("failed to get member: %w", err)
	}
	if member == nil {
		return nil, domain.NotFound("member", handle)
	}

	picks, err := s.dm.Pick().ListByMember(member.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list member picks: %w", err)
	}
	return picks, nil
}
