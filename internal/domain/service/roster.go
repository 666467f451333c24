package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/diegoclair/movie-club-bot/internal/domain"
	"github.com/diegoclair/movie-club-bot/internal/domain/contract"
	"github.com/diegoclair/movie-club-bot/internal/domain/entity"
	"github.com/rs/zerolog/log"
)

type rosterService struct {
	*service
}

func newRoster(svc *service) *rosterService {
	return &rosterService{service: svc}
}

// SetupRoster replaces the ordered roster with members. Known handles keep
// their history; anyone left out becomes inactive. The anchor, if any,
// restarts at position 0.
func (s *rosterService) SetupRoster(ctx context.Context, members []entity.MemberInput) ([]*entity.Member, error) {
	if len(members) == 0 {
		return nil, domain.InvalidInput("roster needs at least one member")
	}

	handles := make(map[string]bool, len(members))
	names := make(map[string]bool, len(members))
	for i := range members {
		in := &members[i]
		in.Handle = strings.TrimSpace(in.Handle)
		in.DisplayName = strings.TrimSpace(in.DisplayName)
		if err := validateStruct(in); err != nil {
			return nil, err
		}
		if handles[in.Handle] {
			return nil, domain.DuplicateMember(in.Handle, "handle listed twice")
		}
		name := strings.ToLower(in.DisplayName)
		if names[name] {
			return nil, domain.DuplicateMember(in.Handle, fmt.Sprintf("display name %q listed twice", in.DisplayName))
		}
		handles[in.Handle] = true
		names[name] = true
	}

	var active []*entity.Member
	err := s.write(ctx, func(tx contract.DataManager) error {
		existing := make([]*entity.Member, len(members))
		for i, in := range members {
			member, err := tx.Member().GetByHandle(in.Handle)
			if err != nil {
				return fmt.Errorf("failed to get member: %w", err)
			}
			existing[i] = member

			// a name held by someone listed here is released below
			other, err := tx.Member().GetByDisplayName(in.DisplayName)
			if err != nil {
				return fmt.Errorf("failed to get member by display name: %w", err)
			}
			if other != nil && !handles[other.Handle] {
				return domain.DuplicateMember(in.Handle, fmt.Sprintf("display name %q is taken by %s", in.DisplayName, other.Handle))
			}
		}

		if err := tx.Member().ClearPositions(); err != nil {
			return fmt.Errorf("failed to clear positions: %w", err)
		}

		// park renamed members first so names can move between them
		for i, m := range existing {
			if m == nil || m.DisplayName == members[i].DisplayName {
				continue
			}
			if err := tx.Member().UpdateDisplayName(m.ID, fmt.Sprintf("\x00%d", m.ID)); err != nil {
				return fmt.Errorf("failed to update display name: %w", err)
			}
		}

		for i, in := range members {
			pos := i
			if existing[i] == nil {
				member := &entity.Member{Handle: in.Handle, DisplayName: in.DisplayName, Position: &pos, CreatedAt: s.now()}
				if err := tx.Member().Create(member); err != nil {
					return fmt.Errorf("failed to create member: %w", err)
				}
				continue
			}

			if existing[i].DisplayName != in.DisplayName {
				if err := tx.Member().UpdateDisplayName(existing[i].ID, in.DisplayName); err != nil {
					return fmt.Errorf("failed to update display name: %w", err)
				}
			}
			if err := tx.Member().SetPosition(existing[i].ID, &pos); err != nil {
				return fmt.Errorf("failed to set position: %w", err)
			}
		}

		anchor, err := tx.Anchor().Get()
		if err != nil {
			return fmt.Errorf("failed to get rotation anchor: %w", err)
		}
		if anchor != nil {
			anchor.StartPosition = 0
			anchor.UpdatedAt = s.now()
			if err := tx.Anchor().Save(anchor); err != nil {
				return fmt.Errorf("failed to reset rotation anchor: %w", err)
			}
		}

		active, err = tx.Member().ListActive()
		if err != nil {
			return fmt.Errorf("failed to list active members: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.metrics.RosterChanged("setup")
	log.Info().Int("members", len(active)).Msg("roster set up")
	return active, nil
}

// checkDisplayName rejects a display name already used by another member
func checkDisplayName(dm contract.DataManager, in entity.MemberInput, self *entity.Member) error {
	other, err := dm.Member().GetByDisplayName(in.DisplayName)
	if err != nil {
		return fmt.Errorf("failed to get member by display name: %w", err)
	}
	if other != nil && (self == nil || other.ID != self.ID) {
		return domain.DuplicateMember(in.Handle, fmt.Sprintf("display name %q is taken by %s", in.DisplayName, other.Handle))
	}
	return nil
}

// AddMember appends a new member at the end of the roster
func (s *rosterService) AddMember(ctx context.Context, handle, displayName string) (*entity.Member, error) {
	in := entity.MemberInput{Handle: strings.TrimSpace(handle), DisplayName: strings.TrimSpace(displayName)}
	if err := validateStruct(&in); err != nil {
		return nil, err
	}

	now := s.now()
	member := &entity.Member{Handle: in.Handle, DisplayName: in.DisplayName, CreatedAt: now}

	err := s.write(ctx, func(tx contract.DataManager) error {
		existing, err := tx.Member().GetByHandle(in.Handle)
		if err != nil {
			return fmt.Errorf("failed to get member: %w", err)
		}
		if existing != nil {
			return domain.DuplicateMember(in.Handle, "handle already registered")
		}
		if err := checkDisplayName(tx, in, nil); err != nil {
			return err
		}

		up, err := s.resolver.snapshot(tx, now)
		if err != nil {
			return err
		}

		active, err := tx.Member().ListActive()
		if err != nil {
			return fmt.Errorf("failed to list active members: %w", err)
		}
		pos := len(active)
		member.Position = &pos

		if err := tx.Member().Create(member); err != nil {
			return fmt.Errorf("failed to create member: %w", err)
		}
		return s.resolver.rebase(tx, up, 0, now)
	})
	if err != nil {
		return nil, err
	}

	s.metrics.RosterChanged("add")
	log.Info().Str("member", member.Handle).Int("position", *member.Position).Msg("member added")
	return member, nil
}

// RemoveMember takes a member out of the rotation, keeping their history.
// Later positions close the gap and the member's future skips are dropped.
func (s *rosterService) RemoveMember(ctx context.Context, handle string) (*entity.RemovalResult, error) {
	now := s.now()
	result := &entity.RemovalResult{}

	err := s.write(ctx, func(tx contract.DataManager) error {
		member, err := tx.Member().GetByHandle(handle)
		if err != nil {
			return fmt.Errorf("failed to get member: %w", err)
		}
		if member == nil || !member.IsActive() {
			return domain.NotFound("active member", handle)
		}

		up, err := s.resolver.snapshot(tx, now)
		if err != nil {
			return err
		}
		if up != nil {
			result.WasCurrent = up.held().Member.ID == member.ID
			result.WasNext = up.following().Member.ID == member.ID
		}

		pos := *member.Position
		if err := tx.Member().SetPosition(member.ID, nil); err != nil {
			return fmt.Errorf("failed to clear position: %w", err)
		}
		if err := tx.Member().ShiftPositions(pos+1, -1); err != nil {
			return fmt.Errorf("failed to shift positions: %w", err)
		}

		result.SkipsDiscarded, err = tx.Skip().DeleteFromByMember(member.ID, domain.DateOf(now))
		if err != nil {
			return fmt.Errorf("failed to delete future skips: %w", err)
		}

		member.Position = nil
		result.Member = member
		result.Position = pos
		return s.resolver.rebase(tx, up, pos, now)
	})
	if err != nil {
		return nil, err
	}

	s.metrics.RosterChanged("remove")
	log.Info().
		Str("member", handle).
		Bool("was_current", result.WasCurrent).
		Bool("was_next", result.WasNext).
		Msg("member removed")
	return result, nil
}

// ReactivateMember puts an inactive member back, at position or at the end
func (s *rosterService) ReactivateMember(ctx context.Context, handle string, position *int) (*entity.Member, error) {
	now := s.now()
	var member *entity.Member

	err := s.write(ctx, func(tx contract.DataManager) error {
		var err error
		member, err = tx.Member().GetByHandle(handle)
		if err != nil {
			return fmt.Errorf("failed to get member: %w", err)
		}
		if member == nil {
			return domain.NotFound("member", handle)
		}
		if member.IsActive() {
			return domain.AlreadyActive(handle)
		}

		active, err := tx.Member().ListActive()
		if err != nil {
			return fmt.Errorf("failed to list active members: %w", err)
		}
		n := len(active)
		pos := n
		if position != nil {
			if *position < 0 || *position > n {
				return domain.OutOfRange(fmt.Sprintf("position %d", *position), 0, float64(n))
			}
			pos = *position
		}

		up, err := s.resolver.snapshot(tx, now)
		if err != nil {
			return err
		}

		if err := tx.Member().ShiftPositions(pos, 1); err != nil {
			return fmt.Errorf("failed to shift positions: %w", err)
		}
		if err := tx.Member().SetPosition(member.ID, &pos); err != nil {
			return fmt.Errorf("failed to set position: %w", err)
		}
		member.Position = &pos
		return s.resolver.rebase(tx, up, 0, now)
	})
	if err != nil {
		return nil, err
	}

	s.metrics.RosterChanged("reactivate")
	log.Info().Str("member", handle).Int("position", *member.Position).Msg("member reactivated")
	return member, nil
}

// SwapMembers exchanges the positions of two active members
func (s *rosterService) SwapMembers(ctx context.Context, handleA, handleB string) error {
	now := s.now()

	err := s.write(ctx, func(tx contract.DataManager) error {
		a, err := activeMember(tx, handleA)
		if err != nil {
			return err
		}
		b, err := activeMember(tx, handleB)
		if err != nil {
			return err
		}
		if a.ID == b.ID {
			return nil
		}

		up, err := s.resolver.snapshot(tx, now)
		if err != nil {
			return err
		}

		posA, posB := *a.Position, *b.Position
		if err := tx.Member().SetPosition(a.ID, nil); err != nil {
			return fmt.Errorf("failed to clear position: %w", err)
		}
		if err := tx.Member().SetPosition(b.ID, &posA); err != nil {
			return fmt.Errorf("failed to set position: %w", err)
		}
		if err := tx.Member().SetPosition(a.ID, &posB); err != nil {
			return fmt.Errorf("failed to set position: %w", err)
		}
		return s.resolver.rebase(tx, up, 0, now)
	})
	if err != nil {
		return err
	}

	s.metrics.RosterChanged("swap")
	log.Info().Str("a", handleA).Str("b", handleB).Msg("members swapped")
	return nil
}

func activeMember(dm contract.DataManager, handle string) (*entity.Member, error) {
	member, err := dm.Member().GetByHandle(handle)
	if err != nil {
		return nil, fmt.Errorf("failed to get member: %w", err)
	}
	if member == nil || !member.IsActive() {
		return nil, domain.NotFound("active member", handle)
	}
	return member, nil
}

// ReorderMembers assigns positions 0..n-1 following handles, which must all
// be active. Unless allowPartial is set every active member must be listed;
// with it, active members left out become inactive.
func (s *rosterService) ReorderMembers(ctx context.Context, handles []string, allowPartial bool) ([]*entity.Member, error) {
	if len(handles) == 0 {
		return nil, domain.InvalidInput("reorder needs at least one member")
	}

	now := s.now()
	var active []*entity.Member

	err := s.write(ctx, func(tx contract.DataManager) error {
		seen := make(map[int64]bool, len(handles))
		ordered := make([]*entity.Member, 0, len(handles))
		for _, h := range handles {
			member, err := tx.Member().GetByHandle(h)
			if err != nil {
				return fmt.Errorf("failed to get member: %w", err)
			}
			if member == nil || !member.IsActive() {
				return domain.NotFound("active member", h)
			}
			if seen[member.ID] {
				return domain.DuplicateMember(h, "listed twice")
			}
			seen[member.ID] = true
			ordered = append(ordered, member)
		}

		current, err := tx.Member().ListActive()
		if err != nil {
			return fmt.Errorf("failed to list active members: %w", err)
		}
		var missing []string
		for _, m := range current {
			if !seen[m.ID] {
				missing = append(missing, m.Handle)
			}
		}
		if len(missing) > 0 && !allowPartial {
			return domain.IncompleteRoster(missing)
		}

		up, err := s.resolver.snapshot(tx, now)
		if err != nil {
			return err
		}

		if err := tx.Member().ClearPositions(); err != nil {
			return fmt.Errorf("failed to clear positions: %w", err)
		}
		for i, m := range ordered {
			pos := i
			if err := tx.Member().SetPosition(m.ID, &pos); err != nil {
				return fmt.Errorf("failed to set position: %w", err)
			}
		}

		if err := s.resolver.rebase(tx, up, 0, now); err != nil {
			return err
		}

		active, err = tx.Member().ListActive()
		if err != nil {
			return fmt.Errorf("failed to list active members: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.metrics.RosterChanged("reorder")
	log.Info().Strs("order", handles).Msg("roster reordered")
	return active, nil
}

func (s *rosterService) ListMembers(ctx context.Context) (active, inactive []*entity.Member, err error) {
	active, err = s.dm.Member().ListActive()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list active members: %w", err)
	}
	inactive, err = s.dm.Member().ListInactive()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list inactive members: %w", err)
	}
	return active, inactive, nil
}
