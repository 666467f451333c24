package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/diegoclair/movie-club-bot/internal/domain"
	"github.com/diegoclair/movie-club-bot/internal/domain/contract"
	"github.com/diegoclair/movie-club-bot/internal/domain/entity"
)

// resolver derives turns from the anchor, the ordered roster and the skips.
// Nothing about the rotation is stored beyond those three inputs.
type resolver struct {
	periodDays int
}

func newResolver(periodDays int) *resolver {
	return &resolver{periodDays: periodDays}
}

type skipKey struct {
	memberID int64
	start    int64
	end      int64
}

func keyFor(memberID int64, p domain.Period) skipKey {
	return skipKey{memberID: memberID, start: p.Start.Unix(), end: p.End.Unix()}
}

type rotationState struct {
	anchor  *entity.Anchor
	members []*entity.Member
	skipped map[skipKey]*entity.Skip
	// horizon is the end of the latest stored skip
	horizon time.Time
}

func (st *rotationState) isSkipped(memberID int64, p domain.Period) bool {
	_, ok := st.skipped[keyFor(memberID, p)]
	return ok
}

func (r *resolver) load(dm contract.DataManager) (*rotationState, error) {
	anchor, err := dm.Anchor().Get()
	if err != nil {
		return nil, fmt.Errorf("failed to get rotation anchor: %w", err)
	}
	if anchor == nil {
		return nil, domain.ErrRotationNotConfigured
	}

	members, err := dm.Member().ListActive()
	if err != nil {
		return nil, fmt.Errorf("failed to list active members: %w", err)
	}
	if len(members) == 0 {
		return nil, domain.ErrNoAvailablePicker
	}

	skips, err := dm.Skip().ListAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list skips: %w", err)
	}

	st := &rotationState{
		anchor:  anchor,
		members: members,
		skipped: make(map[skipKey]*entity.Skip, len(skips)),
	}
	for _, s := range skips {
		st.skipped[keyFor(s.MemberID, s.Period())] = s
		if s.PeriodEnd.After(st.horizon) {
			st.horizon = s.PeriodEnd
		}
	}
	return st, nil
}

// walker steps through the rotation one turn at a time. A skipped turn has
// zero width: the next member is offered the same period.
type walker struct {
	st     *rotationState
	days   int
	index  int
	cursor time.Time
	streak int
}

func (r *resolver) walk(st *rotationState) *walker {
	return &walker{st: st, days: r.periodDays, cursor: st.anchor.StartDate}
}

func (w *walker) next() (*entity.Turn, error) {
	n := len(w.st.members)
	if w.streak >= n {
		return nil, domain.ErrNoAvailablePicker
	}

	member := w.st.members[(w.st.anchor.StartPosition+w.index)%n]
	period := domain.PeriodFor(w.cursor, w.days, 0)
	w.index++

	if w.st.isSkipped(member.ID, period) {
		w.streak++
		return &entity.Turn{Member: member, Period: period, IsSkipped: true}, nil
	}

	w.streak = 0
	w.cursor = period.End
	return &entity.Turn{Member: member, Period: period}, nil
}

// nextActive advances to the next turn that is not skipped
func (w *walker) nextActive() (*entity.Turn, error) {
	for {
		t, err := w.next()
		if err != nil {
			return nil, err
		}
		if !t.IsSkipped {
			return t, nil
		}
	}
}

// current returns the walker positioned just after the current turn, the
// current turn itself and the skipped turns sharing its period start.
// Before the rotation begins the first turn counts as current.
func (r *resolver) current(st *rotationState, now time.Time) (*walker, *entity.Turn, []*entity.Turn, error) {
	w := r.walk(st)
	var pending []*entity.Turn
	for {
		t, err := w.next()
		if err != nil {
			return nil, nil, nil, err
		}
		if t.IsSkipped {
			pending = append(pending, t)
			continue
		}
		if now.Before(t.Period.End) {
			t.IsCurrent = true
			return w, t, pending, nil
		}
		pending = pending[:0]
	}
}

// currentAndNext resolves both the current and the following turn
func (r *resolver) currentAndNext(st *rotationState, now time.Time) (cur, next *entity.Turn, err error) {
	w, cur, _, err := r.current(st, now)
	if err != nil {
		return nil, nil, err
	}
	next, err = w.nextActive()
	if err != nil {
		return nil, nil, err
	}
	return cur, next, nil
}

func (r *resolver) schedule(st *rotationState, now time.Time, k int) ([]*entity.Turn, error) {
	w, cur, pending, err := r.current(st, now)
	if err != nil {
		return nil, err
	}

	turns := make([]*entity.Turn, 0, k)
	turns = append(turns, pending...)
	turns = append(turns, cur)
	for len(turns) < k {
		t, err := w.next()
		if err != nil {
			return nil, err
		}
		turns = append(turns, t)
	}
	if len(turns) > k {
		turns = turns[len(turns)-k:]
	}
	return turns, nil
}

// timeline is the walk from the anchor up to the last turn that can carry a
// skip or a pick
type timeline struct {
	turns []*entity.Turn
	cur   int
	next  int
}

func (r *resolver) trace(st *rotationState, now time.Time) (*timeline, error) {
	w := r.walk(st)
	tl := &timeline{cur: -1, next: -1}
	for {
		t, err := w.next()
		if err != nil {
			return nil, err
		}
		tl.turns = append(tl.turns, t)
		if t.IsSkipped {
			continue
		}

		i := len(tl.turns) - 1
		switch {
		case tl.cur < 0:
			if now.Before(t.Period.End) {
				t.IsCurrent = true
				tl.cur = i
			}
		case tl.next < 0:
			tl.next = i
		case !t.Period.Start.Before(st.horizon):
			return tl, nil
		}
	}
}

// base is the index of the first skipped turn sharing the current period
func (tl *timeline) base() int {
	i := tl.cur
	for i > 0 && tl.turns[i-1].IsSkipped {
		i--
	}
	return i
}

// mark is a stored skip or pick attached to a traced turn
type mark struct {
	turn *entity.Turn
	skip *entity.Skip
	pick *entity.Pick
}

// upcoming is the running part of the rotation with the rows that hang off
// its turns, keyed by timeline index
type upcoming struct {
	tl    *timeline
	base  int
	marks map[int]*mark
}

func (up *upcoming) held() *entity.Turn {
	return up.tl.turns[up.tl.cur]
}

func (up *upcoming) following() *entity.Turn {
	return up.tl.turns[up.tl.next]
}

func (up *upcoming) pending() []*entity.Turn {
	return up.tl.turns[up.base:up.tl.cur]
}

func (r *resolver) capture(dm contract.DataManager, st *rotationState, now time.Time) (*upcoming, error) {
	tl, err := r.trace(st, now)
	if err != nil {
		return nil, err
	}

	up := &upcoming{tl: tl, base: tl.base(), marks: make(map[int]*mark)}
	for i := up.base; i < len(tl.turns); i++ {
		t := tl.turns[i]
		if t.IsSkipped {
			up.marks[i] = &mark{turn: t, skip: st.skipped[keyFor(t.Member.ID, t.Period)]}
			continue
		}

		pick, err := dm.Pick().GetByMemberAndPeriod(t.Member.ID, t.Period.Start, t.Period.End)
		if err != nil {
			return nil, fmt.Errorf("failed to get pick: %w", err)
		}
		if pick != nil {
			up.marks[i] = &mark{turn: t, pick: pick}
		}
	}
	return up, nil
}

// snapshot captures the running turns before a roster mutation; nil when
// there is no rotation to preserve.
func (r *resolver) snapshot(dm contract.DataManager, now time.Time) (*upcoming, error) {
	st, err := r.load(dm)
	if err == nil {
		var up *upcoming
		up, err = r.capture(dm, st, now)
		if err == nil {
			return up, nil
		}
	}
	if isUnresolvable(err) {
		return nil, nil
	}
	return nil, err
}

type memberTurn struct {
	memberID int64
	k        int
}

// realign walks the roster as stored now from (start, pos) and moves every
// mark to the period of the same member's same turn, counting each member's
// turns from timeline index from. Marks of members no longer active and
// marks before from are left alone.
func (r *resolver) realign(dm contract.DataManager, up *upcoming, from int, start time.Time, pos int) error {
	members, err := dm.Member().ListActive()
	if err != nil {
		return fmt.Errorf("failed to list active members: %w", err)
	}
	n := len(members)
	if n == 0 {
		return nil
	}
	active := make(map[int64]bool, n)
	for _, m := range members {
		active[m.ID] = true
	}

	wanted := make(map[memberTurn]*mark)
	seen := make(map[int64]int)
	for i := from; i < len(up.tl.turns); i++ {
		id := up.tl.turns[i].Member.ID
		k := seen[id]
		seen[id]++
		if mk := up.marks[i]; mk != nil && active[id] {
			wanted[memberTurn{id, k}] = mk
		}
	}

	periods := make(map[*mark]domain.Period, len(wanted))
	counts := make(map[int64]int, n)
	cursor, streak := start, 0
	for idx := 0; len(periods) < len(wanted); idx++ {
		m := members[(pos+idx)%n]
		k := counts[m.ID]
		counts[m.ID]++

		p := domain.PeriodFor(cursor, r.periodDays, 0)
		mk := wanted[memberTurn{m.ID, k}]
		if mk != nil {
			periods[mk] = p
		}
		if mk != nil && mk.skip != nil {
			streak++
			if streak >= n {
				return domain.ErrNoAvailablePicker
			}
			continue
		}
		streak = 0
		cursor = p.End
	}

	return r.apply(dm, periods)
}

func samePeriod(a, b domain.Period) bool {
	return a.Start.Equal(b.Start) && a.End.Equal(b.End)
}

// apply writes the new periods. Skips are deleted and recreated as a batch
// so rows of one member never collide on the unique period key.
func (r *resolver) apply(dm contract.DataManager, periods map[*mark]domain.Period) error {
	var skips []*mark
	for mk, p := range periods {
		switch {
		case mk.skip != nil:
			if mk.skip.ID == 0 || !samePeriod(mk.skip.Period(), p) {
				skips = append(skips, mk)
			}
		case mk.pick != nil:
			if samePeriod(mk.pick.Period(), p) {
				continue
			}
			if err := dm.Pick().UpdatePeriod(mk.pick.ID, p.Start, p.End); err != nil {
				return fmt.Errorf("failed to move pick: %w", err)
			}
			mk.pick.PeriodStart, mk.pick.PeriodEnd = p.Start, p.End
		}
	}

	for _, mk := range skips {
		if mk.skip.ID == 0 {
			continue
		}
		if err := dm.Skip().Delete(mk.skip.ID); err != nil {
			return fmt.Errorf("failed to move skip: %w", err)
		}
	}
	for _, mk := range skips {
		p := periods[mk]
		mk.skip.ID = 0
		mk.skip.PeriodStart, mk.skip.PeriodEnd = p.Start, p.End
		if err := dm.Skip().Create(mk.skip); err != nil {
			return fmt.Errorf("failed to move skip: %w", err)
		}
	}
	return nil
}

// rebase pins the anchor on the running period after a roster change and
// carries upcoming skips and picks along with their members. Skipped turns of
// the running period stay in front of the holder while the new order still
// leads to the holder; when the holder left the roster the anchor falls on
// whoever took their slot.
func (r *resolver) rebase(dm contract.DataManager, up *upcoming, fallbackPos int, now time.Time) error {
	if up == nil {
		return nil
	}

	members, err := dm.Member().ListActive()
	if err != nil {
		return fmt.Errorf("failed to list active members: %w", err)
	}

	held := up.held()
	pos, from := 0, up.tl.cur
	if n := len(members); n > 0 {
		positions := make(map[int64]int, n)
		for _, m := range members {
			positions[m.ID] = *m.Position
		}

		pos = fallbackPos % n
		if p, ok := positions[held.Member.ID]; ok {
			pos = p
			pending := up.pending()
			for i, t := range pending {
				if _, ok := positions[t.Member.ID]; !ok {
					continue
				}
				if p, ok := leads(members, positions, pending[i:], held); ok {
					pos, from = p, up.base+i
					break
				}
			}
		}
	}

	anchor := &entity.Anchor{
		StartDate:     held.Period.Start,
		StartPosition: pos,
		UpdatedAt:     now,
	}
	if err := dm.Anchor().Save(anchor); err != nil {
		return fmt.Errorf("failed to rebase rotation anchor: %w", err)
	}
	return r.realign(dm, up, from, anchor.StartDate, pos)
}

// leads reports whether walking the roster from the first still active
// skipped turn replays those turns and then reaches the holder
func leads(members []*entity.Member, positions map[int64]int, pending []*entity.Turn, held *entity.Turn) (int, bool) {
	var seq []int64
	for _, t := range pending {
		if _, ok := positions[t.Member.ID]; ok {
			seq = append(seq, t.Member.ID)
		}
	}
	if len(seq) == 0 || len(seq) >= len(members) {
		return 0, false
	}
	seq = append(seq, held.Member.ID)

	start := positions[seq[0]]
	for j, id := range seq {
		if members[(start+j)%len(members)].ID != id {
			return 0, false
		}
	}
	return start, true
}

func isUnresolvable(err error) bool {
	return errors.Is(err, domain.ErrRotationNotConfigured) || errors.Is(err, domain.ErrNoAvailablePicker)
}
