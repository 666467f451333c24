package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/diegoclair/movie-club-bot/internal/domain"
	"github.com/diegoclair/movie-club-bot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_rotationService_CurrentPicker(t *testing.T) {
	tests := []struct {
		name      string
		now       string
		wantPick  string
		wantStart string
		wantEnd   string
	}{
		{name: "Should return the first member before the rotation starts", now: "2025-05-01", wantPick: "A", wantStart: "2025-05-05", wantEnd: "2025-05-19"},
		{name: "Should return the first member inside the first period", now: "2025-05-10", wantPick: "A", wantStart: "2025-05-05", wantEnd: "2025-05-19"},
		{name: "Should move on at the period boundary", now: "2025-05-19", wantPick: "B", wantStart: "2025-05-19", wantEnd: "2025-06-02"},
		{name: "Should return the second member", now: "2025-05-20", wantPick: "B", wantStart: "2025-05-19", wantEnd: "2025-06-02"},
		{name: "Should wrap around the roster", now: "2025-06-20", wantPick: "A", wantStart: "2025-06-16", wantEnd: "2025-06-30"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newClubFixture(t, day(2025, 5, 1), nil)
			f.setup(t, day(2025, 5, 5))

			now, err := domain.ParseDate(tt.now)
			require.NoError(t, err)
			f.at(now)

			turn, err := f.svc.Rotation.CurrentPicker(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.wantPick, turn.Member.Handle)
			assert.Equal(t, tt.wantStart, turn.Period.Start.Format(domain.DateLayout))
			assert.Equal(t, tt.wantEnd, turn.Period.End.Format(domain.DateLayout))
			assert.True(t, turn.IsCurrent)
		})
	}
}

func Test_rotationService_NotConfigured(t *testing.T) {
	ctx := context.Background()
	f := newClubFixture(t, day(2025, 5, 10), nil)

	_, err := f.svc.Rotation.CurrentPicker(ctx)
	assert.True(t, errors.Is(err, domain.ErrRotationNotConfigured))

	require.NoError(t, f.svc.Rotation.SetRotationStart(ctx, day(2025, 5, 5)))

	_, err = f.svc.Rotation.NextPicker(ctx)
	assert.True(t, errors.Is(err, domain.ErrNoAvailablePicker), "empty roster")
}

func Test_rotationService_NextPicker(t *testing.T) {
	f := newClubFixture(t, day(2025, 5, 10), nil)
	f.setup(t, day(2025, 5, 5))

	next, err := f.svc.Rotation.NextPicker(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "B", next.Member.Handle)
	assert.Equal(t, day(2025, 5, 19), next.Period.Start)
	assert.False(t, next.IsCurrent)
}

func Test_rotationService_Skip(t *testing.T) {
	ctx := context.Background()

	t.Run("Should hand the current period to the next member", func(t *testing.T) {
		f := newClubFixture(t, day(2025, 5, 1), nil)
		f.setup(t, day(2025, 5, 5))
		f.at(day(2025, 5, 20))

		res, err := f.svc.Rotation.Skip(ctx, domain.SkipCurrent, "admin", "travelling")
		require.NoError(t, err)

		assert.Equal(t, "B", res.Skip.Member.Handle)
		assert.Equal(t, day(2025, 5, 19), res.Skip.PeriodStart)
		assert.Equal(t, "C", res.Current.Member.Handle)
		assert.Equal(t, domain.Period{Start: day(2025, 5, 19), End: day(2025, 6, 2)}, res.Current.Period)
		assert.Equal(t, "A", res.Next.Member.Handle)
		assert.Equal(t, day(2025, 6, 2), res.Next.Period.Start)
		assert.False(t, res.PickDeleted)

		cur, err := f.svc.Rotation.CurrentPicker(ctx)
		require.NoError(t, err)
		assert.Equal(t, "C", cur.Member.Handle)
	})

	t.Run("Should skip the next member and drop their pick", func(t *testing.T) {
		f := newClubFixture(t, day(2025, 5, 1), nil)
		f.setup(t, day(2025, 5, 5))
		f.at(day(2025, 5, 13))

		_, err := f.svc.Picks.RegisterPick(ctx, "B", entity.Selection{Title: "Heat"}, true)
		require.NoError(t, err)

		res, err := f.svc.Rotation.Skip(ctx, domain.SkipNext, "admin", "")
		require.NoError(t, err)
		assert.Equal(t, "B", res.Skip.Member.Handle)
		assert.True(t, res.PickDeleted)
		assert.Equal(t, "A", res.Current.Member.Handle)
		assert.Equal(t, "C", res.Next.Member.Handle)
		assert.Equal(t, day(2025, 5, 19), res.Next.Period.Start)

		picks, err := f.svc.Picks.RecentPicks(ctx, 10)
		require.NoError(t, err)
		assert.Empty(t, picks)
	})

	t.Run("Should refuse to skip everybody in the same period", func(t *testing.T) {
		f := newClubFixture(t, day(2025, 5, 10), nil)
		_, err := f.svc.Roster.SetupRoster(ctx, []entity.MemberInput{
			{Handle: "A", DisplayName: "Alice"},
			{Handle: "B", DisplayName: "Bob"},
		})
		require.NoError(t, err)
		require.NoError(t, f.svc.Rotation.SetRotationStart(ctx, day(2025, 5, 5)))

		_, err = f.svc.Rotation.Skip(ctx, domain.SkipCurrent, "admin", "")
		require.NoError(t, err)

		_, err = f.svc.Rotation.Skip(ctx, domain.SkipCurrent, "admin", "")
		assert.True(t, errors.Is(err, domain.ErrNoAvailablePicker))

		cur, err := f.svc.Rotation.CurrentPicker(ctx)
		require.NoError(t, err)
		assert.Equal(t, "B", cur.Member.Handle, "failed skip is rolled back")
	})

	t.Run("Should reject an unknown target", func(t *testing.T) {
		f := newClubFixture(t, day(2025, 5, 10), nil)

		_, err := f.svc.Rotation.Skip(ctx, domain.SkipTarget("later"), "admin", "")
		assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	})
}

func Test_rotationService_UndoSkip(t *testing.T) {
	ctx := context.Background()
	f := newClubFixture(t, day(2025, 5, 1), nil)
	f.setup(t, day(2025, 5, 5))
	f.at(day(2025, 5, 20))

	_, err := f.svc.Rotation.Skip(ctx, domain.SkipCurrent, "admin", "")
	require.NoError(t, err)

	skips, err := f.svc.Rotation.ListSkips(ctx)
	require.NoError(t, err)
	require.Len(t, skips, 1)

	undone, err := f.svc.Rotation.UndoSkip(ctx, "B")
	require.NoError(t, err)
	assert.Equal(t, day(2025, 5, 19), undone.PeriodStart)

	cur, err := f.svc.Rotation.CurrentPicker(ctx)
	require.NoError(t, err)
	assert.Equal(t, "B", cur.Member.Handle)

	_, err = f.svc.Rotation.UndoSkip(ctx, "B")
	assert.True(t, errors.Is(err, domain.ErrNotFound))

	_, err = f.svc.Rotation.UndoSkip(ctx, "nobody")
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func Test_rotationService_Schedule(t *testing.T) {
	ctx := context.Background()
	f := newClubFixture(t, day(2025, 5, 1), nil)
	f.setup(t, day(2025, 5, 5))
	f.at(day(2025, 5, 20))

	turns, err := f.svc.Rotation.Schedule(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "C", "A", "B", "C"}, handles(turns))
	assert.True(t, turns[0].IsCurrent)
	assert.Equal(t, day(2025, 6, 30), turns[3].Period.Start)

	_, err = f.svc.Rotation.Skip(ctx, domain.SkipCurrent, "admin", "")
	require.NoError(t, err)

	turns, err = f.svc.Rotation.Schedule(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, []string{"B(skipped)", "C", "A", "B", "C"}, handles(turns))
	assert.Equal(t, turns[0].Period, turns[1].Period, "a skipped turn shares the period it gave away")
	assert.True(t, turns[1].IsCurrent)

	turns, err = f.svc.Rotation.Schedule(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, turns, domain.DefaultScheduleLength)
}

func Test_rotationService_Skip_Sequences(t *testing.T) {
	ctx := context.Background()

	t.Run("Should move a skipped next turn along when the current one is skipped", func(t *testing.T) {
		f := newClubFixture(t, day(2025, 5, 1), nil)
		f.setup(t, day(2025, 5, 5))
		f.at(day(2025, 5, 13))

		_, err := f.svc.Rotation.Skip(ctx, domain.SkipNext, "admin", "")
		require.NoError(t, err)

		res, err := f.svc.Rotation.Skip(ctx, domain.SkipCurrent, "admin", "")
		require.NoError(t, err)
		assert.Equal(t, "A", res.Skip.Member.Handle)
		assert.Equal(t, "C", res.Current.Member.Handle)
		assert.Equal(t, domain.Period{Start: day(2025, 5, 5), End: day(2025, 5, 19)}, res.Current.Period)
		assert.Equal(t, "A", res.Next.Member.Handle)
		assert.Equal(t, day(2025, 5, 19), res.Next.Period.Start)

		skips, err := f.svc.Rotation.ListSkips(ctx)
		require.NoError(t, err)
		require.Len(t, skips, 2)
		for _, s := range skips {
			assert.Equal(t, day(2025, 5, 5), s.PeriodStart, "skip of %s", s.Member.Handle)
		}

		turns, err := f.svc.Rotation.Schedule(ctx, 4)
		require.NoError(t, err)
		assert.Equal(t, []string{"A(skipped)", "B(skipped)", "C", "A"}, handles(turns))
	})

	t.Run("Should carry an early pick to the member's new period", func(t *testing.T) {
		f := newClubFixture(t, day(2025, 5, 1), nil)
		f.setup(t, day(2025, 5, 5))
		f.at(day(2025, 5, 13))

		heat, err := f.svc.Picks.RegisterPick(ctx, "B", entity.Selection{Title: "Heat"}, true)
		require.NoError(t, err)
		_, err = f.svc.Ratings.Rate(ctx, "C", heat.ID, 9, "")
		require.NoError(t, err)

		res, err := f.svc.Rotation.Skip(ctx, domain.SkipCurrent, "admin", "")
		require.NoError(t, err)
		assert.False(t, res.PickDeleted)

		cur, err := f.svc.Rotation.CurrentPicker(ctx)
		require.NoError(t, err)
		assert.Equal(t, "B", cur.Member.Handle)
		require.NotNil(t, cur.Pick)
		assert.Equal(t, heat.ID, cur.Pick.ID)
		assert.Equal(t, day(2025, 5, 5), cur.Pick.PeriodStart)

		ratings, err := f.svc.Ratings.RatingsFor(ctx, heat.ID)
		require.NoError(t, err)
		assert.Len(t, ratings, 1, "a moved pick keeps its ratings")
	})

	t.Run("Should drop the ratings of a skipped pick", func(t *testing.T) {
		f := newClubFixture(t, day(2025, 5, 1), nil)
		f.setup(t, day(2025, 5, 5))
		f.at(day(2025, 5, 13))

		heat, err := f.svc.Picks.RegisterPick(ctx, "B", entity.Selection{Title: "Heat"}, true)
		require.NoError(t, err)
		for _, rater := range []string{"A", "C"} {
			_, err = f.svc.Ratings.Rate(ctx, rater, heat.ID, 7, "")
			require.NoError(t, err)
		}

		res, err := f.svc.Rotation.Skip(ctx, domain.SkipNext, "admin", "")
		require.NoError(t, err)
		assert.True(t, res.PickDeleted)

		ratings, err := f.svc.Ratings.RecentRatings(ctx, 10)
		require.NoError(t, err)
		assert.Empty(t, ratings)
	})

	t.Run("Should hand the turn back after a roster change", func(t *testing.T) {
		f := newClubFixture(t, day(2025, 5, 1), nil)
		f.setup(t, day(2025, 5, 5))
		f.at(day(2025, 5, 10))

		_, err := f.svc.Rotation.Skip(ctx, domain.SkipCurrent, "admin", "")
		require.NoError(t, err)

		_, err = f.svc.Roster.AddMember(ctx, "D", "Dave")
		require.NoError(t, err)

		cur, err := f.svc.Rotation.CurrentPicker(ctx)
		require.NoError(t, err)
		assert.Equal(t, "B", cur.Member.Handle)

		undone, err := f.svc.Rotation.UndoSkip(ctx, "A")
		require.NoError(t, err)
		assert.Equal(t, day(2025, 5, 5), undone.PeriodStart)

		cur, err = f.svc.Rotation.CurrentPicker(ctx)
		require.NoError(t, err)
		assert.Equal(t, "A", cur.Member.Handle)
		assert.Equal(t, day(2025, 5, 5), cur.Period.Start)

		el, err := f.svc.Picks.CanRegister(ctx, "A")
		require.NoError(t, err)
		assert.True(t, el.Allowed)
		assert.Equal(t, entity.ReasonCurrentPicker, el.Reason)

		turns, err := f.svc.Rotation.Schedule(ctx, 4)
		require.NoError(t, err)
		assert.Equal(t, []string{"A", "B", "C", "D"}, handles(turns))
	})
}

func Test_rotationService_RoundRobin(t *testing.T) {
	ctx := context.Background()
	start := day(2025, 5, 5)

	for _, n := range []int{2, 3, 4, 5} {
		t.Run(fmt.Sprintf("Should cycle %d members", n), func(t *testing.T) {
			f := newClubFixture(t, day(2025, 5, 1), nil)

			roster := make([]entity.MemberInput, n)
			for i := range roster {
				roster[i] = entity.MemberInput{Handle: fmt.Sprintf("M%d", i), DisplayName: fmt.Sprintf("Member %d", i)}
			}
			_, err := f.svc.Roster.SetupRoster(ctx, roster)
			require.NoError(t, err)
			require.NoError(t, f.svc.Rotation.SetRotationStart(ctx, start))

			for i := 0; i < 3*n+1; i++ {
				periodStart := start.AddDate(0, 0, 14*i)
				for _, offset := range []int{0, 13} {
					f.at(periodStart.AddDate(0, 0, offset))

					cur, next, err := currentPair(ctx, f)
					require.NoError(t, err)
					assert.Equal(t, roster[i%n].Handle, cur.Member.Handle, "period %d", i)
					assert.Equal(t, periodStart, cur.Period.Start, "period %d", i)
					assert.Equal(t, roster[(i+1)%n].Handle, next.Member.Handle, "period %d", i)
					assert.Equal(t, cur.Period.End, next.Period.Start, "period %d", i)
				}
			}
		})
	}
}

func Test_rotationService_ContinuityAcrossSkip(t *testing.T) {
	ctx := context.Background()
	f := newClubFixture(t, day(2025, 5, 6), nil)
	f.setup(t, day(2025, 5, 5))

	_, err := f.svc.Rotation.Skip(ctx, domain.SkipNext, "admin", "")
	require.NoError(t, err)

	type holder struct {
		handle string
		start  string
	}
	var seen []holder
	var last *entity.Turn

	for now := day(2025, 5, 6); !now.After(day(2025, 8, 31)); now = now.AddDate(0, 0, 1) {
		f.at(now)

		cur, err := f.svc.Rotation.CurrentPicker(ctx)
		require.NoError(t, err)
		require.True(t, cur.Period.Contains(now), "%s not in %s", now.Format(domain.DateLayout), cur.Period)

		turns, err := f.svc.Rotation.Schedule(ctx, 6)
		require.NoError(t, err)
		currents := 0
		for _, turn := range turns {
			if turn.IsCurrent {
				currents++
			}
		}
		require.Equal(t, 1, currents, "exactly one current turn on %s", now.Format(domain.DateLayout))

		if last == nil || !last.Period.Start.Equal(cur.Period.Start) {
			if last != nil {
				require.Equal(t, last.Period.End, cur.Period.Start, "no gap after %s", last.Period)
			}
			seen = append(seen, holder{cur.Member.Handle, cur.Period.Start.Format(domain.DateLayout)})
			last = cur
		}
	}

	assert.Equal(t, []holder{
		{"A", "2025-05-05"},
		{"C", "2025-05-19"},
		{"A", "2025-06-02"},
		{"B", "2025-06-16"},
		{"C", "2025-06-30"},
		{"A", "2025-07-14"},
		{"B", "2025-07-28"},
		{"C", "2025-08-11"},
		{"A", "2025-08-25"},
	}, seen)
}

func currentPair(ctx context.Context, f *clubFixture) (cur, next *entity.Turn, err error) {
	if cur, err = f.svc.Rotation.CurrentPicker(ctx); err != nil {
		return nil, nil, err
	}
	next, err = f.svc.Rotation.NextPicker(ctx)
	return cur, next, err
}
