package database

import (
	"testing"

	"github.com/diegoclair/movie-club-bot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createPick(t *testing.T, repo *pickRepo, memberID int64, title string, startDay int) *entity.Pick {
	t.Helper()

	pick := &entity.Pick{
		MemberID:    memberID,
		Title:       title,
		PickDate:    day(2025, 5, startDay),
		PeriodStart: day(2025, 5, startDay),
		PeriodEnd:   day(2025, 5, startDay+14),
	}
	require.NoError(t, repo.Upsert(pick))
	return pick
}

func TestPickRepo_Upsert(t *testing.T) {
	db := SetupTestDB(t)
	members := createMembers(t, &memberRepo{db: db.conn}, "U1")
	repo := &pickRepo{db: db.conn}

	year := 1999
	pick := &entity.Pick{
		MemberID:    members[0].ID,
		Title:       "The Matrix",
		Year:        &year,
		ExternalID:  "tt0133093",
		Details:     entity.MovieDetails{Directors: []string{"Lana Wachowski", "Lilly Wachowski"}, Rating: 8.7},
		PickDate:    day(2025, 5, 2),
		PeriodStart: day(2025, 5, 1),
		PeriodEnd:   day(2025, 5, 15),
	}

	t.Run("should insert with details", func(t *testing.T) {
		require.NoError(t, repo.Upsert(pick))
		assert.NotZero(t, pick.ID)

		got, err := repo.GetByID(pick.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "The Matrix", got.Title)
		require.NotNil(t, got.Year)
		assert.Equal(t, 1999, *got.Year)
		assert.Equal(t, []string{"Lana Wachowski", "Lilly Wachowski"}, got.Details.Directors)
		assert.Equal(t, "U1", got.Member.Handle)
		assert.True(t, got.PeriodStart.Equal(day(2025, 5, 1)))
	})

	t.Run("should replace the pick of the same turn", func(t *testing.T) {
		replacement := &entity.Pick{
			MemberID:    members[0].ID,
			Title:       "Heat",
			PickDate:    day(2025, 5, 3),
			PeriodStart: day(2025, 5, 1),
			PeriodEnd:   day(2025, 5, 15),
		}
		require.NoError(t, repo.Upsert(replacement))
		assert.Equal(t, pick.ID, replacement.ID)

		got, err := repo.GetByMemberAndPeriod(members[0].ID, day(2025, 5, 1), day(2025, 5, 15))
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "Heat", got.Title)
		assert.Nil(t, got.Year)
	})
}

func TestPickRepo_ListAndDelete(t *testing.T) {
	db := SetupTestDB(t)
	members := createMembers(t, &memberRepo{db: db.conn}, "U1", "U2")
	repo := &pickRepo{db: db.conn}

	a := createPick(t, repo, members[0].ID, "Alien", 1)
	b := createPick(t, repo, members[1].ID, "Brazil", 15)
	createPick(t, repo, members[0].ID, "Casablanca", 15)

	t.Run("should list most recent first", func(t *testing.T) {
		picks, err := repo.ListRecent(2)
		require.NoError(t, err)
		require.Len(t, picks, 2)
		assert.Equal(t, "Casablanca", picks[0].Title)
	})

	t.Run("should list by member newest period first", func(t *testing.T) {
		picks, err := repo.ListByMember(members[0].ID)
		require.NoError(t, err)
		require.Len(t, picks, 2)
		assert.Equal(t, "Casablanca", picks[0].Title)
		assert.Equal(t, a.ID, picks[1].ID)
	})

	t.Run("should delete by member and period", func(t *testing.T) {
		n, err := repo.DeleteByMemberAndPeriod(members[1].ID, b.PeriodStart, b.PeriodEnd)
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)

		n, err = repo.DeleteByMemberAndPeriod(members[1].ID, b.PeriodStart, b.PeriodEnd)
		require.NoError(t, err)
		assert.Zero(t, n)
	})

	t.Run("should move a pick to another period", func(t *testing.T) {
		require.NoError(t, repo.UpdatePeriod(a.ID, day(2025, 6, 1), day(2025, 6, 15)))

		got, err := repo.GetByMemberAndPeriod(members[0].ID, day(2025, 6, 1), day(2025, 6, 15))
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, a.ID, got.ID)
	})

	t.Run("should delete by id", func(t *testing.T) {
		require.NoError(t, repo.Delete(a.ID))

		got, err := repo.GetByID(a.ID)
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}

func TestRatingRepo(t *testing.T) {
	db := SetupTestDB(t)
	members := createMembers(t, &memberRepo{db: db.conn}, "U1", "U2", "U3")
	picks := &pickRepo{db: db.conn}
	repo := &ratingRepo{db: db.conn}

	alien := createPick(t, picks, members[0].ID, "Alien", 1)
	brazil := createPick(t, picks, members[1].ID, "Brazil", 15)

	rate := func(rater int, pick *entity.Pick, value float64, at int) {
		t.Helper()
		require.NoError(t, repo.Upsert(&entity.Rating{
			PickID:  pick.ID,
			RaterID: members[rater].ID,
			Value:   value,
			RatedAt: day(2025, 6, at),
		}))
	}

	rate(1, alien, 9, 1)
	rate(2, alien, 7, 2)
	rate(0, brazil, 8, 3)
	rate(2, brazil, 6, 4)

	t.Run("should overwrite the rater's earlier rating", func(t *testing.T) {
		rate(2, brazil, 10, 5)

		got, err := repo.Get(members[2].ID, brazil.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, 10.0, got.Value)
		assert.Equal(t, "U3", got.Rater.Handle)
	})

	t.Run("should reject values out of range", func(t *testing.T) {
		err := repo.Upsert(&entity.Rating{PickID: alien.ID, RaterID: members[0].ID, Value: 11, RatedAt: day(2025, 6, 1)})
		assert.Error(t, err)
	})

	t.Run("should summarize", func(t *testing.T) {
		summary, err := repo.Summary(alien.ID)
		require.NoError(t, err)
		assert.Equal(t, 2, summary.Count)
		assert.InDelta(t, 8.0, summary.Average, 0.001)
	})

	t.Run("should rank top rated", func(t *testing.T) {
		top, err := repo.TopRated(10)
		require.NoError(t, err)
		require.Len(t, top, 2)
		assert.Equal(t, "Brazil", top[0].Pick.Title)
		assert.InDelta(t, 9.0, top[0].Average, 0.001)
		assert.Equal(t, 2, top[0].Count)
	})

	t.Run("should list by pick and most recent", func(t *testing.T) {
		ratings, err := repo.ListByPick(alien.ID)
		require.NoError(t, err)
		require.Len(t, ratings, 2)
		assert.Equal(t, 9.0, ratings[0].Value)

		recent, err := repo.ListRecent(1)
		require.NoError(t, err)
		require.Len(t, recent, 1)
		assert.Equal(t, brazil.ID, recent[0].PickID)
	})

	t.Run("should compute rater stats", func(t *testing.T) {
		stats, err := repo.StatsByRater(members[2].ID)
		require.NoError(t, err)
		assert.Equal(t, 2, stats.Count)
		assert.Equal(t, 7.0, stats.Min)
		assert.Equal(t, 10.0, stats.Max)
		assert.InDelta(t, 8.5, stats.Average, 0.001)
	})

	t.Run("should cascade when the pick is deleted", func(t *testing.T) {
		n, err := repo.Delete(members[1].ID, alien.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)

		require.NoError(t, picks.Delete(alien.ID))

		ratings, err := repo.ListByPick(alien.ID)
		require.NoError(t, err)
		assert.Empty(t, ratings)
	})
}
