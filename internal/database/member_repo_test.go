package database

import (
	"testing"

	"github.com/diegoclair/movie-club-bot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pos(i int) *int { return &i }

func createMembers(t *testing.T, repo *memberRepo, handles ...string) []*entity.Member {
	t.Helper()

	members := make([]*entity.Member, 0, len(handles))
	for i, h := range handles {
		m := &entity.Member{Handle: h, DisplayName: "Name " + h, Position: pos(i)}
		require.NoError(t, repo.Create(m))
		members = append(members, m)
	}
	return members
}

func TestMemberRepo_Create(t *testing.T) {
	db := SetupTestDB(t)
	repo := &memberRepo{db: db.conn}

	t.Run("should create active member", func(t *testing.T) {
		member := &entity.Member{Handle: "U1", DisplayName: "Alice", Position: pos(0)}

		err := repo.Create(member)

		require.NoError(t, err)
		assert.NotZero(t, member.ID)

		got, err := repo.GetByHandle("U1")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "Alice", got.DisplayName)
		require.NotNil(t, got.Position)
		assert.Equal(t, 0, *got.Position)
	})

	t.Run("should reject duplicate handle", func(t *testing.T) {
		err := repo.Create(&entity.Member{Handle: "U1", DisplayName: "Other"})
		assert.Error(t, err)
	})

	t.Run("should reject duplicate position", func(t *testing.T) {
		err := repo.Create(&entity.Member{Handle: "U2", DisplayName: "Bob", Position: pos(0)})
		assert.Error(t, err)
	})
}

func TestMemberRepo_Lookups(t *testing.T) {
	db := SetupTestDB(t)
	repo := &memberRepo{db: db.conn}
	members := createMembers(t, repo, "U1", "U2")

	t.Run("should return nil for unknown handle", func(t *testing.T) {
		got, err := repo.GetByHandle("nobody")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("should match display name case-insensitively", func(t *testing.T) {
		got, err := repo.GetByDisplayName("name u2")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, members[1].ID, got.ID)
	})

	t.Run("should get by id", func(t *testing.T) {
		got, err := repo.GetByID(members[0].ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "U1", got.Handle)
	})
}

func TestMemberRepo_ListActiveAndInactive(t *testing.T) {
	db := SetupTestDB(t)
	repo := &memberRepo{db: db.conn}
	members := createMembers(t, repo, "U1", "U2", "U3")

	require.NoError(t, repo.SetPosition(members[1].ID, nil))
	require.NoError(t, repo.SetPosition(members[2].ID, pos(1)))

	active, err := repo.ListActive()
	require.NoError(t, err)
	require.Len(t, active, 2)
	assert.Equal(t, "U1", active[0].Handle)
	assert.Equal(t, "U3", active[1].Handle)

	inactive, err := repo.ListInactive()
	require.NoError(t, err)
	require.Len(t, inactive, 1)
	assert.Equal(t, "U2", inactive[0].Handle)
	assert.False(t, inactive[0].IsActive())
}

func TestMemberRepo_ShiftPositions(t *testing.T) {
	tests := []struct {
		name     string
		from     int
		delta    int
		expected map[string]int
	}{
		{
			name:     "should open a gap",
			from:     1,
			delta:    1,
			expected: map[string]int{"U1": 0, "U2": 2, "U3": 3},
		},
		{
			name:     "should close a gap",
			from:     1,
			delta:    -1,
			expected: map[string]int{"U2": 0, "U3": 1},
		},
		{
			name:     "should do nothing with zero delta",
			from:     0,
			delta:    0,
			expected: map[string]int{"U1": 0, "U2": 1, "U3": 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := SetupTestDB(t)
			repo := &memberRepo{db: db.conn}
			members := createMembers(t, repo, "U1", "U2", "U3")

			if tt.delta < 0 {
				// vacate the slot being closed, the way a removal does
				require.NoError(t, repo.SetPosition(members[0].ID, nil))
			}

			err := repo.ShiftPositions(tt.from, tt.delta)
			require.NoError(t, err)

			for _, m := range members {
				got, err := repo.GetByID(m.ID)
				require.NoError(t, err)
				want, ok := tt.expected[m.Handle]
				if !ok {
					assert.Nil(t, got.Position, m.Handle)
					continue
				}
				require.NotNil(t, got.Position, m.Handle)
				assert.Equal(t, want, *got.Position, m.Handle)
			}
		})
	}
}

func TestMemberRepo_ClearPositions(t *testing.T) {
	db := SetupTestDB(t)
	repo := &memberRepo{db: db.conn}
	createMembers(t, repo, "U1", "U2")

	require.NoError(t, repo.ClearPositions())

	active, err := repo.ListActive()
	require.NoError(t, err)
	assert.Empty(t, active)

	inactive, err := repo.ListInactive()
	require.NoError(t, err)
	assert.Len(t, inactive, 2)
}

func TestMemberRepo_UpdateDisplayName(t *testing.T) {
	db := SetupTestDB(t)
	repo := &memberRepo{db: db.conn}
	members := createMembers(t, repo, "U1")

	require.NoError(t, repo.UpdateDisplayName(members[0].ID, "Alicia"))

	got, err := repo.GetByID(members[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "Alicia", got.DisplayName)
}
