package service

import (
	"context"
	"testing"
	"time"

	"github.com/diegoclair/movie-club-bot/internal/database"
	"github.com/diegoclair/movie-club-bot/internal/domain/contract"
	"github.com/diegoclair/movie-club-bot/internal/domain/entity"
	"github.com/diegoclair/movie-club-bot/mocks"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testOptions = Options{PeriodDays: 14, EarlyAccessDays: 7, ConfirmTimeout: 30 * time.Second}

type allMocks struct {
	mockDataManager *mocks.MockDataManager
	mockMemberRepo  *mocks.MockMemberRepo
	mockAnchorRepo  *mocks.MockAnchorRepo
	mockSkipRepo    *mocks.MockSkipRepo
	mockPickRepo    *mocks.MockPickRepo
	mockRatingRepo  *mocks.MockRatingRepo
	mockCatalog     *mocks.MockCatalog
	clock           *clockwork.FakeClock
}

func newServiceTestMock(t *testing.T) (m allMocks, svc *Instance, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)

	dm := mocks.NewMockDataManager(ctrl)

	memberRepo := mocks.NewMockMemberRepo(ctrl)
	dm.EXPECT().Member().Return(memberRepo).AnyTimes()

	anchorRepo := mocks.NewMockAnchorRepo(ctrl)
	dm.EXPECT().Anchor().Return(anchorRepo).AnyTimes()

	skipRepo := mocks.NewMockSkipRepo(ctrl)
	dm.EXPECT().Skip().Return(skipRepo).AnyTimes()

	pickRepo := mocks.NewMockPickRepo(ctrl)
	dm.EXPECT().Pick().Return(pickRepo).AnyTimes()

	ratingRepo := mocks.NewMockRatingRepo(ctrl)
	dm.EXPECT().Rating().Return(ratingRepo).AnyTimes()

	dm.EXPECT().WithTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(contract.DataManager) error) error {
			return fn(dm)
		}).AnyTimes()

	m = allMocks{
		mockDataManager: dm,
		mockMemberRepo:  memberRepo,
		mockAnchorRepo:  anchorRepo,
		mockSkipRepo:    skipRepo,
		mockPickRepo:    pickRepo,
		mockRatingRepo:  ratingRepo,
		mockCatalog:     mocks.NewMockCatalog(ctrl),
		clock:           clockwork.NewFakeClockAt(day(2025, 5, 10)),
	}

	// validate service creation
	svc = NewInstance(dm, m.mockCatalog, nil, m.clock, testOptions)
	require.NotNil(t, svc)

	return
}

// clubFixture runs the services over a real in-memory database
type clubFixture struct {
	svc   *Instance
	dm    contract.DataManager
	clock *clockwork.FakeClock
}

func newClubFixture(t *testing.T, now time.Time, catalog contract.Catalog) *clubFixture {
	t.Helper()

	db := database.SetupTestDB(t)
	dm := database.NewInstance(db)
	clock := clockwork.NewFakeClockAt(now)

	return &clubFixture{
		svc:   NewInstance(dm, catalog, nil, clock, testOptions),
		dm:    dm,
		clock: clock,
	}
}

// setup installs the roster A, B, C and starts the rotation on start
func (f *clubFixture) setup(t *testing.T, start time.Time) {
	t.Helper()

	ctx := context.Background()
	_, err := f.svc.Roster.SetupRoster(ctx, []entity.MemberInput{
		{Handle: "A", DisplayName: "Alice"},
		{Handle: "B", DisplayName: "Bob"},
		{Handle: "C", DisplayName: "Carol"},
	})
	require.NoError(t, err)
	require.NoError(t, f.svc.Rotation.SetRotationStart(ctx, start))
}

// at moves the fake clock to t
func (f *clubFixture) at(t time.Time) {
	f.clock.Advance(t.Sub(f.clock.Now()))
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func handles(turns []*entity.Turn) []string {
	out := make([]string, 0, len(turns))
	for _, t := range turns {
		h := t.Member.Handle
		if t.IsSkipped {
			h += "(skipped)"
		}
		out = append(out, h)
	}
	return out
}
