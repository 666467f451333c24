package handlers_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/diegoclair/movie-club-bot/internal/domain"
	"github.com/diegoclair/movie-club-bot/internal/domain/entity"
	"github.com/diegoclair/movie-club-bot/internal/handlers/test"
	"github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func intPtr(i int) *int {
	return &i
}

var (
	alice = &entity.Member{ID: 1, Handle: "UALICE", DisplayName: "Alice", Position: intPtr(0)}
	bob   = &entity.Member{ID: 2, Handle: "UBOB", DisplayName: "Bob", Position: intPtr(1)}
	carol = &entity.Member{ID: 3, Handle: "UCAROL", DisplayName: "Carol", Position: intPtr(2)}
)

func turn(m *entity.Member, start time.Time) *entity.Turn {
	return &entity.Turn{Member: m, Period: domain.PeriodFor(start, 14, 0)}
}

func TestSlackHandler_HandleSlashCommand(t *testing.T) {
	type args struct {
		userID string
		text   string
	}

	tests := []struct {
		name          string
		args          args
		buildMocks    func(ctx context.Context, m test.ServiceMocks, args args)
		checkResponse func(t *testing.T, msg *slack.Msg)
	}{
		{
			name: "Should show the current picker",
			args: args{userID: "UBOB", text: "current"},
			buildMocks: func(ctx context.Context, m test.ServiceMocks, args args) {
				m.RotationServiceMock.EXPECT().CurrentPicker(gomock.Any()).
					Return(turn(alice, date(2025, 5, 5)), nil).Times(1)
			},
			checkResponse: func(t *testing.T, msg *slack.Msg) {
				assert.Equal(t, slack.ResponseTypeEphemeral, msg.ResponseType)
				assert.Contains(t, msg.Text, "*Alice* (2025-05-05 → 2025-05-19)")
			},
		},
		{
			name: "Should explain an unconfigured rotation",
			args: args{userID: "UBOB", text: "next"},
			buildMocks: func(ctx context.Context, m test.ServiceMocks, args args) {
				m.RotationServiceMock.EXPECT().NextPicker(gomock.Any()).
					Return(nil, domain.ErrRotationNotConfigured).Times(1)
			},
			checkResponse: func(t *testing.T, msg *slack.Msg) {
				assert.Contains(t, msg.Text, "❌")
				assert.Contains(t, msg.Text, "start YYYY-MM-DD")
			},
		},
		{
			name: "Should list the schedule with skipped turns",
			args: args{userID: "UBOB", text: "schedule 3"},
			buildMocks: func(ctx context.Context, m test.ServiceMocks, args args) {
				skipped := turn(bob, date(2025, 5, 19))
				skipped.IsSkipped = true
				current := turn(carol, date(2025, 5, 19))
				current.IsCurrent = true

				m.RotationServiceMock.EXPECT().Schedule(gomock.Any(), 3).
					Return([]*entity.Turn{skipped, current, turn(alice, date(2025, 6, 2))}, nil).Times(1)
			},
			checkResponse: func(t *testing.T, msg *slack.Msg) {
				assert.Contains(t, msg.Text, "~Bob~ skipped")
				assert.Contains(t, msg.Text, "*Carol* (2025-05-19 → 2025-06-02) ← now")
				assert.Contains(t, msg.Text, "*Alice* (2025-06-02 → 2025-06-16)")
			},
		},
		{
			name: "Should register a pick with early access",
			args: args{userID: "UBOB", text: "pick The Thing 1982"},
			buildMocks: func(ctx context.Context, m test.ServiceMocks, args args) {
				next := turn(bob, date(2025, 5, 19))
				m.PickServiceMock.EXPECT().CanRegister(gomock.Any(), args.userID).
					Return(&entity.Eligibility{Allowed: true, EarlyAccess: true, Turn: next}, nil).Times(1)

				m.PickServiceMock.EXPECT().
					RegisterPick(gomock.Any(), args.userID, entity.Selection{Title: "The Thing", Year: intPtr(1982)}, true).
					Return(&entity.Pick{
						ID:          12,
						Member:      bob,
						Title:       "The Thing",
						Year:        intPtr(1982),
						PeriodStart: next.Period.Start,
						PeriodEnd:   next.Period.End,
						Details:     entity.MovieDetails{Directors: []string{"John Carpenter"}},
					}, nil).Times(1)
			},
			checkResponse: func(t *testing.T, msg *slack.Msg) {
				assert.Equal(t, slack.ResponseTypeInChannel, msg.ResponseType)
				assert.Contains(t, msg.Text, "#12 *The Thing* (1982) by Bob")
				assert.Contains(t, msg.Text, "(early access)")
				assert.Contains(t, msg.Text, "John Carpenter")
				assert.Contains(t, msg.Text, "rate 12 SCORE")
			},
		},
		{
			name: "Should refuse a pick out of turn",
			args: args{userID: "UCAROL", text: "pick Heat"},
			buildMocks: func(ctx context.Context, m test.ServiceMocks, args args) {
				m.PickServiceMock.EXPECT().CanRegister(gomock.Any(), args.userID).
					Return(&entity.Eligibility{Reason: entity.ReasonNotYourTurn, Message: "It's Alice's turn right now"}, nil).Times(1)
			},
			checkResponse: func(t *testing.T, msg *slack.Msg) {
				assert.Equal(t, slack.ResponseTypeEphemeral, msg.ResponseType)
				assert.Contains(t, msg.Text, "You can't pick right now: It's Alice's turn right now")
			},
		},
		{
			name: "Should keep non admins away from admin commands",
			args: args{userID: "UBOB", text: "skip current"},
			checkResponse: func(t *testing.T, msg *slack.Msg) {
				assert.Contains(t, msg.Text, "Only club admins")
			},
		},
		{
			name: "Should skip and announce in the channel",
			args: args{userID: test.AdminUserID, text: "skip next sick"},
			buildMocks: func(ctx context.Context, m test.ServiceMocks, args args) {
				m.RotationServiceMock.EXPECT().Skip(gomock.Any(), domain.SkipNext, args.userID, "sick").
					Return(&entity.SkipResult{
						Skip:        &entity.Skip{Member: bob, PeriodStart: date(2025, 5, 19), PeriodEnd: date(2025, 6, 2)},
						PickDeleted: true,
						Current:     turn(alice, date(2025, 5, 5)),
						Next:        turn(carol, date(2025, 5, 19)),
					}, nil).Times(1)

				m.SlackClientMock.EXPECT().PostMessage(test.ChannelID, gomock.Any()).
					Return(test.ChannelID, "1700000000.000100", nil).Times(1)
			},
			checkResponse: func(t *testing.T, msg *slack.Msg) {
				assert.Equal(t, slack.ResponseTypeEphemeral, msg.ResponseType)
				assert.Contains(t, msg.Text, "Skip recorded")
			},
		},
		{
			name: "Should answer in channel when the announcement fails",
			args: args{userID: test.AdminUserID, text: "skip current"},
			buildMocks: func(ctx context.Context, m test.ServiceMocks, args args) {
				m.RotationServiceMock.EXPECT().Skip(gomock.Any(), domain.SkipCurrent, args.userID, "").
					Return(&entity.SkipResult{
						Skip:    &entity.Skip{Member: alice, PeriodStart: date(2025, 5, 5), PeriodEnd: date(2025, 5, 19)},
						Current: turn(bob, date(2025, 5, 5)),
						Next:    turn(carol, date(2025, 5, 19)),
					}, nil).Times(1)

				m.SlackClientMock.EXPECT().PostMessage(test.ChannelID, gomock.Any()).
					Return("", "", errors.New("not_in_channel")).Times(1)
			},
			checkResponse: func(t *testing.T, msg *slack.Msg) {
				assert.Equal(t, slack.ResponseTypeInChannel, msg.ResponseType)
				assert.Contains(t, msg.Text, "<@UALICE>'s turn (2025-05-05 → 2025-05-19) was skipped")
				assert.Contains(t, msg.Text, "Now picking: *Bob*")
			},
		},
		{
			name: "Should add a member using the slack name",
			args: args{userID: test.AdminUserID, text: "add <@UDAVE|dave>"},
			buildMocks: func(ctx context.Context, m test.ServiceMocks, args args) {
				user := &slack.User{ID: "UDAVE", Name: "dave", RealName: "Dave Bowman"}
				m.SlackClientMock.EXPECT().GetUserInfo("UDAVE").Return(user, nil).Times(1)

				m.RosterServiceMock.EXPECT().AddMember(gomock.Any(), "UDAVE", "Dave Bowman").
					Return(&entity.Member{ID: 4, Handle: "UDAVE", DisplayName: "Dave Bowman", Position: intPtr(3)}, nil).Times(1)
			},
			checkResponse: func(t *testing.T, msg *slack.Msg) {
				assert.Equal(t, slack.ResponseTypeInChannel, msg.ResponseType)
				assert.Contains(t, msg.Text, "<@UDAVE> joined the rotation at position 4")
			},
		},
		{
			name: "Should report a duplicate member",
			args: args{userID: test.AdminUserID, text: "add <@UBOB> Robert"},
			buildMocks: func(ctx context.Context, m test.ServiceMocks, args args) {
				m.RosterServiceMock.EXPECT().AddMember(gomock.Any(), "UBOB", "Robert").
					Return(nil, domain.DuplicateMember("UBOB", "handle already registered")).Times(1)
			},
			checkResponse: func(t *testing.T, msg *slack.Msg) {
				assert.Contains(t, msg.Text, "<@UBOB>: handle already registered")
			},
		},
		{
			name: "Should tell who was removed while picking",
			args: args{userID: test.AdminUserID, text: "remove <@UBOB>"},
			buildMocks: func(ctx context.Context, m test.ServiceMocks, args args) {
				m.RosterServiceMock.EXPECT().RemoveMember(gomock.Any(), "UBOB").
					Return(&entity.RemovalResult{Member: bob, Position: 1, WasCurrent: true}, nil).Times(1)
			},
			checkResponse: func(t *testing.T, msg *slack.Msg) {
				assert.Contains(t, msg.Text, "They were picking")
			},
		},
		{
			name: "Should convert reactivate positions from one based",
			args: args{userID: test.AdminUserID, text: "reactivate <@UBOB> 1"},
			buildMocks: func(ctx context.Context, m test.ServiceMocks, args args) {
				m.RosterServiceMock.EXPECT().ReactivateMember(gomock.Any(), "UBOB", intPtr(0)).
					Return(&entity.Member{Handle: "UBOB", Position: intPtr(0)}, nil).Times(1)
			},
			checkResponse: func(t *testing.T, msg *slack.Msg) {
				assert.Contains(t, msg.Text, "back in the rotation at position 1")
			},
		},
		{
			name: "Should name the members a reorder leaves out",
			args: args{userID: test.AdminUserID, text: "reorder <@UCAROL> <@UALICE>"},
			buildMocks: func(ctx context.Context, m test.ServiceMocks, args args) {
				m.RosterServiceMock.EXPECT().ReorderMembers(gomock.Any(), []string{"UCAROL", "UALICE"}, false).
					Return(nil, domain.IncompleteRoster([]string{"UBOB"})).Times(1)
			},
			checkResponse: func(t *testing.T, msg *slack.Msg) {
				assert.Contains(t, msg.Text, "leaves out <@UBOB>")
				assert.Contains(t, msg.Text, "--partial")
			},
		},
		{
			name: "Should park a partial reorder until confirmed",
			args: args{userID: test.AdminUserID, text: "reorder <@UCAROL> <@UALICE> --partial"},
			buildMocks: func(ctx context.Context, m test.ServiceMocks, args args) {
				m.ConfirmerMock.EXPECT().Request(args.userID, gomock.Any()).
					Return(date(2025, 5, 10).Add(30 * time.Second)).Times(1)
			},
			checkResponse: func(t *testing.T, msg *slack.Msg) {
				assert.Equal(t, slack.ResponseTypeEphemeral, msg.ResponseType)
				assert.Contains(t, msg.Text, "/movieclub confirm")
				assert.Contains(t, msg.Text, "00:00:30")
			},
		},
		{
			name: "Should run the pending action on confirm",
			args: args{userID: test.AdminUserID, text: "confirm"},
			buildMocks: func(ctx context.Context, m test.ServiceMocks, args args) {
				m.ConfirmerMock.EXPECT().Confirm(gomock.Any(), args.userID).
					Return("🎬 New roster:\n1. Alice\n", nil).Times(1)
			},
			checkResponse: func(t *testing.T, msg *slack.Msg) {
				assert.Equal(t, slack.ResponseTypeInChannel, msg.ResponseType)
				assert.Contains(t, msg.Text, "New roster")
			},
		},
		{
			name: "Should report a late confirmation",
			args: args{userID: test.AdminUserID, text: "confirm"},
			buildMocks: func(ctx context.Context, m test.ServiceMocks, args args) {
				m.ConfirmerMock.EXPECT().Confirm(gomock.Any(), args.userID).
					Return("", &domain.Error{Kind: domain.ErrTimeout}).Times(1)
			},
			checkResponse: func(t *testing.T, msg *slack.Msg) {
				assert.Contains(t, msg.Text, "timed out, nothing was changed")
			},
		},
		{
			name: "Should start the rotation",
			args: args{userID: test.AdminUserID, text: "start May 5, 2025"},
			buildMocks: func(ctx context.Context, m test.ServiceMocks, args args) {
				m.RotationServiceMock.EXPECT().SetRotationStart(gomock.Any(), date(2025, 5, 5)).Return(nil).Times(1)
			},
			checkResponse: func(t *testing.T, msg *slack.Msg) {
				assert.Contains(t, msg.Text, "starts on 2025-05-05")
			},
		},
		{
			name: "Should show what the current picker chose",
			args: args{userID: "UBOB", text: "now"},
			buildMocks: func(ctx context.Context, m test.ServiceMocks, args args) {
				cur := turn(alice, date(2025, 5, 5))
				cur.Pick = &entity.Pick{ID: 3, Member: alice, Title: "Alien", Year: intPtr(1979)}
				m.RotationServiceMock.EXPECT().CurrentPicker(gomock.Any()).Return(cur, nil).Times(1)
			},
			checkResponse: func(t *testing.T, msg *slack.Msg) {
				assert.Contains(t, msg.Text, "*Alice* (2025-05-05 → 2025-05-19), picked *Alien* (1979)")
			},
		},
		{
			name: "Should force a pick for a member",
			args: args{userID: test.AdminUserID, text: "forcepick <@UBOB|bob> Heat 1995"},
			buildMocks: func(ctx context.Context, m test.ServiceMocks, args args) {
				m.PickServiceMock.EXPECT().
					ForcePick(gomock.Any(), "UBOB", entity.Selection{Title: "Heat", Year: intPtr(1995)}).
					Return(&entity.Pick{
						ID:          7,
						Member:      bob,
						Title:       "Heat",
						Year:        intPtr(1995),
						PeriodStart: date(2025, 5, 19),
						PeriodEnd:   date(2025, 6, 2),
					}, nil).Times(1)
			},
			checkResponse: func(t *testing.T, msg *slack.Msg) {
				assert.Equal(t, slack.ResponseTypeInChannel, msg.ResponseType)
				assert.Contains(t, msg.Text, "#7 *Heat* (1995) by Bob")
				assert.Contains(t, msg.Text, "for <@UBOB>")
			},
		},
		{
			name: "Should keep non admins from forcing picks",
			args: args{userID: "UBOB", text: "forcepick <@UBOB> Heat"},
			checkResponse: func(t *testing.T, msg *slack.Msg) {
				assert.Contains(t, msg.Text, "Only club admins")
			},
		},
		{
			name: "Should add a historical pick",
			args: args{userID: test.AdminUserID, text: "historical <@UCAROL> 2025-03-10 Paris, Texas 1984"},
			buildMocks: func(ctx context.Context, m test.ServiceMocks, args args) {
				m.PickServiceMock.EXPECT().
					AddHistoricalPick(gomock.Any(), "UCAROL", entity.Selection{Title: "Paris, Texas", Year: intPtr(1984)}, date(2025, 3, 10)).
					Return(&entity.Pick{
						ID:          2,
						Member:      carol,
						Title:       "Paris, Texas",
						Year:        intPtr(1984),
						PeriodStart: date(2025, 3, 10),
						PeriodEnd:   date(2025, 3, 24),
					}, nil).Times(1)
			},
			checkResponse: func(t *testing.T, msg *slack.Msg) {
				assert.Contains(t, msg.Text, "#2 *Paris, Texas* (1984) by Carol, 2025-03-10 → 2025-03-24")
			},
		},
		{
			name: "Should reject a historical pick without a date",
			args: args{userID: test.AdminUserID, text: "historical <@UCAROL> yesterday Heat"},
			checkResponse: func(t *testing.T, msg *slack.Msg) {
				assert.Contains(t, msg.Text, "is not a date")
			},
		},
		{
			name: "Should search the catalog",
			args: args{userID: "UCAROL", text: "search The Thing 1982"},
			buildMocks: func(ctx context.Context, m test.ServiceMocks, args args) {
				m.PickServiceMock.EXPECT().SearchMovie(gomock.Any(), "The Thing", intPtr(1982)).
					Return(&entity.MovieDetails{
						Title:     "The Thing",
						Year:      1982,
						Rating:    8.2,
						Directors: []string{"John Carpenter"},
						ImdbID:    "tt0084787",
					}, nil).Times(1)
			},
			checkResponse: func(t *testing.T, msg *slack.Msg) {
				assert.Equal(t, slack.ResponseTypeEphemeral, msg.ResponseType)
				assert.Contains(t, msg.Text, "*The Thing* (1982), rated 8.2")
				assert.Contains(t, msg.Text, "Directed by John Carpenter")
				assert.Contains(t, msg.Text, "tt0084787")
			},
		},
		{
			name: "Should report a movie the catalog doesn't know",
			args: args{userID: "UCAROL", text: "search Nothing Like It"},
			buildMocks: func(ctx context.Context, m test.ServiceMocks, args args) {
				m.PickServiceMock.EXPECT().SearchMovie(gomock.Any(), "Nothing Like It", nil).
					Return(nil, domain.NotFound(`movie matching "Nothing Like It"`, "")).Times(1)
			},
			checkResponse: func(t *testing.T, msg *slack.Msg) {
				assert.Contains(t, msg.Text, `No movie matching "Nothing Like It" found`)
			},
		},
		{
			name: "Should rate a pick",
			args: args{userID: "UCAROL", text: "rate #12 8.5 great ending"},
			buildMocks: func(ctx context.Context, m test.ServiceMocks, args args) {
				m.RatingServiceMock.EXPECT().Rate(gomock.Any(), args.userID, int64(12), 8.5, "great ending").
					Return(&entity.Rating{PickID: 12, Value: 8.5}, nil).Times(1)
				m.RatingServiceMock.EXPECT().AverageRating(gomock.Any(), int64(12)).
					Return(&entity.RatingSummary{PickID: 12, Average: 7.25, Count: 2}, nil).Times(1)
			},
			checkResponse: func(t *testing.T, msg *slack.Msg) {
				assert.Contains(t, msg.Text, "rated pick #12 8.5/10")
				assert.Contains(t, msg.Text, "from 2 ratings")
			},
		},
		{
			name: "Should show the rating scale on a bad score",
			args: args{userID: "UCAROL", text: "rate 12 11"},
			buildMocks: func(ctx context.Context, m test.ServiceMocks, args args) {
				m.RatingServiceMock.EXPECT().Rate(gomock.Any(), args.userID, int64(12), 11.0, "").
					Return(nil, domain.OutOfRange("rating 11", domain.MinRating, domain.MaxRating)).Times(1)
			},
			checkResponse: func(t *testing.T, msg *slack.Msg) {
				assert.Contains(t, msg.Text, "rating 11 is out of range, use 1 to 10")
			},
		},
		{
			name: "Should reject a bad pick number",
			args: args{userID: "UCAROL", text: "ratings twelve"},
			checkResponse: func(t *testing.T, msg *slack.Msg) {
				assert.Contains(t, msg.Text, "is not a pick number")
			},
		},
		{
			name: "Should list members",
			args: args{userID: "UCAROL", text: "members"},
			buildMocks: func(ctx context.Context, m test.ServiceMocks, args args) {
				m.RosterServiceMock.EXPECT().ListMembers(gomock.Any()).
					Return([]*entity.Member{alice, bob}, []*entity.Member{{Handle: "UOLD", DisplayName: "Olga"}}, nil).Times(1)
			},
			checkResponse: func(t *testing.T, msg *slack.Msg) {
				assert.Contains(t, msg.Text, "1. Alice\n2. Bob")
				assert.Contains(t, msg.Text, "*Inactive:*\n• Olga")
			},
		},
		{
			name: "Should show rater stats",
			args: args{userID: "UCAROL", text: "stats"},
			buildMocks: func(ctx context.Context, m test.ServiceMocks, args args) {
				m.RatingServiceMock.EXPECT().RaterStats(gomock.Any(), args.userID).
					Return(&entity.RaterStats{Member: carol, Count: 3, Average: 7, Min: 5, Max: 9.5}, nil).Times(1)
			},
			checkResponse: func(t *testing.T, msg *slack.Msg) {
				assert.Contains(t, msg.Text, "Carol rated 3 picks. Average 7.0, lowest 5, highest 9.5")
			},
		},
		{
			name: "Should hide unexpected errors",
			args: args{userID: "UCAROL", text: "recent"},
			buildMocks: func(ctx context.Context, m test.ServiceMocks, args args) {
				m.PickServiceMock.EXPECT().RecentPicks(gomock.Any(), 0).
					Return(nil, errors.New("database is locked")).Times(1)
			},
			checkResponse: func(t *testing.T, msg *slack.Msg) {
				assert.Contains(t, msg.Text, "Something went wrong")
				assert.NotContains(t, msg.Text, "locked")
			},
		},
		{
			name: "Should show help for an empty command",
			args: args{userID: "UCAROL", text: ""},
			checkResponse: func(t *testing.T, msg *slack.Msg) {
				assert.Contains(t, msg.Text, "*Available Commands:*")
			},
		},
		{
			name: "Should point unknown commands to help",
			args: args{userID: "UCAROL", text: "dance"},
			checkResponse: func(t *testing.T, msg *slack.Msg) {
				assert.Contains(t, msg.Text, "unknown command: dance")
				assert.Contains(t, msg.Text, "/movieclub help")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, handler, ctrl := test.GetHandlerTest(t)
			defer ctrl.Finish()

			if tt.buildMocks != nil {
				tt.buildMocks(context.Background(), m, tt.args)
			}

			recorder, msg := test.Run(t, handler, tt.args.userID, tt.args.text)
			require.Equal(t, http.StatusOK, recorder.Code)
			require.NotNil(t, msg)
			tt.checkResponse(t, msg)
		})
	}
}

func TestSlackHandler_HandleSlashCommand_BadSignature(t *testing.T) {
	_, handler, ctrl := test.GetHandlerTest(t)
	defer ctrl.Finish()

	req := test.CreateSlackRequest(t, "/movieclub", "current", test.ChannelID, "movie-club", "UBOB", "T123456789", "wrong-secret")
	recorder := test.CreateTestRecorder()

	handler.HandleSlashCommand(recorder, req)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}
