package test

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/diegoclair/movie-club-bot/internal/domain/service"
	"github.com/diegoclair/movie-club-bot/internal/handlers"
	"github.com/diegoclair/movie-club-bot/mocks"
	"github.com/slack-go/slack"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	SigningSecret = "test-signing-secret"
	AdminUserID   = "UADMIN"
	ChannelID     = "C123456789"
)

type ServiceMocks struct {
	RosterServiceMock   *mocks.MockRosterService
	RotationServiceMock *mocks.MockRotationService
	PickServiceMock     *mocks.MockPickService
	RatingServiceMock   *mocks.MockRatingService
	ConfirmerMock       *mocks.MockConfirmer
	SlackClientMock     *mocks.MockSlackClient
}

func GetHandlerTest(t *testing.T) (m ServiceMocks, handler *handlers.SlackHandler, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)
	m = ServiceMocks{
		RosterServiceMock:   mocks.NewMockRosterService(ctrl),
		RotationServiceMock: mocks.NewMockRotationService(ctrl),
		PickServiceMock:     mocks.NewMockPickService(ctrl),
		RatingServiceMock:   mocks.NewMockRatingService(ctrl),
		ConfirmerMock:       mocks.NewMockConfirmer(ctrl),
		SlackClientMock:     mocks.NewMockSlackClient(ctrl),
	}

	svc := &service.Instance{
		Roster:   m.RosterServiceMock,
		Rotation: m.RotationServiceMock,
		Picks:    m.PickServiceMock,
		Ratings:  m.RatingServiceMock,
		Confirm:  m.ConfirmerMock,
	}
	isAdmin := func(userID string) bool { return userID == AdminUserID }
	handler = handlers.New(m.SlackClientMock, svc, SigningSecret, isAdmin, nil)

	return
}

// Run sends text as a signed /movieclub command from userID and decodes the reply
func Run(t *testing.T, handler *handlers.SlackHandler, userID, text string) (*httptest.ResponseRecorder, *slack.Msg) {
	t.Helper()

	req := CreateSlackRequest(t, "/movieclub", text, ChannelID, "movie-club", userID, "T123456789", SigningSecret)
	recorder := CreateTestRecorder()
	handler.HandleSlashCommand(recorder, req)

	if recorder.Code != http.StatusOK {
		return recorder, nil
	}
	var msg slack.Msg
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &msg))
	return recorder, &msg
}

// CreateSlackRequest creates a properly signed Slack slash command request
func CreateSlackRequest(t *testing.T, command, text, channelID, channelName, userID, teamID, signingSecret string) *http.Request {
	t.Helper()

	// Create form data matching Slack's slash command format
	form := url.Values{
		"token":        {"test-token"},
		"team_id":      {teamID},
		"team_domain":  {"test-team"},
		"channel_id":   {channelID},
		"channel_name": {channelName},
		"user_id":      {userID},
		"user_name":    {"test-user"},
		"command":      {command},
		"text":         {text},
		"response_url": {"https://hooks.slack.com/commands/test"},
		"trigger_id":   {"test-trigger-id"},
	}

	body := form.Encode()

	req, err := http.NewRequest(http.MethodPost, "/slack/commands", strings.NewReader(body))
	require.NoError(t, err)

	// Set content type
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	// Generate Slack signature
	timestamp := strconv.FormatInt(time.Now().Unix(), 10)
	req.Header.Set("X-Slack-Request-Timestamp", timestamp)

	sig := generateSlackSignature(signingSecret, timestamp, body)
	req.Header.Set("X-Slack-Signature", sig)

	return req
}

func generateSlackSignature(signingSecret, timestamp, body string) string {
	baseString := fmt.Sprintf("v0:%s:%s", timestamp, body)
	h := hmac.New(sha256.New, []byte(signingSecret))
	h.Write([]byte(baseString))
	signature := hex.EncodeToString(h.Sum(nil))
	return fmt.Sprintf("v0=%s", signature)
}

func CreateTestRecorder() *httptest.ResponseRecorder {
	return httptest.NewRecorder()
}