package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/diegoclair/movie-club-bot/internal/domain"
	"github.com/diegoclair/movie-club-bot/internal/domain/contract"
	slackcmd "github.com/diegoclair/movie-club-bot/internal/domain/slack"
	"github.com/diegoclair/movie-club-bot/internal/domain/service"
	"github.com/diegoclair/movie-club-bot/internal/metrics"
	"github.com/rs/zerolog/log"
	"github.com/slack-go/slack"
)

type SlackHandler struct {
	slackClient   contract.SlackClient
	roster        contract.RosterService
	rotation      contract.RotationService
	picks         contract.PickService
	ratings       contract.RatingService
	confirm       contract.Confirmer
	signingSecret string
	isAdmin       func(userID string) bool
	metrics       *metrics.Metrics
}

func New(slackClient contract.SlackClient, svc *service.Instance, signingSecret string, isAdmin func(string) bool, m *metrics.Metrics) *SlackHandler {
	if isAdmin == nil {
		isAdmin = func(string) bool { return true }
	}
	return &SlackHandler{
		slackClient:   slackClient,
		roster:        svc.Roster,
		rotation:      svc.Rotation,
		picks:         svc.Picks,
		ratings:       svc.Ratings,
		confirm:       svc.Confirm,
		signingSecret: signingSecret,
		isAdmin:       isAdmin,
		metrics:       m,
	}
}

func (h *SlackHandler) HandleSlashCommand(w http.ResponseWriter, r *http.Request) {
	// Verify request from Slack
	body, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	r.Body = io.NopCloser(bytes.NewBuffer(body))

	// Verify Slack signature
	verifier, err := slack.NewSecretsVerifier(r.Header, h.signingSecret)
	if err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	if _, err := verifier.Write(body); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if err := verifier.Ensure(); err != nil {
		log.Warn().Err(err).Msg("rejected slash command with bad signature")
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	s, err := slack.SlashCommandParse(r)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	cmd, err := slackcmd.ParseCommand(s.Text)
	if err != nil {
		h.respond(w, h.createErrorResponse(fmt.Sprintf("%v. Try `%s help`", err, s.Command)))
		return
	}

	started := time.Now()
	response, ok := h.handleCommand(r.Context(), cmd, &s)
	h.metrics.CommandHandled(string(cmd.Type), ok, time.Since(started))

	h.respond(w, response)
}

// handleCommand dispatches cmd and reports whether it succeeded
func (h *SlackHandler) handleCommand(ctx context.Context, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) (*slack.Msg, bool) {
	if cmd.Type.AdminOnly() && !h.isAdmin(slashCmd.UserID) {
		return h.createErrorResponse("Only club admins can do that"), false
	}

	var (
		msg *slack.Msg
		err error
	)
	switch cmd.Type {
	case slackcmd.CmdCurrent:
		msg, err = h.handleCurrent(ctx)
	case slackcmd.CmdNext:
		msg, err = h.handleNext(ctx)
	case slackcmd.CmdSchedule:
		msg, err = h.handleSchedule(ctx, cmd)
	case slackcmd.CmdCanPick:
		msg, err = h.handleCanPick(ctx, slashCmd)
	case slackcmd.CmdPick:
		msg, err = h.handlePick(ctx, cmd, slashCmd)
	case slackcmd.CmdSkip:
		msg, err = h.handleSkip(ctx, cmd, slashCmd)
	case slackcmd.CmdUndoSkip:
		msg, err = h.handleUndoSkip(ctx, cmd)
	case slackcmd.CmdSkips:
		msg, err = h.handleSkips(ctx)
	case slackcmd.CmdAdd:
		msg, err = h.handleAdd(ctx, cmd)
	case slackcmd.CmdRemove:
		msg, err = h.handleRemove(ctx, cmd)
	case slackcmd.CmdReactivate:
		msg, err = h.handleReactivate(ctx, cmd)
	case slackcmd.CmdSwap:
		msg, err = h.handleSwap(ctx, cmd)
	case slackcmd.CmdReorder:
		msg, err = h.handleReorder(ctx, cmd, slashCmd)
	case slackcmd.CmdSetup:
		msg, err = h.handleSetup(ctx, cmd, slashCmd)
	case slackcmd.CmdStart:
		msg, err = h.handleStart(ctx, cmd)
	case slackcmd.CmdConfirm:
		msg, err = h.handleConfirm(ctx, slashCmd)
	case slackcmd.CmdRate:
		msg, err = h.handleRate(ctx, cmd, slashCmd)
	case slackcmd.CmdUnrate:
		msg, err = h.handleUnrate(ctx, cmd, slashCmd)
	case slackcmd.CmdRatings:
		msg, err = h.handleRatings(ctx, cmd)
	case slackcmd.CmdTop:
		msg, err = h.handleTop(ctx, cmd)
	case slackcmd.CmdRecent:
		msg, err = h.handleRecent(ctx, cmd)
	case slackcmd.CmdHistory:
		msg, err = h.handleHistory(ctx, cmd, slashCmd)
	case slackcmd.CmdStats:
		msg, err = h.handleStats(ctx, cmd, slashCmd)
	case slackcmd.CmdMembers:
		msg, err = h.handleMembers(ctx)
	case slackcmd.CmdDeletePick:
		msg, err = h.handleDeletePick(ctx, cmd)
	case slackcmd.CmdForcePick:
		msg, err = h.handleForcePick(ctx, cmd, slashCmd)
	case slackcmd.CmdHistorical:
		msg, err = h.handleHistorical(ctx, cmd)
	case slackcmd.CmdSearch:
		msg, err = h.handleSearch(ctx, cmd)
	case slackcmd.CmdHelp:
		msg = h.handleHelp()
	default:
		return h.createErrorResponse("Unknown command"), false
	}

	if err != nil {
		return h.createErrorResponse(errorMessage(err)), false
	}
	return msg, true
}

// errorMessage renders a domain error for humans. Unexpected errors are
// logged and hidden.
func errorMessage(err error) string {
	de, ok := domain.AsError(err)
	if !ok {
		switch {
		case errors.Is(err, domain.ErrRotationNotConfigured):
			return "The rotation has not started yet. An admin can run `start YYYY-MM-DD`"
		case errors.Is(err, domain.ErrNoAvailablePicker):
			return "Nobody is available to pick"
		case errors.Is(err, domain.ErrTimeout):
			return "Confirmation timed out, nothing was changed"
		}
		log.Error().Err(err).Msg("command failed")
		return "Something went wrong, please try again"
	}

	switch de.Kind {
	case domain.ErrNotFound:
		if de.Handle != "" {
			return fmt.Sprintf("No %s found for %s", de.Detail, mention(de.Handle))
		}
		return fmt.Sprintf("No %s found", de.Detail)
	case domain.ErrDuplicateMember:
		return fmt.Sprintf("%s: %s", mention(de.Handle), de.Detail)
	case domain.ErrAlreadyActive:
		return fmt.Sprintf("%s is already in the rotation", mention(de.Handle))
	case domain.ErrAlreadySkipped:
		return fmt.Sprintf("%s is already skipped for %s", mention(de.Handle), de.Detail)
	case domain.ErrNotEligible:
		return fmt.Sprintf("You can't pick right now: %s", de.Detail)
	case domain.ErrOutOfRange:
		return fmt.Sprintf("%s is out of range, use %g to %g", de.Detail, de.Min, de.Max)
	case domain.ErrIncompleteRoster:
		return fmt.Sprintf("The new order leaves out %s. Add `--partial` to drop them", mentions(de.Missing))
	case domain.ErrTimeout:
		return "Confirmation timed out, nothing was changed"
	case domain.ErrInvalidInput:
		return de.Detail
	}
	return de.Error()
}

func (h *SlackHandler) handleHelp() *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         slackcmd.GetHelpText(),
	}
}

func ephemeral(text string) *slack.Msg {
	return &slack.Msg{ResponseType: slack.ResponseTypeEphemeral, Text: text}
}

func inChannel(text string) *slack.Msg {
	return &slack.Msg{ResponseType: slack.ResponseTypeInChannel, Text: text}
}

func (h *SlackHandler) createErrorResponse(message string) *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         fmt.Sprintf("❌ %s", message),
	}
}

func (h *SlackHandler) respond(w http.ResponseWriter, msg *slack.Msg) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(msg); err != nil {
		log.Error().Err(err).Msg("failed to write slack response")
	}
}
