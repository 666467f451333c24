package handlers

import (
	"context"
	"fmt"
	"strings"

	"github.com/diegoclair/movie-club-bot/internal/domain"
	slackcmd "github.com/diegoclair/movie-club-bot/internal/domain/slack"
	"github.com/rs/zerolog/log"
	"github.com/slack-go/slack"
)

func (h *SlackHandler) handleCurrent(ctx context.Context) (*slack.Msg, error) {
	cur, err := h.rotation.CurrentPicker(ctx)
	if err != nil {
		return nil, err
	}
	return ephemeral(fmt.Sprintf("🎬 Current picker: %s", formatTurn(cur))), nil
}

func (h *SlackHandler) handleNext(ctx context.Context) (*slack.Msg, error) {
	next, err := h.rotation.NextPicker(ctx)
	if err != nil {
		return nil, err
	}
	return ephemeral(fmt.Sprintf("⏭️ Next picker: %s", formatTurn(next))), nil
}

func (h *SlackHandler) handleSchedule(ctx context.Context, cmd *slackcmd.Command) (*slack.Msg, error) {
	k, err := parseLimit(cmd.Args)
	if err != nil {
		return nil, err
	}

	turns, err := h.rotation.Schedule(ctx, k)
	if err != nil {
		return nil, err
	}

	var b strings.Builder
	b.WriteString("*Upcoming turns:*\n")
	for _, t := range turns {
		switch {
		case t.IsSkipped:
			fmt.Fprintf(&b, "• ~%s~ skipped (%s)\n", t.Member.DisplayName, t.Period)
		case t.IsCurrent:
			fmt.Fprintf(&b, "• %s ← now\n", formatTurn(t))
		default:
			fmt.Fprintf(&b, "• %s\n", formatTurn(t))
		}
	}
	return ephemeral(b.String()), nil
}

func (h *SlackHandler) handleSkip(ctx context.Context, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) (*slack.Msg, error) {
	if len(cmd.Args) == 0 {
		return nil, domain.InvalidInput("Use: `skip current|next [reason]`")
	}

	target := domain.SkipTarget(strings.ToLower(cmd.Args[0]))
	reason := strings.Join(cmd.Args[1:], " ")

	res, err := h.rotation.Skip(ctx, target, slashCmd.UserID, reason)
	if err != nil {
		return nil, err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "⏭️ %s's turn (%s) was skipped", mention(res.Skip.Member.Handle), res.Skip.Period())
	if reason != "" {
		fmt.Fprintf(&b, ": %s", reason)
	}
	if res.PickDeleted {
		b.WriteString(". Their pick was removed")
	}
	fmt.Fprintf(&b, "\nNow picking: %s\nNext: %s", formatTurn(res.Current), formatTurn(res.Next))
	text := b.String()

	if _, _, err := h.slackClient.PostMessage(slashCmd.ChannelID, slack.MsgOptionText(text, false)); err != nil {
		log.Warn().Err(err).Str("channel", slashCmd.ChannelID).Msg("failed to announce skip, answering in channel")
		return inChannel(text), nil
	}
	return ephemeral("✅ Skip recorded"), nil
}

func (h *SlackHandler) handleUndoSkip(ctx context.Context, cmd *slackcmd.Command) (*slack.Msg, error) {
	handle, err := mentionArg(cmd.Args, 0, "undoskip @user")
	if err != nil {
		return nil, err
	}

	skip, err := h.rotation.UndoSkip(ctx, handle)
	if err != nil {
		return nil, err
	}
	return inChannel(fmt.Sprintf("↩️ %s's skip for %s was undone", mention(handle), skip.Period())), nil
}

func (h *SlackHandler) handleSkips(ctx context.Context) (*slack.Msg, error) {
	skips, err := h.rotation.ListSkips(ctx)
	if err != nil {
		return nil, err
	}
	if len(skips) == 0 {
		return ephemeral("No skips recorded"), nil
	}

	var b strings.Builder
	b.WriteString("*Skipped turns:*\n")
	for _, s := range skips {
		fmt.Fprintf(&b, "• %s, %s", s.Member.DisplayName, s.Period())
		if s.Reason != "" {
			fmt.Fprintf(&b, ": %s", s.Reason)
		}
		b.WriteString("\n")
	}
	return ephemeral(b.String()), nil
}

func (h *SlackHandler) handleStart(ctx context.Context, cmd *slackcmd.Command) (*slack.Msg, error) {
	if cmd.Rest == "" {
		return nil, domain.InvalidInput("Use: `start YYYY-MM-DD`")
	}

	start, err := domain.ParseDate(cmd.Rest)
	if err != nil {
		return nil, err
	}
	if err := h.rotation.SetRotationStart(ctx, start); err != nil {
		return nil, err
	}
	return inChannel(fmt.Sprintf("📅 The rotation starts on %s", formatDate(start))), nil
}

func (h *SlackHandler) handleConfirm(ctx context.Context, slashCmd *slack.SlashCommand) (*slack.Msg, error) {
	text, err := h.confirm.Confirm(ctx, slashCmd.UserID)
	if err != nil {
		return nil, err
	}
	return inChannel(text), nil
}

// mentionArg reads the user mention at args[i]
func mentionArg(args []string, i int, usage string) (string, error) {
	if len(args) <= i {
		return "", domain.InvalidInput(fmt.Sprintf("Use: `%s`", usage))
	}
	handle, ok := slackcmd.ParseMention(args[i])
	if !ok {
		return "", domain.InvalidInput(fmt.Sprintf("%q is not a user mention", args[i]))
	}
	return handle, nil
}
