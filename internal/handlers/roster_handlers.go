package handlers

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/diegoclair/movie-club-bot/internal/domain"
	"github.com/diegoclair/movie-club-bot/internal/domain/entity"
	slackcmd "github.com/diegoclair/movie-club-bot/internal/domain/slack"
	"github.com/slack-go/slack"
)

// displayName asks Slack for the user's name
func (h *SlackHandler) displayName(handle string) (string, error) {
	user, err := h.slackClient.GetUserInfo(handle)
	if err != nil {
		return "", fmt.Errorf("failed to get slack user %s: %w", handle, err)
	}
	for _, name := range []string{user.Profile.DisplayName, user.RealName, user.Name} {
		if name = strings.TrimSpace(name); name != "" {
			return name, nil
		}
	}
	return handle, nil
}

func (h *SlackHandler) handleAdd(ctx context.Context, cmd *slackcmd.Command) (*slack.Msg, error) {
	handle, err := mentionArg(cmd.Args, 0, "add @user [name]")
	if err != nil {
		return nil, err
	}

	name := strings.Join(cmd.Args[1:], " ")
	if name == "" {
		if name, err = h.displayName(handle); err != nil {
			return nil, err
		}
	}

	member, err := h.roster.AddMember(ctx, handle, name)
	if err != nil {
		return nil, err
	}
	return inChannel(fmt.Sprintf("✅ %s joined the rotation at position %d", mention(member.Handle), *member.Position+1)), nil
}

func (h *SlackHandler) handleRemove(ctx context.Context, cmd *slackcmd.Command) (*slack.Msg, error) {
	handle, err := mentionArg(cmd.Args, 0, "remove @user")
	if err != nil {
		return nil, err
	}

	res, err := h.roster.RemoveMember(ctx, handle)
	if err != nil {
		return nil, err
	}

	text := fmt.Sprintf("👋 %s left the rotation", mention(handle))
	switch {
	case res.WasCurrent:
		text += ". They were picking, the next member takes over the current period"
	case res.WasNext:
		text += ". They were up next"
	}
	return inChannel(text), nil
}

func (h *SlackHandler) handleReactivate(ctx context.Context, cmd *slackcmd.Command) (*slack.Msg, error) {
	handle, err := mentionArg(cmd.Args, 0, "reactivate @user [position]")
	if err != nil {
		return nil, err
	}

	var position *int
	if len(cmd.Args) > 1 {
		p, err := strconv.Atoi(cmd.Args[1])
		if err != nil {
			return nil, domain.InvalidInput(fmt.Sprintf("%q is not a position", cmd.Args[1]))
		}
		// positions are shown starting at 1
		p--
		position = &p
	}

	member, err := h.roster.ReactivateMember(ctx, handle, position)
	if err != nil {
		if de, ok := domain.AsError(err); ok && de.Kind == domain.ErrOutOfRange {
			return nil, domain.InvalidInput(fmt.Sprintf("Position must be between 1 and %d", int(de.Max)+1))
		}
		return nil, err
	}
	return inChannel(fmt.Sprintf("✅ %s is back in the rotation at position %d", mention(handle), *member.Position+1)), nil
}

func (h *SlackHandler) handleSwap(ctx context.Context, cmd *slackcmd.Command) (*slack.Msg, error) {
	a, err := mentionArg(cmd.Args, 0, "swap @a @b")
	if err != nil {
		return nil, err
	}
	b, err := mentionArg(cmd.Args, 1, "swap @a @b")
	if err != nil {
		return nil, err
	}

	if err := h.roster.SwapMembers(ctx, a, b); err != nil {
		return nil, err
	}
	return inChannel(fmt.Sprintf("🔀 %s and %s swapped places", mention(a), mention(b))), nil
}

func (h *SlackHandler) handleReorder(ctx context.Context, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) (*slack.Msg, error) {
	args, partial := slackcmd.Flag(cmd.Args, "--partial")
	if len(args) == 0 {
		return nil, domain.InvalidInput("Use: `reorder @a @b ... [--partial]`")
	}

	handles := make([]string, 0, len(args))
	for i := range args {
		handle, err := mentionArg(args, i, "reorder @a @b ... [--partial]")
		if err != nil {
			return nil, err
		}
		handles = append(handles, handle)
	}

	reorder := func(ctx context.Context) (string, error) {
		active, err := h.roster.ReorderMembers(ctx, handles, partial)
		if err != nil {
			return "", err
		}
		return "🔢 New order:\n" + formatRoster(active), nil
	}

	if !partial {
		text, err := reorder(ctx)
		if err != nil {
			return nil, err
		}
		return inChannel(text), nil
	}

	return h.requestConfirmation(slashCmd, "Reordering with `--partial` takes everyone not listed out of the rotation.", reorder), nil
}

func (h *SlackHandler) handleSetup(ctx context.Context, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) (*slack.Msg, error) {
	if len(cmd.Args) == 0 {
		return nil, domain.InvalidInput("Use: `setup @a[:Name] @b[:Name] ...`")
	}

	members := make([]entity.MemberInput, 0, len(cmd.Args))
	for _, arg := range cmd.Args {
		ref, name, _ := strings.Cut(arg, ":")
		handle, ok := slackcmd.ParseMention(ref)
		if !ok {
			return nil, domain.InvalidInput(fmt.Sprintf("%q is not a user mention", ref))
		}
		if name == "" {
			var err error
			if name, err = h.displayName(handle); err != nil {
				return nil, err
			}
		}
		members = append(members, entity.MemberInput{Handle: handle, DisplayName: name})
	}

	setup := func(ctx context.Context) (string, error) {
		active, err := h.roster.SetupRoster(ctx, members)
		if err != nil {
			return "", err
		}
		return "🎬 New roster:\n" + formatRoster(active), nil
	}

	return h.requestConfirmation(slashCmd, fmt.Sprintf("This replaces the whole roster with %d members.", len(members)), setup), nil
}

// requestConfirmation parks action until the same user runs confirm
func (h *SlackHandler) requestConfirmation(slashCmd *slack.SlashCommand, warning string, action func(ctx context.Context) (string, error)) *slack.Msg {
	deadline := h.confirm.Request(slashCmd.UserID, action)
	return ephemeral(fmt.Sprintf("⚠️ %s Run `%s confirm` before %s to go ahead.",
		warning, slashCmd.Command, deadline.Format("15:04:05")))
}

func (h *SlackHandler) handleMembers(ctx context.Context) (*slack.Msg, error) {
	active, inactive, err := h.roster.ListMembers(ctx)
	if err != nil {
		return nil, err
	}
	if len(active) == 0 && len(inactive) == 0 {
		return ephemeral("Nobody in the club yet. An admin can use `add @user` or `setup`"), nil
	}

	var b strings.Builder
	b.WriteString("*Rotation order:*\n")
	b.WriteString(formatRoster(active))
	if len(inactive) > 0 {
		b.WriteString("\n*Inactive:*\n")
		for _, m := range inactive {
			fmt.Fprintf(&b, "• %s\n", m.DisplayName)
		}
	}
	return ephemeral(b.String()), nil
}

func formatRoster(members []*entity.Member) string {
	var b strings.Builder
	for i, m := range members {
		fmt.Fprintf(&b, "%d. %s\n", i+1, m.DisplayName)
	}
	return b.String()
}
