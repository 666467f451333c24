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

func (h *SlackHandler) handleCanPick(ctx context.Context, slashCmd *slack.SlashCommand) (*slack.Msg, error) {
	el, err := h.picks.CanRegister(ctx, slashCmd.UserID)
	if err != nil {
		return nil, err
	}

	icon := "⏳"
	if el.Allowed {
		icon = "✅"
	}
	return ephemeral(fmt.Sprintf("%s %s", icon, el.Message)), nil
}

func (h *SlackHandler) handlePick(ctx context.Context, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) (*slack.Msg, error) {
	title, year := slackcmd.SplitTitleYear(cmd.Rest)
	if title == "" {
		return nil, domain.InvalidInput("Use: `pick TITLE [YEAR]`")
	}

	el, err := h.picks.CanRegister(ctx, slashCmd.UserID)
	if err != nil {
		return nil, err
	}
	if !el.Allowed {
		return nil, domain.NotEligible(slashCmd.UserID, el.Message)
	}

	pick, err := h.picks.RegisterPick(ctx, slashCmd.UserID, entity.Selection{Title: title, Year: year}, el.EarlyAccess)
	if err != nil {
		return nil, err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "🍿 %s picked %s", mention(slashCmd.UserID), formatPick(pick))
	if el.EarlyAccess {
		b.WriteString(" (early access)")
	}
	if d := pick.Details; d.Synopsis != "" {
		fmt.Fprintf(&b, "\n>%s", d.Synopsis)
	}
	if len(pick.Details.Directors) > 0 {
		fmt.Fprintf(&b, "\nDirected by %s", strings.Join(pick.Details.Directors, ", "))
	}
	fmt.Fprintf(&b, "\nRate it with `%s rate %d SCORE`", slashCmd.Command, pick.ID)
	return inChannel(b.String()), nil
}

func (h *SlackHandler) handleRate(ctx context.Context, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) (*slack.Msg, error) {
	if len(cmd.Args) < 2 {
		return nil, domain.InvalidInput("Use: `rate PICK SCORE [review]`")
	}
	pickID, err := parsePickID(cmd.Args[0])
	if err != nil {
		return nil, err
	}
	value, err := strconv.ParseFloat(strings.TrimSuffix(cmd.Args[1], "/10"), 64)
	if err != nil {
		return nil, domain.InvalidInput(fmt.Sprintf("%q is not a score", cmd.Args[1]))
	}
	review := strings.Join(cmd.Args[2:], " ")

	rating, err := h.ratings.Rate(ctx, slashCmd.UserID, pickID, value, review)
	if err != nil {
		return nil, err
	}

	summary, err := h.ratings.AverageRating(ctx, pickID)
	if err != nil {
		return nil, err
	}
	return inChannel(fmt.Sprintf("⭐ %s rated pick #%d %s/10. Average %.1f from %d ratings",
		mention(slashCmd.UserID), pickID, formatScore(rating.Value), summary.Average, summary.Count)), nil
}

func (h *SlackHandler) handleUnrate(ctx context.Context, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) (*slack.Msg, error) {
	if len(cmd.Args) == 0 {
		return nil, domain.InvalidInput("Use: `unrate PICK`")
	}
	pickID, err := parsePickID(cmd.Args[0])
	if err != nil {
		return nil, err
	}

	if err := h.ratings.DeleteRating(ctx, slashCmd.UserID, pickID); err != nil {
		return nil, err
	}
	return ephemeral(fmt.Sprintf("🗑️ Your rating for pick #%d was removed", pickID)), nil
}

func (h *SlackHandler) handleRatings(ctx context.Context, cmd *slackcmd.Command) (*slack.Msg, error) {
	if len(cmd.Args) == 0 {
		return nil, domain.InvalidInput("Use: `ratings PICK`")
	}
	pickID, err := parsePickID(cmd.Args[0])
	if err != nil {
		return nil, err
	}

	ratings, err := h.ratings.RatingsFor(ctx, pickID)
	if err != nil {
		return nil, err
	}
	if len(ratings) == 0 {
		return ephemeral(fmt.Sprintf("Pick #%d has no ratings yet", pickID)), nil
	}
	summary, err := h.ratings.AverageRating(ctx, pickID)
	if err != nil {
		return nil, err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "*Ratings for pick #%d* (average %.1f)\n", pickID, summary.Average)
	for _, r := range ratings {
		fmt.Fprintf(&b, "• %s: %s", r.Rater.DisplayName, formatScore(r.Value))
		if r.Review != "" {
			fmt.Fprintf(&b, ", _%s_", r.Review)
		}
		b.WriteString("\n")
	}
	return ephemeral(b.String()), nil
}

func (h *SlackHandler) handleTop(ctx context.Context, cmd *slackcmd.Command) (*slack.Msg, error) {
	n, err := parseLimit(cmd.Args)
	if err != nil {
		return nil, err
	}

	top, err := h.ratings.TopRated(ctx, n)
	if err != nil {
		return nil, err
	}
	if len(top) == 0 {
		return ephemeral("Nothing has been rated yet"), nil
	}

	var b strings.Builder
	b.WriteString("*Top rated:*\n")
	for i, rp := range top {
		fmt.Fprintf(&b, "%d. %s, %.1f (%d)\n", i+1, formatPick(rp.Pick), rp.Average, rp.Count)
	}
	return ephemeral(b.String()), nil
}

func (h *SlackHandler) handleRecent(ctx context.Context, cmd *slackcmd.Command) (*slack.Msg, error) {
	n, err := parseLimit(cmd.Args)
	if err != nil {
		return nil, err
	}

	picks, err := h.picks.RecentPicks(ctx, n)
	if err != nil {
		return nil, err
	}
	return ephemeral(pickList("Recent picks", picks)), nil
}

func (h *SlackHandler) handleHistory(ctx context.Context, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) (*slack.Msg, error) {
	handle := slashCmd.UserID
	if len(cmd.Args) > 0 {
		var err error
		if handle, err = mentionArg(cmd.Args, 0, "history [@user]"); err != nil {
			return nil, err
		}
	}

	picks, err := h.picks.MemberPicks(ctx, handle)
	if err != nil {
		return nil, err
	}
	return ephemeral(pickList(fmt.Sprintf("Picks of %s", mention(handle)), picks)), nil
}

func pickList(title string, picks []*entity.Pick) string {
	if len(picks) == 0 {
		return "No picks yet"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "*%s:*\n", title)
	for _, p := range picks {
		fmt.Fprintf(&b, "• %s\n", formatPick(p))
	}
	return b.String()
}

func (h *SlackHandler) handleStats(ctx context.Context, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) (*slack.Msg, error) {
	handle := slashCmd.UserID
	if len(cmd.Args) > 0 {
		var err error
		if handle, err = mentionArg(cmd.Args, 0, "stats [@user]"); err != nil {
			return nil, err
		}
	}

	stats, err := h.ratings.RaterStats(ctx, handle)
	if err != nil {
		return nil, err
	}
	if stats.Count == 0 {
		return ephemeral(fmt.Sprintf("%s hasn't rated anything yet", stats.Member.DisplayName)), nil
	}
	return ephemeral(fmt.Sprintf("📊 %s rated %d picks. Average %.1f, lowest %s, highest %s",
		stats.Member.DisplayName, stats.Count, stats.Average, formatScore(stats.Min), formatScore(stats.Max))), nil
}

func (h *SlackHandler) handleDeletePick(ctx context.Context, cmd *slackcmd.Command) (*slack.Msg, error) {
	if len(cmd.Args) == 0 {
		return nil, domain.InvalidInput("Use: `deletepick PICK`")
	}
	pickID, err := parsePickID(cmd.Args[0])
	if err != nil {
		return nil, err
	}

	if err := h.picks.DeletePick(ctx, pickID); err != nil {
		return nil, err
	}
	return inChannel(fmt.Sprintf("🗑️ Pick #%d and its ratings were deleted", pickID)), nil
}

func (h *SlackHandler) handleForcePick(ctx context.Context, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) (*slack.Msg, error) {
	usage := "forcepick @user TITLE [YEAR]"
	handle, err := mentionArg(cmd.Args, 0, usage)
	if err != nil {
		return nil, err
	}
	title, year := slackcmd.SplitTitleYear(strings.Join(cmd.Args[1:], " "))
	if title == "" {
		return nil, domain.InvalidInput(fmt.Sprintf("Use: `%s`", usage))
	}

	pick, err := h.picks.ForcePick(ctx, handle, entity.Selection{Title: title, Year: year})
	if err != nil {
		return nil, err
	}
	return inChannel(fmt.Sprintf("🍿 %s registered %s for %s", mention(slashCmd.UserID), formatPick(pick), mention(handle))), nil
}

func (h *SlackHandler) handleHistorical(ctx context.Context, cmd *slackcmd.Command) (*slack.Msg, error) {
	usage := "historical @user YYYY-MM-DD TITLE [YEAR]"
	handle, err := mentionArg(cmd.Args, 0, usage)
	if err != nil {
		return nil, err
	}
	if len(cmd.Args) < 3 {
		return nil, domain.InvalidInput(fmt.Sprintf("Use: `%s`", usage))
	}
	date, err := domain.ParseDate(cmd.Args[1])
	if err != nil {
		return nil, domain.InvalidInput(fmt.Sprintf("%q is not a date, use YYYY-MM-DD", cmd.Args[1]))
	}
	title, year := slackcmd.SplitTitleYear(strings.Join(cmd.Args[2:], " "))

	pick, err := h.picks.AddHistoricalPick(ctx, handle, entity.Selection{Title: title, Year: year}, date)
	if err != nil {
		return nil, err
	}
	return ephemeral(fmt.Sprintf("📼 Added %s", formatPick(pick))), nil
}

func (h *SlackHandler) handleSearch(ctx context.Context, cmd *slackcmd.Command) (*slack.Msg, error) {
	title, year := slackcmd.SplitTitleYear(cmd.Rest)
	if title == "" {
		return nil, domain.InvalidInput("Use: `search TITLE [YEAR]`")
	}

	d, err := h.picks.SearchMovie(ctx, title, year)
	if err != nil {
		return nil, err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "🔎 *%s*", d.Title)
	if d.Year != 0 {
		fmt.Fprintf(&b, " (%d)", d.Year)
	}
	if d.Rating > 0 {
		fmt.Fprintf(&b, ", rated %.1f", d.Rating)
	}
	if d.Runtime != "" {
		fmt.Fprintf(&b, ", %s", d.Runtime)
	}
	if len(d.Genres) > 0 {
		fmt.Fprintf(&b, "\n%s", strings.Join(d.Genres, ", "))
	}
	if len(d.Directors) > 0 {
		fmt.Fprintf(&b, "\nDirected by %s", strings.Join(d.Directors, ", "))
	}
	if len(d.Cast) > 0 {
		fmt.Fprintf(&b, "\nStarring %s", strings.Join(d.Cast, ", "))
	}
	if d.Synopsis != "" {
		fmt.Fprintf(&b, "\n>%s", d.Synopsis)
	}
	if d.ImdbID != "" {
		fmt.Fprintf(&b, "\nhttps://www.imdb.com/title/%s/", d.ImdbID)
	}
	return ephemeral(b.String()), nil
}
