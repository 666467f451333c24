package handlers

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/diegoclair/movie-club-bot/internal/domain"
	"github.com/diegoclair/movie-club-bot/internal/domain/entity"
)

func mention(handle string) string {
	return fmt.Sprintf("<@%s>", handle)
}

func mentions(handles []string) string {
	out := make([]string, len(handles))
	for i, h := range handles {
		out[i] = mention(h)
	}
	return strings.Join(out, ", ")
}

func formatTurn(t *entity.Turn) string {
	s := fmt.Sprintf("*%s* (%s)", t.Member.DisplayName, t.Period)
	if t.Pick != nil {
		s += ", picked " + formatTitle(t.Pick)
	}
	return s
}

func formatTitle(p *entity.Pick) string {
	title := "*" + p.Title + "*"
	if p.Year != nil {
		title += fmt.Sprintf(" (%d)", *p.Year)
	}
	return title
}

func formatPick(p *entity.Pick) string {
	title := formatTitle(p)
	who := ""
	if p.Member != nil {
		who = " by " + p.Member.DisplayName
	}
	return fmt.Sprintf("#%d %s%s, %s", p.ID, title, who, p.Period())
}

func formatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatDate(t time.Time) string {
	return t.Format(domain.DateLayout)
}

// parsePickID accepts "12" or "#12"
func parsePickID(s string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimPrefix(strings.TrimSpace(s), "#"), 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.InvalidInput(fmt.Sprintf("%q is not a pick number", s))
	}
	return id, nil
}

// parseLimit reads an optional positive count
func parseLimit(args []string) (int, error) {
	if len(args) == 0 {
		return 0, nil
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n <= 0 {
		return 0, domain.InvalidInput(fmt.Sprintf("%q is not a positive number", args[0]))
	}
	return n, nil
}
