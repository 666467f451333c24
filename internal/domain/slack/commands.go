package slack

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

type CommandType string

const (
	CmdCurrent    CommandType = "current"
	CmdNext       CommandType = "next"
	CmdSchedule   CommandType = "schedule"
	CmdCanPick    CommandType = "canpick"
	CmdPick       CommandType = "pick"
	CmdSkip       CommandType = "skip"
	CmdUndoSkip   CommandType = "undoskip"
	CmdSkips      CommandType = "skips"
	CmdAdd        CommandType = "add"
	CmdRemove     CommandType = "remove"
	CmdReactivate CommandType = "reactivate"
	CmdSwap       CommandType = "swap"
	CmdReorder    CommandType = "reorder"
	CmdSetup      CommandType = "setup"
	CmdStart      CommandType = "start"
	CmdConfirm    CommandType = "confirm"
	CmdRate       CommandType = "rate"
	CmdUnrate     CommandType = "unrate"
	CmdRatings    CommandType = "ratings"
	CmdTop        CommandType = "top"
	CmdRecent     CommandType = "recent"
	CmdHistory    CommandType = "history"
	CmdStats      CommandType = "stats"
	CmdMembers    CommandType = "members"
	CmdDeletePick CommandType = "deletepick"
	CmdForcePick  CommandType = "forcepick"
	CmdHistorical CommandType = "historical"
	CmdSearch     CommandType = "search"
	CmdHelp       CommandType = "help"
)

var aliases = map[string]CommandType{
	"current":    CmdCurrent,
	"now":        CmdCurrent,
	"next":       CmdNext,
	"schedule":   CmdSchedule,
	"canpick":    CmdCanPick,
	"pick":       CmdPick,
	"skip":       CmdSkip,
	"undoskip":   CmdUndoSkip,
	"skips":      CmdSkips,
	"add":        CmdAdd,
	"remove":     CmdRemove,
	"rm":         CmdRemove,
	"reactivate": CmdReactivate,
	"swap":       CmdSwap,
	"reorder":    CmdReorder,
	"setup":      CmdSetup,
	"start":      CmdStart,
	"confirm":    CmdConfirm,
	"rate":       CmdRate,
	"unrate":     CmdUnrate,
	"ratings":    CmdRatings,
	"top":        CmdTop,
	"recent":     CmdRecent,
	"history":    CmdHistory,
	"stats":      CmdStats,
	"members":    CmdMembers,
	"list":       CmdMembers,
	"ls":         CmdMembers,
	"deletepick": CmdDeletePick,
	"forcepick":  CmdForcePick,
	"force":      CmdForcePick,
	"historical": CmdHistorical,
	"search":     CmdSearch,
	"movie":      CmdSearch,
	"help":       CmdHelp,
}

var adminOnly = map[CommandType]bool{
	CmdSkip:       true,
	CmdUndoSkip:   true,
	CmdAdd:        true,
	CmdRemove:     true,
	CmdReactivate: true,
	CmdSwap:       true,
	CmdReorder:    true,
	CmdSetup:      true,
	CmdStart:      true,
	CmdDeletePick: true,
	CmdForcePick:  true,
	CmdHistorical: true,
}

// AdminOnly reports whether the command changes the roster or rotation
func (t CommandType) AdminOnly() bool {
	return adminOnly[t]
}

type Command struct {
	Type CommandType
	Args []string
	// Rest is the text after the command word, spacing preserved
	Rest string
	Raw  string
}

func ParseCommand(text string) (*Command, error) {
	text = strings.TrimSpace(text)
	parts := strings.Fields(text)
	if len(parts) == 0 {
		return &Command{Type: CmdHelp}, nil
	}

	cmdType, ok := aliases[strings.ToLower(parts[0])]
	if !ok {
		return nil, fmt.Errorf("unknown command: %s", parts[0])
	}

	cmd := &Command{
		Type: cmdType,
		Raw:  text,
		Rest: strings.TrimSpace(text[len(parts[0]):]),
	}
	if len(parts) > 1 {
		cmd.Args = parts[1:]
	}

	return cmd, nil
}

var mentionPattern = regexp.MustCompile(`^<@([A-Z0-9]+)(?:\|[^>]*)?>$`)

// ParseMention extracts the user ID from <@U123> or <@U123|name>. A bare ID
// is accepted as is.
func ParseMention(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if m := mentionPattern.FindStringSubmatch(s); m != nil {
		return m[1], true
	}
	if s != "" && !strings.ContainsAny(s, "<>@ ") {
		return s, true
	}
	return "", false
}

// SplitTitleYear splits "The Thing 1982" into the title and a trailing year
func SplitTitleYear(s string) (string, *int) {
	s = strings.TrimSpace(s)
	i := strings.LastIndex(s, " ")
	if i < 0 {
		return s, nil
	}

	last := strings.Trim(s[i+1:], "()")
	year, err := strconv.Atoi(last)
	if err != nil || len(last) != 4 || year < 1800 || year > 2100 {
		return s, nil
	}
	return strings.TrimSpace(s[:i]), &year
}

// Flag removes name from args and reports whether it was present
func Flag(args []string, name string) ([]string, bool) {
	out := make([]string, 0, len(args))
	found := false
	for _, a := range args {
		if a == name {
			found = true
			continue
		}
		out = append(out, a)
	}
	return out, found
}

func GetHelpText() string {
	return `*Available Commands:*

*Rotation:*
• ` + "`/movieclub current`" + ` - Who is picking right now
• ` + "`/movieclub next`" + ` - Who picks after them
• ` + "`/movieclub schedule [n]`" + ` - Upcoming turns, skipped ones included

*Picks:*
• ` + "`/movieclub canpick`" + ` - Check whether you may pick now
• ` + "`/movieclub pick TITLE [YEAR]`" + ` - Register your pick (early access is applied automatically)
• ` + "`/movieclub search TITLE [YEAR]`" + ` - Look a movie up without picking it
• ` + "`/movieclub recent [n]`" + ` - Latest picks
• ` + "`/movieclub history [@user]`" + ` - Picks of a member

*Ratings:*
• ` + "`/movieclub rate PICK SCORE [review]`" + ` - Rate a pick from 1 to 10
• ` + "`/movieclub unrate PICK`" + ` - Delete your rating
• ` + "`/movieclub ratings PICK`" + ` - Ratings of a pick
• ` + "`/movieclub top [n]`" + ` - Best rated picks
• ` + "`/movieclub stats [@user]`" + ` - Rating stats of a member

*Members:*
• ` + "`/movieclub members`" + ` - Active and inactive members

*Admin:*
• ` + "`/movieclub skip current|next [reason]`" + ` - Skip a turn
• ` + "`/movieclub undoskip @user`" + ` - Undo the member's next skip
• ` + "`/movieclub skips`" + ` - List recorded skips
• ` + "`/movieclub add @user [name]`" + ` - Add a member at the end
• ` + "`/movieclub remove @user`" + ` - Take a member out of the rotation
• ` + "`/movieclub reactivate @user [position]`" + ` - Bring a member back
• ` + "`/movieclub swap @a @b`" + ` - Swap two members
• ` + "`/movieclub reorder @a @b ... [--partial]`" + ` - Set the whole order
• ` + "`/movieclub setup @a[:Name] @b[:Name] ...`" + ` - Replace the roster
• ` + "`/movieclub start YYYY-MM-DD`" + ` - Start the rotation on a date
• ` + "`/movieclub forcepick @user TITLE [YEAR]`" + ` - Pick for the current or next picker
• ` + "`/movieclub historical @user YYYY-MM-DD TITLE [YEAR]`" + ` - Record a past pick
• ` + "`/movieclub deletepick PICK`" + ` - Delete a pick and its ratings
• ` + "`/movieclub confirm`" + ` - Confirm a pending destructive command`
}
