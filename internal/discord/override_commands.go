package discord

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/pmurley/outlook-bot/internal/models"
)

// handleOverride pins or clears a manual grid cell. Overridden cells are
// excluded from prospect assignment until cleared.
func (hm *HandlerManager) handleOverride(s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	usage := "Usage: `!override set <team> <slot> <year> <rating> <salary> <name...> [--source=trade|fa-target]`\n" +
		"       `!override clear <team> <slot> <year>`"
	if len(args) < 4 {
		s.ChannelMessageSend(m.ChannelID, usage)
		return
	}

	sub := strings.ToLower(args[0])
	switch sub {
	case "set":
		hm.handleOverrideSet(s, m, args[1:], usage)
	case "clear":
		hm.handleOverrideClear(s, m, args[1:], usage)
	default:
		s.ChannelMessageSend(m.ChannelID, usage)
	}
}

func (hm *HandlerManager) handleOverrideSet(s *discordgo.Session, m *discordgo.MessageCreate, args []string, usage string) {
	if len(args) < 6 {
		s.ChannelMessageSend(m.ChannelID, usage)
		return
	}

	team := args[0]
	slot := strings.ToUpper(args[1])

	year, err := strconv.Atoi(args[2])
	if err != nil {
		s.ChannelMessageSend(m.ChannelID, "Invalid year: "+args[2])
		return
	}
	rating, err := strconv.ParseFloat(args[3], 64)
	if err != nil {
		s.ChannelMessageSend(m.ChannelID, "Invalid rating: "+args[3])
		return
	}
	salary := parseSalaryArg(args[4])

	source := models.OverrideSourceManual
	nameParts := args[5:]
	if n := len(nameParts); n > 0 && strings.HasPrefix(nameParts[n-1], "--source=") {
		source = strings.TrimPrefix(nameParts[n-1], "--source=")
		nameParts = nameParts[:n-1]
	}
	name := strings.Join(nameParts, " ")
	if name == "" {
		s.ChannelMessageSend(m.ChannelID, usage)
		return
	}

	override := models.Override{
		TeamID:         team,
		Slot:           slot,
		Year:           year,
		PlayerID:       playerIDFromName(name),
		PlayerName:     name,
		Rating:         rating,
		Salary:         salary,
		ContractStatus: "under-contract",
		SourceType:     source,
	}

	if err := hm.overrides.Add(override); err != nil {
		s.ChannelMessageSend(m.ChannelID, "Failed to save override: "+err.Error())
		return
	}
	s.ChannelMessageSend(m.ChannelID, fmt.Sprintf("Pinned **%s** to %s %s %d.", name, team, slot, year))
}

func (hm *HandlerManager) handleOverrideClear(s *discordgo.Session, m *discordgo.MessageCreate, args []string, usage string) {
	if len(args) < 3 {
		s.ChannelMessageSend(m.ChannelID, usage)
		return
	}

	year, err := strconv.Atoi(args[2])
	if err != nil {
		s.ChannelMessageSend(m.ChannelID, "Invalid year: "+args[2])
		return
	}

	if err := hm.overrides.Remove(args[0], strings.ToUpper(args[1]), year); err != nil {
		s.ChannelMessageSend(m.ChannelID, "Failed to clear override: "+err.Error())
		return
	}
	s.ChannelMessageSend(m.ChannelID, fmt.Sprintf("Cleared override on %s %s %d.", args[0], strings.ToUpper(args[1]), year))
}

// parseSalaryArg accepts "$4.5M", "4500000", or "750K".
func parseSalaryArg(s string) int {
	s = strings.TrimPrefix(strings.ToUpper(strings.TrimSpace(s)), "$")
	s = strings.ReplaceAll(s, ",", "")

	multiplier := 1.0
	if strings.HasSuffix(s, "M") {
		multiplier = 1_000_000
		s = strings.TrimSuffix(s, "M")
	} else if strings.HasSuffix(s, "K") {
		multiplier = 1_000
		s = strings.TrimSuffix(s, "K")
	}

	value, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return int(value * multiplier)
}

func playerIDFromName(name string) string {
	return strings.ToLower(strings.ReplaceAll(name, " ", "-"))
}
