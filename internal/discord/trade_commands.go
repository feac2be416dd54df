package discord

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/pmurley/outlook-bot/internal/engine"
)

// handleTargets ranks trade targets for every one of a team's needs,
// scanning all other teams' surplus.
func (hm *HandlerManager) handleTargets(s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	if len(args) == 0 {
		s.ChannelMessageSend(m.ChannelID, "Usage: `!targets <team name> [year offset]`")
		return
	}

	// A trailing integer is the target-year offset.
	targetYear := 1
	if n := len(args); n > 1 {
		if y, err := strconv.Atoi(args[n-1]); err == nil {
			targetYear = y
			args = args[:n-1]
		}
	}

	snap, err := hm.ensureSnapshot()
	if err != nil {
		s.ChannelMessageSend(m.ChannelID, "Failed to load league data: "+err.Error())
		return
	}

	teamID, suggestions := hm.resolveTeam(snap, strings.Join(args, " "))
	if teamID == "" {
		s.ChannelMessageSend(m.ChannelID, teamNotFoundMessage(strings.Join(args, " "), suggestions))
		return
	}

	overrides, err := hm.overrides.GetAll()
	if err != nil {
		hm.logger.Warn("Failed to load overrides, continuing without:", err)
	}

	results := hm.planner.TradeTargets(snap, teamID, overrides, targetYear)
	if len(results) == 0 {
		s.ChannelMessageSend(m.ChannelID, fmt.Sprintf("%s has no open needs at that horizon.", teamID))
		return
	}

	embed := buildTargetsEmbed(teamID, targetYear, results)
	s.ChannelMessageSendEmbed(m.ChannelID, embed)
}

func buildTargetsEmbed(teamID string, targetYear int, results []engine.NeedTargets) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("%s Trade Targets", teamID),
		Description: fmt.Sprintf("Target year offset: %d. ⇄ marks two-way matches.", targetYear),
		Color:       0x9b59b6,
	}

	for _, nt := range results {
		if len(nt.Targets) == 0 {
			continue
		}

		var lines []string
		for _, t := range nt.Targets {
			line := fmt.Sprintf("**%s** (%s, %s) %.0f pts", t.Name, t.TeamID, t.Position, t.Score)
			if t.Prospect {
				line += fmt.Sprintf(" - ETA %d", t.ETA)
			}
			if t.Complementary {
				line += " ⇄ " + strings.Join(t.Reciprocal, ", ")
			}
			lines = append(lines, line)
		}

		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   fmt.Sprintf("%s (%s)", nt.Need.Slot, nt.Need.Severity),
			Value:  strings.Join(lines, "\n"),
			Inline: false,
		})
	}

	if len(embed.Fields) == 0 {
		embed.Description += "\nNo matching assets found around the league."
	}
	return embed
}
