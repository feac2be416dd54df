package discord

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/pmurley/outlook-bot/internal/engine"
)

// handleOutlook summarizes a team's position: strengths, needs, extension
// candidates, and tradeable surplus.
func (hm *HandlerManager) handleOutlook(s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	if len(args) == 0 {
		s.ChannelMessageSend(m.ChannelID, "Usage: `!outlook <team name>`")
		return
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

	plan := hm.planner.BuildPlan(snap, teamID, overrides)
	embed := buildOutlookEmbed(plan)
	s.ChannelMessageSendEmbed(m.ChannelID, embed)
}

func buildOutlookEmbed(plan *engine.TeamPlan) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: fmt.Sprintf("%s Outlook", plan.Grid.TeamID),
		Color: 0xe67e22,
	}

	strengths := "None"
	if len(plan.Assessment.Strengths) > 0 {
		strengths = strings.Join(plan.Assessment.Strengths, ", ")
	}
	embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
		Name:   "Strengths",
		Value:  strengths,
		Inline: false,
	})

	if len(plan.Profile.Needs) > 0 {
		var lines []string
		for _, need := range plan.Profile.Needs {
			desc := fmt.Sprintf("**%s** (%s)", need.Slot, need.Severity)
			if need.IncumbentRating > 0 {
				desc += fmt.Sprintf(" - incumbent %.1f", need.IncumbentRating)
			}
			lines = append(lines, desc)
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   "Needs",
			Value:  strings.Join(lines, "\n"),
			Inline: false,
		})
	}

	if len(plan.Assessment.ExtensionCandidates) > 0 {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   "Extension Candidates",
			Value:  strings.Join(plan.Assessment.ExtensionCandidates, ", "),
			Inline: false,
		})
	}

	if len(plan.Profile.SurplusProspects) > 0 {
		var lines []string
		for _, sp := range plan.Profile.SurplusProspects {
			lines = append(lines, fmt.Sprintf("**%s** (%s, %.1f TFR) - blocked by %s",
				sp.Prospect.Name, sp.Prospect.Level, sp.Prospect.Ceiling, sp.BlockedBy))
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   "Surplus Prospects",
			Value:  strings.Join(lines, "\n"),
			Inline: false,
		})
	}

	if len(plan.Profile.SurplusPlayers) > 0 {
		var lines []string
		for _, sp := range plan.Profile.SurplusPlayers {
			desc := fmt.Sprintf("**%s** (%s, %.1f) - %d yr left, %s ready",
				sp.Name, sp.Position, sp.Rating, sp.YearsLeft, sp.Replacement)
			lines = append(lines, desc)
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   "Tradeable Veterans",
			Value:  strings.Join(lines, "\n"),
			Inline: false,
		})
	}

	return embed
}
