package discord

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/pmurley/outlook-bot/internal/engine"
)

// handleGrid renders the six-year projection grid for a team.
func (hm *HandlerManager) handleGrid(s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	if len(args) == 0 {
		s.ChannelMessageSend(m.ChannelID, "Usage: `!grid <team name>`")
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
	embed := buildGridEmbed(plan)
	s.ChannelMessageSendEmbed(m.ChannelID, embed)
}

// buildGridEmbed renders one field per section, each a code-block table of
// slot rows by projection year.
func buildGridEmbed(plan *engine.TeamPlan) *discordgo.MessageEmbed {
	grid := plan.Grid

	embed := &discordgo.MessageEmbed{
		Title: fmt.Sprintf("%s Roster Projection %d-%d", grid.TeamID, grid.BaseYear, grid.BaseYear+engine.ProjectionYears-1),
		Color: 0x3498db,
	}

	for _, section := range []engine.Section{engine.SectionLineup, engine.SectionRotation, engine.SectionBullpen} {
		var sb strings.Builder
		sb.WriteString("```\n")
		for _, row := range grid.SectionRows(section) {
			sb.WriteString(fmt.Sprintf("%-4s", row.Slot))
			for y := 0; y < engine.ProjectionYears; y++ {
				sb.WriteString(fmt.Sprintf(" %7s", cellShort(&row.Cells[y])))
			}
			sb.WriteString("\n")
		}
		sb.WriteString("```")

		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   section.String(),
			Value:  sb.String(),
			Inline: false,
		})
	}

	embed.Footer = &discordgo.MessageEmbedFooter{
		Text: "p = prospect, f = final year, a = arb, * = override",
	}
	return embed
}

// cellShort compresses one cell into a rating plus status marker.
func cellShort(cell *engine.GridCell) string {
	if cell.Empty() {
		return "--"
	}

	marker := ""
	switch {
	case cell.Overridden:
		marker = "*"
	case cell.Prospect:
		marker = "p"
	case cell.Status == engine.StatusFinalYear:
		marker = "f"
	case cell.Status == engine.StatusArbEligible:
		marker = "a"
	}
	return fmt.Sprintf("%.1f%s", cell.Rating, marker)
}

// handlePayroll renders the projected payroll table for a team.
func (hm *HandlerManager) handlePayroll(s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	if len(args) == 0 {
		s.ChannelMessageSend(m.ChannelID, "Usage: `!payroll <team name>`")
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

	var sb strings.Builder
	sb.WriteString("```\n")
	sb.WriteString(fmt.Sprintf("%-6s %10s %10s %10s %12s\n", "Year", "Lineup", "Rotation", "Bullpen", "Total"))
	for _, yf := range plan.Financials {
		sb.WriteString(fmt.Sprintf("%-6d %10s %10s %10s %12s\n",
			yf.Year,
			"$"+formatNumberShort(yf.Lineup),
			"$"+formatNumberShort(yf.Rotation),
			"$"+formatNumberShort(yf.Bullpen),
			"$"+formatNumber(yf.Total)))
	}
	sb.WriteString("```")

	embed := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("%s Projected Payroll", teamID),
		Color:       0x2ecc71,
		Description: sb.String(),
	}
	s.ChannelMessageSendEmbed(m.ChannelID, embed)
}
