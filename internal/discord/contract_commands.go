package discord

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/pmurley/outlook-bot/internal/spotrac"
)

// handleContract looks up a real-world MLB contract on Spotrac, for
// comparison against the league's own salary scale.
func (hm *HandlerManager) handleContract(s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	if len(args) == 0 {
		s.ChannelMessageSend(m.ChannelID, "Usage: `!contract <player name>`")
		return
	}

	query := strings.Join(args, " ")
	result, err := hm.spotracClient.Search(query)
	if err != nil {
		hm.logger.Error("Spotrac search failed:", err)
		s.ChannelMessageSend(m.ChannelID, "Search failed: "+err.Error())
		return
	}

	switch result.Type {
	case "none":
		s.ChannelMessageSend(m.ChannelID, fmt.Sprintf("No players found matching '%s'", query))
		return
	case "multiple":
		var lines []string
		for i, p := range result.PlayerResults {
			if i >= 5 {
				break
			}
			line := "• " + p.Name
			if p.Team != "" {
				line += fmt.Sprintf(" (%s)", p.Team)
			}
			if p.Position != "" {
				line += " - " + p.Position
			}
			lines = append(lines, line)
		}
		s.ChannelMessageSend(m.ChannelID,
			fmt.Sprintf("Multiple players found for '%s', be more specific:\n%s", query, strings.Join(lines, "\n")))
		return
	}

	player := result.PlayerResults[0]
	info, err := hm.spotracClient.GetPlayerContract(player.URL)
	if err != nil {
		hm.logger.Error("Spotrac contract fetch failed:", err)
		s.ChannelMessageSend(m.ChannelID, "Failed to fetch contract page: "+err.Error())
		return
	}

	embed := buildContractEmbed(player, info)
	s.ChannelMessageSendEmbed(m.ChannelID, embed)
}

func buildContractEmbed(player spotrac.PlayerSearchResult, info *spotrac.ContractInfo) *discordgo.MessageEmbed {
	name := info.PlayerName
	if name == "" {
		name = player.Name
	}

	embed := &discordgo.MessageEmbed{
		Title: name,
		URL:   player.URL,
		Color: 0x1abc9c,
	}

	if info.Status != "" {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name: "Status", Value: info.Status, Inline: true,
		})
	}
	if info.ContractTerms != "" {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name: "Contract Terms", Value: info.ContractTerms, Inline: true,
		})
	}
	if info.AverageSalary != "" {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name: "Average Salary", Value: info.AverageSalary, Inline: true,
		})
	}
	if info.FreeAgent != "" {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name: "Free Agent", Value: info.FreeAgent, Inline: true,
		})
	}

	if len(info.ContractYears) > 0 {
		var sb strings.Builder
		sb.WriteString("```\n")
		sb.WriteString(fmt.Sprintf("%-6s %-4s %s\n", "Year", "Age", "Payroll"))
		for _, yr := range info.ContractYears {
			payroll := yr.Status
			if yr.Salary > 0 {
				payroll = "$" + formatNumber(yr.Salary)
			}
			sb.WriteString(fmt.Sprintf("%-6d %-4d %s\n", yr.Year, yr.Age, payroll))
		}
		sb.WriteString("```")
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name: "Payroll Schedule", Value: sb.String(), Inline: false,
		})
	}

	embed.Footer = &discordgo.MessageEmbedFooter{Text: "Source: spotrac.com"}
	return embed
}
