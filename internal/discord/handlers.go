package discord

import (
	"fmt"
	"sort"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/pmurley/outlook-bot/internal/cache"
	"github.com/pmurley/outlook-bot/internal/config"
	"github.com/pmurley/outlook-bot/internal/engine"
	"github.com/pmurley/outlook-bot/internal/models"
	"github.com/pmurley/outlook-bot/internal/sheets"
	"github.com/pmurley/outlook-bot/internal/spotrac"
	"github.com/pmurley/outlook-bot/internal/storage"
	"github.com/pmurley/outlook-bot/pkg/logger"
)

type HandlerManager struct {
	session       *discordgo.Session
	config        *config.Config
	logger        *logger.Logger
	cache         *cache.Cache
	sheetsClient  *sheets.Client
	overrides     *storage.OverrideStorage
	planner       *engine.Engine
	spotracClient *spotrac.Client
	commands      map[string]CommandHandler
}

type CommandHandler func(s *discordgo.Session, m *discordgo.MessageCreate, args []string)

func NewHandlerManager(
	session *discordgo.Session,
	config *config.Config,
	logger *logger.Logger,
	cache *cache.Cache,
	sheetsClient *sheets.Client,
	overrides *storage.OverrideStorage,
	planner *engine.Engine,
) *HandlerManager {
	hm := &HandlerManager{
		session:       session,
		config:        config,
		logger:        logger,
		cache:         cache,
		sheetsClient:  sheetsClient,
		overrides:     overrides,
		planner:       planner,
		spotracClient: spotrac.NewClient(),
		commands:      make(map[string]CommandHandler),
	}

	hm.registerCommands()

	return hm
}

func (hm *HandlerManager) RegisterHandlers() {
	hm.session.AddHandler(hm.messageCreate)
}

func (hm *HandlerManager) registerCommands() {
	hm.commands["help"] = hm.handleHelp
	hm.commands["reload"] = hm.handleReload
	hm.commands["grid"] = hm.handleGrid
	hm.commands["payroll"] = hm.handlePayroll
	hm.commands["outlook"] = hm.handleOutlook
	hm.commands["targets"] = hm.handleTargets
	hm.commands["override"] = hm.handleOverride
	hm.commands["contract"] = hm.handleContract
}

func (hm *HandlerManager) messageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author.ID == s.State.User.ID {
		return
	}

	if !strings.HasPrefix(m.Content, hm.config.CommandPrefix) {
		return
	}

	content := strings.TrimPrefix(m.Content, hm.config.CommandPrefix)
	parts := strings.Fields(content)
	if len(parts) == 0 {
		return
	}

	command := strings.ToLower(parts[0])
	args := parts[1:]

	if handler, exists := hm.commands[command]; exists {
		handler(s, m, args)
	}
}

func (hm *HandlerManager) handleHelp(s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	helpMessage := `**Roster Outlook Bot Commands:**
` + "```" + `
!help                  - Show this help message
!reload                - Force reload league data
!grid <team>           - Six-year roster projection grid
!payroll <team>        - Projected payroll by section and year
!outlook <team>        - Strengths, needs, and surplus summary
!targets <team> [year] - Ranked trade targets for each need
!override set <team> <slot> <year> <rating> <salary> <name...>
!override clear <team> <slot> <year>
!contract <player>     - Look up a real MLB contract on Spotrac
` + "```"

	s.ChannelMessageSend(m.ChannelID, helpMessage)
}

func (hm *HandlerManager) handleReload(s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	hm.cache.Flush()
	snap, err := hm.sheetsClient.LoadSnapshot(hm.config.Season)
	if err != nil {
		s.ChannelMessageSend(m.ChannelID, "Failed to reload data: "+err.Error())
		return
	}
	hm.cache.SetSnapshot(snap)
	s.ChannelMessageSend(m.ChannelID, "League data reloaded successfully!")
}

// ensureSnapshot returns the cached league snapshot, reloading it from the
// sheets when the cache has expired.
func (hm *HandlerManager) ensureSnapshot() (*models.LeagueSnapshot, error) {
	snap, found := hm.cache.GetSnapshot()
	if !found {
		hm.logger.Info("Cache expired, reloading league snapshot...")
		fresh, err := hm.sheetsClient.LoadSnapshot(hm.config.Season)
		if err != nil {
			return nil, err
		}
		hm.cache.SetSnapshot(fresh)
		snap = fresh
	}
	return snap, nil
}

// resolveTeam matches a user-supplied team name against the snapshot,
// case-insensitively, suggesting close names on a miss.
func (hm *HandlerManager) resolveTeam(snap *models.LeagueSnapshot, name string) (string, []string) {
	nameLower := strings.ToLower(strings.TrimSpace(name))

	var teams []string
	for id := range snap.Rosters {
		teams = append(teams, id)
	}
	sort.Strings(teams)

	for _, id := range teams {
		if strings.ToLower(id) == nameLower {
			return id, nil
		}
	}

	var suggestions []string
	for _, id := range teams {
		idLower := strings.ToLower(id)
		if strings.Contains(idLower, nameLower) || strings.Contains(nameLower, idLower) {
			suggestions = append(suggestions, id)
		}
	}
	if len(suggestions) == 1 {
		return suggestions[0], nil
	}
	if len(suggestions) > 5 {
		suggestions = suggestions[:5]
	}
	return "", suggestions
}

// teamNotFoundMessage builds the miss response for resolveTeam.
func teamNotFoundMessage(name string, suggestions []string) string {
	msg := fmt.Sprintf("No team found matching '%s'", name)
	if len(suggestions) > 0 {
		msg += "\n\nDid you mean:\n"
		for _, team := range suggestions {
			msg += fmt.Sprintf("• %s\n", team)
		}
	}
	return msg
}

func formatNumber(n int) string {
	str := fmt.Sprintf("%d", n)
	if len(str) <= 3 {
		return str
	}

	result := ""
	for i, digit := range str {
		if i > 0 && (len(str)-i)%3 == 0 {
			result += ","
		}
		result += string(digit)
	}
	return result
}

func formatNumberShort(n int) string {
	if n >= 1000000 {
		return fmt.Sprintf("%.1fM", float64(n)/1000000)
	} else if n >= 1000 {
		return fmt.Sprintf("%.0fK", float64(n)/1000)
	}
	return fmt.Sprintf("%d", n)
}
