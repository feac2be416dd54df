package bot

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/pmurley/outlook-bot/internal/cache"
	"github.com/pmurley/outlook-bot/internal/config"
	"github.com/pmurley/outlook-bot/internal/discord"
	"github.com/pmurley/outlook-bot/internal/engine"
	"github.com/pmurley/outlook-bot/internal/sheets"
	"github.com/pmurley/outlook-bot/internal/storage"
	"github.com/pmurley/outlook-bot/pkg/logger"
)

type Bot struct {
	session      *discordgo.Session
	config       *config.Config
	logger       *logger.Logger
	dataCache    *cache.Cache
	sheetsClient *sheets.Client
	overrides    *storage.OverrideStorage
	handlers     *discord.HandlerManager
	stopChan     chan struct{}
}

func New(cfg *config.Config, log *logger.Logger) (*Bot, error) {
	session, err := discordgo.New("Bot " + cfg.DiscordToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}

	// Set intents - we need these for DMs and message content
	session.Identify.Intents = discordgo.IntentsGuildMessages |
		discordgo.IntentsDirectMessages |
		discordgo.IntentsMessageContent

	sheetsClient, err := sheets.NewClient(cfg.GoogleSheetsID)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets client: %w", err)
	}

	overrides, err := storage.NewOverrideStorage(cfg.DataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to create override storage: %w", err)
	}

	b := &Bot{
		session:      session,
		config:       cfg,
		logger:       log,
		dataCache:    cache.New(cfg.CacheDuration),
		sheetsClient: sheetsClient,
		overrides:    overrides,
		stopChan:     make(chan struct{}),
	}

	planner := engine.New(log)
	b.handlers = discord.NewHandlerManager(b.session, cfg, log, b.dataCache, sheetsClient, overrides, planner)

	return b, nil
}

func (b *Bot) Start() error {
	b.handlers.RegisterHandlers()

	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord session: %w", err)
	}

	if snap, err := b.sheetsClient.LoadSnapshot(b.config.Season); err != nil {
		b.logger.Error("Failed to load initial league snapshot:", err)
	} else {
		b.dataCache.SetSnapshot(snap)
	}

	if b.config.FantraxLeagueID != "" {
		b.startTransactionMonitor()
	}

	return nil
}

func (b *Bot) Stop() error {
	close(b.stopChan)
	return b.session.Close()
}
