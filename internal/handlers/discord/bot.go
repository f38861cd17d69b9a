// Package discord plays solo games and shows leaderboards through Discord
// slash commands.
package discord

import (
	"errors"
	"fmt"
	"strings"

	"github.com/KirkDiggler/wordduel/internal/common/logger"
	"github.com/KirkDiggler/wordduel/internal/services/leaderboard"
	"github.com/KirkDiggler/wordduel/internal/services/solo"
	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

// Bot represents the Discord bot instance
type Bot struct {
	session    *discordgo.Session
	commands   map[string]CommandHandler
	commandIDs map[string]string // Maps command name to command ID
	config     *Config
	log        *zap.SugaredLogger
}

// Config holds the configuration for the bot
type Config struct {
	// Discord bot token
	Token string

	// Application ID for the bot
	ApplicationID string

	// Optional guild ID for development (server-specific commands)
	GuildID string

	SoloService        solo.Service
	LeaderboardService leaderboard.Service

	Logger *zap.SugaredLogger
}

// New creates a new Discord bot
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Token == "" {
		return nil, errors.New("token cannot be empty")
	}

	if cfg.SoloService == nil {
		return nil, errors.New("solo service cannot be nil")
	}

	if cfg.LeaderboardService == nil {
		return nil, errors.New("leaderboard service cannot be nil")
	}

	// Create a new Discord session
	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}

	bot := &Bot{
		session:    session,
		commands:   make(map[string]CommandHandler),
		commandIDs: make(map[string]string),
		config:     cfg,
		log:        logger.OrNop(cfg.Logger),
	}

	// Register the interaction handler
	session.AddHandler(func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		bot.handleInteraction(s, i)
	})

	return bot, nil
}

// Start initializes the Discord connection and registers commands
func (b *Bot) Start() error {
	// Open the websocket connection to Discord
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	cmd := NewWordduelCommand(b.config.SoloService, b.config.LeaderboardService, b.log)
	if err := b.RegisterCommand(cmd); err != nil {
		return fmt.Errorf("failed to register wordduel command: %w", err)
	}

	b.log.Info("Discord bot is running")
	return nil
}

// Stop removes the registered commands and closes the connection
func (b *Bot) Stop() error {
	appID := b.appID()

	for cmdName, cmdID := range b.commandIDs {
		if err := b.session.ApplicationCommandDelete(appID, b.config.GuildID, cmdID); err != nil {
			b.log.Warnw("failed to delete command", "command", cmdName, "id", cmdID, "error", err)
		}
	}

	return b.session.Close()
}

// RegisterCommand registers a command with Discord. Commands are global
// unless a guild ID is configured.
func (b *Bot) RegisterCommand(cmd CommandHandler) error {
	createdCmd, err := b.session.ApplicationCommandCreate(b.appID(), b.config.GuildID, cmd.GetCommand())
	if err != nil {
		return fmt.Errorf("failed to create command %s: %w", cmd.GetName(), err)
	}

	// Store the command handler and its ID
	b.commands[cmd.GetName()] = cmd
	b.commandIDs[cmd.GetName()] = createdCmd.ID
	b.log.Infow("registered command", "command", cmd.GetName(), "id", createdCmd.ID, "guild", b.config.GuildID)

	return nil
}

func (b *Bot) appID() string {
	if b.config.ApplicationID != "" {
		return b.config.ApplicationID
	}
	// Fall back to session user ID if application ID is not provided
	return b.session.State.User.ID
}

// handleInteraction routes slash commands by name and buttons by the
// command prefix of their custom ID
func (b *Bot) handleInteraction(r Responder, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		name := i.ApplicationCommandData().Name
		if h, ok := b.commands[name]; ok {
			if err := h.Handle(r, i); err != nil {
				b.log.Errorw("error handling command", "command", name, "error", err)
			}
		}
	case discordgo.InteractionMessageComponent:
		customID := i.MessageComponentData().CustomID
		name, _, _ := strings.Cut(customID, ":")
		h, ok := b.commands[name]
		if !ok {
			if err := RespondWithError(r, i, fmt.Sprintf("Unknown button: %s", customID)); err != nil {
				b.log.Errorw("error answering unknown button", "custom_id", customID, "error", err)
			}
			return
		}
		if err := h.HandleComponent(r, i); err != nil {
			b.log.Errorw("error handling component interaction", "custom_id", customID, "error", err)
		}
	}
}
