package notifier

import (
	"context"
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// dmClient is the subset of *discordgo.Session used to send direct messages
type dmClient interface {
	UserChannelCreate(recipientID string, options ...discordgo.RequestOption) (*discordgo.Channel, error)
	ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// DiscordConfig holds the configuration for the Discord sender
type DiscordConfig struct {
	// Discord bot token
	Token string
}

type discordSender struct {
	client dmClient
}

// NewDiscord creates a Sender that delivers notifications as Discord direct
// messages. User ids are Discord user snowflakes.
func NewDiscord(cfg *DiscordConfig) (Sender, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Token == "" {
		return nil, errors.New("token cannot be empty")
	}

	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}

	return &discordSender{client: session}, nil
}

func (s *discordSender) Send(ctx context.Context, uid string, payload *Notification) error {
	if uid == "" || payload == nil {
		return errors.New("uid and payload cannot be empty")
	}

	channel, err := s.client.UserChannelCreate(uid, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("failed to open DM channel: %w", err)
	}

	_, err = s.client.ChannelMessageSendEmbed(channel.ID, &discordgo.MessageEmbed{
		Title:       payload.Title,
		Description: payload.Body,
		Color:       colorFor(payload.Kind),
		Footer: &discordgo.MessageEmbedFooter{
			Text: "match " + payload.MatchID,
		},
	}, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("failed to send DM: %w", err)
	}

	return nil
}

func colorFor(kind Kind) int {
	switch kind {
	case KindWin, KindOpponentForfeit:
		return 0x00ff00 // Green
	case KindLoss:
		return 0xff0000 // Red
	default:
		return 0xffcc00
	}
}
