package discord

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/wordduel/internal/models"
	"github.com/KirkDiggler/wordduel/internal/services/solo"
	"github.com/bwmarrin/discordgo"
)

const (
	colorInfo  = 0x3498db
	colorWin   = 0x00ff00
	colorLost  = 0x95a5a6
	colorError = 0xff0000

	dot    = "●"
	circle = "○"

	// Discord caps an embed description at 4096 characters
	leaderboardRows = 25
)

// renderBoard renders a solo game. Each row shows the guess and its dots
// and circles; hint rows show the revealed letter.
func renderBoard(game *solo.GameView, note string) *discordgo.MessageEmbed {
	var rows []string
	for _, guess := range game.Guesses {
		rows = append(rows, renderGuess(guess))
	}
	if len(rows) == 0 {
		rows = append(rows, strings.TrimSpace(strings.Repeat("_ ", game.WordLength)))
	}

	description := strings.Join(rows, "\n")
	if note != "" {
		description += "\n\n" + note
	}

	embed := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("Solo %s (%d letters)", game.Difficulty, game.WordLength),
		Description: description,
		Color:       colorInfo,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Guesses", Value: fmt.Sprintf("%d", models.CountNonHint(game.Guesses)), Inline: true},
			{Name: "Hints", Value: fmt.Sprintf("%d", game.HintsUsed), Inline: true},
		},
		Footer: &discordgo.MessageEmbedFooter{Text: "game " + game.ID},
	}

	switch game.Status {
	case models.SoloGameStatusSolved:
		embed.Color = colorWin
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name: "Score", Value: fmt.Sprintf("%d", game.Score), Inline: true,
		})
	case models.SoloGameStatusAbandoned:
		embed.Color = colorLost
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name: "The word was", Value: game.Target, Inline: true,
		})
	}

	return embed
}

func renderGuess(guess *models.Guess) string {
	letters := strings.Join(strings.Split(guess.Word, ""), " ")
	if guess.IsHint {
		return fmt.Sprintf("`%s` hint", letters)
	}

	marks := strings.Repeat(dot, guess.Dots) + strings.Repeat(circle, guess.Circles)
	if marks == "" {
		marks = "-"
	}

	return fmt.Sprintf("`%s` %s", letters, marks)
}

// boardButtons returns the Hint and Give up buttons for an active game
func boardButtons(game *solo.GameView) []discordgo.MessageComponent {
	if game.Status != models.SoloGameStatusActive {
		return nil
	}

	return []discordgo.MessageComponent{
		discordgo.Button{
			Label:    "Hint",
			Style:    discordgo.SecondaryButton,
			CustomID: customID(actionHint, game.ID),
			Disabled: len(game.RevealedPositions) >= game.WordLength-1,
		},
		discordgo.Button{
			Label:    "Give up",
			Style:    discordgo.DangerButton,
			CustomID: customID(actionAbandon, game.ID),
		},
	}
}

// renderLeaderboard renders the top of a snapshot
func renderLeaderboard(snapshot *models.LeaderboardSnapshot) *discordgo.MessageEmbed {
	var sb strings.Builder
	for idx, entry := range snapshot.Entries {
		if idx == leaderboardRows {
			break
		}

		name := entry.Username
		if name == "" {
			name = fmt.Sprintf("<@%s>", entry.UserID)
		}
		fmt.Fprintf(&sb, "**%d.** %s %.2f (%d games)\n", entry.Rank, name, entry.FinalScore, entry.GamesCount)
	}

	description := sb.String()
	if description == "" {
		description = "Nobody qualifies yet. Play 20 games to get ranked."
	}

	return &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("Leaderboard: %s", snapshot.Difficulty),
		Description: description,
		Color:       colorInfo,
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("%d eligible players, updated %s", snapshot.TotalEligible, snapshot.CalculatedAt.Format("2006-01-02 15:04 MST")),
		},
	}
}
