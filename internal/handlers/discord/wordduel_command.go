package discord

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/KirkDiggler/wordduel/internal/models"
	"github.com/KirkDiggler/wordduel/internal/services/leaderboard"
	"github.com/KirkDiggler/wordduel/internal/services/solo"
	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

const (
	commandName = "wordduel"

	actionHint    = "hint"
	actionAbandon = "abandon"

	requestTimeout = 5 * time.Second
)

// WordduelCommand handles the /wordduel command
type WordduelCommand struct {
	BaseCommand
	soloService        solo.Service
	leaderboardService leaderboard.Service
	log                *zap.SugaredLogger
}

// NewWordduelCommand creates a new wordduel command handler
func NewWordduelCommand(soloService solo.Service, leaderboardService leaderboard.Service, log *zap.SugaredLogger) *WordduelCommand {
	difficulty := func(required bool) *discordgo.ApplicationCommandOption {
		return &discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "difficulty",
			Description: "Word length: easy 4, medium 5, hard 6",
			Required:    required,
			Choices: []*discordgo.ApplicationCommandOptionChoice{
				{Name: "easy", Value: string(models.DifficultyEasy)},
				{Name: "medium", Value: string(models.DifficultyMedium)},
				{Name: "hard", Value: string(models.DifficultyHard)},
			},
		}
	}

	return &WordduelCommand{
		BaseCommand: BaseCommand{
			Name:        commandName,
			Description: "Guess the hidden word",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "play",
					Description: "Start or resume a solo game",
					Options:     []*discordgo.ApplicationCommandOption{difficulty(true)},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "guess",
					Description: "Guess a word in your solo game",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "word",
							Description: "Your guess; its length picks the game",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "hint",
					Description: "Reveal a letter for 3 points",
					Options:     []*discordgo.ApplicationCommandOption{difficulty(true)},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "leaderboard",
					Description: "Show the leaderboard",
					Options:     []*discordgo.ApplicationCommandOption{difficulty(false)},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "name",
					Description: "Set the name shown on leaderboards",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "username",
							Description: "Display name",
							Required:    true,
						},
					},
				},
			},
		},
		soloService:        soloService,
		leaderboardService: leaderboardService,
		log:                log,
	}
}

// Handle processes a Discord interaction for the wordduel command
func (c *WordduelCommand) Handle(r Responder, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	data := i.ApplicationCommandData()
	if data.Name != c.Name || len(data.Options) == 0 {
		return nil
	}

	userID, username := interactionUser(i)
	if userID == "" {
		return RespondWithError(r, i, "Could not tell who you are.")
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	sub := data.Options[0]
	options := optionValues(sub.Options)

	switch sub.Name {
	case "play":
		return c.handlePlay(ctx, r, i, userID, models.Difficulty(options["difficulty"]))
	case "guess":
		return c.handleGuess(ctx, r, i, userID, options["word"])
	case "hint":
		return c.handleHint(ctx, r, i, userID, models.Difficulty(options["difficulty"]))
	case "leaderboard":
		return c.handleLeaderboard(ctx, r, i, models.Difficulty(options["difficulty"]))
	case "name":
		return c.handleName(ctx, r, i, userID, username, options["username"])
	default:
		return RespondWithError(r, i, fmt.Sprintf("Unknown subcommand: %s", sub.Name))
	}
}

// HandleComponent processes the Hint and Give up buttons under a board.
// Custom IDs are wordduel:<action>:<gameID>.
func (c *WordduelCommand) HandleComponent(r Responder, i *discordgo.InteractionCreate) error {
	parts := strings.SplitN(i.MessageComponentData().CustomID, ":", 3)
	if len(parts) != 3 || parts[0] != c.Name {
		return RespondWithError(r, i, "Unknown button.")
	}

	userID, _ := interactionUser(i)
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	action, gameID := parts[1], parts[2]
	switch action {
	case actionHint:
		out, err := c.soloService.UseHint(ctx, &solo.UseHintInput{GameID: gameID, UserID: userID})
		if err != nil {
			return c.respondServiceError(r, i, err)
		}
		return RespondWithEmbed(r, i, renderBoard(out.Game, hintNote(out)), boardButtons(out.Game), true)
	case actionAbandon:
		game, err := c.soloService.Abandon(ctx, &solo.AbandonInput{GameID: gameID, UserID: userID})
		if err != nil {
			return c.respondServiceError(r, i, err)
		}
		return RespondWithEmbed(r, i, renderBoard(game, "You gave up."), nil, true)
	default:
		return RespondWithError(r, i, "Unknown button.")
	}
}

func (c *WordduelCommand) handlePlay(ctx context.Context, r Responder, i *discordgo.InteractionCreate, userID string, difficulty models.Difficulty) error {
	out, err := c.soloService.StartGame(ctx, &solo.StartGameInput{UserID: userID, Difficulty: difficulty})
	if err != nil {
		return c.respondServiceError(r, i, err)
	}

	note := fmt.Sprintf("Guess the %d letter word with `/wordduel guess`.", out.Game.WordLength)
	if out.Resumed {
		note = "Picking up where you left off."
	}

	return RespondWithEmbed(r, i, renderBoard(out.Game, note), boardButtons(out.Game), true)
}

func (c *WordduelCommand) handleGuess(ctx context.Context, r Responder, i *discordgo.InteractionCreate, userID, word string) error {
	word = strings.TrimSpace(word)
	difficulty, ok := difficultyForLength(utf8.RuneCountInString(word))
	if !ok {
		return RespondWithError(r, i, "Guesses are 4, 5 or 6 letters long.")
	}

	// The guess's length picks the game; an unfinished one is resumed
	started, err := c.soloService.StartGame(ctx, &solo.StartGameInput{UserID: userID, Difficulty: difficulty})
	if err != nil {
		return c.respondServiceError(r, i, err)
	}

	out, err := c.soloService.SubmitGuess(ctx, &solo.SubmitGuessInput{
		GameID: started.Game.ID,
		UserID: userID,
		Word:   word,
	})
	if err != nil {
		return c.respondServiceError(r, i, err)
	}

	note := ""
	if out.Guess.IsCorrect {
		note = fmt.Sprintf("Solved! Score %d (lower is better).", out.Game.Score)
	}

	return RespondWithEmbed(r, i, renderBoard(out.Game, note), boardButtons(out.Game), true)
}

func (c *WordduelCommand) handleHint(ctx context.Context, r Responder, i *discordgo.InteractionCreate, userID string, difficulty models.Difficulty) error {
	started, err := c.soloService.StartGame(ctx, &solo.StartGameInput{UserID: userID, Difficulty: difficulty})
	if err != nil {
		return c.respondServiceError(r, i, err)
	}

	out, err := c.soloService.UseHint(ctx, &solo.UseHintInput{GameID: started.Game.ID, UserID: userID})
	if err != nil {
		return c.respondServiceError(r, i, err)
	}

	return RespondWithEmbed(r, i, renderBoard(out.Game, hintNote(out)), boardButtons(out.Game), true)
}

func (c *WordduelCommand) handleLeaderboard(ctx context.Context, r Responder, i *discordgo.InteractionCreate, difficulty models.Difficulty) error {
	if difficulty == "" {
		difficulty = models.DifficultyMedium
	}

	snapshot, err := c.leaderboardService.GetSnapshot(ctx, &leaderboard.GetSnapshotInput{Difficulty: difficulty})
	if err != nil {
		return c.respondServiceError(r, i, err)
	}

	return RespondWithEmbed(r, i, renderLeaderboard(snapshot), nil, false)
}

func (c *WordduelCommand) handleName(ctx context.Context, r Responder, i *discordgo.InteractionCreate, userID, discordName, username string) error {
	if err := c.soloService.SetUsername(ctx, &solo.SetUsernameInput{UserID: userID, Username: username}); err != nil {
		return c.respondServiceError(r, i, err)
	}

	embed := &discordgo.MessageEmbed{
		Title:       "Name saved",
		Description: fmt.Sprintf("%s will appear on leaderboards as **%s**.", discordName, strings.TrimSpace(username)),
		Color:       colorInfo,
	}

	return RespondWithEmbed(r, i, embed, nil, true)
}

// respondServiceError turns known service errors into a friendly message.
// Anything else is logged and reported generically.
func (c *WordduelCommand) respondServiceError(r Responder, i *discordgo.InteractionCreate, err error) error {
	var message string
	switch {
	case errors.Is(err, solo.ErrInvalidWord):
		message = "That word isn't in the dictionary."
	case errors.Is(err, solo.ErrInvalidDiff), errors.Is(err, leaderboard.ErrInvalidDifficulty):
		message = "Pick easy, medium or hard."
	case errors.Is(err, solo.ErrNoHintsLeft):
		message = "No hints left, the last letter is up to you."
	case errors.Is(err, solo.ErrStaleState):
		message = "Your game changed while that was on its way, try again."
	case errors.Is(err, solo.ErrGameNotActive):
		message = "That game is already over. Start another with `/wordduel play`."
	case errors.Is(err, solo.ErrGameNotFound), errors.Is(err, solo.ErrNotOwner):
		message = "That game isn't yours."
	case errors.Is(err, solo.ErrInvalidUsername):
		message = "Names are 1 to 32 characters."
	case errors.Is(err, leaderboard.ErrSnapshotNotFound):
		message = "No leaderboard has been calculated yet."
	default:
		c.log.Errorw("wordduel command failed", "error", err)
		message = "Something went wrong, try again in a moment."
	}

	return RespondWithError(r, i, message)
}

func optionValues(options []*discordgo.ApplicationCommandInteractionDataOption) map[string]string {
	values := make(map[string]string, len(options))
	for _, opt := range options {
		if opt.Type == discordgo.ApplicationCommandOptionString {
			values[opt.Name] = opt.StringValue()
		}
	}
	return values
}

func difficultyForLength(length int) (models.Difficulty, bool) {
	for _, d := range models.AllDifficulties {
		if d.WordLength() == length {
			return d, true
		}
	}
	return "", false
}

func hintNote(out *solo.UseHintOutput) string {
	return fmt.Sprintf("Letter %d is **%s**.", out.Position+1, out.Letter)
}

func customID(action, gameID string) string {
	return commandName + ":" + action + ":" + gameID
}
