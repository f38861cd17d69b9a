package discord

import (
	"errors"
	"testing"

	"github.com/KirkDiggler/wordduel/internal/models"
	"github.com/KirkDiggler/wordduel/internal/services/leaderboard"
	leaderboardMocks "github.com/KirkDiggler/wordduel/internal/services/leaderboard/mocks"
	"github.com/KirkDiggler/wordduel/internal/services/solo"
	soloMocks "github.com/KirkDiggler/wordduel/internal/services/solo/mocks"
	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

// fakeResponder records interaction responses
type fakeResponder struct {
	responses []*discordgo.InteractionResponse
}

func (f *fakeResponder) InteractionRespond(_ *discordgo.Interaction, resp *discordgo.InteractionResponse, _ ...discordgo.RequestOption) error {
	f.responses = append(f.responses, resp)
	return nil
}

func (f *fakeResponder) last() *discordgo.InteractionResponse {
	if len(f.responses) == 0 {
		return nil
	}
	return f.responses[len(f.responses)-1]
}

type WordduelCommandTestSuite struct {
	suite.Suite
	mockCtrl        *gomock.Controller
	mockSolo        *soloMocks.MockService
	mockLeaderboard *leaderboardMocks.MockService
	command         *WordduelCommand
	responder       *fakeResponder
}

func (s *WordduelCommandTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockSolo = soloMocks.NewMockService(s.mockCtrl)
	s.mockLeaderboard = leaderboardMocks.NewMockService(s.mockCtrl)
	s.command = NewWordduelCommand(s.mockSolo, s.mockLeaderboard, zap.NewNop().Sugar())
	s.responder = &fakeResponder{}
}

func (s *WordduelCommandTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestWordduelCommandSuite(t *testing.T) {
	suite.Run(t, new(WordduelCommandTestSuite))
}

func (s *WordduelCommandTestSuite) slash(sub string, options map[string]string) *discordgo.InteractionCreate {
	var opts []*discordgo.ApplicationCommandInteractionDataOption
	for name, value := range options {
		opts = append(opts, &discordgo.ApplicationCommandInteractionDataOption{
			Name:  name,
			Type:  discordgo.ApplicationCommandOptionString,
			Value: value,
		})
	}

	return &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
		Type: discordgo.InteractionApplicationCommand,
		Data: discordgo.ApplicationCommandInteractionData{
			Name: commandName,
			Options: []*discordgo.ApplicationCommandInteractionDataOption{
				{Name: sub, Type: discordgo.ApplicationCommandOptionSubCommand, Options: opts},
			},
		},
		Member: &discordgo.Member{User: &discordgo.User{ID: "user-1", Username: "alice"}},
	}}
}

func (s *WordduelCommandTestSuite) button(id string) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
		Type: discordgo.InteractionMessageComponent,
		Data: discordgo.MessageComponentInteractionData{CustomID: id},
		User: &discordgo.User{ID: "user-1", Username: "alice"},
	}}
}

func (s *WordduelCommandTestSuite) activeGame() *solo.GameView {
	return &solo.GameView{
		ID:                "game-1",
		Difficulty:        models.DifficultyMedium,
		WordLength:        5,
		Guesses:           []*models.Guess{},
		RevealedPositions: []int{},
		Status:            models.SoloGameStatusActive,
	}
}

func (s *WordduelCommandTestSuite) errorText() string {
	resp := s.responder.last()
	s.Require().NotNil(resp)
	s.Require().Len(resp.Data.Embeds, 1)
	s.Equal("Error", resp.Data.Embeds[0].Title)
	return resp.Data.Embeds[0].Description
}

func (s *WordduelCommandTestSuite) TestPlay() {
	s.mockSolo.EXPECT().
		StartGame(gomock.Any(), &solo.StartGameInput{UserID: "user-1", Difficulty: models.DifficultyMedium}).
		Return(&solo.StartGameOutput{Game: s.activeGame()}, nil)

	s.Require().NoError(s.command.Handle(s.responder, s.slash("play", map[string]string{"difficulty": "medium"})))

	resp := s.responder.last()
	s.Require().NotNil(resp)
	s.Equal(discordgo.InteractionResponseChannelMessageWithSource, resp.Type)
	s.Equal(discordgo.MessageFlagsEphemeral, resp.Data.Flags)
	s.Contains(resp.Data.Embeds[0].Title, "medium")

	s.Require().Len(resp.Data.Components, 1)
	row := resp.Data.Components[0].(discordgo.ActionsRow)
	s.Require().Len(row.Components, 2)
	s.Equal("wordduel:hint:game-1", row.Components[0].(discordgo.Button).CustomID)
	s.Equal("wordduel:abandon:game-1", row.Components[1].(discordgo.Button).CustomID)
}

func (s *WordduelCommandTestSuite) TestGuess_Solves() {
	solved := s.activeGame()
	solved.Status = models.SoloGameStatusSolved
	solved.Target = "CRANE"
	solved.Score = 2
	solved.Guesses = []*models.Guess{
		{Word: "TRACE", Dots: 3, Circles: 1},
		{Word: "CRANE", Dots: 5, IsCorrect: true},
	}

	gomock.InOrder(
		s.mockSolo.EXPECT().
			StartGame(gomock.Any(), &solo.StartGameInput{UserID: "user-1", Difficulty: models.DifficultyMedium}).
			Return(&solo.StartGameOutput{Game: s.activeGame(), Resumed: true}, nil),
		s.mockSolo.EXPECT().
			SubmitGuess(gomock.Any(), &solo.SubmitGuessInput{GameID: "game-1", UserID: "user-1", Word: "crane"}).
			Return(&solo.SubmitGuessOutput{Guess: solved.Guesses[1], Game: solved}, nil),
	)

	s.Require().NoError(s.command.Handle(s.responder, s.slash("guess", map[string]string{"word": " crane "})))

	resp := s.responder.last()
	s.Require().NotNil(resp)
	embed := resp.Data.Embeds[0]
	s.Contains(embed.Description, "`T R A C E` ●●●○")
	s.Contains(embed.Description, "Solved! Score 2")
	s.Equal(colorWin, embed.Color)
	s.Empty(resp.Data.Components)
}

func (s *WordduelCommandTestSuite) TestGuess_WrongLength() {
	s.Require().NoError(s.command.Handle(s.responder, s.slash("guess", map[string]string{"word": "abc"})))
	s.Contains(s.errorText(), "4, 5 or 6")
}

func (s *WordduelCommandTestSuite) TestGuess_NotAWord() {
	s.mockSolo.EXPECT().StartGame(gomock.Any(), gomock.Any()).Return(&solo.StartGameOutput{Game: s.activeGame()}, nil)
	s.mockSolo.EXPECT().SubmitGuess(gomock.Any(), gomock.Any()).Return(nil, solo.ErrInvalidWord)

	s.Require().NoError(s.command.Handle(s.responder, s.slash("guess", map[string]string{"word": "zzzzz"})))
	s.Equal("That word isn't in the dictionary.", s.errorText())
}

func (s *WordduelCommandTestSuite) TestHintSubcommand() {
	hinted := s.activeGame()
	hinted.HintsUsed = 1
	hinted.RevealedPositions = []int{0}
	hinted.Guesses = []*models.Guess{{Word: "C____", Dots: 1, IsHint: true}}

	s.mockSolo.EXPECT().StartGame(gomock.Any(), gomock.Any()).Return(&solo.StartGameOutput{Game: s.activeGame(), Resumed: true}, nil)
	s.mockSolo.EXPECT().
		UseHint(gomock.Any(), &solo.UseHintInput{GameID: "game-1", UserID: "user-1"}).
		Return(&solo.UseHintOutput{Position: 0, Letter: "C", Game: hinted}, nil)

	s.Require().NoError(s.command.Handle(s.responder, s.slash("hint", map[string]string{"difficulty": "medium"})))

	embed := s.responder.last().Data.Embeds[0]
	s.Contains(embed.Description, "`C _ _ _ _` hint")
	s.Contains(embed.Description, "Letter 1 is **C**.")
}

func (s *WordduelCommandTestSuite) TestHintButton_UpdatesMessage() {
	hinted := s.activeGame()
	hinted.RevealedPositions = []int{0, 1, 2, 3}
	hinted.HintsUsed = 4

	s.mockSolo.EXPECT().
		UseHint(gomock.Any(), &solo.UseHintInput{GameID: "game-1", UserID: "user-1"}).
		Return(&solo.UseHintOutput{Position: 3, Letter: "N", Game: hinted}, nil)

	s.Require().NoError(s.command.HandleComponent(s.responder, s.button("wordduel:hint:game-1")))

	resp := s.responder.last()
	s.Equal(discordgo.InteractionResponseUpdateMessage, resp.Type)
	row := resp.Data.Components[0].(discordgo.ActionsRow)
	s.True(row.Components[0].(discordgo.Button).Disabled, "hint disabled once only one letter is hidden")
}

func (s *WordduelCommandTestSuite) TestAbandonButton() {
	abandoned := s.activeGame()
	abandoned.Status = models.SoloGameStatusAbandoned
	abandoned.Target = "CRANE"

	s.mockSolo.EXPECT().
		Abandon(gomock.Any(), &solo.AbandonInput{GameID: "game-1", UserID: "user-1"}).
		Return(abandoned, nil)

	s.Require().NoError(s.command.HandleComponent(s.responder, s.button("wordduel:abandon:game-1")))

	embed := s.responder.last().Data.Embeds[0]
	s.Equal(colorLost, embed.Color)
	s.Equal("CRANE", embed.Fields[len(embed.Fields)-1].Value)
}

func (s *WordduelCommandTestSuite) TestLeaderboard_DefaultsToMedium() {
	s.mockLeaderboard.EXPECT().
		GetSnapshot(gomock.Any(), &leaderboard.GetSnapshotInput{Difficulty: models.DifficultyMedium}).
		Return(&models.LeaderboardSnapshot{
			Difficulty: models.DifficultyMedium,
			Entries: []*models.LeaderboardEntry{
				{UserID: "x", Username: "Xavier", FinalScore: 7, GamesCount: 20, Rank: 1},
				{UserID: "y", FinalScore: 7.5, GamesCount: 31, Rank: 2},
			},
			TotalEligible: 2,
		}, nil)

	s.Require().NoError(s.command.Handle(s.responder, s.slash("leaderboard", nil)))

	resp := s.responder.last()
	s.Zero(resp.Data.Flags, "leaderboards are public")
	s.Contains(resp.Data.Embeds[0].Description, "**1.** Xavier 7.00 (20 games)")
	s.Contains(resp.Data.Embeds[0].Description, "**2.** <@y> 7.50 (31 games)")
}

func (s *WordduelCommandTestSuite) TestLeaderboard_NotCalculated() {
	s.mockLeaderboard.EXPECT().GetSnapshot(gomock.Any(), gomock.Any()).Return(nil, leaderboard.ErrSnapshotNotFound)

	s.Require().NoError(s.command.Handle(s.responder, s.slash("leaderboard", map[string]string{"difficulty": "hard"})))
	s.Equal("No leaderboard has been calculated yet.", s.errorText())
}

func (s *WordduelCommandTestSuite) TestName() {
	s.mockSolo.EXPECT().
		SetUsername(gomock.Any(), &solo.SetUsernameInput{UserID: "user-1", Username: "Wordsmith"}).
		Return(nil)

	s.Require().NoError(s.command.Handle(s.responder, s.slash("name", map[string]string{"username": "Wordsmith"})))
	s.Contains(s.responder.last().Data.Embeds[0].Description, "**Wordsmith**")
}

func (s *WordduelCommandTestSuite) TestUnexpectedErrorIsGeneric() {
	s.mockSolo.EXPECT().StartGame(gomock.Any(), gomock.Any()).Return(nil, errors.New("redis down"))

	s.Require().NoError(s.command.Handle(s.responder, s.slash("play", map[string]string{"difficulty": "easy"})))
	s.Equal("Something went wrong, try again in a moment.", s.errorText())
}

func (s *WordduelCommandTestSuite) TestBotRoutesByCommandPrefix() {
	bot := &Bot{
		commands: map[string]CommandHandler{commandName: s.command},
		log:      zap.NewNop().Sugar(),
	}

	s.mockSolo.EXPECT().Abandon(gomock.Any(), gomock.Any()).Return(s.activeGame(), nil)
	bot.handleInteraction(s.responder, s.button("wordduel:abandon:game-1"))
	s.Len(s.responder.responses, 1)

	bot.handleInteraction(s.responder, s.button("trivia:start"))
	s.Contains(s.errorText(), "Unknown button")
}
