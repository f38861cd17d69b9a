package match

import (
	"context"
	"testing"
	"time"

	"github.com/KirkDiggler/wordduel/internal/models"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	client  *redis.Client
	repo    Repository
	ctx     context.Context
	testNow time.Time
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	// Create a new miniredis server for each test
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo

	s.ctx = context.Background()
	s.testNow = time.Date(2025, 4, 5, 10, 0, 0, 0, time.UTC)
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) newMatch(id string, maxAttempts int) *models.Match {
	return &models.Match{
		ID:           id,
		Difficulty:   models.DifficultyMedium,
		WordLength:   5,
		MaxAttempts:  maxAttempts,
		Player1:      &models.PlayerSlot{UID: "alice"},
		Player2:      &models.PlayerSlot{UID: "bob"},
		Status:       models.MatchStatusPending,
		CreatedAt:    s.testNow,
		LastActivity: s.testNow,
	}
}

// activeMatch creates a match and sets both words
func (s *RedisRepositoryTestSuite) activeMatch(id string, maxAttempts int) {
	s.Require().NoError(s.repo.CreateMatch(s.ctx, &CreateMatchInput{Match: s.newMatch(id, maxAttempts)}))

	_, err := s.repo.SetWord(s.ctx, &SetWordInput{MatchID: id, Slot: SlotPlayer1, UID: "alice", Word: "TRACE", Now: s.testNow})
	s.Require().NoError(err)
	out, err := s.repo.SetWord(s.ctx, &SetWordInput{MatchID: id, Slot: SlotPlayer2, UID: "bob", Word: "PLANT", Now: s.testNow})
	s.Require().NoError(err)
	s.Require().True(out.Activated)
}

func (s *RedisRepositoryTestSuite) guess(word string, correct bool, at time.Time) *models.Guess {
	dots := 0
	if correct {
		dots = 5
	}
	return &models.Guess{
		Word:      word,
		Dots:      dots,
		IsCorrect: correct,
		Timestamp: at,
	}
}

func (s *RedisRepositoryTestSuite) TestCreateAndGetMatch() {
	s.Require().NoError(s.repo.CreateMatch(s.ctx, &CreateMatchInput{Match: s.newMatch("m1", 25)}))

	m, err := s.repo.GetMatch(s.ctx, &GetMatchInput{MatchID: "m1"})
	s.Require().NoError(err)

	s.Equal("m1", m.ID)
	s.Equal(models.DifficultyMedium, m.Difficulty)
	s.Equal(5, m.WordLength)
	s.Equal(25, m.MaxAttempts)
	s.Equal(models.MatchStatusPending, m.Status)
	s.Equal("alice", m.Player1.UID)
	s.Equal("bob", m.Player2.UID)
	s.False(m.Player1.WordSet)
	s.Empty(m.Player1.Guesses)
	s.False(m.NotificationsSent)
	s.Equal(s.testNow, m.CreatedAt)

	active, err := s.repo.ListActive(s.ctx, &ListActiveInput{})
	s.Require().NoError(err)
	s.Equal([]string{"m1"}, active.MatchIDs)
}

func (s *RedisRepositoryTestSuite) TestCreateMatch_Duplicate() {
	s.Require().NoError(s.repo.CreateMatch(s.ctx, &CreateMatchInput{Match: s.newMatch("m1", 25)}))
	err := s.repo.CreateMatch(s.ctx, &CreateMatchInput{Match: s.newMatch("m1", 25)})
	s.ErrorIs(err, ErrMatchExists)
}

func (s *RedisRepositoryTestSuite) TestGetMatch_NotFound() {
	_, err := s.repo.GetMatch(s.ctx, &GetMatchInput{MatchID: "missing"})
	s.ErrorIs(err, ErrMatchNotFound)
}

func (s *RedisRepositoryTestSuite) TestSetWord() {
	s.Require().NoError(s.repo.CreateMatch(s.ctx, &CreateMatchInput{Match: s.newMatch("m1", 25)}))

	out, err := s.repo.SetWord(s.ctx, &SetWordInput{MatchID: "m1", Slot: SlotPlayer1, UID: "alice", Word: "TRACE", Now: s.testNow})
	s.Require().NoError(err)
	s.False(out.Activated)

	_, err = s.repo.SetWord(s.ctx, &SetWordInput{MatchID: "m1", Slot: SlotPlayer1, UID: "alice", Word: "CRANE", Now: s.testNow})
	s.ErrorIs(err, ErrWordAlreadySet)

	out, err = s.repo.SetWord(s.ctx, &SetWordInput{MatchID: "m1", Slot: SlotPlayer2, UID: "bob", Word: "PLANT", Now: s.testNow})
	s.Require().NoError(err)
	s.True(out.Activated)

	m, err := s.repo.GetMatch(s.ctx, &GetMatchInput{MatchID: "m1"})
	s.Require().NoError(err)
	s.Equal(models.MatchStatusActive, m.Status)
	s.Equal("TRACE", m.Player1.Word)
	s.Equal("PLANT", m.Player2.Word)

	_, err = s.repo.SetWord(s.ctx, &SetWordInput{MatchID: "m1", Slot: SlotPlayer2, UID: "bob", Word: "CRANE", Now: s.testNow})
	s.ErrorIs(err, ErrMatchNotPending)

	_, err = s.repo.SetWord(s.ctx, &SetWordInput{MatchID: "nope", Slot: SlotPlayer1, UID: "alice", Word: "CRANE", Now: s.testNow})
	s.ErrorIs(err, ErrMatchNotFound)
}

func (s *RedisRepositoryTestSuite) TestAppendGuess_IncrementsAttempts() {
	s.activeMatch("m1", 25)

	out, err := s.repo.AppendGuess(s.ctx, &AppendGuessInput{
		MatchID: "m1", Slot: SlotPlayer1, UID: "alice",
		Guess: s.guess("CRANE", false, s.testNow.Add(time.Minute)), ExpectedAttempts: 0,
	})
	s.Require().NoError(err)
	s.Equal(1, out.Attempts)

	out, err = s.repo.AppendGuess(s.ctx, &AppendGuessInput{
		MatchID: "m1", Slot: SlotPlayer1, UID: "alice",
		Guess: s.guess("SLANT", false, s.testNow.Add(2*time.Minute)), ExpectedAttempts: 1,
	})
	s.Require().NoError(err)
	s.Equal(2, out.Attempts)

	m, err := s.repo.GetMatch(s.ctx, &GetMatchInput{MatchID: "m1"})
	s.Require().NoError(err)
	s.Equal(2, m.Player1.Attempts)
	s.Require().Len(m.Player1.Guesses, 2)
	s.Equal("CRANE", m.Player1.Guesses[0].Word)
	s.Equal("SLANT", m.Player1.Guesses[1].Word)
	s.Equal(0, m.Player2.Attempts)
	s.Equal(models.MatchStatusActive, m.Status)
	s.Equal(s.testNow.Add(2*time.Minute), m.LastActivity)
}

func (s *RedisRepositoryTestSuite) TestAppendGuess_StaleAttempts() {
	s.activeMatch("m1", 25)

	_, err := s.repo.AppendGuess(s.ctx, &AppendGuessInput{
		MatchID: "m1", Slot: SlotPlayer1, UID: "alice",
		Guess: s.guess("CRANE", false, s.testNow), ExpectedAttempts: 0,
	})
	s.Require().NoError(err)

	// A second writer that read attempts=0 loses
	_, err = s.repo.AppendGuess(s.ctx, &AppendGuessInput{
		MatchID: "m1", Slot: SlotPlayer1, UID: "alice",
		Guess: s.guess("SLANT", false, s.testNow), ExpectedAttempts: 0,
	})
	s.ErrorIs(err, ErrStaleAttempts)

	m, err := s.repo.GetMatch(s.ctx, &GetMatchInput{MatchID: "m1"})
	s.Require().NoError(err)
	s.Equal(1, m.Player1.Attempts)
	s.Len(m.Player1.Guesses, 1)
}

func (s *RedisRepositoryTestSuite) TestAppendGuess_PendingMatch() {
	s.Require().NoError(s.repo.CreateMatch(s.ctx, &CreateMatchInput{Match: s.newMatch("m1", 25)}))

	_, err := s.repo.AppendGuess(s.ctx, &AppendGuessInput{
		MatchID: "m1", Slot: SlotPlayer1, UID: "alice",
		Guess: s.guess("CRANE", false, s.testNow), ExpectedAttempts: 0,
	})
	s.ErrorIs(err, ErrMatchTerminal)
}

func (s *RedisRepositoryTestSuite) TestAppendGuess_SolveRecordsFinishers() {
	s.activeMatch("m1", 25)
	solveAt := s.testNow.Add(5 * time.Minute)

	_, err := s.repo.AppendGuess(s.ctx, &AppendGuessInput{
		MatchID: "m1", Slot: SlotPlayer2, UID: "bob",
		Guess: s.guess("TRACE", true, solveAt), ExpectedAttempts: 0,
	})
	s.Require().NoError(err)

	m, err := s.repo.GetMatch(s.ctx, &GetMatchInput{MatchID: "m1"})
	s.Require().NoError(err)
	s.True(m.Player2.Solved)
	s.Require().NotNil(m.Player2.SolveTime)
	s.Equal(solveAt, *m.Player2.SolveTime)
	s.Equal("bob", m.FirstFinisherID)
	s.Empty(m.SecondFinisherID)
	s.Equal(models.MatchStatusWaitingForOpponent, m.Status)

	// Solved slot rejects further guesses
	_, err = s.repo.AppendGuess(s.ctx, &AppendGuessInput{
		MatchID: "m1", Slot: SlotPlayer2, UID: "bob",
		Guess: s.guess("CRANE", false, solveAt), ExpectedAttempts: 1,
	})
	s.ErrorIs(err, ErrSlotFinished)

	_, err = s.repo.AppendGuess(s.ctx, &AppendGuessInput{
		MatchID: "m1", Slot: SlotPlayer1, UID: "alice",
		Guess: s.guess("PLANT", true, solveAt.Add(time.Minute)), ExpectedAttempts: 0,
	})
	s.Require().NoError(err)

	m, err = s.repo.GetMatch(s.ctx, &GetMatchInput{MatchID: "m1"})
	s.Require().NoError(err)
	s.Equal("bob", m.FirstFinisherID)
	s.Equal("alice", m.SecondFinisherID)
	s.Equal(models.MatchStatusWaitingForOpponent, m.Status)
	s.True(m.BothFinished())
}

func (s *RedisRepositoryTestSuite) TestAppendGuess_ExhaustionFinishesSlot() {
	s.activeMatch("m1", 2)

	for i := 0; i < 2; i++ {
		_, err := s.repo.AppendGuess(s.ctx, &AppendGuessInput{
			MatchID: "m1", Slot: SlotPlayer1, UID: "alice",
			Guess: s.guess("CRANE", false, s.testNow), ExpectedAttempts: i,
		})
		s.Require().NoError(err)
	}

	m, err := s.repo.GetMatch(s.ctx, &GetMatchInput{MatchID: "m1"})
	s.Require().NoError(err)
	s.False(m.Player1.Solved)
	s.Nil(m.Player1.SolveTime)
	s.NotNil(m.Player1.FinishedAt)
	s.True(m.Player1.IsFinished(m.MaxAttempts))
	s.Equal("alice", m.FirstFinisherID)
	s.Equal(models.MatchStatusWaitingForOpponent, m.Status)

	_, err = s.repo.AppendGuess(s.ctx, &AppendGuessInput{
		MatchID: "m1", Slot: SlotPlayer1, UID: "alice",
		Guess: s.guess("CRANE", false, s.testNow), ExpectedAttempts: 2,
	})
	s.ErrorIs(err, ErrSlotFinished)
}

func (s *RedisRepositoryTestSuite) TestComplete_OnlyOnce() {
	s.activeMatch("m1", 25)

	input := &CompleteInput{
		MatchID:         "m1",
		Status:          models.MatchStatusCompleted,
		WinnerID:        "alice",
		FirstFinisherID: "alice",
		Now:             s.testNow,
	}
	out, err := s.repo.Complete(s.ctx, input)
	s.Require().NoError(err)
	s.True(out.Completed)

	// A second resolution with a different result is a no-op
	out, err = s.repo.Complete(s.ctx, &CompleteInput{
		MatchID: "m1",
		Status:  models.MatchStatusCompleted,
		Tie:     true,
		Now:     s.testNow.Add(time.Second),
	})
	s.Require().NoError(err)
	s.False(out.Completed)

	m, err := s.repo.GetMatch(s.ctx, &GetMatchInput{MatchID: "m1"})
	s.Require().NoError(err)
	s.Equal(models.MatchStatusCompleted, m.Status)
	s.Equal("alice", m.WinnerID)
	s.False(m.Tie)
	s.Require().NotNil(m.CompletedAt)
	s.Equal(s.testNow, *m.CompletedAt)

	active, err := s.repo.ListActive(s.ctx, &ListActiveInput{})
	s.Require().NoError(err)
	s.Empty(active.MatchIDs)

	_, err = s.repo.AppendGuess(s.ctx, &AppendGuessInput{
		MatchID: "m1", Slot: SlotPlayer1, UID: "alice",
		Guess: s.guess("CRANE", false, s.testNow), ExpectedAttempts: 0,
	})
	s.ErrorIs(err, ErrMatchTerminal)
}

func (s *RedisRepositoryTestSuite) TestComplete_StaleAttempts() {
	s.activeMatch("m1", 25)

	_, err := s.repo.AppendGuess(s.ctx, &AppendGuessInput{
		MatchID: "m1", Slot: SlotPlayer1, UID: "alice",
		Guess: s.guess("CRANE", false, s.testNow), ExpectedAttempts: 0,
	})
	s.Require().NoError(err)

	_, err = s.repo.Complete(s.ctx, &CompleteInput{
		MatchID:          "m1",
		Status:           models.MatchStatusCompleted,
		Tie:              true,
		Now:              s.testNow,
		ExpectedAttempts: &[2]int{0, 0},
	})
	s.ErrorIs(err, ErrStaleAttempts)

	out, err := s.repo.Complete(s.ctx, &CompleteInput{
		MatchID:          "m1",
		Status:           models.MatchStatusCompleted,
		Tie:              true,
		Now:              s.testNow,
		ExpectedAttempts: &[2]int{1, 0},
	})
	s.Require().NoError(err)
	s.True(out.Completed)
}

func (s *RedisRepositoryTestSuite) TestComplete_RejectsNonTerminalStatus() {
	s.activeMatch("m1", 25)
	_, err := s.repo.Complete(s.ctx, &CompleteInput{MatchID: "m1", Status: models.MatchStatusActive, Now: s.testNow})
	s.Error(err)
}

func (s *RedisRepositoryTestSuite) TestClaimNotification() {
	s.activeMatch("m1", 25)

	claimed, err := s.repo.ClaimNotification(s.ctx, &ClaimNotificationInput{MatchID: "m1"})
	s.Require().NoError(err)
	s.True(claimed)

	claimed, err = s.repo.ClaimNotification(s.ctx, &ClaimNotificationInput{MatchID: "m1"})
	s.Require().NoError(err)
	s.False(claimed)

	m, err := s.repo.GetMatch(s.ctx, &GetMatchInput{MatchID: "m1"})
	s.Require().NoError(err)
	s.True(m.NotificationsSent)
}

func (s *RedisRepositoryTestSuite) TestMarkResultsSeen() {
	s.activeMatch("m1", 25)

	s.Require().NoError(s.repo.MarkResultsSeen(s.ctx, &MarkResultsSeenInput{MatchID: "m1", UID: "bob"}))
	s.Require().NoError(s.repo.MarkResultsSeen(s.ctx, &MarkResultsSeenInput{MatchID: "m1", UID: "bob"}))

	m, err := s.repo.GetMatch(s.ctx, &GetMatchInput{MatchID: "m1"})
	s.Require().NoError(err)
	s.Equal([]string{"bob"}, m.ResultsSeenBy)
	s.True(m.HasSeenResult("bob"))
	s.False(m.HasSeenResult("alice"))
}

func (s *RedisRepositoryTestSuite) TestSubscribe() {
	s.activeMatch("m1", 25)

	sub, err := s.repo.Subscribe(s.ctx, &SubscribeInput{MatchID: "m1"})
	s.Require().NoError(err)
	defer sub.Close()

	_, err = s.repo.AppendGuess(s.ctx, &AppendGuessInput{
		MatchID: "m1", Slot: SlotPlayer1, UID: "alice",
		Guess: s.guess("CRANE", false, s.testNow), ExpectedAttempts: 0,
	})
	s.Require().NoError(err)

	select {
	case event := <-sub.Events():
		s.Equal("m1", event.MatchID)
		s.Equal(EventGuess, event.Type)
		s.Equal("alice", event.UID)
	case <-time.After(2 * time.Second):
		s.Fail("timed out waiting for match event")
	}

	s.Require().NoError(sub.Close())
	s.Require().NoError(sub.Close())
}
