package match

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/KirkDiggler/wordduel/internal/common/clock"
	"github.com/KirkDiggler/wordduel/internal/common/logger"
	"github.com/KirkDiggler/wordduel/internal/common/uuid"
	"github.com/KirkDiggler/wordduel/internal/feedback"
	"github.com/KirkDiggler/wordduel/internal/metrics"
	"github.com/KirkDiggler/wordduel/internal/models"
	matchRepo "github.com/KirkDiggler/wordduel/internal/repositories/match"
	playerRepo "github.com/KirkDiggler/wordduel/internal/repositories/player"
	"github.com/KirkDiggler/wordduel/internal/services/notifier"
	"github.com/KirkDiggler/wordduel/internal/services/words"
	"go.uber.org/zap"
)

const (
	defaultInactivityTimeout = 72 * time.Hour
	defaultNotifyTimeout     = 10 * time.Second
)

// service implements the Service interface
type service struct {
	maxAttempts       int
	inactivityTimeout time.Duration
	notifyTimeout     time.Duration

	matchRepo  matchRepo.Repository
	playerRepo playerRepo.Repository

	dictionary    words.Dictionary
	wordSource    words.Source
	notifier      notifier.Sender
	messages      *notifier.Messages
	clock         clock.Clock
	uuidGenerator uuid.UUID
	metrics       *metrics.Metrics
	log           *zap.SugaredLogger
}

// New creates a new match service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.MatchRepo == nil {
		return nil, ErrNilMatchRepo
	}

	if cfg.Dictionary == nil {
		return nil, ErrNilDictionary
	}

	if cfg.WordSource == nil {
		return nil, ErrNilWordSource
	}

	if cfg.Notifier == nil {
		return nil, ErrNilNotifier
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	s := &service{
		maxAttempts:       cfg.MaxAttempts,
		inactivityTimeout: cfg.InactivityTimeout,
		notifyTimeout:     cfg.NotifyTimeout,
		matchRepo:         cfg.MatchRepo,
		playerRepo:        cfg.PlayerRepo,
		dictionary:        cfg.Dictionary,
		wordSource:        cfg.WordSource,
		notifier:          cfg.Notifier,
		messages:          cfg.Messages,
		clock:             cfg.Clock,
		uuidGenerator:     cfg.UUIDGenerator,
		metrics:           cfg.Metrics,
		log:               logger.OrNop(cfg.Logger),
	}

	// Set default values if not provided
	if s.maxAttempts <= 0 {
		s.maxAttempts = models.DefaultMaxAttempts
	}
	if s.inactivityTimeout <= 0 {
		s.inactivityTimeout = defaultInactivityTimeout
	}
	if s.notifyTimeout <= 0 {
		s.notifyTimeout = defaultNotifyTimeout
	}
	if s.messages == nil {
		s.messages = notifier.NewMessages(0)
	}

	return s, nil
}

// CreateMatch creates a pending match between two players
func (s *service) CreateMatch(ctx context.Context, input *CreateMatchInput) (*CreateMatchOutput, error) {
	if input == nil || input.Player1ID == "" || input.Player2ID == "" || input.Player1ID == input.Player2ID {
		return nil, ErrInvalidPlayers
	}

	length := input.WordLength
	if input.Difficulty != "" {
		if !input.Difficulty.Valid() {
			return nil, ErrInvalidLength
		}
		length = input.Difficulty.WordLength()
	}
	if !supportedLength(length) {
		return nil, ErrInvalidLength
	}

	maxAttempts := input.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = s.maxAttempts
	}

	now := s.clock.Now()
	m := &models.Match{
		ID:            s.uuidGenerator.NewUUID(),
		Difficulty:    input.Difficulty,
		WordLength:    length,
		MaxAttempts:   maxAttempts,
		Player1:       &models.PlayerSlot{UID: input.Player1ID, Guesses: []*models.Guess{}},
		Player2:       &models.PlayerSlot{UID: input.Player2ID, Guesses: []*models.Guess{}},
		Status:        models.MatchStatusPending,
		ResultsSeenBy: []string{},
		CreatedAt:     now,
		LastActivity:  now,
	}

	if err := s.matchRepo.CreateMatch(ctx, &matchRepo.CreateMatchInput{Match: m}); err != nil {
		return nil, fmt.Errorf("failed to create match: %w", err)
	}

	s.log.Infow("match created", "match_id", m.ID, "player1", m.Player1.UID, "player2", m.Player2.UID, "word_length", length)

	return &CreateMatchOutput{Match: m}, nil
}

// SetSecretWord stores the word the caller's opponent will guess
func (s *service) SetSecretWord(ctx context.Context, input *SetSecretWordInput) (*SetSecretWordOutput, error) {
	if input == nil {
		return nil, ErrMatchNotFound
	}

	m, err := s.pendingSlot(ctx, input.MatchID, input.UID)
	if err != nil {
		return nil, err
	}

	word := normalize(input.Word)
	if len(word) != m.WordLength || !s.dictionary.IsValidWord(word, m.WordLength) {
		return nil, ErrInvalidWord
	}

	activated, err := s.setWord(ctx, m, input.UID, word)
	if err != nil {
		return nil, err
	}

	return &SetSecretWordOutput{Activated: activated}, nil
}

// DrawSecretWord picks a random secret word for the caller
func (s *service) DrawSecretWord(ctx context.Context, input *DrawSecretWordInput) (*DrawSecretWordOutput, error) {
	if input == nil {
		return nil, ErrMatchNotFound
	}

	m, err := s.pendingSlot(ctx, input.MatchID, input.UID)
	if err != nil {
		return nil, err
	}

	word, err := s.wordSource.DrawRandomWord(m.WordLength)
	if err != nil {
		return nil, fmt.Errorf("failed to draw word: %w", err)
	}
	word = normalize(word)

	activated, err := s.setWord(ctx, m, input.UID, word)
	if err != nil {
		return nil, err
	}

	return &DrawSecretWordOutput{
		Word:      word,
		Activated: activated,
	}, nil
}

// pendingSlot loads a match and checks the caller may still choose a word
func (s *service) pendingSlot(ctx context.Context, matchID, uid string) (*models.Match, error) {
	m, err := s.getMatch(ctx, matchID)
	if err != nil {
		return nil, err
	}

	slot := m.Slot(uid)
	if slot == nil {
		return nil, ErrNotParticipant
	}

	if m.Status != models.MatchStatusPending {
		return nil, ErrMatchNotPending
	}

	if slot.WordSet {
		return nil, ErrWordAlreadySet
	}

	return m, nil
}

func (s *service) setWord(ctx context.Context, m *models.Match, uid, word string) (bool, error) {
	out, err := s.matchRepo.SetWord(ctx, &matchRepo.SetWordInput{
		MatchID: m.ID,
		Slot:    slotOf(m, uid),
		UID:     uid,
		Word:    word,
		Now:     s.clock.Now(),
	})
	if err != nil {
		switch {
		case errors.Is(err, matchRepo.ErrMatchNotFound):
			return false, ErrMatchNotFound
		case errors.Is(err, matchRepo.ErrMatchNotPending):
			return false, ErrMatchNotPending
		case errors.Is(err, matchRepo.ErrWordAlreadySet):
			return false, ErrWordAlreadySet
		}
		return false, fmt.Errorf("failed to set word: %w", err)
	}

	if out.Activated {
		s.log.Infow("match active", "match_id", m.ID)
	}

	return out.Activated, nil
}

// SubmitGuess scores a guess against the opponent's word and records it.
// A rejected guess leaves the match unchanged.
func (s *service) SubmitGuess(ctx context.Context, input *SubmitGuessInput) (*SubmitGuessOutput, error) {
	if input == nil {
		return nil, ErrMatchNotFound
	}

	m, err := s.getMatch(ctx, input.MatchID)
	if err != nil {
		return nil, err
	}

	if !m.Status.IsPlayable() {
		s.metrics.ObserveGuess(metrics.GuessRejected)
		return nil, ErrMatchNotActive
	}

	slot := m.Slot(input.UID)
	if slot == nil {
		return nil, ErrNotParticipant
	}

	if slot.IsFinished(m.MaxAttempts) {
		s.metrics.ObserveGuess(metrics.GuessRejected)
		return nil, ErrSlotFinished
	}

	word := normalize(input.Word)
	if len(word) != m.WordLength || !s.dictionary.IsValidWord(word, m.WordLength) {
		s.metrics.ObserveGuess(metrics.GuessRejected)
		return nil, ErrInvalidWord
	}

	expected := slot.Attempts
	if input.ExpectedAttempts != nil {
		if *input.ExpectedAttempts != slot.Attempts {
			s.metrics.ObserveGuess(metrics.GuessStale)
			return nil, ErrStaleState
		}
		expected = *input.ExpectedAttempts
	}

	result, err := feedback.Score(word, m.Opponent(input.UID).Word)
	if err != nil {
		return nil, fmt.Errorf("failed to score guess: %w", err)
	}

	guess := &models.Guess{
		Word:             word,
		Dots:             result.Dots,
		Circles:          result.Circles,
		PerLetterOutcome: result.PerLetterOutcome,
		IsCorrect:        result.IsCorrect(),
		Timestamp:        s.clock.Now(),
	}

	out, err := s.matchRepo.AppendGuess(ctx, &matchRepo.AppendGuessInput{
		MatchID:          m.ID,
		Slot:             slotOf(m, input.UID),
		UID:              input.UID,
		Guess:            guess,
		ExpectedAttempts: expected,
	})
	if err != nil {
		switch {
		case errors.Is(err, matchRepo.ErrStaleAttempts):
			s.metrics.ObserveGuess(metrics.GuessStale)
			return nil, ErrStaleState
		case errors.Is(err, matchRepo.ErrMatchTerminal):
			s.metrics.ObserveGuess(metrics.GuessRejected)
			return nil, ErrMatchNotActive
		case errors.Is(err, matchRepo.ErrSlotFinished):
			s.metrics.ObserveGuess(metrics.GuessRejected)
			return nil, ErrSlotFinished
		case errors.Is(err, matchRepo.ErrMatchNotFound):
			return nil, ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to append guess: %w", err)
	}
	s.metrics.ObserveGuess(metrics.GuessAccepted)

	output := &SubmitGuessOutput{
		Guess:    guess,
		Attempts: out.Attempts,
		Finished: guess.IsCorrect || out.Attempts >= m.MaxAttempts,
	}

	// Completion check against the state after this write. The guess is
	// committed either way; without a fresh read the state is left nil and
	// a watcher or the sweeper resolves the match.
	current, err := s.getMatch(ctx, m.ID)
	if err != nil {
		s.log.Errorw("failed to reload match after guess", "match_id", m.ID, "uid", input.UID, "error", err)
		return output, nil
	}

	if !current.Status.IsTerminal() && current.BothFinished() {
		res, err := s.Resolve(ctx, &ResolveInput{MatchID: m.ID})
		if err != nil {
			// The guess is committed; a watcher or the sweeper resolves later
			s.log.Errorw("failed to resolve match after guess", "match_id", m.ID, "uid", input.UID, "error", err)
		} else {
			output.Resolved = res.Resolved
			current = res.Match
		}
	}

	output.State = project(current, input.UID)

	return output, nil
}

// Forfeit ends the match immediately in the opponent's favour
func (s *service) Forfeit(ctx context.Context, input *ForfeitInput) (*ForfeitOutput, error) {
	if input == nil {
		return nil, ErrMatchNotFound
	}

	m, err := s.getMatch(ctx, input.MatchID)
	if err != nil {
		return nil, err
	}

	opponent := m.Opponent(input.UID)
	if opponent == nil {
		return nil, ErrNotParticipant
	}

	if m.Status.IsTerminal() {
		return nil, ErrMatchNotActive
	}

	now := s.clock.Now()
	out, err := s.matchRepo.Complete(ctx, &matchRepo.CompleteInput{
		MatchID:          m.ID,
		Status:           models.MatchStatusAbandoned,
		WinnerID:         opponent.UID,
		FirstFinisherID:  m.FirstFinisherID,
		SecondFinisherID: m.SecondFinisherID,
		ForfeitedBy:      input.UID,
		Now:              now,
	})
	if err != nil {
		return nil, s.completeError(err)
	}

	if !out.Completed {
		return nil, ErrMatchNotActive
	}

	m.Status = models.MatchStatusAbandoned
	m.WinnerID = opponent.UID
	m.Tie = false
	m.ForfeitedBy = input.UID
	m.CompletedAt = &now
	m.LastActivity = now

	s.metrics.ObserveResolution(metrics.OutcomeForfeit)
	s.log.Infow("match forfeited", "match_id", m.ID, "uid", input.UID, "winner", opponent.UID)

	s.notifyOnce(ctx, m)

	return &ForfeitOutput{Match: m}, nil
}

// Timeout ends a match as it stands. A match still waiting for words is
// abandoned without a winner.
func (s *service) Timeout(ctx context.Context, input *TimeoutInput) (*TimeoutOutput, error) {
	if input == nil {
		return nil, ErrMatchNotFound
	}

	m, err := s.getMatch(ctx, input.MatchID)
	if err != nil {
		return nil, err
	}

	if m.Status.IsTerminal() {
		return &TimeoutOutput{Match: m}, nil
	}

	now := s.clock.Now()
	complete := &matchRepo.CompleteInput{
		MatchID:          m.ID,
		Now:              now,
		ExpectedAttempts: &[2]int{m.Player1.Attempts, m.Player2.Attempts},
	}

	var result outcome
	if m.Status == models.MatchStatusPending {
		complete.Status = models.MatchStatusAbandoned
	} else {
		result = decide(m)
		complete.Status = models.MatchStatusCompleted
		complete.WinnerID = result.winnerID
		complete.Tie = result.tie
		complete.FirstFinisherID = result.firstID
		complete.SecondFinisherID = result.secondID
	}

	out, err := s.matchRepo.Complete(ctx, complete)
	if err != nil {
		return nil, s.completeError(err)
	}

	if !out.Completed {
		current, err := s.getMatch(ctx, m.ID)
		if err != nil {
			return nil, err
		}
		return &TimeoutOutput{Match: current}, nil
	}

	m.Status = complete.Status
	result.applyTo(m)
	m.CompletedAt = &now
	m.LastActivity = now

	s.metrics.ObserveResolution(metrics.OutcomeTimeout)
	s.log.Infow("match timed out", "match_id", m.ID, "status", m.Status, "winner", m.WinnerID, "tie", m.Tie)

	s.notifyOnce(ctx, m)

	return &TimeoutOutput{
		TimedOut: true,
		Match:    m,
	}, nil
}

// SweepInactive times out every non-terminal match whose last activity is
// older than the inactivity timeout. One failing match never stops the sweep.
func (s *service) SweepInactive(ctx context.Context) (*SweepInactiveOutput, error) {
	active, err := s.matchRepo.ListActive(ctx, &matchRepo.ListActiveInput{})
	if err != nil {
		return nil, fmt.Errorf("failed to list active matches: %w", err)
	}
	s.metrics.SetActiveMatches(len(active.MatchIDs))

	now := s.clock.Now()
	output := &SweepInactiveOutput{}

	for _, id := range active.MatchIDs {
		if err := ctx.Err(); err != nil {
			return output, err
		}

		m, err := s.getMatch(ctx, id)
		if err != nil {
			s.log.Warnw("skipping match in sweep", "match_id", id, "error", err)
			continue
		}
		output.Checked++

		if m.Status.IsTerminal() || now.Sub(m.LastActivity) <= s.inactivityTimeout {
			continue
		}

		res, err := s.Timeout(ctx, &TimeoutInput{MatchID: id})
		if err != nil {
			s.log.Warnw("failed to time out match", "match_id", id, "error", err)
			continue
		}
		if res.TimedOut {
			output.TimedOut = append(output.TimedOut, id)
		}
	}

	return output, nil
}

// RunSweeper calls SweepInactive every interval until ctx is done
func (s *service) RunSweeper(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			out, err := s.SweepInactive(ctx)
			if err != nil {
				if ctx.Err() == nil {
					s.log.Errorw("inactivity sweep failed", "error", err)
				}
				continue
			}
			if len(out.TimedOut) > 0 {
				s.log.Infow("inactivity sweep", "checked", out.Checked, "timed_out", len(out.TimedOut))
			}
		}
	}
}

// Resolve completes a match whose slots are both finished. Only the call
// whose conditional write flips the status resolves it, and only the call
// that claims notificationsSent sends the notification.
func (s *service) Resolve(ctx context.Context, input *ResolveInput) (*ResolveOutput, error) {
	if input == nil {
		return nil, ErrMatchNotFound
	}

	m, err := s.getMatch(ctx, input.MatchID)
	if err != nil {
		return nil, err
	}

	if m.Status.IsTerminal() {
		return &ResolveOutput{
			Notified: s.notifyOnce(ctx, m),
			Match:    m,
		}, nil
	}

	if !m.BothFinished() {
		return &ResolveOutput{Match: m}, nil
	}

	result := decide(m)
	now := s.clock.Now()

	out, err := s.matchRepo.Complete(ctx, &matchRepo.CompleteInput{
		MatchID:          m.ID,
		Status:           models.MatchStatusCompleted,
		WinnerID:         result.winnerID,
		Tie:              result.tie,
		FirstFinisherID:  result.firstID,
		SecondFinisherID: result.secondID,
		Now:              now,
	})
	if err != nil {
		return nil, s.completeError(err)
	}

	if out.Completed {
		m.Status = models.MatchStatusCompleted
		result.applyTo(m)
		m.CompletedAt = &now
		m.LastActivity = now

		if m.Tie {
			s.metrics.ObserveResolution(metrics.OutcomeTie)
		} else {
			s.metrics.ObserveResolution(metrics.OutcomeWin)
		}
		s.log.Infow("match resolved", "match_id", m.ID, "winner", m.WinnerID, "tie", m.Tie,
			"first_finisher", m.FirstFinisherID, "second_finisher", m.SecondFinisherID)
	} else {
		// Another resolver got there first; notify from what it stored
		m, err = s.getMatch(ctx, input.MatchID)
		if err != nil {
			return nil, err
		}
	}

	return &ResolveOutput{
		Resolved: out.Completed,
		Notified: s.notifyOnce(ctx, m),
		Match:    m,
	}, nil
}

// GetMatchState returns the caller's view of a match
func (s *service) GetMatchState(ctx context.Context, input *GetMatchStateInput) (*MatchState, error) {
	if input == nil {
		return nil, ErrMatchNotFound
	}

	m, err := s.getMatch(ctx, input.MatchID)
	if err != nil {
		return nil, err
	}

	state := project(m, input.UID)
	if state == nil {
		return nil, ErrNotParticipant
	}

	return state, nil
}

// MarkResultsSeen records that the caller has viewed the final result
func (s *service) MarkResultsSeen(ctx context.Context, input *MarkResultsSeenInput) error {
	if input == nil {
		return ErrMatchNotFound
	}

	m, err := s.getMatch(ctx, input.MatchID)
	if err != nil {
		return err
	}

	if m.Slot(input.UID) == nil {
		return ErrNotParticipant
	}

	if !m.Status.IsTerminal() {
		return ErrMatchNotFinished
	}

	if err := s.matchRepo.MarkResultsSeen(ctx, &matchRepo.MarkResultsSeenInput{
		MatchID: m.ID,
		UID:     input.UID,
	}); err != nil {
		return fmt.Errorf("failed to mark results seen: %w", err)
	}

	return nil
}

// Subscribe streams change events for an existing match
func (s *service) Subscribe(ctx context.Context, matchID string) (*matchRepo.Subscription, error) {
	if _, err := s.getMatch(ctx, matchID); err != nil {
		return nil, err
	}

	return s.matchRepo.Subscribe(ctx, &matchRepo.SubscribeInput{MatchID: matchID})
}

// Watch runs resolution on every change until the match is terminal. Any
// number of watchers may run for the same match.
func (s *service) Watch(ctx context.Context, matchID string) error {
	sub, err := s.Subscribe(ctx, matchID)
	if err != nil {
		return err
	}
	defer sub.Close()

	// Changes made before the subscription was confirmed
	done, err := s.resolveIfFinished(ctx, matchID)
	if err != nil || done {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-sub.Events():
			if !ok {
				return errors.New("match subscription closed")
			}
			if event.Type == matchRepo.EventSeen {
				continue
			}

			done, err := s.resolveIfFinished(ctx, matchID)
			if err != nil {
				return err
			}
			if done {
				return nil
			}
		}
	}
}

func (s *service) resolveIfFinished(ctx context.Context, matchID string) (bool, error) {
	res, err := s.Resolve(ctx, &ResolveInput{MatchID: matchID})
	if err != nil {
		return false, err
	}
	return res.Match.Status.IsTerminal(), nil
}

// notifyOnce sends the completion notification if this call wins the claim.
// Delivery failures are logged and never returned.
func (s *service) notifyOnce(ctx context.Context, m *models.Match) bool {
	if m.NotificationsSent {
		return false
	}

	recipient, kind := notificationFor(m)
	if recipient == "" {
		return false
	}

	claimed, err := s.matchRepo.ClaimNotification(ctx, &matchRepo.ClaimNotificationInput{MatchID: m.ID})
	if err != nil {
		s.log.Warnw("failed to claim notification", "match_id", m.ID, "error", err)
		return false
	}
	if !claimed {
		return false
	}
	m.NotificationsSent = true

	you := m.Slot(recipient)
	opponent := m.Opponent(recipient)
	payload := s.messages.ResultMessage(&notifier.ResultMessageInput{
		MatchID:          m.ID,
		Kind:             kind,
		OpponentName:     s.username(ctx, opponent.UID),
		Attempts:         you.Attempts,
		OpponentAttempts: opponent.Attempts,
	})

	sendCtx, cancel := context.WithTimeout(ctx, s.notifyTimeout)
	defer cancel()

	err = s.notifier.Send(sendCtx, recipient, payload)
	s.metrics.ObserveNotification(err == nil)
	if err != nil {
		s.log.Warnw("failed to send notification", "match_id", m.ID, "uid", recipient, "kind", kind, "error", err)
	}

	return true
}

func (s *service) username(ctx context.Context, uid string) string {
	if s.playerRepo == nil {
		return ""
	}

	profile, err := s.playerRepo.GetProfile(ctx, &playerRepo.GetProfileInput{UserID: uid})
	if err != nil {
		s.log.Debugw("no profile for notification", "uid", uid, "error", err)
		return ""
	}

	return profile.Username
}

func (s *service) getMatch(ctx context.Context, matchID string) (*models.Match, error) {
	if matchID == "" {
		return nil, ErrMatchNotFound
	}

	m, err := s.matchRepo.GetMatch(ctx, &matchRepo.GetMatchInput{MatchID: matchID})
	if err != nil {
		if errors.Is(err, matchRepo.ErrMatchNotFound) {
			return nil, ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to get match: %w", err)
	}

	return m, nil
}

func (s *service) completeError(err error) error {
	switch {
	case errors.Is(err, matchRepo.ErrMatchNotFound):
		return ErrMatchNotFound
	case errors.Is(err, matchRepo.ErrStaleAttempts):
		return ErrStaleState
	}
	return fmt.Errorf("failed to complete match: %w", err)
}

// notificationFor picks who hears about the result. Only the first finisher
// is told; the second finisher is already looking at the outcome.
func notificationFor(m *models.Match) (string, notifier.Kind) {
	if m.ForfeitedBy != "" {
		return m.WinnerID, notifier.KindOpponentForfeit
	}

	if m.Status != models.MatchStatusCompleted || m.FirstFinisherID == "" {
		return "", ""
	}

	switch {
	case m.Tie:
		return m.FirstFinisherID, notifier.KindTie
	case m.WinnerID == m.FirstFinisherID:
		return m.FirstFinisherID, notifier.KindWin
	}
	return m.FirstFinisherID, notifier.KindLoss
}

func slotOf(m *models.Match, uid string) matchRepo.Slot {
	if m.Player1 != nil && m.Player1.UID == uid {
		return matchRepo.SlotPlayer1
	}
	return matchRepo.SlotPlayer2
}

func normalize(word string) string {
	return strings.ToUpper(strings.TrimSpace(word))
}

func supportedLength(length int) bool {
	for _, d := range models.AllDifficulties {
		if d.WordLength() == length {
			return true
		}
	}
	return false
}
