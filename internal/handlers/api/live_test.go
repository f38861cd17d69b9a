package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/KirkDiggler/wordduel/internal/models"
	matchRepo "github.com/KirkDiggler/wordduel/internal/repositories/match"
	leaderboardMocks "github.com/KirkDiggler/wordduel/internal/services/leaderboard/mocks"
	"github.com/KirkDiggler/wordduel/internal/services/match"
	matchMocks "github.com/KirkDiggler/wordduel/internal/services/match/mocks"
	soloMocks "github.com/KirkDiggler/wordduel/internal/services/solo/mocks"
	"github.com/alicebob/miniredis/v2"
	"github.com/gorilla/websocket"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type LiveFeedTestSuite struct {
	suite.Suite
	mockCtrl  *gomock.Controller
	mockMatch *matchMocks.MockService
	mr        *miniredis.Miniredis
	client    *redis.Client
	repo      matchRepo.Repository
	httpSrv   *httptest.Server
}

func (s *LiveFeedTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockMatch = matchMocks.NewMockService(s.mockCtrl)

	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr
	s.client = redis.NewClient(&redis.Options{Addr: mr.Addr()})

	repo, err := matchRepo.NewRedis(&matchRepo.Config{RedisClient: s.client})
	s.Require().NoError(err)
	s.repo = repo

	server, err := New(&Config{
		MatchService:       s.mockMatch,
		SoloService:        soloMocks.NewMockService(s.mockCtrl),
		LeaderboardService: leaderboardMocks.NewMockService(s.mockCtrl),
	})
	s.Require().NoError(err)
	s.httpSrv = httptest.NewServer(server.Handler())
}

func (s *LiveFeedTestSuite) TearDownTest() {
	s.httpSrv.Close()
	s.client.Close()
	s.mr.Close()
	s.mockCtrl.Finish()
}

func TestLiveFeedSuite(t *testing.T) {
	suite.Run(t, new(LiveFeedTestSuite))
}

func (s *LiveFeedTestSuite) dial(matchID, uid string) (*websocket.Conn, *http.Response, error) {
	url := "ws" + strings.TrimPrefix(s.httpSrv.URL, "http") + "/matches/" + matchID + "/live"
	header := http.Header{}
	header.Set(UserHeader, uid)
	return websocket.DefaultDialer.Dial(url, header)
}

func (s *LiveFeedTestSuite) state(status models.MatchStatus) *match.MatchState {
	return &match.MatchState{MatchID: "m1", Status: status}
}

func (s *LiveFeedTestSuite) read(conn *websocket.Conn) *liveMessage {
	s.Require().NoError(conn.SetReadDeadline(time.Now().Add(5 * time.Second)))
	var msg liveMessage
	s.Require().NoError(conn.ReadJSON(&msg))
	return &msg
}

func (s *LiveFeedTestSuite) TestStreamsUntilTerminal() {
	stateInput := &match.GetMatchStateInput{MatchID: "m1", UID: "alice"}
	s.mockMatch.EXPECT().Watch(gomock.Any(), "m1").Return(nil).AnyTimes()
	gomock.InOrder(
		s.mockMatch.EXPECT().GetMatchState(gomock.Any(), stateInput).Return(s.state(models.MatchStatusActive), nil),
		s.mockMatch.EXPECT().
			Subscribe(gomock.Any(), "m1").
			DoAndReturn(func(ctx context.Context, matchID string) (*matchRepo.Subscription, error) {
				return s.repo.Subscribe(ctx, &matchRepo.SubscribeInput{MatchID: matchID})
			}),
		s.mockMatch.EXPECT().GetMatchState(gomock.Any(), stateInput).Return(s.state(models.MatchStatusActive), nil),
		s.mockMatch.EXPECT().GetMatchState(gomock.Any(), stateInput).Return(s.state(models.MatchStatusWaitingForOpponent), nil),
		s.mockMatch.EXPECT().GetMatchState(gomock.Any(), stateInput).Return(s.state(models.MatchStatusCompleted), nil),
	)

	conn, _, err := s.dial("m1", "alice")
	s.Require().NoError(err)
	defer conn.Close()

	first := s.read(conn)
	s.Equal("snapshot", first.Event)
	s.Equal(models.MatchStatusActive, first.State.Status)

	s.mr.Publish("match:m1:events", `{"matchId":"m1","type":"guess","uid":"bob"}`)
	second := s.read(conn)
	s.Equal("guess", second.Event)
	s.Equal(models.MatchStatusWaitingForOpponent, second.State.Status)

	s.mr.Publish("match:m1:events", `{"matchId":"m1","type":"completed"}`)
	third := s.read(conn)
	s.Equal("completed", third.Event)
	s.Equal(models.MatchStatusCompleted, third.State.Status)

	_, _, err = conn.ReadMessage()
	s.True(websocket.IsCloseError(err, websocket.CloseNormalClosure), "unexpected error: %v", err)
}

func (s *LiveFeedTestSuite) TestTerminalMatchClosesAfterSnapshot() {
	s.mockMatch.EXPECT().Watch(gomock.Any(), "m1").Return(nil).AnyTimes()
	s.mockMatch.EXPECT().GetMatchState(gomock.Any(), gomock.Any()).Return(s.state(models.MatchStatusAbandoned), nil).Times(2)
	s.mockMatch.EXPECT().
		Subscribe(gomock.Any(), "m1").
		DoAndReturn(func(ctx context.Context, matchID string) (*matchRepo.Subscription, error) {
			return s.repo.Subscribe(ctx, &matchRepo.SubscribeInput{MatchID: matchID})
		})

	conn, _, err := s.dial("m1", "alice")
	s.Require().NoError(err)
	defer conn.Close()

	msg := s.read(conn)
	s.Equal(models.MatchStatusAbandoned, msg.State.Status)

	_, _, err = conn.ReadMessage()
	s.True(websocket.IsCloseError(err, websocket.CloseNormalClosure), "unexpected error: %v", err)
}

func (s *LiveFeedTestSuite) TestNonParticipantRejectedBeforeUpgrade() {
	s.mockMatch.EXPECT().GetMatchState(gomock.Any(), gomock.Any()).Return(nil, match.ErrNotParticipant)

	_, resp, err := s.dial("m1", "mallory")
	s.Require().Error(err)
	s.Require().NotNil(resp)
	s.Equal(http.StatusForbidden, resp.StatusCode)
}
