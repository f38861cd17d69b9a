package player

import (
	"context"
	"testing"
	"time"

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

func (s *RedisRepositoryTestSuite) TestGetProfile_Unknown() {
	profile, err := s.repo.GetProfile(s.ctx, &GetProfileInput{UserID: "ghost"})
	s.Require().NoError(err)
	s.Equal("ghost", profile.UserID)
	s.Empty(profile.Username)
	s.Nil(profile.LastSoloActivity)
}

func (s *RedisRepositoryTestSuite) TestSaveUsername() {
	s.Require().NoError(s.repo.SaveUsername(s.ctx, &SaveUsernameInput{UserID: "u1", Username: "Wordsmith"}))

	profile, err := s.repo.GetProfile(s.ctx, &GetProfileInput{UserID: "u1"})
	s.Require().NoError(err)
	s.Equal("Wordsmith", profile.Username)
}

func (s *RedisRepositoryTestSuite) TestTouchSoloActivity_OnlyMovesForward() {
	s.Require().NoError(s.repo.TouchSoloActivity(s.ctx, &TouchSoloActivityInput{UserID: "u1", At: s.testNow}))
	s.Require().NoError(s.repo.TouchSoloActivity(s.ctx, &TouchSoloActivityInput{UserID: "u1", At: s.testNow.Add(-time.Hour)}))

	profile, err := s.repo.GetProfile(s.ctx, &GetProfileInput{UserID: "u1"})
	s.Require().NoError(err)
	s.Require().NotNil(profile.LastSoloActivity)
	s.Equal(s.testNow, *profile.LastSoloActivity)

	s.Require().NoError(s.repo.TouchSoloActivity(s.ctx, &TouchSoloActivityInput{UserID: "u1", At: s.testNow.Add(time.Hour)}))
	profile, err = s.repo.GetProfile(s.ctx, &GetProfileInput{UserID: "u1"})
	s.Require().NoError(err)
	s.Equal(s.testNow.Add(time.Hour), *profile.LastSoloActivity)
}

func (s *RedisRepositoryTestSuite) TestGetProfiles() {
	s.Require().NoError(s.repo.SaveUsername(s.ctx, &SaveUsernameInput{UserID: "u1", Username: "One"}))
	s.Require().NoError(s.repo.TouchSoloActivity(s.ctx, &TouchSoloActivityInput{UserID: "u2", At: s.testNow}))

	out, err := s.repo.GetProfiles(s.ctx, &GetProfilesInput{UserIDs: []string{"u1", "u2", "u3"}})
	s.Require().NoError(err)
	s.Len(out.Profiles, 3)
	s.Equal("One", out.Profiles["u1"].Username)
	s.Nil(out.Profiles["u1"].LastSoloActivity)
	s.Require().NotNil(out.Profiles["u2"].LastSoloActivity)
	s.Equal(s.testNow, *out.Profiles["u2"].LastSoloActivity)
	s.Equal("u3", out.Profiles["u3"].UserID)

	empty, err := s.repo.GetProfiles(s.ctx, &GetProfilesInput{})
	s.Require().NoError(err)
	s.Empty(empty.Profiles)
}
