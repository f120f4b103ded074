package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/cluetrail/cluetrail/internal/models"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	client  *redis.Client
	repo    Repository
	testNow time.Time
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	// Create a new miniredis server for each test
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	// Create a Redis client connected to the miniredis server
	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	// Create the repository
	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo

	// Set up test time
	s.testNow = time.Date(2025, 9, 6, 10, 0, 0, 0, time.UTC)
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) testSession() *models.Session {
	return &models.Session{
		ID:          "test-session-id",
		Name:        "Team Kea",
		Email:       "kea@example.com",
		EventID:     "market-race",
		StartTime:   s.testNow,
		CurrentClue: 1,
		CreatedAt:   s.testNow,
		UpdatedAt:   s.testNow,
	}
}

func (s *RedisRepositoryTestSuite) TestSaveAndGetSession() {
	err := s.repo.SaveSession(context.Background(), &SaveSessionInput{
		Session: s.testSession(),
	})
	s.Require().NoError(err)

	retrieved, err := s.repo.GetSession(context.Background(), &GetSessionInput{
		SessionID: "test-session-id",
	})
	s.Require().NoError(err)
	s.Require().NotNil(retrieved)

	s.Equal("test-session-id", retrieved.ID)
	s.Equal("Team Kea", retrieved.Name)
	s.Equal("kea@example.com", retrieved.Email)
	s.Equal("market-race", retrieved.EventID)
	s.Equal(1, retrieved.CurrentClue)
	s.Equal(s.testNow.Unix(), retrieved.StartTime.Unix())
}

func (s *RedisRepositoryTestSuite) TestGetSessionNotFound() {
	_, err := s.repo.GetSession(context.Background(), &GetSessionInput{
		SessionID: "missing-session",
	})
	s.Require().ErrorIs(err, ErrSessionNotFound)
}

func (s *RedisRepositoryTestSuite) TestDeleteSession() {
	err := s.repo.SaveSession(context.Background(), &SaveSessionInput{
		Session: s.testSession(),
	})
	s.Require().NoError(err)

	err = s.repo.DeleteSession(context.Background(), &DeleteSessionInput{
		SessionID: "test-session-id",
	})
	s.Require().NoError(err)

	_, err = s.repo.GetSession(context.Background(), &GetSessionInput{
		SessionID: "test-session-id",
	})
	s.Require().ErrorIs(err, ErrSessionNotFound)
}

func (s *RedisRepositoryTestSuite) TestSessionExpires() {
	err := s.repo.SaveSession(context.Background(), &SaveSessionInput{
		Session: s.testSession(),
	})
	s.Require().NoError(err)

	// Jump past the 24h TTL
	s.mr.FastForward(DefaultTTL + time.Minute)

	_, err = s.repo.GetSession(context.Background(), &GetSessionInput{
		SessionID: "test-session-id",
	})
	s.Require().ErrorIs(err, ErrSessionNotFound)
}

func (s *RedisRepositoryTestSuite) TestSaveRefreshesTTL() {
	sess := s.testSession()
	s.Require().NoError(s.repo.SaveSession(context.Background(), &SaveSessionInput{Session: sess}))

	// Halfway to expiry, a save should reset the clock
	s.mr.FastForward(12 * time.Hour)
	sess.CurrentClue = 2
	sess.UpdatedAt = s.testNow.Add(12 * time.Hour)
	s.Require().NoError(s.repo.SaveSession(context.Background(), &SaveSessionInput{Session: sess}))

	s.mr.FastForward(20 * time.Hour)

	retrieved, err := s.repo.GetSession(context.Background(), &GetSessionInput{
		SessionID: "test-session-id",
	})
	s.Require().NoError(err)
	s.Equal(2, retrieved.CurrentClue)
}
