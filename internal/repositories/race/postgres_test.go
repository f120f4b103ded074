package race

import (
	"context"
	"database/sql"
	"os"
	"testing"
	"time"

	_ "github.com/lib/pq"
	"github.com/stretchr/testify/suite"

	"github.com/cluetrail/cluetrail/internal/models"
)

// PostgresRepositoryTestSuite runs the same behavioral expectations as
// the Redis suite against a real database. It needs
// CLUETRAIL_TEST_DATABASE_URL and skips itself otherwise.
type PostgresRepositoryTestSuite struct {
	suite.Suite
	db      *sql.DB
	repo    Repository
	testNow time.Time
}

func TestPostgresRepositoryTestSuite(t *testing.T) {
	dsn := os.Getenv("CLUETRAIL_TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("CLUETRAIL_TEST_DATABASE_URL not set")
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		t.Skipf("test database not reachable: %v", err)
	}
	if err := db.Ping(); err != nil {
		t.Skipf("test database not reachable: %v", err)
	}

	suite.Run(t, &PostgresRepositoryTestSuite{db: db})
}

func (s *PostgresRepositoryTestSuite) SetupSuite() {
	// NewPostgres creates the schema on first run
	repo, err := NewPostgres(&PostgresConfig{DB: s.db})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *PostgresRepositoryTestSuite) SetupTest() {
	_, err := s.db.Exec("TRUNCATE races")
	s.Require().NoError(err)

	s.testNow = time.Date(2025, 9, 6, 10, 0, 0, 0, time.UTC)
}

func (s *PostgresRepositoryTestSuite) TearDownSuite() {
	s.db.Close()
}

func (s *PostgresRepositoryTestSuite) newRace(id, name, email string) *models.Race {
	return &models.Race{
		ID:          id,
		Name:        name,
		Email:       email,
		EventID:     "market-race",
		StartTime:   s.testNow,
		CurrentClue: 0,
	}
}

func (s *PostgresRepositoryTestSuite) finish(email string, taken time.Duration) {
	s.Require().NoError(s.repo.FinishRace(context.Background(), &FinishRaceInput{
		Email:     email,
		EventID:   "market-race",
		EndTime:   s.testNow.Add(taken),
		TimeTaken: taken,
	}))
}

func (s *PostgresRepositoryTestSuite) TestCreateAndGetActiveRace() {
	race := s.newRace("race-1", "Team Kea", "kea@example.com")

	err := s.repo.CreateRace(context.Background(), &CreateRaceInput{Race: race})
	s.Require().NoError(err)

	retrieved, err := s.repo.GetActiveRace(context.Background(), &GetActiveRaceInput{
		Email:   "kea@example.com",
		EventID: "market-race",
	})
	s.Require().NoError(err)
	s.Require().NotNil(retrieved)

	s.Equal("race-1", retrieved.ID)
	s.Equal("Team Kea", retrieved.Name)
	s.Equal("kea@example.com", retrieved.Email)
	s.Equal(0, retrieved.CurrentClue)
	s.Equal(s.testNow.Unix(), retrieved.StartTime.Unix())
	s.Nil(retrieved.EndTime)
}

func (s *PostgresRepositoryTestSuite) TestGetActiveRaceNotFound() {
	_, err := s.repo.GetActiveRace(context.Background(), &GetActiveRaceInput{
		Email:   "nobody@example.com",
		EventID: "market-race",
	})
	s.Require().ErrorIs(err, ErrRaceNotFound)
}

func (s *PostgresRepositoryTestSuite) TestUpdateProgress() {
	race := s.newRace("race-1", "Team Kea", "kea@example.com")
	s.Require().NoError(s.repo.CreateRace(context.Background(), &CreateRaceInput{Race: race}))

	err := s.repo.UpdateProgress(context.Background(), &UpdateProgressInput{
		Email:        "kea@example.com",
		EventID:      "market-race",
		ExpectedClue: 0,
		CurrentClue:  1,
	})
	s.Require().NoError(err)

	retrieved, err := s.repo.GetActiveRace(context.Background(), &GetActiveRaceInput{
		Email:   "kea@example.com",
		EventID: "market-race",
	})
	s.Require().NoError(err)
	s.Equal(1, retrieved.CurrentClue)
}

func (s *PostgresRepositoryTestSuite) TestUpdateProgressConflict() {
	race := s.newRace("race-1", "Team Kea", "kea@example.com")
	race.CurrentClue = 2
	s.Require().NoError(s.repo.CreateRace(context.Background(), &CreateRaceInput{Race: race}))

	// Stored index is 2, so a writer expecting 1 must lose
	err := s.repo.UpdateProgress(context.Background(), &UpdateProgressInput{
		Email:        "kea@example.com",
		EventID:      "market-race",
		ExpectedClue: 1,
		CurrentClue:  2,
	})
	s.Require().ErrorIs(err, ErrProgressConflict)

	retrieved, err := s.repo.GetActiveRace(context.Background(), &GetActiveRaceInput{
		Email:   "kea@example.com",
		EventID: "market-race",
	})
	s.Require().NoError(err)
	s.Equal(2, retrieved.CurrentClue)
}

func (s *PostgresRepositoryTestSuite) TestUpdateProgressNoActiveRace() {
	err := s.repo.UpdateProgress(context.Background(), &UpdateProgressInput{
		Email:        "nobody@example.com",
		EventID:      "market-race",
		ExpectedClue: 0,
		CurrentClue:  1,
	})
	s.Require().ErrorIs(err, ErrRaceNotFound)
}

func (s *PostgresRepositoryTestSuite) TestFinishRace() {
	race := s.newRace("race-1", "Team Kea", "kea@example.com")
	race.CurrentClue = 3
	s.Require().NoError(s.repo.CreateRace(context.Background(), &CreateRaceInput{Race: race}))

	endTime := s.testNow.Add(42 * time.Minute)
	err := s.repo.FinishRace(context.Background(), &FinishRaceInput{
		Email:     "kea@example.com",
		EventID:   "market-race",
		EndTime:   endTime,
		TimeTaken: 42 * time.Minute,
	})
	s.Require().NoError(err)

	// A finished row no longer matches the active-race query
	_, err = s.repo.GetActiveRace(context.Background(), &GetActiveRaceInput{
		Email:   "kea@example.com",
		EventID: "market-race",
	})
	s.Require().ErrorIs(err, ErrRaceNotFound)

	completed, err := s.repo.GetCompletedRaces(context.Background(), &GetCompletedRacesInput{
		EventID: "market-race",
	})
	s.Require().NoError(err)
	s.Require().Len(completed, 1)
	s.Equal("race-1", completed[0].ID)
	s.Require().NotNil(completed[0].EndTime)
	s.Equal(endTime.Unix(), completed[0].EndTime.Unix())
	s.Equal(42*time.Minute, completed[0].TimeTaken)
}

func (s *PostgresRepositoryTestSuite) TestFinishRaceTwice() {
	race := s.newRace("race-1", "Team Kea", "kea@example.com")
	s.Require().NoError(s.repo.CreateRace(context.Background(), &CreateRaceInput{Race: race}))

	input := &FinishRaceInput{
		Email:     "kea@example.com",
		EventID:   "market-race",
		EndTime:   s.testNow.Add(10 * time.Minute),
		TimeTaken: 10 * time.Minute,
	}

	s.Require().NoError(s.repo.FinishRace(context.Background(), input))
	err := s.repo.FinishRace(context.Background(), input)
	s.Require().ErrorIs(err, ErrRaceFinished)

	// Only one finished row was recorded
	completed, err := s.repo.GetCompletedRaces(context.Background(), &GetCompletedRacesInput{
		EventID: "market-race",
	})
	s.Require().NoError(err)
	s.Len(completed, 1)
}

func (s *PostgresRepositoryTestSuite) TestNewAttemptAfterFinish() {
	first := s.newRace("race-1", "Team Kea", "kea@example.com")
	s.Require().NoError(s.repo.CreateRace(context.Background(), &CreateRaceInput{Race: first}))
	s.finish("kea@example.com", 30*time.Minute)

	// Same email starts over; only the new row is active
	second := s.newRace("race-2", "Team Kea", "kea@example.com")
	second.StartTime = s.testNow.Add(time.Hour)
	s.Require().NoError(s.repo.CreateRace(context.Background(), &CreateRaceInput{Race: second}))

	retrieved, err := s.repo.GetActiveRace(context.Background(), &GetActiveRaceInput{
		Email:   "kea@example.com",
		EventID: "market-race",
	})
	s.Require().NoError(err)
	s.Equal("race-2", retrieved.ID)

	// Progress writes land on the active row, not the finished one
	s.Require().NoError(s.repo.UpdateProgress(context.Background(), &UpdateProgressInput{
		Email:        "kea@example.com",
		EventID:      "market-race",
		ExpectedClue: 0,
		CurrentClue:  1,
	}))

	completed, err := s.repo.GetCompletedRaces(context.Background(), &GetCompletedRacesInput{
		EventID: "market-race",
	})
	s.Require().NoError(err)
	s.Require().Len(completed, 1)
	s.Equal(0, completed[0].CurrentClue)
}

func (s *PostgresRepositoryTestSuite) TestCompletedRacesOrdering() {
	teams := []struct {
		id    string
		name  string
		email string
		taken time.Duration
	}{
		{"race-1", "Team Tui", "tui@example.com", 30 * time.Minute},
		{"race-2", "Team Kea", "kea@example.com", 12 * time.Minute},
		{"race-3", "Team Weka", "weka@example.com", 55 * time.Minute},
	}

	for _, team := range teams {
		race := s.newRace(team.id, team.name, team.email)
		s.Require().NoError(s.repo.CreateRace(context.Background(), &CreateRaceInput{Race: race}))
		s.finish(team.email, team.taken)
	}

	completed, err := s.repo.GetCompletedRaces(context.Background(), &GetCompletedRacesInput{
		EventID: "market-race",
	})
	s.Require().NoError(err)
	s.Require().Len(completed, 3)
	s.Equal("Team Kea", completed[0].Name)
	s.Equal("Team Tui", completed[1].Name)
	s.Equal("Team Weka", completed[2].Name)
}

func (s *PostgresRepositoryTestSuite) TestGetInProgressRaces() {
	active := s.newRace("race-1", "Team Kea", "kea@example.com")
	s.Require().NoError(s.repo.CreateRace(context.Background(), &CreateRaceInput{Race: active}))

	done := s.newRace("race-2", "Team Tui", "tui@example.com")
	s.Require().NoError(s.repo.CreateRace(context.Background(), &CreateRaceInput{Race: done}))
	s.finish("tui@example.com", 20*time.Minute)

	inProgress, err := s.repo.GetInProgressRaces(context.Background(), &GetInProgressRacesInput{
		EventID: "market-race",
	})
	s.Require().NoError(err)
	s.Require().Len(inProgress, 1)
	s.Equal("Team Kea", inProgress[0].Name)
}

func (s *PostgresRepositoryTestSuite) TestLeaderboardGroupsByTeamName() {
	attempts := []struct {
		id    string
		name  string
		email string
		taken time.Duration
	}{
		{"race-1", "Team Kea", "kea@example.com", 30 * time.Minute},
		{"race-2", "Team Kea", "kea@example.com", 18 * time.Minute},
		{"race-3", "Team Tui", "tui@example.com", 25 * time.Minute},
	}

	for _, attempt := range attempts {
		race := s.newRace(attempt.id, attempt.name, attempt.email)
		s.Require().NoError(s.repo.CreateRace(context.Background(), &CreateRaceInput{Race: race}))
		s.finish(attempt.email, attempt.taken)
	}

	entries, err := s.repo.GetLeaderboard(context.Background(), &GetLeaderboardInput{
		EventID: "market-race",
	})
	s.Require().NoError(err)
	s.Require().Len(entries, 2)

	// Team Kea keeps only its best attempt
	s.Equal("Team Kea", entries[0].Name)
	s.Equal(18*time.Minute, entries[0].BestTime)
	s.Equal("Team Tui", entries[1].Name)
	s.Equal(25*time.Minute, entries[1].BestTime)
}

func (s *PostgresRepositoryTestSuite) TestLeaderboardTieBreaksByName() {
	for _, team := range []struct {
		id    string
		name  string
		email string
	}{
		{"race-1", "Team Weka", "weka@example.com"},
		{"race-2", "Team Kea", "kea@example.com"},
	} {
		race := s.newRace(team.id, team.name, team.email)
		s.Require().NoError(s.repo.CreateRace(context.Background(), &CreateRaceInput{Race: race}))
		s.finish(team.email, 15*time.Minute)
	}

	entries, err := s.repo.GetLeaderboard(context.Background(), &GetLeaderboardInput{
		EventID: "market-race",
	})
	s.Require().NoError(err)
	s.Require().Len(entries, 2)
	s.Equal("Team Kea", entries[0].Name)
	s.Equal("Team Weka", entries[1].Name)
}
