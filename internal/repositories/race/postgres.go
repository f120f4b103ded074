package race

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/cluetrail/cluetrail/internal/models"
)

// PostgresConfig holds configuration for the Postgres race repository
type PostgresConfig struct {
	// Open database handle
	DB *sql.DB
}

// postgresRepository implements the Repository interface using Postgres
type postgresRepository struct {
	db *sql.DB
}

// NewPostgres creates a new Postgres-backed race repository and ensures
// the schema exists
func NewPostgres(cfg *PostgresConfig) (*postgresRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.DB == nil {
		return nil, errors.New("database handle cannot be nil")
	}

	if err := cfg.DB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := createSchema(cfg.DB); err != nil {
		return nil, err
	}

	return &postgresRepository{
		db: cfg.DB,
	}, nil
}

// createSchema creates the races table. Safe to call multiple times.
func createSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// Times are stored as epoch milliseconds to keep ordering arithmetic in
// the database trivial.
const schema = `
CREATE TABLE IF NOT EXISTS races (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    email TEXT NOT NULL,
    event_id TEXT NOT NULL,
    start_time BIGINT NOT NULL,
    end_time BIGINT,
    time_taken BIGINT,
    current_clue INTEGER NOT NULL DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_races_event ON races(event_id);
CREATE INDEX IF NOT EXISTS idx_races_email_event ON races(email, event_id);
`

// CreateRace persists a race row
func (r *postgresRepository) CreateRace(ctx context.Context, input *CreateRaceInput) error {
	if input == nil || input.Race == nil {
		return errors.New("input and race cannot be nil")
	}

	race := input.Race

	if race.ID == "" {
		return errors.New("race ID cannot be empty")
	}

	var endTime, timeTaken sql.NullInt64
	if race.EndTime != nil {
		endTime = sql.NullInt64{Int64: race.EndTime.UnixMilli(), Valid: true}
		timeTaken = sql.NullInt64{Int64: race.TimeTaken.Milliseconds(), Valid: true}
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO races (id, name, email, event_id, start_time, end_time, time_taken, current_clue)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, race.ID, race.Name, race.Email, race.EventID, race.StartTime.UnixMilli(), endTime, timeTaken, race.CurrentClue)
	if err != nil {
		return fmt.Errorf("failed to insert race: %w", err)
	}

	return nil
}

// GetActiveRace retrieves the unfinished race for an email and event
func (r *postgresRepository) GetActiveRace(ctx context.Context, input *GetActiveRaceInput) (*models.Race, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, email, event_id, start_time, end_time, time_taken, current_clue
		FROM races
		WHERE email = $1 AND event_id = $2 AND end_time IS NULL
		LIMIT 1
	`, input.Email, input.EventID)

	race, err := scanRace(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRaceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get active race: %w", err)
	}

	return race, nil
}

// UpdateProgress advances a race's clue index, conditional on the
// expected current value
func (r *postgresRepository) UpdateProgress(ctx context.Context, input *UpdateProgressInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	result, err := r.db.ExecContext(ctx, `
		UPDATE races
		SET current_clue = $1
		WHERE email = $2 AND event_id = $3 AND end_time IS NULL AND current_clue = $4
	`, input.CurrentClue, input.Email, input.EventID, input.ExpectedClue)
	if err != nil {
		return fmt.Errorf("failed to update race progress: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}

	if affected == 0 {
		// Distinguish a lost conditional update from a missing race
		if _, err := r.GetActiveRace(ctx, &GetActiveRaceInput{Email: input.Email, EventID: input.EventID}); err != nil {
			return err
		}
		return ErrProgressConflict
	}

	return nil
}

// FinishRace records the end time and elapsed time of an active race
func (r *postgresRepository) FinishRace(ctx context.Context, input *FinishRaceInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	result, err := r.db.ExecContext(ctx, `
		UPDATE races
		SET end_time = $1, time_taken = $2
		WHERE email = $3 AND event_id = $4 AND end_time IS NULL
	`, input.EndTime.UnixMilli(), input.TimeTaken.Milliseconds(), input.Email, input.EventID)
	if err != nil {
		return fmt.Errorf("failed to finish race: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}

	if affected == 0 {
		return ErrRaceFinished
	}

	return nil
}

// GetCompletedRaces retrieves finished races for an event, fastest first
func (r *postgresRepository) GetCompletedRaces(ctx context.Context, input *GetCompletedRacesInput) ([]*models.Race, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, email, event_id, start_time, end_time, time_taken, current_clue
		FROM races
		WHERE event_id = $1 AND end_time IS NOT NULL
		ORDER BY time_taken ASC, name ASC
	`, input.EventID)
	if err != nil {
		return nil, fmt.Errorf("failed to query completed races: %w", err)
	}
	defer rows.Close()

	return collectRaces(rows)
}

// GetInProgressRaces retrieves unfinished races for an event
func (r *postgresRepository) GetInProgressRaces(ctx context.Context, input *GetInProgressRacesInput) ([]*models.Race, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, email, event_id, start_time, end_time, time_taken, current_clue
		FROM races
		WHERE event_id = $1 AND end_time IS NULL
	`, input.EventID)
	if err != nil {
		return nil, fmt.Errorf("failed to query in-progress races: %w", err)
	}
	defer rows.Close()

	return collectRaces(rows)
}

// GetLeaderboard retrieves the best finished time per team name,
// ascending by time with ties broken by name
func (r *postgresRepository) GetLeaderboard(ctx context.Context, input *GetLeaderboardInput) ([]*models.LeaderboardEntry, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT name, email, time_taken FROM (
			SELECT DISTINCT ON (name) name, email, time_taken
			FROM races
			WHERE event_id = $1 AND end_time IS NOT NULL
			ORDER BY name, time_taken ASC
		) best
		ORDER BY time_taken ASC, name ASC
	`, input.EventID)
	if err != nil {
		return nil, fmt.Errorf("failed to query leaderboard: %w", err)
	}
	defer rows.Close()

	var entries []*models.LeaderboardEntry
	for rows.Next() {
		var entry models.LeaderboardEntry
		var timeTakenMs int64
		if err := rows.Scan(&entry.Name, &entry.Email, &timeTakenMs); err != nil {
			return nil, fmt.Errorf("failed to scan leaderboard entry: %w", err)
		}
		entry.BestTime = time.Duration(timeTakenMs) * time.Millisecond
		entries = append(entries, &entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read leaderboard rows: %w", err)
	}

	return entries, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRace(row rowScanner) (*models.Race, error) {
	var race models.Race
	var startMs int64
	var endMs, takenMs sql.NullInt64

	err := row.Scan(&race.ID, &race.Name, &race.Email, &race.EventID, &startMs, &endMs, &takenMs, &race.CurrentClue)
	if err != nil {
		return nil, err
	}

	race.StartTime = time.UnixMilli(startMs).UTC()
	if endMs.Valid {
		endTime := time.UnixMilli(endMs.Int64).UTC()
		race.EndTime = &endTime
	}
	if takenMs.Valid {
		race.TimeTaken = time.Duration(takenMs.Int64) * time.Millisecond
	}

	return &race, nil
}

func collectRaces(rows *sql.Rows) ([]*models.Race, error) {
	var races []*models.Race
	for rows.Next() {
		race, err := scanRace(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan race: %w", err)
		}
		races = append(races, race)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read race rows: %w", err)
	}

	return races, nil
}
