package race

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/cluetrail/cluetrail/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	raceKeyPrefix       = "race:"
	eventRacesKeyPrefix = "event_races:"
	activeRaceKeyPrefix = "active_race:"
)

// Config holds configuration for the Redis race repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed race repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	// Validate config
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

func raceKey(id string) string {
	return fmt.Sprintf("%s%s", raceKeyPrefix, id)
}

func eventRacesKey(eventID string) string {
	return fmt.Sprintf("%s%s", eventRacesKeyPrefix, eventID)
}

func activeRaceKey(eventID, email string) string {
	return fmt.Sprintf("%s%s:%s", activeRaceKeyPrefix, eventID, email)
}

// CreateRace persists a race row to Redis
func (r *redisRepository) CreateRace(ctx context.Context, input *CreateRaceInput) error {
	if input == nil || input.Race == nil {
		return errors.New("input and race cannot be nil")
	}

	race := input.Race

	if race.ID == "" {
		return errors.New("race ID cannot be empty")
	}

	// Marshal the race to JSON
	raceJSON, err := json.Marshal(race)
	if err != nil {
		return fmt.Errorf("failed to marshal race: %w", err)
	}

	// Create a Redis transaction
	pipe := r.client.Pipeline()

	// Save the race
	pipe.Set(ctx, raceKey(race.ID), raceJSON, 0)

	// Add the race to the event's index
	pipe.SAdd(ctx, eventRacesKey(race.EventID), race.ID)

	// Point the team's active-race key at the new row
	pipe.Set(ctx, activeRaceKey(race.EventID, race.Email), race.ID, 0)

	// Execute the transaction
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save race: %w", err)
	}

	return nil
}

// GetActiveRace retrieves the unfinished race for an email and event
func (r *redisRepository) GetActiveRace(ctx context.Context, input *GetActiveRaceInput) (*models.Race, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	raceID, err := r.client.Get(ctx, activeRaceKey(input.EventID, input.Email)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrRaceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get active race pointer: %w", err)
	}

	return r.getRace(ctx, raceID)
}

func (r *redisRepository) getRace(ctx context.Context, raceID string) (*models.Race, error) {
	raceJSON, err := r.client.Get(ctx, raceKey(raceID)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrRaceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get race: %w", err)
	}

	var race models.Race
	if err := json.Unmarshal([]byte(raceJSON), &race); err != nil {
		return nil, fmt.Errorf("failed to unmarshal race: %w", err)
	}

	return &race, nil
}

// UpdateProgress advances a race's clue index using an optimistic
// transaction: the write only lands if the stored index still equals
// the expected value when EXEC runs.
func (r *redisRepository) UpdateProgress(ctx context.Context, input *UpdateProgressInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	raceID, err := r.client.Get(ctx, activeRaceKey(input.EventID, input.Email)).Result()
	if errors.Is(err, redis.Nil) {
		return ErrRaceNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to get active race pointer: %w", err)
	}

	key := raceKey(raceID)

	err = r.client.Watch(ctx, func(tx *redis.Tx) error {
		raceJSON, err := tx.Get(ctx, key).Result()
		if errors.Is(err, redis.Nil) {
			return ErrRaceNotFound
		}
		if err != nil {
			return err
		}

		var race models.Race
		if err := json.Unmarshal([]byte(raceJSON), &race); err != nil {
			return fmt.Errorf("failed to unmarshal race: %w", err)
		}

		if race.Finished() {
			return ErrRaceFinished
		}

		if race.CurrentClue != input.ExpectedClue {
			return ErrProgressConflict
		}

		race.CurrentClue = input.CurrentClue

		updatedJSON, err := json.Marshal(&race)
		if err != nil {
			return fmt.Errorf("failed to marshal race: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, updatedJSON, 0)
			return nil
		})
		return err
	}, key)

	if errors.Is(err, redis.TxFailedErr) {
		return ErrProgressConflict
	}

	return err
}

// FinishRace records the end time of an active race and clears the
// team's active-race pointer
func (r *redisRepository) FinishRace(ctx context.Context, input *FinishRaceInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	pointerKey := activeRaceKey(input.EventID, input.Email)

	raceID, err := r.client.Get(ctx, pointerKey).Result()
	if errors.Is(err, redis.Nil) {
		// No active race means the team already finished
		return ErrRaceFinished
	}
	if err != nil {
		return fmt.Errorf("failed to get active race pointer: %w", err)
	}

	key := raceKey(raceID)

	err = r.client.Watch(ctx, func(tx *redis.Tx) error {
		raceJSON, err := tx.Get(ctx, key).Result()
		if errors.Is(err, redis.Nil) {
			return ErrRaceNotFound
		}
		if err != nil {
			return err
		}

		var race models.Race
		if err := json.Unmarshal([]byte(raceJSON), &race); err != nil {
			return fmt.Errorf("failed to unmarshal race: %w", err)
		}

		if race.Finished() {
			return ErrRaceFinished
		}

		endTime := input.EndTime
		race.EndTime = &endTime
		race.TimeTaken = input.TimeTaken

		updatedJSON, err := json.Marshal(&race)
		if err != nil {
			return fmt.Errorf("failed to marshal race: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, updatedJSON, 0)
			pipe.Del(ctx, pointerKey)
			return nil
		})
		return err
	}, key)

	if errors.Is(err, redis.TxFailedErr) {
		return ErrRaceFinished
	}

	return err
}

// GetCompletedRaces retrieves finished races for an event, fastest first
func (r *redisRepository) GetCompletedRaces(ctx context.Context, input *GetCompletedRacesInput) ([]*models.Race, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	races, err := r.getEventRaces(ctx, input.EventID)
	if err != nil {
		return nil, err
	}

	completed := make([]*models.Race, 0, len(races))
	for _, race := range races {
		if race.Finished() {
			completed = append(completed, race)
		}
	}

	sort.Slice(completed, func(i, j int) bool {
		if completed[i].TimeTaken != completed[j].TimeTaken {
			return completed[i].TimeTaken < completed[j].TimeTaken
		}
		return completed[i].Name < completed[j].Name
	})

	return completed, nil
}

// GetInProgressRaces retrieves unfinished races for an event
func (r *redisRepository) GetInProgressRaces(ctx context.Context, input *GetInProgressRacesInput) ([]*models.Race, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	races, err := r.getEventRaces(ctx, input.EventID)
	if err != nil {
		return nil, err
	}

	inProgress := make([]*models.Race, 0, len(races))
	for _, race := range races {
		if !race.Finished() {
			inProgress = append(inProgress, race)
		}
	}

	return inProgress, nil
}

// GetLeaderboard retrieves the best finished time per team name,
// ascending by time with ties broken by name
func (r *redisRepository) GetLeaderboard(ctx context.Context, input *GetLeaderboardInput) ([]*models.LeaderboardEntry, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	completed, err := r.GetCompletedRaces(ctx, &GetCompletedRacesInput{EventID: input.EventID})
	if err != nil {
		return nil, err
	}

	best := make(map[string]*models.LeaderboardEntry)
	for _, race := range completed {
		entry, ok := best[race.Name]
		if !ok || race.TimeTaken < entry.BestTime {
			best[race.Name] = &models.LeaderboardEntry{
				Name:     race.Name,
				Email:    race.Email,
				BestTime: race.TimeTaken,
			}
		}
	}

	entries := make([]*models.LeaderboardEntry, 0, len(best))
	for _, entry := range best {
		entries = append(entries, entry)
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].BestTime != entries[j].BestTime {
			return entries[i].BestTime < entries[j].BestTime
		}
		return entries[i].Name < entries[j].Name
	})

	return entries, nil
}

func (r *redisRepository) getEventRaces(ctx context.Context, eventID string) ([]*models.Race, error) {
	raceIDs, err := r.client.SMembers(ctx, eventRacesKey(eventID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get event race index: %w", err)
	}

	races := make([]*models.Race, 0, len(raceIDs))
	for _, raceID := range raceIDs {
		race, err := r.getRace(ctx, raceID)
		if err != nil {
			if errors.Is(err, ErrRaceNotFound) {
				// Index entry with no row, skip it
				continue
			}
			return nil, err
		}
		races = append(races, race)
	}

	return races, nil
}
