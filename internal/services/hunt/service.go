package hunt

import (
	"context"
	"errors"
	"strings"

	"github.com/cluetrail/cluetrail/internal/common/clock"
	"github.com/cluetrail/cluetrail/internal/common/token"
	"github.com/cluetrail/cluetrail/internal/models"
	raceRepo "github.com/cluetrail/cluetrail/internal/repositories/race"
	sessionRepo "github.com/cluetrail/cluetrail/internal/repositories/session"
)

// service implements the Service interface
type service struct {
	events      map[string]*models.Event
	raceRepo    raceRepo.Repository
	sessionRepo sessionRepo.Repository
	clock       clock.Clock
	tokens      token.Generator
}

// New creates a new hunt service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if len(cfg.Events) == 0 {
		return nil, ErrNoEvents
	}

	if cfg.RaceRepo == nil {
		return nil, ErrNilRaceRepo
	}

	if cfg.SessionRepo == nil {
		return nil, ErrNilSessionRepo
	}

	clk := cfg.Clock
	if clk == nil {
		clk = &clock.DefaultClock{}
	}

	tokens := cfg.TokenGenerator
	if tokens == nil {
		tokens = token.New()
	}

	return &service{
		events:      cfg.Events,
		raceRepo:    cfg.RaceRepo,
		sessionRepo: cfg.SessionRepo,
		clock:       clk,
		tokens:      tokens,
	}, nil
}

// GetEvent looks up a configured event
func (s *service) GetEvent(ctx context.Context, input *GetEventInput) (*GetEventOutput, error) {
	if input == nil {
		return nil, ErrEventNotFound
	}

	event, ok := s.events[input.EventID]
	if !ok {
		return nil, ErrEventNotFound
	}

	return &GetEventOutput{Event: event}, nil
}

// StartRace begins or resumes a team's race and opens a fresh session.
// Resuming preserves the original start time and clue index, so a team
// that loses its cookie keeps its timer.
func (s *service) StartRace(ctx context.Context, input *StartRaceInput) (*StartRaceOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}

	event, ok := s.events[input.EventID]
	if !ok {
		return nil, ErrEventNotFound
	}

	name := strings.TrimSpace(input.Name)
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if name == "" || email == "" {
		return nil, ErrInvalidInput
	}

	now := s.clock.Now()

	startTime := now
	currentClue := 0
	resumed := false

	active, err := s.raceRepo.GetActiveRace(ctx, &raceRepo.GetActiveRaceInput{
		Email:   email,
		EventID: event.ID,
	})
	if err != nil && !errors.Is(err, raceRepo.ErrRaceNotFound) {
		return nil, err
	}

	if active != nil {
		// Pick up the existing race; the row's name wins over the form
		startTime = active.StartTime
		currentClue = active.CurrentClue
		name = active.Name
		resumed = true
	} else {
		err := s.raceRepo.CreateRace(ctx, &raceRepo.CreateRaceInput{
			Race: &models.Race{
				ID:          s.tokens.NewToken(),
				Name:        name,
				Email:       email,
				EventID:     event.ID,
				StartTime:   now,
				CurrentClue: 0,
			},
		})
		if err != nil {
			return nil, err
		}
	}

	sess := &models.Session{
		ID:          s.tokens.NewToken(),
		Name:        name,
		Email:       email,
		EventID:     event.ID,
		StartTime:   startTime,
		CurrentClue: currentClue,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.sessionRepo.SaveSession(ctx, &sessionRepo.SaveSessionInput{Session: sess}); err != nil {
		return nil, err
	}

	redirectIndex := currentClue
	if last := len(event.OrderedCodes) - 1; redirectIndex > last {
		redirectIndex = last
	}

	return &StartRaceOutput{
		SessionID:    sess.ID,
		RedirectCode: event.OrderedCodes[redirectIndex],
		Resumed:      resumed,
	}, nil
}

// RedeemCode evaluates a scanned clue code against the session's
// recorded progress and applies the resulting state change.
func (s *service) RedeemCode(ctx context.Context, input *RedeemCodeInput) (*RedeemCodeOutput, error) {
	if input == nil {
		return nil, ErrSessionNotFound
	}

	event, ok := s.events[input.EventID]
	if !ok {
		return nil, ErrEventNotFound
	}

	sess, err := s.sessionRepo.GetSession(ctx, &sessionRepo.GetSessionInput{
		SessionID: input.SessionID,
	})
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	code := strings.ToUpper(strings.TrimSpace(input.Code))
	clue, known := event.Clues[code]
	codeIndex := event.CodeIndex(code)

	out := &RedeemCodeOutput{
		TotalClues: event.TotalClues(),
		Name:       sess.Name,
		Email:      sess.Email,
	}

	// The clue map and the ordered list must agree on validity
	if !known || codeIndex < 0 {
		out.Decision = DecisionInvalidCode
		return out, nil
	}

	out.ClueNumber = codeIndex + 1
	lastIndex := len(event.OrderedCodes) - 1
	expected := sess.CurrentClue

	// The final code at the expected position is the finishing scan,
	// and deliberately outranks the generic advance case below.
	if codeIndex == lastIndex && codeIndex == expected {
		return s.finishRace(ctx, event, sess, clue, out)
	}

	if codeIndex < expected {
		out.Decision = DecisionAlreadyRedeemed
		out.Clue = clue
		return out, nil
	}

	if codeIndex > expected {
		// The only branch that withholds the clue text
		out.Decision = DecisionOutOfOrder
		return out, nil
	}

	// Expected code, not final: advance race row and session
	err = s.raceRepo.UpdateProgress(ctx, &raceRepo.UpdateProgressInput{
		Email:        sess.Email,
		EventID:      event.ID,
		ExpectedClue: expected,
		CurrentClue:  codeIndex + 1,
	})
	if err != nil {
		if errors.Is(err, raceRepo.ErrProgressConflict) {
			return nil, ErrProgressConflict
		}
		if errors.Is(err, raceRepo.ErrRaceNotFound) {
			return nil, ErrRaceNotFound
		}
		return nil, err
	}

	sess.CurrentClue = codeIndex + 1
	sess.UpdatedAt = s.clock.Now()
	if err := s.sessionRepo.SaveSession(ctx, &sessionRepo.SaveSessionInput{Session: sess}); err != nil {
		return nil, err
	}

	out.Decision = DecisionAdvanced
	out.Clue = clue
	return out, nil
}

func (s *service) finishRace(ctx context.Context, event *models.Event, sess *models.Session, clue string, out *RedeemCodeOutput) (*RedeemCodeOutput, error) {
	active, err := s.raceRepo.GetActiveRace(ctx, &raceRepo.GetActiveRaceInput{
		Email:   sess.Email,
		EventID: event.ID,
	})
	if err != nil {
		if errors.Is(err, raceRepo.ErrRaceNotFound) {
			// Race already recorded; a stale session re-scanned the final code
			out.Decision = DecisionAlreadyFinished
			return out, nil
		}
		return nil, err
	}

	now := s.clock.Now()
	timeTaken := now.Sub(active.StartTime)

	err = s.raceRepo.FinishRace(ctx, &raceRepo.FinishRaceInput{
		Email:     sess.Email,
		EventID:   event.ID,
		EndTime:   now,
		TimeTaken: timeTaken,
	})
	if err != nil {
		if errors.Is(err, raceRepo.ErrRaceFinished) {
			out.Decision = DecisionAlreadyFinished
			return out, nil
		}
		return nil, err
	}

	if err := s.sessionRepo.DeleteSession(ctx, &sessionRepo.DeleteSessionInput{SessionID: sess.ID}); err != nil {
		return nil, err
	}

	out.Decision = DecisionFinished
	out.Clue = clue
	out.TimeTaken = timeTaken
	return out, nil
}

// GetLeaderboard returns the ranked finished teams and the teams still racing
func (s *service) GetLeaderboard(ctx context.Context, input *GetLeaderboardInput) (*GetLeaderboardOutput, error) {
	if input == nil {
		return nil, ErrEventNotFound
	}

	event, ok := s.events[input.EventID]
	if !ok {
		return nil, ErrEventNotFound
	}

	completed, err := s.raceRepo.GetLeaderboard(ctx, &raceRepo.GetLeaderboardInput{
		EventID: event.ID,
	})
	if err != nil {
		return nil, err
	}

	inProgress, err := s.raceRepo.GetInProgressRaces(ctx, &raceRepo.GetInProgressRacesInput{
		EventID: event.ID,
	})
	if err != nil {
		return nil, err
	}

	return &GetLeaderboardOutput{
		Completed:  completed,
		InProgress: inProgress,
	}, nil
}
