package hunt

// HuntError is a custom error type for hunt-related errors
type HuntError string

// Error implements the error interface
func (e HuntError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrEventNotFound    HuntError = "event not found"
	ErrSessionNotFound  HuntError = "session not found"
	ErrRaceNotFound     HuntError = "race not found"
	ErrInvalidInput     HuntError = "name and email are required"
	ErrProgressConflict HuntError = "progress changed under a concurrent scan"
	ErrNilConfig        HuntError = "config cannot be nil"
	ErrNoEvents         HuntError = "event catalog cannot be empty"
	ErrNilRaceRepo      HuntError = "race repository cannot be nil"
	ErrNilSessionRepo   HuntError = "session repository cannot be nil"
)
