package models

// Event represents a configured scavenger hunt with an ordered clue sequence
type Event struct {
	// ID is the URL-facing identifier for the event
	ID string

	// Title is the display title of the event
	Title string

	// Description is shown on the event's start page
	Description string

	// Host is the organization running the event
	Host string

	// OrderedCodes holds the clue codes in redemption order
	OrderedCodes []string

	// Clues maps each code to the clue text it unlocks
	Clues map[string]string
}

// CodeIndex returns the position of a code in the event's sequence,
// or -1 when the code is not part of the event.
func (e *Event) CodeIndex(code string) int {
	for i, c := range e.OrderedCodes {
		if c == code {
			return i
		}
	}
	return -1
}

// TotalClues returns the number of clues in the event
func (e *Event) TotalClues() int {
	return len(e.OrderedCodes)
}
