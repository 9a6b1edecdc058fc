package pipeline

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// State carries a transaction text through the extract, classify and
// persist stages. Stages record failures in Err instead of returning
// errors, so a partial state survives for inspection.
type State struct {
	RawText       string
	Amount        *decimal.Decimal
	Merchant      string
	Date          *time.Time
	Category      string
	TransactionID *uuid.UUID
	Err           string
}

// NewState starts a run for the given notification text.
func NewState(rawText string) *State {
	return &State{RawText: rawText}
}

// Failed reports whether a previous stage recorded an error.
func (s *State) Failed() bool {
	return s.Err != ""
}
