package ledger

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// ErrInvalidAmount is returned when a record is constructed with an amount
// that has no stable textual representation.
var ErrInvalidAmount = errors.New("amount must be a finite number")

// Record represents a single transaction between two parties. A record is
// immutable once constructed and has no identity beyond its field values.
type Record struct {
	Sender   string  `json:"sender"`
	Receiver string  `json:"receiver"`
	Amount   float64 `json:"amount"`
}

// NewRecord constructs a record for the specified transfer. The amount must
// be a finite number since the hashing of a block depends on the record
// having one canonical textual form.
func NewRecord(sender string, receiver string, amount float64) (Record, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return Record{}, ErrInvalidAmount
	}

	r := Record{
		Sender:   sender,
		Receiver: receiver,
		Amount:   amount,
	}

	return r, nil
}

// String returns the canonical textual form of the record. This form is part
// of the digest input for block hashing, so the same field values must always
// produce the same string.
func (r Record) String() string {
	return fmt.Sprintf("Record(sender=%q, receiver=%q, amount=%s)", r.Sender, r.Receiver, strconv.FormatFloat(r.Amount, 'f', -1, 64))
}
