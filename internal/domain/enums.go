package domain

import (
	"fmt"     // Error formatting
	"strings" // Case-insensitive matching
)

// Direction classifies a transaction as a debit or a credit
type Direction string

const (
	Debit  Direction = "Debit"  // Money leaving the debtor account
	Credit Direction = "Credit" // Money arriving on the beneficiary account
)

// Status is the outcome of a transaction
type Status string

const (
	Failed     Status = "Failed"     // Transaction was rejected
	Successful Status = "Successful" // Transaction was settled
)

// ParseDirection accepts the wire codes D/C or the names Debit/Credit
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "d", "debit":
		return Debit, nil
	case "c", "credit":
		return Credit, nil
	}
	return "", fmt.Errorf("invalid direction %q", s)
}

// ParseStatus accepts the wire codes 0/1 or the names Failed/Successful
func ParseStatus(s string) (Status, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "0", "failed":
		return Failed, nil
	case "1", "successful":
		return Successful, nil
	}
	return "", fmt.Errorf("invalid status %q", s)
}

func (d Direction) String() string { return string(d) }

// Code returns the single letter wire code
func (d Direction) Code() string {
	if d == Credit {
		return "C"
	}
	return "D"
}

// UnmarshalText lets encoding/xml and encoding/json decode either form
func (d *Direction) UnmarshalText(text []byte) error {
	v, err := ParseDirection(string(text))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

func (s Status) String() string { return string(s) }

// Code returns the numeric wire code
func (s Status) Code() string {
	if s == Successful {
		return "1"
	}
	return "0"
}

// UnmarshalText lets encoding/xml and encoding/json decode either form
func (s *Status) UnmarshalText(text []byte) error {
	v, err := ParseStatus(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}
