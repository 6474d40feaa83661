package animation

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidInput is matched by every *InvalidInputError.
var ErrInvalidInput = errors.New("invalid input")

// Field names an input value.
type Field string

const (
	FieldLevels  Field = "levels"
	FieldMaxTime Field = "max time"
)

// InvalidInputError reports a token that is not a usable number.
type InvalidInputError struct {
	Field    Field
	Token    string
	Position int // 1-based index within the levels list, 0 for max time
	Err      error
}

func (e *InvalidInputError) Error() string {
	reason := "is not a number"
	if errors.Is(e.Err, errNotFinite) {
		reason = "is not finite"
	}
	if e.Field == FieldLevels {
		return fmt.Sprintf("invalid input: level %d %q %s", e.Position, e.Token, reason)
	}
	return fmt.Sprintf("invalid input: %s %q %s", e.Field, e.Token, reason)
}

func (e *InvalidInputError) Unwrap() error {
	return e.Err
}

func (e *InvalidInputError) Is(target error) bool {
	return target == ErrInvalidInput
}

// Input is a validated pair of levels and max time. It is never modified
// after parsing.
type Input struct {
	Levels  []float64
	MaxTime float64
}

// ParseInput parses both raw values. Max time is checked first.
func ParseInput(levels, maxTime string) (Input, error) {
	mt, err := parseNumber(maxTime)
	if err != nil {
		return Input{}, &InvalidInputError{Field: FieldMaxTime, Token: maxTime, Err: err}
	}

	lv, err := ParseLevels(levels)
	if err != nil {
		return Input{}, err
	}

	return Input{Levels: lv, MaxTime: mt}, nil
}

// ParseLevels parses a comma-separated list of numbers.
func ParseLevels(raw string) ([]float64, error) {
	tokens := strings.Split(raw, ",")
	levels := make([]float64, 0, len(tokens))
	for i, token := range tokens {
		v, err := parseNumber(token)
		if err != nil {
			return nil, &InvalidInputError{Field: FieldLevels, Token: strings.TrimSpace(token), Position: i + 1, Err: err}
		}
		levels = append(levels, v)
	}
	return levels, nil
}

var errNotFinite = errors.New("value is not finite")

func parseNumber(token string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(token), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errNotFinite
	}
	return v, nil
}
