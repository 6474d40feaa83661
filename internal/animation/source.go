package animation

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Raw holds the user's text before validation.
type Raw struct {
	Levels  string
	MaxTime string
}

// Parse validates the raw text.
func (r Raw) Parse() (Input, error) {
	return ParseInput(r.Levels, r.MaxTime)
}

// Complete reports whether both values were supplied.
func (r Raw) Complete() bool {
	return r.Levels != "" && r.MaxTime != ""
}

// Source supplies the raw inputs.
type Source interface {
	Acquire() (Raw, error)
}

// Acquire reads both values from src and validates them.
func Acquire(src Source) (Input, error) {
	raw, err := src.Acquire()
	if err != nil {
		return Input{}, err
	}
	return raw.Parse()
}

// Static is a Source for values known up front, such as command-line flags.
type Static Raw

func (s Static) Acquire() (Raw, error) {
	return Raw(s), nil
}

const (
	LevelsPrompt  = "Enter levels (comma-separated numbers): "
	MaxTimePrompt = "Enter max time: "
)

// Prompt asks for each value not already preset, levels first, and blocks
// until a line is read for it.
type Prompt struct {
	In     io.Reader
	Out    io.Writer
	Preset Raw
}

func (p Prompt) Acquire() (Raw, error) {
	raw := p.Preset
	scanner := bufio.NewScanner(p.In)

	ask := func(question string) (string, error) {
		fmt.Fprint(p.Out, question)
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return "", fmt.Errorf("reading answer: %w", err)
			}
			return "", io.ErrUnexpectedEOF
		}
		return strings.TrimSpace(scanner.Text()), nil
	}

	var err error
	if raw.Levels == "" {
		if raw.Levels, err = ask(LevelsPrompt); err != nil {
			return Raw{}, err
		}
	}
	if raw.MaxTime == "" {
		if raw.MaxTime, err = ask(MaxTimePrompt); err != nil {
			return Raw{}, err
		}
	}
	return raw, nil
}
