package commands

import (
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
)

// setupTUILogging sends the log to path, or discards it when path is empty,
// because the TUI owns the terminal.
func setupTUILogging(path string) (func(), error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	f, err := tea.LogToFile(path, "waterlevels")
	if err != nil {
		return nil, err
	}
	return func() { f.Close() }, nil
}

// setupCLILogging logs to path when given and to stderr otherwise.
func setupCLILogging(path string) (func(), error) {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	if path == "" {
		log.SetOutput(os.Stderr)
		return func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, err
	}
	log.SetOutput(f)
	return func() { f.Close() }, nil
}
