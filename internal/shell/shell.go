// Package shell is the line-oriented front end: it reads input lines,
// hands each to the dispatcher, and persists command history across
// sessions.
package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/juniperhq/stay/internal/ui"
)

// Options configures a Shell.
type Options struct {
	Prompt      string // printed before each read when Interactive
	HistoryPath string // history file; empty disables persistence
	HistoryMax  int    // most recent lines kept; <=0 disables the cap
	Interactive bool   // stdin is a terminal
}

// Shell runs the read → dispatch loop over an input stream.
type Shell struct {
	dispatcher *Dispatcher
	in         io.Reader
	out        io.Writer
	opts       Options
	history    []string
}

// New returns a shell reading lines from in and writing to out.
func New(dispatcher *Dispatcher, in io.Reader, out io.Writer, opts Options) *Shell {
	return &Shell{
		dispatcher: dispatcher,
		in:         in,
		out:        out,
		opts:       opts,
	}
}

// Run reads lines until an exit sentinel or end of input, then saves
// history. Each cycle is one read → dispatch → (internal bind/execute/
// reset); nothing runs concurrently with anything else.
func (s *Shell) Run() error {
	s.loadHistory()

	scanner := bufio.NewScanner(s.in)
	for {
		if s.opts.Interactive && s.opts.Prompt != "" {
			fmt.Fprint(s.out, ui.RenderPrompt(s.opts.Prompt))
		}
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		s.remember(line)

		if err := s.dispatcher.Dispatch(line); err != nil {
			if errors.Is(err, ErrExit) {
				break
			}
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
	}
	return s.saveHistory()
}

func (s *Shell) remember(line string) {
	if strings.TrimSpace(line) == "" {
		return
	}
	s.history = append(s.history, line)
	if s.opts.HistoryMax > 0 && len(s.history) > s.opts.HistoryMax {
		s.history = s.history[len(s.history)-s.opts.HistoryMax:]
	}
}

func (s *Shell) loadHistory() {
	if s.opts.HistoryPath == "" {
		return
	}
	data, err := os.ReadFile(s.opts.HistoryPath)
	if err != nil {
		return
	}
	for _, line := range strings.Split(string(data), "\n") {
		if line != "" {
			s.history = append(s.history, line)
		}
	}
	if s.opts.HistoryMax > 0 && len(s.history) > s.opts.HistoryMax {
		s.history = s.history[len(s.history)-s.opts.HistoryMax:]
	}
}

func (s *Shell) saveHistory() error {
	if s.opts.HistoryPath == "" {
		return nil
	}
	var b strings.Builder
	for _, line := range s.history {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	if err := os.WriteFile(s.opts.HistoryPath, []byte(b.String()), 0o600); err != nil {
		return fmt.Errorf("save history: %w", err)
	}
	return nil
}
