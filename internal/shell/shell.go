// Package shell implements the interactive request loop: read a line,
// run commands locally, hand everything else to a dispatcher, print the
// outcome, repeat. One request is in flight at a time.
package shell

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/troikahq/troika/internal/api"
	"github.com/troikahq/troika/internal/coordinator"
	"github.com/troikahq/troika/internal/session"
)

var (
	promptStyle = lipgloss.NewStyle().Bold(true)

	busyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))
)

const (
	defaultPrompt = "You: "
	defaultBusy   = "Coordinating agents..."
	goodbyeText   = "Shutting down. Goodbye!"
)

// Dispatcher processes one request end to end. The coordinator and the
// single-agent dispatcher both implement it.
type Dispatcher interface {
	Process(ctx context.Context, request string) (*coordinator.Response, error)
}

// ConfigWatcher reports whether the persona config changed since the
// last check.
type ConfigWatcher interface {
	Changed() bool
}

// Options configures optional shell behavior. The zero value is a bare
// loop with no banner, no stats, and no config reloading.
type Options struct {
	// Tracker backs the stats command.
	Tracker *api.TokenTracker
	// Watcher flags persona config changes between prompts.
	Watcher ConfigWatcher
	// Reload re-applies personas after the watcher fires.
	Reload func() error
	// Banner prints once before the first prompt.
	Banner string
	// Prompt replaces the default input prompt.
	Prompt string
	// Busy replaces the default line printed while a request runs.
	Busy string
}

// Shell drives the interactive loop over a dispatcher.
type Shell struct {
	dispatcher Dispatcher
	sess       *session.Context
	in         io.Reader
	out        io.Writer
	state      State
	opts       Options
}

// New creates a shell reading from in and writing to out.
func New(dispatcher Dispatcher, sess *session.Context, in io.Reader, out io.Writer, opts Options) *Shell {
	if opts.Prompt == "" {
		opts.Prompt = defaultPrompt
	}
	if opts.Busy == "" {
		opts.Busy = defaultBusy
	}
	return &Shell{
		dispatcher: dispatcher,
		sess:       sess,
		in:         in,
		out:        out,
		state:      StateIdle,
		opts:       opts,
	}
}

// State returns the loop's current state.
func (s *Shell) State() State {
	return s.state
}

// transition moves the loop to next, failing on an illegal move.
func (s *Shell) transition(next State) error {
	if !canTransition(s.state, next) {
		return fmt.Errorf("illegal shell transition %s -> %s", s.state, next)
	}
	s.state = next
	return nil
}

// Run drives the loop until a quit command, EOF, or context
// cancellation. Request failures are printed and the loop continues;
// they never terminate the process.
func (s *Shell) Run(ctx context.Context) error {
	if err := s.transition(StateAwaitingInput); err != nil {
		return err
	}
	if s.opts.Banner != "" {
		fmt.Fprintln(s.out, s.opts.Banner)
	}

	scanner := bufio.NewScanner(s.in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for s.state != StateTerminated {
		if ctx.Err() != nil {
			if err := s.transition(StateTerminated); err != nil {
				return err
			}
			return ctx.Err()
		}
		s.maybeReload()

		fmt.Fprintf(s.out, "\n%s", promptStyle.Render(s.opts.Prompt))
		if !scanner.Scan() {
			// EOF terminates like quit.
			if err := s.transition(StateTerminated); err != nil {
				return err
			}
			fmt.Fprintf(s.out, "\n%s\n", goodbyeText)
			break
		}

		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "":
			// Stay awaiting input.
		case isQuit(line):
			if err := s.transition(StateTerminated); err != nil {
				return err
			}
			fmt.Fprintln(s.out, goodbyeText)
		case strings.EqualFold(line, "history"):
			// history short-circuits processing: no agent call.
			fmt.Fprintf(s.out, "\n%s\n", session.FormatHistory(s.sess.History(), s.sess.ID()))
		case strings.EqualFold(line, "stats"):
			s.printStats()
		default:
			if err := s.handleRequest(ctx, line); err != nil {
				return err
			}
		}
	}

	return scanner.Err()
}

// handleRequest drives one request through processing and
// displaying-result, returning to awaiting-input on success and
// failure alike.
func (s *Shell) handleRequest(ctx context.Context, request string) error {
	if err := s.transition(StateProcessing); err != nil {
		return err
	}
	fmt.Fprintf(s.out, "\n%s\n", busyStyle.Render(s.opts.Busy))

	resp, procErr := s.dispatcher.Process(ctx, request)

	if err := s.transition(StateDisplayingResult); err != nil {
		return err
	}
	if procErr != nil {
		fmt.Fprintln(s.out, errorStyle.Render(fmt.Sprintf("Error: %v", procErr)))
	} else {
		fmt.Fprintf(s.out, "\n%s\n", coordinator.RenderResponse(resp))
	}
	return s.transition(StateAwaitingInput)
}

// printStats reports session token usage from the tracker.
func (s *Shell) printStats() {
	if s.opts.Tracker == nil {
		fmt.Fprintln(s.out, "No token tracking configured.")
		return
	}
	input, output := s.opts.Tracker.Total()
	fmt.Fprintf(s.out, "API calls: %d | Tokens: %d in / %d out | Cost: $%.4f\n",
		s.opts.Tracker.Calls(), input, output, s.opts.Tracker.Cost())
}

// maybeReload re-applies agent personas when the config watcher fired.
// Reload failures keep the previous personas.
func (s *Shell) maybeReload() {
	if s.opts.Watcher == nil || s.opts.Reload == nil {
		return
	}
	if !s.opts.Watcher.Changed() {
		return
	}
	if err := s.opts.Reload(); err != nil {
		fmt.Fprintln(s.out, errorStyle.Render(fmt.Sprintf("Config reload failed: %v", err)))
		return
	}
	fmt.Fprintln(s.out, busyStyle.Render("Agent personas reloaded."))
}

// isQuit reports whether the line is one of the terminate commands.
func isQuit(line string) bool {
	switch strings.ToLower(line) {
	case "quit", "exit", "q", "bye":
		return true
	default:
		return false
	}
}
