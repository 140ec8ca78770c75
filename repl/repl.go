// Package repl SPDX-License-Identifier: Apache-2.0
package repl

import (
	"bufio"
	stderrors "errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/tliron/commonlog"

	"calc/internal/config"
	"calc/internal/errors"
	"calc/token"
)

const (
	PROMPT         = `Enter a number, and operation, and a second number (e.g. "2 plus 2")`
	SUCCESS        = "Program succesfully ran to the end"
	QUIT           = "q"
	lineDelimiter  = '\n'
	carriageReturn = "\r"
)

var log = commonlog.GetLogger("calc.repl")

// State is a step of the input loop.
type State int

const (
	AwaitingInput State = iota
	Validating
	Retry
	Accepted
)

func (s State) String() string {
	switch s {
	case AwaitingInput:
		return "AwaitingInput"
	case Validating:
		return "Validating"
	case Retry:
		return "Retry"
	case Accepted:
		return "Accepted"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Session runs the prompt loop over one input and one output stream.
type Session struct {
	in       *bufio.Reader
	out      io.Writer
	reporter *errors.ErrorReporter
	prompt   *color.Color
	success  *color.Color
	cfg      config.Config
	state    State
	failures int
}

func NewSession(in io.Reader, out io.Writer, cfg config.Config) *Session {
	s := &Session{
		in:       bufio.NewReader(in),
		out:      out,
		reporter: errors.NewErrorReporter(out, cfg.NoColor),
		prompt:   color.New(color.Bold),
		success:  color.New(color.FgGreen),
		cfg:      cfg,
		state:    AwaitingInput,
	}
	if cfg.NoColor {
		s.prompt.DisableColor()
		s.success.DisableColor()
	}
	return s
}

// State reports where the loop currently is.
func (s *Session) State() State {
	return s.state
}

// Start runs a session until in is exhausted.
func Start(in io.Reader, out io.Writer, cfg config.Config) error {
	return NewSession(in, out, cfg).Run()
}

// Run loops until the input is exhausted, the output cannot be written, or
// MaxReadFailures consecutive reads fail. End of input returns nil.
func (s *Session) Run() error {
	for {
		expr, err := s.readExpression()
		if err == io.EOF {
			log.Debug("input exhausted")
			return nil
		}
		if err != nil {
			return err
		}

		// Join restores the raw line exactly.
		if expr.String() == QUIT {
			// Quitting is recognised but does not stop the loop.
			log.Debug("quit requested, ignoring")
			s.transition(AwaitingInput)
			continue
		}

		if _, err := s.success.Fprintln(s.out, SUCCESS); err != nil {
			return fmt.Errorf("write success message: %w", err)
		}
		log.Infof("accepted %q", expr.String())
		s.transition(AwaitingInput)
	}
}

// readExpression prompts until a line with three parts is read. It returns
// io.EOF once the input holds nothing more.
func (s *Session) readExpression() (token.Expression, error) {
	for {
		s.transition(AwaitingInput)
		if _, err := s.prompt.Fprintln(s.out, PROMPT); err != nil {
			return token.Expression{}, fmt.Errorf("write prompt: %w", err)
		}

		line, err := s.readLine()
		if err == io.EOF {
			return token.Expression{}, io.EOF
		}
		if err != nil {
			if rerr := s.retry(errors.ReadFailure(err)); rerr != nil {
				return token.Expression{}, rerr
			}
			if s.cfg.MaxReadFailures > 0 && s.failures >= s.cfg.MaxReadFailures {
				return token.Expression{}, fmt.Errorf("giving up after %d consecutive read failures: %w",
					s.failures, errors.ReadFailure(err))
			}
			continue
		}
		s.failures = 0

		s.transition(Validating)
		parts := token.Split(line)
		expr, ok := token.NewExpression(parts)
		if !ok {
			if rerr := s.retry(errors.WrongTokenCount(line, len(parts))); rerr != nil {
				return token.Expression{}, rerr
			}
			continue
		}

		s.transition(Accepted)
		return expr, nil
	}
}

// readLine reads up to the next newline and strips the line ending. A final
// line without a trailing newline is still returned; io.EOF is only reported
// when nothing was read.
func (s *Session) readLine() (string, error) {
	line, err := s.in.ReadString(lineDelimiter)
	if err != nil {
		if !stderrors.Is(err, io.EOF) {
			s.failures++
			return "", err
		}
		if line == "" {
			return "", io.EOF
		}
	}
	line = strings.TrimSuffix(line, string(lineDelimiter))
	line = strings.TrimSuffix(line, carriageReturn)
	return line, nil
}

func (s *Session) retry(inputErr *errors.InputError) error {
	s.transition(Retry)
	log.Debugf("retrying: %s", inputErr)
	return s.reporter.Report(inputErr)
}

func (s *Session) transition(next State) {
	if s.state != next {
		log.Debugf("%s -> %s", s.state, next)
	}
	s.state = next
}
