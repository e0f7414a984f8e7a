package session

import (
	"bufio"
	"context"
	"errors"
	"io"

	"github.com/bft-labs/shopcart/pkg/log"
)

// Run applies one command per line from r until EOF or ctx is done.
// Malformed lines and out-of-range indices are logged and skipped; a
// snapshot save failure stops the run.
func (s *Session) Run(ctx context.Context, r io.Reader) error {
	lines := make(chan string)
	scanErr := make(chan error, 1)

	// The scanner may block on a terminal; it is left behind when ctx ends.
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(r)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-ctx.Done():
				return
			}
		}
		scanErr <- sc.Err()
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				select {
				case err := <-scanErr:
					return err
				default:
					return nil
				}
			}
			if err := s.applyLine(ctx, line); err != nil {
				return err
			}
		}
	}
}

// applyLine parses and applies a single line. Only errors that should end
// the session are returned.
func (s *Session) applyLine(ctx context.Context, line string) error {
	cmd, err := ParseCommand(line)
	if errors.Is(err, ErrSkip) {
		return nil
	}
	if err != nil {
		s.logger.Warn("ignoring line", log.String("line", line), log.Err(err))
		return nil
	}

	if err := s.Apply(ctx, cmd); err != nil {
		if errors.Is(err, ErrIndexOutOfRange) {
			s.logger.Warn("ignoring command", log.String("command", cmd.String()), log.Err(err))
			return nil
		}
		return err
	}
	return nil
}
