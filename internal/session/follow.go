package session

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/bft-labs/shopcart/pkg/log"
)

// FollowConfig configures Follow.
type FollowConfig struct {
	// Path is the append-only command feed.
	Path string

	// PollInterval is the re-read interval used alongside (or, when the
	// watcher cannot start, instead of) file notifications.
	// Default: 500 milliseconds
	PollInterval time.Duration

	// Once applies the complete lines present now and returns. A trailing
	// line without a newline is left unapplied and the saved offset stops
	// before it, so a later run picks it up once it is terminated.
	Once bool
}

// Follow tails cfg.Path, applying each complete line as it is appended.
// Reading resumes from the snapshot's feed offset when the snapshot was
// following the same file. A file that shrinks is read again from the start.
func (s *Session) Follow(ctx context.Context, cfg FollowConfig) error {
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = 500 * time.Millisecond
	}

	path, err := filepath.Abs(cfg.Path)
	if err != nil {
		return fmt.Errorf("resolve feed path: %w", err)
	}

	var offset int64
	if s.snap.FeedPath == path {
		offset = s.snap.FeedOffset
	}

	if cfg.Once {
		_, err := s.drain(ctx, path, offset, true)
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		s.logger.Warn("feed watcher unavailable, polling", log.Err(err))
		watcher = nil
	} else {
		defer watcher.Close()
		if err := watcher.Add(filepath.Dir(path)); err != nil {
			s.logger.Warn("failed to watch feed directory, polling", log.String("dir", filepath.Dir(path)), log.Err(err))
		}
	}

	s.logger.Info("following feed", log.String("path", path), log.Int64("offset", offset))

	ticker := time.NewTicker(cfg.PollInterval)
	defer ticker.Stop()

	var events chan fsnotify.Event
	var errs chan error
	if watcher != nil {
		events = watcher.Events
		errs = watcher.Errors
	}

	for {
		offset, err = s.drain(ctx, path, offset, false)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}

		select {
		case <-ctx.Done():
			return nil

		case <-ticker.C:

		case event, ok := <-events:
			if !ok {
				events = nil
				continue
			}
			if filepath.Clean(event.Name) != path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}

		case err, ok := <-errs:
			if !ok {
				errs = nil
				continue
			}
			s.logger.Warn("feed watcher error", log.Err(err))
		}
	}
}

// drain applies every complete line after offset and returns the new
// offset. A trailing line without a newline is left for the next call.
func (s *Session) drain(ctx context.Context, path string, offset int64, mustExist bool) (int64, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) && !mustExist {
			return offset, nil
		}
		return offset, fmt.Errorf("open feed: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return offset, fmt.Errorf("stat feed: %w", err)
	}
	if info.Size() < offset {
		s.logger.Warn("feed truncated, rereading from start", log.String("path", path),
			log.Int64("offset", offset), log.Int64("size", info.Size()))
		offset = 0
	}
	if info.Size() == offset {
		return offset, nil
	}

	if _, err := f.Seek(offset, io.SeekStart); err != nil {
		return offset, fmt.Errorf("seek feed: %w", err)
	}

	start := offset
	rd := bufio.NewReader(f)
	for {
		if err := ctx.Err(); err != nil {
			break
		}
		line, err := rd.ReadString('\n')
		if err == io.EOF {
			break
		}
		if err != nil {
			return offset, fmt.Errorf("read feed: %w", err)
		}
		// Record the position first so a snapshot written by Apply already
		// points past this line.
		s.snap.UpdateFeed(path, offset+int64(len(line)))
		if err := s.applyLine(ctx, line); err != nil {
			return offset, err
		}
		offset += int64(len(line))
	}

	if offset != start {
		if err := s.save(context.WithoutCancel(ctx)); err != nil {
			return offset, err
		}
	}
	return offset, nil
}
