package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/crawldex"
)

// Ensure LoggingIndexStore implements crawldex.IndexStore.
var _ crawldex.IndexStore = (*LoggingIndexStore)(nil)

// LoggingIndexStore wraps an IndexStore with logging of saves and loads.
type LoggingIndexStore struct {
	next   crawldex.IndexStore
	logger *slog.Logger
}

// NewLoggingIndexStore creates a new LoggingIndexStore.
func NewLoggingIndexStore(next crawldex.IndexStore, logger *slog.Logger) *LoggingIndexStore {
	return &LoggingIndexStore{next: next, logger: logger}
}

func (s *LoggingIndexStore) SaveIndex(ctx context.Context, idx *crawldex.Index) error {
	begin := time.Now()
	if err := s.next.SaveIndex(ctx, idx); err != nil {
		s.logger.Error("save index",
			"code", crawldex.ErrorCode(err),
			"err", err,
		)
		return err
	}
	s.logger.Info("save index",
		"words", idx.WordCount(),
		"duration", time.Since(begin),
	)
	return nil
}

func (s *LoggingIndexStore) LoadIndex(ctx context.Context) (*crawldex.Index, error) {
	begin := time.Now()
	idx, err := s.next.LoadIndex(ctx)
	if err != nil {
		s.logger.Error("load index",
			"code", crawldex.ErrorCode(err),
			"err", err,
		)
		return nil, err
	}
	s.logger.Info("load index",
		"words", idx.WordCount(),
		"duration", time.Since(begin),
	)
	return idx, nil
}
