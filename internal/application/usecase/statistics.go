// Package usecase contains application-level services.
package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/tesso57/substats/internal/domain/subset"
)

// SourceRepository abstracts loading a subset mapping.
type SourceRepository interface {
	Load(ctx context.Context, path string) (*subset.Items, error)
}

// SourceRecorder persists the last opened source. Optional.
type SourceRecorder interface {
	SetSource(path string) error
}

// StatisticsService loads subsets and summarizes them.
type StatisticsService struct {
	Repo     SourceRepository
	Recorder SourceRecorder
}

// NewStatisticsService constructs a StatisticsService.
func NewStatisticsService(repo SourceRepository, recorder SourceRecorder) StatisticsService {
	return StatisticsService{Repo: repo, Recorder: recorder}
}

// Load reads the mapping at path. A failed load yields an empty mapping along
// with the error so callers always have something to render.
func (s StatisticsService) Load(ctx context.Context, path string) (*subset.Items, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return subset.NewItems(), errors.New("no source configured")
	}
	if s.Repo == nil {
		return subset.NewItems(), errors.New("source repository is not configured")
	}
	items, err := s.Repo.Load(ctx, path)
	if err != nil {
		return subset.NewItems(), err
	}
	if items == nil {
		items = subset.NewItems()
	}
	if s.Recorder != nil {
		if err := s.Recorder.SetSource(path); err != nil {
			return items, err
		}
	}
	return items, nil
}

// Summarize computes the statistics of the subset stored under key.
func (s StatisticsService) Summarize(items *subset.Items, key string) (subset.Summary, error) {
	if items == nil {
		return subset.Summary{}, subset.ErrUnknownKey
	}
	records, err := items.Records(key)
	if err != nil {
		return subset.Summary{}, err
	}
	return subset.Summarize(key, records), nil
}
