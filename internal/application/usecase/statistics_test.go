package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/tesso57/substats/internal/domain/subset"
)

type stubSourceRepo struct {
	mock.Mock
}

func (s *stubSourceRepo) Load(ctx context.Context, path string) (*subset.Items, error) {
	args := s.Called(ctx, path)
	items, _ := args.Get(0).(*subset.Items)
	return items, args.Error(1)
}

type stubRecorder struct {
	mock.Mock
}

func (s *stubRecorder) SetSource(path string) error {
	args := s.Called(path)
	return args.Error(0)
}

func TestStatisticsLoadTrimsPathAndRecords(t *testing.T) {
	items := subset.NewItems()
	items.Set("A", subset.Records{})

	repo := &stubSourceRepo{}
	repo.On("Load", mock.Anything, "data.json").Return(items, nil).Once()
	recorder := &stubRecorder{}
	recorder.On("SetSource", "data.json").Return(nil).Once()

	svc := NewStatisticsService(repo, recorder)
	got, err := svc.Load(context.Background(), "  data.json ")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got.Len() != 1 {
		t.Fatalf("Load() len = %d, want 1", got.Len())
	}
	repo.AssertExpectations(t)
	recorder.AssertExpectations(t)
}

func TestStatisticsLoadFailureReturnsEmptyMapping(t *testing.T) {
	repo := &stubSourceRepo{}
	repo.On("Load", mock.Anything, "bad.csv").Return(nil, errors.New("boom")).Once()
	recorder := &stubRecorder{}

	svc := NewStatisticsService(repo, recorder)
	got, err := svc.Load(context.Background(), "bad.csv")
	if err == nil {
		t.Fatal("Load() expected error")
	}
	if got == nil || got.Len() != 0 {
		t.Fatalf("Load() = %v, want empty mapping", got)
	}
	recorder.AssertNotCalled(t, "SetSource", mock.Anything)
}

func TestStatisticsLoadWithoutSource(t *testing.T) {
	svc := NewStatisticsService(&stubSourceRepo{}, nil)
	got, err := svc.Load(context.Background(), " ")
	if err == nil {
		t.Fatal("Load() expected error for empty path")
	}
	if got == nil {
		t.Fatal("Load() must still return a mapping")
	}
}

func TestStatisticsSummarize(t *testing.T) {
	items := subset.NewItems()
	items.Set("A", subset.Records{{"age": 10.0}, {"age": 20.0}})

	svc := NewStatisticsService(nil, nil)
	summary, err := svc.Summarize(items, "A")
	if err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}
	if summary.Rows != 2 || summary.Features[0].Mean != 15 {
		t.Fatalf("Summarize() = %+v", summary)
	}

	if _, err := svc.Summarize(items, "Z"); !errors.Is(err, subset.ErrUnknownKey) {
		t.Fatalf("Summarize(Z) error = %v, want ErrUnknownKey", err)
	}
	if _, err := svc.Summarize(nil, "A"); !errors.Is(err, subset.ErrUnknownKey) {
		t.Fatalf("Summarize(nil) error = %v, want ErrUnknownKey", err)
	}
}
