package cards

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	apperrors "mtgsalty/pkg/errors"
)

type stubSearcher struct {
	searchFn func(ctx context.Context, query string) ([]Card, error)
	calls    int
}

func (s *stubSearcher) Search(ctx context.Context, query string) ([]Card, error) {
	s.calls++
	if s.searchFn != nil {
		return s.searchFn(ctx, query)
	}
	return nil, nil
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSearchCommandersShortQuerySkipsLookup(t *testing.T) {
	searcher := &stubSearcher{}
	svc := NewService(searcher, newTestLogger())

	for _, query := range []string{"", " ", "a", " a "} {
		results, err := svc.SearchCommanders(context.Background(), query)
		require.NoError(t, err)
		require.Empty(t, results)
	}
	require.Zero(t, searcher.calls)
}

func TestSearchCommandersTrimsQuery(t *testing.T) {
	searcher := &stubSearcher{
		searchFn: func(ctx context.Context, query string) ([]Card, error) {
			require.Equal(t, "atraxa", query)
			return []Card{{Name: "Atraxa, Praetors' Voice"}}, nil
		},
	}
	svc := NewService(searcher, newTestLogger())

	results, err := svc.SearchCommanders(context.Background(), "  atraxa  ")
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.Equal(t, "Atraxa, Praetors' Voice", results[0].Name)
}

func TestSearchCommandersWrapsLookupFailure(t *testing.T) {
	searcher := &stubSearcher{
		searchFn: func(ctx context.Context, query string) ([]Card, error) {
			return nil, errors.New("boom")
		},
	}
	svc := NewService(searcher, newTestLogger())

	_, err := svc.SearchCommanders(context.Background(), "atraxa")
	require.Error(t, err)
	require.True(t, apperrors.IsCode(err, "lookup_error"))
}
