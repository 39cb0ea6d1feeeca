package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"mtgsalty/internal/domain/cards"
	"mtgsalty/internal/domain/counter"
	"mtgsalty/internal/domain/deck"
	"mtgsalty/internal/infra/config"
	apperrors "mtgsalty/pkg/errors"
)

type stubCardsService struct {
	searchFn func(ctx context.Context, query string) ([]cards.Card, error)
}

func (s *stubCardsService) SearchCommanders(ctx context.Context, query string) ([]cards.Card, error) {
	if s.searchFn != nil {
		return s.searchFn(ctx, query)
	}
	return []cards.Card{}, nil
}

type stubDeckService struct {
	importFn func(ctx context.Context, req deck.ImportRequest) (deck.ImportResult, error)
}

func (s *stubDeckService) Import(ctx context.Context, req deck.ImportRequest) (deck.ImportResult, error) {
	if s.importFn != nil {
		return s.importFn(ctx, req)
	}
	return deck.ImportResult{}, nil
}

type stubCounterService struct {
	recommendFn func(ctx context.Context, req counter.Request) (counter.Recommendation, error)
	suggestFn   func(ctx context.Context, req counter.SuggestionRequest) (counter.Suggestion, error)
}

func (s *stubCounterService) RecommendCounters(ctx context.Context, req counter.Request) (counter.Recommendation, error) {
	if s.recommendFn != nil {
		return s.recommendFn(ctx, req)
	}
	return counter.Recommendation{}, nil
}

func (s *stubCounterService) SuggestDeckChanges(ctx context.Context, req counter.SuggestionRequest) (counter.Suggestion, error) {
	if s.suggestFn != nil {
		return s.suggestFn(ctx, req)
	}
	return counter.Suggestion{}, nil
}

func newTestRouter(cardsSvc cards.Service, deckSvc deck.Service, counterSvc counter.Service) http.Handler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{
		HTTP: config.HTTPConfig{
			Address:      ":0",
			ReadTimeout:  time.Second,
			WriteTimeout: time.Second,
		},
	}
	handler := NewHandler(cardsSvc, deckSvc, counterSvc, logger)
	return NewRouter(cfg, handler).Handler
}

func performRequest(router http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		payload, _ := json.Marshal(body)
		reader = bytes.NewReader(payload)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeErrorBody(t *testing.T, w *httptest.ResponseRecorder) (code, message string) {
	t.Helper()
	var body struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body.Error.Code, body.Error.Message
}

func TestSearchCommandersEndpoint(t *testing.T) {
	cardsSvc := &stubCardsService{
		searchFn: func(_ context.Context, query string) ([]cards.Card, error) {
			require.Equal(t, "atraxa", query)
			return []cards.Card{{Name: "Atraxa, Praetors' Voice"}}, nil
		},
	}
	router := newTestRouter(cardsSvc, &stubDeckService{}, &stubCounterService{})

	w := performRequest(router, http.MethodGet, "/api/v1/cards/search?q=atraxa", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data []cards.Card `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Data, 1)
	require.Equal(t, "Atraxa, Praetors' Voice", body.Data[0].Name)
}

func TestSearchCommandersEndpointUpstreamFailure(t *testing.T) {
	cardsSvc := &stubCardsService{
		searchFn: func(context.Context, string) ([]cards.Card, error) {
			return nil, apperrors.Wrap("lookup_error", "card search failed", nil)
		},
	}
	router := newTestRouter(cardsSvc, &stubDeckService{}, &stubCounterService{})

	w := performRequest(router, http.MethodGet, "/api/v1/cards/search?q=atraxa", nil)
	require.Equal(t, http.StatusBadGateway, w.Code)

	code, _ := decodeErrorBody(t, w)
	require.Equal(t, "search_failed", code)
}

func TestRecommendCountersEndpoint(t *testing.T) {
	counterSvc := &stubCounterService{
		recommendFn: func(_ context.Context, req counter.Request) (counter.Recommendation, error) {
			require.Equal(t, "Atraxa, Praetors' Voice", req.CommanderName)
			require.Equal(t, counter.HateHardCounter, req.HateLevel)
			return counter.Recommendation{
				Analysis:   "a",
				Commanders: []counter.CounterCommander{},
				Cards:      []counter.CounterCard{},
			}, nil
		},
	}
	router := newTestRouter(&stubCardsService{}, &stubDeckService{}, counterSvc)

	w := performRequest(router, http.MethodPost, "/api/v1/counter", map[string]any{
		"commanderName": "Atraxa, Praetors' Voice",
		"hateLevel":     4,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var body counter.Recommendation
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, "a", body.Analysis)
}

func TestRecommendCountersEndpointRejectsMalformedBody(t *testing.T) {
	router := newTestRouter(&stubCardsService{}, &stubDeckService{}, &stubCounterService{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/counter", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	code, _ := decodeErrorBody(t, w)
	require.Equal(t, "invalid_request", code)
}

func TestRecommendCountersEndpointInvalidInput(t *testing.T) {
	counterSvc := &stubCounterService{
		recommendFn: func(context.Context, counter.Request) (counter.Recommendation, error) {
			return counter.Recommendation{}, apperrors.Wrap("invalid_input", "commanderName is required", nil)
		},
	}
	router := newTestRouter(&stubCardsService{}, &stubDeckService{}, counterSvc)

	w := performRequest(router, http.MethodPost, "/api/v1/counter", map[string]any{"hateLevel": 3})
	require.Equal(t, http.StatusBadRequest, w.Code)

	code, message := decodeErrorBody(t, w)
	require.Equal(t, "invalid_request", code)
	require.Contains(t, message, "commanderName is required")
}

func TestRecommendCountersEndpointUpstreamFailureHidesDetails(t *testing.T) {
	counterSvc := &stubCounterService{
		recommendFn: func(context.Context, counter.Request) (counter.Recommendation, error) {
			return counter.Recommendation{}, apperrors.Wrap("llm_error", "completion request failed", nil)
		},
	}
	router := newTestRouter(&stubCardsService{}, &stubDeckService{}, counterSvc)

	w := performRequest(router, http.MethodPost, "/api/v1/counter", map[string]any{
		"commanderName": "X",
		"hateLevel":     3,
	})
	require.Equal(t, http.StatusBadGateway, w.Code)

	code, message := decodeErrorBody(t, w)
	require.Equal(t, "counter_failed", code)
	require.Equal(t, "upstream service failed", message)
}

func TestImportDeckEndpoint(t *testing.T) {
	deckSvc := &stubDeckService{
		importFn: func(_ context.Context, req deck.ImportRequest) (deck.ImportResult, error) {
			require.Equal(t, "1 Sol Ring", req.Text)
			d := deck.Deck{Mainboard: []deck.Entry{{Quantity: 1, Name: "Sol Ring"}}}
			return deck.ImportResult{Deck: d, Text: deck.Export(d)}, nil
		},
	}
	router := newTestRouter(&stubCardsService{}, deckSvc, &stubCounterService{})

	w := performRequest(router, http.MethodPost, "/api/v1/deck/import", map[string]any{"text": "1 Sol Ring"})
	require.Equal(t, http.StatusOK, w.Code)

	var body deck.ImportResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Deck.Mainboard, 1)
	require.Equal(t, "Deck\n1 Sol Ring", body.Text)
}

func TestImportDeckEndpointFetchFailure(t *testing.T) {
	deckSvc := &stubDeckService{
		importFn: func(context.Context, deck.ImportRequest) (deck.ImportResult, error) {
			return deck.ImportResult{}, apperrors.Wrap("deck_fetch_error", "failed to fetch hosted deck", nil)
		},
	}
	router := newTestRouter(&stubCardsService{}, deckSvc, &stubCounterService{})

	w := performRequest(router, http.MethodPost, "/api/v1/deck/import", map[string]any{"url": "https://moxfield.com/decks/abc"})
	require.Equal(t, http.StatusBadGateway, w.Code)

	code, _ := decodeErrorBody(t, w)
	require.Equal(t, "deck_import_failed", code)
}

func TestSuggestDeckChangesEndpoint(t *testing.T) {
	counterSvc := &stubCounterService{
		suggestFn: func(_ context.Context, req counter.SuggestionRequest) (counter.Suggestion, error) {
			require.Equal(t, "Urza, Lord High Artificer", req.TargetCommander)
			require.Equal(t, []string{"Sol Ring"}, req.DeckList)
			return counter.Suggestion{
				Explanation:   "e",
				CardsToAdd:    []counter.AddSuggestion{},
				CardsToRemove: []counter.RemoveSuggestion{},
			}, nil
		},
	}
	router := newTestRouter(&stubCardsService{}, &stubDeckService{}, counterSvc)

	w := performRequest(router, http.MethodPost, "/api/v1/deck/suggestions", map[string]any{
		"targetCommander": "Urza, Lord High Artificer",
		"userCommander":   "Muldrotha, the Gravetide",
		"deckList":        []string{"Sol Ring"},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var body counter.Suggestion
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, "e", body.Explanation)
}

func TestUnknownErrorsReturn500WithStableMessage(t *testing.T) {
	counterSvc := &stubCounterService{
		suggestFn: func(context.Context, counter.SuggestionRequest) (counter.Suggestion, error) {
			return counter.Suggestion{}, apperrors.Wrap("weird_internal_code", "details that must not leak", nil)
		},
	}
	router := newTestRouter(&stubCardsService{}, &stubDeckService{}, counterSvc)

	w := performRequest(router, http.MethodPost, "/api/v1/deck/suggestions", map[string]any{
		"targetCommander": "T",
		"userCommander":   "U",
		"deckList":        []string{"Sol Ring"},
	})
	require.Equal(t, http.StatusInternalServerError, w.Code)

	code, message := decodeErrorBody(t, w)
	require.Equal(t, "deck_suggestions_failed", code)
	require.Equal(t, "something went wrong", message)
}

func TestRequestIDHeaderIsSet(t *testing.T) {
	router := newTestRouter(&stubCardsService{}, &stubDeckService{}, &stubCounterService{})

	w := performRequest(router, http.MethodGet, "/api/v1/cards/search?q=x", nil)
	require.NotEmpty(t, w.Header().Get("X-Request-ID"))
}
