package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"mtgsalty/internal/domain/cards"
	"mtgsalty/internal/domain/counter"
	"mtgsalty/internal/domain/deck"
	apperrors "mtgsalty/pkg/errors"
)

// Handler wires the HTTP transport to domain services.
type Handler struct {
	cardsSvc   cards.Service
	deckSvc    deck.Service
	counterSvc counter.Service
	logger     *slog.Logger
}

// NewHandler constructs the root HTTP handler.
func NewHandler(cardsSvc cards.Service, deckSvc deck.Service, counterSvc counter.Service, logger *slog.Logger) *Handler {
	return &Handler{
		cardsSvc:   cardsSvc,
		deckSvc:    deckSvc,
		counterSvc: counterSvc,
		logger:     logger.With("component", "http.handler"),
	}
}

// SearchCommanders handles commander autocomplete searches. Short queries
// return an empty result, never an error.
func (h *Handler) SearchCommanders(c *gin.Context) {
	results, err := h.cardsSvc.SearchCommanders(c.Request.Context(), c.Query("q"))
	if err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadGateway, "search_failed", "commander search failed", err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": results})
}

// RecommendCounters returns validated counter-commanders and answer cards
// for one target commander.
func (h *Handler) RecommendCounters(c *gin.Context) {
	var req counter.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}

	resp, err := h.counterSvc.RecommendCounters(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, httpErrorFor(err, "counter_failed"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ImportDeck normalizes a hosted deck URL or pasted deck list text.
func (h *Handler) ImportDeck(c *gin.Context) {
	var req deck.ImportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}

	resp, err := h.deckSvc.Import(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, httpErrorFor(err, "deck_import_failed"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// SuggestDeckChanges returns add/remove deltas for the user's deck against
// a target commander.
func (h *Handler) SuggestDeckChanges(c *gin.Context) {
	var req counter.SuggestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}

	resp, err := h.counterSvc.SuggestDeckChanges(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, httpErrorFor(err, "deck_suggestions_failed"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// httpErrorFor maps domain error codes to transport statuses. Upstream
// collaborator failures surface as 502 with a stable message; details stay
// in the server logs.
func httpErrorFor(err error, fallbackCode string) *HTTPError {
	switch {
	case apperrors.IsCode(err, "invalid_input"):
		return NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err)
	case apperrors.IsCode(err, "lookup_error"),
		apperrors.IsCode(err, "deck_fetch_error"),
		apperrors.IsCode(err, "llm_error"),
		apperrors.IsCode(err, "completion_parse_error"):
		return NewHTTPError(http.StatusBadGateway, fallbackCode, "upstream service failed", err)
	default:
		return NewHTTPError(http.StatusInternalServerError, fallbackCode, "something went wrong", err)
	}
}

func errMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
