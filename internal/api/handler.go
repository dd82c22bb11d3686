// Package api serves the reading session over HTTP.
package api

import (
	"errors"
	"log/slog"
	"net/http"
	"unicode/utf8"

	"github.com/labstack/echo/v4"

	"github.com/arcanaland/tarotpick/internal/deck"
	"github.com/arcanaland/tarotpick/internal/session"
)

// DefaultCount is the spread size used when a request does not name one
const DefaultCount = session.ThreeCards

// MaxQuestionLength bounds the question a client may send, in characters
const MaxQuestionLength = 500

type Handler struct {
	sess   *session.Session
	logger *slog.Logger
}

func NewHandler(sess *session.Session, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{sess: sess, logger: logger}
}

// New returns an echo server with middleware and routes installed
func New(sess *session.Session, logger *slog.Logger) *echo.Echo {
	if logger == nil {
		logger = slog.Default()
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(RequestIDMiddleware())
	e.Use(LoggingMiddleware(logger))

	NewHandler(sess, logger).Register(e)
	return e
}

func (h *Handler) Register(e *echo.Echo) {
	e.GET("/healthz", h.Healthz)
	e.GET("/v1/deck", h.ListCards)
	e.GET("/v1/deck/:id", h.GetCard)
	e.POST("/v1/readings", h.Draw)
	e.GET("/v1/readings", h.History)
	e.GET("/v1/readings/latest", h.Latest)
}

func (h *Handler) Healthz(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func (h *Handler) ListCards(c echo.Context) error {
	d := h.sess.Deck()
	cards := d.Cards()
	resp := DeckResponse{
		Shape: d.Shape().String(),
		Size:  d.Size(),
		Cards: make([]CardResponse, len(cards)),
	}
	for i, cd := range cards {
		resp.Cards[i] = toCard(cd)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetCard(c echo.Context) error {
	cd, err := h.sess.Deck().Card(c.Param("id"))
	if err != nil {
		return h.mapError(c, err)
	}
	return c.JSON(http.StatusOK, toCard(cd))
}

func (h *Handler) Draw(c echo.Context) error {
	var req DrawRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}
	if utf8.RuneCountInString(req.Question) > MaxQuestionLength {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "question must be at most 500 characters"})
	}

	count := DefaultCount
	if req.Count != nil {
		count = *req.Count
	}
	if err := session.ValidSpread(count); err != nil {
		return h.mapError(c, err)
	}

	r, err := h.sess.Ask(req.Question, count)
	if err != nil {
		return h.mapError(c, err)
	}

	requestID, _ := c.Get("request_id").(string)
	return c.JSON(http.StatusCreated, toReading(r, requestID))
}

func (h *Handler) History(c echo.Context) error {
	readings := h.sess.History()
	resp := HistoryResponse{Readings: make([]ReadingResponse, len(readings))}
	for i, r := range readings {
		resp.Readings[i] = toReading(r, "")
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *Handler) Latest(c echo.Context) error {
	r, ok := h.sess.Latest()
	if !ok {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "no readings yet"})
	}
	return c.JSON(http.StatusOK, toReading(r, ""))
}

func (h *Handler) mapError(c echo.Context, err error) error {
	requestID, _ := c.Get("request_id").(string)

	switch {
	case errors.Is(err, deck.ErrInvalidArgument):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, deck.ErrCardNotFound), errors.Is(err, deck.ErrInvalidCardID):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	default:
		h.logger.Error("internal error", "request_id", requestID, "error", err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}
