package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"

	"github.com/katalvlaran/wordnet/outcast"
	"github.com/katalvlaran/wordnet/wordnet"
)

const requestIDHeader = "X-Request-ID"

// Handlers serves the wordnet HTTP API.
type Handlers struct {
	wn *wordnet.WordNet
	oc *outcast.Outcast
}

// NewHandlers returns handlers answering from wn and oc.
func NewHandlers(wn *wordnet.WordNet, oc *outcast.Outcast) *Handlers {
	return &Handlers{wn: wn, oc: oc}
}

// HandleHealth handles GET /healthz.
func (h *Handlers) HandleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:  "ok",
		Synsets: h.wn.Len(),
		Nouns:   h.wn.NounCount(),
	})
}

// HandleNoun handles GET /v1/nouns/:noun. Unknown nouns are not an error
// here; the response reports is_noun false.
func (h *Handlers) HandleNoun(c *gin.Context) {
	noun := c.Param("noun")
	ids := h.wn.Synsets(noun)
	if ids == nil {
		ids = []int{}
	}

	c.JSON(http.StatusOK, NounResponse{
		Noun:    noun,
		IsNoun:  h.wn.IsNoun(noun),
		Synsets: ids,
	})
}

// HandleDistance handles GET /v1/distance?a=&b=.
func (h *Handlers) HandleDistance(c *gin.Context) {
	var q PairQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error(), Code: CodeInvalidRequest})
		return
	}

	d, err := h.wn.Distance(q.A, q.B)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, DistanceResponse{A: q.A, B: q.B, Distance: d})
}

// HandleSAP handles GET /v1/sap?a=&b=.
func (h *Handlers) HandleSAP(c *gin.Context) {
	var q PairQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error(), Code: CodeInvalidRequest})
		return
	}

	s, err := h.wn.Ancestor(q.A, q.B)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, SAPResponse{
		A:        q.A,
		B:        q.B,
		Ancestor: s.Label(),
		SynsetID: s.ID,
		Gloss:    s.Gloss,
	})
}

// HandleOutcast handles POST /v1/outcast.
func (h *Handlers) HandleOutcast(c *gin.Context) {
	var req OutcastRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error(), Code: CodeInvalidRequest})
		return
	}

	odd, err := h.oc.OutcastContext(c.Request.Context(), req.Nouns)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, OutcastResponse{Outcast: odd})
}

// fail maps a query error to a status code and error body.
func (h *Handlers) fail(c *gin.Context, err error) {
	status, code := http.StatusInternalServerError, CodeInternal
	switch {
	case errors.Is(err, wordnet.ErrNotNoun):
		status, code = http.StatusNotFound, CodeNotANoun
	case errors.Is(err, wordnet.ErrInvalidArgument), errors.Is(err, outcast.ErrNoNouns):
		status, code = http.StatusBadRequest, CodeInvalidRequest
	case errors.Is(err, outcast.ErrDisconnected), errors.Is(err, wordnet.ErrNoCommonAncestor):
		status, code = http.StatusUnprocessableEntity, CodeDisconnected
	}

	if status == http.StatusInternalServerError {
		ctxzap.Extract(c.Request.Context()).Error("query failed", zap.Error(err))
	}
	c.JSON(status, ErrorResponse{Error: err.Error(), Code: code})
}

// getOrCreateRequestID returns the client's X-Request-ID or a new uuid,
// echoing it on the response.
func getOrCreateRequestID(c *gin.Context) string {
	requestID := c.GetHeader(requestIDHeader)
	if requestID == "" {
		requestID = uuid.NewString()
	}
	c.Header(requestIDHeader, requestID)

	return requestID
}
