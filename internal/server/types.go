package server

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	// Error is the error message.
	Error string `json:"error"`

	// Code is a stable machine-readable error code.
	Code string `json:"code,omitempty"`
}

// Error codes.
const (
	CodeInvalidRequest = "INVALID_REQUEST"
	CodeNotANoun       = "NOT_A_NOUN"
	CodeDisconnected   = "DISCONNECTED"
	CodeInternal       = "INTERNAL"
)

// HealthResponse is returned by GET /healthz.
type HealthResponse struct {
	Status  string `json:"status"`
	Synsets int    `json:"synsets"`
	Nouns   int    `json:"nouns"`
}

// NounResponse is returned by GET /v1/nouns/:noun.
type NounResponse struct {
	Noun    string `json:"noun"`
	IsNoun  bool   `json:"is_noun"`
	Synsets []int  `json:"synsets"`
}

// PairQuery holds the a and b query parameters.
type PairQuery struct {
	A string `form:"a" binding:"required"`
	B string `form:"b" binding:"required"`
}

// DistanceResponse is returned by GET /v1/distance.
type DistanceResponse struct {
	A        string `json:"a"`
	B        string `json:"b"`
	Distance int    `json:"distance"`
}

// SAPResponse is returned by GET /v1/sap.
type SAPResponse struct {
	A        string `json:"a"`
	B        string `json:"b"`
	Ancestor string `json:"ancestor"`
	SynsetID int    `json:"synset_id"`
	Gloss    string `json:"gloss,omitempty"`
}

// OutcastRequest is the body of POST /v1/outcast.
type OutcastRequest struct {
	Nouns []string `json:"nouns" binding:"required,min=1,dive,required"`
}

// OutcastResponse is returned by POST /v1/outcast.
type OutcastResponse struct {
	Outcast string `json:"outcast"`
}
