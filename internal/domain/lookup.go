package domain

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// Operation names a geocoding call carried by a lookup request.
type Operation string

const (
	OpInfo       Operation = "info"
	OpLngLat     Operation = "lnglat"
	OpReverse    Operation = "reverse"
	OpReverseAll Operation = "reverse_all"
	OpAccuracy   Operation = "accuracy"
)

// Valid reports whether the operation is one the resolver understands.
func (o Operation) Valid() bool {
	switch o {
	case OpInfo, OpLngLat, OpReverse, OpReverseAll, OpAccuracy:
		return true
	}
	return false
}

// RawMessage is an unprocessed message from the request topic.
type RawMessage struct {
	Key       []byte
	Value     []byte
	Headers   map[string]string
	Topic     string
	Partition int
	Offset    int64
	Timestamp time.Time
	Commit    func(ctx context.Context) error
}

// OutputMessage is a serialized message ready for the result topic.
type OutputMessage struct {
	Key     []byte
	Value   []byte
	Headers map[string]string
}

// LookupRequest asks for exactly one geocoding operation.
type LookupRequest struct {
	ID        string    `json:"id"`
	Operation Operation `json:"operation"`
	Address   []string  `json:"address,omitempty"`
	Lng       float64   `json:"lng"`
	Lat       float64   `json:"lat"`
	Level     int       `json:"level,omitempty"`
}

// LookupError is the wire form of a failed lookup.
type LookupError struct {
	Kind    string `json:"kind"`
	Code    int    `json:"code,omitempty"`
	Message string `json:"message"`
}

// LookupResult answers a LookupRequest. Exactly one of the payload fields is
// set for a successful lookup; Error is set otherwise. Placemarks is null
// unless the operation is reverse_all, where an empty result is [].
type LookupResult struct {
	ID         string       `json:"id"`
	Operation  Operation    `json:"operation"`
	Placemark  *Placemark   `json:"placemark,omitempty"`
	LngLat     *LngLat      `json:"lnglat,omitempty"`
	Placemarks []Placemark  `json:"placemarks"`
	Accuracy   string       `json:"accuracy_description,omitempty"`
	Error      *LookupError `json:"error,omitempty"`
	ResolvedAt time.Time    `json:"resolved_at"`
}

// ParseLookupRequest decodes a request message. The message key is used as
// the request ID when the payload has none.
func ParseLookupRequest(raw RawMessage) (LookupRequest, error) {
	var req LookupRequest
	if err := json.Unmarshal(raw.Value, &req); err != nil {
		return LookupRequest{}, fmt.Errorf("decode lookup request: %w", err)
	}
	if req.ID == "" {
		req.ID = string(raw.Key)
	}
	if !req.Operation.Valid() {
		return LookupRequest{}, fmt.Errorf("%w: unknown operation %q", ErrInvalidArgument, req.Operation)
	}
	return req, nil
}

// NewLookupResult starts a result for the given request, stamped with the
// current time.
func NewLookupResult(req LookupRequest) LookupResult {
	return LookupResult{
		ID:         req.ID,
		Operation:  req.Operation,
		ResolvedAt: clock.Now().UTC(),
	}
}

// NewLookupError converts a geocoder error to its wire form.
func NewLookupError(err error) *LookupError {
	le := &LookupError{Kind: ErrorKind(err), Message: err.Error()}
	var perr *ProviderError
	if errors.As(err, &perr) {
		le.Code = perr.Code
		le.Message = perr.Message
	}
	return le
}

// SerializeLookupResult marshals a result into an output message keyed by
// the request ID.
func SerializeLookupResult(r LookupResult) (OutputMessage, error) {
	data, err := json.Marshal(r)
	if err != nil {
		return OutputMessage{}, fmt.Errorf("serialize lookup result: %w", err)
	}
	return OutputMessage{
		Key:   []byte(r.ID),
		Value: data,
		Headers: map[string]string{
			"operation":   string(r.Operation),
			"resolved_at": r.ResolvedAt.Format(time.RFC3339),
		},
	}, nil
}
