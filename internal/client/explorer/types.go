package explorer

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/Ashutosh-Ahirwar/base-activity/internal/types/business"
)

const noTransactionsText = "no transactions found"

var (
	// ErrInvalidEnvelope is returned for 2xx bodies that carry neither a data envelope
	// nor top-level status/message fields.
	ErrInvalidEnvelope = errors.New("invalid API response structure")

	// ErrMalformedResult is returned by Response.Transactions when result is not a list.
	ErrMalformedResult = errors.New("result is not a transaction list")
)

// Response is the Etherscan-style payload `{status, message, result}`.
type Response struct {
	Status  string
	Message string
	Result  json.RawMessage
}

// Transactions decodes result as a transaction list. A missing or null result yields an
// empty list; anything other than a JSON array yields ErrMalformedResult.
func (r *Response) Transactions() ([]business.TransactionRecord, error) {
	if r == nil || isNull(r.Result) {
		return nil, nil
	}
	trimmed := bytes.TrimSpace(r.Result)
	if trimmed[0] != '[' {
		return nil, ErrMalformedResult
	}
	var txs []business.TransactionRecord
	if err := json.Unmarshal(trimmed, &txs); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResult, err)
	}
	return txs, nil
}

// ResultKind tags the outcome of a fetch.
type ResultKind int

const (
	ResultSuccess ResultKind = iota
	ResultEmpty
	ResultFailure
)

func (k ResultKind) String() string {
	switch k {
	case ResultSuccess:
		return "success"
	case ResultEmpty:
		return "empty"
	case ResultFailure:
		return "failure"
	default:
		return fmt.Sprintf("ResultKind(%d)", int(k))
	}
}

// Result is the tagged outcome of Fetcher.Fetch: Success carries a Response, Empty carries
// nothing (the source had no data for the request), Failure carries the reason.
type Result struct {
	Kind     ResultKind
	Response *Response
	Reason   error
}

// Success wraps a decoded payload.
func Success(resp *Response) Result {
	return Result{Kind: ResultSuccess, Response: resp}
}

// Empty is the "no data" outcome.
func Empty() Result {
	return Result{Kind: ResultEmpty}
}

// Failure wraps the final error of a fetch.
func Failure(err error) Result {
	return Result{Kind: ResultFailure, Reason: err}
}

// Transactions returns the decoded transaction list of a successful result and nil otherwise.
func (r Result) Transactions() ([]business.TransactionRecord, error) {
	if r.Kind != ResultSuccess {
		return nil, nil
	}
	return r.Response.Transactions()
}

// looseString accepts JSON strings, numbers and booleans; some explorers return status as a number.
type looseString string

func (s *looseString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if isNull(b) {
		*s = ""
		return nil
	}
	if b[0] == '"' {
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			return err
		}
		*s = looseString(str)
		return nil
	}
	*s = looseString(b)
	return nil
}

type envelope struct {
	Status  looseString     `json:"status"`
	Message looseString     `json:"message"`
	Result  json.RawMessage `json:"result"`
}

type wrapper struct {
	envelope
	Data json.RawMessage `json:"data"`
}

func (e envelope) response() *Response {
	return &Response{Status: string(e.Status), Message: string(e.Message), Result: e.Result}
}

// APIError is a business-level NOTOK answer that is not the "no transactions" case.
type APIError struct {
	Message string
	Result  string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API Error: %s (%s)", e.Result, e.Message)
}

// decodePayload interprets a 2xx body. The payload lives under `data`; when that is absent
// the wrapper itself is returned as-is if it carries status and message. Only a `data`
// payload is checked for NOTOK.
func decodePayload(body []byte) (*Response, error) {
	var w wrapper
	if err := json.Unmarshal(body, &w); err != nil {
		return nil, fmt.Errorf("failed to decode response body: %w", err)
	}

	switch {
	case !isNull(w.Data):
		var inner envelope
		if err := json.Unmarshal(w.Data, &inner); err != nil {
			return nil, fmt.Errorf("%w: data: %v", ErrInvalidEnvelope, err)
		}
		return checkNotOK(inner.response())
	case w.Status != "" && w.Message != "":
		return w.envelope.response(), nil
	default:
		return nil, ErrInvalidEnvelope
	}
}

// checkNotOK turns a NOTOK answer into an empty list when it reports no transactions
// and into an *APIError otherwise.
func checkNotOK(resp *Response) (*Response, error) {
	if resp.Status != "0" || resp.Message != "NOTOK" {
		return resp, nil
	}
	text := resultText(resp.Result)
	if strings.Contains(strings.ToLower(text), noTransactionsText) {
		return &Response{Status: resp.Status, Message: resp.Message, Result: json.RawMessage("[]")}, nil
	}
	return nil, &APIError{Message: resp.Message, Result: text}
}

func resultText(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}

func isNull(raw []byte) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}
