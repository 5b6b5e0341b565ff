package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errx "github.com/shopassist-poc/server/internal/core/error"
)

// stubResponder returns a canned answer or error and records the queries it saw.
type stubResponder struct {
	answer  string
	err     error
	queries []string
}

func (s *stubResponder) Respond(_ context.Context, query string) (string, error) {
	s.queries = append(s.queries, query)
	if s.err != nil {
		return "", s.err
	}
	return s.answer, nil
}

func doChat(t *testing.T, h http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]string {
	t.Helper()
	var out map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestHandleChat_Success(t *testing.T) {
	stub := &stubResponder{answer: "Your order ORD123 has shipped."}
	h := New(stub).Handler()

	rec := doChat(t, h, `{"query":"where is order ORD123?"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	body := decodeBody(t, rec)
	assert.Equal(t, "Your order ORD123 has shipped.", body["response"])
	assert.NotContains(t, body, "error")
	require.Len(t, stub.queries, 1)
	assert.Equal(t, "where is order ORD123?", stub.queries[0])
}

func TestHandleChat_InvalidInput(t *testing.T) {
	stub := &stubResponder{err: errx.InvalidInput()}
	h := New(stub).Handler()

	rec := doChat(t, h, `{"query":"   "}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, errx.InvalidInputMessage, body["error"])
	assert.NotContains(t, body, "response")
}

func TestHandleChat_UpstreamUnavailable(t *testing.T) {
	stub := &stubResponder{err: errx.WrapUpstream(errors.New("connection refused"))}
	h := New(stub).Handler()

	rec := doChat(t, h, `{"query":"hello"}`)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, errx.UpstreamUnavailableMessage, body["error"])
	// The raw upstream failure never leaks to the client.
	assert.NotContains(t, rec.Body.String(), "connection refused")
}

func TestHandleChat_UnexpectedErrorIs500(t *testing.T) {
	stub := &stubResponder{err: errors.New("boom")}
	h := New(stub).Handler()

	rec := doChat(t, h, `{"query":"hello"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, errx.SystemErrorMessage, body["error"])
	assert.NotContains(t, rec.Body.String(), "boom")
}

func TestHandleChat_MalformedBody(t *testing.T) {
	stub := &stubResponder{answer: "never reached"}
	h := New(stub).Handler()

	rec := doChat(t, h, `{"query":`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody(t, rec)
	assert.NotEmpty(t, body["error"])
	assert.Empty(t, stub.queries)
}

func TestHandleChat_MethodNotAllowed(t *testing.T) {
	h := New(&stubResponder{}).Handler()

	req := httptest.NewRequest(http.MethodGet, "/chat", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestHandleHealth(t *testing.T) {
	h := New(&stubResponder{}).Handler()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "ok", body["status"])
}

func TestRecoveryMiddleware(t *testing.T) {
	h := chain(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("unexpected")
	}), loggingMiddleware, recoveryMiddleware)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decodeBody(t, rec)
	assert.NotEmpty(t, body["error"])
}
