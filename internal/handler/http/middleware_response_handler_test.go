package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResponseWriter_WriteHeaderOnce(t *testing.T) {
	rr := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rr}

	w.WriteHeader(http.StatusCreated)
	w.WriteHeader(http.StatusInternalServerError)

	assert.Equal(t, http.StatusCreated, w.status)
	assert.Equal(t, http.StatusCreated, rr.Code)
}

func TestResponseWriter_Write(t *testing.T) {
	rr := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rr}

	n, err := w.Write([]byte(`{"id":`))
	assert.NoError(t, err)
	assert.Equal(t, 6, n)
	_, _ = w.Write([]byte(`"1"}`))

	assert.Equal(t, http.StatusOK, w.status, "Write implies 200")
	assert.Equal(t, 10, w.size)
	assert.Equal(t, `{"id":"1"}`, rr.Body.String())
}

func TestResponseWriter_HeadersReachUnderlyingWriter(t *testing.T) {
	rr := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rr}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusNoContent)

	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.Zero(t, w.size)
	assert.Same(t, http.ResponseWriter(rr), w.Unwrap())
}
