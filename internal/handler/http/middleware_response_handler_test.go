package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponseWriter_WriteHeaderOnce(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := &responseWriter{ResponseWriter: rec}

	rw.WriteHeader(http.StatusTeapot)
	rw.WriteHeader(http.StatusInternalServerError)

	assert.Equal(t, http.StatusTeapot, rw.Status())
	assert.Equal(t, http.StatusTeapot, rec.Code)
}

func TestResponseWriter_WriteImpliesOK(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := &responseWriter{ResponseWriter: rec}

	n, err := rw.Write([]byte("abc"))
	require.NoError(t, err)
	_, err = rw.Write([]byte("de"))
	require.NoError(t, err)

	assert.Equal(t, 3, n)
	assert.Equal(t, http.StatusOK, rw.Status())
	assert.Equal(t, 5, rw.size)
	assert.Equal(t, "abcde", rec.Body.String())
}

func TestResponseWriter_StatusWithoutWrites(t *testing.T) {
	rw := &responseWriter{ResponseWriter: httptest.NewRecorder()}
	assert.Equal(t, http.StatusOK, rw.Status())
}

func TestResponseWriter_Unwrap(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := &responseWriter{ResponseWriter: rec}
	assert.Same(t, rec, rw.Unwrap())
}
