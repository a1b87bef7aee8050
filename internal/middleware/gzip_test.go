package middleware

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"
)

func compressString(t *testing.T, s string) []byte {
	t.Helper()

	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	_, err := gz.Write([]byte(s))
	require.NoError(t, err)
	require.NoError(t, gz.Close())

	return buf.Bytes()
}

func decompressBytes(t *testing.T, data []byte) string {
	t.Helper()

	reader, err := gzip.NewReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer reader.Close()

	result, err := io.ReadAll(reader)
	require.NoError(t, err)

	return string(result)
}

func TestGzipMiddleware_CompressResponse(t *testing.T) {
	tests := []struct {
		name           string
		contentType    string
		status         int
		acceptEncoding string
		body           string
		shouldCompress bool
	}{
		{
			name:           "compress JSON response",
			contentType:    "application/json",
			status:         http.StatusOK,
			acceptEncoding: "gzip",
			body:           `{"shortCode":"abc123"}`,
			shouldCompress: true,
		},
		{
			name:           "compress JSON with charset",
			contentType:    "application/json; charset=utf-8",
			status:         http.StatusOK,
			acceptEncoding: "gzip, deflate",
			body:           `{"shortCode":"abc123"}`,
			shouldCompress: true,
		},
		{
			name:           "compress not found page",
			contentType:    "text/html; charset=utf-8",
			status:         http.StatusNotFound,
			acceptEncoding: "gzip",
			body:           "<html><body>Link Not Found</body></html>",
			shouldCompress: true,
		},
		{
			name:           "do not compress conflict error",
			contentType:    "application/json",
			status:         http.StatusConflict,
			acceptEncoding: "gzip",
			body:           `{"error":"This custom slug is already taken"}`,
			shouldCompress: false,
		},
		{
			name:           "do not compress without Accept-Encoding",
			contentType:    "application/json",
			status:         http.StatusOK,
			acceptEncoding: "",
			body:           `{"shortCode":"abc123"}`,
			shouldCompress: false,
		},
		{
			name:           "do not compress text/plain",
			contentType:    "text/plain",
			status:         http.StatusOK,
			acceptEncoding: "gzip",
			body:           "plain text response",
			shouldCompress: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", tt.contentType)
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})
			wrapped := GzipMiddleware(zaptest.NewLogger(t))(handler)

			req := httptest.NewRequest(http.MethodPost, "/api/shorten", nil)
			if tt.acceptEncoding != "" {
				req.Header.Set("Accept-Encoding", tt.acceptEncoding)
			}
			rec := httptest.NewRecorder()

			// Act
			wrapped.ServeHTTP(rec, req)

			// Assert
			assert.Equal(t, tt.status, rec.Code)
			if tt.shouldCompress {
				assert.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))
				assert.Equal(t, tt.body, decompressBytes(t, rec.Body.Bytes()))
			} else {
				assert.Empty(t, rec.Header().Get("Content-Encoding"))
				assert.Equal(t, tt.body, rec.Body.String())
			}
		})
	}
}

func TestGzipMiddleware_RedirectUntouched(t *testing.T) {
	// Arrange
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "https://example.com", http.StatusFound)
	})
	wrapped := GzipMiddleware(zaptest.NewLogger(t))(handler)

	req := httptest.NewRequest(http.MethodGet, "/abc123", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()

	// Act
	wrapped.ServeHTTP(rec, req)

	// Assert
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "https://example.com", rec.Header().Get("Location"))
	assert.Empty(t, rec.Header().Get("Content-Encoding"))
	assert.Equal(t, "Accept-Encoding", rec.Header().Get("Vary"))
}

func TestGzipMiddleware_DecompressRequest(t *testing.T) {
	tests := []struct {
		name            string
		requestBody     string
		contentEncoding string
		compress        bool
		expectedStatus  int
	}{
		{
			name:            "decompress gzip request",
			requestBody:     `{"url":"example.com","customSlug":"my-link"}`,
			contentEncoding: "gzip",
			compress:        true,
			expectedStatus:  http.StatusOK,
		},
		{
			name:            "pass through plain request",
			requestBody:     `{"url":"example.com"}`,
			contentEncoding: "",
			compress:        false,
			expectedStatus:  http.StatusOK,
		},
		{
			name:            "reject invalid gzip data",
			requestBody:     "not gzip data",
			contentEncoding: "gzip",
			compress:        false,
			expectedStatus:  http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			var receivedBody string
			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				body, err := io.ReadAll(r.Body)
				require.NoError(t, err)
				receivedBody = string(body)
				w.WriteHeader(http.StatusOK)
			})
			wrapped := GzipMiddleware(zaptest.NewLogger(t))(handler)

			var body io.Reader = strings.NewReader(tt.requestBody)
			if tt.compress {
				body = bytes.NewReader(compressString(t, tt.requestBody))
			}
			req := httptest.NewRequest(http.MethodPost, "/api/shorten", body)
			if tt.contentEncoding != "" {
				req.Header.Set("Content-Encoding", tt.contentEncoding)
			}
			rec := httptest.NewRecorder()

			// Act
			wrapped.ServeHTTP(rec, req)

			// Assert
			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedStatus == http.StatusOK {
				assert.Equal(t, tt.requestBody, receivedBody)
			}
		})
	}
}

func TestGzipMiddleware_WriterReuse(t *testing.T) {
	// Writer из пула должен корректно переиспользоваться между запросами
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"path":"` + r.URL.Path + `"}`))
	})
	wrapped := GzipMiddleware(zap.NewNop())(handler)

	for _, path := range []string{"/one", "/two", "/three"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.Header.Set("Accept-Encoding", "gzip")
		rec := httptest.NewRecorder()

		wrapped.ServeHTTP(rec, req)

		assert.Equal(t, `{"path":"`+path+`"}`, decompressBytes(t, rec.Body.Bytes()))
	}
}

func TestShouldCompress(t *testing.T) {
	tests := []struct {
		contentType string
		expected    bool
	}{
		{"application/json", true},
		{"application/json; charset=utf-8", true},
		{"text/html", true},
		{"TEXT/HTML", true},
		{"text/plain", false},
		{"image/png", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.contentType, func(t *testing.T) {
			assert.Equal(t, tt.expected, shouldCompress(tt.contentType))
		})
	}
}

func TestGzipMiddleware_LogsDecompressionError(t *testing.T) {
	// Arrange
	observedCore, observedLogs := observer.New(zapcore.WarnLevel)
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	wrapped := GzipMiddleware(zap.New(observedCore))(handler)

	req := httptest.NewRequest(http.MethodPost, "/api/shorten", strings.NewReader("invalid gzip data"))
	req.Header.Set("Content-Encoding", "gzip")
	rec := httptest.NewRecorder()

	// Act
	wrapped.ServeHTTP(rec, req)

	// Assert
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	entries := observedLogs.FilterMessage("Failed to decompress request body").All()
	require.Len(t, entries, 1)
	assert.Contains(t, entries[0].ContextMap(), "error")
}
