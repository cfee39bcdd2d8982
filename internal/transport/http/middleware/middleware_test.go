package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/you-humble/knowledge-archive/platform/logger"
)

func TestRequestID(t *testing.T) {
	t.Parallel()

	existing := uuid.NewString()

	tests := []struct {
		name   string
		header string
		assert func(t *testing.T, got, echoed string)
	}{
		{
			name:   "keeps a valid caller id",
			header: existing,
			assert: func(t *testing.T, got, echoed string) {
				assert.Equal(t, existing, got)
				assert.Equal(t, existing, echoed)
			},
		},
		{
			name: "generates an id when missing",
			assert: func(t *testing.T, got, echoed string) {
				_, err := uuid.Parse(got)
				require.NoError(t, err)
				assert.Equal(t, got, echoed)
			},
		},
		{
			name:   "replaces a malformed id",
			header: "<script>",
			assert: func(t *testing.T, got, echoed string) {
				assert.NotEqual(t, "<script>", got)
				_, err := uuid.Parse(got)
				require.NoError(t, err)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var got string
			h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got = logger.RequestID(r.Context())
			}))

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(RequestIDHeader, tt.header)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			tt.assert(t, got, rec.Header().Get(RequestIDHeader))
		})
	}
}

func TestLoggingPassesThrough(t *testing.T) {
	t.Parallel()

	h := Logging(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("short and stout"))
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/pot", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, "short and stout", rec.Body.String())
}

func TestChainLogsRecoveredPanic(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.DebugLevel)
	t.Cleanup(logger.Replace(zap.New(core)))

	tests := []struct {
		name    string
		path    string
		handler http.HandlerFunc
		status  int
		level   zapcore.Level
	}{
		{
			name:    "panic is logged as a server error",
			path:    "/chain/boom",
			handler: func(http.ResponseWriter, *http.Request) { panic("boom") },
			status:  http.StatusInternalServerError,
			level:   zapcore.ErrorLevel,
		},
		{
			name:    "regular request is logged as info",
			path:    "/chain/ok",
			handler: func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) },
			status:  http.StatusOK,
			level:   zapcore.InfoLevel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var h http.Handler = tt.handler
			chain := Chain()
			for i := len(chain) - 1; i >= 0; i-- {
				h = chain[i](h)
			}

			rec := httptest.NewRecorder()
			require.NotPanics(t, func() {
				h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))
			})

			assert.Equal(t, tt.status, rec.Code)
			id := rec.Header().Get(RequestIDHeader)
			require.NotEmpty(t, id)

			entries := logs.FilterField(zap.String("path", tt.path)).All()
			require.Len(t, entries, 1)
			assert.Equal(t, tt.level, entries[0].Level)
			assert.Equal(t, int64(tt.status), entries[0].ContextMap()["status"])
			assert.Equal(t, id, entries[0].ContextMap()["request_id"])
		})
	}
}
