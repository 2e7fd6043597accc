package api_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-json-experiment/json"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/jsonops/api"
)

func TestRequestID(t *testing.T) {
	t.Parallel()

	h := newHandler(t)

	t.Run("echoed", func(t *testing.T) {
		t.Parallel()

		rec := do(t, h, http.MethodGet, "/healthz", "", http.Header{api.HeaderRequestID: {"abc-123"}})
		assert.Equal(t, "abc-123", rec.Header().Get(api.HeaderRequestID))
	})

	t.Run("generated", func(t *testing.T) {
		t.Parallel()

		rec := do(t, h, http.MethodGet, "/healthz", "", nil)

		_, err := uuid.Parse(rec.Header().Get(api.HeaderRequestID))
		require.NoError(t, err)
	})

	t.Run("in context", func(t *testing.T) {
		t.Parallel()

		var got string

		inner := http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
			got = api.GetRequestID(r.Context())
		})

		do(t, api.RequestID(inner), http.MethodGet, "/", "", http.Header{api.HeaderRequestID: {"xyz"}})
		assert.Equal(t, "xyz", got)
	})
}

func TestRecover(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	logger := slog.New(slog.NewTextHandler(&buf, nil))

	boom := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})

	rec := do(t, api.Recover(logger)(boom), http.MethodPost, "/", "", nil)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t,
		`{"error":"Internal server error occurred while processing the request.","details":"boom"}`,
		rec.Body.String())
	assert.Contains(t, buf.String(), "panic recovered")
}

func TestRecoverAbort(t *testing.T) {
	t.Parallel()

	abort := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic(http.ErrAbortHandler)
	})

	assert.PanicsWithValue(t, http.ErrAbortHandler, func() {
		do(t, api.Recover(slog.New(slog.DiscardHandler))(abort), http.MethodGet, "/", "", nil)
	})
}

func TestLogRequests(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	teapot := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	do(t, api.LogRequests(logger)(teapot), http.MethodGet, "/brew", "", nil)

	var line struct {
		Msg    string `json:"msg"`
		Method string `json:"method"`
		Path   string `json:"path"`
		Status int    `json:"status"`
	}

	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &line))
	assert.Equal(t, "request", line.Msg)
	assert.Equal(t, http.MethodGet, line.Method)
	assert.Equal(t, "/brew", line.Path)
	assert.Equal(t, http.StatusTeapot, line.Status)
}

func TestSwaggerJSON(t *testing.T) {
	t.Parallel()

	h := newHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/swagger.json", http.NoBody)
	req.Host = "jsonops.example.com"

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "no-cache, no-store, must-revalidate", rec.Header().Get("Cache-Control"))

	var doc struct {
		Paths       map[string]map[string]any `json:"paths"`
		Definitions map[string]any            `json:"definitions"`
		Swagger     string                    `json:"swagger"`
		Host        string                    `json:"host"`
		BasePath    string                    `json:"basePath"`
		Schemes     []string                  `json:"schemes"`
	}

	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
	assert.Equal(t, "2.0", doc.Swagger)
	assert.Equal(t, "jsonops.example.com", doc.Host)
	assert.Equal(t, "/api", doc.BasePath)
	assert.Equal(t, []string{"https"}, doc.Schemes)

	for _, route := range []string{
		"/add-property", "/join", "/merge", "/generate-schema",
		"/serialize", "/deserialize", "/to-xml",
	} {
		assert.Contains(t, doc.Paths[route], "post", route)
	}

	assert.Contains(t, doc.Paths["/version"], "get")

	for _, def := range []string{"AddPropertyRequest", "ToXMLRequest", "ErrorResponse", "VersionInfo"} {
		assert.Contains(t, doc.Definitions, def)
	}
}

func TestSwaggerYAML(t *testing.T) {
	t.Parallel()

	rec := do(t, newHandler(t), http.MethodGet, "/api/swagger.yaml", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/yaml", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "basePath: /api")
}

func TestSwaggerUI(t *testing.T) {
	t.Parallel()

	rec := do(t, newHandler(t), http.MethodGet, "/api/swagger", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `url: "/api/swagger.json"`)
}

func TestDocumentDefinitions(t *testing.T) {
	t.Parallel()

	doc, err := api.NewDocument("v1.2.3")
	require.NoError(t, err)

	assert.Equal(t, "v1.2.3", doc.Info.Version)

	req, ok := doc.Definitions["GenerateSchemaRequest"]
	require.True(t, ok)
	assert.Contains(t, req.Properties, "sample")
	assert.Contains(t, req.Properties, "treatAllAsStrings")
}
