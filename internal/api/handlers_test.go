package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hammamikhairi/cookbook/internal/api"
	"github.com/hammamikhairi/cookbook/internal/engine"
	"github.com/hammamikhairi/cookbook/internal/logger"
	"github.com/hammamikhairi/cookbook/internal/storage"
)

// helpers

func setupRouter(t *testing.T) http.Handler {
	t.Helper()
	log := logger.New(logger.LevelOff, nil)
	eng := engine.New(storage.NewMemoryStore(log), log)
	return api.NewRouter(eng, log, nil)
}

func do(t *testing.T, router http.Handler, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		require.NoError(t, json.NewEncoder(&buf).Encode(b))
	}
	req := httptest.NewRequest(method, target, &buf)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func errorMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body["error"]
}

func summaryPath(name string) string {
	return "/summary?name=" + url.QueryEscape(name)
}

// ---------------------------------------------------------------------------
// GET /healthz
// ---------------------------------------------------------------------------

func TestHealthz(t *testing.T) {
	t.Parallel()
	router := setupRouter(t)

	rec := do(t, router, http.MethodGet, "/healthz", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}

func TestRequestIDIsEchoed(t *testing.T) {
	t.Parallel()
	router := setupRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("X-Request-Id", "abc-123")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, "abc-123", rec.Header().Get("X-Request-Id"))
}

// ---------------------------------------------------------------------------
// POST /parse
// ---------------------------------------------------------------------------

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		input      string
		wantStatus int
		wantMsg    string
	}{
		{"hyphen and underscore", "mi-lk_", http.StatusOK, "Mi Lk"},
		{"mixed case", "beef--WELLINGTON", http.StatusOK, "Beef Wellington"},
		{"nothing left", "!!!", http.StatusBadRequest, ""},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			router := setupRouter(t)

			rec := do(t, router, http.MethodPost, "/parse", map[string]string{"input": tc.input})
			require.Equal(t, tc.wantStatus, rec.Code)

			if tc.wantStatus != http.StatusOK {
				assert.Equal(t, "this string is cooked", errorMessage(t, rec))
				return
			}
			var resp map[string]string
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
			assert.Equal(t, tc.wantMsg, resp["msg"])
		})
	}
}

func TestParse_InvalidBody(t *testing.T) {
	t.Parallel()
	router := setupRouter(t)

	rec := do(t, router, http.MethodPost, "/parse", "{not json")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid request body", errorMessage(t, rec))
}

// ---------------------------------------------------------------------------
// POST /entry
// ---------------------------------------------------------------------------

func TestCreateEntry(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantReason string
	}{
		{"ingredient", `{"type":"ingredient","name":"flour","cookTime":5}`, http.StatusOK, ""},
		{"ingredient zero cook time", `{"type":"ingredient","name":"water","cookTime":0}`, http.StatusOK, ""},
		{"recipe", `{"type":"recipe","name":"batter","requiredItems":[{"name":"flour","quantity":2}]}`, http.StatusOK, ""},
		{"recipe empty items", `{"type":"recipe","name":"air","requiredItems":[]}`, http.StatusOK, ""},
		{"bad type", `{"type":"pizza","name":"x","cookTime":1}`, http.StatusBadRequest, "type must be"},
		{"negative cook time", `{"type":"ingredient","name":"egg","cookTime":-1}`, http.StatusBadRequest, "cookTime"},
		{"string cook time", `{"type":"ingredient","name":"egg","cookTime":"5"}`, http.StatusBadRequest, "cookTime"},
		{"null cook time", `{"type":"ingredient","name":"egg","cookTime":null}`, http.StatusBadRequest, "cookTime"},
		{"items not array", `{"type":"recipe","name":"cake","requiredItems":{"name":"flour"}}`, http.StatusBadRequest, "requiredItems must be an array"},
		{"zero quantity", `{"type":"recipe","name":"cake","requiredItems":[{"name":"flour","quantity":0}]}`, http.StatusBadRequest, "quantity > 0"},
		{"negative quantity", `{"type":"recipe","name":"cake","requiredItems":[{"name":"flour","quantity":-3}]}`, http.StatusBadRequest, "quantity > 0"},
		{"string quantity", `{"type":"recipe","name":"cake","requiredItems":[{"name":"flour","quantity":"2"}]}`, http.StatusBadRequest, "quantity > 0"},
		{"numeric item name", `{"type":"recipe","name":"cake","requiredItems":[{"name":7,"quantity":2}]}`, http.StatusBadRequest, "string name"},
		{"item not object", `{"type":"recipe","name":"cake","requiredItems":["flour"]}`, http.StatusBadRequest, "requiredItems[0]"},
		{"duplicate items", `{"type":"recipe","name":"cake","requiredItems":[{"name":"egg","quantity":1},{"name":"egg","quantity":2}]}`, http.StatusBadRequest, "duplicate"},
		{"numeric type", `{"type":5,"name":"x","cookTime":1}`, http.StatusBadRequest, "type must be"},
		{"missing type", `{"name":"x","cookTime":1}`, http.StatusBadRequest, "type must be"},
		{"numeric name", `{"type":"ingredient","name":7,"cookTime":1}`, http.StatusBadRequest, "name must be a non-empty string"},
		{"missing name", `{"type":"ingredient","cookTime":1}`, http.StatusBadRequest, "name must be a non-empty string"},
		{"numeric type and name", `{"type":1,"name":2}`, http.StatusBadRequest, "type must be"},
		{"malformed json", `{"type":`, http.StatusBadRequest, "invalid request body"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			router := setupRouter(t)

			rec := do(t, router, http.MethodPost, "/entry", tc.body)
			require.Equal(t, tc.wantStatus, rec.Code, rec.Body.String())
			if tc.wantReason == "" {
				assert.Empty(t, rec.Body.String())
				return
			}
			assert.Contains(t, errorMessage(t, rec), tc.wantReason)
		})
	}
}

func TestCreateEntry_DuplicateName(t *testing.T) {
	t.Parallel()
	router := setupRouter(t)

	rec := do(t, router, http.MethodPost, "/entry", `{"type":"ingredient","name":"egg","cookTime":2}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, router, http.MethodPost, "/entry", `{"type":"recipe","name":"egg","requiredItems":[]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, errorMessage(t, rec), "must be unique")
}

// ---------------------------------------------------------------------------
// GET /summary
// ---------------------------------------------------------------------------

func seedPancake(t *testing.T, router http.Handler) {
	t.Helper()
	for _, body := range []string{
		`{"type":"ingredient","name":"flour","cookTime":5}`,
		`{"type":"ingredient","name":"egg","cookTime":2}`,
		`{"type":"recipe","name":"batter","requiredItems":[{"name":"flour","quantity":2},{"name":"egg","quantity":1}]}`,
		`{"type":"recipe","name":"pancake","requiredItems":[{"name":"batter","quantity":3}]}`,
		`{"type":"recipe","name":"crepe","requiredItems":[{"name":"batter","quantity":1},{"name":"butter","quantity":1}]}`,
	} {
		rec := do(t, router, http.MethodPost, "/entry", body)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	}
}

func TestSummary_Success(t *testing.T) {
	t.Parallel()
	router := setupRouter(t)
	seedPancake(t, router)

	rec := do(t, router, http.MethodGet, summaryPath("pancake"), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	assert.JSONEq(t, `{
		"name": "pancake",
		"cookTime": 36,
		"ingredients": [
			{"name": "flour", "quantity": 6},
			{"name": "egg", "quantity": 3}
		]
	}`, rec.Body.String())
}

func TestSummary_Errors(t *testing.T) {
	t.Parallel()
	router := setupRouter(t)
	seedPancake(t, router)

	tests := []struct {
		name       string
		recipe     string
		wantReason string
	}{
		{"not found", "waffle", "recipe not found"},
		{"missing name param", "", "recipe not found"},
		{"ingredient", "flour", "not a recipe"},
		{"missing dependency", "crepe", "missing required ingredient or recipe"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			rec := do(t, router, http.MethodGet, summaryPath(tc.recipe), nil)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, errorMessage(t, rec), tc.wantReason)
		})
	}
}

func TestSummary_Cycle(t *testing.T) {
	t.Parallel()
	router := setupRouter(t)

	rec := do(t, router, http.MethodPost, "/entry", `{"type":"recipe","name":"soup","requiredItems":[{"name":"soup","quantity":1}]}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, router, http.MethodGet, summaryPath("soup"), nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, errorMessage(t, rec), "soup -> soup")
}

func TestSummary_Overflow(t *testing.T) {
	t.Parallel()
	router := setupRouter(t)

	for _, body := range []string{
		`{"type":"ingredient","name":"salt","cookTime":1}`,
		`{"type":"recipe","name":"a","requiredItems":[{"name":"salt","quantity":1e200}]}`,
		`{"type":"recipe","name":"b","requiredItems":[{"name":"a","quantity":1e200}]}`,
	} {
		rec := do(t, router, http.MethodPost, "/entry", body)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	}

	rec := do(t, router, http.MethodGet, summaryPath("b"), nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Contains(t, errorMessage(t, rec), "exceed the representable range")

	// One level down the totals are still finite.
	rec = do(t, router, http.MethodGet, summaryPath("a"), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"name":"a","cookTime":1e200,"ingredients":[{"name":"salt","quantity":1e200}]}`, rec.Body.String())
}

// ---------------------------------------------------------------------------
// GET /entries
// ---------------------------------------------------------------------------

func TestListEntries(t *testing.T) {
	t.Parallel()
	router := setupRouter(t)

	rec := do(t, router, http.MethodGet, "/entries", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	seedPancake(t, router)
	rec = do(t, router, http.MethodGet, "/entries", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var entries []map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&entries))
	require.Len(t, entries, 5)

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e["name"].(string))
	}
	assert.Equal(t, "batter,crepe,egg,flour,pancake", strings.Join(names, ","))
	assert.Equal(t, "ingredient", entries[2]["type"])
	assert.EqualValues(t, 2, entries[2]["cookTime"])
}
