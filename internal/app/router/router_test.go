package router

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marketsymbol/internal/app/di"
	jwtmw "marketsymbol/internal/platform/jwt"
)

const testSecret = "router-test-secret"

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

type denyLimiter struct{}

func (denyLimiter) Allow(context.Context, string) (bool, error) { return false, nil }

func newTestRouter(t *testing.T, opts Options) *gin.Engine {
	t.Helper()
	reg, err := di.NewRegistry()
	require.NoError(t, err)
	if opts.JWTSecret == "" {
		opts.JWTSecret = testSecret
	}
	opts.VendorCount = reg.Len
	return NewRouter(di.NewSymbolHandler(reg, nil), opts)
}

func do(r *gin.Engine, method, target, body, token string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// TestRouter_PublicRoutes は認証不要のルートが登録されていることを検証します。
func TestRouter_PublicRoutes(t *testing.T) {
	t.Parallel()

	r := newTestRouter(t, Options{})

	tests := []struct {
		name       string
		method     string
		target     string
		body       string
		wantStatus int
	}{
		{"healthz", http.MethodGet, "/healthz", "", http.StatusOK},
		{"normalize", http.MethodGet, "/symbols/normalize?q=xjpx:7203", "", http.StatusOK},
		{"parse", http.MethodGet, "/symbols/parse?q=XJPX:7203", "", http.StatusOK},
		{"parse invalid", http.MethodGet, "/symbols/parse?q=XJPX", "", http.StatusUnprocessableEntity},
		{"parse json", http.MethodPost, "/symbols/parse", `{"symbol":"XJPX:NK:20250314:F"}`, http.StatusOK},
		{"batch", http.MethodPost, "/symbols/parse/batch", `{"symbols":["XJPX:7203","bad"]}`, http.StatusOK},
		{"vendors", http.MethodGet, "/vendors", "", http.StatusOK},
		{"vendor to symbol", http.MethodGet, "/vendors/twelvedata/symbol?q=7203.T", "", http.StatusOK},
		{"symbol to vendor", http.MethodGet, "/vendors/jpx/text?q=XJPX:NK:20250314:F", "", http.StatusOK},
		{"unknown vendor", http.MethodGet, "/vendors/nope/symbol?q=7203.T", "", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			w := do(r, tt.method, tt.target, tt.body, "")
			assert.Equal(t, tt.wantStatus, w.Code, w.Body.String())
		})
	}
}

// TestRouter_Healthz_VendorCount は /healthz が登録済みベンダー数を返すことを検証します。
func TestRouter_Healthz_VendorCount(t *testing.T) {
	t.Parallel()

	w := do(newTestRouter(t, Options{}), http.MethodGet, "/healthz", "", "")
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.EqualValues(t, 2, body["vendors"])
}

// TestRouter_RegisterVendor_RequiresAuth はベンダー登録にJWTが必要であることを検証します。
func TestRouter_RegisterVendor_RequiresAuth(t *testing.T) {
	t.Parallel()

	r := newTestRouter(t, Options{})
	body := `{"name":"yahoo","kind":"suffix","suffixes":{"T":"XJPX"}}`

	w := do(r, http.MethodPost, "/vendors", body, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	token, err := jwtmw.NewGenerator(testSecret, time.Hour).GenerateToken("admin")
	require.NoError(t, err)

	w = do(r, http.MethodPost, "/vendors", body, token)
	assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = do(r, http.MethodGet, "/vendors/yahoo/text?q=XJPX:6758", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"6758.T"`)

	w = do(r, http.MethodPost, "/vendors", body, token)
	assert.Equal(t, http.StatusConflict, w.Code)
}

// TestRouter_RateLimited はレート制限時に429が返り、/healthz は対象外であることを検証します。
func TestRouter_RateLimited(t *testing.T) {
	t.Parallel()

	r := newTestRouter(t, Options{Limiter: denyLimiter{}})

	assert.Equal(t, http.StatusTooManyRequests, do(r, http.MethodGet, "/symbols/parse?q=XJPX:7203", "", "").Code)
	assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/healthz", "", "").Code)
}

// TestRouter_CORS はCORSが有効な場合にヘッダーが付与されることを検証します。
func TestRouter_CORS(t *testing.T) {
	t.Parallel()

	for _, enabled := range []bool{true, false} {
		r := newTestRouter(t, Options{CORSEnabled: enabled})

		req := httptest.NewRequest(http.MethodGet, "/vendors", nil)
		req.Header.Set("Origin", "http://example.com")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if enabled {
			assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
		} else {
			assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
		}
	}
}
