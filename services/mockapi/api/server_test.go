package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/iulianpascalau/polly-api-client/services/mockapi/common"
	"github.com/iulianpascalau/polly-api-client/services/mockapi/storage"
	"github.com/iulianpascalau/polly-api-client/services/mockapi/testsCommon"
	"github.com/stretchr/testify/require"
)

func setupTestServer(t *testing.T) *server {
	store := storage.NewMemoryStore()
	store.SeedDemoPolls(5)

	serv, err := NewServer(ArgsWebServer{
		ListenAddress: ":0",
		Storage:       store,
	})
	require.NoError(t, err)

	return serv
}

func TestNewServer_NilStorage(t *testing.T) {
	t.Parallel()

	_, err := NewServer(ArgsWebServer{
		Storage: nil,
	})
	require.Error(t, err)
	require.Contains(t, err.Error(), "storage is required")
}

func TestPollsEndpoint(t *testing.T) {
	t.Parallel()

	serv := setupTestServer(t)

	t.Run("default pagination", func(t *testing.T) {
		req, _ := http.NewRequest("GET", "/polls", nil)
		w := httptest.NewRecorder()
		serv.router.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)

		var polls []common.Poll
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &polls))
		require.Len(t, polls, 5)
	})
	t.Run("windowed pagination", func(t *testing.T) {
		req, _ := http.NewRequest("GET", "/polls?skip=2&limit=2", nil)
		w := httptest.NewRecorder()
		serv.router.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)

		var polls []common.Poll
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &polls))
		require.Len(t, polls, 2)
		require.Equal(t, 3, polls[0].ID)
		require.Equal(t, 4, polls[1].ID)
	})
	t.Run("out of range skip yields an empty JSON array", func(t *testing.T) {
		req, _ := http.NewRequest("GET", "/polls?skip=1000&limit=10", nil)
		w := httptest.NewRecorder()
		serv.router.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, "[]", w.Body.String())
	})
	t.Run("invalid pagination parameters", func(t *testing.T) {
		for _, query := range []string{"?skip=-1", "?limit=0", "?skip=abc", "?limit=xyz"} {
			req, _ := http.NewRequest("GET", "/polls"+query, nil)
			w := httptest.NewRecorder()
			serv.router.ServeHTTP(w, req)
			require.Equal(t, http.StatusBadRequest, w.Code, "query %s", query)
			require.Contains(t, w.Body.String(), "detail", "query %s", query)
		}
	})
}

func TestRegisterEndpoint(t *testing.T) {
	t.Parallel()

	serv := setupTestServer(t)

	registerBody := `{"username": "alice_test", "password": "test_password_123"}`

	t.Run("first registration succeeds", func(t *testing.T) {
		req, _ := http.NewRequest("POST", "/register", bytes.NewBufferString(registerBody))
		w := httptest.NewRecorder()
		serv.router.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)

		var user common.User
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &user))
		require.Equal(t, "alice_test", user.Username)
		require.NotZero(t, user.ID)
	})
	t.Run("duplicate registration is rejected with 400", func(t *testing.T) {
		req, _ := http.NewRequest("POST", "/register", bytes.NewBufferString(registerBody))
		w := httptest.NewRecorder()
		serv.router.ServeHTTP(w, req)
		require.Equal(t, http.StatusBadRequest, w.Code)
		require.Contains(t, w.Body.String(), "Username already registered")
	})
	t.Run("missing fields are rejected with 400", func(t *testing.T) {
		req, _ := http.NewRequest("POST", "/register", bytes.NewBufferString(`{"username": "no_password"}`))
		w := httptest.NewRecorder()
		serv.router.ServeHTTP(w, req)
		require.Equal(t, http.StatusBadRequest, w.Code)
	})
	t.Run("malformed payload is rejected with 400", func(t *testing.T) {
		req, _ := http.NewRequest("POST", "/register", bytes.NewBufferString(`not json`))
		w := httptest.NewRecorder()
		serv.router.ServeHTTP(w, req)
		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestServer_StartAndClose(t *testing.T) {
	t.Parallel()

	store := &testsCommon.StoreStub{}
	serv, err := NewServer(ArgsWebServer{
		ListenAddress: "127.0.0.1:0", // random available port
		Storage:       store,
	})
	require.NoError(t, err)

	serv.Start()

	// Given it's a goroutine, allow a small time to boot
	time.Sleep(50 * time.Millisecond)

	require.NotEmpty(t, serv.Address())

	err = serv.Close()
	require.NoError(t, err)
}
