package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/jaythan-dev/projeto-concessionaria/config"
	"github.com/jaythan-dev/projeto-concessionaria/database"
	"github.com/jaythan-dev/projeto-concessionaria/handlers"
	"github.com/jaythan-dev/projeto-concessionaria/repository"
	"github.com/jaythan-dev/projeto-concessionaria/services"
	"github.com/jaythan-dev/projeto-concessionaria/types"
	"github.com/jaythan-dev/projeto-concessionaria/utils"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func openSQLite(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Open(config.DatabaseConfig{
		Driver: config.DriverSQLite,
		Path:   filepath.Join(t.TempDir(), "routes.db"),
	}, "silent")
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() { _ = database.Close(db) })
	return db
}

func newEngine(t *testing.T, repos repository.Repositories, store handlers.Pinger, ws *utils.WebSocketManager) *gin.Engine {
	t.Helper()
	logger := zap.NewNop()
	var notifier services.ChangeNotifier
	if ws != nil {
		notifier = ws
	}
	return SetupRoutes(Dependencies{
		Brands:    services.NewBrandService(repos.Brands, notifier, logger),
		Owners:    services.NewOwnerService(repos.Owners, notifier, logger),
		Cars:      services.NewCarService(repos.Cars, notifier, logger),
		Store:     store,
		WSManager: ws,
		Logger:    logger,
	})
}

func do(t *testing.T, r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body == "" {
		reader = bytes.NewReader(nil)
	} else {
		reader = bytes.NewReader([]byte(body))
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func forEachStore(t *testing.T, fn func(t *testing.T, r *gin.Engine)) {
	t.Run("sqlite", func(t *testing.T) {
		db := openSQLite(t)
		fn(t, newEngine(t, repository.NewGormRepositories(db), handlers.PingFunc(func(ctx context.Context) error {
			return database.Ping(ctx, db)
		}), nil))
	})
	t.Run("memory", func(t *testing.T) {
		fn(t, newEngine(t, repository.NewMemoryRepositories(), nil, nil))
	})
}

func TestDealershipScenario(t *testing.T) {
	forEachStore(t, func(t *testing.T, r *gin.Engine) {
		w := do(t, r, http.MethodPost, "/brands", `{"name":"Toyota"}`)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		assert.JSONEq(t, `{"id":1,"name":"Toyota"}`, w.Body.String())

		w = do(t, r, http.MethodPost, "/owners", `{"name":"Jo","email":"jo@x.com"}`)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		assert.JSONEq(t, `{"id":1,"name":"Jo","email":"jo@x.com"}`, w.Body.String())

		w = do(t, r, http.MethodPost, "/cars", `{"model":"Corolla","year":2020,"brandId":1,"ownerId":1}`)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		assert.JSONEq(t, `{"id":1,"model":"Corolla","year":2020,"brandId":1,"ownerId":1}`, w.Body.String())

		w = do(t, r, http.MethodGet, "/cars", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[{"id":1,"model":"Corolla","year":2020,"brandId":1,"ownerId":1,
			"brand":{"id":1,"name":"Toyota"},
			"owner":{"id":1,"name":"Jo","email":"jo@x.com"}}]`, w.Body.String())

		w = do(t, r, http.MethodDelete, "/brands/1", "")
		assert.Equal(t, http.StatusConflict, w.Code)
		assert.JSONEq(t, `{"error":"Brand is still referenced by existing cars"}`, w.Body.String())

		w = do(t, r, http.MethodGet, "/brands/1", "")
		assert.Equal(t, http.StatusOK, w.Code)

		w = do(t, r, http.MethodDelete, "/cars/1", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"message":"Car deleted"}`, w.Body.String())

		w = do(t, r, http.MethodDelete, "/brands/1", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"message":"Brand deleted"}`, w.Body.String())

		w = do(t, r, http.MethodGet, "/brands/1", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error":"Brand not found"}`, w.Body.String())

		w = do(t, r, http.MethodDelete, "/brands/1", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestValidationResponses(t *testing.T) {
	forEachStore(t, func(t *testing.T, r *gin.Engine) {
		w := do(t, r, http.MethodPost, "/owners", `{"name":"Jo","email":"not-an-email"}`)
		require.Equal(t, http.StatusBadRequest, w.Code)
		body := decode(t, w)
		assert.Equal(t, "Validation failed", body["error"])
		issues, ok := body["issues"].([]interface{})
		require.True(t, ok)
		require.Len(t, issues, 1)
		issue := issues[0].(map[string]interface{})
		assert.Equal(t, "email", issue["path"])
		assert.Equal(t, "invalid_string", issue["code"])

		w = do(t, r, http.MethodPost, "/owners", `{"name":"Jo","email":"a@b.co"}`)
		assert.Equal(t, http.StatusCreated, w.Code)

		w = do(t, r, http.MethodPost, "/brands", `{"name":"T"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)

		w = do(t, r, http.MethodPost, "/brands", `{"name":`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":"Invalid JSON"}`, w.Body.String())

		w = do(t, r, http.MethodPost, "/brands", `{"name":"Toyota"}`)
		require.Equal(t, http.StatusCreated, w.Code)

		w = do(t, r, http.MethodPost, "/cars", `{"model":"Corolla","year":1885,"brandId":1,"ownerId":1}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)

		w = do(t, r, http.MethodGet, "/cars", "")
		assert.JSONEq(t, `[]`, w.Body.String())
	})
}

func TestConstraintViolationResponse(t *testing.T) {
	forEachStore(t, func(t *testing.T, r *gin.Engine) {
		require.Equal(t, http.StatusCreated, do(t, r, http.MethodPost, "/owners", `{"name":"Jo","email":"jo@x.com"}`).Code)

		w := do(t, r, http.MethodPost, "/cars", `{"model":"Corolla","year":2020,"brandId":99,"ownerId":1}`)
		require.Equal(t, http.StatusBadRequest, w.Code)
		body := decode(t, w)
		assert.Equal(t, "Constraint violation", body["error"])
		issues := body["issues"].([]interface{})
		require.Len(t, issues, 1)
		assert.Equal(t, "brandId", issues[0].(map[string]interface{})["path"])
		assert.Equal(t, "invalid_reference", issues[0].(map[string]interface{})["code"])

		w = do(t, r, http.MethodGet, "/cars", "")
		assert.JSONEq(t, `[]`, w.Body.String())
	})
}

func TestUpdateResponses(t *testing.T) {
	forEachStore(t, func(t *testing.T, r *gin.Engine) {
		require.Equal(t, http.StatusCreated, do(t, r, http.MethodPost, "/brands", `{"name":"Toyota"}`).Code)

		w := do(t, r, http.MethodPut, "/brands/1", `{"name":"Honda"}`)
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"id":1,"name":"Honda"}`, w.Body.String())

		w = do(t, r, http.MethodPut, "/brands/1", `{"name":"H"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		w = do(t, r, http.MethodGet, "/brands/1", "")
		assert.JSONEq(t, `{"id":1,"name":"Honda"}`, w.Body.String())

		w = do(t, r, http.MethodPut, "/brands/42", `{"name":"Honda"}`)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error":"Brand not found"}`, w.Body.String())
	})
}

func TestNonNumericID(t *testing.T) {
	forEachStore(t, func(t *testing.T, r *gin.Engine) {
		for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete} {
			w := do(t, r, method, "/owners/abc", `{"name":"Jo"}`)
			assert.Equal(t, http.StatusNotFound, w.Code, method)
			assert.JSONEq(t, `{"error":"Owner not found"}`, w.Body.String())
		}
	})
}

func TestHealth(t *testing.T) {
	r := newEngine(t, repository.NewMemoryRepositories(), nil, nil)
	w := do(t, r, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())

	r = newEngine(t, repository.NewMemoryRepositories(), handlers.PingFunc(func(context.Context) error {
		return assert.AnError
	}), nil)
	w = do(t, r, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestWebSocketRouteDisabled(t *testing.T) {
	r := newEngine(t, repository.NewMemoryRepositories(), nil, nil)
	w := do(t, r, http.MethodGet, "/ws", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestChangeFeed(t *testing.T) {
	ws := utils.NewWebSocketManager(zap.NewNop())
	defer ws.CloseAll()
	srv := httptest.NewServer(newEngine(t, repository.NewMemoryRepositories(), nil, ws))
	defer srv.Close()

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http")+"/ws", nil)
	require.NoError(t, err)
	defer conn.Close()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))

	var hello types.ConnectedMessage
	require.NoError(t, conn.ReadJSON(&hello))
	assert.Equal(t, types.MessageConnected, hello.Type)
	assert.NotEmpty(t, hello.ClientID)

	resp, err := http.Post(srv.URL+"/brands", "application/json", strings.NewReader(`{"name":"Toyota"}`))
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var event types.ChangeEvent
	require.NoError(t, conn.ReadJSON(&event))
	assert.Equal(t, types.MessageEntityChanged, event.Type)
	assert.Equal(t, types.EntityBrands, event.Entity)
	assert.Equal(t, types.ActionCreated, event.Action)
	assert.Equal(t, 1, event.ID)
	assert.False(t, event.Timestamp.IsZero())

	resp, err = http.Post(srv.URL+"/brands", "application/json", strings.NewReader(`{"name":"T"}`))
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	req, err := http.NewRequest(http.MethodDelete, srv.URL+"/brands/1", nil)
	require.NoError(t, err)
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()

	require.NoError(t, conn.ReadJSON(&event))
	assert.Equal(t, types.ActionDeleted, event.Action)
	assert.Equal(t, 1, event.ID)
}
