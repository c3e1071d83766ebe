package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	appservice "github.com/turtacn/opspulse/internal/application/service"
	"github.com/turtacn/opspulse/internal/config"
	"github.com/turtacn/opspulse/internal/infrastructure/persistence/memory"
	"github.com/turtacn/opspulse/pkg/logger"
)

func newUserRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := memory.NewUserStore(&config.StoreConfig{}, logger.NewNoopLogger())
	handler := NewUserHandler(appservice.NewUserAppService(repo, logger.NewNoopLogger()))

	router := gin.New()
	users := router.Group("/api/users")
	{
		users.GET("", handler.ListUsers)
		users.POST("", handler.CreateUser)
		users.GET("/:id", handler.GetUser)
		users.PUT("/:id", handler.UpdateUser)
		users.DELETE("/:id", handler.DeleteUser)
	}
	return router
}

func doJSON(router *gin.Engine, method, path string, payload interface{}) *httptest.ResponseRecorder {
	var body bytes.Buffer
	if payload != nil {
		_ = json.NewEncoder(&body).Encode(payload)
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestUserHandler_CreateAndGet(t *testing.T) {
	router := newUserRouter(t)

	w := doJSON(router, http.MethodPost, "/api/users", map[string]string{
		"name":  "alice",
		"email": "alice@example.com",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		Data struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.NotEmpty(t, created.Data.ID)

	w = doJSON(router, http.MethodGet, "/api/users/"+created.Data.ID, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUserHandler_CreateValidation(t *testing.T) {
	router := newUserRouter(t)

	// Missing email
	w := doJSON(router, http.MethodPost, "/api/users", map[string]string{"name": "alice"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Malformed email
	w = doJSON(router, http.MethodPost, "/api/users", map[string]string{
		"name":  "alice",
		"email": "not-an-email",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUserHandler_GetMissingReturns404(t *testing.T) {
	router := newUserRouter(t)

	w := doJSON(router, http.MethodGet, "/api/users/nope", nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	var body struct {
		Success bool `json:"success"`
		Error   struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, "not_found", body.Error.Code)
}

func TestUserHandler_UpdateAndDelete(t *testing.T) {
	router := newUserRouter(t)

	w := doJSON(router, http.MethodPost, "/api/users", map[string]string{
		"name":  "bob",
		"email": "bob@example.com",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		Data struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = doJSON(router, http.MethodPut, "/api/users/"+created.Data.ID, map[string]string{"role": "admin"})
	require.Equal(t, http.StatusOK, w.Code)

	var updated struct {
		Data struct {
			Role string `json:"role"`
			Name string `json:"name"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, "admin", updated.Data.Role)
	assert.Equal(t, "bob", updated.Data.Name)

	w = doJSON(router, http.MethodDelete, "/api/users/"+created.Data.ID, nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(router, http.MethodGet, "/api/users/"+created.Data.ID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUserHandler_ListCount(t *testing.T) {
	router := newUserRouter(t)

	for _, name := range []string{"a", "b", "c"} {
		w := doJSON(router, http.MethodPost, "/api/users", map[string]string{
			"name":  name,
			"email": name + "@example.com",
		})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := doJSON(router, http.MethodGet, "/api/users", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data struct {
			Count int `json:"count"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 3, body.Data.Count)
}
