package controllers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"partyhub/models"
	"partyhub/routes"
	"partyhub/services/lobby"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRouter(registry *lobby.Registry) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	routes.SetupRoutes(router, registry)
	return router
}

func TestPing(t *testing.T) {
	router := setupTestRouter(lobby.NewRegistry())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "pong")
}

func TestGetAllLobbies(t *testing.T) {
	registry := lobby.NewRegistry()
	router := setupTestRouter(registry)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/lobbies", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())

	lb := registry.Create("EU")
	require.NoError(t, lb.Join(lobby.NewPlayer(1, "A", true, nil)))

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/lobbies", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	var snaps []models.LobbySnapshot
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &snaps))
	require.Len(t, snaps, 1)
	assert.Equal(t, lb.ID(), snaps[0].ID)
	assert.Equal(t, "EU", snaps[0].Region)
}

func TestGetLobbyInfo(t *testing.T) {
	registry := lobby.NewRegistry()
	router := setupTestRouter(registry)

	lb := registry.Create("NA")
	require.NoError(t, lb.Join(lobby.NewPlayer(7, "host", true, nil)))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/lobbies/"+lb.ID(), nil))
	assert.Equal(t, http.StatusOK, w.Code)

	var snap models.LobbySnapshot
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &snap))
	assert.Equal(t, lb.ID(), snap.ID)
	require.Len(t, snap.Members, 1)
	assert.Equal(t, "host", snap.Members[0].Name)
	assert.True(t, snap.Members[0].IsLeader)
}

func TestGetLobbyInfoNotFound(t *testing.T) {
	router := setupTestRouter(lobby.NewRegistry())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/lobbies/DEADBEEF", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "not found")
}
