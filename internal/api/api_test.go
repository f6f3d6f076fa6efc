package api_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soracane/roomdraw/internal/api"
	"github.com/soracane/roomdraw/internal/api/response"
	"github.com/soracane/roomdraw/internal/factory"
	"github.com/soracane/roomdraw/internal/testutil"
)

// testServer wraps the router for request-level tests
type testServer struct {
	handler http.Handler
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	// API tests are integration tests - use the production factory with
	// real random/clock and in-memory storage
	app, err := factory.New(factory.Config{})
	require.NoError(t, err)

	router := api.NewRouter(api.RouterConfig{
		Logger:         testutil.NopLogger(),
		RoomController: app.RoomController,
	})

	return &testServer{handler: router}
}

func (ts *testServer) request(method, path string, body any) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	if body != nil {
		b, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(b)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)
	return rr
}

func (ts *testServer) createRoom(t *testing.T, password string, characters []string, playerCount int) string {
	t.Helper()

	body := map[string]any{
		"adminPassword": password,
		"characters":    characters,
		"playerCount":   playerCount,
	}
	rr := ts.request(http.MethodPost, "/api/v1/rooms", body)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	var resp response.CreateRoomResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.True(t, resp.Success)
	require.NotEmpty(t, resp.RoomID)
	return resp.RoomID
}

func TestHealthCheck(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/health", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "ok")
}

func TestCreateRoom(t *testing.T) {
	ts := newTestServer(t)

	roomID := ts.createRoom(t, "p", []string{"wolf", "villager", "villager"}, 3)
	assert.Regexp(t, `^[a-z0-9]{6}$`, roomID)
}

func TestCreateRoomRejectsInvalidRequests(t *testing.T) {
	ts := newTestServer(t)

	cases := []struct {
		name string
		body map[string]any
	}{
		{"missing password", map[string]any{"characters": []string{"wolf"}, "playerCount": 1}},
		{"empty characters", map[string]any{"adminPassword": "p", "characters": []string{}, "playerCount": 1}},
		{"zero player count", map[string]any{"adminPassword": "p", "characters": []string{"wolf"}, "playerCount": 0}},
		{"capacity above characters", map[string]any{"adminPassword": "p", "characters": []string{"wolf"}, "playerCount": 2}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rr := ts.request(http.MethodPost, "/api/v1/rooms", tc.body)
			assert.Equal(t, http.StatusBadRequest, rr.Code)
		})
	}
}

func TestGetRoomRequiresAdminPassword(t *testing.T) {
	ts := newTestServer(t)
	roomID := ts.createRoom(t, "p", []string{"wolf", "villager"}, 2)

	rr := ts.request(http.MethodGet, fmt.Sprintf("/api/v1/rooms/%s?adminPassword=wrong", roomID), nil)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	// Room contents must not leak on auth failure
	assert.NotContains(t, rr.Body.String(), "wolf")

	rr = ts.request(http.MethodGet, fmt.Sprintf("/api/v1/rooms/%s?adminPassword=p", roomID), nil)
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestGetRoomNotFound(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/rooms/zzzzzz?adminPassword=p", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestRoomSnapshotOmitsPasswordHash(t *testing.T) {
	ts := newTestServer(t)
	roomID := ts.createRoom(t, "hunter2", []string{"wolf", "villager"}, 2)

	rr := ts.request(http.MethodGet, fmt.Sprintf("/api/v1/rooms/%s?adminPassword=hunter2", roomID), nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.NotContains(t, rr.Body.String(), "hunter2")
	assert.NotContains(t, rr.Body.String(), "adminPassword")
	assert.NotContains(t, rr.Body.String(), "$2a$")
}

func TestJoinRoomErrors(t *testing.T) {
	ts := newTestServer(t)
	roomID := ts.createRoom(t, "p", []string{"wolf", "villager"}, 2)

	// unknown room
	rr := ts.request(http.MethodPost, "/api/v1/rooms/zzzzzz/join", map[string]string{"playerName": "alice"})
	assert.Equal(t, http.StatusNotFound, rr.Code)

	// first join succeeds
	rr = ts.request(http.MethodPost, fmt.Sprintf("/api/v1/rooms/%s/join", roomID), map[string]string{"playerName": "alice"})
	assert.Equal(t, http.StatusOK, rr.Code)

	// duplicate name
	rr = ts.request(http.MethodPost, fmt.Sprintf("/api/v1/rooms/%s/join", roomID), map[string]string{"playerName": "alice"})
	assert.Equal(t, http.StatusConflict, rr.Code)

	// fill the room, then overflow
	rr = ts.request(http.MethodPost, fmt.Sprintf("/api/v1/rooms/%s/join", roomID), map[string]string{"playerName": "bob"})
	assert.Equal(t, http.StatusOK, rr.Code)
	rr = ts.request(http.MethodPost, fmt.Sprintf("/api/v1/rooms/%s/join", roomID), map[string]string{"playerName": "carol"})
	assert.Equal(t, http.StatusConflict, rr.Code)
}

func TestStartBeforeRoomIsFull(t *testing.T) {
	ts := newTestServer(t)
	roomID := ts.createRoom(t, "p", []string{"wolf", "villager"}, 2)

	rr := ts.request(http.MethodPost, fmt.Sprintf("/api/v1/rooms/%s/start?adminPassword=p", roomID), nil)
	assert.Equal(t, http.StatusConflict, rr.Code)
}

func TestStartWithWrongPassword(t *testing.T) {
	ts := newTestServer(t)
	roomID := ts.createRoom(t, "p", []string{"wolf"}, 1)

	rr := ts.request(http.MethodPost, fmt.Sprintf("/api/v1/rooms/%s/join", roomID), map[string]string{"playerName": "alice"})
	require.Equal(t, http.StatusOK, rr.Code)

	rr = ts.request(http.MethodPost, fmt.Sprintf("/api/v1/rooms/%s/start?adminPassword=wrong", roomID), nil)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestGetCharacterUnknownPlayer(t *testing.T) {
	ts := newTestServer(t)
	roomID := ts.createRoom(t, "p", []string{"wolf"}, 1)

	rr := ts.request(http.MethodGet, fmt.Sprintf("/api/v1/rooms/%s/character?playerName=nobody", roomID), nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

// TestFullRoomLifecycle walks the whole flow: create, three joins, admin
// start, per-player character lookups.
func TestFullRoomLifecycle(t *testing.T) {
	ts := newTestServer(t)
	roomID := ts.createRoom(t, "p", []string{"wolf", "villager", "villager"}, 3)

	// Joins count down the remaining slots
	expected := []int{2, 1, 0}
	for i, name := range []string{"alice", "bob", "carol"} {
		rr := ts.request(http.MethodPost, fmt.Sprintf("/api/v1/rooms/%s/join", roomID), map[string]string{"playerName": name})
		require.Equal(t, http.StatusOK, rr.Code)

		var joinResp response.JoinRoomResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &joinResp))
		assert.Equal(t, expected[i], joinResp.RemainingPlayer)
	}

	// Room is now ready
	rr := ts.request(http.MethodGet, fmt.Sprintf("/api/v1/rooms/%s?adminPassword=p", roomID), nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var snapshot response.Room
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &snapshot))
	assert.Equal(t, "ready", snapshot.Status)

	// Start assigns quota-consistent characters
	rr = ts.request(http.MethodPost, fmt.Sprintf("/api/v1/rooms/%s/start?adminPassword=p", roomID), nil)
	require.Equal(t, http.StatusOK, rr.Code)
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &snapshot))
	assert.Equal(t, "started", snapshot.Status)

	counts := map[string]int{}
	for _, p := range snapshot.Players {
		require.NotEmpty(t, p.Character)
		counts[p.Character]++
	}
	assert.Equal(t, 1, counts["wolf"])
	assert.Equal(t, 2, counts["villager"])

	// Each player can look up their character without the admin password
	for _, name := range []string{"alice", "bob", "carol"} {
		rr := ts.request(http.MethodGet, fmt.Sprintf("/api/v1/rooms/%s/character?playerName=%s", roomID, name), nil)
		require.Equal(t, http.StatusOK, rr.Code)

		var charResp response.CharacterResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &charResp))
		assert.Contains(t, []string{"wolf", "villager"}, charResp.Character)
	}

	// A second start is rejected
	rr = ts.request(http.MethodPost, fmt.Sprintf("/api/v1/rooms/%s/start?adminPassword=p", roomID), nil)
	assert.Equal(t, http.StatusConflict, rr.Code)
}
