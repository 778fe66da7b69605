package handlers

import (
	"encoding/json"
	"testing"

	"partyhub/services/lobby"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodePayloadUsesWireFieldNames(t *testing.T) {
	payload := map[string]interface{}{
		"lobbyID": "AABBCCDD",
		"userID":  float64(2),
		"name":    "B",
		"region":  "EU",
	}

	var req lobby.JoinLobbyRequest
	require.NoError(t, decodePayload([]interface{}{payload}, &req))

	assert.Equal(t, lobby.JoinLobbyRequest{
		LobbyID: "AABBCCDD",
		UserID:  2,
		Name:    "B",
		Region:  "EU",
	}, req)
}

// A member can echo a relayed match event straight back to the server: the
// serialized form and the accepted form use the same field names.
func TestRelayedPayloadRoundTrips(t *testing.T) {
	out := lobby.MatchJoinRequest{RoomName: "room-7", LobbyID: "AABBCCDD"}

	data, err := json.Marshal(out)
	require.NoError(t, err)

	var wire map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &wire))
	assert.Contains(t, wire, "roomName")
	assert.Contains(t, wire, "lobbyID")
	assert.NotContains(t, wire, "room_name")
	assert.NotContains(t, wire, "lobby_id")

	var in lobby.MatchJoinRequest
	require.NoError(t, decodePayload([]interface{}{wire}, &in))
	assert.Equal(t, out, in)
}

func TestDecodePayloadMissingArgs(t *testing.T) {
	var req lobby.LeaveLobbyRequest
	assert.ErrorIs(t, decodePayload(nil, &req), errMissingPayload)
}

func TestDecodePayloadRejectsNonObject(t *testing.T) {
	var req lobby.LeaveLobbyRequest
	assert.ErrorIs(t, decodePayload([]interface{}{"AABBCCDD"}, &req), errPayloadShape)
}

func TestDecodePayloadRejectsWrongFieldType(t *testing.T) {
	payload := map[string]interface{}{
		"lobbyID": "AABBCCDD",
		"userID":  "not-a-number",
	}

	var req lobby.LeaveLobbyRequest
	assert.Error(t, decodePayload([]interface{}{payload}, &req))
}

func TestDecodePayloadIgnoresUnknownFields(t *testing.T) {
	payload := map[string]interface{}{
		"lobbyID": "AABBCCDD",
		"userID":  float64(1),
		"extra":   "ignored",
	}

	var req lobby.LeaveLobbyRequest
	require.NoError(t, decodePayload([]interface{}{payload}, &req))
	assert.Equal(t, "AABBCCDD", req.LobbyID)
	assert.Equal(t, 1, req.UserID)
}
