package handlers

import (
	"encoding/json"
	"errors"
	"log"

	"partyhub/models"

	"github.com/zishang520/socket.io/v2/socket"
)

var (
	errMissingPayload = errors.New("missing request payload")
	errPayloadShape   = errors.New("request payload must be an object")
)

// decodePayload maps the first event argument onto a request struct through
// the struct's json tags. The accepted field names are therefore exactly
// the ones the server emits, so a relayed payload can be echoed back as-is.
func decodePayload(args []interface{}, out interface{}) error {
	if len(args) < 1 {
		return errMissingPayload
	}
	payload, ok := args[0].(map[string]interface{})
	if !ok {
		return errPayloadShape
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, out)
}

// decodeRequest rejects malformed requests here, at the transport boundary,
// before they can reach the lobby core.
func decodeRequest(client *socket.Socket, event string, args []interface{}, out interface{}) bool {
	if err := decodePayload(args, out); err != nil {
		log.Printf("[ARGS-ERROR] %s from %s: %v", event, client.Id(), err)
		client.Emit("error", models.ErrorMessage{Error: "malformed " + event + " request"})
		return false
	}
	return true
}

// requireFields checks that the named string fields decoded non-empty.
func requireFields(client *socket.Socket, fields map[string]string) bool {
	for name, value := range fields {
		if value == "" {
			client.Emit("error", models.ErrorMessage{Error: "missing or invalid field: " + name})
			return false
		}
	}
	return true
}
