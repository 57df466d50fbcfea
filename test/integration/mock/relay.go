package mock

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
)

// RelayedMessage is one message the fake WhatsApp relay accepted.
type RelayedMessage struct {
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

// MessageRelay is an HTTP stand-in for the WhatsApp relay. It accepts the
// same JSON contract as the real relay and records every message.
type MessageRelay struct {
	mu       sync.Mutex
	server   *httptest.Server
	messages []RelayedMessage
}

// NewMessageRelay starts the fake relay server.
func NewMessageRelay() *MessageRelay {
	relay := &MessageRelay{}
	relay.server = httptest.NewServer(http.HandlerFunc(relay.handle))
	return relay
}

func (r *MessageRelay) handle(w http.ResponseWriter, req *http.Request) {
	var msg RelayedMessage
	if err := json.NewDecoder(req.Body).Decode(&msg); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	r.mu.Lock()
	r.messages = append(r.messages, msg)
	r.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"code": "SUCCESS", "message": "sent"})
}

// URL returns the relay endpoint to point the application at.
func (r *MessageRelay) URL() string {
	return r.server.URL
}

// Messages returns a copy of the recorded messages in arrival order.
func (r *MessageRelay) Messages() []RelayedMessage {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]RelayedMessage, len(r.messages))
	copy(out, r.messages)
	return out
}

// Reset clears the recorded messages.
func (r *MessageRelay) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = nil
}

// Close shuts the relay server down.
func (r *MessageRelay) Close() {
	r.server.Close()
}
