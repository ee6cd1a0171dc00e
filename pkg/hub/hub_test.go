package hub

import (
	"encoding/json"
	"testing"
	"time"
)

func TestHub_ClientCountStartsAtZero(t *testing.T) {
	h := New("test")
	if n := h.ClientCount(); n != 0 {
		t.Errorf("ClientCount: got %d, want 0", n)
	}
}

func TestHub_BroadcastWithoutClientsDoesNotBlock(t *testing.T) {
	h := New("test")
	// No Run loop, no clients: messages queue into the buffered channel
	// and the overflow path drops instead of blocking.
	for i := 0; i < 300; i++ {
		h.BroadcastBinary([]byte{0xff, 0xd8})
	}
}

func TestHub_BroadcastJSON(t *testing.T) {
	h := New("test")

	if err := h.BroadcastJSON(map[string]int{"frames": 7}); err != nil {
		t.Fatalf("BroadcastJSON failed: %v", err)
	}

	// The queued message must be valid JSON of the given value.
	msg := <-h.broadcast
	if msg.Type != JSONMessage {
		t.Errorf("message type: got %v, want JSONMessage", msg.Type)
	}
	var decoded map[string]int
	if err := json.Unmarshal(msg.Data, &decoded); err != nil {
		t.Fatalf("broadcast payload is not JSON: %v", err)
	}
	if decoded["frames"] != 7 {
		t.Errorf("payload: got %v", decoded)
	}

	if err := h.BroadcastJSON(make(chan int)); err == nil {
		t.Error("expected error for unmarshalable value")
	}
}

func TestHub_DropsSlowClientsSafely(t *testing.T) {
	h := New("test")
	go h.Run()

	// Stalled clients: unbuffered send channels nobody reads, so every
	// broadcast finds their buffers full and drops them.
	for i := 0; i < 4; i++ {
		h.register <- &Client{hub: h, send: make(chan Message)}
	}
	deadline := time.Now().Add(time.Second)
	for h.ClientCount() < 4 && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}

	// Hammer ClientCount while the hub is dropping clients; under -race
	// this fails if the drop path mutates the map without the write lock.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 1000; i++ {
			h.ClientCount()
		}
	}()

	for i := 0; i < 50; i++ {
		h.BroadcastBinary([]byte{0xff})
	}
	<-done

	for h.ClientCount() > 0 && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	if n := h.ClientCount(); n != 0 {
		t.Errorf("ClientCount after dropping stalled clients: got %d, want 0", n)
	}
}

func TestMessage_Constructors(t *testing.T) {
	j := NewJSONMessage([]byte(`{}`))
	if j.Type != JSONMessage {
		t.Errorf("JSON message type: got %v", j.Type)
	}
	b := NewBinaryMessage([]byte{1, 2, 3})
	if b.Type != BinaryMessage {
		t.Errorf("binary message type: got %v", b.Type)
	}
	if len(b.Data) != 3 {
		t.Errorf("binary data length: got %d, want 3", len(b.Data))
	}
}
