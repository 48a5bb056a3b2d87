package network

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/klauspost/compress/flate"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/homestead/snapshot"
)

func newTestClient(t *testing.T) (*Client, *snapshot.Store) {
	t.Helper()
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	store := snapshot.NewStore()
	return NewClient("ws://unused", "tester", store, log), store
}

func deflateBytes(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	w, err := flate.NewWriter(&buf, flate.DefaultCompression)
	if err != nil {
		t.Fatalf("flate writer: %v", err)
	}
	if _, err := w.Write(data); err != nil {
		t.Fatalf("compress: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	return buf.Bytes()
}

func TestInflateRoundTrip(t *testing.T) {
	payload := []byte(`[{"id":"t1","posX":1,"posY":2}]`)
	got, err := inflate(deflateBytes(t, payload))
	if err != nil {
		t.Fatalf("inflate: %v", err)
	}
	if !bytes.Equal(got, payload) {
		t.Fatalf("round trip mismatch: %s", got)
	}
}

func TestInflateGarbage(t *testing.T) {
	if _, err := inflate([]byte{0xff, 0x00, 0xde, 0xad}); err == nil {
		t.Fatal("garbage inflated without error")
	}
}

func TestHandleTableUpdate(t *testing.T) {
	c, store := newTestClient(t)
	c.handle(Envelope{
		Type:  MsgTableUpdate,
		Table: snapshot.TableCampfires,
		Rows:  json.RawMessage(`[{"id":"c1","posX":5,"posY":5,"isBurning":true}]`),
	})
	if n := len(store.View().Campfires); n != 1 {
		t.Fatalf("campfires = %d, want 1", n)
	}
}

func TestHandleCompressedUpdate(t *testing.T) {
	c, store := newTestClient(t)
	rows := []byte(`[{"id":"t1","posX":1,"posY":2,"treeType":"Oak","health":100}]`)
	c.handle(Envelope{
		Type:        MsgTableUpdate,
		Table:       snapshot.TableTrees,
		Compressed:  true,
		RowsDeflate: deflateBytes(t, rows),
	})
	if n := len(store.View().Trees); n != 1 {
		t.Fatalf("trees = %d, want 1", n)
	}
}

func TestHandleWelcome(t *testing.T) {
	c, _ := newTestClient(t)
	if got := c.Identity(); got != "" {
		t.Fatalf("identity before welcome = %q", got)
	}
	c.handle(Envelope{Type: MsgWelcome, Identity: "abc123"})
	if got := c.Identity(); got != "abc123" {
		t.Fatalf("identity = %q, want abc123", got)
	}
}

// TestHandleReducerError verifies placement failures reach the preview
// channel and other reducer failures do not
func TestHandleReducerError(t *testing.T) {
	c, _ := newTestClient(t)

	c.handle(Envelope{Type: MsgReducerErr, Reducer: ReducerPlaceItem, Error: "blocked by a tree"})
	select {
	case msg := <-c.PlacementError:
		if msg != "blocked by a tree" {
			t.Fatalf("placement error %q", msg)
		}
	default:
		t.Fatal("placement error not delivered")
	}

	c.handle(Envelope{Type: MsgReducerErr, Reducer: ReducerJump, Error: "mid-air"})
	select {
	case msg := <-c.PlacementError:
		t.Fatalf("non-placement error %q delivered to placement channel", msg)
	default:
	}
}

// TestPlacementErrorNonBlocking verifies a full channel never stalls the
// read pump
func TestPlacementErrorNonBlocking(t *testing.T) {
	c, _ := newTestClient(t)
	c.handle(Envelope{Type: MsgReducerErr, Reducer: ReducerPlaceItem, Error: "first"})
	c.handle(Envelope{Type: MsgReducerErr, Reducer: ReducerPlaceItem, Error: "second"})

	if msg := <-c.PlacementError; msg != "first" {
		t.Fatalf("kept %q, want the first error", msg)
	}
}

func TestEnvelopeRoundTrip(t *testing.T) {
	in := Envelope{
		Type:    MsgReducerCall,
		Reducer: ReducerUpdateInput,
		Args:    json.RawMessage(`{"dx":1,"dy":0}`),
	}
	data, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var out Envelope
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out.Type != in.Type || out.Reducer != in.Reducer || string(out.Args) != string(in.Args) {
		t.Fatalf("round trip mismatch: %+v", out)
	}
}
