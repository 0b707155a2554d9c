package boundedmap

import (
	"bytes"
	"errors"
	"fmt"
	"slices"
	"testing"

	cbor "github.com/fxamacker/cbor/v2"
)

func TestCBORRoundTripKeepsOrder(t *testing.T) {
	m := New[string, int]()
	for _, k := range []string{"z", "a", "m", "b"} {
		m.Put(k, len(k))
	}
	m.Remove("a")
	m.Put("a", 7)

	data, err := cbor.Marshal(m)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	out := New[string, int]()
	if err := cbor.Unmarshal(data, out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	want := []string{"z", "m", "b", "a"}
	if got := keysOf(out); !slices.Equal(got, want) {
		t.Errorf("decoded order = %v, want %v", got, want)
	}
	if v, _ := out.Get("a"); v != 7 {
		t.Errorf("decoded a = %d, want 7", v)
	}
}

func TestCBOREncodesPairs(t *testing.T) {
	m := New[string, int]()
	m.Put("k", 1)

	data, err := m.MarshalCBOR()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	// [["k", 1]]
	want := []byte{0x81, 0x82, 0x61, 'k', 0x01}
	if !bytes.Equal(data, want) {
		t.Errorf("encoding = %x, want %x", data, want)
	}
}

func TestCBOREmptyMap(t *testing.T) {
	data, err := New[string, int]().MarshalCBOR()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !bytes.Equal(data, []byte{0x80}) {
		t.Errorf("empty map encoding = %x, want 80", data)
	}
}

func TestCBORDecodeReplacesContents(t *testing.T) {
	src := New[int, string]()
	src.Put(1, "one")
	data, _ := src.MarshalCBOR()

	dst := New[int, string]()
	dst.Put(9, "nine")
	if err := dst.UnmarshalCBOR(data); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if dst.ContainsKey(9) || dst.Size() != 1 {
		t.Errorf("expected old contents to be dropped, got %v", dst)
	}
}

func TestCBORDecodeOverCapacity(t *testing.T) {
	entries := make([]entry[string, int], Capacity+1)
	for i := range entries {
		entries[i] = entry[string, int]{Key: fmt.Sprintf("k%d", i), Value: i}
	}
	data, err := cbor.Marshal(entries)
	if err != nil {
		t.Fatalf("marshal entries: %v", err)
	}

	m := New[string, int]()
	err = m.UnmarshalCBOR(data)
	if !errors.Is(err, ErrCapacityExceeded) {
		t.Fatalf("expected ErrCapacityExceeded, got %v", err)
	}
	if m.Size() != Capacity {
		t.Errorf("size = %d, want %d", m.Size(), Capacity)
	}
}

func TestCBORDecodeInvalid(t *testing.T) {
	m := New[string, int]()
	m.Put("keep", 1)

	err := m.UnmarshalCBOR([]byte{0xff, 0x00})
	var mapErr *MapError
	if !errors.As(err, &mapErr) || mapErr.Op != "decode" {
		t.Fatalf("expected decode *MapError, got %v", err)
	}
	if !m.ContainsKey("keep") {
		t.Error("failed decode must not clear the map")
	}
}
