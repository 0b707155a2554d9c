package boundedmap

import (
	cbor "github.com/fxamacker/cbor/v2"
)

// entry is one key/value pair on the wire, encoded as a 2-element array.
type entry[K comparable, V any] struct {
	_     struct{} `cbor:",toarray"`
	Key   K
	Value V
}

// MarshalCBOR encodes the map as an array of [key, value] pairs in insertion
// order. A CBOR map is not used since decoders are free to reorder it.
func (m *BoundedOrderedMap[K, V]) MarshalCBOR() ([]byte, error) {
	entries := make([]entry[K, V], 0, m.size)
	for k, v := range m.All() {
		entries = append(entries, entry[K, V]{Key: k, Value: v})
	}
	b, err := cbor.Marshal(entries)
	if err != nil {
		return nil, wrapError("encode", err)
	}
	return b, nil
}

// UnmarshalCBOR replaces the contents of m with the encoded pairs, putting
// them in order. More than Capacity distinct keys fails with
// ErrCapacityExceeded, leaving the first Capacity entries in place.
func (m *BoundedOrderedMap[K, V]) UnmarshalCBOR(data []byte) error {
	var entries []entry[K, V]
	if err := cbor.Unmarshal(data, &entries); err != nil {
		return wrapError("decode", err)
	}

	m.Clear()
	for _, e := range entries {
		if _, _, err := m.Put(e.Key, e.Value); err != nil {
			return err
		}
	}
	return nil
}
