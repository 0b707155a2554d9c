// Package identity provides the intrinsic 32-bit hash of a value: the hash a
// value carries by itself, independent of any seed. Equal values (==) always
// produce equal hashes, which is what bucketed containers rely on.
package identity

import (
	"math"
	"reflect"

	"github.com/cespare/xxhash/v2"
)

// HashCoder is implemented by values that supply their own hash.
// The result must be stable while the value is used as a key.
type HashCoder interface {
	HashCode() int32
}

// bool hashes, chosen as two arbitrary primes
const (
	trueHash  = 1231
	falseHash = 1237
)

// Hash returns the intrinsic hash of key.
func Hash[K comparable](key K) int32 {
	return Of(key)
}

// Of returns the intrinsic hash of v. nil, including a typed nil pointer,
// hashes to 0. Integers fold to 32 bits, strings and byte slices use xxhash,
// pointers hash by address, and structs and arrays combine the hashes of
// their fields or elements, so +0 and -0 inside them still hash alike.
func Of(v any) int32 {
	switch k := v.(type) {
	case nil:
		return 0
	case string:
		return fold(xxhash.Sum64String(k))
	case []byte:
		return fold(xxhash.Sum64(k))
	case bool:
		return boolHash(k)
	case int:
		return fold(uint64(k))
	case int8:
		return int32(k)
	case int16:
		return int32(k)
	case int32:
		return k
	case int64:
		return fold(uint64(k))
	case uint:
		return fold(uint64(k))
	case uint8:
		return int32(k)
	case uint16:
		return int32(k)
	case uint32:
		return int32(k)
	case uint64:
		return fold(k)
	case uintptr:
		return fold(uint64(k))
	case float32:
		return float32Hash(k)
	case float64:
		return float64Hash(k)
	}
	return valueHash(reflect.ValueOf(v))
}

// valueHash hashes named and composite types. It reads through reflect
// accessors so unexported fields are covered too.
func valueHash(rv reflect.Value) int32 {
	if !rv.IsValid() {
		return 0
	}
	if isNil(rv) {
		return 0
	}
	if rv.CanInterface() {
		if hc, ok := rv.Interface().(HashCoder); ok {
			return hc.HashCode()
		}
	}

	switch rv.Kind() {
	case reflect.Bool:
		return boolHash(rv.Bool())
	case reflect.Int8, reflect.Int16, reflect.Int32:
		return int32(rv.Int())
	case reflect.Int, reflect.Int64:
		return fold(uint64(rv.Int()))
	case reflect.Uint8, reflect.Uint16, reflect.Uint32:
		return int32(uint32(rv.Uint()))
	case reflect.Uint, reflect.Uint64, reflect.Uintptr:
		return fold(rv.Uint())
	case reflect.Float32:
		return float32Hash(float32(rv.Float()))
	case reflect.Float64:
		return float64Hash(rv.Float())
	case reflect.Complex64, reflect.Complex128:
		c := rv.Complex()
		return combine(combine(1, float64Hash(real(c))), float64Hash(imag(c)))
	case reflect.String:
		return fold(xxhash.Sum64String(rv.String()))
	case reflect.Pointer, reflect.Chan, reflect.UnsafePointer, reflect.Map, reflect.Func:
		return fold(uint64(rv.Pointer()))
	case reflect.Interface:
		return valueHash(rv.Elem())
	case reflect.Struct:
		h := int32(1)
		t := rv.Type()
		for i := 0; i < rv.NumField(); i++ {
			if t.Field(i).Name == "_" { // blank fields are ignored by ==
				continue
			}
			h = combine(h, valueHash(rv.Field(i)))
		}
		return h
	case reflect.Array, reflect.Slice:
		h := int32(1)
		for i := 0; i < rv.Len(); i++ {
			h = combine(h, valueHash(rv.Index(i)))
		}
		return h
	}
	return 0
}

func isNil(rv reflect.Value) bool {
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Chan, reflect.Func, reflect.Slice:
		return rv.IsNil()
	}
	return false
}

func boolHash(b bool) int32 {
	if b {
		return trueHash
	}
	return falseHash
}

func float32Hash(f float32) int32 {
	if f == 0 { // +0 == -0
		return 0
	}
	return int32(math.Float32bits(f))
}

func float64Hash(f float64) int32 {
	if f == 0 {
		return 0
	}
	return fold(math.Float64bits(f))
}

// combine mixes h into acc the way list hashes do: acc*31 + h.
func combine(acc, h int32) int32 {
	return int32(uint32(acc)*31 + uint32(h))
}

// fold xors the high half of h into the low half.
func fold(h uint64) int32 {
	return int32(uint32(h) ^ uint32(h>>32))
}
