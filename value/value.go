// Package value implements the representation-agnostic SRP value type.
//
// Most of the SRP arithmetic is done on big.Int, but the numbers exchanged
// between client and server are carried as big-endian byte strings or
// lowercase hex strings. Value mediates between all three so the rest of
// the library can take any representation in and read any representation
// back out, without the caller worrying about which one is canonical.
package value

import (
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"
)

// ErrNegativeValue is returned by FromInt when handed a negative integer.
// SRP quantities are all non-negative by construction; a negative value
// can only mean the caller built it wrong.
var ErrNegativeValue = errors.New("value: negative integer")

// ErrMalformedValue is returned by FromHex when the input is not valid
// hexadecimal.
var ErrMalformedValue = errors.New("value: malformed hex string")

// Value holds one non-negative integer and its int/bin/hex views. All
// three views are computed once, at construction, and Value is immutable
// afterward — it is safe to copy and to share across goroutines.
type Value struct {
	i   big.Int
	bin []byte
	hex string
}

// Zero is the Value representing the integer 0.
var Zero = mustFromInt(big.NewInt(0))

func mustFromInt(n *big.Int) Value {
	v, err := FromInt(n)
	if err != nil {
		panic(err)
	}
	return v
}

// FromInt builds a Value from an arbitrary-precision unsigned integer.
// It fails with ErrNegativeValue if n is negative.
func FromInt(n *big.Int) (Value, error) {
	if n.Sign() < 0 {
		return Value{}, ErrNegativeValue
	}
	b := n.Bytes() // big.Int.Bytes already yields the minimal big-endian encoding
	return Value{
		i:   *new(big.Int).Set(n),
		bin: b,
		hex: binToHex(b),
	}, nil
}

// FromBytes builds a Value from a big-endian byte string. Every byte
// string is a valid (if not unique) encoding of some non-negative
// integer, so this never fails.
func FromBytes(b []byte) Value {
	cp := append([]byte(nil), b...)
	return Value{
		i:   *new(big.Int).SetBytes(cp),
		bin: cp,
		hex: binToHex(cp),
	}
}

// FromHex builds a Value from a hexadecimal string. Odd-length input is
// left-padded with a single '0' before decoding, per the canonical
// even-length encoding rule. Non-hex characters fail with
// ErrMalformedValue.
func FromHex(h string) (Value, error) {
	if len(h)%2 != 0 {
		h = "0" + h
	}
	b, err := hex.DecodeString(h)
	if err != nil {
		return Value{}, fmt.Errorf("%w: %v", ErrMalformedValue, err)
	}
	return Value{
		i:   *new(big.Int).SetBytes(b),
		bin: b,
		hex: binToHex(b),
	}, nil
}

// binToHex encodes b as lowercase hex, the canonical even-length view.
func binToHex(b []byte) string {
	return hex.EncodeToString(b)
}

// Int returns the integer view. The returned *big.Int is a defensive copy;
// mutating it does not affect the Value.
func (v Value) Int() *big.Int {
	return new(big.Int).Set(&v.i)
}

// Bin returns the big-endian byte-string view. For a Value built by
// FromInt (or Mod) this is the minimal encoding of Int(), empty for zero,
// matching big.Int.Bytes; a Value built by FromBytes or FromHex keeps the
// bytes it was given, leading zero bytes included.
func (v Value) Bin() []byte {
	return append([]byte(nil), v.bin...)
}

// Hex returns the lowercase hexadecimal view, always of even length.
func (v Value) Hex() string {
	return v.hex
}

// IsZero reports whether the Value encodes the integer 0.
func (v Value) IsZero() bool {
	return v.i.Sign() == 0
}

// Mod returns a new Value holding v.Int() mod n.
func (v Value) Mod(n Value) Value {
	r := new(big.Int).Mod(&v.i, &n.i)
	return Value{i: *r, bin: r.Bytes(), hex: binToHex(r.Bytes())}
}

// String implements fmt.Stringer, returning the hex view — SRP values are
// conventionally logged/printed as hex, never as decimal integers.
func (v Value) String() string {
	return v.hex
}
