package engine

import (
	"github.com/tomsons/go-esrp/esrpcrypto"
	"github.com/tomsons/go-esrp/group"
	"github.com/tomsons/go-esrp/value"
)

// Standard is the default Variant: it doesn't involve the username, uses
// K as a keyed-hash key rather than folding it into an unkeyed digest,
// and tries to conform to RFC 5054 as much as possible (spec §4.4.1).
type Standard struct {
	Engine
	crypto esrpcrypto.Crypto
}

// NewStandard constructs an Engine using the Standard variant.
func NewStandard(crypto esrpcrypto.Crypto, grp group.Group) Standard {
	return Standard{
		Engine: New(crypto, grp),
		crypto: crypto,
	}
}

// CalcX derives the private key:
//
//	x = PasswordHash(s, p)
//
// The username is accepted (to satisfy Variant) but ignored, per spec
// §4.4.1.
func (s Standard) CalcX(password string, salt value.Value, _ string) (value.Value, error) {
	return s.crypto.PasswordHash(salt, password), nil
}

// CalcM computes the client's proof message:
//
//	M = KeyedHash(K, A || salt || B)
//
// K, S, and username are accepted (to satisfy Variant); S and username
// are unused by this variant, matching spec §4.4.1.
func (s Standard) CalcM(k, a, b, _s, salt value.Value, _ string) (value.Value, error) {
	msg := value.FromBytes(concatBin(a, salt, b))
	return s.crypto.KeyedHash(k, msg), nil
}

// CalcM2 computes the server's proof message (HAMK):
//
//	M2 = KeyedHash(K, A || M)
//
// S is accepted (to satisfy Variant) but unused, matching spec §4.4.1.
func (s Standard) CalcM2(k, a, m, _s value.Value) (value.Value, error) {
	msg := value.FromBytes(concatBin(a, m))
	return s.crypto.KeyedHash(k, msg), nil
}

// concatBin concatenates the big-endian byte views of vs, in order.
func concatBin(vs ...value.Value) []byte {
	var out []byte
	for _, v := range vs {
		out = append(out, v.Bin()...)
	}
	return out
}

var _ Variant = Standard{}
