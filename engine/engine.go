// Package engine implements the core SRP-6a arithmetic: k, v, A, B, u,
// and the client/server derivations of S and K. It is deliberately
// ignorant of how x, M, and M2 are computed — those are supplied by a
// Variant (see variant.go and standard.go) so the same arithmetic core
// can interoperate with different SRP-6a deployments.
//
// Glossary (as seen at http://srp.stanford.edu/design.html):
//
//	N    A large safe prime (N = 2q+1, where q is prime)
//	g    A generator modulo N
//	k    Multiplier parameter, k = H(N, PAD(g))
//	s    User's salt
//	I    Username
//	p    Cleartext password
//	H()  One-way hash function
//	^    (Modular) exponentiation
//	u    Random scrambling parameter
//	a,b  Secret ephemeral values
//	A,B  Public ephemeral values
//	x    Private key (derived from p and s)
//	v    Password verifier
package engine

import (
	"math/big"

	"github.com/tomsons/go-esrp/esrpcrypto"
	"github.com/tomsons/go-esrp/group"
	"github.com/tomsons/go-esrp/value"
)

// Engine holds the arithmetic defined by a (Crypto, Group) pair. N, G,
// and k are fixed at construction; k depends only on (N, G, H) and is
// computed once here rather than lazily, per the spec's own fallback for
// languages without first-class lazy fields.
type Engine struct {
	crypto esrpcrypto.Crypto
	n      value.Value
	g      value.Value
	k      value.Value
}

// New constructs an Engine for the given crypto provider and group.
func New(crypto esrpcrypto.Crypto, grp group.Group) Engine {
	return Engine{
		crypto: crypto,
		n:      grp.N,
		g:      grp.G,
		k:      crypto.H(grp.N, Pad(grp.G, grp.N)),
	}
}

// N returns the group modulus.
func (e Engine) N() value.Value { return e.n }

// G returns the group generator.
func (e Engine) G() value.Value { return e.g }

// K returns the multiplier parameter, k = H(N, PAD(g)), memoized at
// construction.
func (e Engine) K() value.Value { return e.k }

// Pad left-pads v's byte string with zero bytes to the byte length of n
// (RFC 5054's PAD convention), used in the computation of k and u.
func Pad(v, n value.Value) value.Value {
	width := len(n.Bin())
	b := v.Bin()
	if len(b) >= width {
		return v
	}
	out := make([]byte, width)
	copy(out[width-len(b):], b)
	return value.FromBytes(out)
}

// CalcV computes the password verifier v = g^x mod N.
func (e Engine) CalcV(x value.Value) value.Value {
	return e.modExpNonNeg(e.g.Int(), x.Int())
}

// CalcA computes the client's public ephemeral A = g^a mod N.
func (e Engine) CalcA(a value.Value) value.Value {
	return e.modExpNonNeg(e.g.Int(), a.Int())
}

// CalcB computes the server's public ephemeral B = (k*v + g^b) mod N.
// The final mod N is mandatory — omitting it is a published
// vulnerability (https://www.computest.nl/blog/exploiting-two-buggy-srp-implementations/).
func (e Engine) CalcB(b, v value.Value) value.Value {
	kv := new(big.Int).Mul(e.k.Int(), v.Int())
	gb := e.modExpNonNeg(e.g.Int(), b.Int()).Int()
	sum := new(big.Int).Add(kv, gb)
	reduced := new(big.Int).Mod(sum, e.n.Int())
	mustValue, err := value.FromInt(reduced)
	if err != nil {
		panic(err) // Mod against a positive modulus never yields a negative result
	}
	return mustValue
}

// CalcU computes the scrambling parameter u = H(PAD(A), PAD(B)).
func (e Engine) CalcU(a, b value.Value) value.Value {
	return e.crypto.H(Pad(a, e.n), Pad(b, e.n))
}

// CalcClientS computes the client's premaster secret:
//
//	S = (B - k*g^x) ^ (a + u*x) mod N
//
// The intermediate base (B - k*g^x) may be negative before the final
// exponentiation; modExp reduces it mod N before raising it to a power,
// matching the spec's interop convention for negative bases.
func (e Engine) CalcClientS(b, a, x, u value.Value) value.Value {
	kgx := new(big.Int).Mul(e.k.Int(), e.modExpNonNeg(e.g.Int(), x.Int()).Int())
	base := new(big.Int).Sub(b.Int(), kgx)

	ux := new(big.Int).Mul(u.Int(), x.Int())
	exp := new(big.Int).Add(a.Int(), ux)

	return e.modExpAny(base, exp)
}

// CalcServerS computes the server's premaster secret:
//
//	S = (A * v^u) ^ b mod N
func (e Engine) CalcServerS(a, b, v, u value.Value) value.Value {
	vu := e.modExpNonNeg(v.Int(), u.Int()).Int()
	base := new(big.Int).Mul(a.Int(), vu)
	return e.modExpAny(base, b.Int())
}

// CalcK computes the session key K = H(S).
func (e Engine) CalcK(s value.Value) value.Value {
	return e.crypto.H(s)
}

// modExpNonNeg computes a^b mod N for non-negative a, b — the common
// case for every SRP exponentiation except the client's S, whose base
// may be negative.
func (e Engine) modExpNonNeg(a, b *big.Int) value.Value {
	return e.modExpAny(a, b)
}

// modExpAny computes a^b mod N, reducing a modulo N first so that a
// negative (or otherwise out-of-range) base is handled the same way
// other SRP-6a implementations do (big.Int.Exp itself requires a
// non-negative base).
func (e Engine) modExpAny(a, b *big.Int) value.Value {
	base := new(big.Int).Mod(a, e.n.Int())
	r := new(big.Int).Exp(base, b, e.n.Int())
	v, err := value.FromInt(r)
	if err != nil {
		panic(err) // Exp with a positive modulus never yields a negative result
	}
	return v
}
