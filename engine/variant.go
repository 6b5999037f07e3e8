package engine

import (
	"errors"

	"github.com/tomsons/go-esrp/value"
)

// ErrUnimplemented is returned by a Variant method that has deliberately
// not been filled in — see unimplementedVariant below, the Go analogue
// of invoking an abstract base-class operation (spec §7).
var ErrUnimplemented = errors.New("engine: operation not implemented by this variant")

// Variant supplies the three SRP operations that differ across published
// SRP-6a deployments: x's derivation, and the two proof messages M and
// M2. Swapping the Variant lets the same Engine arithmetic interoperate
// with a different formulation without touching k/v/A/B/u/S/K.
//
// Username is accepted by CalcX and CalcM even though the Standard variant
// ignores it (spec §4.4.1) — other documented variants (e.g. the
// RFC 5054 x = H(s, H(I, ":", p)) construction) do use it, and a
// caller's choice of Variant is what decides whether it matters.
type Variant interface {
	// CalcX derives the private key x from a password, salt, and
	// (variant-dependent) username.
	CalcX(password string, salt value.Value, username string) (value.Value, error)

	// CalcM computes the client's proof message M from the session key,
	// both public ephemerals, the premaster secret, the salt, and the
	// username. Which of these a given variant actually uses varies.
	CalcM(k, a, b, s, salt value.Value, username string) (value.Value, error)

	// CalcM2 computes the server's proof message (HAMK) from the
	// session key, the client's public ephemeral, the client's proof
	// message, and the premaster secret.
	CalcM2(k, a, m, s value.Value) (value.Value, error)
}

// unimplementedVariant is a Variant whose methods all fail with
// ErrUnimplemented. It exists to document the shape of the interface a
// new variant must fill in; it is not wired into any exported
// constructor.
type unimplementedVariant struct{}

func (unimplementedVariant) CalcX(string, value.Value, string) (value.Value, error) {
	return value.Value{}, ErrUnimplemented
}

func (unimplementedVariant) CalcM(value.Value, value.Value, value.Value, value.Value, value.Value, string) (value.Value, error) {
	return value.Value{}, ErrUnimplemented
}

func (unimplementedVariant) CalcM2(value.Value, value.Value, value.Value, value.Value) (value.Value, error) {
	return value.Value{}, ErrUnimplemented
}
