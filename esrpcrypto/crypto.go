// Package esrpcrypto provides the cryptographic primitive facade that
// plugs concrete hash, password-KDF, MAC, randomness, and constant-time
// comparison implementations into the SRP engine. Two providers are
// shipped: OpenSSL-style (SHA family + PBKDF2 + HMAC) and NaCl-style
// (SHA/BLAKE2b + scrypt/argon2 + HMAC). Callers may supply their own by
// implementing Crypto directly.
//
// The package is named esrpcrypto, not crypto, so that provider files can
// import the standard library's crypto package (for its hash-function
// registry) without a name collision.
package esrpcrypto

import (
	"crypto/subtle"
	"fmt"

	"github.com/tomsons/go-esrp/value"
)

// Crypto is the capability interface the engine depends on. It never
// touches randomness beyond what it is asked to produce via Salt/Random —
// ephemeral secrets (a, b) are the caller's responsibility.
type Crypto interface {
	// H concatenates the chosen representation (hex or raw bytes,
	// provider-defined) of each of values and returns the digest.
	H(values ...value.Value) value.Value

	// PasswordHash derives the private key material from a salt and a
	// UTF-8 password using the configured KDF. Deterministic.
	PasswordHash(salt value.Value, password string) value.Value

	// KeyedHash computes a MAC of msg keyed by key.
	KeyedHash(key, msg value.Value) value.Value

	// Salt returns cryptographically random bytes sized to the
	// provider's hash digest length.
	Salt() value.Value

	// Random returns n cryptographically random bytes.
	Random(n int) value.Value

	// SecureCompare reports whether a and b are equal, in constant time.
	SecureCompare(a, b value.Value) bool
}

// NotApplicableError is returned by provider constructors when an Options
// record names a field the provider does not implement, or a value the
// provider does not support for a field it does implement.
type NotApplicableError struct {
	Field   string
	Value   string
	Allowed []string
}

func (e *NotApplicableError) Error() string {
	return fmt.Sprintf("esrpcrypto: %q is not applicable for %s (allowed: %v)", e.Value, e.Field, e.Allowed)
}

func notApplicable(field, value string, allowed []string) error {
	return &NotApplicableError{Field: field, Value: value, Allowed: allowed}
}

// Options is a free-form configuration record. Each provider enumerates
// its own recognized keys and accepted values; unknown keys or
// unsupported values fail construction with *NotApplicableError rather
// than being silently ignored or defaulted.
type Options map[string]any

// stringOpt returns options[key] as a string, or def if the key is
// absent. It fails with NotApplicableError if the key is present but not
// a string.
func (o Options) stringOpt(field, def string) (string, error) {
	v, ok := o[field]
	if !ok {
		return def, nil
	}
	s, ok := v.(string)
	if !ok {
		return "", notApplicable(field, fmt.Sprint(v), []string{"<string>"})
	}
	return s, nil
}

// boolOpt returns options[key] as a bool, or def if the key is absent.
func (o Options) boolOpt(field string, def bool) (bool, error) {
	v, ok := o[field]
	if !ok {
		return def, nil
	}
	b, ok := v.(bool)
	if !ok {
		return false, notApplicable(field, fmt.Sprint(v), []string{"true", "false"})
	}
	return b, nil
}

// intOpt returns options[key] as an int, or def if the key is absent.
// Accepts int or int64 so callers can build Options literals either way.
// The sign is not checked here; callers that need a positive value check
// it themselves.
func (o Options) intOpt(field string, def int) (int, error) {
	v, ok := o[field]
	if !ok {
		return def, nil
	}
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	default:
		return 0, notApplicable(field, fmt.Sprint(v), []string{"<positive int>"})
	}
}

// rejectUnknownKeys fails construction if o contains any key outside
// allowed — per spec §4.3, a provider must not silently accept or
// default a field it doesn't recognize.
func (o Options) rejectUnknownKeys(allowed ...string) error {
	ok := make(map[string]bool, len(allowed))
	for _, k := range allowed {
		ok[k] = true
	}
	for k := range o {
		if !ok[k] {
			return notApplicable(k, fmt.Sprint(o[k]), allowed)
		}
	}
	return nil
}

// secureCompareBytes is shared by both providers' SecureCompare: equal
// length is checked first (constant-time compare requires it), then
// subtle.ConstantTimeCompare runs over the fixed-length inputs.
func secureCompareBytes(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	return subtle.ConstantTimeCompare(a, b) == 1
}
