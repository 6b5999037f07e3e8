package esrpcrypto

import (
	"errors"
	"math/big"
	"testing"

	"github.com/tomsons/go-esrp/value"
)

func mustHex(t *testing.T, h string) value.Value {
	t.Helper()
	v, err := value.FromHex(h)
	if err != nil {
		t.Fatalf("value.FromHex(%q) error = %v", h, err)
	}
	return v
}

func TestOpenSSL_H_SHA256_PublishedVector(t *testing.T) {
	o, err := NewOpenSSL(Options{"hash": "sha256"})
	if err != nil {
		t.Fatalf("NewOpenSSL() error = %v", err)
	}
	got := o.H(mustHex(t, "07c0"))
	want := "34b902c818ebdb547c4aa8d161dd701bd5f78ac3df6b5ab7fac3c35dae795e56"
	if got.Hex() != want {
		t.Errorf("H() = %s, want %s", got.Hex(), want)
	}
}

func TestOpenSSL_H_SHA1_PublishedVector(t *testing.T) {
	o, err := NewOpenSSL(Options{"hash": "sha1"})
	if err != nil {
		t.Fatalf("NewOpenSSL() error = %v", err)
	}
	got := o.H(mustHex(t, "07c0"))
	want := "00ff3b16b0f555d3feb62f988fb3aab81c1c50ea"
	if got.Hex() != want {
		t.Errorf("H() = %s, want %s", got.Hex(), want)
	}
}

func TestOpenSSL_KeyedHash_HMACSHA256_PublishedVector(t *testing.T) {
	o, err := NewOpenSSL(Options{"hash": "sha256", "mac": "hmac"})
	if err != nil {
		t.Fatalf("NewOpenSSL() error = %v", err)
	}
	key := mustHex(t, "f4ffd830b255f778b9d88966e87ae1d72702227cfcbeae4bd1e4b39fff136060")
	msg := mustHex(t, "07c0")
	got := o.KeyedHash(key, msg)
	want := "ecfa17f317164259824287aa9feabeda9c784e7d672b118965ebff33f5373abe"
	if got.Hex() != want {
		t.Errorf("KeyedHash() = %s, want %s", got.Hex(), want)
	}
}

func TestOpenSSL_KeyedHash_LegacySHA1_PublishedVector(t *testing.T) {
	o, err := NewOpenSSL(Options{"hash": "sha1", "mac": "legacy"})
	if err != nil {
		t.Fatalf("NewOpenSSL() error = %v", err)
	}
	key := mustHex(t, "abcd")
	msg := mustHex(t, "07c0")
	got := o.KeyedHash(key, msg)
	want := "a19b96e98cae5ba7b41a8a389bdb61cebe2d0a17"
	if got.Hex() != want {
		t.Errorf("KeyedHash() = %s, want %s", got.Hex(), want)
	}
}

func TestOpenSSL_PasswordHash_PBKDF2_PublishedVector(t *testing.T) {
	o, err := NewOpenSSL(Options{"hash": "sha256"})
	if err != nil {
		t.Fatalf("NewOpenSSL() error = %v", err)
	}
	salt, err := value.FromInt(big.NewInt(1117))
	if err != nil {
		t.Fatalf("value.FromInt() error = %v", err)
	}
	got := o.PasswordHash(salt, "verysecure")
	want := "9e4cae19d40bc58571ae7237cb13563f5598da5d596389cb55e8311be2d90cbe"
	if got.Hex() != want {
		t.Errorf("PasswordHash() = %s, want %s", got.Hex(), want)
	}
}

func TestOpenSSL_PasswordHash_IsDeterministic(t *testing.T) {
	o, err := NewOpenSSL(Options{})
	if err != nil {
		t.Fatalf("NewOpenSSL() error = %v", err)
	}
	salt, _ := value.FromInt(big.NewInt(1117))
	a := o.PasswordHash(salt, "verysecure")
	b := o.PasswordHash(salt, "verysecure")
	if a.Hex() != b.Hex() {
		t.Errorf("PasswordHash() not deterministic: %s != %s", a.Hex(), b.Hex())
	}
}

func TestOpenSSL_SecureCompare(t *testing.T) {
	o, _ := NewOpenSSL(Options{})
	a := mustHex(t, "00ff3b16b0f555d3feb62f988fb3aab81c1c50ea")
	b := mustHex(t, "00ff3b16b0f555d3feb62f988fb3aab81c1c50ea")
	c := mustHex(t, "00ff3b16b0f555d3feb62f988fb3aab81c1c50eb")

	if !o.SecureCompare(a, b) {
		t.Error("SecureCompare(a, a) = false, want true")
	}
	if o.SecureCompare(a, c) {
		t.Error("SecureCompare(a, b-with-one-differing-bit) = true, want false")
	}
}

func TestOpenSSL_Salt_And_Random_LengthMatchesDigest(t *testing.T) {
	o, err := NewOpenSSL(Options{"hash": "sha512"})
	if err != nil {
		t.Fatalf("NewOpenSSL() error = %v", err)
	}
	if got := len(o.Salt().Bin()); got != 64 {
		t.Errorf("len(Salt()) = %d, want 64", got)
	}
	if got := len(o.Random(10).Bin()); got != 10 {
		t.Errorf("len(Random(10)) = %d, want 10", got)
	}
}

func TestNewOpenSSL_UnknownHash_Errors(t *testing.T) {
	_, err := NewOpenSSL(Options{"hash": "md5"})
	var notApplicable *NotApplicableError
	if !errors.As(err, &notApplicable) {
		t.Fatalf("NewOpenSSL() error = %v, want *NotApplicableError", err)
	}
	if notApplicable.Field != "hash" {
		t.Errorf("NotApplicableError.Field = %q, want %q", notApplicable.Field, "hash")
	}
}

func TestNewOpenSSL_UnknownKey_Errors(t *testing.T) {
	_, err := NewOpenSSL(Options{"kdf": "bcrypt"})
	var notApplicable *NotApplicableError
	if !errors.As(err, &notApplicable) {
		t.Fatalf("NewOpenSSL() error = %v, want *NotApplicableError", err)
	}
}
