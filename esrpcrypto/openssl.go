package esrpcrypto

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
	"hash"
	"io"
	"strings"

	"golang.org/x/crypto/pbkdf2"

	"github.com/tomsons/go-esrp/value"
)

// DefaultPBKDF2Iterations is the default PBKDF2 round count when "kdf_iter"
// is not supplied.
const DefaultPBKDF2Iterations = 20000

var opensslHashFuncs = map[string]func() hash.Hash{
	"sha1":   sha1.New,
	"sha256": sha256.New,
	"sha384": sha512.New384,
	"sha512": sha512.New,
}

// OpenSSL is the SHA-family + PBKDF2 + HMAC provider described in the
// spec as the "OpenSSL-style" provider. It never actually links against
// OpenSSL — it is built entirely on the standard library's crypto/sha*
// and crypto/hmac plus golang.org/x/crypto/pbkdf2, the same dependency
// family Tomsons-go-srp already relies on.
type OpenSSL struct {
	hashFunc  func() hash.Hash
	digestLen int
	kdf       string // "pbkdf2" | "legacy"
	kdfIter   int
	mac       string // "hmac" | "legacy"
	hexConcat bool
}

// NewOpenSSL constructs an OpenSSL provider from options. Recognized
// keys:
//   - "hash": "sha1" | "sha256" | "sha384" | "sha512" (case-insensitive,
//     dashes stripped), default "sha256"
//   - "kdf": "pbkdf2" | "legacy", default "pbkdf2"
//   - "kdf_iter": positive int, default 20000 (applies to pbkdf2 only)
//   - "mac": "hmac" | "legacy", default "hmac"
//   - "hex": bool, default false
func NewOpenSSL(opts Options) (*OpenSSL, error) {
	if opts == nil {
		opts = Options{}
	}
	if err := opts.rejectUnknownKeys("hash", "kdf", "kdf_iter", "mac", "hex"); err != nil {
		return nil, err
	}

	hashName, err := opts.stringOpt("hash", "sha256")
	if err != nil {
		return nil, err
	}
	hashName = strings.ToLower(strings.ReplaceAll(hashName, "-", ""))
	hf, ok := opensslHashFuncs[hashName]
	if !ok {
		return nil, notApplicable("hash", hashName, []string{"sha1", "sha256", "sha384", "sha512"})
	}

	kdf, err := opts.stringOpt("kdf", "pbkdf2")
	if err != nil {
		return nil, err
	}
	if kdf != "pbkdf2" && kdf != "legacy" {
		return nil, notApplicable("kdf", kdf, []string{"pbkdf2", "legacy"})
	}

	kdfIter, err := opts.intOpt("kdf_iter", DefaultPBKDF2Iterations)
	if err != nil {
		return nil, err
	}
	if kdfIter <= 0 {
		return nil, notApplicable("kdf_iter", fmt.Sprint(kdfIter), []string{"<positive int>"})
	}

	mac, err := opts.stringOpt("mac", "hmac")
	if err != nil {
		return nil, err
	}
	if mac != "hmac" && mac != "legacy" {
		return nil, notApplicable("mac", mac, []string{"hmac", "legacy"})
	}

	hexConcat, err := opts.boolOpt("hex", false)
	if err != nil {
		return nil, err
	}

	return &OpenSSL{
		hashFunc:  hf,
		digestLen: hf().Size(),
		kdf:       kdf,
		kdfIter:   kdfIter,
		mac:       mac,
		hexConcat: hexConcat,
	}, nil
}

// H concatenates the hex view of each value when configured with
// hex=true, otherwise the raw byte view, and returns the digest of the
// concatenation.
func (o *OpenSSL) H(values ...value.Value) value.Value {
	h := o.hashFunc()
	for _, v := range values {
		if o.hexConcat {
			h.Write([]byte(v.Hex()))
		} else {
			h.Write(v.Bin())
		}
	}
	return value.FromBytes(h.Sum(nil))
}

// PasswordHash derives x-material from (salt, password) via PBKDF2-HMAC,
// or via the legacy H(salt.hex || password) construction when
// kdf=legacy. The legacy form always mixes in salt's hex view,
// regardless of the hex option — this is a historical artifact the spec
// requires preserving bit-exactly for interop (see DESIGN.md §(c)).
func (o *OpenSSL) PasswordHash(salt value.Value, password string) value.Value {
	switch o.kdf {
	case "legacy":
		h := o.hashFunc()
		h.Write([]byte(salt.Hex()))
		h.Write([]byte(password))
		return value.FromBytes(h.Sum(nil))
	default: // "pbkdf2"
		derived := pbkdf2.Key([]byte(password), salt.Bin(), o.kdfIter, o.digestLen, o.hashFunc)
		return value.FromBytes(derived)
	}
}

// KeyedHash computes HMAC(key.bin, msg.bin), or the legacy
// H(msg || key) construction (each operand taken per the hex option)
// when mac=legacy.
func (o *OpenSSL) KeyedHash(key, msg value.Value) value.Value {
	switch o.mac {
	case "legacy":
		h := o.hashFunc()
		if o.hexConcat {
			h.Write([]byte(msg.Hex()))
			h.Write([]byte(key.Hex()))
		} else {
			h.Write(msg.Bin())
			h.Write(key.Bin())
		}
		return value.FromBytes(h.Sum(nil))
	default: // "hmac"
		mac := hmac.New(o.hashFunc, key.Bin())
		mac.Write(msg.Bin())
		return value.FromBytes(mac.Sum(nil))
	}
}

// Salt returns digestLen cryptographically random bytes.
func (o *OpenSSL) Salt() value.Value {
	return o.Random(o.digestLen)
}

// Random returns n cryptographically random bytes.
func (o *OpenSSL) Random(n int) value.Value {
	b := make([]byte, n)
	if _, err := io.ReadFull(rand.Reader, b); err != nil {
		panic("esrpcrypto: system random source failed: " + err.Error())
	}
	return value.FromBytes(b)
}

// SecureCompare compares the hex-string views of a and b in constant
// time. Per spec §9(b) this is documented as weaker than a byte-level
// compare, but the spec mandates hex-view comparison for this provider;
// esrpcrypto.NaCl's SecureCompare takes the stronger fixed-digest
// approach instead.
func (o *OpenSSL) SecureCompare(a, b value.Value) bool {
	return secureCompareBytes([]byte(a.Hex()), []byte(b.Hex()))
}
