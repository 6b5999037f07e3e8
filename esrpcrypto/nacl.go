package esrpcrypto

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
	"hash"
	"io"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/scrypt"

	"github.com/tomsons/go-esrp/value"
)

// scryptDefaults and argon2Defaults are the NaCl-style provider's
// per-KDF parameter defaults (spec §4.3.2).
var (
	scryptDefaults = kdfParams{opslimit: 1 << 20, memlimit: 1 << 24, digestSize: 64}
	argon2Defaults = kdfParams{opslimit: 5, memlimit: 1 << 24, digestSize: 64}
)

type kdfParams struct {
	opslimit   int
	memlimit   int
	digestSize int
}

// NaCl is the SHA/BLAKE2b + scrypt/argon2 provider described in the spec
// as the "NaCl-style" provider. Like OpenSSL, it doesn't bind a literal
// libsodium/NaCl — it is built on stdlib crypto/sha256+sha512 and
// golang.org/x/crypto's blake2b/scrypt/argon2 sub-packages, which is the
// same module Tomsons-go-srp already depends on for blake2b.
type NaCl struct {
	hashName   string // "sha256" | "sha512" | "blake2b"
	newHash    func() hash.Hash
	digestSize int // H's digest size in bytes

	kdf    string // "scrypt" | "argon2"
	params kdfParams
}

// NewNaCl constructs a NaCl provider from options. Recognized keys:
//   - "hash": "sha256" | "sha512" | "blake2b", default "sha256"
//   - "blake_digest_size": 32 | 64, only meaningful with hash=blake2b, default 32
//   - "kdf": "scrypt" | "argon2", default "scrypt"
//   - "kdf_options": map[string]any with "opslimit"/"memlimit"/"digest_size"
//     overrides merged over the chosen KDF's defaults
func NewNaCl(opts Options) (*NaCl, error) {
	if opts == nil {
		opts = Options{}
	}
	if err := opts.rejectUnknownKeys("hash", "blake_digest_size", "kdf", "kdf_options"); err != nil {
		return nil, err
	}

	hashName, err := opts.stringOpt("hash", "sha256")
	if err != nil {
		return nil, err
	}

	var newHash func() hash.Hash
	digestSize := 0

	switch hashName {
	case "sha256":
		newHash, digestSize = sha256.New, sha256.Size
	case "sha512":
		newHash, digestSize = sha512.New, sha512.Size
	case "blake2b":
		size, err := opts.intOpt("blake_digest_size", 32)
		if err != nil {
			return nil, err
		}
		if size != 32 && size != 64 {
			return nil, notApplicable("blake_digest_size", fmt.Sprint(size), []string{"32", "64"})
		}
		digestSize = size
		newHash = func() hash.Hash {
			h, err := blake2b.New(size, nil)
			if err != nil {
				panic("esrpcrypto: blake2b.New: " + err.Error())
			}
			return h
		}
	default:
		return nil, notApplicable("hash", hashName, []string{"sha256", "sha512", "blake2b"})
	}

	kdfName, err := opts.stringOpt("kdf", "scrypt")
	if err != nil {
		return nil, err
	}

	var params kdfParams
	switch kdfName {
	case "scrypt":
		params = scryptDefaults
	case "argon2":
		params = argon2Defaults
	default:
		return nil, notApplicable("kdf", kdfName, []string{"scrypt", "argon2"})
	}

	if raw, ok := opts["kdf_options"]; ok {
		override, ok := raw.(map[string]any)
		if !ok {
			return nil, notApplicable("kdf_options", fmt.Sprint(raw), []string{"<map[string]any>"})
		}
		overrideOpts := Options(override)
		params.opslimit, err = overrideOpts.intOpt("opslimit", params.opslimit)
		if err != nil {
			return nil, err
		}
		params.memlimit, err = overrideOpts.intOpt("memlimit", params.memlimit)
		if err != nil {
			return nil, err
		}
		params.digestSize, err = overrideOpts.intOpt("digest_size", params.digestSize)
		if err != nil {
			return nil, err
		}
	}

	return &NaCl{
		hashName:   hashName,
		newHash:    newHash,
		digestSize: digestSize,
		kdf:        kdfName,
		params:     params,
	}, nil
}

// H returns the digest of the concatenated byte views of values.
func (n *NaCl) H(values ...value.Value) value.Value {
	h := n.newHash()
	for _, v := range values {
		h.Write(v.Bin())
	}
	return value.FromBytes(h.Sum(nil))
}

// PasswordHash derives x-material via the configured memory-hard KDF.
// scrypt maps opslimit to the cost parameter N (must stay a power of
// two — the defaults already are) with fixed block size r=8 and
// parallelization p=1; argon2id maps opslimit to the time cost and
// memlimit (bytes) to the memory cost in KiB, with a single thread.
func (n *NaCl) PasswordHash(salt value.Value, password string) value.Value {
	switch n.kdf {
	case "argon2":
		derived := argon2.IDKey([]byte(password), salt.Bin(),
			uint32(n.params.opslimit), uint32(n.params.memlimit/1024), 1, uint32(n.params.digestSize))
		return value.FromBytes(derived)
	default: // "scrypt"
		derived, err := scrypt.Key([]byte(password), salt.Bin(), n.params.opslimit, 8, 1, n.params.digestSize)
		if err != nil {
			panic("esrpcrypto: scrypt.Key: " + err.Error())
		}
		return value.FromBytes(derived)
	}
}

// KeyedHash computes HMAC-SHA-512 when the configured digest size is 64,
// otherwise HMAC-SHA-256 — MAC selection is decoupled from H, so a
// blake2b-32 configuration still MACs with HMAC-SHA-256 (spec §4.3.2,
// §9(a)). Short keys are zero-padded to the HMAC block size by
// crypto/hmac itself per RFC 2104; no extra padding step is needed here.
func (n *NaCl) KeyedHash(key, msg value.Value) value.Value {
	hf := sha256.New
	if n.digestSize == 64 {
		hf = sha512.New
	}
	mac := hmac.New(hf, key.Bin())
	mac.Write(msg.Bin())
	return value.FromBytes(mac.Sum(nil))
}

// Salt returns H-digest-size cryptographically random bytes.
func (n *NaCl) Salt() value.Value {
	return n.Random(n.digestSize)
}

// Random returns r cryptographically random bytes.
func (n *NaCl) Random(r int) value.Value {
	b := make([]byte, r)
	if _, err := io.ReadFull(rand.Reader, b); err != nil {
		panic("esrpcrypto: system random source failed: " + err.Error())
	}
	return value.FromBytes(b)
}

// SecureCompare hashes each side to a fixed 32-byte SHA-256 digest, then
// compares those in constant time — NaCl's verify primitives require
// fixed-length inputs, so variable-length Values are normalized first
// (spec §4.3.2).
func (n *NaCl) SecureCompare(a, b value.Value) bool {
	ha := sha256.Sum256(a.Bin())
	hb := sha256.Sum256(b.Bin())
	return secureCompareBytes(ha[:], hb[:])
}
