// go-esrp - golang implementation of enhanced SRP-6a
//
// Copyright 2013-2017 Sudhi Herle <sudhi.herle-at-gmail-dot-com>
// Copyright 2019-2026 go-esrp contributors
// License: MIT

// Package esrp implements the Enhanced Secure Remote Password protocol
// (SRP-6a, augmented with pluggable cryptographic providers). SRP-6a is an augmented, password-authenticated key exchange:
// a client and a server each derive the same high-entropy session key
// from a low-entropy password, without the password or any
// password-equivalent ever crossing the wire and without the server
// storing the password itself — only a verifier.
//
// The protocol's arithmetic core lives in package engine. Pluggable
// cryptographic primitives (hash, password hash, keyed hash, random,
// constant-time compare) live behind the Crypto interface in package
// esrpcrypto, with two concrete providers: OpenSSL-style (SHA family +
// PBKDF2 + HMAC) and NaCl-style (SHA/BLAKE2b + scrypt/argon2 + HMAC).
// Group parameters (N, g) come from package group, preloaded with the
// RFC 5054 Appendix A safe-prime groups. Package value mediates losslessly
// between unsigned big integers, big-endian byte strings, and lowercase
// hex, the three representations SRP values are passed around in.
//
// This module implements the cryptographic core only. Transport, wire
// serialization, session/connection objects, and verifier storage are
// left to the caller; see SPEC_FULL.md for the full list of what is and
// is not in scope.
package esrp
