// Package crypto seals the stored session credential so that the bearer
// token never sits in plaintext inside the local keystore file.
package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
)

// ErrSealedBlobTooShort is returned by Open when the blob is shorter than
// the GCM nonce and therefore cannot have been produced by Seal.
var ErrSealedBlobTooShort = errors.New("sealed blob too short")

// Sealer encrypts and decrypts small secrets with a key derived from an
// application secret.
type Sealer interface {
	// Seal encrypts plain and returns nonce-prefixed ciphertext.
	Seal(plain []byte) ([]byte, error)

	// Open decrypts a blob produced by Seal. Returns an error if the blob is
	// malformed or was sealed under a different secret.
	Open(blob []byte) ([]byte, error)
}

// keystoreSealer derives a 256-bit key from the configured secret with
// Argon2id and wraps payloads with AES-256-GCM, nonce prepended:
// blob = nonce ‖ ciphertext.
type keystoreSealer struct {
	key []byte
}

// kdfSalt domain-separates the keystore sealing key from any other key the
// application might ever derive from the same secret.
var kdfSalt = []byte("societyhub/keystore/v1")

// NewSealer constructs a [Sealer] keyed by secret. The Argon2id parameters
// follow the OWASP recommendation (1 iteration, 64 MiB, 4 threads, 32-byte
// key).
func NewSealer(secret string) Sealer {
	key := argon2.IDKey([]byte(secret), kdfSalt, 1, 64*1024, 4, 32)
	return &keystoreSealer{key: key}
}

// Seal implements [Sealer].
func (s *keystoreSealer) Seal(plain []byte) ([]byte, error) {
	gcm, err := s.aead()
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err = io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("read nonce: %w", err)
	}

	return append(nonce, gcm.Seal(nil, nonce, plain, nil)...), nil
}

// Open implements [Sealer].
func (s *keystoreSealer) Open(blob []byte) ([]byte, error) {
	gcm, err := s.aead()
	if err != nil {
		return nil, err
	}

	if len(blob) < gcm.NonceSize() {
		return nil, ErrSealedBlobTooShort
	}

	nonce, ciphertext := blob[:gcm.NonceSize()], blob[gcm.NonceSize():]
	plain, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("open sealed blob: %w", err)
	}

	return plain, nil
}

func (s *keystoreSealer) aead() (cipher.AEAD, error) {
	block, err := aes.NewCipher(s.key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	return gcm, nil
}
