package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/jaevor/go-nanoid"
)

const (
	gcmNonceSize = 12
	gcmTagSize   = 16
)

var ErrInvalidCiphertext = errors.New("invalid ciphertext")

// SecretCipher encrypts site API secrets at rest with AES-256-GCM. The
// stored blob is base64(nonce || tag || ciphertext).
type SecretCipher struct {
	key []byte
}

func NewSecretCipher(keyBase64 string) (*SecretCipher, error) {
	key, err := base64.StdEncoding.DecodeString(keyBase64)
	if err != nil {
		return nil, fmt.Errorf("decoding secrets key: %w", err)
	}
	if len(key) != 32 {
		return nil, errors.New("secrets key must be 32 bytes (256 bits)")
	}
	return &SecretCipher{key: key}, nil
}

func (c *SecretCipher) Encrypt(plaintext string) (string, error) {
	block, err := aes.NewCipher(c.key)
	if err != nil {
		return "", err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, gcmNonceSize)
	if _, err := rand.Read(nonce); err != nil {
		return "", err
	}

	// Seal appends ciphertext||tag; reorder to nonce||tag||ciphertext to
	// stay compatible with blobs written by the original hub.
	sealed := gcm.Seal(nil, nonce, []byte(plaintext), nil)
	ciphertext := sealed[:len(sealed)-gcmTagSize]
	tag := sealed[len(sealed)-gcmTagSize:]

	out := make([]byte, 0, gcmNonceSize+gcmTagSize+len(ciphertext))
	out = append(out, nonce...)
	out = append(out, tag...)
	out = append(out, ciphertext...)

	return base64.StdEncoding.EncodeToString(out), nil
}

func (c *SecretCipher) Decrypt(blob string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(blob)
	if err != nil {
		return "", ErrInvalidCiphertext
	}
	if len(raw) < gcmNonceSize+gcmTagSize {
		return "", ErrInvalidCiphertext
	}

	nonce := raw[:gcmNonceSize]
	tag := raw[gcmNonceSize : gcmNonceSize+gcmTagSize]
	ciphertext := raw[gcmNonceSize+gcmTagSize:]

	block, err := aes.NewCipher(c.key)
	if err != nil {
		return "", err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", err
	}

	sealed := make([]byte, 0, len(ciphertext)+gcmTagSize)
	sealed = append(sealed, ciphertext...)
	sealed = append(sealed, tag...)

	plaintext, err := gcm.Open(nil, nonce, sealed, nil)
	if err != nil {
		return "", ErrInvalidCiphertext
	}
	return string(plaintext), nil
}

// ComputeSignature returns base64(HMAC-SHA256(signatureBase, secret)).
func ComputeSignature(signatureBase, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(signatureBase))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

// VerifySignature compares in constant time.
func VerifySignature(signatureBase, signature, secret string) bool {
	expected := ComputeSignature(signatureBase, secret)
	return hmac.Equal([]byte(expected), []byte(signature))
}

// NewAPIKey returns a 32-char opaque site identifier.
func NewAPIKey() (string, error) {
	gen, err := nanoid.CustomASCII("abcdefghijklmnopqrstuvwxyz0123456789", 32)
	if err != nil {
		return "", err
	}
	return gen(), nil
}

// NewAPISecret returns a 32-char secret shown to the caller exactly once.
func NewAPISecret() (string, error) {
	gen, err := nanoid.CustomASCII("ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789", 32)
	if err != nil {
		return "", err
	}
	return gen(), nil
}
