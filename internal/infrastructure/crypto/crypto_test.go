package crypto

import (
	"encoding/base64"
	"strings"
	"testing"
)

func testKey() string {
	return base64.StdEncoding.EncodeToString([]byte("0123456789abcdef0123456789abcdef"))
}

func TestSecretCipherRoundTrip(t *testing.T) {
	cipher, err := NewSecretCipher(testKey())
	if err != nil {
		t.Fatalf("NewSecretCipher: %v", err)
	}

	secret := "Wx3kP9mN2qR5tY8uA1bC4dE7fG0hJ6iK"
	blob, err := cipher.Encrypt(secret)
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}

	got, err := cipher.Decrypt(blob)
	if err != nil {
		t.Fatalf("Decrypt: %v", err)
	}
	if got != secret {
		t.Errorf("round trip mismatch: got %q want %q", got, secret)
	}
}

func TestSecretCipherBlobLayout(t *testing.T) {
	cipher, _ := NewSecretCipher(testKey())
	blob, err := cipher.Encrypt("hello")
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}
	raw, err := base64.StdEncoding.DecodeString(blob)
	if err != nil {
		t.Fatalf("blob is not base64: %v", err)
	}
	// nonce(12) + tag(16) + ciphertext(len(plaintext))
	if len(raw) != 12+16+5 {
		t.Errorf("blob length = %d, want %d", len(raw), 12+16+5)
	}
}

func TestSecretCipherRejectsTampering(t *testing.T) {
	cipher, _ := NewSecretCipher(testKey())
	blob, _ := cipher.Encrypt("hello")

	raw, _ := base64.StdEncoding.DecodeString(blob)
	raw[len(raw)-1] ^= 0xff
	tampered := base64.StdEncoding.EncodeToString(raw)

	if _, err := cipher.Decrypt(tampered); err != ErrInvalidCiphertext {
		t.Errorf("Decrypt(tampered) err = %v, want ErrInvalidCiphertext", err)
	}

	if _, err := cipher.Decrypt("not base64!!"); err != ErrInvalidCiphertext {
		t.Errorf("Decrypt(garbage) err = %v, want ErrInvalidCiphertext", err)
	}
	if _, err := cipher.Decrypt(base64.StdEncoding.EncodeToString([]byte("short"))); err != ErrInvalidCiphertext {
		t.Errorf("Decrypt(short) err = %v, want ErrInvalidCiphertext", err)
	}
}

func TestNewSecretCipherRejectsBadKey(t *testing.T) {
	if _, err := NewSecretCipher("%%%"); err == nil {
		t.Error("expected error for non-base64 key")
	}
	short := base64.StdEncoding.EncodeToString([]byte("too short"))
	if _, err := NewSecretCipher(short); err == nil {
		t.Error("expected error for short key")
	}
}

func TestComputeSignature(t *testing.T) {
	base := "key123|1700000000|nonceabc|1042|99.99"
	secret := "supersecret"

	sig := ComputeSignature(base, secret)
	if sig != ComputeSignature(base, secret) {
		t.Error("signature is not deterministic")
	}
	if _, err := base64.StdEncoding.DecodeString(sig); err != nil {
		t.Errorf("signature is not base64: %v", err)
	}

	if !VerifySignature(base, sig, secret) {
		t.Error("valid signature rejected")
	}
	if VerifySignature(base, sig, "othersecret") {
		t.Error("signature accepted under wrong secret")
	}
	if VerifySignature(base+"x", sig, secret) {
		t.Error("signature accepted for altered base")
	}
}

func TestKeyAndSecretGeneration(t *testing.T) {
	key, err := NewAPIKey()
	if err != nil {
		t.Fatalf("NewAPIKey: %v", err)
	}
	if len(key) != 32 {
		t.Errorf("api key length = %d, want 32", len(key))
	}
	if key != strings.ToLower(key) {
		t.Errorf("api key contains uppercase: %q", key)
	}

	secret, err := NewAPISecret()
	if err != nil {
		t.Fatalf("NewAPISecret: %v", err)
	}
	if len(secret) != 32 {
		t.Errorf("api secret length = %d, want 32", len(secret))
	}

	other, _ := NewAPIKey()
	if key == other {
		t.Error("two generated api keys collided")
	}
}
