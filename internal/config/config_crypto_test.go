package config_test

import (
	"os"
	"testing"

	"github.com/prabhashaj/EdututorAI/internal/config"
)

const testKey = "01234567890123456789012345678901"

func TestInitCrypto(t *testing.T) {
	t.Run("ShortKeyPanics", func(t *testing.T) {
		os.Setenv("CRYPTO_KEY", "too-short")

		defer func() {
			if r := recover(); r == nil {
				t.Errorf("InitCrypto should have panicked with a short key, but did not.")
			}
		}()

		config.InitCrypto()
	})

	t.Run("ValidKey", func(t *testing.T) {
		os.Setenv("CRYPTO_KEY", testKey)

		config.InitCrypto()
	})
}

func TestEncryptDecrypt(t *testing.T) {
	os.Setenv("CRYPTO_KEY", testKey)
	config.InitCrypto()

	t.Run("SimpleText", func(t *testing.T) {
		plaintext := "secret google access token"

		ciphertext, err := config.Encrypt(plaintext)
		if err != nil {
			t.Fatalf("Encrypt failed: %v", err)
		}

		decrypted, err := config.Decrypt(ciphertext)
		if err != nil {
			t.Fatalf("Decrypt failed: %v", err)
		}

		if decrypted != plaintext {
			t.Errorf("Decrypted text ('%s') does not match the original ('%s')",
				decrypted, plaintext)
		}

		ciphertext2, _ := config.Encrypt(plaintext)
		if ciphertext == ciphertext2 {
			t.Errorf("Encryption is not randomized (nonce). Ciphertexts should differ.")
		}
	})

	t.Run("EmptyText", func(t *testing.T) {
		plaintext := ""
		ciphertext, err := config.Encrypt(plaintext)
		if err != nil {
			t.Fatalf("Encrypt failed: %v", err)
		}
		decrypted, err := config.Decrypt(ciphertext)
		if err != nil {
			t.Fatalf("Decrypt failed: %v", err)
		}
		if decrypted != plaintext {
			t.Errorf("Decrypted empty text is wrong: '%s'", decrypted)
		}
	})

	t.Run("Tampered", func(t *testing.T) {
		ciphertext, err := config.Encrypt("payload")
		if err != nil {
			t.Fatalf("Encrypt failed: %v", err)
		}
		if _, err := config.Decrypt("x" + ciphertext); err == nil {
			t.Error("Decrypt should fail on tampered input")
		}
	})
}
