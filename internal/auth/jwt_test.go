package auth_test

import (
	"errors"
	"os"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/prabhashaj/EdututorAI/internal/auth"
)

const testSecret = "a-long-and-sufficiently-secure-test-secret"
const testUserID = "user-123"
const testRole = "educator"

func TestInit(t *testing.T) {
	t.Run("MissingSecret", func(t *testing.T) {
		os.Unsetenv("JWT_SECRET")

		defer func() {
			if r := recover(); r == nil {
				t.Errorf("Init() should have panicked when JWT_SECRET is empty, but did not.")
			}
		}()

		auth.Init()
	})

	t.Run("ValidSecret", func(t *testing.T) {
		os.Setenv("JWT_SECRET", testSecret)
		auth.Init()
	})
}

func TestGenerateAndValidateJWT(t *testing.T) {
	os.Setenv("JWT_SECRET", testSecret)
	auth.Init()

	t.Run("ValidToken", func(t *testing.T) {
		duration := time.Minute * 5

		tokenStr, err := auth.GenerateJWT(testUserID, testRole, duration)
		if err != nil {
			t.Fatalf("GenerateJWT failed: %v", err)
		}

		claims, err := auth.ValidateJWT(tokenStr)
		if err != nil {
			t.Fatalf("ValidateJWT failed unexpectedly: %v", err)
		}

		if claims.UserID != testUserID {
			t.Errorf("Wrong UserID. Expected: %s, Got: %s", testUserID, claims.UserID)
		}
		if claims.Role != testRole {
			t.Errorf("Wrong Role. Expected: %s, Got: %s", testRole, claims.Role)
		}
	})

	t.Run("ExpiredToken", func(t *testing.T) {
		duration := -time.Second * 1

		tokenStr, err := auth.GenerateJWT(testUserID, testRole, duration)
		if err != nil {
			t.Fatalf("GenerateJWT failed: %v", err)
		}

		time.Sleep(time.Second * 2)

		_, err = auth.ValidateJWT(tokenStr)

		if err == nil {
			t.Fatal("ValidateJWT should have failed on an expired token, but passed.")
		}
		if !errors.Is(err, jwt.ErrTokenExpired) {
			t.Errorf("Wrong error for expired token. Expected: %v, Got: %v", jwt.ErrTokenExpired, err)
		}
	})

	t.Run("GarbageToken", func(t *testing.T) {
		_, err := auth.ValidateJWT("not-a-jwt-at-all")

		if err == nil {
			t.Fatal("ValidateJWT should have failed on garbage input, but passed.")
		}
		if !errors.Is(err, auth.ErrInvalidToken) {
			t.Errorf("Wrong error for garbage token: %v", err)
		}
	})
}

func TestPasswordHashing(t *testing.T) {
	hash, err := auth.HashPassword("student123")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}

	if !auth.CheckPassword("student123", hash) {
		t.Error("CheckPassword rejected the correct password")
	}
	if auth.CheckPassword("wrong-password", hash) {
		t.Error("CheckPassword accepted a wrong password")
	}
}
