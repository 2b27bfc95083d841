package jwt

import (
	"testing"
	"time"

	"go-doctor-schedule/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

func signToken(t *testing.T, method jwt.SigningMethod, key interface{}, claims Claims) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(method, claims).SignedString(key)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func accessClaims(userID uuid.UUID, expiresIn time.Duration) Claims {
	return Claims{
		UserID:    userID,
		Email:     "admin@clinic.test",
		TokenType: AccessToken,
		TokenID:   uuid.NewString(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiresIn)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
}

func TestValidateToken(t *testing.T) {
	svc := NewJWTService(config.JWTConfig{Secret: "secret"})
	userID := uuid.New()

	token := signToken(t, jwt.SigningMethodHS256, []byte("secret"), accessClaims(userID, time.Hour))
	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if claims.UserID != userID || claims.TokenType != AccessToken {
		t.Errorf("unexpected claims %+v", claims)
	}
}

func TestValidateToken_Rejects(t *testing.T) {
	svc := NewJWTService(config.JWTConfig{Secret: "secret"})

	tests := map[string]string{
		"wrong secret": signToken(t, jwt.SigningMethodHS256, []byte("other"), accessClaims(uuid.New(), time.Hour)),
		"expired":      signToken(t, jwt.SigningMethodHS256, []byte("secret"), accessClaims(uuid.New(), -time.Minute)),
		"none method":  signToken(t, jwt.SigningMethodNone, jwt.UnsafeAllowNoneSignatureType, accessClaims(uuid.New(), time.Hour)),
		"garbage":      "not-a-token",
	}

	for name, token := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := svc.ValidateToken(token); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}
