package security

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// OAuth state tokens: short-lived HS256 JWTs so the callback can verify the
// redirect round-trip without server-side storage.

const stateTTL = 10 * time.Minute

func GenerateStateToken(secret []byte, nonce string) (string, error) {
	claims := jwt.MapClaims{
		"nonce": nonce,
		"exp":   time.Now().Add(stateTTL).Unix(),
		"iat":   time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

func ValidateStateToken(secret []byte, tokenString string) error {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	})
	if err != nil {
		return err
	}
	if !token.Valid {
		return errors.New("invalid state token")
	}
	return nil
}
