package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt"
)

type JWTServiceInterface interface {
	GenerateJWT(userID int) (string, error)
	ValidateToken(tokenString string) (*Claims, error)
}

const issuer = "ministers"

type Claims struct {
	UserID int `json:"user_id"`
	jwt.StandardClaims
}

// JWTService signs session tokens with the configured secret; lifetime is the
// session lifetime from config.
type JWTService struct {
	secret   []byte
	lifetime time.Duration
}

func NewJWTService(secret string, lifetime time.Duration) *JWTService {
	return &JWTService{
		secret:   []byte(secret),
		lifetime: lifetime,
	}
}

func (s *JWTService) GenerateJWT(userID int) (string, error) {
	claims := Claims{
		UserID: userID,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(s.lifetime).Unix(),
			Issuer:    issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid token")
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || claims.UserID == 0 || claims.Issuer != issuer {
		return nil, errors.New("invalid token claims")
	}

	return claims, nil
}
