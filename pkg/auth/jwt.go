package auth

import (
	"errors"
	"sync"
	"time"

	"github.com/golang-jwt/jwt"
)

const issuer = "rebox"

var (
	ErrInvalidToken       = errors.New("invalid token")
	ErrInvalidTokenClaims = errors.New("invalid token claims")
)

type JWTServiceInterface interface {
	GenerateJWT(userID int, admin bool, expirationTime time.Time) (string, error)
	ValidateToken(tokenString string) (*Claims, error)
}

var (
	secretMu  sync.RWMutex
	secretKey = []byte("rebox-dev-secret")
)

// SetSecretKey replaces the HMAC key used to sign and verify tokens.
func SetSecretKey(key string) {
	if key == "" {
		return
	}
	secretMu.Lock()
	secretKey = []byte(key)
	secretMu.Unlock()
}

func currentKey() []byte {
	secretMu.RLock()
	defer secretMu.RUnlock()
	return secretKey
}

type Claims struct {
	UserID int  `json:"user_id"`
	Admin  bool `json:"admin,omitempty"`
	jwt.StandardClaims
}

type JWTService struct{}

func (s *JWTService) GenerateJWT(userID int, admin bool, expirationTime time.Time) (string, error) {
	claims := Claims{
		UserID: userID,
		Admin:  admin,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: expirationTime.Unix(),
			IssuedAt:  time.Now().Unix(),
			Issuer:    issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(currentKey())
}

func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return currentKey(), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || claims.UserID == 0 || claims.Issuer != issuer {
		return nil, ErrInvalidTokenClaims
	}

	return claims, nil
}
