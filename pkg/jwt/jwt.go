package jwt

import (
	"errors"
	"strings"
	"time"

	"liber-server/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims bind a token to a user login and its professional roles. Roles
// travel as a single space-separated "auth" claim.
type Claims struct {
	Auth string `json:"auth"`
	jwt.RegisteredClaims
}

type JWTService struct {
	config config.JWTConfig
}

func NewJWTService(cfg config.JWTConfig) *JWTService {
	return &JWTService{config: cfg}
}

func (s *JWTService) GenerateToken(login string, roles []string) (string, error) {
	now := time.Now()
	claims := Claims{
		Auth: strings.Join(roles, " "),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   login,
			ID:        uuid.New().String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.config.TTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.Secret))
}

func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return []byte(s.config.Secret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}

// Roles splits the auth claim back into individual role names.
func (c *Claims) Roles() []string {
	if c.Auth == "" {
		return nil
	}
	return strings.Fields(c.Auth)
}
