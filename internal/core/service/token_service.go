package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/styledecor/booking-api/internal/core/domain"
)

const defaultTokenTTL = time.Hour

// TokenService issues and verifies HS256-signed credentials carrying an
// email claim. The signing secret is process-wide, loaded once at startup.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &TokenService{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Issue returns a signed token for email expiring after the configured TTL.
func (s *TokenService) Issue(email string) (string, error) {
	now := s.now()
	claims := jwt.MapClaims{
		"email": email,
		"iat":   now.Unix(),
		"exp":   now.Add(s.ttl).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Verify checks signature and expiry and returns the email claim.
func (s *TokenService) Verify(token string) (string, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !tkn.Valid {
		return "", domain.ErrInvalidToken
	}
	email, _ := claims["email"].(string)
	if email == "" {
		return "", domain.ErrInvalidToken
	}
	return email, nil
}
