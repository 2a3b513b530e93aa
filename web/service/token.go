package service

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/velmara/heritage-panel/config"
	"github.com/velmara/heritage-panel/database/model"
)

var (
	// ErrTokenExpired marks a well-formed credential past its expiry.
	// Clients may recover from this with a refresh.
	ErrTokenExpired = errors.New("token expired")
	// ErrTokenInvalid marks anything else wrong with a credential.
	ErrTokenInvalid = errors.New("token invalid")
)

// TokenService mints and validates the signed bearer credentials that
// gate every protected endpoint.
type TokenService struct {
	Secret []byte
	TTL    time.Duration
}

func NewTokenService() *TokenService {
	return &TokenService{
		Secret: config.GetJWTSecret(),
		TTL:    config.GetTokenTTL(),
	}
}

// Mint issues a credential bound to the given administrator.
func (s *TokenService) Mint(admin *model.Admin) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.Itoa(admin.Id),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.TTL)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.Secret)
}

// Parse resolves a credential to an administrator id. Expiry is
// reported distinctly from every other failure so the caller can offer
// a refresh instead of forcing a fresh login.
func (s *TokenService) Parse(tokenString string) (int, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return s.Secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, ErrTokenExpired
		}
		return 0, ErrTokenInvalid
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return 0, ErrTokenInvalid
	}
	id, err := strconv.Atoi(claims.Subject)
	if err != nil || id <= 0 {
		return 0, ErrTokenInvalid
	}
	return id, nil
}
