package jwt

//go:generate go run go.uber.org/mock/mockgen -source=./jwt.go -destination=./mocks/jwt_mock.go -package=mocks

import (
	"errors"
	"fmt"
	"saapadu/config"
	"saapadu/shared/timezone"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const bearerPrefix = "Bearer "

var (
	ErrInvalidToken  = errors.New("invalid token")
	ErrExpiredToken  = errors.New("token has expired")
	ErrInvalidClaim  = errors.New("invalid token claim")
	ErrMissingHeader = errors.New("authorization header is required")
	ErrNotBearer     = errors.New("authorization header must start with 'Bearer '")
)

// Claims identify the admin session a token was issued for.
type Claims struct {
	Email   string `json:"email"`
	TokenID string `json:"tid"`
	jwt.RegisteredClaims
}

// Token is a signed session token. ID is the value the session marker must hold.
type Token struct {
	Value     string
	ID        string
	TTL       time.Duration
	ExpiresAt time.Time
}

type JWT interface {
	Issue(email string) (*Token, error)
	Parse(value string) (*Claims, error)
}

type Service struct {
	secret []byte
	issuer string
	ttl    time.Duration
	parser *jwt.Parser
}

func New(cfg *config.Config) JWT {
	return &Service{
		secret: []byte(cfg.JWT.AccessSecret),
		issuer: cfg.App.Name,
		ttl:    time.Duration(cfg.JWT.AccessExpireMin) * time.Minute,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithIssuer(cfg.App.Name),
			jwt.WithExpirationRequired(),
			jwt.WithTimeFunc(timezone.Now),
		),
	}
}

// Issue signs a token for email under a fresh token id.
func (s *Service) Issue(email string) (*Token, error) {
	now := timezone.Now()
	expiresAt := now.Add(s.ttl)
	id := uuid.NewString()

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		Email:   email,
		TokenID: id,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}).SignedString(s.secret)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return &Token{Value: signed, ID: id, TTL: s.ttl, ExpiresAt: expiresAt}, nil
}

// Parse checks the signature, issuer and expiry of value and returns its claims.
func (s *Service) Parse(value string) (*Claims, error) {
	claims := &Claims{}

	_, err := s.parser.ParseWithClaims(value, claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	})

	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return nil, ErrExpiredToken
	case err != nil:
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	case claims.TokenID == "" || claims.Email == "":
		return nil, ErrInvalidClaim
	}

	return claims, nil
}

// ExtractTokenFromHeader returns the bearer token of an Authorization header value.
func ExtractTokenFromHeader(header string) (string, error) {
	if header == "" {
		return "", ErrMissingHeader
	}

	token, ok := strings.CutPrefix(header, bearerPrefix)
	if !ok || token == "" {
		return "", ErrNotBearer
	}

	return token, nil
}
