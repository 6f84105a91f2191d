package processor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"leads-server/internal/observability"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrExpiredToken    = errors.New("token expired")
	ErrInvalidJWTToken = errors.New("invalid jwt token")
	ErrParseJWTToken   = errors.New("failed to parse jwt token")
)

const (
	RoleAdmin = "admin"
	RoleUser  = "user"

	tokenIssuer = "leads-server"
	tokenTTL    = 24 * time.Hour
)

type AuthProcessor struct {
	jwtSecret []byte
	logger    *observability.Logger
	now       func() time.Time
}

func New(jwtSecret string, logger *observability.Logger) AuthProcessor {
	return AuthProcessor{
		jwtSecret: []byte(jwtSecret),
		logger:    logger,
		now:       time.Now,
	}
}

// BaseClaims are the claims carried by every access token
type BaseClaims struct {
	ExpirationTime *jwt.NumericDate `json:"exp"`
	IssuedAt       *jwt.NumericDate `json:"iat"`
	NotBefore      *jwt.NumericDate `json:"nbf,omitempty"`
	Issuer         string           `json:"iss"`
	Subject        string           `json:"sub"`
	Audience       jwt.ClaimStrings `json:"aud,omitempty"`
	Role           string           `json:"role"`
}

func (b *BaseClaims) GetExpirationTime() (*jwt.NumericDate, error) {
	return b.ExpirationTime, nil
}

func (b *BaseClaims) GetIssuedAt() (*jwt.NumericDate, error) {
	return b.IssuedAt, nil
}

func (b *BaseClaims) GetNotBefore() (*jwt.NumericDate, error) {
	return b.NotBefore, nil
}

func (b *BaseClaims) GetIssuer() (string, error) {
	return b.Issuer, nil
}

func (b *BaseClaims) GetSubject() (string, error) {
	return b.Subject, nil
}

func (b *BaseClaims) GetAudience() (jwt.ClaimStrings, error) {
	return b.Audience, nil
}

// GenerateJWTToken signs an HS256 access token for the user that is valid for 24 hours
func (p *AuthProcessor) GenerateJWTToken(ctx context.Context, userID, role string) (string, error) {
	now := p.now()
	claims := &BaseClaims{
		ExpirationTime: jwt.NewNumericDate(now.Add(tokenTTL)),
		IssuedAt:       jwt.NewNumericDate(now),
		Issuer:         tokenIssuer,
		Subject:        userID,
		Role:           role,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(p.jwtSecret)
	if err != nil {
		p.logger.Error(ctx, "failed to sign token", err)
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, nil
}

func (p *AuthProcessor) ValidateJWTToken(ctx context.Context, token string) (BaseClaims, error) {
	var baseClaims BaseClaims
	t, err := jwt.ParseWithClaims(token, &baseClaims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return p.jwtSecret, nil
	}, jwt.WithTimeFunc(p.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			p.logger.InfoWithError(ctx, "token expired", err)
			return BaseClaims{}, ErrExpiredToken
		}

		p.logger.InfoWithError(ctx, "failed to parse token", err)
		return BaseClaims{}, ErrParseJWTToken
	}
	if !t.Valid || baseClaims.Subject == "" {
		return BaseClaims{}, ErrInvalidJWTToken
	}

	return baseClaims, nil
}
