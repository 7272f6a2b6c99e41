package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/hireloop/recruitd/config"
	"github.com/hireloop/recruitd/internal/models"
)

// ErrInvalidToken covers every verification failure: bad signature, expiry,
// issuer or audience mismatch. Callers must not distinguish between them.
var ErrInvalidToken = errors.New("invalid token")

type Claims struct {
	jwt.RegisteredClaims
	Email string          `json:"email"`
	Role  models.UserRole `json:"role"`
}

// TokenManager issues and verifies the bearer tokens used by the API.
type TokenManager struct {
	secret   []byte
	issuer   string
	audience string
	ttl      time.Duration
}

func NewTokenManager(cfg *config.Config) *TokenManager {
	return &TokenManager{
		secret:   []byte(cfg.JWTSecret),
		issuer:   cfg.JWTIssuer,
		audience: cfg.JWTAudience,
		ttl:      cfg.TokenTTL,
	}
}

// Issue signs a token carrying the user's email as identity claim and role as
// authorization claim, valid for the configured TTL (7 days by default).
func (m *TokenManager) Issue(u *models.User) (string, error) {
	now := time.Now().UTC()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.Email,
			Issuer:    m.issuer,
			Audience:  jwt.ClaimStrings{m.audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
		Email: u.Email,
		Role:  u.Role,
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString(m.secret)
}

// Parse verifies signature, lifetime, issuer and audience, and returns the
// embedded claims. All failure modes collapse into ErrInvalidToken.
func (m *TokenManager) Parse(raw string) (*Claims, error) {
	claims := &Claims{}
	tok, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(m.issuer),
		jwt.WithAudience(m.audience),
		jwt.WithExpirationRequired(),
	)
	if err != nil || tok == nil || !tok.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Email == "" || claims.Role == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
