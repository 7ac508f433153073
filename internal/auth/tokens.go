package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Kind tags which collection a principal was authenticated against. Admin and
// employee tokens share one verification path but are never interchangeable.
type Kind string

const (
	KindAdmin    Kind = "admin"
	KindEmployee Kind = "employee"
)

// Principal is the authenticated actor behind a request: one tagged value
// instead of parallel is-admin / is-employee flags.
type Principal struct {
	Kind     Kind
	ID       string
	Username string
}

var ErrInvalidToken = errors.New("invalid token")

type claims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// Tokens issues and verifies HS256 session tokens. Tokens are stateless:
// there is no revocation list, a leaked token stays valid until expiry.
type Tokens struct {
	secret      []byte
	adminTTL    time.Duration
	employeeTTL time.Duration
}

func NewTokens(secret string, adminTTL, employeeTTL time.Duration) *Tokens {
	return &Tokens{secret: []byte(secret), adminTTL: adminTTL, employeeTTL: employeeTTL}
}

func (t *Tokens) Issue(p Principal) (string, error) {
	ttl := t.employeeTTL
	if p.Kind == KindAdmin {
		ttl = t.adminTTL
	}
	now := time.Now()
	c := claims{
		Username: p.Username,
		Role:     string(p.Kind),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   p.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(t.secret)
}

// Verify parses and validates a token. Malformed, expired, wrong-method and
// bad-signature tokens all collapse into ErrInvalidToken; callers have no
// reason to tell them apart.
func (t *Tokens) Verify(tokenStr string) (Principal, error) {
	var c claims
	token, err := jwt.ParseWithClaims(
		tokenStr,
		&c,
		func(tok *jwt.Token) (any, error) {
			if tok.Method != jwt.SigningMethodHS256 {
				return nil, ErrInvalidToken
			}
			return t.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil || !token.Valid {
		return Principal{}, ErrInvalidToken
	}

	kind := Kind(c.Role)
	if kind != KindAdmin && kind != KindEmployee {
		return Principal{}, ErrInvalidToken
	}
	if c.Subject == "" {
		return Principal{}, ErrInvalidToken
	}
	return Principal{Kind: kind, ID: c.Subject, Username: c.Username}, nil
}
