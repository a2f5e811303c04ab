package credentials

import (
	"os"
	"time"

	"restaurant-orders-api/models"

	"github.com/golang-jwt/jwt/v5"
)

// CookieTTL is how long a persisted credentials cookie stays valid.
const CookieTTL = 30 * 24 * time.Hour

type cookieClaims struct {
	Email     string      `json:"email"`
	FirstName string      `json:"first_name"`
	LastName  string      `json:"last_name"`
	Role      models.Role `json:"role"`
	jwt.RegisteredClaims
}

// CookieStore persists the record as a signed token on disk, the analog of
// a long-lived browser cookie. Expired or tampered tokens load as absent
// and are purged. An empty path makes every operation a no-op, mirroring
// cookie access outside a browsing context.
type CookieStore struct {
	Path   string
	Secret []byte

	// now is swapped in tests to simulate expiry.
	now func() time.Time
}

func NewCookieStore(path string, secret []byte) *CookieStore {
	return &CookieStore{Path: path, Secret: secret, now: time.Now}
}

func (s *CookieStore) Load() (*Record, bool) {
	if s.Path == "" {
		return nil, false
	}
	raw, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, false
	}

	claims := &cookieClaims{}
	token, err := jwt.ParseWithClaims(string(raw), claims, func(t *jwt.Token) (interface{}, error) {
		return s.Secret, nil
	}, jwt.WithTimeFunc(s.timeNow))
	if err != nil || !token.Valid {
		s.Clear()
		return nil, false
	}

	return &Record{
		Email:     claims.Email,
		FirstName: claims.FirstName,
		LastName:  claims.LastName,
		Role:      claims.Role,
	}, true
}

func (s *CookieStore) Save(rec Record) error {
	if s.Path == "" {
		return nil
	}
	claims := cookieClaims{
		Email:     rec.Email,
		FirstName: rec.FirstName,
		LastName:  rec.LastName,
		Role:      rec.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(s.timeNow().Add(CookieTTL)),
			IssuedAt:  jwt.NewNumericDate(s.timeNow()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.Secret)
	if err != nil {
		return err
	}
	return os.WriteFile(s.Path, []byte(signed), 0o600)
}

func (s *CookieStore) Clear() {
	if s.Path == "" {
		return
	}
	_ = os.Remove(s.Path)
}

func (s *CookieStore) timeNow() time.Time {
	if s.now != nil {
		return s.now()
	}
	return time.Now()
}
