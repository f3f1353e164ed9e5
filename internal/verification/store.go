// Package verification holds the short-lived email verification codes and
// password reset tokens. Storage is process memory: a restart drops every
// outstanding code and token, which is an accepted operational limit. Both
// stores are injected as interfaces so a durable cache can replace them
// without touching the services.
package verification

import (
	"crypto/rand"
	"encoding/base64"
	"math/big"
	"sync"
	"time"
)

const (
	CodeLength = 6
	CodeTTL    = 5 * time.Minute
	TokenTTL   = time.Hour
)

// CodeStore maps an email to its single outstanding verification code.
type CodeStore interface {
	// Issue generates a fresh code for the email, discarding any code
	// previously issued for it.
	Issue(email string) (string, error)
	// Check reports whether the candidate matches the stored code. A match
	// consumes the code; a mismatch leaves it in place; an expired code is
	// evicted and reported as a miss.
	Check(email, candidate string) bool
}

// TokenStore maps opaque password-reset tokens to the requesting email.
type TokenStore interface {
	Issue(email string) (string, error)
	// Consume returns the email for a live token and deletes it.
	Consume(token string) (string, bool)
}

type entry struct {
	value  string
	expiry time.Time
}

// MemoryCodeStore is the locked in-memory CodeStore.
type MemoryCodeStore struct {
	mu    sync.Mutex
	codes map[string]entry
	ttl   time.Duration
	now   func() time.Time
}

func NewMemoryCodeStore() *MemoryCodeStore {
	return &MemoryCodeStore{
		codes: make(map[string]entry),
		ttl:   CodeTTL,
		now:   time.Now,
	}
}

func (s *MemoryCodeStore) Issue(email string) (string, error) {
	code, err := generateNumericCode(CodeLength)
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	// At most one live code per email: a reissue overwrites the old one.
	s.codes[email] = entry{value: code, expiry: s.now().Add(s.ttl)}
	return code, nil
}

func (s *MemoryCodeStore) Check(email, candidate string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.codes[email]
	if !ok {
		return false
	}

	if s.now().After(stored.expiry) {
		delete(s.codes, email)
		return false
	}

	if stored.value != candidate {
		// The legitimate code stays usable until entered or expired.
		return false
	}

	delete(s.codes, email)
	return true
}

// MemoryTokenStore is the locked in-memory TokenStore.
type MemoryTokenStore struct {
	mu     sync.Mutex
	tokens map[string]entry
	ttl    time.Duration
	now    func() time.Time
}

func NewMemoryTokenStore() *MemoryTokenStore {
	return &MemoryTokenStore{
		tokens: make(map[string]entry),
		ttl:    TokenTTL,
		now:    time.Now,
	}
}

func (s *MemoryTokenStore) Issue(email string) (string, error) {
	token, err := generateURLSafeToken(32)
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[token] = entry{value: email, expiry: s.now().Add(s.ttl)}
	return token, nil
}

func (s *MemoryTokenStore) Consume(token string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.tokens[token]
	if !ok {
		return "", false
	}

	delete(s.tokens, token)

	if s.now().After(stored.expiry) {
		return "", false
	}
	return stored.value, true
}

func generateNumericCode(length int) (string, error) {
	digits := make([]byte, length)
	for i := range digits {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", err
		}
		digits[i] = byte('0' + n.Int64())
	}
	return string(digits), nil
}

func generateURLSafeToken(numBytes int) (string, error) {
	raw := make([]byte, numBytes)
	if _, err := rand.Read(raw); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(raw), nil
}
