// Package session keeps a client's session token between runs, the way a
// browser keeps it in localStorage. The holder never talks to the server: it
// trusts the stored token's payload for display purposes only, and drops it
// the moment it looks expired or corrupt. The server remains the only party
// that verifies signatures.
package session

import (
	"encoding/base64"
	"encoding/json"
	"strings"
	"sync"
	"time"

	"cryptoinsight/internal/domain/entity"
	"cryptoinsight/internal/errors"

	"github.com/google/uuid"
)

// ErrNoSession is returned when no usable session is held.
var ErrNoSession = errors.New("no active session")

// Store abstracts where the raw token string lives between runs.
type Store interface {
	Load() (string, error)
	Save(token string) error
	Clear() error
}

// tokenPayload is the subset of the token's claims the client reads locally.
type tokenPayload struct {
	UserID uuid.UUID `json:"userId"`
	Email  string    `json:"email"`
	Exp    int64     `json:"exp"`
}

// Holder owns the client's current session. Safe for concurrent use.
type Holder struct {
	mu    sync.RWMutex
	store Store
	token string
}

// NewHolder restores any previously persisted session from the store. A
// stored token that is expired or unreadable is discarded silently; the
// client simply starts logged out.
func NewHolder(store Store) (*Holder, error) {
	holder := &Holder{store: store}

	token, err := store.Load()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load persisted session")
	}
	if token == "" {
		return holder, nil
	}

	if _, err := decodePayload(token); err != nil {
		// Stale or corrupt token from a previous run. Clear and move on.
		_ = store.Clear()

		return holder, nil
	}

	holder.token = token

	return holder, nil
}

// Persist stores a freshly issued token as the current session.
func (h *Holder) Persist(token string) error {
	if _, err := decodePayload(token); err != nil {
		return errors.Wrap(err, "refusing to persist unusable token")
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if err := h.store.Save(token); err != nil {
		return errors.Wrap(err, "failed to persist session token")
	}
	h.token = token

	return nil
}

// Token returns the raw bearer token for the current session.
func (h *Holder) Token() (string, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if h.token == "" {
		return "", ErrNoSession
	}
	if _, err := decodePayload(h.token); err != nil {
		return "", ErrNoSession
	}

	return h.token, nil
}

// CurrentPrincipal returns the identity baked into the held token. This is
// a local read of the unverified payload, good enough for rendering "who am
// I" but never a substitute for server-side validation.
func (h *Holder) CurrentPrincipal() (*entity.Principal, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if h.token == "" {
		return nil, ErrNoSession
	}

	payload, err := decodePayload(h.token)
	if err != nil {
		return nil, ErrNoSession
	}

	return &entity.Principal{
		UserID: payload.UserID,
		Email:  payload.Email,
	}, nil
}

// Clear forgets the session locally. The token itself stays valid until it
// expires; there is no server-side revocation to call.
func (h *Holder) Clear() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.token = ""

	return errors.WithStack(h.store.Clear())
}

// decodePayload extracts the middle segment of a JWT without verifying the
// signature, and rejects tokens that are structurally broken or expired.
func decodePayload(token string) (*tokenPayload, error) {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return nil, errors.New("token is not three dot-delimited segments")
	}

	raw, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode token payload")
	}

	payload := new(tokenPayload)
	if err := json.Unmarshal(raw, payload); err != nil {
		return nil, errors.Wrap(err, "failed to parse token payload")
	}

	if payload.Exp > 0 && time.Now().After(time.Unix(payload.Exp, 0)) {
		return nil, errors.New("token is expired")
	}

	return payload, nil
}
