package auth

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/trezcool/alama/core"
)

var (
	// errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNoActiveSession    = errors.New("no active session")
)

type (
	// SessionRepository persists the single active identity. GetIdentity
	// returns ErrNoActiveSession for an absent entry and is expected to
	// purge (and report absent) a malformed one.
	SessionRepository interface {
		GetIdentity(ctx context.Context) (Identity, error)
		SaveIdentity(ctx context.Context, ident Identity) error
		ClearIdentity(ctx context.Context) error
	}

	// Reloader resets all cached client state; sign-out triggers it,
	// standing in for a browser's full page reload.
	Reloader interface {
		Reload(ctx context.Context) error
	}

	Service struct {
		repo      SessionRepository
		directory []Identity
		reloader  Reloader
		delay     time.Duration
		log       core.Logger

		mu      sync.RWMutex
		current Identity
	}
)

func NewService(repo SessionRepository, directory []Identity, reloader Reloader, conf *core.Config, log core.Logger) *Service {
	return &Service{
		repo:      repo,
		directory: directory,
		reloader:  reloader,
		delay:     conf.AuthDelay,
		log:       log,
	}
}

// Restore rehydrates the signed-in state from the session store.
// An absent or corrupt persisted identity leaves the service signed out.
func (svc *Service) Restore(ctx context.Context) error {
	ident, err := svc.repo.GetIdentity(ctx)
	if err != nil {
		if err == ErrNoActiveSession {
			return nil
		}
		return err
	}
	svc.mu.Lock()
	svc.current = ident
	svc.mu.Unlock()
	return nil
}

// SignIn resolves the email against the identity directory after the
// simulated network delay. On a miss the session state is left untouched
// and ErrInvalidCredentials is returned.
func (svc *Service) SignIn(ctx context.Context, email string) (Identity, error) {
	if err := svc.simulateLatency(ctx); err != nil {
		return Identity{}, err
	}

	email = core.CleanString(email, true /* lower */)
	for _, ident := range svc.directory {
		if ident.Email == email {
			if err := svc.repo.SaveIdentity(ctx, ident); err != nil {
				return Identity{}, err
			}
			svc.mu.Lock()
			svc.current = ident
			svc.mu.Unlock()
			svc.log.Info("signed in: "+ident.Email, ident)
			return ident, nil
		}
	}
	return Identity{}, ErrInvalidCredentials
}

// SignOut clears the persisted identity and reloads all client state.
func (svc *Service) SignOut(ctx context.Context) error {
	if err := svc.simulateLatency(ctx); err != nil {
		return err
	}
	if err := svc.repo.ClearIdentity(ctx); err != nil {
		return err
	}
	svc.mu.Lock()
	ident := svc.current
	svc.current = Identity{}
	svc.mu.Unlock()
	if !ident.IsZero() {
		svc.log.Info("signed out: "+ident.Email, ident)
	}

	return svc.reloader.Reload(ctx)
}

// Current returns the active identity, if any.
func (svc *Service) Current() (Identity, bool) {
	svc.mu.RLock()
	defer svc.mu.RUnlock()
	return svc.current, !svc.current.IsZero()
}

func (svc *Service) simulateLatency(ctx context.Context) error {
	if svc.delay <= 0 {
		return nil
	}
	select {
	case <-time.After(svc.delay):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
