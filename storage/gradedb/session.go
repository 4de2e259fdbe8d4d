package gradedb

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/trezcool/alama/core"
	"github.com/trezcool/alama/core/auth"
)

type sessionRepository struct {
	db *DB
}

var _ auth.SessionRepository = (*sessionRepository)(nil) // interface compliance check

func NewSessionRepository(db *DB) auth.SessionRepository {
	return &sessionRepository{db: db}
}

// GetIdentity returns ErrNoActiveSession for an absent entry. A malformed
// entry is purged from the store and reported absent as well.
func (repo *sessionRepository) GetIdentity(ctx context.Context) (auth.Identity, error) {
	data, err := repo.db.store.Load(ctx, sessionKey)
	if err != nil {
		if err == core.ErrKeyNotFound {
			return auth.Identity{}, auth.ErrNoActiveSession
		}
		return auth.Identity{}, err
	}

	var ident auth.Identity
	if err = json.Unmarshal(data, &ident); err != nil {
		repo.db.log.Error(fmt.Sprintf("parsing stored %s: %v; purging", sessionKey, err), err)
		if err = repo.db.store.Delete(ctx, sessionKey); err != nil {
			return auth.Identity{}, err
		}
		return auth.Identity{}, auth.ErrNoActiveSession
	}
	return ident, nil
}

func (repo *sessionRepository) SaveIdentity(ctx context.Context, ident auth.Identity) error {
	data, err := json.Marshal(ident)
	if err != nil {
		return err
	}
	return repo.db.store.Save(ctx, sessionKey, data)
}

func (repo *sessionRepository) ClearIdentity(ctx context.Context) error {
	return repo.db.store.Delete(ctx, sessionKey)
}
