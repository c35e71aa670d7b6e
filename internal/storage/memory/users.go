package memory

import (
	"context"
	"sync"

	"github.com/ka-tch/webmail/internal/models"
	"github.com/ka-tch/webmail/internal/storage"
)

// Users is the process-wide user directory keyed by username.
type Users struct {
	mu       sync.RWMutex
	accounts map[string]models.Account
}

func NewUsers() *Users {
	return &Users{accounts: make(map[string]models.Account)}
}

func (u *Users) Save(ctx context.Context, acc models.Account) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	if _, ok := u.accounts[acc.Username]; ok {
		return storage.ErrUserExists
	}

	u.accounts[acc.Username] = acc

	return nil
}

func (u *Users) Get(ctx context.Context, username string) (models.Account, error) {
	u.mu.RLock()
	defer u.mu.RUnlock()

	acc, ok := u.accounts[username]
	if !ok {
		return models.Account{}, storage.ErrUserNotFound
	}

	return acc, nil
}
