package fakeuserrepo

import (
	"context"
	"sync"

	apperrors "github.com/jrsteele09/go-session-server/internal/errors"
	"github.com/jrsteele09/go-session-server/users"
)

var _ users.Repo = (*FakeUserRepo)(nil)

type FakeUserRepo struct {
	users     map[int64]*users.User
	usernames map[string]int64 // username to user id
	emails    map[string]int64 // email to user id
	nextID    int64
	lock      sync.RWMutex
}

func NewFakeUserRepo() *FakeUserRepo {
	return &FakeUserRepo{
		users:     make(map[int64]*users.User),
		usernames: make(map[string]int64),
		emails:    make(map[string]int64),
	}
}

func (ur *FakeUserRepo) GetByUsername(_ context.Context, username string) (*users.User, error) {
	ur.lock.RLock()
	defer ur.lock.RUnlock()

	id, ok := ur.usernames[username]
	if !ok {
		return nil, apperrors.Wrapf(apperrors.ErrNotFound, "user %q", username)
	}
	u := *ur.users[id]
	return &u, nil
}

func (ur *FakeUserRepo) Insert(_ context.Context, email, username, passwordHash string) (*users.User, error) {
	ur.lock.Lock()
	defer ur.lock.Unlock()

	if _, ok := ur.usernames[username]; ok {
		return nil, apperrors.Wrapf(apperrors.ErrConflict, "username already exists")
	}
	if _, ok := ur.emails[email]; ok {
		return nil, apperrors.Wrapf(apperrors.ErrConflict, "email already exists")
	}

	ur.nextID++
	u := &users.User{
		ID:           ur.nextID,
		Email:        email,
		Username:     username,
		PasswordHash: passwordHash,
		IsActive:     true,
	}
	ur.store(u)
	out := *u
	return &out, nil
}

func (ur *FakeUserRepo) SoftDelete(_ context.Context, id int64) (int64, error) {
	ur.lock.Lock()
	defer ur.lock.Unlock()

	u, ok := ur.users[id]
	if !ok || !u.IsActive {
		return 0, apperrors.Wrapf(apperrors.ErrNotFound, "active user %d", id)
	}
	u.IsActive = false
	return id, nil
}

// Put stores a user as is, assigning an ID when it has none. Tests use it to
// seed admins and inactive accounts.
func (ur *FakeUserRepo) Put(user users.User) users.User {
	ur.lock.Lock()
	defer ur.lock.Unlock()

	if user.ID == 0 {
		ur.nextID++
		user.ID = ur.nextID
	} else if user.ID > ur.nextID {
		ur.nextID = user.ID
	}
	ur.store(&user)
	return user
}

func (ur *FakeUserRepo) store(u *users.User) {
	ur.users[u.ID] = u
	ur.usernames[u.Username] = u.ID
	ur.emails[u.Email] = u.ID
}
