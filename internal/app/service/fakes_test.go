package service

import (
	"context"
	"time"

	"members_roulette/internal/common"
	"members_roulette/internal/domain/model"
)

// In-memory fakes for the repository interfaces. Maps are enough: tests run
// requests sequentially.

type fakeMemberRepo struct {
	members map[string]model.Member
	order   []string
	failAll bool
}

func newFakeMemberRepo() *fakeMemberRepo {
	return &fakeMemberRepo{members: map[string]model.Member{}}
}

func (f *fakeMemberRepo) List(ctx context.Context) ([]model.Member, error) {
	if f.failAll {
		return nil, common.ErrInternalServer
	}
	out := []model.Member{}
	for _, id := range f.order {
		out = append(out, f.members[id])
	}
	return out, nil
}

func (f *fakeMemberRepo) Create(ctx context.Context, m *model.Member) error {
	if f.failAll {
		return common.ErrInternalServer
	}
	f.members[m.ID] = *m
	f.order = append(f.order, m.ID)
	return nil
}

func (f *fakeMemberRepo) FindByID(ctx context.Context, id string) (*model.Member, error) {
	if f.failAll {
		return nil, common.ErrInternalServer
	}
	m, ok := f.members[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	return &m, nil
}

func (f *fakeMemberRepo) Update(ctx context.Context, m *model.Member) error {
	if f.failAll {
		return common.ErrInternalServer
	}
	if _, ok := f.members[m.ID]; !ok {
		return common.ErrNotFound
	}
	f.members[m.ID] = *m
	return nil
}

func (f *fakeMemberRepo) Delete(ctx context.Context, id string) error {
	if f.failAll {
		return common.ErrInternalServer
	}
	if _, ok := f.members[id]; !ok {
		return common.ErrNotFound
	}
	delete(f.members, id)
	for i, existing := range f.order {
		if existing == id {
			f.order = append(f.order[:i], f.order[i+1:]...)
			break
		}
	}
	return nil
}

type fakeUserRepo struct {
	users map[string]model.User
	order []string
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]model.User{}}
}

func (f *fakeUserRepo) List(ctx context.Context) ([]model.User, error) {
	out := []model.User{}
	for _, id := range f.order {
		u := f.users[id]
		u.HashedPassword = ""
		out = append(out, u)
	}
	return out, nil
}

func (f *fakeUserRepo) Create(ctx context.Context, user *model.User) error {
	for _, existing := range f.users {
		if existing.Username == user.Username || existing.Email == user.Email {
			return common.ErrConflict
		}
	}
	f.users[user.ID] = *user
	f.order = append(f.order, user.ID)
	return nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id string) (*model.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	return &u, nil
}

func (f *fakeUserRepo) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			out := u
			return &out, nil
		}
	}
	return nil, common.ErrNotFound
}

func (f *fakeUserRepo) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	for _, u := range f.users {
		if u.Username == username || u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserRepo) Update(ctx context.Context, user *model.User) error {
	if _, ok := f.users[user.ID]; !ok {
		return common.ErrNotFound
	}
	for id, existing := range f.users {
		if id == user.ID {
			continue
		}
		if existing.Username == user.Username || existing.Email == user.Email {
			return common.ErrConflict
		}
	}
	stored := f.users[user.ID]
	stored.Username = user.Username
	stored.Email = user.Email
	stored.Role = user.Role
	f.users[user.ID] = stored
	return nil
}

func (f *fakeUserRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.users[id]; !ok {
		return common.ErrNotFound
	}
	delete(f.users, id)
	for i, existing := range f.order {
		if existing == id {
			f.order = append(f.order[:i], f.order[i+1:]...)
			break
		}
	}
	return nil
}

type fakeSessionRepo struct {
	sessions   map[string]model.Session
	identities map[string]model.Identity
	failAll    bool
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{
		sessions:   map[string]model.Session{},
		identities: map[string]model.Identity{},
	}
}

func (f *fakeSessionRepo) SaveSession(ctx context.Context, s *model.Session, ttl time.Duration) error {
	if f.failAll {
		return common.ErrInternalServer
	}
	f.sessions[s.Token] = *s
	return nil
}

func (f *fakeSessionRepo) FindSession(ctx context.Context, token string) (*model.Session, error) {
	s, ok := f.sessions[token]
	if !ok {
		return nil, common.ErrNotFound
	}
	return &s, nil
}

func (f *fakeSessionRepo) DeleteSession(ctx context.Context, token string) error {
	if f.failAll {
		return common.ErrInternalServer
	}
	delete(f.sessions, token)
	return nil
}

func (f *fakeSessionRepo) SaveIdentity(ctx context.Context, i *model.Identity, ttl time.Duration) error {
	if f.failAll {
		return common.ErrInternalServer
	}
	f.identities[i.Token] = *i
	return nil
}

func (f *fakeSessionRepo) FindIdentity(ctx context.Context, token string) (*model.Identity, error) {
	i, ok := f.identities[token]
	if !ok {
		return nil, common.ErrNotFound
	}
	return &i, nil
}

func (f *fakeSessionRepo) DeleteIdentity(ctx context.Context, token string) error {
	if f.failAll {
		return common.ErrInternalServer
	}
	delete(f.identities, token)
	return nil
}
