package services

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/hotelbook/internal/common"
	"github.com/dmitrijs2005/hotelbook/internal/dbx"
	"github.com/dmitrijs2005/hotelbook/internal/server/models"
	hotelsrepo "github.com/dmitrijs2005/hotelbook/internal/server/repositories/hotels"
	usersrepo "github.com/dmitrijs2005/hotelbook/internal/server/repositories/users"
)

// fakeUsersRepo keeps users in memory keyed by email.
type fakeUsersRepo struct {
	mu        sync.Mutex
	byEmail   map[string]*models.User
	nextID    int
	getErr    error
	createErr error
	creates   int
}

func newFakeUsersRepo() *fakeUsersRepo {
	return &fakeUsersRepo{byEmail: map[string]*models.User{}}
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.creates++
	if f.createErr != nil {
		return nil, f.createErr
	}
	if _, ok := f.byEmail[u.Email]; ok {
		return nil, common.ErrDuplicateEmail
	}
	f.nextID++
	cp := *u
	cp.ID = fmt.Sprintf("u-%d", f.nextID)
	f.byEmail[u.Email] = &cp
	return &cp, nil
}

func (f *fakeUsersRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return nil, f.getErr
	}
	u, ok := f.byEmail[email]
	if !ok {
		return nil, common.ErrorNotFound
	}
	cp := *u
	return &cp, nil
}

type fakeHotelsRepo struct {
	mu      sync.Mutex
	stored  []*models.Hotel
	err     error
	listErr error
}

func (f *fakeHotelsRepo) Create(ctx context.Context, h *models.Hotel) (*models.Hotel, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	h.ID = "h-1"
	f.stored = append(f.stored, h)
	return h, nil
}

func (f *fakeHotelsRepo) ListByUserID(ctx context.Context, userID string) ([]*models.Hotel, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := []*models.Hotel{}
	for _, h := range f.stored {
		if h.UserID == userID {
			out = append(out, h)
		}
	}
	return out, nil
}

type fakeRepoManager struct {
	u *fakeUsersRepo
	h *fakeHotelsRepo
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRepoManager) Users(db dbx.DBTX) usersrepo.Repository     { return m.u }
func (m *fakeRepoManager) Hotels(db dbx.DBTX) hotelsrepo.Repository   { return m.h }
