package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/hotelbook/internal/common"
	"github.com/dmitrijs2005/hotelbook/internal/server/auth"
	"github.com/dmitrijs2005/hotelbook/internal/server/config"
	"github.com/dmitrijs2005/hotelbook/internal/server/models"
	"github.com/dmitrijs2005/hotelbook/internal/server/repositories/repomanager"
)

// RegisterInput is an already validated registration request.
type RegisterInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
}

// Session is the outcome of a successful register or login.
type Session struct {
	User  *models.User
	Token string
}

type UserService struct {
	db            *sql.DB
	repomanager   repomanager.RepositoryManager
	jwtSecret     []byte
	tokenValidity time.Duration
	now           func() time.Time
}

func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:            db,
		repomanager:   m,
		jwtSecret:     []byte(cfg.SecretKey),
		tokenValidity: cfg.TokenValidityDuration,
		now:           time.Now,
	}
}

// TokenValidity is the lifetime of issued tokens.
func (s *UserService) TokenValidity() time.Duration {
	return s.tokenValidity
}

// Register creates the account and signs its first token. A taken email
// yields common.ErrDuplicateEmail, whether it is seen by the lookup or by
// the unique index on insert.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (*Session, error) {
	repo := s.repomanager.Users(s.db)

	_, err := repo.GetUserByEmail(ctx, in.Email)
	switch {
	case err == nil:
		return nil, common.ErrDuplicateEmail
	case !errors.Is(err, common.ErrorNotFound):
		return nil, fmt.Errorf("error looking up user: %w", err)
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		if errors.Is(err, auth.ErrPasswordTooLong) {
			ve := &common.ValidationError{}
			ve.Add("password", "Password must be at most 72 bytes")
			return nil, ve
		}
		return nil, err
	}

	user, err := repo.Create(ctx, &models.User{
		Email:        in.Email,
		PasswordHash: hash,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
	})
	if err != nil {
		if errors.Is(err, common.ErrDuplicateEmail) {
			return nil, err
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return s.newSession(user)
}

// dummyHash is compared against when the email is unknown so that both
// login failures cost one bcrypt comparison.
var dummyHash = sync.OnceValue(func() string {
	h, _ := auth.HashPassword("no-such-user-placeholder")
	return h
})

// Login checks the credentials and signs a token. Unknown email and wrong
// password both yield common.ErrInvalidCredentials.
func (s *UserService) Login(ctx context.Context, email, password string) (*Session, error) {
	repo := s.repomanager.Users(s.db)

	user, err := repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			auth.CheckPassword(password, dummyHash())
			return nil, common.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("error looking up user: %w", err)
	}

	if !auth.CheckPassword(password, user.PasswordHash) {
		return nil, common.ErrInvalidCredentials
	}

	return s.newSession(user)
}

// ValidateToken returns the user id the token was issued for. It does not
// consult the database.
func (s *UserService) ValidateToken(token string) (string, error) {
	return auth.GetUserIDFromToken(token, s.jwtSecret, s.now())
}

func (s *UserService) newSession(user *models.User) (*Session, error) {
	token, err := auth.GenerateToken(user.ID, s.jwtSecret, s.now(), s.tokenValidity)
	if err != nil {
		return nil, fmt.Errorf("error signing token: %w", err)
	}
	return &Session{User: user, Token: token}, nil
}
