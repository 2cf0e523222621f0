package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/crypto/bcrypt"

	"github.com/flight-search/flight-finder/internal/domain"
)

// DefaultAvatar is assigned to every new account.
const DefaultAvatar = "https://via.placeholder.com/150"

// SeedPassword is the password of the seeded demo accounts.
const SeedPassword = "password123"

// UserDirectory stores accounts and their password hashes.
type UserDirectory interface {
	// Create adds a user. It returns ErrUserExists when the user id or email is taken.
	Create(ctx context.Context, user domain.User, passwordHash []byte) error

	// FindByUID looks a user up by user id or email. It returns ErrUserNotFound.
	FindByUID(ctx context.Context, uid string) (domain.User, []byte, error)
}

type account struct {
	user domain.User
	hash []byte
}

// MemoryUserDirectory is an in-process UserDirectory.
type MemoryUserDirectory struct {
	mu       sync.RWMutex
	accounts []account
}

// NewMemoryUserDirectory creates an empty directory.
func NewMemoryUserDirectory() *MemoryUserDirectory {
	return &MemoryUserDirectory{}
}

// SeedUsers returns the demo accounts.
func SeedUsers() []domain.User {
	return []domain.User{
		{ID: 1, UserID: "john_doe", Name: "John Doe", Email: "john@example.com", Avatar: DefaultAvatar},
		{ID: 2, UserID: "jane_smith", Name: "Jane Smith", Email: "jane@example.com", Avatar: DefaultAvatar},
	}
}

// NewSeededUserDirectory creates a directory holding the demo accounts,
// each with SeedPassword hashed at the given bcrypt cost.
func NewSeededUserDirectory(cost int) (*MemoryUserDirectory, error) {
	dir := NewMemoryUserDirectory()
	for _, u := range SeedUsers() {
		hash, err := bcrypt.GenerateFromPassword([]byte(SeedPassword), cost)
		if err != nil {
			return nil, fmt.Errorf("hash seed password: %w", err)
		}
		if err := dir.Create(context.Background(), u, hash); err != nil {
			return nil, err
		}
	}
	return dir, nil
}

// Create implements UserDirectory.
func (d *MemoryUserDirectory) Create(ctx context.Context, user domain.User, passwordHash []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	for _, a := range d.accounts {
		if a.user.UserID == user.UserID || strings.EqualFold(a.user.Email, user.Email) {
			return domain.ErrUserExists
		}
	}
	d.accounts = append(d.accounts, account{user: user, hash: passwordHash})
	return nil
}

// FindByUID implements UserDirectory.
func (d *MemoryUserDirectory) FindByUID(ctx context.Context, uid string) (domain.User, []byte, error) {
	if err := ctx.Err(); err != nil {
		return domain.User{}, nil, err
	}

	d.mu.RLock()
	defer d.mu.RUnlock()

	for _, a := range d.accounts {
		if a.user.UserID == uid || strings.EqualFold(a.user.Email, uid) {
			return a.user, a.hash, nil
		}
	}
	return domain.User{}, nil, domain.ErrUserNotFound
}

// Len returns the number of accounts.
func (d *MemoryUserDirectory) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.accounts)
}

var _ UserDirectory = (*MemoryUserDirectory)(nil)
