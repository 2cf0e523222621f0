package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/flight-search/flight-finder/internal/domain"
	"github.com/flight-search/flight-finder/internal/infrastructure/idgen"
	"github.com/flight-search/flight-finder/internal/infrastructure/kvstore"
	"github.com/flight-search/flight-finder/internal/infrastructure/logger"
)

// TokenPrefix starts every session token.
const TokenPrefix = "mock_token_"

const sessionKeyPrefix = "token:"

// AuthUseCase manages accounts and sessions.
type AuthUseCase interface {
	// SignUp creates an account and opens a session for it.
	SignUp(ctx context.Context, in SignUpInput) (*domain.Session, error)

	// SignIn opens a session for an existing account.
	SignIn(ctx context.Context, in SignInInput) (*domain.Session, error)

	// CurrentUser resolves a session token. It returns ErrUnauthorized for
	// unknown, expired or unreadable sessions.
	CurrentUser(ctx context.Context, token string) (*domain.User, error)

	// Logout ends a session. Ending an unknown session is not an error.
	Logout(ctx context.Context, token string) error
}

// SignUpInput is the sign-up form.
type SignUpInput struct {
	UserID          string `json:"user_id" validate:"required,min=3"`
	Name            string `json:"name" validate:"required,min=2"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=6,max=72"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
}

// SignInInput is the sign-in form. UID is a user id or an email.
type SignInInput struct {
	UID      string `json:"uid" validate:"required,min=3"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

// AuthConfig configures the auth use case.
type AuthConfig struct {
	// SessionTTL expires sessions (0 keeps them until logout)
	SessionTTL time.Duration

	// Latency is waited before sign-up, sign-in and current-user lookups
	Latency time.Duration

	// BcryptCost is the hashing cost for new passwords
	BcryptCost int
}

// DefaultAuthConfig returns the default auth settings.
func DefaultAuthConfig() AuthConfig {
	return AuthConfig{
		SessionTTL: 24 * time.Hour,
		BcryptCost: bcrypt.DefaultCost,
	}
}

// validationMessages maps "<json field>.<tag>" to the message shown to users.
var validationMessages = map[string]string{
	"user_id.required":         "User ID is required",
	"user_id.min":              "User ID must be at least 3 characters long",
	"name.required":            "Name is required",
	"name.min":                 "Name must be at least 2 characters long",
	"email.required":           "Email is required",
	"email.email":              "Please enter a valid email address",
	"password.required":        "Password is required",
	"password.min":             "Password must be at least 6 characters long",
	"password.max":             "Password must be at most 72 characters long",
	"confirmPassword.required": "Please confirm your password",
	"confirmPassword.eqfield":  "Passwords don't match",
	"uid.required":             "Uid is required",
	"uid.min":                  "Uid must be at least 3 characters long",
}

type authUseCase struct {
	users    UserDirectory
	sessions kvstore.Store
	ids      idgen.Generator
	validate *validator.Validate
	cfg      AuthConfig
	log      *logger.Logger
}

// NewAuthUseCase creates an AuthUseCase.
func NewAuthUseCase(users UserDirectory, sessions kvstore.Store, ids idgen.Generator, cfg AuthConfig, log *logger.Logger) AuthUseCase {
	if cfg.BcryptCost == 0 {
		cfg.BcryptCost = bcrypt.DefaultCost
	}
	if log == nil {
		log = logger.Nop()
	}
	return &authUseCase{
		users:    users,
		sessions: sessions,
		ids:      ids,
		validate: newValidator(),
		cfg:      cfg,
		log:      log.WithComponent("auth"),
	}
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func (a *authUseCase) SignUp(ctx context.Context, in SignUpInput) (*domain.Session, error) {
	if err := a.check(in); err != nil {
		return nil, err
	}
	if err := a.wait(ctx); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), a.cfg.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := domain.User{
		ID:     a.ids.NextID(),
		UserID: in.UserID,
		Name:   in.Name,
		Email:  in.Email,
		Avatar: DefaultAvatar,
	}
	if err := a.users.Create(ctx, user, hash); err != nil {
		return nil, err
	}

	a.log.Info().Str("user_id", user.UserID).Int64("id", user.ID).Msg("user signed up")
	return a.openSession(ctx, user)
}

func (a *authUseCase) SignIn(ctx context.Context, in SignInInput) (*domain.Session, error) {
	if err := a.check(in); err != nil {
		return nil, err
	}
	if err := a.wait(ctx); err != nil {
		return nil, err
	}

	user, hash, err := a.users.FindByUID(ctx, in.UID)
	if err != nil {
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword(hash, []byte(in.Password)); err != nil {
		a.log.Info().Str("user_id", user.UserID).Msg("sign-in rejected")
		return nil, domain.ErrInvalidPassword
	}

	return a.openSession(ctx, user)
}

func (a *authUseCase) CurrentUser(ctx context.Context, token string) (*domain.User, error) {
	if strings.TrimSpace(token) == "" {
		return nil, domain.ErrUnauthorized
	}
	if err := a.wait(ctx); err != nil {
		return nil, err
	}

	key := sessionKeyPrefix + token
	raw, err := a.sessions.Get(ctx, key)
	if errors.Is(err, kvstore.ErrNotFound) {
		return nil, domain.ErrUnauthorized
	}
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}

	var user domain.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil || user.UserID == "" {
		a.log.Warn().Msg("removing unreadable session")
		if rmErr := a.sessions.Remove(ctx, key); rmErr != nil {
			a.log.Error().Err(rmErr).Msg("remove unreadable session")
		}
		return nil, domain.ErrUnauthorized
	}
	return &user, nil
}

func (a *authUseCase) Logout(ctx context.Context, token string) error {
	if strings.TrimSpace(token) == "" {
		return nil
	}
	if err := a.sessions.Remove(ctx, sessionKeyPrefix+token); err != nil {
		return fmt.Errorf("remove session: %w", err)
	}
	return nil
}

func (a *authUseCase) openSession(ctx context.Context, user domain.User) (*domain.Session, error) {
	token := TokenPrefix + uuid.NewString()
	if err := kvstore.SetJSON(ctx, a.sessions, sessionKeyPrefix+token, user, a.cfg.SessionTTL); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}
	return &domain.Session{Token: token, User: user}, nil
}

// check validates a form and reports the first failure as a ValidationError.
func (a *authUseCase) check(form interface{}) error {
	err := a.validate.Struct(form)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return domain.WrapInvalidRequest("%v", err)
	}

	fe := verrs[0]
	msg, ok := validationMessages[fe.Field()+"."+fe.Tag()]
	if !ok {
		msg = fmt.Sprintf("failed %s validation", fe.Tag())
	}
	return domain.NewValidationError(fe.Field(), msg)
}

func (a *authUseCase) wait(ctx context.Context) error {
	if a.cfg.Latency <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(a.cfg.Latency)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

var _ AuthUseCase = (*authUseCase)(nil)
