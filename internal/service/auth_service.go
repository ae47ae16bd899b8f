package service

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/thrift-store-api/internal/auth"
	"github.com/spec-kit/thrift-store-api/internal/config"
	"github.com/spec-kit/thrift-store-api/internal/domain"
	"github.com/spec-kit/thrift-store-api/internal/events"
	"github.com/spec-kit/thrift-store-api/internal/repository"
	apperrors "github.com/spec-kit/thrift-store-api/pkg/util"
)

// AuthService coordinates registration, login and self-service mutations.
type AuthService struct {
	users         repository.UserRepository
	personas      repository.PersonaRepository
	registrations repository.RegistrationRepository
	tokenMgr      *auth.TokenManager
	dispatcher    events.Dispatcher
	bcryptCost    int
}

// AuthDependencies encapsulates repo requirements for auth service.
type AuthDependencies struct {
	UserRepo         repository.UserRepository
	PersonaRepo      repository.PersonaRepository
	RegistrationRepo repository.RegistrationRepository
	Dispatcher       events.Dispatcher
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, deps AuthDependencies) *AuthService {
	return &AuthService{
		users:         deps.UserRepo,
		personas:      deps.PersonaRepo,
		registrations: deps.RegistrationRepo,
		tokenMgr:      auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTLMinutes),
		dispatcher:    deps.Dispatcher,
		bcryptCost:    cfg.Auth.BcryptCost,
	}
}

// Register creates a persona and its owning user in one transaction, then
// issues a token for the new account. The supplied role id is linked without
// an existence check, matching the original contract.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (string, time.Time, error) {
	fieldErrs := in.Validate()
	if !fieldErrs.Empty() {
		return "", time.Time{}, apperrors.NewValidationError("there are empty or invalid fields", fieldErrs.Details())
	}

	if _, err := s.users.GetByEmail(ctx, in.Email); err == nil {
		fieldErrs.add("email", "email is already taken")
		return "", time.Time{}, apperrors.NewValidationError("there are empty or invalid fields", fieldErrs.Details())
	} else if err != pgx.ErrNoRows {
		return "", time.Time{}, apperrors.NewInternalError(err)
	}

	hash, err := auth.HashPassword(in.Password, s.bcryptCost)
	if err != nil {
		return "", time.Time{}, apperrors.NewInternalError(err)
	}

	persona := &domain.Persona{
		FullName:   in.FullName,
		NationalID: in.NationalID,
		Address:    in.Address,
		BirthDate:  in.ParsedBirthDate(),
	}
	user := &domain.User{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hash,
		RoleID:       in.RoleID,
	}
	if err := s.registrations.Register(ctx, persona, user); err != nil {
		return "", time.Time{}, apperrors.NewInternalError(err)
	}

	token, exp, err := s.tokenMgr.GenerateToken(user.ID)
	if err != nil {
		return "", time.Time{}, apperrors.NewInternalError(err)
	}

	s.publish(ctx, events.NewEvent(events.EventUserRegistered, user.ID, map[string]any{"email": user.Email}))
	return token, exp, nil
}

// Login authenticates by email and password. Unknown email and wrong
// password return the same error.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, time.Time, error) {
	fieldErrs := ValidateLogin(email, password)
	if !fieldErrs.Empty() {
		return "", time.Time{}, apperrors.NewValidationError("validation error", fieldErrs.Details())
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if err == pgx.ErrNoRows {
			return "", time.Time{}, apperrors.NewInvalidCredentials()
		}
		return "", time.Time{}, apperrors.NewInternalError(err)
	}
	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return "", time.Time{}, apperrors.NewInvalidCredentials()
	}

	token, exp, err := s.tokenMgr.GenerateToken(user.ID)
	if err != nil {
		return "", time.Time{}, apperrors.NewInternalError(err)
	}
	return token, exp, nil
}

// UpdateName changes the target user's name. Self-service only.
func (s *AuthService) UpdateName(ctx context.Context, requesterID, targetID int64, name string) error {
	user, err := s.users.GetByID(ctx, targetID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return apperrors.NewNotFound("user")
		}
		return apperrors.NewInternalError(err)
	}
	if !auth.CanModify(requesterID, targetID) {
		return apperrors.NewForbidden("you are not authorized to edit this user")
	}

	user.Name = name
	if err := s.users.Update(ctx, user); err != nil {
		return apperrors.NewInternalError(err)
	}
	return nil
}

// UpdatePassword verifies the old password before storing the new hash.
// Self-service only.
func (s *AuthService) UpdatePassword(ctx context.Context, requesterID, targetID int64, oldPassword, newPassword string) error {
	user, err := s.users.GetByID(ctx, targetID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return apperrors.NewNotFound("user")
		}
		return apperrors.NewInternalError(err)
	}
	if !auth.CanModify(requesterID, targetID) {
		return apperrors.NewForbidden("you are not authorized to edit this user")
	}

	fieldErrs := ValidatePasswordChange(oldPassword, newPassword)
	if !fieldErrs.Empty() {
		return apperrors.NewValidationError("validation error", fieldErrs.Details())
	}

	if err := auth.ComparePassword(user.PasswordHash, oldPassword); err != nil {
		return apperrors.NewPasswordMismatch()
	}

	hash, err := auth.HashPassword(newPassword, s.bcryptCost)
	if err != nil {
		return apperrors.NewInternalError(err)
	}
	user.PasswordHash = hash
	if err := s.users.Update(ctx, user); err != nil {
		return apperrors.NewInternalError(err)
	}

	s.publish(ctx, events.NewEvent(events.EventUserPasswordChanged, user.ID, nil))
	return nil
}

// DeleteUser removes a user record. Any authenticated caller may delete any
// user, and the linked persona is left in place, both matching the original
// contract.
func (s *AuthService) DeleteUser(ctx context.Context, targetID int64) error {
	if _, err := s.users.GetByID(ctx, targetID); err != nil {
		if err == pgx.ErrNoRows {
			return apperrors.NewNotFound("user")
		}
		return apperrors.NewInternalError(err)
	}
	if err := s.users.Delete(ctx, targetID); err != nil {
		return apperrors.NewInternalError(err)
	}

	s.publish(ctx, events.NewEvent(events.EventUserDeleted, targetID, nil))
	return nil
}

// DeletePersona removes a persona record.
func (s *AuthService) DeletePersona(ctx context.Context, id int64) error {
	if _, err := s.personas.GetByID(ctx, id); err != nil {
		if err == pgx.ErrNoRows {
			return apperrors.NewNotFound("persona")
		}
		return apperrors.NewInternalError(err)
	}
	if err := s.personas.Delete(ctx, id); err != nil {
		return apperrors.NewInternalError(err)
	}
	return nil
}

// ListUsers returns all users.
func (s *AuthService) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return users, nil
}

// ListPersonas returns all personas.
func (s *AuthService) ListPersonas(ctx context.Context) ([]domain.Persona, error) {
	personas, err := s.personas.List(ctx)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return personas, nil
}

// ListUsersWithRole returns users joined with their role name.
func (s *AuthService) ListUsersWithRole(ctx context.Context) ([]domain.UserWithRole, error) {
	rows, err := s.users.ListWithRole(ctx)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return rows, nil
}

// ListUsersWithPersona returns users joined with persona and role names.
func (s *AuthService) ListUsersWithPersona(ctx context.Context) ([]domain.UserWithPersona, error) {
	rows, err := s.users.ListWithPersona(ctx)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return rows, nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}

func (s *AuthService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, event)
}
