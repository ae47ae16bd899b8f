package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/thrift-store-api/internal/auth"
	"github.com/spec-kit/thrift-store-api/internal/config"
	"github.com/spec-kit/thrift-store-api/internal/events"
	"github.com/spec-kit/thrift-store-api/internal/repository"
	apperrors "github.com/spec-kit/thrift-store-api/pkg/util"
)

type AuthServiceSuite struct {
	suite.Suite
	store     *repository.MemoryStore
	svc       *AuthService
	published []events.Event
}

func TestAuthServiceSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceSuite))
}

type recordingDispatcher struct {
	events *[]events.Event
}

func (d recordingDispatcher) Publish(_ context.Context, event events.Event) error {
	*d.events = append(*d.events, event)
	return nil
}

func (d recordingDispatcher) Subscribe(events.EventType, events.EventHandler) {}

func (s *AuthServiceSuite) SetupTest() {
	s.store = repository.NewMemoryStore()
	s.published = nil

	cfg := config.Config{
		Auth: config.AuthConfig{
			JWTSecret:             "test-secret",
			AccessTokenTTLMinutes: 60,
			BcryptCost:            bcrypt.MinCost,
		},
	}
	s.svc = NewAuthService(cfg, AuthDependencies{
		UserRepo:         s.store.Users(),
		PersonaRepo:      s.store.Personas(),
		RegistrationRepo: s.store.Registrations(),
		Dispatcher:       recordingDispatcher{events: &s.published},
	})
}

func (s *AuthServiceSuite) register(in RegisterInput) string {
	token, _, err := s.svc.Register(context.Background(), in)
	s.Require().NoError(err)
	return token
}

func (s *AuthServiceSuite) assertCode(err error, code string) {
	s.Require().Error(err)
	var domainErr *apperrors.DomainError
	s.Require().True(errors.As(err, &domainErr), "expected DomainError, got %v", err)
	s.Equal(code, domainErr.Code)
}

func (s *AuthServiceSuite) TestRegisterSuccess() {
	token := s.register(validInput())

	s.NotEmpty(token)
	s.Equal(1, s.store.UserCount())
	s.Equal(1, s.store.PersonaCount())

	user, err := s.store.Users().GetByEmail(context.Background(), "a@x.com")
	s.Require().NoError(err)
	s.NotEqual("secret", user.PasswordHash)
	s.NoError(auth.ComparePassword(user.PasswordHash, "secret"))

	persona, err := s.store.Personas().GetByID(context.Background(), user.PersonaID)
	s.Require().NoError(err)
	s.Equal("Ana", persona.FullName)

	s.Require().Len(s.published, 1)
	s.Equal(events.EventUserRegistered, s.published[0].Type)
}

func (s *AuthServiceSuite) TestRegisterMissingFieldsCreatesNothing() {
	in := validInput()
	in.Email = ""
	in.Address = ""

	_, _, err := s.svc.Register(context.Background(), in)
	s.assertCode(err, "VALIDATION_FAILED")
	s.Equal(0, s.store.UserCount())
	s.Equal(0, s.store.PersonaCount())
}

func (s *AuthServiceSuite) TestRegisterDuplicateEmail() {
	s.register(validInput())

	_, _, err := s.svc.Register(context.Background(), validInput())
	s.assertCode(err, "VALIDATION_FAILED")
	s.Equal(1, s.store.UserCount())
	s.Equal(1, s.store.PersonaCount())
}

func (s *AuthServiceSuite) TestRegisterStorageFailureLeavesNoOrphanPersona() {
	s.store.FailUserInserts(true)

	_, _, err := s.svc.Register(context.Background(), validInput())
	s.assertCode(err, "INTERNAL_ERROR")
	s.Equal(0, s.store.UserCount())
	s.Equal(0, s.store.PersonaCount())
}

func (s *AuthServiceSuite) TestLogin() {
	s.register(validInput())

	token, _, err := s.svc.Login(context.Background(), "a@x.com", "secret")
	s.Require().NoError(err)
	s.NotEmpty(token)

	claims, err := s.svc.TokenManager().ParseToken(token)
	s.Require().NoError(err)
	id, err := claims.UserID()
	s.Require().NoError(err)
	s.Equal(int64(1), id)
}

func (s *AuthServiceSuite) TestLoginWrongPasswordAndUnknownEmailIndistinguishable() {
	s.register(validInput())

	_, _, errWrongPassword := s.svc.Login(context.Background(), "a@x.com", "nope")
	_, _, errUnknownEmail := s.svc.Login(context.Background(), "b@x.com", "secret")

	s.assertCode(errWrongPassword, "INVALID_CREDENTIALS")
	s.assertCode(errUnknownEmail, "INVALID_CREDENTIALS")
	s.Equal(errWrongPassword.Error(), errUnknownEmail.Error())
}

func (s *AuthServiceSuite) TestLoginValidation() {
	_, _, err := s.svc.Login(context.Background(), "", "")
	s.assertCode(err, "VALIDATION_FAILED")
}

func (s *AuthServiceSuite) TestUpdateNameSelfService() {
	s.register(validInput())

	s.Require().NoError(s.svc.UpdateName(context.Background(), 1, 1, "Better Name"))

	user, err := s.store.Users().GetByID(context.Background(), 1)
	s.Require().NoError(err)
	s.Equal("Better Name", user.Name)
}

func (s *AuthServiceSuite) TestUpdateNameForbiddenForOtherUsers() {
	s.register(validInput())

	err := s.svc.UpdateName(context.Background(), 2, 1, "Hijacked")
	s.assertCode(err, "FORBIDDEN")

	user, getErr := s.store.Users().GetByID(context.Background(), 1)
	s.Require().NoError(getErr)
	s.Equal("A", user.Name)
}

func (s *AuthServiceSuite) TestUpdateNameTargetMissing() {
	err := s.svc.UpdateName(context.Background(), 9, 9, "x")
	s.assertCode(err, "NOT_FOUND")
}

func (s *AuthServiceSuite) TestUpdatePassword() {
	s.register(validInput())

	s.Require().NoError(s.svc.UpdatePassword(context.Background(), 1, 1, "secret", "newsecret"))

	user, err := s.store.Users().GetByID(context.Background(), 1)
	s.Require().NoError(err)
	s.NoError(auth.ComparePassword(user.PasswordHash, "newsecret"))
	s.Error(auth.ComparePassword(user.PasswordHash, "secret"))

	s.Require().Len(s.published, 2)
	s.Equal(events.EventUserPasswordChanged, s.published[1].Type)
}

func (s *AuthServiceSuite) TestUpdatePasswordTooShort() {
	s.register(validInput())
	before := s.currentHash(1)

	err := s.svc.UpdatePassword(context.Background(), 1, 1, "secret", "short")
	s.assertCode(err, "VALIDATION_FAILED")
	s.Equal(before, s.currentHash(1))
}

func (s *AuthServiceSuite) TestUpdatePasswordWrongOldPassword() {
	s.register(validInput())
	before := s.currentHash(1)

	err := s.svc.UpdatePassword(context.Background(), 1, 1, "wrong", "newsecret")
	s.assertCode(err, "PASSWORD_MISMATCH")
	s.Equal(before, s.currentHash(1))
}

func (s *AuthServiceSuite) TestUpdatePasswordForbidden() {
	s.register(validInput())

	err := s.svc.UpdatePassword(context.Background(), 2, 1, "secret", "newsecret")
	s.assertCode(err, "FORBIDDEN")
}

func (s *AuthServiceSuite) TestDeleteUserLeavesPersonaOrphaned() {
	s.register(validInput())

	s.Require().NoError(s.svc.DeleteUser(context.Background(), 1))
	s.Equal(0, s.store.UserCount())
	s.Equal(1, s.store.PersonaCount())

	s.Require().Len(s.published, 2)
	s.Equal(events.EventUserDeleted, s.published[1].Type)
}

func (s *AuthServiceSuite) TestDeleteUserMissing() {
	err := s.svc.DeleteUser(context.Background(), 99)
	s.assertCode(err, "NOT_FOUND")
}

func (s *AuthServiceSuite) TestDeletePersona() {
	s.register(validInput())

	s.Require().NoError(s.svc.DeletePersona(context.Background(), 1))
	s.Equal(0, s.store.PersonaCount())

	err := s.svc.DeletePersona(context.Background(), 1)
	s.assertCode(err, "NOT_FOUND")
}

func (s *AuthServiceSuite) TestListings() {
	s.register(validInput())
	second := validInput()
	second.Name = "B"
	second.Email = "b@x.com"
	second.FullName = "Bea"
	second.RoleID = 3
	s.register(second)

	users, err := s.svc.ListUsers(context.Background())
	s.Require().NoError(err)
	s.Len(users, 2)

	personas, err := s.svc.ListPersonas(context.Background())
	s.Require().NoError(err)
	s.Len(personas, 2)

	withRole, err := s.svc.ListUsersWithRole(context.Background())
	s.Require().NoError(err)
	s.Require().Len(withRole, 2)
	s.Equal("admin", withRole[0].Role)
	s.Equal("customer", withRole[1].Role)

	withPersona, err := s.svc.ListUsersWithPersona(context.Background())
	s.Require().NoError(err)
	s.Require().Len(withPersona, 2)
	s.Equal("Ana", withPersona[0].FullName)
	s.Equal("Bea", withPersona[1].FullName)
}

func (s *AuthServiceSuite) currentHash(id int64) string {
	user, err := s.store.Users().GetByID(context.Background(), id)
	s.Require().NoError(err)
	return user.PasswordHash
}
