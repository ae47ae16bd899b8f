package repository

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/thrift-store-api/internal/domain"
)

// MemoryStore backs the in-memory repository implementations. Used by tests
// and by local runs without a database. Behavior mirrors the Postgres
// implementations, including pgx.ErrNoRows on missing records and email
// uniqueness on registration.
type MemoryStore struct {
	mu        sync.RWMutex
	users     map[int64]domain.User
	personas  map[int64]domain.Persona
	roles     map[int64]domain.Role
	nextUser  int64
	nextPers  int64
	failUsers bool
}

// NewMemoryStore creates an empty store with the default roles seeded.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:    make(map[int64]domain.User),
		personas: make(map[int64]domain.Persona),
		roles: map[int64]domain.Role{
			1: {ID: 1, Name: "admin"},
			2: {ID: 2, Name: "seller"},
			3: {ID: 3, Name: "customer"},
		},
		nextUser: 1,
		nextPers: 1,
	}
}

// FailUserInserts makes the next user inserts fail, for exercising the
// registration rollback path.
func (s *MemoryStore) FailUserInserts(fail bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failUsers = fail
}

// UserCount reports the number of stored users.
func (s *MemoryStore) UserCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users)
}

// PersonaCount reports the number of stored personas.
func (s *MemoryStore) PersonaCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.personas)
}

// Users returns a user-repository view of the store.
func (s *MemoryStore) Users() UserRepository { return &memoryUserRepository{store: s} }

// Personas returns a persona-repository view of the store.
func (s *MemoryStore) Personas() PersonaRepository { return &memoryPersonaRepository{store: s} }

// Roles returns a role-repository view of the store.
func (s *MemoryStore) Roles() RoleRepository { return &memoryRoleRepository{store: s} }

// Registrations returns a registration-repository view of the store.
func (s *MemoryStore) Registrations() RegistrationRepository {
	return &memoryRegistrationRepository{store: s}
}

type memoryUserRepository struct {
	store *MemoryStore
}

func (r *memoryUserRepository) Update(_ context.Context, user *domain.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.users[user.ID]; !ok {
		return pgx.ErrNoRows
	}
	r.store.users[user.ID] = *user
	return nil
}

func (r *memoryUserRepository) GetByID(_ context.Context, id int64) (*domain.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	user, ok := r.store.users[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &user, nil
}

func (r *memoryUserRepository) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	for _, user := range r.store.users {
		if user.Email == email {
			u := user
			return &u, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *memoryUserRepository) List(_ context.Context) ([]domain.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	users := make([]domain.User, 0, len(r.store.users))
	for _, user := range r.store.users {
		users = append(users, user)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

func (r *memoryUserRepository) ListWithRole(ctx context.Context) ([]domain.UserWithRole, error) {
	users, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	out := make([]domain.UserWithRole, 0, len(users))
	for _, user := range users {
		out = append(out, domain.UserWithRole{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
			Role:  r.store.roles[user.RoleID].Name,
		})
	}
	return out, nil
}

func (r *memoryUserRepository) ListWithPersona(ctx context.Context) ([]domain.UserWithPersona, error) {
	users, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	out := make([]domain.UserWithPersona, 0, len(users))
	for _, user := range users {
		out = append(out, domain.UserWithPersona{
			ID:       user.ID,
			Name:     user.Name,
			Email:    user.Email,
			FullName: r.store.personas[user.PersonaID].FullName,
			Role:     r.store.roles[user.RoleID].Name,
		})
	}
	return out, nil
}

func (r *memoryUserRepository) Delete(_ context.Context, id int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.users[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.store.users, id)
	return nil
}

type memoryPersonaRepository struct {
	store *MemoryStore
}

func (r *memoryPersonaRepository) GetByID(_ context.Context, id int64) (*domain.Persona, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	persona, ok := r.store.personas[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &persona, nil
}

func (r *memoryPersonaRepository) List(_ context.Context) ([]domain.Persona, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	personas := make([]domain.Persona, 0, len(r.store.personas))
	for _, persona := range r.store.personas {
		personas = append(personas, persona)
	}
	sort.Slice(personas, func(i, j int) bool { return personas[i].ID < personas[j].ID })
	return personas, nil
}

func (r *memoryPersonaRepository) Delete(_ context.Context, id int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.personas[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.store.personas, id)
	return nil
}

type memoryRoleRepository struct {
	store *MemoryStore
}

func (r *memoryRoleRepository) GetByID(_ context.Context, id int64) (*domain.Role, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	role, ok := r.store.roles[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &role, nil
}

func (r *memoryRoleRepository) List(_ context.Context) ([]domain.Role, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	roles := make([]domain.Role, 0, len(r.store.roles))
	for _, role := range r.store.roles {
		roles = append(roles, role)
	}
	sort.Slice(roles, func(i, j int) bool { return roles[i].ID < roles[j].ID })
	return roles, nil
}

type memoryRegistrationRepository struct {
	store *MemoryStore
}

func (r *memoryRegistrationRepository) Register(_ context.Context, persona *domain.Persona, user *domain.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, existing := range r.store.users {
		if existing.Email == user.Email {
			return errors.New("duplicate key value violates unique constraint \"users_email_key\"")
		}
	}
	if r.store.failUsers {
		// Neither record is stored: the transaction rolled back.
		return errors.New("insert user: connection reset")
	}

	persona.ID = r.store.nextPers
	r.store.nextPers++
	r.store.personas[persona.ID] = *persona

	user.ID = r.store.nextUser
	r.store.nextUser++
	user.PersonaID = persona.ID
	r.store.users[user.ID] = *user
	return nil
}
