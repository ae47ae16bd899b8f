package service

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/spec-kit/thrift-store-api/internal/domain"
	"github.com/spec-kit/thrift-store-api/internal/persistence"
	"github.com/spec-kit/thrift-store-api/internal/repository"
	apperrors "github.com/spec-kit/thrift-store-api/pkg/util"
)

const roleCacheTTL = 10 * time.Minute

// RoleService resolves role reference data. The roles table is static, so
// name lookups are cached in Redis.
type RoleService struct {
	roles  repository.RoleRepository
	cache  *persistence.Redis
	logger *zap.Logger
}

// NewRoleService builds the service.
func NewRoleService(roles repository.RoleRepository, cache *persistence.Redis, logger *zap.Logger) *RoleService {
	return &RoleService{roles: roles, cache: cache, logger: logger}
}

// List returns all roles.
func (s *RoleService) List(ctx context.Context) ([]domain.Role, error) {
	roles, err := s.roles.List(ctx)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return roles, nil
}

// NameByID resolves a role name, consulting the cache first. Cache failures
// fall back to the database.
func (s *RoleService) NameByID(ctx context.Context, id int64) (string, error) {
	key := roleCacheKey(id)
	if s.cache != nil && s.cache.Client != nil {
		name, err := s.cache.Client.Get(ctx, key).Result()
		if err == nil {
			return name, nil
		}
		if err != redis.Nil {
			s.logger.Warn("role cache read failed", zap.Error(err))
		}
	}

	role, err := s.roles.GetByID(ctx, id)
	if err != nil {
		return "", apperrors.MapError(err)
	}

	if s.cache != nil && s.cache.Client != nil {
		if err := s.cache.Client.Set(ctx, key, role.Name, roleCacheTTL).Err(); err != nil {
			s.logger.Warn("role cache write failed", zap.Error(err))
		}
	}
	return role.Name, nil
}

func roleCacheKey(id int64) string {
	return "role:name:" + strconv.FormatInt(id, 10)
}
