package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/thrift-store-api/internal/repository"
	apperrors "github.com/spec-kit/thrift-store-api/pkg/util"
)

func TestRoleServiceNameByID(t *testing.T) {
	store := repository.NewMemoryStore()
	svc := NewRoleService(store.Roles(), nil, zap.NewNop())

	name, err := svc.NameByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "admin", name)

	_, err = svc.NameByID(context.Background(), 99)
	var domainErr *apperrors.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, "NOT_FOUND", domainErr.Code)
}

func TestRoleServiceList(t *testing.T) {
	store := repository.NewMemoryStore()
	svc := NewRoleService(store.Roles(), nil, zap.NewNop())

	roles, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, roles, 3)
}
