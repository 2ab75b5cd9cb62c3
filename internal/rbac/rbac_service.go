package rbac

import (
	"context"
	"sync"

	"github.com/casbin/casbin/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

//go:generate mockgen -source=rbac_service.go -destination=mock/rbac_service_mock.go -package=mock
type Service interface {
	LoadPolicy(ctx context.Context) error
	Enforce(ctx context.Context, req EnforceRequest) (bool, error)
}

type service struct {
	repo     Repository
	enforcer *casbin.Enforcer
	mu       sync.RWMutex
	loads    singleflight.Group
	logger   *zap.Logger
}

func NewService(repo Repository, enforcer *casbin.Enforcer, logger ...*zap.Logger) Service {
	l := zap.L().Named("rbac.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("rbac.service")
	}
	return &service{
		repo:     repo,
		enforcer: enforcer,
		logger:   l,
	}
}

// LoadPolicy replaces the enforcer policy with the current role tables. Concurrent
// callers share one reload, which is detached from the first caller's cancellation.
func (s *service) LoadPolicy(ctx context.Context) error {
	shared := context.WithoutCancel(ctx)
	_, err, _ := s.loads.Do("policy", func() (any, error) {
		return nil, s.loadPolicy(shared)
	})
	return err
}

func (s *service) loadPolicy(ctx context.Context) error {
	userRoles, err := s.repo.GetUserRoles(ctx)
	if err != nil {
		return err
	}
	rolePerms, err := s.repo.GetRolePermissions(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.enforcer.ClearPolicy()

	for _, ur := range userRoles {
		if _, err := s.enforcer.AddGroupingPolicy(UserSubject(ur.UserID), RoleSubject(ur.RoleID)); err != nil {
			return err
		}
	}

	for _, rp := range rolePerms {
		if _, err := s.enforcer.AddPolicy(RoleSubject(rp.RoleID), rp.Resource, rp.Action); err != nil {
			return err
		}
	}

	// ClearPolicy keeps the role manager's links; rebuild them from the new g rows.
	if err := s.enforcer.BuildRoleLinks(); err != nil {
		return err
	}

	s.logger.Debug("rbac policy loaded",
		zap.Int("user_roles", len(userRoles)),
		zap.Int("role_permissions", len(rolePerms)),
	)
	return nil
}

// Enforce reloads the policy so role changes apply to the next request.
func (s *service) Enforce(ctx context.Context, req EnforceRequest) (bool, error) {
	if err := s.LoadPolicy(ctx); err != nil {
		s.logger.Error("rbac load policy failed", zap.Error(err))
		return false, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	allowed, err := s.enforcer.Enforce(req.Subject, req.Resource, req.Action)
	if err != nil {
		s.logger.Error("rbac enforce failed",
			zap.String("subject", req.Subject),
			zap.String("resource", req.Resource),
			zap.String("action", req.Action),
			zap.Error(err),
		)
		return false, err
	}

	s.logger.Debug("rbac enforce result",
		zap.String("subject", req.Subject),
		zap.String("resource", req.Resource),
		zap.String("action", req.Action),
		zap.Bool("allowed", allowed),
	)
	return allowed, nil
}
