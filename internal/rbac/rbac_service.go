package rbac

import (
	"sync"

	"go-payroll/internal/domain"

	"github.com/casbin/casbin/v2"
	"go.uber.org/zap"
)

//go:generate mockgen -source=rbac_service.go -destination=mock/rbac_service_mock.go -package=mock
type Service interface {
	Enforce(req domain.EnforceRequest) (bool, error)
	PermissionsForRole(role string) (RolePermissionsResponse, error)
}

type service struct {
	enforcer *casbin.Enforcer
	mu       sync.Mutex
}

// NewService loads policies and role inheritance into enforcer.
func NewService(enforcer *casbin.Enforcer, policies []Policy, inheritance [][2]string) (Service, error) {
	for _, p := range policies {
		if _, err := enforcer.AddPolicy(p.Role, p.Resource, p.Action); err != nil {
			return nil, err
		}
	}
	for _, g := range inheritance {
		if _, err := enforcer.AddGroupingPolicy(g[0], g[1]); err != nil {
			return nil, err
		}
	}

	zap.L().Named("rbac").Info("rbac policy loaded",
		zap.Int("policies", len(policies)),
		zap.Int("inheritance", len(inheritance)),
	)
	return &service{enforcer: enforcer}, nil
}

func (s *service) Enforce(req domain.EnforceRequest) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	allowed, err := s.enforcer.Enforce(req.Role, req.Resource, req.Action)
	if err != nil {
		return false, err
	}

	zap.L().Named("rbac").Debug("rbac enforce result",
		zap.String("role", req.Role),
		zap.String("resource", req.Resource),
		zap.String("action", req.Action),
		zap.Bool("allowed", allowed),
	)
	return allowed, nil
}

func (s *service) PermissionsForRole(role string) (RolePermissionsResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	perms, err := s.enforcer.GetImplicitPermissionsForUser(role)
	if err != nil {
		return RolePermissionsResponse{}, err
	}

	resp := RolePermissionsResponse{Role: role, Permissions: make([]PermissionResponse, 0, len(perms))}
	for _, p := range perms {
		if len(p) < 3 {
			continue
		}
		resp.Permissions = append(resp.Permissions, PermissionResponse{Resource: p[1], Action: p[2]})
	}
	return resp, nil
}
