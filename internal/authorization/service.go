// Package authorization is the server-side access gate. User capability
// flags are compiled into casbin policies so every mutating route is
// checked before its handler runs.
package authorization

import (
	"context"
	"errors"
	"fmt"

	"github.com/casbin/casbin/v2"
	casbinmodel "github.com/casbin/casbin/v2/model"
	gormadapter "github.com/casbin/gorm-adapter/v3"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var ErrForbidden = errors.New("forbidden")

// Feature objects guarded by the gate, matching the user capability set.
const (
	ObjectJob        = "job"
	ObjectBlogs      = "blogs"
	ObjectGallery    = "gallery"
	ObjectApplicants = "applicants"
	ObjectInvoice    = "invoice"
	ObjectQuotation  = "quotation"
	ObjectUsers      = "users"
	ObjectPrint      = "print"

	ActionAny = "*"

	RoleAdmin = "role:admin"
)

const modelText = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && (r.obj == p.obj || p.obj == "*") && (r.act == p.act || p.act == "*")
`

type Service struct {
	enforcer *casbin.SyncedEnforcer
	log      *zap.Logger
}

func New(db *gorm.DB, log *zap.Logger) (*Service, error) {
	adapter, err := gormadapter.NewAdapterByDB(db)
	if err != nil {
		return nil, fmt.Errorf("casbin adapter: %w", err)
	}
	m, err := casbinmodel.NewModelFromString(modelText)
	if err != nil {
		return nil, fmt.Errorf("casbin model: %w", err)
	}
	enforcer, err := casbin.NewSyncedEnforcer(m, adapter)
	if err != nil {
		return nil, fmt.Errorf("casbin enforcer: %w", err)
	}
	if err := enforcer.LoadPolicy(); err != nil {
		return nil, fmt.Errorf("casbin load policy: %w", err)
	}
	if _, err := enforcer.AddPolicy(RoleAdmin, "*", "*"); err != nil {
		return nil, fmt.Errorf("seed admin policy: %w", err)
	}
	return &Service{
		enforcer: enforcer,
		log:      log.Named("authorization"),
	}, nil
}

// Authorize checks subject (user:<id>) against a feature object.
func (s *Service) Authorize(ctx context.Context, subject, object, action string) error {
	ok, err := s.enforcer.Enforce(subject, object, action)
	if err != nil {
		return fmt.Errorf("enforce: %w", err)
	}
	if !ok {
		s.log.Debug("denied",
			zap.String("subject", subject),
			zap.String("object", object),
			zap.String("action", action),
		)
		return ErrForbidden
	}
	return nil
}

// SyncUserAccess replaces the subject's policies with the given feature
// set and, for admins, the admin role grant.
func (s *Service) SyncUserAccess(subject string, admin bool, features []string) error {
	if _, err := s.enforcer.RemoveFilteredPolicy(0, subject); err != nil {
		return fmt.Errorf("clear policies: %w", err)
	}
	if _, err := s.enforcer.RemoveFilteredGroupingPolicy(0, subject); err != nil {
		return fmt.Errorf("clear roles: %w", err)
	}

	for _, feature := range features {
		if _, err := s.enforcer.AddPolicy(subject, feature, ActionAny); err != nil {
			return fmt.Errorf("add policy: %w", err)
		}
	}
	if admin {
		if _, err := s.enforcer.AddGroupingPolicy(subject, RoleAdmin); err != nil {
			return fmt.Errorf("grant admin: %w", err)
		}
	}
	return nil
}

// RemoveUser drops every policy and role tied to the subject.
func (s *Service) RemoveUser(subject string) error {
	if _, err := s.enforcer.RemoveFilteredPolicy(0, subject); err != nil {
		return fmt.Errorf("clear policies: %w", err)
	}
	if _, err := s.enforcer.RemoveFilteredGroupingPolicy(0, subject); err != nil {
		return fmt.Errorf("clear roles: %w", err)
	}
	return nil
}
