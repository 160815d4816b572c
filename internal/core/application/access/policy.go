package access

import (
	"fmt"

	"ordertrack/internal/core/domain/model/account"
	"ordertrack/internal/pkg/errs"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
)

// Resources and actions known to the policy. Handlers pass these
// constants; free-form strings never reach the enforcer.
const (
	ResourceOrders = "orders"
	ResourceUsers  = "users"

	ActionCreate       = "create"
	ActionListOwn      = "list_own"
	ActionListAll      = "list_all"
	ActionUpdateStatus = "update_status"
	ActionList         = "list"
	ActionDelete       = "delete"
)

// casbinModel is the request/policy shape for the role capability table.
// Roles are flat: the administrator does not inherit producer
// capabilities (admins do not create orders).
const casbinModel = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = r.sub == p.sub && r.obj == p.obj && r.act == p.act
`

// capabilities is the complete role -> resource -> action table.
var capabilities = [][]string{
	{account.RoleProducer.String(), ResourceOrders, ActionCreate},
	{account.RoleProducer.String(), ResourceOrders, ActionListOwn},
	{account.RoleAdmin.String(), ResourceOrders, ActionListAll},
	{account.RoleAdmin.String(), ResourceOrders, ActionUpdateStatus},
	{account.RoleAdmin.String(), ResourceUsers, ActionList},
	{account.RoleAdmin.String(), ResourceUsers, ActionCreate},
	{account.RoleAdmin.String(), ResourceUsers, ActionDelete},
}

// Policy answers "may this role perform this action on this resource".
// It is built once in the composition root and shared read-only.
type Policy struct {
	enforcer *casbin.Enforcer
}

// NewPolicy builds the enforcer with the application's fixed capability
// table. There is no external policy storage; the table is part of the
// program.
func NewPolicy() (*Policy, error) {
	m, err := model.NewModelFromString(casbinModel)
	if err != nil {
		return nil, fmt.Errorf("build access model: %w", err)
	}

	enforcer, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, fmt.Errorf("build access enforcer: %w", err)
	}

	for _, rule := range capabilities {
		if _, err := enforcer.AddPolicy(rule[0], rule[1], rule[2]); err != nil {
			return nil, fmt.Errorf("add access rule %v: %w", rule, err)
		}
	}

	return &Policy{enforcer: enforcer}, nil
}

// Allow returns nil when the role may perform the action, and an
// AuthorizationDeniedError otherwise. A denied result is an error, never
// a silent no-op.
func (p *Policy) Allow(role account.Role, resource, action string) error {
	ok, err := p.enforcer.Enforce(role.String(), resource, action)
	if err != nil {
		return errs.NewAuthorizationDeniedErrorWithCause(role.String(), action+" "+resource, err)
	}
	if !ok {
		return errs.NewAuthorizationDeniedError(role.String(), action+" "+resource)
	}
	return nil
}
