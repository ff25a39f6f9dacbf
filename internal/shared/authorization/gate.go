// Package authorization centralizes every role and ownership decision of the
// API behind a single gate, instead of repeating role checks per route.
package authorization

import (
	"fmt"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"

	"campusvoice/internal/shared/errors"
)

// Resources and actions known to the policy.
const (
	ResourceFeedback = "feedback"
	ResourceAccount  = "account"

	ActionCreate       = "create"
	ActionReadOwn      = "read_own"
	ActionReadAny      = "read_any"
	ActionListOwn      = "list_own"
	ActionListAll      = "list_all"
	ActionUpdateStatus = "update_status"
	ActionStats        = "stats"
	ActionReadProfile  = "read_profile"
	ActionChangeSecret = "change_secret"
)

const rbacModel = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && r.obj == p.obj && r.act == p.act
`

// The policy is static and defined in code: the roles and their grants are
// part of the API contract, not runtime data.
var policyRules = [][]string{
	{string(RoleStudent), ResourceFeedback, ActionCreate},
	{string(RoleStudent), ResourceFeedback, ActionReadOwn},
	{string(RoleStudent), ResourceFeedback, ActionListOwn},
	{string(RoleStudent), ResourceAccount, ActionReadProfile},
	{string(RoleStudent), ResourceAccount, ActionChangeSecret},

	{string(RoleAdmin), ResourceFeedback, ActionReadOwn},
	{string(RoleAdmin), ResourceFeedback, ActionReadAny},
	{string(RoleAdmin), ResourceFeedback, ActionListOwn},
	{string(RoleAdmin), ResourceFeedback, ActionListAll},
	{string(RoleAdmin), ResourceFeedback, ActionUpdateStatus},
	{string(RoleAdmin), ResourceFeedback, ActionStats},
	{string(RoleAdmin), ResourceAccount, ActionReadProfile},
	{string(RoleAdmin), ResourceAccount, ActionChangeSecret},
}

// Gate answers "may this role perform this action on this resource" and the
// ownership variant of the same question. It wraps a casbin enforcer so a
// different policy set can be swapped in without touching any caller.
type Gate struct {
	enforcer *casbin.Enforcer
}

// NewGate builds the gate with the built-in policy. superadmin inherits every
// admin grant.
func NewGate() (*Gate, error) {
	m, err := model.NewModelFromString(rbacModel)
	if err != nil {
		return nil, fmt.Errorf("failed to build authorization model: %w", err)
	}

	enforcer, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, fmt.Errorf("failed to create enforcer: %w", err)
	}

	if _, err := enforcer.AddPolicies(policyRules); err != nil {
		return nil, fmt.Errorf("failed to load policy rules: %w", err)
	}
	if _, err := enforcer.AddGroupingPolicy(string(RoleSuperadmin), string(RoleAdmin)); err != nil {
		return nil, fmt.Errorf("failed to load role hierarchy: %w", err)
	}

	return &Gate{enforcer: enforcer}, nil
}

// Authorize returns nil when role may perform action on resource, or a
// Forbidden error otherwise.
func (g *Gate) Authorize(role Role, resource, action string) error {
	allowed, err := g.enforcer.Enforce(role.String(), resource, action)
	if err != nil {
		return errors.NewInternalError("authorization check failed")
	}
	if !allowed {
		return errors.NewForbiddenError("you do not have permission to perform this action")
	}
	return nil
}

// AuthorizeOwnership allows admins unconditionally and owners of the
// resource; everyone else is denied.
func (g *Gate) AuthorizeOwnership(role Role, actorID, ownerID uint) error {
	if role.IsAdmin() {
		return nil
	}
	if actorID == ownerID {
		return nil
	}
	return errors.NewForbiddenError("you do not have permission to view this resource")
}

// ShouldRedact decides whether owner-identifying fields of an anonymous
// ticket must be replaced with the placeholder before serialization. Applied
// after authorization; the stored owner reference is never altered.
func (g *Gate) ShouldRedact(isAnonymous bool, viewerID, ownerID uint) bool {
	return isAnonymous && viewerID != ownerID
}
