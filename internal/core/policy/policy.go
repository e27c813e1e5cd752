// Package policy holds the single authorization table of the portal.
//
// Every check runs in two phases. Authorize evaluates the role rule before
// any resource is loaded; AuthorizeInstance evaluates ownership once the
// target document exists. Callers follow the order
// authenticate → Authorize → load (NotFound) → AuthorizeInstance.
package policy

import (
	"fmt"

	"github.com/uniportal/event-portal/internal/core/domain"
)

type Resource string

const (
	Event        Resource = "event"
	Announcement Resource = "announcement"
	Inquiry      Resource = "inquiry"
	Dashboard    Resource = "dashboard"
	User         Resource = "user"
)

type Action string

const (
	List     Action = "list"
	Read     Action = "read"
	Create   Action = "create"
	Update   Action = "update"
	Delete   Action = "delete"
	Upload   Action = "upload"
	Register Action = "register"
	ListOwn  Action = "list_own"
	Resolve  Action = "resolve"
	ReadSelf Action = "read_self"
	Promote  Action = "promote"
)

// Rule describes who may perform an action.
//   - Public: no identity needed.
//   - Roles: roles granted unconditionally; empty means any authenticated identity.
//   - Owner: the resource author is granted access to that instance only.
type Rule struct {
	Public bool
	Roles  []domain.Role
	Owner  bool
}

type key struct {
	resource Resource
	action   Action
}

var (
	public        = Rule{Public: true}
	authenticated = Rule{}
	adminOnly     = Rule{Roles: []domain.Role{domain.RoleAdmin}}
	adminOrOwner  = Rule{Roles: []domain.Role{domain.RoleAdmin}, Owner: true}
)

var table = map[key]Rule{
	{Event, List}:     public,
	{Event, Read}:     public,
	{Event, Create}:   adminOnly,
	{Event, Update}:   adminOnly,
	{Event, Delete}:   adminOnly,
	{Event, Upload}:   adminOnly,
	{Event, Register}: authenticated,

	{Announcement, List}:   authenticated,
	{Announcement, Create}: adminOnly,
	{Announcement, Update}: adminOnly,
	{Announcement, Delete}: adminOnly,

	{Inquiry, List}:    adminOnly,
	{Inquiry, Read}:    adminOrOwner,
	{Inquiry, ListOwn}: authenticated,
	{Inquiry, Create}:  authenticated,
	{Inquiry, Resolve}: adminOnly,

	{Dashboard, Read}: adminOnly,

	{User, ReadSelf}: authenticated,
	{User, Promote}:  adminOnly,
}

// Lookup returns the rule for (resource, action). Unknown pairs resolve to
// admin only.
func Lookup(resource Resource, action Action) Rule {
	if r, ok := table[key{resource, action}]; ok {
		return r
	}
	return adminOnly
}

func (r Rule) grants(role domain.Role) bool {
	if len(r.Roles) == 0 && !r.Owner {
		return true
	}
	for _, allowed := range r.Roles {
		if allowed == role {
			return true
		}
	}
	return false
}

// Authorize runs the role phase for actor. A nil actor fails with
// domain.ErrUnauthorized unless the rule is public.
func Authorize(actor *domain.User, resource Resource, action Action) error {
	rule := Lookup(resource, action)
	if rule.Public {
		return nil
	}
	if actor == nil {
		return domain.ErrUnauthorized
	}
	if rule.grants(actor.Role) || rule.Owner {
		return nil
	}
	return deny(resource, action)
}

// AuthorizeInstance runs the ownership phase against a loaded resource
// authored by ownerID.
func AuthorizeInstance(actor *domain.User, resource Resource, action Action, ownerID string) error {
	rule := Lookup(resource, action)
	if rule.Public {
		return nil
	}
	if actor == nil {
		return domain.ErrUnauthorized
	}
	if rule.grants(actor.Role) {
		return nil
	}
	if rule.Owner && ownerID != "" && actor.ID == ownerID {
		return nil
	}
	return deny(resource, action)
}

func deny(resource Resource, action Action) error {
	return fmt.Errorf("%s %s: %w", action, resource, domain.ErrForbidden)
}
