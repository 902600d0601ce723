// Package access decides whether a principal may perform an operation.
//
// Every check is a pure function of the principal and, where relevant, the
// target item. Services call these before touching storage.
package access

import (
	"strings"

	"github.com/heartmarshall/tarikh-backend/internal/domain"
)

// Requirement describes the roles an operation accepts.
type Requirement struct {
	min   domain.Role
	roles []domain.Role
}

// AtLeast accepts any role ordinally at or above min.
func AtLeast(min domain.Role) Requirement {
	return Requirement{min: min}
}

// OneOf accepts exactly the listed roles.
func OneOf(roles ...domain.Role) Requirement {
	return Requirement{roles: roles}
}

var (
	// Member is any signed-in principal.
	Member = AtLeast(domain.RoleUser)
	// Moderator may approve, reject, link and delete any item.
	Moderator = OneOf(domain.RoleUlama, domain.RoleAdmin)
	// Administrator manages accounts and roles.
	Administrator = OneOf(domain.RoleAdmin)
)

// Allows reports whether the principal satisfies the requirement.
// Anonymous principals are evaluated as public.
func (r Requirement) Allows(p domain.Principal) bool {
	role := p.EffectiveRole()
	if len(r.roles) > 0 {
		return role.OneOf(r.roles...)
	}
	return role.AtLeast(r.min)
}

func (r Requirement) String() string {
	if len(r.roles) > 0 {
		names := make([]string, len(r.roles))
		for i, role := range r.roles {
			names[i] = role.String()
		}
		return "one of [" + strings.Join(names, ", ") + "]"
	}
	return "at least " + r.min.String()
}

// Check returns a *domain.PermissionError when p does not satisfy r.
func Check(p domain.Principal, r Requirement) error {
	if r.Allows(p) {
		return nil
	}
	return &domain.PermissionError{Role: p.EffectiveRole(), Required: r.String()}
}

// CanView applies the item visibility rule.
func CanView(p domain.Principal, item *domain.ModeratedItem) bool {
	return item.VisibleTo(p)
}

// CanEdit allows the submitter or anyone at ulama rank or above.
func CanEdit(p domain.Principal, item *domain.ModeratedItem) error {
	if p.Is(item.SubmitterID) {
		return nil
	}
	return Check(p, AtLeast(domain.RoleUlama))
}

// CanDelete allows moderators, and the submitter while the item is pending.
func CanDelete(p domain.Principal, item *domain.ModeratedItem) error {
	if Moderator.Allows(p) {
		return nil
	}
	if p.Is(item.SubmitterID) && item.IsPending() {
		return nil
	}
	return Check(p, Moderator)
}
