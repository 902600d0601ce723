package domain

import "github.com/google/uuid"

// Role is the authorization level of a principal. Roles are totally ordered:
// public < user < ulama < admin.
type Role string

const (
	RolePublic Role = "public"
	RoleUser   Role = "user"
	RoleUlama  Role = "ulama"
	RoleAdmin  Role = "admin"
)

func (r Role) String() string { return string(r) }

func (r Role) IsValid() bool {
	switch r {
	case RolePublic, RoleUser, RoleUlama, RoleAdmin:
		return true
	}
	return false
}

// Rank returns the ordinal of the role. Unknown roles rank below public.
func (r Role) Rank() int {
	switch r {
	case RolePublic:
		return 0
	case RoleUser:
		return 1
	case RoleUlama:
		return 2
	case RoleAdmin:
		return 3
	}
	return -1
}

// AtLeast reports whether r is ordinally greater than or equal to min.
func (r Role) AtLeast(min Role) bool {
	return r.IsValid() && r.Rank() >= min.Rank()
}

// OneOf reports whether r is a member of roles. Membership is not ordinal:
// OneOf(RoleUlama) is false for RoleAdmin.
func (r Role) OneOf(roles ...Role) bool {
	for _, candidate := range roles {
		if r == candidate {
			return true
		}
	}
	return false
}

// IsModerator reports whether the role may moderate content (ulama or admin).
func (r Role) IsModerator() bool {
	return r.OneOf(RoleUlama, RoleAdmin)
}

// Principal is the caller on whose behalf an operation runs. It is passed
// explicitly to every operation; the zero value is the anonymous caller.
type Principal struct {
	UserID uuid.UUID
	Role   Role
}

// Anonymous returns the unauthenticated principal.
func Anonymous() Principal {
	return Principal{Role: RolePublic}
}

// IsAnonymous reports whether the principal carries no identity.
func (p Principal) IsAnonymous() bool {
	return p.UserID == uuid.Nil
}

// EffectiveRole returns the role used for permission checks. Anonymous
// callers and callers with an unknown role are treated as public.
func (p Principal) EffectiveRole() Role {
	if p.IsAnonymous() || !p.Role.IsValid() {
		return RolePublic
	}
	return p.Role
}

// Is reports whether the principal is the given user.
func (p Principal) Is(userID uuid.UUID) bool {
	return !p.IsAnonymous() && p.UserID == userID
}
