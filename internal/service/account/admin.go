package account

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/heartmarshall/tarikh-backend/internal/domain"
	"github.com/heartmarshall/tarikh-backend/internal/service/access"
)

// SystemActor is the audit actor for operator commands run outside any
// principal.
var SystemActor = uuid.Nil

// ListUsers returns a page of accounts (admin only).
func (s *Service) ListUsers(ctx context.Context, p domain.Principal, limit, offset int) ([]domain.User, int, error) {
	if err := access.Check(p, access.Administrator); err != nil {
		return nil, 0, err
	}

	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	if offset < 0 {
		offset = 0
	}

	users, total, err := s.users.List(ctx, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("account.ListUsers: %w", err)
	}
	return users, total, nil
}

// ChangeRole sets target's role (admin only). Demoting the last admin fails
// with an invariant violation. The admin rows stay locked until commit, so
// two admins demoting each other at once cannot both succeed.
func (s *Service) ChangeRole(ctx context.Context, p domain.Principal, targetID uuid.UUID, role domain.Role) (*domain.User, error) {
	if err := access.Check(p, access.Administrator); err != nil {
		return nil, err
	}
	if !role.IsValid() {
		return nil, domain.NewValidationError("role", "must be one of public, user, ulama, admin")
	}

	var (
		updated *domain.User
		oldRole domain.Role
	)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		admins, err := s.lockAdmins(txCtx, p)
		if err != nil {
			return err
		}

		target, err := s.users.GetByID(txCtx, targetID)
		if err != nil {
			return fmt.Errorf("get user: %w", err)
		}
		updated, oldRole, err = s.setRole(txCtx, p.UserID, target, role, admins)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("account.ChangeRole: %w", err)
	}

	if oldRole != role {
		s.log.InfoContext(ctx, "user role changed",
			slog.String("target_user_id", targetID.String()),
			slog.String("old_role", oldRole.String()),
			slog.String("new_role", role.String()),
			slog.String("actor_id", p.UserID.String()),
		)
	}
	return updated, nil
}

// AssignRole sets the role of the account with the given email. It is the
// operator path used to bootstrap the first admin and skips the caller
// check, but still refuses to remove the last admin.
func (s *Service) AssignRole(ctx context.Context, email string, role domain.Role) (*domain.User, error) {
	if !role.IsValid() {
		return nil, domain.NewValidationError("role", "must be one of public, user, ulama, admin")
	}
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, domain.NewValidationError("email", "required")
	}

	var updated *domain.User
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		admins, err := s.users.LockAdmins(txCtx)
		if err != nil {
			return fmt.Errorf("lock admins: %w", err)
		}

		target, err := s.users.GetByEmail(txCtx, email)
		if err != nil {
			return fmt.Errorf("get user: %w", err)
		}
		updated, _, err = s.setRole(txCtx, SystemActor, target, role, admins)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("account.AssignRole: %w", err)
	}

	s.log.InfoContext(ctx, "role assigned by operator",
		slog.String("user_id", updated.ID.String()),
		slog.String("role", role.String()),
	)
	return updated, nil
}

// setRole applies the last-admin guard, updates the role and writes the audit
// row. It must run inside the transaction holding the admin lock.
func (s *Service) setRole(ctx context.Context, actorID uuid.UUID, target *domain.User, role domain.Role, admins []uuid.UUID) (*domain.User, domain.Role, error) {
	oldRole := target.Role
	if oldRole == role {
		return target, oldRole, nil
	}

	if oldRole == domain.RoleAdmin && len(admins) < 2 {
		return nil, oldRole, domain.NewInvariantError("last_admin", "cannot demote the only admin")
	}

	updated, err := s.users.UpdateRole(ctx, target.ID, role)
	if err != nil {
		return nil, oldRole, fmt.Errorf("update role: %w", err)
	}

	if err := s.audit.Log(ctx, domain.AuditRecord{
		ID:         uuid.New(),
		ActorID:    actorID,
		EntityType: domain.EntityTypeUser,
		EntityID:   target.ID,
		Action:     domain.AuditActionRoleChange,
		CreatedAt:  s.now(),
		Changes: map[string]any{
			"role": map[string]any{"old": oldRole.String(), "new": role.String()},
		},
	}); err != nil {
		return nil, oldRole, fmt.Errorf("audit log: %w", err)
	}

	return updated, oldRole, nil
}

// DeleteAccount removes target's account with its badges and bookmarks
// (admin only). Items the account submitted are kept. An admin can never
// delete their own account.
func (s *Service) DeleteAccount(ctx context.Context, p domain.Principal, targetID uuid.UUID) error {
	if err := access.Check(p, access.Administrator); err != nil {
		return err
	}
	if targetID == p.UserID {
		return domain.NewInvariantError("self_delete", "an account cannot delete itself")
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.lockAdmins(txCtx, p); err != nil {
			return err
		}

		target, err := s.users.GetByID(txCtx, targetID)
		if err != nil {
			return fmt.Errorf("get user: %w", err)
		}

		if _, err := s.bookmarks.DeleteByUser(txCtx, target.ID); err != nil {
			return fmt.Errorf("delete bookmarks: %w", err)
		}
		if _, err := s.badges.DeleteForUser(txCtx, target.ID); err != nil {
			return fmt.Errorf("delete badges: %w", err)
		}
		if err := s.users.Delete(txCtx, target.ID); err != nil {
			return fmt.Errorf("delete user: %w", err)
		}

		if err := s.audit.Log(txCtx, domain.AuditRecord{
			ID:         uuid.New(),
			ActorID:    p.UserID,
			EntityType: domain.EntityTypeUser,
			EntityID:   target.ID,
			Action:     domain.AuditActionDelete,
			CreatedAt:  s.now(),
			Changes: map[string]any{
				"username": target.Username,
				"role":     target.Role.String(),
				"points":   target.Points,
			},
		}); err != nil {
			return fmt.Errorf("audit log: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("account.DeleteAccount: %w", err)
	}

	if s.rankings != nil {
		s.rankings.Forget(ctx, targetID)
	}

	s.log.InfoContext(ctx, "account deleted",
		slog.String("target_user_id", targetID.String()),
		slog.String("actor_id", p.UserID.String()),
	)
	return nil
}

// lockAdmins locks the admin rows and confirms the caller still holds the
// admin role in the store, not just in its token.
func (s *Service) lockAdmins(ctx context.Context, p domain.Principal) ([]uuid.UUID, error) {
	admins, err := s.users.LockAdmins(ctx)
	if err != nil {
		return nil, fmt.Errorf("lock admins: %w", err)
	}
	if !slices.Contains(admins, p.UserID) {
		return nil, fmt.Errorf("caller is no longer an admin: %w", domain.ErrForbidden)
	}
	return admins, nil
}
