package submission

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/heartmarshall/tarikh-backend/internal/domain"
	"github.com/heartmarshall/tarikh-backend/internal/service/access"
)

// Approve moves a pending item to approved and awards its submitter the
// kind's points. If the item already left pending, for example because
// another moderator got there first, nothing is written and the result
// reports Transitioned=false. A submitter whose account was deleted gets no
// points, but the item is still approved.
func (s *Service) Approve(ctx context.Context, p domain.Principal, itemID uuid.UUID) (*domain.TransitionResult, error) {
	return s.transition(ctx, p, itemID, domain.ItemStatusApproved)
}

// Reject moves a pending item to rejected. The item is kept. No points are
// awarded. A non-pending item is left unchanged as in Approve.
func (s *Service) Reject(ctx context.Context, p domain.Principal, itemID uuid.UUID) (*domain.TransitionResult, error) {
	return s.transition(ctx, p, itemID, domain.ItemStatusRejected)
}

func (s *Service) transition(ctx context.Context, p domain.Principal, itemID uuid.UUID, to domain.ItemStatus) (*domain.TransitionResult, error) {
	op := "submission.Approve"
	action := domain.AuditActionApprove
	if to == domain.ItemStatusRejected {
		op = "submission.Reject"
		action = domain.AuditActionReject
	}

	if err := access.Check(p, access.Moderator); err != nil {
		return nil, err
	}

	var result domain.TransitionResult
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		result = domain.TransitionResult{}

		item, ok, err := s.items.Transition(txCtx, itemID, to, p.UserID, s.now())
		if err != nil {
			return fmt.Errorf("transition item: %w", err)
		}
		if !ok {
			current, err := s.items.GetByID(txCtx, itemID)
			if err != nil {
				return fmt.Errorf("get item: %w", err)
			}
			result.Item = current
			return nil
		}

		result.Item = item
		result.Transitioned = true

		if err := s.audit.Log(txCtx, domain.AuditRecord{
			ID:         uuid.New(),
			ActorID:    p.UserID,
			EntityType: domain.EntityTypeItem,
			EntityID:   item.ID,
			Action:     action,
			CreatedAt:  s.now(),
			Changes: map[string]any{
				"status": map[string]any{"old": domain.ItemStatusPending.String(), "new": to.String()},
			},
		}); err != nil {
			return fmt.Errorf("audit log: %w", err)
		}

		if to != domain.ItemStatusApproved {
			return nil
		}

		award, err := s.ledger.Award(txCtx, item.SubmitterID, s.points.For(item.Kind), domain.AwardReasonItemApproved, item.ID)
		if err != nil {
			return fmt.Errorf("award points: %w", err)
		}
		result.Award = award
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if !result.Transitioned {
		s.metrics.Transition(result.Item.Kind.String(), "noop")
		s.log.InfoContext(ctx, "item already moderated",
			slog.String("item_id", itemID.String()),
			slog.String("status", result.Item.Status.String()),
			slog.String("moderator_id", p.UserID.String()),
		)
		return &result, nil
	}

	s.metrics.Transition(result.Item.Kind.String(), to.String())
	s.ledger.Publish(ctx, domain.AwardReasonItemApproved, result.Award)

	s.log.InfoContext(ctx, "item moderated",
		slog.String("item_id", itemID.String()),
		slog.String("status", to.String()),
		slog.String("moderator_id", p.UserID.String()),
	)

	return &result, nil
}
