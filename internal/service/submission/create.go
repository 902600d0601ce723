package submission

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/heartmarshall/tarikh-backend/internal/domain"
	"github.com/heartmarshall/tarikh-backend/internal/service/access"
)

// CreateResult is the outcome of a submission. Award is set when the item was
// approved on creation.
type CreateResult struct {
	Item  *domain.ModeratedItem
	Award *domain.AwardOutcome
}

// Create submits a new item. Moderators' submissions are approved on the spot
// with themselves as approver, and the kind's points are awarded at once;
// everyone else's start pending.
func (s *Service) Create(ctx context.Context, p domain.Principal, input CreateInput) (*CreateResult, error) {
	if err := access.Check(p, access.Member); err != nil {
		return nil, err
	}

	input.Fields = normalize(input.Fields)
	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := s.now()
	autoApprove := access.Moderator.Allows(p)

	item := &domain.ModeratedItem{
		ID:          uuid.New(),
		Kind:        input.Kind,
		Fields:      input.Fields,
		Status:      domain.ItemStatusPending,
		SubmitterID: p.UserID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if autoApprove {
		approver := p.UserID
		item.Status = domain.ItemStatusApproved
		item.ApproverID = &approver
		item.ApprovedAt = &now
	}

	var result CreateResult
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		created, err := s.items.Create(txCtx, item)
		if err != nil {
			return fmt.Errorf("create item: %w", err)
		}

		if err := s.audit.Log(txCtx, domain.AuditRecord{
			ID:         uuid.New(),
			ActorID:    p.UserID,
			EntityType: domain.EntityTypeItem,
			EntityID:   created.ID,
			Action:     domain.AuditActionCreate,
			CreatedAt:  s.now(),
			Changes: map[string]any{
				"kind":   created.Kind.String(),
				"status": created.Status.String(),
				"title":  created.Fields.Title,
			},
		}); err != nil {
			return fmt.Errorf("audit log: %w", err)
		}

		result = CreateResult{Item: created}
		if !autoApprove {
			return nil
		}

		award, err := s.ledger.Award(txCtx, p.UserID, s.points.For(created.Kind), domain.AwardReasonItemApproved, created.ID)
		if err != nil {
			return fmt.Errorf("award points: %w", err)
		}
		result.Award = award
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("submission.Create: %w", err)
	}

	if autoApprove {
		s.metrics.Transition(result.Item.Kind.String(), "auto_approved")
		s.ledger.Publish(ctx, domain.AwardReasonItemApproved, result.Award)
	}

	s.log.InfoContext(ctx, "item submitted",
		slog.String("item_id", result.Item.ID.String()),
		slog.String("kind", result.Item.Kind.String()),
		slog.String("status", result.Item.Status.String()),
		slog.String("submitter_id", p.UserID.String()),
	)

	return &result, nil
}
