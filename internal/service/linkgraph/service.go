// Package linkgraph manages links between curated events and reference
// items (verses and notes).
package linkgraph

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/tarikh-backend/internal/domain"
	"github.com/heartmarshall/tarikh-backend/internal/observability"
	"github.com/heartmarshall/tarikh-backend/internal/service/access"
)

type linkRepo interface {
	Insert(ctx context.Context, l domain.ContentLink) (bool, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ContentLink, error)
	GetByTriple(ctx context.Context, eventID uuid.UUID, kind domain.ReferenceKind, linkedID uuid.UUID) (*domain.ContentLink, error)
	ListByEvent(ctx context.Context, eventID uuid.UUID) ([]domain.ContentLink, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type itemRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ModeratedItem, error)
}

type referenceRepo interface {
	Get(ctx context.Context, kind domain.ReferenceKind, id uuid.UUID) (*domain.ReferenceItem, error)
	Exists(ctx context.Context, kind domain.ReferenceKind, id uuid.UUID) (bool, error)
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service links events to reference items.
type Service struct {
	links      linkRepo
	items      itemRepo
	references referenceRepo
	audit      auditLogger
	tx         txManager
	metrics    *observability.Metrics
	now        func() time.Time
	log        *slog.Logger
}

// NewService creates a link graph service. metrics may be nil.
func NewService(
	logger *slog.Logger,
	links linkRepo,
	items itemRepo,
	references referenceRepo,
	audit auditLogger,
	tx txManager,
	metrics *observability.Metrics,
) *Service {
	return &Service{
		links:      links,
		items:      items,
		references: references,
		audit:      audit,
		tx:         tx,
		metrics:    metrics,
		now:        func() time.Time { return time.Now().UTC() },
		log:        logger.With("service", "linkgraph"),
	}
}

// LinkInput holds the parameters for linking an event to a reference item.
type LinkInput struct {
	EventID  uuid.UUID
	Kind     domain.ReferenceKind
	LinkedID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i LinkInput) Validate() error {
	var errs []domain.FieldError

	if i.EventID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "event_id", Message: "required"})
	}
	if !i.Kind.IsValid() {
		errs = append(errs, domain.FieldError{Field: "linked_kind", Message: "must be 'verse' or 'note'"})
	}
	if i.LinkedID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "linked_id", Message: "required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// Link connects an event to a reference item. Linking a pair that is already
// linked is not an error: the existing link is returned with Created=false.
func (s *Service) Link(ctx context.Context, p domain.Principal, input LinkInput) (*domain.LinkResult, error) {
	if err := access.Check(p, access.Moderator); err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var result domain.LinkResult
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		result = domain.LinkResult{}

		event, err := s.items.GetByID(txCtx, input.EventID)
		if err != nil {
			return fmt.Errorf("get event: %w", err)
		}
		if event.Kind != domain.ItemKindEvent {
			return domain.NewValidationError("event_id", "only events can be linked")
		}

		exists, err := s.references.Exists(txCtx, input.Kind, input.LinkedID)
		if err != nil {
			return fmt.Errorf("check reference: %w", err)
		}
		if !exists {
			return fmt.Errorf("%s %s: %w", input.Kind, input.LinkedID, domain.ErrNotFound)
		}

		link := domain.ContentLink{
			ID:         uuid.New(),
			EventID:    input.EventID,
			LinkedKind: input.Kind,
			LinkedID:   input.LinkedID,
			CreatedBy:  p.UserID,
			CreatedAt:  s.now(),
		}
		created, err := s.links.Insert(txCtx, link)
		if err != nil {
			return fmt.Errorf("insert link: %w", err)
		}

		stored, err := s.links.GetByTriple(txCtx, input.EventID, input.Kind, input.LinkedID)
		if err != nil {
			return fmt.Errorf("get link: %w", err)
		}
		result = domain.LinkResult{Link: stored, Created: created}
		if !created {
			return nil
		}

		if err := s.audit.Log(txCtx, domain.AuditRecord{
			ID:         uuid.New(),
			ActorID:    p.UserID,
			EntityType: domain.EntityTypeLink,
			EntityID:   stored.ID,
			Action:     domain.AuditActionCreate,
			CreatedAt:  s.now(),
			Changes: map[string]any{
				"event_id":    input.EventID.String(),
				"linked_kind": input.Kind.String(),
				"linked_id":   input.LinkedID.String(),
			},
		}); err != nil {
			return fmt.Errorf("audit log: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("linkgraph.Link: %w", err)
	}

	s.metrics.LinkRequested(result.Created)
	s.log.InfoContext(ctx, "link requested",
		slog.String("event_id", input.EventID.String()),
		slog.String("linked_kind", input.Kind.String()),
		slog.String("linked_id", input.LinkedID.String()),
		slog.Bool("created", result.Created),
	)

	return &result, nil
}

// Unlink deletes a link by id.
func (s *Service) Unlink(ctx context.Context, p domain.Principal, linkID uuid.UUID) error {
	if err := access.Check(p, access.Moderator); err != nil {
		return err
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		link, err := s.links.GetByID(txCtx, linkID)
		if err != nil {
			return fmt.Errorf("get link: %w", err)
		}
		if err := s.links.Delete(txCtx, linkID); err != nil {
			return fmt.Errorf("delete link: %w", err)
		}

		if err := s.audit.Log(txCtx, domain.AuditRecord{
			ID:         uuid.New(),
			ActorID:    p.UserID,
			EntityType: domain.EntityTypeLink,
			EntityID:   linkID,
			Action:     domain.AuditActionDelete,
			CreatedAt:  s.now(),
			Changes: map[string]any{
				"event_id":    link.EventID.String(),
				"linked_kind": link.LinkedKind.String(),
				"linked_id":   link.LinkedID.String(),
			},
		}); err != nil {
			return fmt.Errorf("audit log: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("linkgraph.Unlink: %w", err)
	}

	s.log.InfoContext(ctx, "link removed", slog.String("link_id", linkID.String()))
	return nil
}

// ListLinks returns the links of an event the principal may see.
func (s *Service) ListLinks(ctx context.Context, p domain.Principal, eventID uuid.UUID) ([]domain.ContentLink, error) {
	event, err := s.items.GetByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("linkgraph.ListLinks: %w", err)
	}
	if event.Kind != domain.ItemKindEvent || !access.CanView(p, event) {
		return nil, fmt.Errorf("linkgraph.ListLinks: event %s: %w", eventID, domain.ErrNotFound)
	}

	links, err := s.links.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("linkgraph.ListLinks: %w", err)
	}
	return links, nil
}

// Reference returns a reference item for display next to its links.
func (s *Service) Reference(ctx context.Context, kind domain.ReferenceKind, id uuid.UUID) (*domain.ReferenceItem, error) {
	if !kind.IsValid() {
		return nil, domain.NewValidationError("kind", "must be 'verse' or 'note'")
	}
	ref, err := s.references.Get(ctx, kind, id)
	if err != nil {
		return nil, fmt.Errorf("linkgraph.Reference: %w", err)
	}
	return ref, nil
}
