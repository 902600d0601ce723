package rest

import (
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/tarikh-backend/internal/domain"
)

type listResponse[T any] struct {
	Items []T `json:"items"`
	Total *int `json:"total,omitempty"`
}

func newList[T, D any](items []D, conv func(*D) T) []T {
	out := make([]T, 0, len(items))
	for i := range items {
		out = append(out, conv(&items[i]))
	}
	return out
}

type userResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	Points    int64     `json:"points"`
	CreatedAt time.Time `json:"createdAt"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:        u.ID.String(),
		Email:     u.Email,
		Username:  u.Username,
		Role:      u.Role.String(),
		Points:    u.Points,
		CreatedAt: u.CreatedAt,
	}
}

type itemFieldsBody struct {
	Title       string   `json:"title"`
	TitleAlt    string   `json:"titleAlt,omitempty"`
	Body        string   `json:"body"`
	BodyAlt     string   `json:"bodyAlt,omitempty"`
	EventDate   string   `json:"eventDate,omitempty"`
	Category    string   `json:"category,omitempty"`
	Latitude    *float64 `json:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty"`
	Attribution string   `json:"attribution,omitempty"`
}

type itemResponse struct {
	ID          string     `json:"id"`
	Kind        string     `json:"kind"`
	Status      string     `json:"status"`
	SubmitterID string     `json:"submitterId"`
	ApproverID  *string    `json:"approverId,omitempty"`
	ApprovedAt  *time.Time `json:"approvedAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
	itemFieldsBody
}

func toItemResponse(i *domain.ModeratedItem) itemResponse {
	return itemResponse{
		ID:          i.ID.String(),
		Kind:        i.Kind.String(),
		Status:      i.Status.String(),
		SubmitterID: i.SubmitterID.String(),
		ApproverID:  uuidString(i.ApproverID),
		ApprovedAt:  i.ApprovedAt,
		CreatedAt:   i.CreatedAt,
		UpdatedAt:   i.UpdatedAt,
		itemFieldsBody: itemFieldsBody{
			Title:       i.Fields.Title,
			TitleAlt:    i.Fields.TitleAlt,
			Body:        i.Fields.Body,
			BodyAlt:     i.Fields.BodyAlt,
			EventDate:   i.Fields.EventDate,
			Category:    i.Fields.Category.String(),
			Latitude:    i.Fields.Latitude,
			Longitude:   i.Fields.Longitude,
			Attribution: i.Fields.Attribution,
		},
	}
}

type badgeResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Description    string `json:"description"`
	PointsRequired int64  `json:"pointsRequired"`
}

func toBadgeResponse(b *domain.Badge) badgeResponse {
	return badgeResponse{
		ID:             b.ID.String(),
		Name:           b.Name,
		Description:    b.Description,
		PointsRequired: b.PointsRequired,
	}
}

type userBadgeResponse struct {
	badgeResponse
	AwardedAt time.Time `json:"awardedAt"`
}

func toUserBadgeResponse(ub *domain.UserBadge) userBadgeResponse {
	return userBadgeResponse{badgeResponse: toBadgeResponse(&ub.Badge), AwardedAt: ub.AwardedAt}
}

// awardResponse is nil when no points were granted.
type awardResponse struct {
	UserID    string          `json:"userId"`
	Delta     int64           `json:"delta"`
	Total     int64           `json:"total"`
	NewBadges []badgeResponse `json:"newBadges"`
}

func toAwardResponse(o *domain.AwardOutcome) *awardResponse {
	if o == nil || !o.Applied {
		return nil
	}
	return &awardResponse{
		UserID:    o.UserID.String(),
		Delta:     o.Delta,
		Total:     o.Total,
		NewBadges: newList(o.NewBadges, toBadgeResponse),
	}
}

type pointAwardResponse struct {
	ID        string    `json:"id"`
	Delta     int64     `json:"delta"`
	Reason    string    `json:"reason"`
	SubjectID string    `json:"subjectId"`
	CreatedAt time.Time `json:"createdAt"`
}

func toPointAwardResponse(a *domain.PointAward) pointAwardResponse {
	return pointAwardResponse{
		ID:        a.ID.String(),
		Delta:     a.Delta,
		Reason:    a.Reason.String(),
		SubjectID: a.SubjectID.String(),
		CreatedAt: a.CreatedAt,
	}
}

type leaderboardEntryResponse struct {
	Rank     int    `json:"rank"`
	UserID   string `json:"userId"`
	Username string `json:"username"`
	Points   int64  `json:"points"`
}

type auditRecordResponse struct {
	ID        string         `json:"id"`
	ActorID   string         `json:"actorId"`
	Action    string         `json:"action"`
	Changes   map[string]any `json:"changes,omitempty"`
	CreatedAt time.Time      `json:"createdAt"`
}

func toAuditRecordResponse(a *domain.AuditRecord) auditRecordResponse {
	return auditRecordResponse{
		ID:        a.ID.String(),
		ActorID:   a.ActorID.String(),
		Action:    a.Action.String(),
		Changes:   a.Changes,
		CreatedAt: a.CreatedAt,
	}
}

type linkResponse struct {
	ID         string    `json:"id"`
	EventID    string    `json:"eventId"`
	LinkedKind string    `json:"linkedKind"`
	LinkedID   string    `json:"linkedId"`
	CreatedBy  string    `json:"createdBy"`
	CreatedAt  time.Time `json:"createdAt"`
}

func toLinkResponse(l *domain.ContentLink) linkResponse {
	return linkResponse{
		ID:         l.ID.String(),
		EventID:    l.EventID.String(),
		LinkedKind: l.LinkedKind.String(),
		LinkedID:   l.LinkedID.String(),
		CreatedBy:  l.CreatedBy.String(),
		CreatedAt:  l.CreatedAt,
	}
}

type referenceResponse struct {
	ID      string `json:"id"`
	Kind    string `json:"kind"`
	RefKey  string `json:"refKey"`
	Text    string `json:"text"`
	TextAlt string `json:"textAlt,omitempty"`
}

func toReferenceResponse(r *domain.ReferenceItem) referenceResponse {
	return referenceResponse{
		ID:      r.ID.String(),
		Kind:    r.Kind.String(),
		RefKey:  r.RefKey,
		Text:    r.Text,
		TextAlt: r.TextAlt,
	}
}

type bookmarkResponse struct {
	ID        string    `json:"id"`
	Kind      string    `json:"kind"`
	ItemID    string    `json:"itemId"`
	CreatedAt time.Time `json:"createdAt"`
}

func toBookmarkResponse(b *domain.Bookmark) bookmarkResponse {
	return bookmarkResponse{
		ID:        b.ID.String(),
		Kind:      b.Kind.String(),
		ItemID:    b.ItemID.String(),
		CreatedAt: b.CreatedAt,
	}
}

func uuidString(id *uuid.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}
