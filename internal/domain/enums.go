package domain

// ItemKind identifies a moderated content kind.
type ItemKind string

const (
	ItemKindEvent  ItemKind = "event"
	ItemKindSaying ItemKind = "saying"
)

func (k ItemKind) String() string { return string(k) }

func (k ItemKind) IsValid() bool {
	switch k {
	case ItemKindEvent, ItemKindSaying:
		return true
	}
	return false
}

// Content returns the kind as a ContentKind.
func (k ItemKind) Content() ContentKind { return ContentKind(k) }

// ReferenceKind identifies a static reference corpus.
type ReferenceKind string

const (
	ReferenceKindVerse ReferenceKind = "verse"
	ReferenceKindNote  ReferenceKind = "note"
)

func (k ReferenceKind) String() string { return string(k) }

func (k ReferenceKind) IsValid() bool {
	switch k {
	case ReferenceKindVerse, ReferenceKindNote:
		return true
	}
	return false
}

// Content returns the kind as a ContentKind.
func (k ReferenceKind) Content() ContentKind { return ContentKind(k) }

// ContentKind is the closed union of every kind a bookmark may point at.
type ContentKind string

const (
	ContentKindEvent  = ContentKind(ItemKindEvent)
	ContentKindSaying = ContentKind(ItemKindSaying)
	ContentKindVerse  = ContentKind(ReferenceKindVerse)
	ContentKindNote   = ContentKind(ReferenceKindNote)
)

func (k ContentKind) String() string { return string(k) }

func (k ContentKind) IsValid() bool {
	_, isItem := k.Item()
	_, isRef := k.Reference()
	return isItem || isRef
}

// Item returns the moderated kind, if k names one.
func (k ContentKind) Item() (ItemKind, bool) {
	ik := ItemKind(k)
	return ik, ik.IsValid()
}

// Reference returns the reference kind, if k names one.
func (k ContentKind) Reference() (ReferenceKind, bool) {
	rk := ReferenceKind(k)
	return rk, rk.IsValid()
}

// ItemStatus is the moderation state of an item.
type ItemStatus string

const (
	ItemStatusPending  ItemStatus = "pending"
	ItemStatusApproved ItemStatus = "approved"
	ItemStatusRejected ItemStatus = "rejected"
)

func (s ItemStatus) String() string { return string(s) }

func (s ItemStatus) IsValid() bool {
	switch s {
	case ItemStatusPending, ItemStatusApproved, ItemStatusRejected:
		return true
	}
	return false
}

// EventCategory classifies an event.
type EventCategory string

const (
	EventCategoryIslamic EventCategory = "islamic"
	EventCategoryGeneral EventCategory = "general"
)

func (c EventCategory) String() string { return string(c) }

func (c EventCategory) IsValid() bool {
	switch c {
	case EventCategoryIslamic, EventCategoryGeneral:
		return true
	}
	return false
}

// AwardReason explains why points were granted.
type AwardReason string

const (
	AwardReasonItemApproved      AwardReason = "item_approved"
	AwardReasonBookmarkMilestone AwardReason = "bookmark_milestone"
)

func (r AwardReason) String() string { return string(r) }

// EntityType identifies the kind of domain entity (used in audit logs).
type EntityType string

const (
	EntityTypeItem EntityType = "ITEM"
	EntityTypeLink EntityType = "LINK"
	EntityTypeUser EntityType = "USER"
)

func (e EntityType) String() string { return string(e) }

// AuditAction represents the kind of mutation recorded in the audit log.
type AuditAction string

const (
	AuditActionCreate     AuditAction = "CREATE"
	AuditActionUpdate     AuditAction = "UPDATE"
	AuditActionDelete     AuditAction = "DELETE"
	AuditActionApprove    AuditAction = "APPROVE"
	AuditActionReject     AuditAction = "REJECT"
	AuditActionRoleChange AuditAction = "ROLE_CHANGE"
)

func (a AuditAction) String() string { return string(a) }
