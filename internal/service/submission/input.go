package submission

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/heartmarshall/tarikh-backend/internal/domain"
)

var eventDatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

const (
	maxTitleLength       = 300
	maxBodyLength        = 20000
	maxAttributionLength = 300
)

// CreateInput holds the parameters for submitting an item.
type CreateInput struct {
	Kind   domain.ItemKind
	Fields domain.ItemFields
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	if !i.Kind.IsValid() {
		return domain.NewValidationError("kind", "must be 'event' or 'saying'")
	}
	if errs := validateFields(i.Kind, i.Fields); len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// EditInput holds a partial update of an item's content. Nil fields are
// left unchanged. ClearLocation removes an event's coordinates and cannot be
// combined with Latitude or Longitude.
type EditInput struct {
	ItemID      uuid.UUID
	Title       *string
	TitleAlt    *string
	Body        *string
	BodyAlt     *string
	EventDate   *string
	Category    *domain.EventCategory
	Latitude    *float64
	Longitude   *float64
	Attribution *string

	ClearLocation bool
}

// Validate checks the shape of the input. Field rules are checked against
// the merged result in Edit, since they depend on the item's kind.
func (i EditInput) Validate() error {
	var errs []domain.FieldError

	if i.ItemID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "item_id", Message: "required"})
	}
	if i.empty() {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.ClearLocation && (i.Latitude != nil || i.Longitude != nil) {
		errs = append(errs, domain.FieldError{Field: "clear_location", Message: "cannot be combined with latitude or longitude"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func (i EditInput) empty() bool {
	return i.Title == nil && i.TitleAlt == nil && i.Body == nil && i.BodyAlt == nil &&
		i.EventDate == nil && i.Category == nil && i.Latitude == nil && i.Longitude == nil &&
		i.Attribution == nil && !i.ClearLocation
}

// apply returns f with the provided fields replaced.
func (i EditInput) apply(f domain.ItemFields) domain.ItemFields {
	if i.Title != nil {
		f.Title = *i.Title
	}
	if i.TitleAlt != nil {
		f.TitleAlt = *i.TitleAlt
	}
	if i.Body != nil {
		f.Body = *i.Body
	}
	if i.BodyAlt != nil {
		f.BodyAlt = *i.BodyAlt
	}
	if i.EventDate != nil {
		f.EventDate = *i.EventDate
	}
	if i.Category != nil {
		f.Category = *i.Category
	}
	if i.Latitude != nil {
		f.Latitude = i.Latitude
	}
	if i.Longitude != nil {
		f.Longitude = i.Longitude
	}
	if i.ClearLocation {
		f.Latitude, f.Longitude = nil, nil
	}
	if i.Attribution != nil {
		f.Attribution = *i.Attribution
	}
	return normalize(f)
}

// ListInput narrows an item listing.
type ListInput struct {
	Kind        *domain.ItemKind
	Status      *domain.ItemStatus
	SubmitterID *uuid.UUID
	Limit       int
	Offset      int
}

// Validate checks all fields and collects all errors.
func (i ListInput) Validate() error {
	var errs []domain.FieldError

	if i.Kind != nil && !i.Kind.IsValid() {
		errs = append(errs, domain.FieldError{Field: "kind", Message: "must be 'event' or 'saying'"})
	}
	if i.Status != nil && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "must be 'pending', 'approved' or 'rejected'"})
	}
	if i.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be >= 0"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be >= 0"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func normalize(f domain.ItemFields) domain.ItemFields {
	f.Title = strings.TrimSpace(f.Title)
	f.TitleAlt = strings.TrimSpace(f.TitleAlt)
	f.EventDate = strings.TrimSpace(f.EventDate)
	f.Attribution = strings.TrimSpace(f.Attribution)
	return f
}

func validateFields(kind domain.ItemKind, f domain.ItemFields) []domain.FieldError {
	var errs []domain.FieldError

	if f.Title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if utf8.RuneCountInString(f.Title) > maxTitleLength {
		errs = append(errs, domain.FieldError{Field: "title", Message: "max 300 characters"})
	}
	if utf8.RuneCountInString(f.TitleAlt) > maxTitleLength {
		errs = append(errs, domain.FieldError{Field: "title_alt", Message: "max 300 characters"})
	}
	if utf8.RuneCountInString(f.Body) > maxBodyLength {
		errs = append(errs, domain.FieldError{Field: "body", Message: "max 20000 characters"})
	}
	if utf8.RuneCountInString(f.BodyAlt) > maxBodyLength {
		errs = append(errs, domain.FieldError{Field: "body_alt", Message: "max 20000 characters"})
	}

	switch kind {
	case domain.ItemKindEvent:
		errs = append(errs, validateEvent(f)...)
	case domain.ItemKindSaying:
		errs = append(errs, validateSaying(f)...)
	}

	return errs
}

func validateEvent(f domain.ItemFields) []domain.FieldError {
	var errs []domain.FieldError

	if f.EventDate == "" {
		errs = append(errs, domain.FieldError{Field: "event_date", Message: "required"})
	} else if !eventDatePattern.MatchString(f.EventDate) {
		errs = append(errs, domain.FieldError{Field: "event_date", Message: "must match YYYY-MM-DD"})
	}

	if f.Category == "" {
		errs = append(errs, domain.FieldError{Field: "category", Message: "required"})
	} else if !f.Category.IsValid() {
		errs = append(errs, domain.FieldError{Field: "category", Message: "must be 'islamic' or 'general'"})
	}

	if (f.Latitude == nil) != (f.Longitude == nil) {
		errs = append(errs, domain.FieldError{Field: "location", Message: "latitude and longitude must be given together"})
	}
	if f.Latitude != nil && (*f.Latitude < -90 || *f.Latitude > 90) {
		errs = append(errs, domain.FieldError{Field: "latitude", Message: "must be between -90 and 90"})
	}
	if f.Longitude != nil && (*f.Longitude < -180 || *f.Longitude > 180) {
		errs = append(errs, domain.FieldError{Field: "longitude", Message: "must be between -180 and 180"})
	}

	if f.Attribution != "" {
		errs = append(errs, domain.FieldError{Field: "attribution", Message: "not allowed for events"})
	}

	return errs
}

func validateSaying(f domain.ItemFields) []domain.FieldError {
	var errs []domain.FieldError

	if f.EventDate != "" {
		errs = append(errs, domain.FieldError{Field: "event_date", Message: "not allowed for sayings"})
	}
	if f.Category != "" {
		errs = append(errs, domain.FieldError{Field: "category", Message: "not allowed for sayings"})
	}
	if f.Latitude != nil || f.Longitude != nil {
		errs = append(errs, domain.FieldError{Field: "location", Message: "not allowed for sayings"})
	}
	if utf8.RuneCountInString(f.Attribution) > maxAttributionLength {
		errs = append(errs, domain.FieldError{Field: "attribution", Message: "max 300 characters"})
	}

	return errs
}
