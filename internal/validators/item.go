package validators

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-bootstrap/models"
)

// Field names accepted by [ItemValidator].
const (
	FieldName        = "name"
	FieldDescription = "description"
)

const (
	maxNameLength        = 200
	maxDescriptionLength = 2000
)

// ItemValidator validates item creation requests.
type ItemValidator struct{}

func NewItemValidator() Validator {
	return &ItemValidator{}
}

// Validate accepts models.CreateItemRequest by value or pointer.
func (v *ItemValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.CreateItemRequest:
		return v.validateCreateItemRequest(ctx, value, fields...)
	case *models.CreateItemRequest:
		return v.validateCreateItemRequest(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *ItemValidator) validateCreateItemRequest(_ context.Context, req models.CreateItemRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldDescription}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			name := strings.TrimSpace(req.Name)
			if name == "" {
				return ErrEmptyName
			}
			if utf8.RuneCountInString(name) > maxNameLength {
				return ErrNameTooLong
			}
		case FieldDescription:
			if utf8.RuneCountInString(req.Description) > maxDescriptionLength {
				return ErrDescriptionTooLong
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
