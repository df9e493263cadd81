package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyName          = errors.New("name is required")
	ErrNameTooLong        = errors.New("name is too long")
	ErrDescriptionTooLong = errors.New("description is too long")
)
