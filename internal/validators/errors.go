package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrMissingTemplateURL = errors.New("missing query parameter: template")
	ErrMissingNodesURL    = errors.New("missing query parameter: nodes")
	ErrInvalidTemplateURL = errors.New("invalid template URL")
	ErrInvalidNodesURL    = errors.New("invalid nodes URL")
)

// IsValidationError reports whether err was produced by a validator in this
// package.
func IsValidationError(err error) bool {
	for _, target := range []error{
		ErrUnsupportedType,
		ErrUnknownField,
		ErrMissingTemplateURL,
		ErrMissingNodesURL,
		ErrInvalidTemplateURL,
		ErrInvalidNodesURL,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
