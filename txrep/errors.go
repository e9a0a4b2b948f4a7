package txrep

import "fmt"

// MissingFieldError reports a required key absent from the input.
type MissingFieldError struct {
	Key string
}

func (e MissingFieldError) Error() string {
	return fmt.Sprintf("missing value for key %q", e.Key)
}

// InvalidValueError reports a value that cannot be parsed as the type its
// key requires, or a contradiction between a _present flag and the keys it
// guards.
type InvalidValueError struct {
	Key   string
	Value string
}

func (e InvalidValueError) Error() string {
	return fmt.Sprintf("invalid value %q for key %q", e.Value, e.Key)
}

// BoundsExceededError reports a declared length or size outside its
// structural bound.
type BoundsExceededError struct {
	Key    string
	Limit  int64
	Actual int64
}

func (e BoundsExceededError) Error() string {
	return fmt.Sprintf("value %d for key %q exceeds limit %d", e.Actual, e.Key, e.Limit)
}

// UnsupportedVariantError reports an unknown union discriminant name.
type UnsupportedVariantError struct {
	Key     string
	Variant string
}

func (e UnsupportedVariantError) Error() string {
	return fmt.Sprintf("unsupported variant %q for key %q", e.Variant, e.Key)
}

// InvalidAddressError reports a strkey value that fails to decode or whose
// leading character does not match the kind the field requires.
type InvalidAddressError struct {
	Value string
}

func (e InvalidAddressError) Error() string {
	return fmt.Sprintf("invalid address %q", e.Value)
}
