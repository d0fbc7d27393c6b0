package bmi

// Kind identifies why a computation was refused.
type Kind int

const (
	KindMissingField Kind = iota + 1
	KindNonPositiveHeight
	KindNonPositiveWeight
	KindNonNumeric // strict mode only
)

func (k Kind) String() string {
	switch k {
	case KindMissingField:
		return "missing_field"
	case KindNonPositiveHeight:
		return "non_positive_height"
	case KindNonPositiveWeight:
		return "non_positive_weight"
	case KindNonNumeric:
		return "non_numeric"
	default:
		return "unknown"
	}
}

// ValidationError is a user-input problem. Message is meant to be shown
// verbatim by the host.
type ValidationError struct {
	Kind    Kind
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Sentinel validation errors. Compute returns these values directly, so
// errors.Is compares by identity.
var (
	ErrMissingField      = &ValidationError{Kind: KindMissingField, Message: "Please enter height in feet and inches, and weight."}
	ErrNonPositiveHeight = &ValidationError{Kind: KindNonPositiveHeight, Message: "Height must be a positive number."}
	ErrNonPositiveWeight = &ValidationError{Kind: KindNonPositiveWeight, Message: "Weight must be a positive number."}
	ErrNonNumeric        = &ValidationError{Kind: KindNonNumeric, Message: "Height and weight must be valid numbers."}
)
