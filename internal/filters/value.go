package filters

// Value is the result of a filter: either text or the distinguished Nil.
//
// Nil means "no value" (the input was not a color, or an unknown channel was
// requested). It is a normal outcome, not an error.
type Value struct {
	text  string
	valid bool
}

// Nil is the "no value" result.
var Nil = Value{}

// Text wraps s as a present value. The empty string is a present value,
// distinct from Nil.
func Text(s string) Value {
	return Value{text: s, valid: true}
}

// IsNil reports whether v is the "no value" result.
func (v Value) IsNil() bool { return !v.valid }

// String returns the text, or "" for Nil.
func (v Value) String() string { return v.text }

// Ptr returns a pointer to the text, or nil for Nil. Handy for JSON results
// where "no value" should encode as null.
func (v Value) Ptr() *string {
	if !v.valid {
		return nil
	}
	s := v.text
	return &s
}

// Arguments are a filter's auxiliary arguments, already coerced to text.
type Arguments []string

// At returns the i-th argument, or "" when there are fewer arguments.
func (a Arguments) At(i int) string {
	if i < 0 || i >= len(a) {
		return ""
	}
	return a[i]
}

// EvalContext is the evaluation context the host passes to every filter.
// The color filters accept it but do not consult it.
type EvalContext struct {
	Locale string
}
