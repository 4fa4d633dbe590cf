package glyph

// FormatError reports a malformed glyph string: wrong length or a
// character outside [0-9A-F] after normalization.
type FormatError struct {
	Message string
}

func (e *FormatError) Error() string {
	return e.Message
}

// RangeError reports an encode argument outside its declared bound, or a
// converted field landing on a forbidden sentinel value. Field names the
// offending argument.
type RangeError struct {
	Field   string
	Message string
}

func (e *RangeError) Error() string {
	return e.Message
}
