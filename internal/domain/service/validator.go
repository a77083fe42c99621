package service

// InputValidator checks a tagged input struct. Failures are returned as
// *errors.ValidationError carrying one message per field.
type InputValidator interface {
	Struct(input any) error
}
