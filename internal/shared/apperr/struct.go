package apperr

// Kind classifies an application error for status mapping and logging.
type Kind string

// AppError carries an internal error together with a message that is safe to
// show to the user.
type AppError struct {
	Kind      Kind
	PublicMsg string
	Fields    map[string]string
	Err       error
}
