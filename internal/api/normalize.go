package api

import "errors"

// Normalize turns any call failure into a display string: a server-reported
// message when there is one, otherwise the transport error text.
func Normalize(err error) string {
	if err == nil {
		return ""
	}
	var ae *Error
	if errors.As(err, &ae) && ae.Message != "" {
		return ae.Message
	}
	return err.Error()
}
