package state

// Failure is returned by a service operation that failed. Message is the
// same text the operation recorded in its slice's error field, so a caller
// can answer from its own outcome instead of reading shared state.
type Failure struct {
	Message string
	Err     error
}

func (f *Failure) Error() string {
	return f.Message
}

func (f *Failure) Unwrap() error {
	return f.Err
}

// MessageOf returns the recorded message of a *Failure, or err's text.
func MessageOf(err error) string {
	if f, ok := err.(*Failure); ok {
		return f.Message
	}
	if err == nil {
		return ""
	}
	return err.Error()
}
