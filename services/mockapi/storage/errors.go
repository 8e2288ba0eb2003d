package storage

type errUsernameTaken string

// Error returns the string representation of the error
func (e errUsernameTaken) Error() string {
	return "username already registered: " + string(e)
}

// IsUsernameTaken returns true if the provided error signals a duplicate username
func IsUsernameTaken(err error) bool {
	_, ok := err.(errUsernameTaken)
	return ok
}
