package cli

import "fmt"

type notFoundError struct {
	kind string
	id   string
}

func (e notFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.kind, e.id)
}

func errNotFound(kind, id string) error {
	return notFoundError{kind: kind, id: id}
}

type usageError struct {
	msg string
}

func (e usageError) Error() string {
	return e.msg
}

func errUsage(format string, args ...any) error {
	return usageError{msg: fmt.Sprintf(format, args...)}
}
