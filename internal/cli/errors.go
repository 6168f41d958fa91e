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

type confirmRequiredError struct {
	action string
	count  int
}

func (e confirmRequiredError) Error() string {
	return fmt.Sprintf("refusing to %s %d emotion(s) without --yes", e.action, e.count)
}

func errConfirmRequired(action string, count int) error {
	return confirmRequiredError{action: action, count: count}
}

type indexArgError struct {
	name  string
	value string
}

func (e indexArgError) Error() string {
	return fmt.Sprintf("invalid %s index: %q (want a non-negative integer)", e.name, e.value)
}
