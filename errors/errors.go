package errors

import "fmt"

// UnknownFieldError indicates that no field of the example record is
// described under the identifier present in the Name field.
type UnknownFieldError struct {
	Name string
}

func (u UnknownFieldError) Error() string {
	return fmt.Sprintf("unknown field %q", u.Name)
}
