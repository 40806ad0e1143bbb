package textoverlay

import "fmt"

type ErrInvalidProperty struct {
	Name string
}

func (e ErrInvalidProperty) Error() string {
	return fmt.Sprintf("invalid property: '%s'", e.Name)
}

type ErrInvalidPropertyValue struct {
	Name  string
	Value any
	Err   error
}

func (e ErrInvalidPropertyValue) Error() string {
	return fmt.Sprintf("invalid value %v for property '%s': %v", e.Value, e.Name, e.Err)
}

func (e ErrInvalidPropertyValue) Unwrap() error {
	return e.Err
}
