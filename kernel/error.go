package kernel

import "fmt"

type ErrClosed struct {
	Kernel fmt.Stringer
}

func (e ErrClosed) Error() string {
	return fmt.Sprintf("kernel %s is already closed", e.Kernel)
}
