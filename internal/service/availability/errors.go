package availability

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-FleetService/internal/domain"
)

var (
	// ErrConflict возвращается, когда окно пересекается с блокирующей записью
	ErrConflict = errors.New("availability: schedule conflict")

	// ErrInternal возвращается при внутренних ошибках
	ErrInternal = errors.New("availability: internal error")
)

// ConflictError пересечение с записью определённого вида.
// errors.Is(err, ErrConflict) == true.
type ConflictError struct {
	Kind domain.ConflictKind
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("schedule conflict with %s", e.Kind)
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}

// AsConflict извлекает вид пересечения из цепочки ошибок
func AsConflict(err error) (domain.ConflictKind, bool) {
	var ce *ConflictError
	if errors.As(err, &ce) {
		return ce.Kind, true
	}
	return domain.ConflictNone, false
}
