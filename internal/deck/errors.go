package deck

import "errors"

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrInvalidCardID   = errors.New("invalid card ID format")
	ErrCardNotFound    = errors.New("card not found")
	ErrDuplicateName   = errors.New("duplicate card name")
	ErrUnknownShape    = errors.New("unknown deck shape")
)
