package errors

import (
	"errors"
)

var (
	ErrNoSuchKey = errors.New("requested key is not presented")
)
