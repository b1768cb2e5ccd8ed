package domain

import "errors"

var ErrMissingToken = errors.New("missing credential")
var ErrInvalidToken = errors.New("invalid or expired credential")
