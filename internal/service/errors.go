package service

import "errors"

var ErrNilAdapter = errors.New("source adapter is not set")
