package apperr

import "errors"

var (
	ErrInput            = errors.New("input error")
	ErrParse            = errors.New("parse error")
	ErrWrite            = errors.New("write error")
	ErrInvalidCommand   = errors.New("invalid command")
	ErrDuplicateCommand = errors.New("duplicate command")
	ErrNoMatches        = errors.New("no matches")
	ErrEmptyCollection  = errors.New("no recipes stored")
)
