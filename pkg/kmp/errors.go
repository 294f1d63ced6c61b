package kmp

import "errors"

var (
	ErrEmptyPattern     = errors.New("empty pattern")
	ErrSeparatorInInput = errors.New("separator occurs in input")
	ErrReservedSymbols  = errors.New("wildcard and separator must differ")
	ErrUnknownMode      = errors.New("unknown search mode")
)
