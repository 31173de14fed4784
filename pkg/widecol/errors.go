package widecol

import "errors"

var (
	ErrTableNotFound = errors.New("table not found")
	ErrTableExists   = errors.New("table already exists")
	ErrNoSuchFamily  = errors.New("no such column family")
	ErrInvalidName   = errors.New("invalid name")
	ErrEmptyPut      = errors.New("put has no columns")
)
