package pagination

import "errors"

var (
	ErrInvalidPageCount   = errors.New("pagination: invalid page count")
	ErrInvalidCurrentPage = errors.New("pagination: invalid current page")
	ErrInvalidRadius      = errors.New("pagination: invalid radius")
)
