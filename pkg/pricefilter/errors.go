package pricefilter

import "errors"

var (
	ErrInvalidSort     = errors.New("pricefilter: invalid sort order")
	ErrInvalidLanguage = errors.New("pricefilter: invalid language")
)
