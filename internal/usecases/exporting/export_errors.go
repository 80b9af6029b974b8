package exporting

import "errors"

var (
	ErrUnknownFormat = errors.New("unknown export format")
	ErrStoreNotFound = errors.New("store not found")
)
