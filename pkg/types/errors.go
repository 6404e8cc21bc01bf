package types

import "errors"

// Standard errors returned by the storage and view layers.
var (
	ErrNotFound        = errors.New("record not found")
	ErrInvalidID       = errors.New("invalid record ID")
	ErrStoreDetached   = errors.New("store is detached")
	ErrAlreadyAttached = errors.New("store is already attached")
	ErrNameRequired    = errors.New("business name is required")
	ErrFieldExists     = errors.New("field already exists")
	ErrFieldNameEmpty  = errors.New("field name must not be empty")
	ErrFieldFixed      = errors.New("fixed field cannot be removed")
	ErrUnsupportedFile = errors.New("unsupported file format")
)
