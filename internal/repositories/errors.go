package repositories

import "errors"

// ErrDuplicate is returned when a unique constraint rejects an insert.
// It relies on gorm's TranslateError being enabled.
var ErrDuplicate = errors.New("duplicate record")
