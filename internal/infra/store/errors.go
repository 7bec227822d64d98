package store

import (
	"errors"
	"fmt"
)

var (
	ErrCorrupt         = errors.New("backing file is corrupt")
	ErrIndexOutOfRange = errors.New("row index out of range")
)

// StoreCorruptError means the backing file exists but could not be parsed as
// the expected tabular data. Not auto-recovered; the file needs manual
// attention.
type StoreCorruptError struct {
	Path string
	Err  error
}

func (e *StoreCorruptError) Error() string {
	return fmt.Sprintf("lead store: %s: %v", e.Path, e.Err)
}

func (e *StoreCorruptError) Unwrap() error { return e.Err }

func (e *StoreCorruptError) Is(target error) bool { return target == ErrCorrupt }

// IndexOutOfRangeError is a usage error on UpdateFields: the caller addressed
// a row that does not exist in the current load order.
type IndexOutOfRangeError struct {
	Index int
	Rows  int
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("lead store: row %d out of range (have %d rows)", e.Index, e.Rows)
}

func (e *IndexOutOfRangeError) Is(target error) bool { return target == ErrIndexOutOfRange }
