package dataset

import "errors"

var (
	ErrUnsupportedFormat = errors.New("unsupported file format")
	ErrEmptyDataset      = errors.New("dataset is empty")
	ErrColumnNotFound    = errors.New("column not found")
	ErrNotNumeric        = errors.New("column is not numeric")
	ErrRaggedRows        = errors.New("rows have inconsistent column counts")
)
