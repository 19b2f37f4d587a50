package messages

import "errors"

var (
	ErrParsingCancelled = errors.New("messages: parsing cancelled")
	ErrFailedToParse    = errors.New("messages: failed to parse catalog content")
	ErrInvalidStructure = errors.New("messages: invalid catalog structure")
	ErrUnsupportedFile  = errors.New("messages: unsupported catalog file extension")
	ErrFailedToReadFile = errors.New("messages: failed to read catalog file")
)
