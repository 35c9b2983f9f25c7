package config

import "errors"

var (
	// ErrParsingConfig is returned when a source cannot be parsed into the config struct.
	ErrParsingConfig = errors.New("failed to parse config")

	// ErrNilPointer is returned when a nil pointer is provided to a loader.
	ErrNilPointer = errors.New("nil pointer provided to config loader")

	// ErrLoadingEnvFile is returned when a .env file cannot be read.
	ErrLoadingEnvFile = errors.New("failed to load env file")

	// ErrReadingFile is returned when a config file cannot be read.
	ErrReadingFile = errors.New("failed to read config file")

	// ErrEmptyDocument is returned when a config file holds no document.
	ErrEmptyDocument = errors.New("config document is empty")
)
