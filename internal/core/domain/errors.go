package domain

import "go.trai.ch/zerr"

var (
	// ErrInvalidBuildAgent is returned when a serialized build agent has an unsupported shape.
	ErrInvalidBuildAgent = zerr.New("invalid build agent")

	// ErrUnknownAgentField is returned when a build agent field other than name or version is requested.
	ErrUnknownAgentField = zerr.New("unknown agent field, expected 'name' or 'version'")

	// ErrMissingTaskName is returned when a build record is requested without a task name.
	ErrMissingTaskName = zerr.New("missing task name")

	// ErrBuildInfoNotFound is returned when no build record exists for a task.
	ErrBuildInfoNotFound = zerr.New("build info not found")

	// ErrUnknownFormat is returned when an output format is not supported.
	ErrUnknownFormat = zerr.New("unknown output format, expected 'text', 'json', 'yaml' or 'xml'")

	// ErrUnsupportedValue is returned when an encoder is given a value it cannot render.
	ErrUnsupportedValue = zerr.New("unsupported value for encoder")

	// ErrEncodeFailed is returned when a value cannot be encoded.
	ErrEncodeFailed = zerr.New("failed to encode value")

	// ErrInputNotFound is returned when a path to fingerprint matches no files.
	ErrInputNotFound = zerr.New("input not found")

	// ErrHashFailed is returned when a file cannot be fingerprinted.
	ErrHashFailed = zerr.New("failed to hash file")

	// ErrStoreCreateFailed is returned when the build info store directory cannot be created.
	ErrStoreCreateFailed = zerr.New("failed to create build info store directory")

	// ErrStoreReadFailed is returned when the build info cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read build info")

	// ErrStoreUnmarshalFailed is returned when the build info cannot be unmarshaled.
	ErrStoreUnmarshalFailed = zerr.New("failed to unmarshal build info")

	// ErrStoreMarshalFailed is returned when the build info cannot be marshaled.
	ErrStoreMarshalFailed = zerr.New("failed to marshal build info")

	// ErrStoreWriteFailed is returned when the build info cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write build info")

	// ErrStoreOutsideRoot is returned when a configured store directory is not relative to the project root.
	ErrStoreOutsideRoot = zerr.New("store directory must be relative to the project root")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrConfigLoadFailed is returned when the configuration cannot be loaded for a command.
	ErrConfigLoadFailed = zerr.New("failed to load configuration")

	// ErrBuildInfoUpdateFailed is returned when updating the build info store fails.
	ErrBuildInfoUpdateFailed = zerr.New("failed to update build info store")

	// ErrBuildInfoLookupFailed is returned when reading from the build info store fails.
	ErrBuildInfoLookupFailed = zerr.New("failed to look up build info")
)
