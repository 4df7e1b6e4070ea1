package config

// Source indicates where a resolved record came from.
type Source string

const (
	// SourceExplicit is a file passed by the caller (--config-file).
	SourceExplicit Source = "explicit"

	// SourceUser is config.yaml in the per-user config directory
	// (e.g. ~/.config/serde/config.yaml).
	SourceUser Source = "user"

	// SourceBuiltin is the literal compiled into the binary.
	SourceBuiltin Source = "builtin"
)
