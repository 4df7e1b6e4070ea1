package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"serde-cli/internal/observability/logging"
)

// builtinYAML is used when no explicit or per-user file is usable.
const builtinYAML = `
name:
  - default1
  - default2
id: 12
`

// DirFunc reports the per-user config directory. ok is false when the
// platform or environment gives no answer.
type DirFunc func() (dir string, ok bool)

// ResolverConfig configures a Resolver.
type ResolverConfig struct {
	// Dir locates the per-user config directory. If nil, the per-user
	// file is never consulted.
	Dir DirFunc

	// Logger receives path and fallback diagnostics.
	// Defaults to slog.Default() if nil.
	Logger *slog.Logger
}

// Resolver picks the configuration record from its sources.
type Resolver struct {
	dir DirFunc
	log *slog.Logger
}

// Resolved is the outcome of a resolution.
type Resolved struct {
	Record Record
	Source Source
	// Path is the file the record was decoded from; empty for builtin.
	Path string
}

// NewResolver creates a resolver.
func NewResolver(cfg ResolverConfig) *Resolver {
	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}
	return &Resolver{dir: cfg.Dir, log: log}
}

// Resolve returns the record from explicitPath when it is non-empty, else
// from the per-user file, else the builtin literal.
//
// The only errors are about explicitPath: unreadable, unsupported
// extension or malformed content. Callers treat them as fatal.
func (r *Resolver) Resolve(explicitPath string) (*Resolved, error) {
	if explicitPath != "" {
		rec, err := LoadFromFile(explicitPath)
		if err != nil {
			return nil, err
		}
		f, _ := FormatFromPath(explicitPath)
		r.log.Debug("config loaded",
			logging.Path(explicitPath),
			logging.Source(string(SourceExplicit)),
			logging.Format(f.String()),
		)
		return &Resolved{Record: rec, Source: SourceExplicit, Path: explicitPath}, nil
	}

	if rec, path, ok := r.loadUserFile(); ok {
		return &Resolved{Record: rec, Source: SourceUser, Path: path}, nil
	}

	return &Resolved{Record: Builtin(), Source: SourceBuiltin}, nil
}

// UserFilePath returns the per-user file location, if the directory is known.
func (r *Resolver) UserFilePath() (string, bool) {
	if r.dir == nil {
		return "", false
	}
	dir, ok := r.dir()
	if !ok || dir == "" {
		return "", false
	}
	return DefaultFilePath(dir), true
}

// loadUserFile never fails loudly: missing, unreadable and malformed are
// all reported as ok == false.
func (r *Resolver) loadUserFile() (Record, string, bool) {
	path, ok := r.UserFilePath()
	if !ok {
		r.log.Debug("user config directory unknown, using builtin config")
		return Record{}, "", false
	}
	r.log.Info("config file path", logging.Path(path))

	f, err := os.Open(path)
	if err != nil {
		r.log.Debug("user config not usable, using builtin config", logging.Path(path), logging.Err(err))
		return Record{}, "", false
	}
	defer f.Close()

	var rec Record
	if err := yaml.NewDecoder(f).Decode(&rec); err != nil {
		r.log.Debug("user config not usable, using builtin config", logging.Path(path), logging.Err(err))
		return Record{}, "", false
	}
	return rec, path, true
}

// Builtin decodes the compiled-in literal. It panics if the literal is
// broken, which can only happen through an edit to builtinYAML.
func Builtin() Record {
	rec, err := Decode(FormatYAML, []byte(builtinYAML))
	if err != nil {
		panic(fmt.Sprintf("config: builtin literal: %v", err))
	}
	return rec
}

// DefaultFilePath joins dir with DefaultFileName.
func DefaultFilePath(dir string) string {
	return filepath.Join(dir, DefaultFileName)
}

// UserConfigDir returns <user config base>/app: $XDG_CONFIG_HOME or
// ~/.config on Linux, ~/Library/Application Support on macOS and
// %AppData% on Windows.
func UserConfigDir(app string) (string, bool) {
	base, err := os.UserConfigDir()
	if err != nil || strings.TrimSpace(base) == "" {
		return "", false
	}
	return filepath.Join(base, app), true
}
