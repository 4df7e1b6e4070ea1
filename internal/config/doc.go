// Package config resolves the application configuration record.
//
// Sources are tried in priority order, first match wins:
//  1. An explicit file given by the caller (.json, .yaml or .toml).
//  2. config.yaml in the per-user config directory (e.g. ~/.config/serde).
//  3. A built-in YAML literal.
//
// An explicit file that cannot be read or parsed is a hard error. A missing
// or broken per-user file is not: the resolver silently falls back to the
// built-in literal.
//
//	r := config.NewResolver(config.ResolverConfig{
//	    Dir: func() (string, bool) { return config.UserConfigDir(config.AppName) },
//	})
//	res, err := r.Resolve(path)
//	fmt.Println(res.Record, res.Source)
package config
