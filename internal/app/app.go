package app

import (
	"context"
	"fmt"
	"io"

	"serde-cli/internal/config"
	"serde-cli/internal/observability/logging"
)

// Output selects how the resolved record is printed.
type Output string

const (
	OutputDebug Output = "debug"
	OutputJSON  Output = "json"
	OutputYAML  Output = "yaml"
	OutputTOML  Output = "toml"
)

// ParseOutput validates an --output value.
func ParseOutput(s string) (Output, error) {
	switch o := Output(s); o {
	case "", OutputDebug:
		return OutputDebug, nil
	case OutputJSON, OutputYAML, OutputTOML:
		return o, nil
	default:
		return "", fmt.Errorf("invalid output %q: must be debug, json, yaml or toml", s)
	}
}

type Options struct {
	// ConfigFile is the explicit path; empty means "use the defaults".
	ConfigFile string
	Dir        config.DirFunc
	Output     Output
}

type App struct {
	opts Options
}

func New(opts Options) *App {
	if opts.Output == "" {
		opts.Output = OutputDebug
	}
	return &App{opts: opts}
}

// Resolve builds the resolver with the run-scoped logger and resolves once.
func (a *App) Resolve(ctx context.Context) (*config.Resolved, error) {
	log := logging.LoggerFromContext(ctx)
	r := config.NewResolver(config.ResolverConfig{
		Dir:    a.opts.Dir,
		Logger: log,
	})

	res, err := r.Resolve(a.opts.ConfigFile)
	if err != nil {
		return nil, err
	}
	log.Debug("config resolved", logging.Source(string(res.Source)), logging.Path(res.Path))
	return res, nil
}

// Run resolves the configuration, prints it, then prints the JSON
// serialization of the sample record.
func (a *App) Run(ctx context.Context, w io.Writer) error {
	res, err := a.Resolve(ctx)
	if err != nil {
		return err
	}

	if err := a.writeRecord(w, res.Record); err != nil {
		return err
	}

	sample, err := config.Encode(config.FormatJSON, SampleRecord())
	if err != nil {
		return fmt.Errorf("encode sample: %w", err)
	}
	_, err = fmt.Fprintf(w, "%s\n", sample)
	return err
}

// Show prints the run id, where the record came from, then the record.
func (a *App) Show(ctx context.Context, w io.Writer) error {
	res, err := a.Resolve(ctx)
	if err != nil {
		return err
	}

	path := res.Path
	if path == "" {
		path = "-"
	}
	if id := logging.RunIDFromContext(ctx); id != "" {
		fmt.Fprintf(w, "config.run_id=%s\n", id)
	}
	fmt.Fprintf(w, "config.source=%s\n", res.Source)
	fmt.Fprintf(w, "config.path=%s\n", path)
	return a.writeRecord(w, res.Record)
}

func (a *App) writeRecord(w io.Writer, rec config.Record) error {
	if a.opts.Output == OutputDebug {
		_, err := fmt.Fprintln(w, rec.String())
		return err
	}

	f, err := config.ParseFormat(string(a.opts.Output))
	if err != nil {
		return err
	}
	data, err := config.Encode(f, rec)
	if err != nil {
		return fmt.Errorf("encode %s: %w", f, err)
	}
	if _, err := w.Write(data); err != nil {
		return err
	}
	if len(data) == 0 || data[len(data)-1] != '\n' {
		_, err = fmt.Fprintln(w)
	}
	return err
}

// SampleRecord is the value serialized after every run.
func SampleRecord() config.Record {
	return config.NewRecord([]string{"foo", "bar"}, 32)
}
