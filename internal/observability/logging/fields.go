package logging

import "log/slog"

// Campos fixos do projeto.
// Estes helpers garantem consistência entre cli, app e config.

// Path identifica o arquivo de configuração envolvido.
func Path(p string) slog.Attr {
	return slog.String("path", p)
}

// Source identifica de onde veio a configuração (explicit, user, builtin).
func Source(s string) slog.Attr {
	return slog.String("source", s)
}

// Format identifica o formato do arquivo (json, yaml, toml).
func Format(f string) slog.Attr {
	return slog.String("format", f)
}

// RunID identifica unicamente uma execução do binário.
func RunID(id string) slog.Attr {
	return slog.String("run_id", id)
}

// Err normaliza erros em logs.
// Sempre logado como string (não como objeto Go).
func Err(err error) slog.Attr {
	if err == nil {
		return slog.Any("error", nil)
	}
	return slog.String("error", err.Error())
}
