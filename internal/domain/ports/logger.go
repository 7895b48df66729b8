package ports

// Logger é a saída de logs estruturados usada por serviços e handlers.
// args são pares chave/valor, como em log/slog.
type Logger interface {
	Info(msg string, args ...any)
	Error(msg string, args ...any)
	Debug(msg string, args ...any)
	Warn(msg string, args ...any)
	// With devolve um Logger que acrescenta args a toda mensagem
	With(args ...any) Logger
}
