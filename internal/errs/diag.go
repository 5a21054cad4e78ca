package errs

// Diag receives a single-line diagnostic naming the operation, the offending
// value, and the governing schema/column (§7). The default is a no-op; the
// logging package supplies a slog-backed implementation.
type Diag interface {
	Diag(msg string, kv ...any)
}

type noopDiag struct{}

func (noopDiag) Diag(string, ...any) {}

// NoopDiag is the default sink used when a caller does not wire one in.
var NoopDiag Diag = noopDiag{}

// Report writes err's message to sink if err is a *Error, tagging it with op.
func Report(sink Diag, op string, err error) {
	if sink == nil || err == nil {
		return
	}
	if e, ok := err.(*Error); ok {
		sink.Diag(e.Error(), "op", op, "kind", e.Kind)
		return
	}
	sink.Diag(err.Error(), "op", op)
}
