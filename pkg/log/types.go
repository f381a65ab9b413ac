package log

import "io"

// ZapConfig configures the zap-backed Logger.
type ZapConfig struct {
	Level        string // debug, info, warn, error
	Mode         string // "production" or anything else for development
	Encoding     string // "json" or "console"
	ColorEnabled bool
	Output       io.Writer // defaults to os.Stdout
}

const (
	ModeProduction  = "production"
	EncodingJSON    = "json"
	EncodingConsole = "console"

	ctxKeySessionID = "session_id"
)

type ctxKey string

const sessionIDKey ctxKey = ctxKeySessionID
