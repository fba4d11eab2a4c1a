package observability

import (
	"go.uber.org/zap"
)

// Field aliases keep call sites free of a direct zap import.
//
//nolint:gochecknoglobals // function aliases
var (
	String   = zap.String
	Int      = zap.Int
	Int64    = zap.Int64
	Float64  = zap.Float64
	Bool     = zap.Bool
	Strings  = zap.Strings
	Any      = zap.Any
	Error    = zap.Error
	Duration = zap.Duration
)
