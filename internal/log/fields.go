package log

import (
	"time"

	"go.uber.org/zap"
)

func String(key, val string) Field { return zap.String(key, val) }

func Int(key string, val int) Field { return zap.Int(key, val) }

//Cause is the field for the error that caused the logged event.
func Cause(err error) Field { return zap.NamedError("cause", err) }

func Duration(key string, val time.Duration) Field { return zap.Duration(key, val) }
