package logger

import (
	"github.com/facebookincubator/go-belt/tool/logger"
)

type Level = logger.Level

const (
	// LevelWarning will report about Warnf-s and more severe messages.
	LevelWarning = logger.LevelWarning

	// LevelDebug will report about Debugf-s, Infof-s, Warnf-s, ...
	//
	// Tracef-s are compiled in only with the "debug_trace" build tag.
	LevelDebug = logger.LevelDebug
)
