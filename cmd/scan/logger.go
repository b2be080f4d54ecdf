package main

import "go.uber.org/zap"

// silent unless -debug is passed
var (
	workerLog      = zap.NewNop()
	parserLog      = zap.NewNop()
	velocityMapLog = zap.NewNop()
)

func enableDebugLogging(l *zap.Logger) {
	workerLog = l.Named("decodeWorker")
	parserLog = l.Named("parser")
	velocityMapLog = l.Named("newVelocityMap")
}
