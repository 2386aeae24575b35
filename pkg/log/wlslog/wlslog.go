// Copyright (c) 2024, Oracle and/or its affiliates.
// Licensed under the Universal Permissive License v 1.0 as shown at https://oss.oracle.com/licenses/upl.

// Package wlslog provides the logging capability used by the WebLogic
// topology model.  Validation operations take a SugaredLogger so that
// callers control where warnings go and tests can capture them.
package wlslog

import (
	"sync"

	"go.uber.org/zap"
)

// SugaredLogger is a logger interface that provides base logging
type SugaredLogger interface {
	Debug(args ...interface{})
	Debugf(template string, args ...interface{})
	Info(args ...interface{})
	Infof(template string, args ...interface{})
	Warn(args ...interface{})
	Warnf(template string, args ...interface{})
	Error(args ...interface{})
	Errorf(template string, args ...interface{})
}

// loggerMap contains the logger for each WebLogic domain being discovered
var loggerMap = make(map[string]SugaredLogger)

// Lock for map access
var lock sync.Mutex

// Default returns the process-wide zap-backed logger.  This is typically
// used for testing and for callers that do not manage per-domain loggers.
func Default() SugaredLogger {
	return zap.S()
}

// FromZap wraps a zap SugaredLogger in the SugaredLogger interface
func FromZap(z *zap.SugaredLogger) SugaredLogger {
	return z
}

// EnsureLogger ensures that a logger exists for the given WebLogic domain.
// The domain name must be unique for the process.
func EnsureLogger(domainName string) SugaredLogger {
	lock.Lock()
	defer lock.Unlock()
	log, ok := loggerMap[domainName]
	if !ok {
		log = zap.S().With("domain", domainName)
		loggerMap[domainName] = log
	}
	return log
}

// DeleteLogger deletes the logger for the given WebLogic domain
func DeleteLogger(domainName string) {
	lock.Lock()
	defer lock.Unlock()
	delete(loggerMap, domainName)
}
