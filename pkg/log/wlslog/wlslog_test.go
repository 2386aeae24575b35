// Copyright (c) 2024, Oracle and/or its affiliates.
// Licensed under the Universal Permissive License v 1.0 as shown at https://oss.oracle.com/licenses/upl.

package wlslog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

// TestEnsureLogger tests the per-domain logger registry
// GIVEN a domain name
// WHEN EnsureLogger is called twice
// THEN the same logger is returned, and a new one only after DeleteLogger
func TestEnsureLogger(t *testing.T) {
	asserts := assert.New(t)
	const domainName = "test-domain"

	log := EnsureLogger(domainName)
	asserts.NotNil(log)
	asserts.True(log == EnsureLogger(domainName))

	DeleteLogger(domainName)
	asserts.False(log == EnsureLogger(domainName))
	DeleteLogger(domainName)
}

// TestDefault tests the process-wide logger
// GIVEN no per-domain logger
// WHEN Default is called
// THEN a usable zap-backed logger is returned
func TestDefault(t *testing.T) {
	asserts := assert.New(t)
	log := Default()
	asserts.NotNil(log)
	log.Debugf("debug %s", "message")
}

// TestFromZap tests wrapping an existing zap logger
// GIVEN a zap SugaredLogger
// WHEN FromZap is called
// THEN the wrapped logger satisfies the SugaredLogger interface
func TestFromZap(t *testing.T) {
	asserts := assert.New(t)
	var log SugaredLogger = FromZap(zap.NewNop().Sugar())
	asserts.NotNil(log)
	log.Warnf("warn %s", "message")
}
