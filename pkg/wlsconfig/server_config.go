// Copyright (c) 2024, Oracle and/or its affiliates.
// Licensed under the Universal Permissive License v 1.0 as shown at https://oss.oracle.com/licenses/upl.

package wlsconfig

import (
	"fmt"

	"github.com/Jeffail/gabs/v2"
)

// ServerConfig contains the configuration of one WebLogic server instance, either
// statically declared in a cluster, standalone in the domain, or materialized from
// the server template of a dynamic cluster
type ServerConfig struct {
	// Name of the server
	Name string

	// Address the server listens on
	ListenAddress string

	// Port the server listens on
	ListenPort int
}

// NewServerConfigFromMap creates a ServerConfig from a pre-parsed "servers" or
// "serverTemplates" item of the WLS REST search result
func NewServerConfigFromMap(serverMap map[string]interface{}) *ServerConfig {
	server := gabs.Wrap(serverMap)
	return &ServerConfig{
		Name:          stringValue(server, "name"),
		ListenAddress: stringValue(server, "listenAddress"),
		ListenPort:    intValue(server, "listenPort"),
	}
}

func (s *ServerConfig) String() string {
	return fmt.Sprintf("ServerConfig{name: %s, listenAddress: %s, listenPort: %d}",
		s.Name, s.ListenAddress, s.ListenPort)
}

// serverSearchFields returns the server configuration fields to retrieve in the WLS
// REST search request, in the format used in the request payload.  The same fields
// apply to servers and to server templates.
func serverSearchFields() string {
	return "'name', 'listenAddress', 'listenPort' "
}

// Helpers for navigating the pre-parsed WLS REST JSON handed to the constructors.
// Wrapping with gabs keeps the lookups nil-safe for absent keys and sub-mappings.

func stringValue(c *gabs.Container, path string) string {
	s, _ := c.Path(path).Data().(string)
	return s
}

func intValue(c *gabs.Container, path string) int {
	// numeric values in pre-parsed JSON arrive as float64
	if f, ok := c.Path(path).Data().(float64); ok {
		return int(f)
	}
	return 0
}

func boolValue(c *gabs.Container, path string) bool {
	b, _ := c.Path(path).Data().(bool)
	return b
}
