// Copyright (c) 2024, Oracle and/or its affiliates.
// Licensed under the Universal Permissive License v 1.0 as shown at https://oss.oracle.com/licenses/upl.

package wlsconfig

import (
	"fmt"

	"github.com/Jeffail/gabs/v2"
	"github.com/verrazzano/weblogic-topology/pkg/log/wlslog"
)

// DynamicServersConfig contains the dynamic servers configuration of a WebLogic
// cluster: an elastic pool of server instances created from a server template,
// bounded by the configured current and maximum cluster sizes
type DynamicServersConfig struct {
	// Name of the server template the dynamic servers are created from.  Empty when
	// the cluster has no real dynamic servers configuration.
	ServerTemplateName string

	// Number of dynamic server instances currently allowed to be created
	DynamicClusterSize int

	// Configured upper bound on the dynamic cluster size
	MaxDynamicClusterSize int

	serverTemplate        *ServerConfig
	serverNamePrefix      string
	calculatedListenPorts bool
}

// createDynamicServersConfig derives the dynamic servers configuration of a cluster
// from its pre-parsed "dynamicServers" sub-mapping and the server template catalog of
// the domain.  The result has an empty ServerTemplateName when the sub-mapping is
// absent or does not reference a template defined in the domain; callers treat such a
// cluster as purely static.
func createDynamicServersConfig(dynamicServersMap map[string]interface{}, serverTemplates map[string]*ServerConfig, clusterName string, domainName string) *DynamicServersConfig {
	if dynamicServersMap == nil {
		return &DynamicServersConfig{}
	}
	dynamicServers := gabs.Wrap(dynamicServersMap)
	templateName := stringValue(dynamicServers, "serverTemplate")
	if templateName == "" {
		return &DynamicServersConfig{}
	}
	template, ok := serverTemplates[templateName]
	if !ok {
		wlslog.EnsureLogger(domainName).Debugf(
			"Dynamic servers configuration of cluster %s references server template %s which is not defined in domain %s",
			clusterName, templateName, domainName)
		return &DynamicServersConfig{}
	}
	return &DynamicServersConfig{
		ServerTemplateName:    templateName,
		DynamicClusterSize:    intValue(dynamicServers, "dynamicClusterSize"),
		MaxDynamicClusterSize: intValue(dynamicServers, "maxDynamicClusterSize"),
		serverTemplate:        template,
		serverNamePrefix:      stringValue(dynamicServers, "serverNamePrefix"),
		calculatedListenPorts: boolValue(dynamicServers, "calculatedListenPorts"),
	}
}

// ServerConfigs returns the configurations of the dynamic server instances currently
// materialized for the cluster, in creation order.  Server names are the configured
// prefix followed by the 1-based instance index.  Listen ports come from the server
// template, offset by the instance index when the cluster calculates listen ports.
func (d *DynamicServersConfig) ServerConfigs() []*ServerConfig {
	servers := make([]*ServerConfig, 0, d.DynamicClusterSize)
	for i := 1; i <= d.DynamicClusterSize; i++ {
		port := d.serverTemplate.ListenPort
		if d.calculatedListenPorts {
			port += i
		}
		servers = append(servers, &ServerConfig{
			Name:          fmt.Sprintf("%s%d", d.serverNamePrefix, i),
			ListenAddress: d.serverTemplate.ListenAddress,
			ListenPort:    port,
		})
	}
	return servers
}

func (d *DynamicServersConfig) String() string {
	return fmt.Sprintf("DynamicServersConfig{serverTemplate: %s, dynamicClusterSize: %d, maxDynamicClusterSize: %d}",
		d.ServerTemplateName, d.DynamicClusterSize, d.MaxDynamicClusterSize)
}

// dynamicServersSearchFields returns the dynamic servers configuration fields to
// retrieve in the WLS REST search request, in the format used in the request payload
func dynamicServersSearchFields() string {
	return "'serverTemplate', 'dynamicClusterSize', 'maxDynamicClusterSize', 'serverNamePrefix', 'calculatedListenPorts' "
}
