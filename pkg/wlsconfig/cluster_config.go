// Copyright (c) 2024, Oracle and/or its affiliates.
// Licensed under the Universal Permissive License v 1.0 as shown at https://oss.oracle.com/licenses/upl.

package wlsconfig

import (
	"fmt"
	"sync"

	"github.com/Jeffail/gabs/v2"
	"github.com/pkg/errors"
	v8 "github.com/verrazzano/weblogic-topology/apis/weblogic/v8"
	"github.com/verrazzano/weblogic-topology/pkg/log/wlslog"
)

// Warning messages for inconsistencies between the domain spec and the discovered
// WebLogic configuration
const (
	msgNoServersInCluster    = "No servers are configured in WebLogic cluster %s"
	msgReplicasExceedServers = "Replicas in %s for cluster %s is %d which is larger than the number of configured WLS servers in the cluster: %d"
)

// ClusterConfig contains the configuration of one WebLogic cluster discovered from a
// managed domain.  A cluster owns zero or more statically declared servers and at most
// one dynamic servers configuration; the two merge into the full server list with
// dynamic servers always listed first.
//
// A ClusterConfig represents one discovery snapshot.  Apart from AddServer, which the
// discovery collaborator calls while populating the snapshot, instances are not
// mutated; a new discovery produces a new ClusterConfig.
type ClusterConfig struct {
	name           string
	dynamicServers *DynamicServersConfig

	// mutex guards serverConfigs; discovery appends from multiple goroutines
	mutex         sync.Mutex
	serverConfigs []*ServerConfig
}

// NewClusterConfig creates the configuration for a static WebLogic cluster before any
// discovery data is available
func NewClusterConfig(clusterName string) *ClusterConfig {
	return &ClusterConfig{name: clusterName}
}

// CreateClusterConfig creates a ClusterConfig from a pre-parsed "clusters" item of the
// WLS REST search result, using the server template catalog of the enclosing domain to
// resolve the dynamic servers configuration.  The dynamic servers configuration is
// retained only when it references a server template defined in the domain; otherwise
// the cluster is treated as purely static.  Statically declared servers are attached
// afterwards with AddServer.
//
// Returns an error when the mapping has no "name" key; that is a contract violation by
// the discovery collaborator, not a recoverable condition.
func CreateClusterConfig(clusterMap map[string]interface{}, serverTemplates map[string]*ServerConfig, domainName string) (*ClusterConfig, error) {
	name := stringValue(gabs.Wrap(clusterMap), "name")
	if name == "" {
		return nil, errors.Errorf("cluster configuration in domain %s has no name", domainName)
	}
	dynamicServersMap, _ := clusterMap["dynamicServers"].(map[string]interface{})
	dynamicServers := createDynamicServersConfig(dynamicServersMap, serverTemplates, name, domainName)
	if dynamicServers.ServerTemplateName == "" {
		dynamicServers = nil
	}
	return &ClusterConfig{name: name, dynamicServers: dynamicServers}, nil
}

// AddServer adds a statically configured server to the cluster.  Safe for concurrent
// use by goroutines discovering servers in parallel.
func (c *ClusterConfig) AddServer(serverConfig *ServerConfig) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.serverConfigs = append(c.serverConfigs, serverConfig)
}

// ClusterName returns the name of the cluster
func (c *ClusterConfig) ClusterName() string {
	return c.name
}

// ClusterSize returns the number of servers that are statically configured in the
// cluster
func (c *ClusterConfig) ClusterSize() int {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return len(c.serverConfigs)
}

// ServerConfigs returns the configurations of all servers that belong to the cluster,
// dynamic servers first followed by the statically configured servers
func (c *ClusterConfig) ServerConfigs() []*ServerConfig {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	if c.dynamicServers == nil {
		return append([]*ServerConfig{}, c.serverConfigs...)
	}
	servers := make([]*ServerConfig, 0, c.dynamicServers.DynamicClusterSize+len(c.serverConfigs))
	servers = append(servers, c.dynamicServers.ServerConfigs()...)
	return append(servers, c.serverConfigs...)
}

// HasStaticServers reports whether the cluster contains any statically configured
// servers
func (c *ClusterConfig) HasStaticServers() bool {
	return c.ClusterSize() > 0
}

// HasDynamicServers reports whether the cluster contains any dynamic servers
func (c *ClusterConfig) HasDynamicServers() bool {
	return c.dynamicServers != nil
}

// DynamicClusterSize returns the number of dynamic server instances currently allowed
// to be created, or -1 if there are no dynamic servers in the cluster
func (c *ClusterConfig) DynamicClusterSize() int {
	if c.dynamicServers == nil {
		return -1
	}
	return c.dynamicServers.DynamicClusterSize
}

// MaxDynamicClusterSize returns the configured maximum size of the dynamic cluster, or
// -1 if there are no dynamic servers in the cluster
func (c *ClusterConfig) MaxDynamicClusterSize() int {
	if c.dynamicServers == nil {
		return -1
	}
	return c.dynamicServers.MaxDynamicClusterSize
}

// ValidateClusterStartup checks that the given cluster startup spec is consistent with
// the discovered cluster configuration and logs a warning for each inconsistency
// found: a cluster with no way to run any server instance, or a replica count the
// cluster cannot satisfy.  Nothing is corrected; the return reports whether the
// startup spec was modified and is always false, reserved for a future auto-correction
// of the startup spec by the caller.
func (c *ClusterConfig) ValidateClusterStartup(log wlslog.SugaredLogger, clusterStartup *v8.ClusterStartup) bool {
	modified := false
	if c.ClusterSize() == 0 && !c.HasDynamicServers() {
		log.Warnf(msgNoServersInCluster, c.name)
	}
	c.ValidateReplicas(log, clusterStartup.Replicas, "clusterStartup")
	return modified
}

// ValidateReplicas checks the replicas value configured in the domain spec against the
// number of servers configured in the cluster and logs a warning when the requested
// count exceeds it.  A nil replicas value means no count was requested and nothing is
// checked.  Clusters with dynamic servers are elastic and are never warned about.
// source names the section of the domain spec the replicas value came from.
func (c *ClusterConfig) ValidateReplicas(log wlslog.SugaredLogger, replicas *int32, source string) {
	if replicas == nil || c.HasDynamicServers() {
		return
	}
	if int(*replicas) > c.ClusterSize() {
		log.Warnf(msgReplicasExceedServers, source, c.name, *replicas, c.ClusterSize())
	}
}

// UpdateDynamicClusterSizeURL returns the URL path of the WLS REST request that
// updates the dynamic cluster size of this cluster
func (c *ClusterConfig) UpdateDynamicClusterSizeURL() string {
	return "/management/weblogic/latest/edit/clusters/" + c.name + "/dynamicServers"
}

// UpdateDynamicClusterSizePayload returns the payload of the WLS REST request that
// updates the dynamic cluster size to the desired value.  The payload format is the
// exact shape the WLS REST endpoint expects; numeric fields are unquoted.
func (c *ClusterConfig) UpdateDynamicClusterSizePayload(desiredSize int) string {
	return fmt.Sprintf("{ dynamicClusterSize: %d, maxDynamicClusterSize: %d }",
		desiredSize, grownClusterCeiling(desiredSize, c.MaxDynamicClusterSize()))
}

// grownClusterCeiling returns the maximum dynamic cluster size to send alongside the
// desired cluster size.  The ceiling grows to admit a desired size beyond the current
// maximum but is never lowered.
func grownClusterCeiling(desiredSize int, currentMax int) int {
	if desiredSize > currentMax {
		return desiredSize
	}
	return currentMax
}

// ClusterSearchPayload returns the cluster configuration attributes to retrieve in the
// WLS REST search request, including the nested dynamic servers attributes.  The REST
// collaborator embeds the fragment in the search POST payload it sends to the admin
// server.
func ClusterSearchPayload() string {
	return "   fields: [ " + clusterSearchFields() + " ], " +
		"   links: [], " +
		"   children: { " +
		"      dynamicServers: { " +
		"      fields: [ " + dynamicServersSearchFields() + " ], " +
		"      links: [] " +
		"        }" +
		"    } "
}

func clusterSearchFields() string {
	return "'name' "
}

func (c *ClusterConfig) String() string {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return fmt.Sprintf("ClusterConfig{name: %s, serverConfigs: %v, dynamicServers: %v}",
		c.name, c.serverConfigs, c.dynamicServers)
}
