// Copyright (c) 2024, Oracle and/or its affiliates.
// Licensed under the Universal Permissive License v 1.0 as shown at https://oss.oracle.com/licenses/upl.

package wlsconfig

import (
	"github.com/Jeffail/gabs/v2"
	"github.com/pkg/errors"
)

// DomainConfig contains the topology of a WebLogic domain discovered from the admin
// server: the clusters, the standalone servers, and the server template catalog used
// to resolve dynamic clusters
type DomainConfig struct {
	name            string
	clusterConfigs  map[string]*ClusterConfig
	serverConfigs   []*ServerConfig
	serverTemplates map[string]*ServerConfig
}

// CreateDomainConfig creates a DomainConfig from the pre-parsed result of the WLS REST
// search request built by SearchPayload.  Server templates are cataloged first so
// cluster creation can resolve dynamic servers configurations against them; discovered
// servers carrying a "cluster" reference are then attached to their clusters, and the
// rest are kept as standalone servers of the domain.
//
// Returns an error when the mapping has no "name" key.
func CreateDomainConfig(domainMap map[string]interface{}) (*DomainConfig, error) {
	domain := gabs.Wrap(domainMap)
	name := stringValue(domain, "name")
	if name == "" {
		return nil, errors.New("domain configuration has no name")
	}
	config := &DomainConfig{
		name:            name,
		clusterConfigs:  make(map[string]*ClusterConfig),
		serverTemplates: make(map[string]*ServerConfig),
	}

	for _, templateMap := range items(domain, "serverTemplates") {
		template := NewServerConfigFromMap(templateMap)
		config.serverTemplates[template.Name] = template
	}

	for _, clusterMap := range items(domain, "clusters") {
		clusterConfig, err := CreateClusterConfig(clusterMap, config.serverTemplates, name)
		if err != nil {
			return nil, err
		}
		config.clusterConfigs[clusterConfig.ClusterName()] = clusterConfig
	}

	for _, serverMap := range items(domain, "servers") {
		serverConfig := NewServerConfigFromMap(serverMap)
		clusterName := stringValue(gabs.Wrap(serverMap), "cluster")
		if clusterConfig, ok := config.clusterConfigs[clusterName]; ok {
			clusterConfig.AddServer(serverConfig)
			continue
		}
		config.serverConfigs = append(config.serverConfigs, serverConfig)
	}

	return config, nil
}

// Name returns the name of the WebLogic domain
func (d *DomainConfig) Name() string {
	return d.name
}

// ClusterConfig returns the configuration of the named cluster.  A cluster the domain
// does not know yields an empty static cluster configuration, so callers always get a
// usable object.
func (d *DomainConfig) ClusterConfig(clusterName string) *ClusterConfig {
	if clusterConfig, ok := d.clusterConfigs[clusterName]; ok {
		return clusterConfig
	}
	return NewClusterConfig(clusterName)
}

// ClusterConfigs returns the configurations of all clusters in the domain, keyed by
// cluster name
func (d *DomainConfig) ClusterConfigs() map[string]*ClusterConfig {
	return d.clusterConfigs
}

// ServerConfigs returns the configurations of the standalone servers in the domain,
// i.e. the discovered servers that do not belong to any cluster
func (d *DomainConfig) ServerConfigs() []*ServerConfig {
	return d.serverConfigs
}

// SearchPayload returns the payload of the WLS REST search request that retrieves the
// domain topology: the domain name plus its servers, server templates and clusters
func SearchPayload() string {
	return "{ fields: [ 'name' ], links: [], children: { " +
		"servers: { fields: [ " + serverSearchFields() + " ], links: [] }, " +
		"serverTemplates: { fields: [ " + serverSearchFields() + " ], links: [] }, " +
		"clusters: { " + ClusterSearchPayload() + " } " +
		"} }"
}

// items returns the "items" entries of the named sub-mapping as pre-parsed maps
func items(c *gabs.Container, key string) []map[string]interface{} {
	var result []map[string]interface{}
	for _, child := range c.Search(key, "items").Children() {
		if m, ok := child.Data().(map[string]interface{}); ok {
			result = append(result, m)
		}
	}
	return result
}
