// Copyright (c) 2024, Oracle and/or its affiliates.
// Licensed under the Universal Permissive License v 1.0 as shown at https://oss.oracle.com/licenses/upl.

package v8

// ClusterStartup contains the desired startup configuration for one WebLogic
// cluster in a domain spec
type ClusterStartup struct {
	// The name of the WebLogic cluster this startup configuration applies to
	ClusterName string `json:"clusterName"`

	// The state in which the cluster servers are to be started.  Legal values are "RUNNING" or "ADMIN"
	DesiredState string `json:"desiredState,omitempty"`

	// The desired number of running managed servers in the cluster.  Not set means no
	// replica count was requested for this cluster.
	Replicas *int32 `json:"replicas,omitempty"`
}
