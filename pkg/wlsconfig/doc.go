// Copyright (c) 2024, Oracle and/or its affiliates.
// Licensed under the Universal Permissive License v 1.0 as shown at https://oss.oracle.com/licenses/upl.

// Package wlsconfig models the topology of a running WebLogic domain as discovered
// through the WLS REST management API: clusters with statically declared servers,
// dynamic server configurations bounded by a server template, standalone servers,
// and the server template catalog.
//
// The package performs no I/O of its own.  Constructors consume pre-parsed
// key-to-value mappings produced by an external REST collaborator, and the
// SearchPayload/Update* builders produce the request fragments that collaborator
// sends.  Validation entry points compare a desired domain spec against the
// discovered topology and report inconsistencies as warnings through an injected
// logger; nothing is corrected or persisted here.
package wlsconfig
