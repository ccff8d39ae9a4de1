// SPDX-License-Identifier: MPL-2.0

// Package cueutil provides the CUE parsing flow shared by command metadata
// files and the configuration file:
//
//  1. Compile the embedded schema
//  2. Compile user data and unify it with the schema definition
//  3. Validate and decode to a Go value
//
// # Usage
//
//	//go:embed cmdmeta_schema.cue
//	var schema string
//
//	result, err := cueutil.ParseAndDecodeString[Metadata](
//	    schema,
//	    data,
//	    "#Metadata",
//	    cueutil.WithFilename("build.cue"),
//	)
package cueutil
