// SPDX-License-Identifier: EPL-2.0

// Package aiff provides AIFF audio file decoding.
//
// This package uses github.com/go-audio/aiff to parse the FORM/COMM/SSND
// chunks. Integer PCM at 8, 16, 24 and 32 bits is supported; AIFF-C
// compressed payloads are not.
//
//	decoder := aiff.Decoder{}
//	file, _ := os.Open("bell.aiff")
//	source, err := decoder.Decode(file)
//
// go-audio needs to seek, so readers that cannot seek are buffered in
// memory before decoding.
package aiff
