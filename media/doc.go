// SPDX-License-Identifier: EPL-2.0

// Package media fetches sound sources and decodes them into audio.Buffer
// values. Locations starting with http:// or https:// are downloaded,
// anything else is read from a fs.FS or the OS file system.
//
// It has no audio device dependency, so headless tools can use it.
package media
