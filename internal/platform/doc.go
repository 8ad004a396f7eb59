// Package platform provides the filesystem operations behind module
// installation: permission handling that is a no-op on Windows, directory
// checks, and moving a directory's contents into a destination with a copy
// fallback when a rename crosses devices.
package platform
