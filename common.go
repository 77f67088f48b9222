package vncdes

import "fmt"

const versionMajor = 1
const versionMinor = 0

var packageVersion = fmt.Sprintf("VNCDES-%d.%d-Go", versionMajor, versionMinor)

// Version returns the library version string.
func Version() string {
	return packageVersion
}
