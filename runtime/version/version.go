// Package version executes and returns the version string for the
// currently running process.
package version

import "fmt"

// The value of these vars are set through linker options.
var gitCommit = "Local build"
var buildDate = "Moments ago"

const semver = "v1.0.0"

// GetVersion returns the version string of this build.
func GetVersion() string {
	return fmt.Sprintf("%s. Built at: %s", GetBuildData(), buildDate)
}

// GetBuildData returns the release and commit of the current build.
func GetBuildData() string {
	return fmt.Sprintf("bitops/%s/%s", semver, gitCommit)
}

// Semver returns the major, minor and patch components of the release.
func Semver() [3]uint8 {
	return [3]uint8{1, 0, 0}
}
