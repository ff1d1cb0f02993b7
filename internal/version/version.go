package version

import "fmt"

// Version is the current version of the ember project.
const Version = "v0.1.0"

// ShellVersion returns the version string shown by the interactive
// shell.
func ShellVersion() string {
	return fmt.Sprintf("ember shell %s", Version)
}

// BenchVersion returns the version string shown by the benchmark tool.
func BenchVersion() string {
	return fmt.Sprintf("emberbench %s", Version)
}
