// pkg/platform/utils.go
package platform

// IsWindowsTag reports whether the architecture tag targets Windows,
// where libraries carry no "lib" prefix and use .dll/.lib
func IsWindowsTag(tag string) bool {
	return tag == ArchWindows
}
