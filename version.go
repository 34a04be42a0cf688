// version.go — build identity reported by the CLI.
package hixa

// Version is the language/interpreter release.
const Version = "0.1.0"

// BuildDate is stamped by the release build via -ldflags.
var BuildDate = "unknown"
