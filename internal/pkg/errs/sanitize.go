package errs

import "strings"

var sanitizer = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

// sanitize keeps error messages on a single line so they stay readable in
// structured log output and JSON error bodies.
func sanitize(s string) string {
	return sanitizer.Replace(s)
}
