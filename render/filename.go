package render

import "strings"

var filenameReplacer = strings.NewReplacer(
	`\`, "_",
	"/", "_",
	":", "_",
	"*", "_",
	"?", "_",
	`"`, "_",
	"<", "_",
	">", "_",
	"|", "_",
)

// SanitizeFilename replaces characters that are illegal in file names on
// common filesystems with an underscore.
func SanitizeFilename(name string) string {
	return filenameReplacer.Replace(name)
}
