package update

import "strings"

func escapeAppleScript(s string) string {
	return strings.ReplaceAll(s, `"`, `\"`)
}
