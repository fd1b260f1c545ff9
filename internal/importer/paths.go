package importer

import "strings"

// CleanPath trims the quotes and whitespace that shells and drag-and-drop
// leave around a pasted directory path.
//
// Postcondition: result has no leading or trailing '"', ' ', '\t' or '\n',
// and CleanPath(CleanPath(s)) == CleanPath(s).
func CleanPath(arg string) string {
	return strings.Trim(arg, "\" \n\t")
}
