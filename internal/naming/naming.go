// Package naming derives output file names from entity display names.
package naming

import (
	"strings"
	"unicode/utf8"
)

// Extension is appended to every derived file name.
const Extension = ".xml"

const (
	maxStem     = 128
	truncatedTo = 127
)

var stripper = strings.NewReplacer(" ", "", ",", "", "/", "-", "\\", "-")

// FileName turns a display name such as "Hunt, John, 1740-1824" into a file
// name ("HuntJohn1740-1824.xml"). Spaces and commas are dropped, path
// separators become hyphens, stems longer than 128 runes are cut to 127, and
// runs of dots are collapsed.
func FileName(name string) string {
	stem := stripper.Replace(name)

	if utf8.RuneCountInString(stem) > maxStem {
		stem = string([]rune(stem)[:truncatedTo])
	}

	filename := stem + Extension
	for strings.Contains(filename, "..") {
		filename = strings.ReplaceAll(filename, "..", ".")
	}

	return filename
}
