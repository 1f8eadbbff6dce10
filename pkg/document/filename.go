package document

import (
	"regexp"
	"strings"
)

const (
	FilePrefix    = "Briefing_AnnaForm_"
	FileExtension = ".pdf"

	fallbackSlug = "cliente"
)

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	unsafeChars   = regexp.MustCompile(`[^\p{L}\p{N}_-]`)
	underscoreRun = regexp.MustCompile(`_+`)
)

// FileName derives the artifact name from the client name. Whitespace runs
// become a single underscore and anything that is not a letter, digit,
// underscore or hyphen is dropped.
func FileName(clientName string) string {
	return FilePrefix + Slug(clientName) + FileExtension
}

func Slug(name string) string {
	s := whitespaceRun.ReplaceAllString(strings.TrimSpace(name), "_")
	s = unsafeChars.ReplaceAllString(s, "")
	s = underscoreRun.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_-")
	if s == "" {
		return fallbackSlug
	}
	return s
}
