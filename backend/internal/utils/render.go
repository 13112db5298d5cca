package utils

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var displayPolicy = bluemonday.UGCPolicy()

// DisplayHTML renders raw post text for embedding into a page:
// unsafe markup is removed and line breaks become <br>.
func DisplayHTML(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.ReplaceAll(displayPolicy.Sanitize(text), "\n", "<br>")
}
