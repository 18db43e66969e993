/*
Package format normalizes raw model replies for display.

It inserts paragraph breaks after sentences, promotes inline numbered-list
markers onto their own bulleted lines, and emphasizes a fixed set of keyword
phrases from the negotiation domain. Format is applied exactly once, when the
raw reply is ingested; reapplying it to already-formatted text is out of
contract and may double-insert breaks.
*/
package format

import (
	"regexp"
	"strings"
)

// Keywords are the literal phrases wrapped in emphasis markers, replaced
// left-to-right on a first-occurrence basis.
var Keywords = []string{
	"Opção 1:",
	"Opção 2:",
	"Opção 3:",
	"Resumo Final",
	"Tabela FIPE",
}

var (
	// listMarkerRegex matches a numbered-list marker occurring mid-text,
	// i.e. preceded by something other than a line start.
	listMarkerRegex = regexp.MustCompile(`([^\n])\s*(\d+)\.\s`)

	// sentenceBreakRegex matches a sentence-terminating period followed by
	// horizontal whitespace. A digit before the period is excluded so that
	// the list markers promoted above stay on their own lines.
	sentenceBreakRegex = regexp.MustCompile(`([^\d\n])\.[ \t]+`)
)

// Format normalizes a raw model reply for display. List markers are promoted
// before sentence splitting so "1. Vender" survives as one line.
func Format(raw string) string {
	if raw == "" {
		return raw
	}

	out := listMarkerRegex.ReplaceAllString(raw, "$1\n\n- $2. ")

	out = sentenceBreakRegex.ReplaceAllString(out, "$1.\n\n")

	for _, keyword := range Keywords {
		out = strings.Replace(out, keyword, "**"+keyword+"**", 1)
	}

	return out
}
