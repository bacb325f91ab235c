package form

import (
	"bufio"
	"regexp"
	"sort"
	"strings"
)

var macrosBlock = regexp.MustCompile(`(?s)<macros>(.*?)</macros>`)

// ApplyMacros expands a form's <macros> block. Each "name=value" line in the
// block defines a macro; every "$name" in the rest of the document is
// replaced by its value and the block itself is removed.
func ApplyMacros(markup string) string {
	m := macrosBlock.FindStringSubmatchIndex(markup)
	if m == nil {
		return markup
	}
	defs := parseMacros(markup[m[2]:m[3]])
	body := markup[:m[0]] + markup[m[1]:]
	if len(defs) == 0 {
		return body
	}

	names := make([]string, 0, len(defs))
	for name := range defs {
		names = append(names, name)
	}
	// longest first so $labName is not shadowed by $lab
	sort.Slice(names, func(i, j int) bool {
		if len(names[i]) != len(names[j]) {
			return len(names[i]) > len(names[j])
		}
		return names[i] < names[j]
	})
	pairs := make([]string, 0, 2*len(names))
	for _, name := range names {
		pairs = append(pairs, "$"+name, defs[name])
	}
	return strings.NewReplacer(pairs...).Replace(body)
}

func parseMacros(block string) map[string]string {
	defs := make(map[string]string)
	sc := bufio.NewScanner(strings.NewReader(block))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		name, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		if name = strings.TrimSpace(name); name != "" {
			defs[name] = strings.TrimSpace(value)
		}
	}
	return defs
}

// RepairMarkup removes the &nbsp; escapes form authors use for layout.
// XML has no such entity, so a document containing one does not parse.
func RepairMarkup(markup string) string {
	return strings.ReplaceAll(markup, "&nbsp;", "")
}
