package extract

import (
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/agnosticengineer/visualize-files-graph/pkg/graph"
)

// templateVarPattern captures the leading identifier of a {{ ... }}
// expression, so "{{ item.name | upper }}" yields "item".
var templateVarPattern = regexp.MustCompile(`\{\{-?\s*([A-Za-z_][A-Za-z0-9_]*)`)

// templateStmtPattern captures the body of a {% ... %} statement block.
var templateStmtPattern = regexp.MustCompile(`\{%-?\s*(.*?)\s*-?%\}`)

var templateIdentPattern = regexp.MustCompile(`[A-Za-z_][A-Za-z0-9_]*`)

// Operators and tests that may appear inside a statement expression.
var templateKeywords = map[string]struct{}{
	"and": {}, "or": {}, "not": {}, "in": {}, "is": {}, "defined": {},
	"true": {}, "false": {}, "none": {}, "True": {}, "False": {}, "None": {},
}

// TemplateExtractor reports the variables a Jinja-style template uses.
type TemplateExtractor struct{}

// Name identifies the extractor.
func (t *TemplateExtractor) Name() string { return "template" }

// FileKind returns the node kind for template files.
func (t *TemplateExtractor) FileKind() graph.NodeKind { return graph.KindTemplate }

// RefKind returns the node kind for extracted template variables.
func (t *TemplateExtractor) RefKind() graph.NodeKind { return graph.KindVariable }

// Patterns describes matched file names.
func (t *TemplateExtractor) Patterns() string { return "*.j2, *jinja*" }

// Match reports whether the base name looks like a template: either a .j2
// extension or "jinja" anywhere in the name.
func (t *TemplateExtractor) Match(name string) bool {
	if strings.ToLower(filepath.Ext(name)) == ".j2" {
		return true
	}

	return strings.Contains(strings.ToLower(name), "jinja")
}

// Extract collects the distinct variable names used in {{ ... }}
// expressions and {% ... %} statement blocks, sorted.
func (t *TemplateExtractor) Extract(data []byte) ([]Reference, error) {
	distinct := make(map[string]struct{})

	for _, match := range templateVarPattern.FindAllSubmatch(data, -1) {
		distinct[string(match[1])] = struct{}{}
	}

	for _, match := range templateStmtPattern.FindAllSubmatch(data, -1) {
		for _, name := range statementVars(string(match[1])) {
			distinct[name] = struct{}{}
		}
	}

	names := make([]string, 0, len(distinct))
	for name := range distinct {
		names = append(names, name)
	}

	sort.Strings(names)

	refs := make([]Reference, 0, len(names))
	for _, name := range names {
		refs = append(refs, Reference{Key: name})
	}

	return refs, nil
}

// statementVars returns the variables a statement body reads. Only
// if/elif conditions, for-loop iterables, and set right-hand sides
// carry variable reads; other tags take string literals or nothing.
func statementVars(stmt string) []string {
	tag, rest, _ := strings.Cut(stmt, " ")

	switch tag {
	case "if", "elif":
		return readIdents(rest)
	case "for":
		_, iterable, found := strings.Cut(rest, " in ")
		if !found {
			return nil
		}

		return readIdents(iterable)
	case "set":
		_, rhs, found := strings.Cut(rest, "=")
		if !found {
			return nil
		}

		return readIdents(rhs)
	default:
		return nil
	}
}

// readIdents collects the identifiers in an expression that read a
// variable, skipping attribute access after '.', filter names after
// '|', string literals, and expression keywords.
func readIdents(expr string) []string {
	var names []string

	for _, loc := range templateIdentPattern.FindAllStringIndex(expr, -1) {
		name := expr[loc[0]:loc[1]]
		if _, keyword := templateKeywords[name]; keyword {
			continue
		}

		switch prevNonSpace(expr, loc[0]) {
		case '.', '|', '"', '\'':
			continue
		}

		names = append(names, name)
	}

	return names
}

func prevNonSpace(s string, i int) byte {
	for i > 0 {
		i--

		if s[i] != ' ' && s[i] != '\t' {
			return s[i]
		}
	}

	return 0
}
