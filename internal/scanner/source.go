package scanner

import (
	"os"
	"regexp"
	"strings"

	goslug "github.com/gosimple/slug"

	"github.com/mlanders/sextant/internal/registry"
)

// langRule describes how function declarations look in one language family.
type langRule struct {
	exts          []string
	decls         []*regexp.Regexp // capture group 1 is the function name
	commentPrefix string           // line-comment marker for descriptions
}

var langRules = []langRule{
	{
		exts: []string{".go"},
		decls: []*regexp.Regexp{
			regexp.MustCompile(`^func\s+(?:\([^)]*\)\s+)?([A-Za-z_][A-Za-z0-9_]*)\s*\(`),
		},
		commentPrefix: "//",
	},
	{
		exts: []string{".js", ".jsx", ".ts", ".tsx", ".mjs"},
		decls: []*regexp.Regexp{
			regexp.MustCompile(`^(?:export\s+)?(?:async\s+)?function\s*\*?\s*([A-Za-z_$][A-Za-z0-9_$]*)\s*\(`),
			regexp.MustCompile(`^(?:export\s+)?(?:const|let|var)\s+([A-Za-z_$][A-Za-z0-9_$]*)\s*=\s*(?:async\s+)?(?:\([^)]*\)|[A-Za-z_$][A-Za-z0-9_$]*)\s*=>`),
		},
		commentPrefix: "//",
	},
	{
		exts: []string{".py"},
		decls: []*regexp.Regexp{
			regexp.MustCompile(`^(?:async\s+)?def\s+([A-Za-z_][A-Za-z0-9_]*)\s*\(`),
		},
		commentPrefix: "#",
	},
}

// ruleForFile returns the language rule matching the file name, or nil.
func ruleForFile(name string) *langRule {
	for i := range langRules {
		for _, ext := range langRules[i].exts {
			if strings.HasSuffix(name, ext) {
				return &langRules[i]
			}
		}
	}
	return nil
}

// scanSourceFile extracts function declarations from one source file.
// A line comment immediately above a declaration becomes its description.
func (s *WorkspaceScanner) scanSourceFile(path, rel string) ([]registry.Entry, error) {
	rule := ruleForFile(path)
	if rule == nil {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var entries []registry.Entry
	lines := strings.Split(string(data), "\n")

	for i, line := range lines {
		name := matchDecl(rule, line)
		if name == "" {
			continue
		}

		entries = append(entries, registry.Entry{
			Function:    name,
			Description: precedingComment(rule, lines, i),
			Slug:        goslug.Make(name),
			File:        rel,
			Line:        i + 1,
		})
	}

	return entries, nil
}

func matchDecl(rule *langRule, line string) string {
	trimmed := strings.TrimLeft(line, " \t")
	for _, re := range rule.decls {
		if m := re.FindStringSubmatch(trimmed); m != nil {
			return m[1]
		}
	}
	return ""
}

// precedingComment returns the trimmed text of the comment line directly
// above lines[declLine], if there is one.
func precedingComment(rule *langRule, lines []string, declLine int) string {
	if declLine == 0 {
		return ""
	}
	prev := strings.TrimSpace(lines[declLine-1])
	if !strings.HasPrefix(prev, rule.commentPrefix) {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(prev, rule.commentPrefix))
}
