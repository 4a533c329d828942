package router

import "strings"

// intentKeywords is the fixed mapping from intent label to keyword synonyms.
// Labels and keywords are compared case-insensitively.
//
// The synonym sets are policy: changing them changes which commands resolve
// for an intent, so additions belong here, not inline at call sites.
var intentKeywords = map[string][]string{
	"analyze": {"analyze", "analysis", "scan", "examine", "inspect"},
	"status":  {"status", "state", "progress", "report"},
	"plan":    {"plan", "roadmap", "milestone", "goal"},
	"test":    {"test", "verify", "validate"},
	"build":   {"build", "compile", "package", "bundle"},
	"fix":     {"fix", "repair", "resolve", "debug"},
	"doc":     {"doc", "docs", "document", "readme"},
	"clean":   {"clean", "clear", "reset", "purge"},
	"deploy":  {"deploy", "release", "publish", "ship"},
}

// KeywordsFor resolves the keyword set for an intent label.
//
// Unknown labels degrade gracefully: the label itself becomes the sole
// keyword, so resolution never fails on an unrecognized intent.
func KeywordsFor(intent string) []string {
	label := strings.ToLower(strings.TrimSpace(intent))
	if keywords, ok := intentKeywords[label]; ok {
		out := make([]string, len(keywords))
		copy(out, keywords)
		return out
	}
	return []string{label}
}

// Intents returns every recognized intent label, for help output.
func Intents() []string {
	labels := make([]string, 0, len(intentKeywords))
	for label := range intentKeywords {
		labels = append(labels, label)
	}
	return labels
}
