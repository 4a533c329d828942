// Package rl4 validates the structure of RL4 project-state documents.
//
// Three document categories (plan, state, log) each carry a fixed minimal
// set of frontmatter keys and body section markers that downstream
// automation depends on. Validation reports exactly what is missing, never
// just a boolean.
package rl4

// Category identifies one of the RL4 document categories.
type Category string

const (
	CategoryPlan  Category = "plan"
	CategoryState Category = "state"
	CategoryLog   Category = "log"
)

// Categories lists all RL4 categories in canonical order.
var Categories = []Category{CategoryPlan, CategoryState, CategoryLog}

// FileName returns the document file name for a category, relative to the
// workspace's rl4 directory.
func (c Category) FileName() string {
	return string(c) + ".md"
}

// requirements describes the structural contract of one category.
//
// Keys must be present in the frontmatter (values are not inspected);
// ArrayKeys must additionally hold array values. Sections must appear as
// literal substrings of the body, in any order, any number of times.
type requirements struct {
	Keys      []string
	ArrayKeys []string
	Sections  []string
}

var categoryRequirements = map[Category]requirements{
	CategoryPlan: {
		Keys:     []string{"title", "updated", "status"},
		Sections: []string{"## Goal", "## Milestones", "## Next Steps"},
	},
	CategoryState: {
		Keys:      []string{"updated", "phase", "openTasks", "blockers"},
		ArrayKeys: []string{"openTasks", "blockers"},
		Sections:  []string{"## Current Focus", "## Open Tasks"},
	},
	CategoryLog: {
		Keys:     []string{"updated"},
		Sections: []string{"## Entries"},
	},
}
