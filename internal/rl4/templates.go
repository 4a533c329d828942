package rl4

// Template returns a minimal valid starter document for a category, used
// when scaffolding a new workspace. The timestamp placeholder is filled in
// by the caller.
func Template(category Category, today string) string {
	switch category {
	case CategoryPlan:
		return `---
title: Project plan
updated: ` + today + `
status: draft
---

## Goal

Describe what this project is trying to achieve.

## Milestones

- [ ] First milestone

## Next Steps

- [ ] First step
`
	case CategoryState:
		return `---
updated: ` + today + `
phase: starting
openTasks: []
blockers: []
---

## Current Focus

Nothing yet.

## Open Tasks

None.
`
	case CategoryLog:
		return `---
updated: ` + today + `
---

## Entries

- ` + today + `: workspace initialized.
`
	default:
		return ""
	}
}
