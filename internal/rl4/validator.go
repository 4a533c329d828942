package rl4

import (
	"os"
	"path/filepath"
	"strings"
)

// Result is the outcome of validating one document against its category.
type Result struct {
	Category Category `json:"category"`
	Path     string   `json:"path,omitempty"`
	Valid    bool     `json:"valid"`
	Missing  []string `json:"missing,omitempty"`
}

// AllResult combines the three per-category results. Valid is the
// conjunction of the individual results; all three are always present.
type AllResult struct {
	Valid bool   `json:"valid"`
	Plan  Result `json:"plan"`
	State Result `json:"state"`
	Log   Result `json:"log"`
}

// Validate checks document content against the structural contract of a
// category and returns every missing requirement.
//
// Missing items are spelled:
//   - "frontmatter.<key>" for an absent header field
//   - "frontmatter.<key> (array)" for a present field that must be an array
//     but is not
//   - "section: <marker>" for an absent section marker
func Validate(category Category, content string) Result {
	reqs := categoryRequirements[category]
	fields, body := splitDocument(content)

	var missing []string

	for _, key := range reqs.Keys {
		value, present := fields[key]
		if !present {
			missing = append(missing, "frontmatter."+key)
			continue
		}
		if mustBeArray(reqs, key) && !isArray(value) {
			missing = append(missing, "frontmatter."+key+" (array)")
		}
	}

	for _, section := range reqs.Sections {
		if !strings.Contains(body, section) {
			missing = append(missing, "section: "+section)
		}
	}

	return Result{
		Category: category,
		Valid:    len(missing) == 0,
		Missing:  missing,
	}
}

// ValidateFile validates the document at path. A missing or unreadable file
// reports every requirement of the category as missing: nothing present,
// everything absent.
func ValidateFile(category Category, path string) Result {
	data, err := os.ReadFile(path)
	if err != nil {
		res := Validate(category, "")
		res.Path = path
		return res
	}
	res := Validate(category, string(data))
	res.Path = path
	return res
}

// ValidateAll validates the three RL4 documents under dir.
//
// All three documents are always checked and reported individually, even
// when an earlier one fails; there is no short-circuiting.
func ValidateAll(dir string) AllResult {
	plan := ValidateFile(CategoryPlan, filepath.Join(dir, CategoryPlan.FileName()))
	state := ValidateFile(CategoryState, filepath.Join(dir, CategoryState.FileName()))
	logRes := ValidateFile(CategoryLog, filepath.Join(dir, CategoryLog.FileName()))

	return AllResult{
		Valid: plan.Valid && state.Valid && logRes.Valid,
		Plan:  plan,
		State: state,
		Log:   logRes,
	}
}

func mustBeArray(reqs requirements, key string) bool {
	for _, k := range reqs.ArrayKeys {
		if k == key {
			return true
		}
	}
	return false
}
