// Package rename implements the account-name rewrite rule for the
// North America -> United States area restructuring, plus the batch
// drivers that apply it to lists and CSV files.
package rename

import "strings"

// AreaMapping is a single old-label -> new-label pair.
type AreaMapping struct {
	Old string
	New string
}

// areaMappings is the fixed relabeling table. Order matters: lookups stop
// at the first matching entry, so keep more specific labels first if the
// table ever grows overlapping entries.
//
// Matching is plain substring containment, not word-boundary matching. A
// name that happens to embed another area's label (e.g. "North America
// Westwood") is rewritten too. That mirrors the behavior of the script
// this tool replaces; change it deliberately, with the pinning tests in
// rewriter_test.go, not as a drive-by.
var areaMappings = []AreaMapping{
	{Old: "North America West", New: "United States West"},
	{Old: "North America East", New: "United States East"},
	{Old: "North America Central", New: "United States Central"},
	{Old: "North America Southwest", New: "United States Southwest"},
	{Old: "North America Southeast", New: "United States Southeast"},
	{Old: "North America Northeast", New: "United States Northeast"},
}

// Mappings returns a copy of the relabeling table.
func Mappings() []AreaMapping {
	out := make([]AreaMapping, len(areaMappings))
	copy(out, areaMappings)
	return out
}

// Rewrite maps an old account name to its updated form. Pure and
// deterministic; names matching no rule pass through unchanged.
//
// Canada accounts are the exception branch: any "<old-area> Area" suffix
// collapses to "Canada Area", and a Canada name whose old-area label is
// not followed by " Area" is left alone. Every other account gets a
// first-occurrence replacement of the old label with the new one.
func Rewrite(name string) string {
	if strings.Contains(name, "Canada") {
		for _, m := range areaMappings {
			if strings.Contains(name, m.Old+" Area") {
				return strings.Replace(name, m.Old+" Area", "Canada Area", 1)
			}
		}
		return name
	}

	for _, m := range areaMappings {
		if strings.Contains(name, m.Old) {
			return strings.Replace(name, m.Old, m.New, 1)
		}
	}

	return name
}

// Result pairs an original account name with its rewritten form.
type Result struct {
	Original string
	Updated  string
}

// Changed reports whether the rewrite altered the name.
func (r Result) Changed() bool {
	return r.Original != r.Updated
}
