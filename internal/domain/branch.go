package domain

import "strings"

// Coordinates is a fixed latitude/longitude pair.
type Coordinates struct {
	Lat  float64
	Long float64
}

// Known depots.
const (
	BranchJomiy     = "jomiy"
	BranchYunusobod = "yunusobod"
)

// DefaultBranches is the built-in depot table.
var DefaultBranches = map[string]Coordinates{
	BranchJomiy:     {Lat: 41.35556949663072, Long: 69.25377917274001},
	BranchYunusobod: {Lat: 41.36612085817262, Long: 69.28779101371765},
}

// NormalizeBranch strips all whitespace and lowercases a branch name.
func NormalizeBranch(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), ""))
}

// BranchTable resolves a branch name to start coordinates.
// Names that are not in the table fall back to the default depot.
type BranchTable struct {
	branches map[string]Coordinates
	fallback string
}

// NewBranchTable builds a table from name → coordinates. Keys are normalized.
// If fallback is not present in branches it is resolved against DefaultBranches.
func NewBranchTable(branches map[string]Coordinates, fallback string) BranchTable {
	if len(branches) == 0 {
		branches = DefaultBranches
	}
	t := BranchTable{
		branches: make(map[string]Coordinates, len(branches)),
		fallback: NormalizeBranch(fallback),
	}
	for name, c := range branches {
		t.branches[NormalizeBranch(name)] = c
	}
	if t.fallback == "" {
		t.fallback = BranchJomiy
	}
	if _, ok := t.branches[t.fallback]; !ok {
		if c, ok := DefaultBranches[t.fallback]; ok {
			t.branches[t.fallback] = c
		} else {
			t.fallback = BranchJomiy
			t.branches[BranchJomiy] = DefaultBranches[BranchJomiy]
		}
	}
	return t
}

// Start returns the start coordinates for branch.
func (t BranchTable) Start(branch string) Coordinates {
	if c, ok := t.branches[NormalizeBranch(branch)]; ok {
		return c
	}
	return t.branches[t.fallback]
}

// Fallback returns the normalized name of the default depot.
func (t BranchTable) Fallback() string {
	return t.fallback
}
