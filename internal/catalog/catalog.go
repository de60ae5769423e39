// Package catalog holds the static content programme: the demographic group
// table, the group resolver, and the ordered sentence sequences each group is
// exposed to. The catalog is built once at process start and never mutated
// afterwards; it performs no I/O and is safe for concurrent reads.
package catalog

import (
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// AgeBracket is a coarse age cohort collected at signup.
type AgeBracket string

// GenderBracket is the author's stated gender preference for content.
type GenderBracket string

// Declared bracket enumerations. AgeGeneral and GenderNone are the sentinel
// values that always resolve to the default group.
const (
	AgeGeneral  AgeBracket = "general"
	AgeTeens    AgeBracket = "10s"
	AgeTwenties AgeBracket = "20s"
	AgeThirties AgeBracket = "30s"
	AgeForties  AgeBracket = "40s"

	GenderNone   GenderBracket = "none"
	GenderFemale GenderBracket = "female"
	GenderMale   GenderBracket = "male"
)

// ProgramLength is the fixed number of days in every group's programme.
const ProgramLength = 21

// DefaultGroupCode identifies the group used for the "general"/"no preference"
// sentinels and as the content source for groups without bespoke sequences.
const DefaultGroupCode = "base"

// FallbackExcerpt is the statically embedded sentence shown when every
// resolution attempt fails. It requires no storage access at all.
const FallbackExcerpt = "Some days the page stays blank until one borrowed line opens it."

// Group is one demographic content cohort.
type Group struct {
	Code          string
	Label         string
	AgeBracket    AgeBracket
	GenderBracket GenderBracket
	// Sentences is the ordered, 1-indexed programme. Groups declared with
	// an empty slice receive a copy of the default group's sequence during
	// catalog construction.
	Sentences []string
}

// resolveTable maps every non-sentinel (age, gender) combination to a group
// code. Catalog construction verifies the table is total over the declared
// enumerations; a hole here is a programming error, not a runtime case.
var resolveTable = map[AgeBracket]map[GenderBracket]string{
	AgeTeens:    {GenderFemale: "f10", GenderMale: "m10"},
	AgeTwenties: {GenderFemale: "f20", GenderMale: "m20"},
	AgeThirties: {GenderFemale: "f30", GenderMale: "m30"},
	AgeForties:  {GenderFemale: "f40", GenderMale: "m40"},
}

// Resolve maps demographic brackets to a group code. It is pure, deterministic
// and total over the declared enumerations: the sentinels (and any value
// outside the enumerations, which ParseAgeBracket/ParseGenderBracket normalize
// to the sentinels) yield the default group code.
func Resolve(age AgeBracket, gender GenderBracket) string {
	if age == AgeGeneral || gender == GenderNone {
		return DefaultGroupCode
	}
	byGender, ok := resolveTable[age]
	if !ok {
		return DefaultGroupCode
	}
	code, ok := byGender[gender]
	if !ok {
		return DefaultGroupCode
	}
	return code
}

// ParseAgeBracket normalizes free-form input to a declared age bracket.
// Unknown values collapse to the general sentinel so resolution stays total.
func ParseAgeBracket(s string) AgeBracket {
	switch AgeBracket(s) {
	case AgeTeens, AgeTwenties, AgeThirties, AgeForties:
		return AgeBracket(s)
	default:
		return AgeGeneral
	}
}

// ParseGenderBracket normalizes free-form input to a declared gender bracket.
// Unknown values collapse to the no-preference sentinel.
func ParseGenderBracket(s string) GenderBracket {
	switch GenderBracket(s) {
	case GenderFemale, GenderMale:
		return GenderBracket(s)
	default:
		return GenderNone
	}
}

// Catalog is the immutable, load-time-built content table.
type Catalog struct {
	groups map[string]Group
}

// New builds the catalog from the static group definitions. Groups declared
// without bespoke sentences are filled with a by-value copy of the default
// group's sequence, so later divergence of one group cannot leak into another.
// New panics when the static tables are malformed (wrong programme length,
// missing default group, or a resolver hole); these are programming errors
// that should fail the process at startup, not surface at request time.
func New() *Catalog {
	defs := groupDefs()

	def, ok := defs[DefaultGroupCode]
	if !ok {
		panic("catalog: default group missing")
	}
	if len(def.Sentences) != ProgramLength {
		panic(fmt.Sprintf("catalog: default group has %d sentences, want %d", len(def.Sentences), ProgramLength))
	}

	groups := make(map[string]Group, len(defs))
	for code, g := range defs {
		if len(g.Sentences) == 0 {
			g.Sentences = append([]string(nil), def.Sentences...)
		}
		if len(g.Sentences) != ProgramLength {
			panic(fmt.Sprintf("catalog: group %s has %d sentences, want %d", code, len(g.Sentences), ProgramLength))
		}
		groups[code] = g
	}

	// Verify the resolver table is total and only names defined groups.
	for _, age := range []AgeBracket{AgeTeens, AgeTwenties, AgeThirties, AgeForties} {
		for _, gender := range []GenderBracket{GenderFemale, GenderMale} {
			code := Resolve(age, gender)
			if _, ok := groups[code]; !ok {
				panic(fmt.Sprintf("catalog: resolver maps (%s,%s) to undefined group %q", age, gender, code))
			}
		}
	}

	return &Catalog{groups: groups}
}

// Get returns the content at the 1-based dayIndex for the group, or ok=false
// when the group is unknown or the index falls outside [1, ProgramLength].
// Out-of-range access is an expected condition, never a panic.
func (c *Catalog) Get(groupCode string, dayIndex int) (string, bool) {
	g, ok := c.groups[groupCode]
	if !ok {
		return "", false
	}
	if dayIndex < 1 || dayIndex > len(g.Sentences) {
		return "", false
	}
	return g.Sentences[dayIndex-1], true
}

// Len returns the programme length for the group, or 0 for an unknown group.
func (c *Catalog) Len(groupCode string) int {
	g, ok := c.groups[groupCode]
	if !ok {
		return 0
	}
	return len(g.Sentences)
}

// Group returns the group definition for code.
func (c *Catalog) Group(code string) (Group, bool) {
	g, ok := c.groups[code]
	return g, ok
}

// Codes returns all defined group codes. Order is unspecified.
func (c *Catalog) Codes() []string {
	out := make([]string, 0, len(c.groups))
	for code := range c.groups {
		out = append(out, code)
	}
	return out
}

// label renders a human-readable group label from its bracket names.
func label(parts ...string) string {
	t := cases.Title(language.English)
	s := ""
	for i, p := range parts {
		if i > 0 {
			s += " "
		}
		s += t.String(p)
	}
	return s
}

// groupDefs declares the static group table. Only the default group and the
// twenties cohorts carry bespoke programmes today; the remaining groups are
// filled from the default sequence by New.
func groupDefs() map[string]Group {
	return map[string]Group{
		DefaultGroupCode: {
			Code:          DefaultGroupCode,
			Label:         label("everyone"),
			AgeBracket:    AgeGeneral,
			GenderBracket: GenderNone,
			Sentences:     baseProgram,
		},
		"f10": {Code: "f10", Label: label("teens", "female"), AgeBracket: AgeTeens, GenderBracket: GenderFemale},
		"m10": {Code: "m10", Label: label("teens", "male"), AgeBracket: AgeTeens, GenderBracket: GenderMale},
		"f20": {
			Code:          "f20",
			Label:         label("twenties", "female"),
			AgeBracket:    AgeTwenties,
			GenderBracket: GenderFemale,
			Sentences:     twentiesFemaleProgram,
		},
		"m20": {
			Code:          "m20",
			Label:         label("twenties", "male"),
			AgeBracket:    AgeTwenties,
			GenderBracket: GenderMale,
			Sentences:     twentiesMaleProgram,
		},
		"f30": {Code: "f30", Label: label("thirties", "female"), AgeBracket: AgeThirties, GenderBracket: GenderFemale},
		"m30": {Code: "m30", Label: label("thirties", "male"), AgeBracket: AgeThirties, GenderBracket: GenderMale},
		"f40": {Code: "f40", Label: label("forties", "female"), AgeBracket: AgeForties, GenderBracket: GenderFemale},
		"m40": {Code: "m40", Label: label("forties", "male"), AgeBracket: AgeForties, GenderBracket: GenderMale},
	}
}
