package catalog

import "testing"

func TestResolve_SentinelsYieldDefault(t *testing.T) {
	cases := []struct {
		age    AgeBracket
		gender GenderBracket
	}{
		{AgeGeneral, GenderFemale},
		{AgeGeneral, GenderNone},
		{AgeTwenties, GenderNone},
		{AgeGeneral, GenderMale},
	}
	for _, tc := range cases {
		if got := Resolve(tc.age, tc.gender); got != DefaultGroupCode {
			t.Fatalf("Resolve(%s,%s) = %q; want %q", tc.age, tc.gender, got, DefaultGroupCode)
		}
	}
}

func TestResolve_AllCohortPairs(t *testing.T) {
	want := map[[2]string]string{
		{"10s", "female"}: "f10",
		{"10s", "male"}:   "m10",
		{"20s", "female"}: "f20",
		{"20s", "male"}:   "m20",
		{"30s", "female"}: "f30",
		{"30s", "male"}:   "m30",
		{"40s", "female"}: "f40",
		{"40s", "male"}:   "m40",
	}
	for k, code := range want {
		got := Resolve(AgeBracket(k[0]), GenderBracket(k[1]))
		if got != code {
			t.Fatalf("Resolve(%s,%s) = %q; want %q", k[0], k[1], got, code)
		}
	}
}

func TestResolve_UnknownValuesNeverPanic(t *testing.T) {
	// Raw values outside the enumerations still resolve (to the default).
	if got := Resolve(AgeBracket("99s"), GenderFemale); got != DefaultGroupCode {
		t.Fatalf("unknown age: got %q", got)
	}
	if got := Resolve(AgeTwenties, GenderBracket("other")); got != DefaultGroupCode {
		t.Fatalf("unknown gender: got %q", got)
	}
}

func TestParseBrackets_CollapseToSentinels(t *testing.T) {
	if got := ParseAgeBracket("20s"); got != AgeTwenties {
		t.Fatalf("ParseAgeBracket(20s) = %q", got)
	}
	for _, raw := range []string{"", "teens", "50s", "general"} {
		if got := ParseAgeBracket(raw); got != AgeGeneral {
			t.Fatalf("ParseAgeBracket(%q) = %q; want general", raw, got)
		}
	}
	if got := ParseGenderBracket("male"); got != GenderMale {
		t.Fatalf("ParseGenderBracket(male) = %q", got)
	}
	for _, raw := range []string{"", "none", "x"} {
		if got := ParseGenderBracket(raw); got != GenderNone {
			t.Fatalf("ParseGenderBracket(%q) = %q; want none", raw, got)
		}
	}
}

func TestNew_FillsUnassignedGroupsFromDefault(t *testing.T) {
	c := New()

	// f30 has no bespoke programme; it must mirror the default sequence.
	for day := 1; day <= ProgramLength; day++ {
		base, ok1 := c.Get(DefaultGroupCode, day)
		filled, ok2 := c.Get("f30", day)
		if !ok1 || !ok2 {
			t.Fatalf("day %d missing (base=%v f30=%v)", day, ok1, ok2)
		}
		if base != filled {
			t.Fatalf("day %d: f30 diverges from base", day)
		}
	}

	// The twenties cohorts carry bespoke programmes.
	base1, _ := c.Get(DefaultGroupCode, 1)
	f20, _ := c.Get("f20", 1)
	m20, _ := c.Get("m20", 1)
	if f20 == base1 || m20 == base1 {
		t.Fatalf("bespoke programmes should differ from base on day 1")
	}
}

func TestNew_FillIsByValueCopy(t *testing.T) {
	c := New()
	g, ok := c.Group("m40")
	if !ok {
		t.Fatalf("group m40 missing")
	}
	// Mutating the returned slice must not leak into other groups.
	g.Sentences[0] = "mutated"
	if got, _ := c.Get(DefaultGroupCode, 1); got == "mutated" {
		t.Fatalf("mutation of a filled group leaked into the default group")
	}
	if got, _ := c.Get("f40", 1); got == "mutated" {
		t.Fatalf("mutation of a filled group leaked into a sibling group")
	}
}

func TestGet_Bounds(t *testing.T) {
	c := New()

	if _, ok := c.Get(DefaultGroupCode, 0); ok {
		t.Fatalf("day 0 should be out of bounds")
	}
	if _, ok := c.Get(DefaultGroupCode, ProgramLength+1); ok {
		t.Fatalf("day %d should be out of bounds", ProgramLength+1)
	}
	if _, ok := c.Get("nope", 1); ok {
		t.Fatalf("unknown group should miss")
	}
	if s, ok := c.Get(DefaultGroupCode, ProgramLength); !ok || s == "" {
		t.Fatalf("last day should resolve to non-empty content")
	}
}

func TestLenAndCodes(t *testing.T) {
	c := New()
	if got := c.Len(DefaultGroupCode); got != ProgramLength {
		t.Fatalf("Len(base) = %d; want %d", got, ProgramLength)
	}
	if got := c.Len("unknown"); got != 0 {
		t.Fatalf("Len(unknown) = %d; want 0", got)
	}
	if got := len(c.Codes()); got != 9 {
		t.Fatalf("Codes() has %d groups; want 9", got)
	}
}

func TestGroup_Labels(t *testing.T) {
	c := New()
	g, ok := c.Group("f20")
	if !ok {
		t.Fatalf("group f20 missing")
	}
	if g.Label != "Twenties Female" {
		t.Fatalf("f20 label = %q", g.Label)
	}
	if g.AgeBracket != AgeTwenties || g.GenderBracket != GenderFemale {
		t.Fatalf("f20 brackets = %s/%s", g.AgeBracket, g.GenderBracket)
	}
}
