package taxonomy_test

import (
	"testing"

	"github.com/cortexa-campus/campus-go/pkg/taxonomy"
)

func TestPersonaCategories_disjoint(t *testing.T) {
	seen := map[taxonomy.PersonaType]string{}
	categories := map[string][]taxonomy.PersonaType{
		"student": taxonomy.StudentPersonas(),
		"staff":   taxonomy.StaffPersonas(),
		"faculty": taxonomy.FacultyPersonas(),
	}
	for name, personas := range categories {
		for _, p := range personas {
			if prev, ok := seen[p]; ok {
				t.Errorf("persona %q appears in both %s and %s", p, prev, name)
			}
			seen[p] = name
		}
	}
}

func TestPersonaCategories_unionCoversAll(t *testing.T) {
	all := taxonomy.AllPersonas()
	want := len(taxonomy.StudentPersonas()) + len(taxonomy.StaffPersonas()) + len(taxonomy.FacultyPersonas())
	if len(all) != want {
		t.Fatalf("AllPersonas has %d entries, categories sum to %d", len(all), want)
	}
	for _, p := range all {
		if _, ok := taxonomy.CategoryOf(p); !ok {
			t.Errorf("persona %q has no category", p)
		}
	}
}

func TestCategoryOf(t *testing.T) {
	cases := []struct {
		persona  taxonomy.PersonaType
		category taxonomy.PersonaCategory
	}{
		{taxonomy.PersonaUndergraduate, taxonomy.CategoryStudent},
		{taxonomy.PersonaAlumni, taxonomy.CategoryStudent},
		{taxonomy.PersonaRegistrar, taxonomy.CategoryStaff},
		{taxonomy.PersonaProfessor, taxonomy.CategoryFaculty},
		{taxonomy.PersonaAcademicDean, taxonomy.CategoryFaculty},
	}
	for _, tc := range cases {
		got, ok := taxonomy.CategoryOf(tc.persona)
		if !ok {
			t.Errorf("CategoryOf(%q): not found", tc.persona)
			continue
		}
		if got != tc.category {
			t.Errorf("CategoryOf(%q) = %q, want %q", tc.persona, got, tc.category)
		}
	}

	if _, ok := taxonomy.CategoryOf("janitor"); ok {
		t.Error("expected no category for unknown persona")
	}
}

func TestCategoryLists_returnCopies(t *testing.T) {
	first := taxonomy.StudentPersonas()
	first[0] = "mutated"
	second := taxonomy.StudentPersonas()
	if second[0] == "mutated" {
		t.Error("mutating a returned slice must not affect the taxonomy")
	}
}

func TestFrameworkInfo_knownAndUnknown(t *testing.T) {
	info := taxonomy.Info(taxonomy.FrameworkBologna)
	if info.FullName != "Bologna Process" {
		t.Errorf("unexpected full name: %s", info.FullName)
	}
	if len(info.Standards) == 0 {
		t.Error("expected standards for bologna_process")
	}
	if !taxonomy.Known(taxonomy.FrameworkBologna) {
		t.Error("bologna_process must be known")
	}

	// Lookup never fails: unknown tags get the placeholder record.
	unknown := taxonomy.Info("iso_9001")
	if unknown.FullName != "Unknown Framework" {
		t.Errorf("unexpected placeholder: %+v", unknown)
	}
	if taxonomy.Known("iso_9001") {
		t.Error("iso_9001 must not be known")
	}
}

func TestFrameworks_sortedAndComplete(t *testing.T) {
	frameworks := taxonomy.Frameworks()
	if len(frameworks) != 6 {
		t.Fatalf("expected 6 frameworks, got %d", len(frameworks))
	}
	for i := 1; i < len(frameworks); i++ {
		if frameworks[i-1] >= frameworks[i] {
			t.Errorf("frameworks not sorted: %q before %q", frameworks[i-1], frameworks[i])
		}
	}
	for _, f := range frameworks {
		if !taxonomy.Known(f) {
			t.Errorf("listed framework %q not known", f)
		}
	}
}

func TestProcesses_closedEnumeration(t *testing.T) {
	procs := taxonomy.Processes()
	if len(procs) != 6 {
		t.Fatalf("expected 6 process types, got %d", len(procs))
	}
	if procs[0] != taxonomy.ProcessAdmission {
		t.Errorf("unexpected first process: %s", procs[0])
	}
	if procs[len(procs)-1] != taxonomy.ProcessComplianceAudit {
		t.Errorf("unexpected last process: %s", procs[len(procs)-1])
	}
}
