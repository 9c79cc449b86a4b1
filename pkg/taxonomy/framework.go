package taxonomy

import "sort"

// Framework identifies a governance framework an institution operates under.
type Framework string

const (
	FrameworkBologna Framework = "bologna_process"
	FrameworkGDPR    Framework = "gdpr"
	FrameworkFERPA   Framework = "ferpa"
	FrameworkABET    Framework = "abet"
	FrameworkAACSB   Framework = "aacsb"
	FrameworkQAA     Framework = "qaa_uk"
)

// FrameworkInfo is the static descriptive record attached to a framework tag.
type FrameworkInfo struct {
	FullName  string   `json:"fullName"`
	Region    string   `json:"region"`
	Focus     string   `json:"focus"`
	Standards []string `json:"standards"`
}

// frameworkInfo is the fixed metadata table. Frameworks are never constructed
// dynamically; this table is the single source of truth for their records.
var frameworkInfo = map[Framework]FrameworkInfo{
	FrameworkBologna: {
		FullName:  "Bologna Process",
		Region:    "European Higher Education Area",
		Focus:     "Degree comparability, credit transfer, and mutual recognition",
		Standards: []string{"ECTS", "EQF levels 1-8", "Diploma Supplement", "Three-cycle degree structure"},
	},
	FrameworkGDPR: {
		FullName:  "General Data Protection Regulation",
		Region:    "European Union",
		Focus:     "Personal data protection and privacy",
		Standards: []string{"Lawful basis for processing", "Data subject rights", "Breach notification", "Privacy by design"},
	},
	FrameworkFERPA: {
		FullName:  "Family Educational Rights and Privacy Act",
		Region:    "United States",
		Focus:     "Student education-record privacy",
		Standards: []string{"Record access rights", "Consent for disclosure", "Directory information rules"},
	},
	FrameworkABET: {
		FullName:  "Accreditation Board for Engineering and Technology",
		Region:    "United States / International",
		Focus:     "Engineering and computing program accreditation",
		Standards: []string{"Student outcomes", "Curriculum criteria", "Continuous improvement"},
	},
	FrameworkAACSB: {
		FullName:  "Association to Advance Collegiate Schools of Business",
		Region:    "Global",
		Focus:     "Business school accreditation",
		Standards: []string{"Strategic management", "Learner success", "Thought leadership"},
	},
	FrameworkQAA: {
		FullName:  "Quality Assurance Agency for Higher Education",
		Region:    "United Kingdom",
		Focus:     "Academic quality and standards",
		Standards: []string{"UK Quality Code", "Subject benchmark statements", "Degree outcomes"},
	},
}

// unknownFramework is returned for tags outside the table. Lookup never fails:
// an unrecognised tag yields this placeholder rather than an error.
var unknownFramework = FrameworkInfo{
	FullName:  "Unknown Framework",
	Region:    "Unknown",
	Focus:     "Unspecified",
	Standards: []string{},
}

// Info returns the descriptive record for a framework tag. Unknown tags
// return a defined placeholder record.
func Info(f Framework) FrameworkInfo {
	if info, ok := frameworkInfo[f]; ok {
		return info
	}
	return unknownFramework
}

// Known reports whether f appears in the framework table.
func Known(f Framework) bool {
	_, ok := frameworkInfo[f]
	return ok
}

// Frameworks returns the framework tags in alphabetical order.
func Frameworks() []Framework {
	out := make([]Framework, 0, len(frameworkInfo))
	for f := range frameworkInfo {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
