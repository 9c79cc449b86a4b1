// Package taxonomy defines the closed domain enumerations used across the
// Cortexa Campus platform: persona types grouped into student, staff, and
// faculty categories, governance-framework identifiers with their static
// metadata, and the platform's process types.
//
// The enumerations are closed. Callers (UI population, validation, CLI
// display) must treat the category lists as fixed, non-overlapping sets;
// the three persona categories together cover the full enumeration.
package taxonomy

// PersonaType identifies the role a platform user acts under.
type PersonaType string

// Student personas.
const (
	PersonaProspectiveStudent   PersonaType = "prospective_student"
	PersonaUndergraduate        PersonaType = "undergraduate_student"
	PersonaGraduateStudent      PersonaType = "graduate_student"
	PersonaInternationalStudent PersonaType = "international_student"
	PersonaAlumni               PersonaType = "alumni"
)

// Staff personas.
const (
	PersonaAdmissionsOfficer   PersonaType = "admissions_officer"
	PersonaRegistrar           PersonaType = "registrar"
	PersonaFinancialAidAdvisor PersonaType = "financial_aid_advisor"
	PersonaLibrarian           PersonaType = "librarian"
	PersonaITSupport           PersonaType = "it_support"
)

// Faculty personas.
const (
	PersonaProfessor      PersonaType = "professor"
	PersonaLecturer       PersonaType = "lecturer"
	PersonaResearcher     PersonaType = "researcher"
	PersonaDepartmentHead PersonaType = "department_head"
	PersonaAcademicDean   PersonaType = "academic_dean"
)

// PersonaCategory groups persona types into one of three disjoint partitions.
type PersonaCategory string

const (
	CategoryStudent PersonaCategory = "student"
	CategoryStaff   PersonaCategory = "staff"
	CategoryFaculty PersonaCategory = "faculty"
)

var studentPersonas = []PersonaType{
	PersonaProspectiveStudent,
	PersonaUndergraduate,
	PersonaGraduateStudent,
	PersonaInternationalStudent,
	PersonaAlumni,
}

var staffPersonas = []PersonaType{
	PersonaAdmissionsOfficer,
	PersonaRegistrar,
	PersonaFinancialAidAdvisor,
	PersonaLibrarian,
	PersonaITSupport,
}

var facultyPersonas = []PersonaType{
	PersonaProfessor,
	PersonaLecturer,
	PersonaResearcher,
	PersonaDepartmentHead,
	PersonaAcademicDean,
}

// StudentPersonas returns the persona types in the student category.
// The returned slice is a copy; mutating it does not affect the taxonomy.
func StudentPersonas() []PersonaType {
	return clonePersonas(studentPersonas)
}

// StaffPersonas returns the persona types in the staff category.
func StaffPersonas() []PersonaType {
	return clonePersonas(staffPersonas)
}

// FacultyPersonas returns the persona types in the faculty category.
func FacultyPersonas() []PersonaType {
	return clonePersonas(facultyPersonas)
}

// AllPersonas returns the full persona enumeration: the concatenation of the
// student, staff, and faculty category lists.
func AllPersonas() []PersonaType {
	all := make([]PersonaType, 0, len(studentPersonas)+len(staffPersonas)+len(facultyPersonas))
	all = append(all, studentPersonas...)
	all = append(all, staffPersonas...)
	all = append(all, facultyPersonas...)
	return all
}

// CategoryOf returns the category a persona type belongs to.
// The second return value is false for tags outside the enumeration.
func CategoryOf(p PersonaType) (PersonaCategory, bool) {
	for _, s := range studentPersonas {
		if s == p {
			return CategoryStudent, true
		}
	}
	for _, s := range staffPersonas {
		if s == p {
			return CategoryStaff, true
		}
	}
	for _, s := range facultyPersonas {
		if s == p {
			return CategoryFaculty, true
		}
	}
	return "", false
}

func clonePersonas(src []PersonaType) []PersonaType {
	out := make([]PersonaType, len(src))
	copy(out, src)
	return out
}

// ProcessType identifies a platform workflow that agents and audits refer to.
type ProcessType string

const (
	ProcessAdmission          ProcessType = "admission"
	ProcessEnrollment         ProcessType = "enrollment"
	ProcessCourseRegistration ProcessType = "course_registration"
	ProcessGraduation         ProcessType = "graduation"
	ProcessCredentialIssuance ProcessType = "credential_issuance"
	ProcessComplianceAudit    ProcessType = "compliance_audit"
)

// Processes returns the closed process-type enumeration in its defined order.
func Processes() []ProcessType {
	return []ProcessType{
		ProcessAdmission,
		ProcessEnrollment,
		ProcessCourseRegistration,
		ProcessGraduation,
		ProcessCredentialIssuance,
		ProcessComplianceAudit,
	}
}
