package client

import "time"

// UniversityContext is the descriptive snapshot of the institution served by
// GET /university/context. Read-only; produced entirely by the platform.
type UniversityContext struct {
	Name                 string   `json:"name"`
	Founded              string   `json:"founded"`
	Location             string   `json:"location"`
	Accreditation        []string `json:"accreditation"`
	Students             int      `json:"students"`
	Faculty              int      `json:"faculty"`
	Staff                int      `json:"staff"`
	Departments          []string `json:"departments"`
	Programs             []string `json:"programs"`
	GovernanceFrameworks []string `json:"governanceFrameworks"`
}

// HealthStatus is the platform health probe result.
type HealthStatus struct {
	Status   string            `json:"status"`
	Version  string            `json:"version"`
	Services map[string]string `json:"services"`
}

// ReasoningStep is one entry of an agent's reasoning trace.
type ReasoningStep struct {
	Observation string    `json:"observation"`
	Reasoning   string    `json:"reasoning"`
	ActionPlan  string    `json:"actionPlan"`
	Timestamp   time.Time `json:"timestamp"`
}

// ActionStep is one entry of an agent's action trace. Input and Output are
// arbitrary payloads defined by the remote agent.
type ActionStep struct {
	Action    string    `json:"action"`
	Input     any       `json:"input"`
	Output    any       `json:"output"`
	Timestamp time.Time `json:"timestamp"`
}

// AgentResponse is the full result of an agent query. It is produced
// entirely by the reasoning service; the SDK deserializes it and returns it
// unchanged, without validating its internal consistency.
type AgentResponse struct {
	Success             bool            `json:"success"`
	ReasoningTrace      []ReasoningStep `json:"reasoningTrace"`
	ActionTrace         []ActionStep    `json:"actionTrace"`
	FinalResponse       string          `json:"finalResponse"`
	Confidence          float64         `json:"confidence"`
	CollaboratingAgents []string        `json:"collaboratingAgents,omitempty"`
	Recommendations     []string        `json:"recommendations,omitempty"`
}

// AgentInfo describes a deployed agent.
type AgentInfo struct {
	Name              string   `json:"name"`
	Description       string   `json:"description"`
	Capabilities      []string `json:"capabilities"`
	SupportedPersonas []string `json:"supportedPersonas"`
}

// Credential is an issued academic credential. Created server-side by
// IssueCredential (which assigns the id), read by verification and listing
// operations, never mutated by this layer.
type Credential struct {
	ID                   int      `json:"id"`
	StudentAddress       string   `json:"studentAddress"`
	Title                string   `json:"title"`
	Program              string   `json:"program"`
	Degree               string   `json:"degree"`
	Grade                string   `json:"grade"`
	IssueDate            string   `json:"issueDate"`
	GovernanceFrameworks []string `json:"governanceFrameworks"`
}

// StudentData identifies the credential subject. The platform requires an
// address and identity fields; the SDK forwards them without validation.
type StudentData struct {
	Address   string `json:"address"`
	Name      string `json:"name"`
	Email     string `json:"email,omitempty"`
	StudentID string `json:"studentId,omitempty"`
}

// CredentialData describes the credential to issue. The platform requires a
// graduation date and descriptive fields.
type CredentialData struct {
	Title          string `json:"title"`
	Program        string `json:"program"`
	Degree         string `json:"degree,omitempty"`
	Grade          string `json:"grade,omitempty"`
	GraduationDate string `json:"graduationDate"`
}

// IssueResult is the outcome of a credential issuance.
type IssueResult struct {
	Success         bool   `json:"success"`
	CredentialID    int    `json:"credentialId"`
	TransactionHash string `json:"transactionHash"`
	GasUsed         int64  `json:"gasUsed"`
}

// VerificationDetail reports which layers confirmed a credential.
type VerificationDetail struct {
	LedgerVerified          bool `json:"ledgerVerified"`
	ComplianceVerified      bool `json:"complianceVerified"`
	DocumentStoreAccessible bool `json:"documentStoreAccessible"`
}

// VerifyResult is the outcome of a credential verification.
type VerifyResult struct {
	Valid        bool               `json:"valid"`
	Credential   Credential         `json:"credential"`
	Verification VerificationDetail `json:"verification"`
}

// NetworkStatus is a projection of the ledger network state.
type NetworkStatus struct {
	Connected   bool   `json:"connected"`
	Network     string `json:"network"`
	BlockHeight int64  `json:"blockHeight"`
	PeerCount   int    `json:"peerCount"`
	GasPrice    string `json:"gasPrice"`
}

// BolognaCompliance is the Bologna Process extension record attached to a
// credential. AutomaticRecognition is derived by the platform, never locally.
type BolognaCompliance struct {
	CredentialID            int      `json:"credentialId"`
	EctsCredits             int      `json:"ectsCredits"`
	EqfLevel                int      `json:"eqfLevel"`
	DiplomaSupplementIssued bool     `json:"diplomaSupplementIssued"`
	LearningOutcomes        []string `json:"learningOutcomes"`
	QualityAssuranceAgency  string   `json:"qualityAssuranceAgency"`
	JointDegreeProgram      bool     `json:"jointDegreeProgram"`
	MobilityPartners        []string `json:"mobilityPartners"`
	AutomaticRecognition    bool     `json:"automaticRecognition"`
}

// TxResult is the outcome of a state-changing ledger operation.
type TxResult struct {
	Success         bool   `json:"success"`
	TransactionHash string `json:"transactionHash"`
	GasUsed         int64  `json:"gasUsed"`
}

// EctsUpdateResult pairs the old and new credit values of an ECTS update.
// The pairing is mandatory for audit purposes.
type EctsUpdateResult struct {
	Success         bool   `json:"success"`
	TransactionHash string `json:"transactionHash"`
	OldCredits      int    `json:"oldCredits"`
	NewCredits      int    `json:"newCredits"`
}

// RecognitionCriteria are the four conditions for automatic recognition.
type RecognitionCriteria struct {
	HasEctsCredits              bool `json:"hasEctsCredits"`
	ValidEqfLevel               bool `json:"validEqfLevel"`
	HasQualityAssurance         bool `json:"hasQualityAssurance"`
	AutomaticRecognitionEnabled bool `json:"automaticRecognitionEnabled"`
}

// RecognitionEligibility reports automatic-recognition eligibility.
// Eligible equals the logical AND of all four criteria.
type RecognitionEligibility struct {
	Eligible bool                `json:"eligible"`
	Criteria RecognitionCriteria `json:"criteria"`
}

// EctsCredential is one line of a student's ECTS statement.
type EctsCredential struct {
	CredentialID int    `json:"credentialId"`
	Title        string `json:"title"`
	EctsCredits  int    `json:"ectsCredits"`
}

// StudentEcts aggregates a student's ECTS credits. TotalEcts equals the sum
// of EctsCredits over Credentials.
type StudentEcts struct {
	TotalEcts   int              `json:"totalEcts"`
	Credentials []EctsCredential `json:"credentials"`
}

// ComplianceCheck is a Bologna compliance report for one credential.
type ComplianceCheck struct {
	Compliant       bool     `json:"compliant"`
	Report          string   `json:"report"`
	Issues          []string `json:"issues"`
	Recommendations []string `json:"recommendations"`
}

// AuditStatus is the compliance verdict of an audit area.
type AuditStatus string

const (
	AuditCompliant    AuditStatus = "compliant"
	AuditNonCompliant AuditStatus = "non_compliant"
	AuditUnderReview  AuditStatus = "under_review"
)

// AuditData describes one audit finding set.
type AuditData struct {
	Area            string      `json:"area"`
	Status          AuditStatus `json:"status"`
	Findings        []string    `json:"findings"`
	Recommendations []string    `json:"recommendations"`
	NextReviewDate  string      `json:"nextReviewDate"`
}

// AuditResult is the outcome of recording an audit.
type AuditResult struct {
	Success         bool   `json:"success"`
	AuditID         int    `json:"auditId"`
	TransactionHash string `json:"transactionHash"`
}

// AreaStatus is the per-area entry of a compliance status report.
type AreaStatus struct {
	Area         string      `json:"area"`
	Status       AuditStatus `json:"status"`
	LastReviewed string      `json:"lastReviewed"`
}

// ComplianceStatus reports an institution's standing under one framework.
type ComplianceStatus struct {
	Institution   string       `json:"institution"`
	Framework     string       `json:"framework"`
	OverallStatus AuditStatus  `json:"overallStatus"`
	Areas         []AreaStatus `json:"areas"`
}

// UpcomingAudit is one scheduled audit within the query horizon.
type UpcomingAudit struct {
	ID            int         `json:"id"`
	Institution   string      `json:"institution"`
	Framework     string      `json:"framework"`
	Area          string      `json:"area"`
	ScheduledDate string      `json:"scheduledDate"`
	Status        AuditStatus `json:"status"`
}

// FrameworkSummary is the per-framework entry of a compliance summary.
type FrameworkSummary struct {
	Status        AuditStatus `json:"status"`
	Rate          float64     `json:"rate"`
	LastAuditDate string      `json:"lastAuditDate"`
	NextAuditDate string      `json:"nextAuditDate"`
}

// RecentAudit is one entry of a compliance summary's audit history.
type RecentAudit struct {
	ID        int         `json:"id"`
	Framework string      `json:"framework"`
	Area      string      `json:"area"`
	Date      string      `json:"date"`
	Status    AuditStatus `json:"status"`
}

// ComplianceSummary aggregates an institution's compliance posture.
type ComplianceSummary struct {
	Institution    string                      `json:"institution"`
	ComplianceRate float64                     `json:"complianceRate"`
	Frameworks     map[string]FrameworkSummary `json:"frameworks"`
	RecentAudits   []RecentAudit               `json:"recentAudits"`
}

// Bool returns a pointer to v, for optional boolean request fields.
func Bool(v bool) *bool { return &v }
