package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/cortexa-campus/campus-go/pkg/taxonomy"
)

// BlockchainClient is the sub-client for credential issuance, verification,
// and the Bologna Process extension operations. Obtain it via
// Client.Blockchain.
type BlockchainClient struct {
	c *Client
}

// IssueCredential records a new academic credential on the ledger. The
// platform assigns the credential id. Preconditions (student address and
// identity fields, graduation date) are the caller's responsibility; the
// SDK does not enforce them.
func (b *BlockchainClient) IssueCredential(ctx context.Context, student StudentData, credential CredentialData, frameworks []taxonomy.Framework) (*IssueResult, error) {
	if frameworks == nil {
		frameworks = []taxonomy.Framework{}
	}
	payload := map[string]any{
		"studentData":          student,
		"credentialData":       credential,
		"governanceFrameworks": frameworks,
	}
	var out IssueResult
	if err := b.c.do(ctx, http.MethodPost, "/blockchain/credentials/issue", payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// VerifyCredential checks a credential against the ledger, the compliance
// layer, and the document store.
func (b *BlockchainClient) VerifyCredential(ctx context.Context, credentialID int) (*VerifyResult, error) {
	var out VerifyResult
	path := "/blockchain/credentials/" + strconv.Itoa(credentialID) + "/verify"
	if err := b.c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// StudentCredentials lists the credentials held by a student address.
func (b *BlockchainClient) StudentCredentials(ctx context.Context, address string) ([]Credential, error) {
	var out struct {
		Credentials []Credential `json:"credentials"`
	}
	path := "/blockchain/students/" + url.PathEscape(address) + "/credentials"
	if err := b.c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out.Credentials, nil
}

// NetworkStatus fetches the ledger network state.
func (b *BlockchainClient) NetworkStatus(ctx context.Context) (*NetworkStatus, error) {
	var out NetworkStatus
	if err := b.c.do(ctx, http.MethodGet, "/blockchain/status", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// BolognaComplianceRequest is the payload for SetBolognaCompliance.
type BolognaComplianceRequest struct {
	CredentialID            int      `json:"credentialId"`
	EctsCredits             int      `json:"ectsCredits"`
	EqfLevel                int      `json:"eqfLevel"`
	DiplomaSupplementIssued bool     `json:"diplomaSupplementIssued"`
	LearningOutcomes        []string `json:"learningOutcomes"`
	QualityAssuranceAgency  string   `json:"qualityAssuranceAgency"`
	JointDegreeProgram      bool     `json:"jointDegreeProgram"`
	MobilityPartners        []string `json:"mobilityPartners"`
}

// SetBolognaCompliance attaches a Bologna Process compliance record to a
// credential. Derived fields (automatic recognition) are recomputed by the
// platform, not locally.
func (b *BlockchainClient) SetBolognaCompliance(ctx context.Context, req BolognaComplianceRequest) (*TxResult, error) {
	if req.LearningOutcomes == nil {
		req.LearningOutcomes = []string{}
	}
	if req.MobilityPartners == nil {
		req.MobilityPartners = []string{}
	}
	var out TxResult
	if err := b.c.do(ctx, http.MethodPost, "/blockchain/credentials/bologna/compliance", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// BolognaCompliance fetches the full Bologna record for a credential,
// including the server-derived automaticRecognition flag.
func (b *BlockchainClient) BolognaCompliance(ctx context.Context, credentialID int) (*BolognaCompliance, error) {
	var out BolognaCompliance
	path := "/blockchain/credentials/" + strconv.Itoa(credentialID) + "/bologna"
	if err := b.c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateEctsCredits replaces a credential's ECTS credit value. The result
// pairs the old and new values for audit purposes.
func (b *BlockchainClient) UpdateEctsCredits(ctx context.Context, credentialID, newEctsCredits int) (*EctsUpdateResult, error) {
	payload := map[string]any{
		"credentialId":   credentialID,
		"newEctsCredits": newEctsCredits,
	}
	var out EctsUpdateResult
	if err := b.c.do(ctx, http.MethodPut, "/blockchain/credentials/ects", payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CheckAutomaticRecognitionEligibility reports whether a credential
// qualifies for automatic recognition. Eligible equals the conjunction of
// the four returned criteria.
func (b *BlockchainClient) CheckAutomaticRecognitionEligibility(ctx context.Context, credentialID int) (*RecognitionEligibility, error) {
	var out RecognitionEligibility
	path := "/blockchain/credentials/" + strconv.Itoa(credentialID) + "/auto-recognition"
	if err := b.c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// StudentTotalEcts aggregates a student's ECTS credits across credentials.
// TotalEcts equals the sum over the returned list.
func (b *BlockchainClient) StudentTotalEcts(ctx context.Context, address string) (*StudentEcts, error) {
	var out StudentEcts
	path := "/blockchain/students/" + url.PathEscape(address) + "/ects-total"
	if err := b.c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CheckBolognaComplianceStatus produces a compliance report for a
// credential's Bologna record.
func (b *BlockchainClient) CheckBolognaComplianceStatus(ctx context.Context, credentialID int) (*ComplianceCheck, error) {
	var out ComplianceCheck
	path := "/blockchain/credentials/" + strconv.Itoa(credentialID) + "/bologna/compliance-check"
	if err := b.c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
