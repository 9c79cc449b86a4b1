package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// GovernanceClient is the sub-client for compliance auditing. Obtain it via
// Client.Governance.
type GovernanceClient struct {
	c *Client
}

// CreateAudit records a compliance audit for an institution under a
// framework. Status is constrained to the AuditStatus values; the platform
// rejects anything else.
func (g *GovernanceClient) CreateAudit(ctx context.Context, institution, framework string, data AuditData) (*AuditResult, error) {
	if data.Findings == nil {
		data.Findings = []string{}
	}
	if data.Recommendations == nil {
		data.Recommendations = []string{}
	}
	payload := map[string]any{
		"institution": institution,
		"framework":   framework,
		"auditData":   data,
	}
	var out AuditResult
	if err := g.c.do(ctx, http.MethodPost, "/governance/audits", payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ComplianceStatus reports an institution's standing under one framework,
// with a per-area breakdown.
func (g *GovernanceClient) ComplianceStatus(ctx context.Context, institution, framework string) (*ComplianceStatus, error) {
	var out ComplianceStatus
	path := "/governance/compliance/" + url.PathEscape(institution) + "/" + url.PathEscape(framework)
	if err := g.c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpcomingAudits lists audits scheduled within daysAhead days. Zero or
// negative values fall back to the 30-day default horizon.
func (g *GovernanceClient) UpcomingAudits(ctx context.Context, daysAhead int) ([]UpcomingAudit, error) {
	if daysAhead <= 0 {
		daysAhead = 30
	}
	var out struct {
		Audits []UpcomingAudit `json:"audits"`
	}
	path := "/governance/audits/upcoming?days=" + strconv.Itoa(daysAhead)
	if err := g.c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out.Audits, nil
}

// ComplianceSummary aggregates an institution's compliance rate, its
// per-framework breakdown, and recent audit history.
func (g *GovernanceClient) ComplianceSummary(ctx context.Context, institution string) (*ComplianceSummary, error) {
	var out ComplianceSummary
	path := "/governance/compliance/" + url.PathEscape(institution) + "/summary"
	if err := g.c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
