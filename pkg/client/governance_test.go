package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cortexa-campus/campus-go/pkg/client"
)

// ── Audits ──────────────────────────────────────────────────────────────

func TestCreateAudit_success(t *testing.T) {
	var gotPayload map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/governance/audits" || r.Method != http.MethodPost {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		json.NewDecoder(r.Body).Decode(&gotPayload)
		json.NewEncoder(w).Encode(map[string]any{
			"success":         true,
			"auditId":         7,
			"transactionHash": "0xa0d1",
		})
	}))
	defer srv.Close()

	c := client.New(client.WithBaseURL(srv.URL))
	result, err := c.Governance().CreateAudit(context.Background(), "cortexa-university", "gdpr", client.AuditData{
		Area:           "data_retention",
		Status:         client.AuditUnderReview,
		Findings:       []string{"retention policy outdated"},
		NextReviewDate: "2026-11-01",
	})
	if err != nil {
		t.Fatalf("CreateAudit: %v", err)
	}
	if result.AuditID != 7 {
		t.Errorf("unexpected audit id: %d", result.AuditID)
	}

	if gotPayload["institution"] != "cortexa-university" {
		t.Errorf("unexpected institution: %v", gotPayload["institution"])
	}
	if gotPayload["framework"] != "gdpr" {
		t.Errorf("unexpected framework: %v", gotPayload["framework"])
	}
	auditData, ok := gotPayload["auditData"].(map[string]any)
	if !ok {
		t.Fatalf("auditData missing: %v", gotPayload)
	}
	if auditData["status"] != "under_review" {
		t.Errorf("unexpected status: %v", auditData["status"])
	}
	// Nil recommendations must serialize as [], not null.
	if recs, ok := auditData["recommendations"].([]any); !ok || len(recs) != 0 {
		t.Errorf("expected empty recommendations array, got %v", auditData["recommendations"])
	}
}

func TestUpcomingAudits_daysParameter(t *testing.T) {
	var gotDays string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotDays = r.URL.Query().Get("days")
		json.NewEncoder(w).Encode(map[string]any{
			"audits": []map[string]any{
				{"id": 1, "institution": "cortexa-university", "framework": "gdpr", "area": "consent", "scheduledDate": "2026-09-10", "status": "under_review"},
			},
		})
	}))
	defer srv.Close()

	c := client.New(client.WithBaseURL(srv.URL))
	g := c.Governance()

	audits, err := g.UpcomingAudits(context.Background(), 14)
	if err != nil {
		t.Fatalf("UpcomingAudits: %v", err)
	}
	if gotDays != "14" {
		t.Errorf("unexpected days param: %q", gotDays)
	}
	if len(audits) != 1 || audits[0].Framework != "gdpr" {
		t.Errorf("unexpected audits: %+v", audits)
	}

	// Zero and negative horizons fall back to the 30-day default.
	if _, err := g.UpcomingAudits(context.Background(), 0); err != nil {
		t.Fatalf("UpcomingAudits: %v", err)
	}
	if gotDays != "30" {
		t.Errorf("expected default horizon 30, got %q", gotDays)
	}
}

// ── Compliance ──────────────────────────────────────────────────────────

func TestComplianceStatus_success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/governance/compliance/cortexa-university/bologna_process" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"institution":   "cortexa-university",
			"framework":     "bologna_process",
			"overallStatus": "compliant",
			"areas": []map[string]any{
				{"area": "ects_allocation", "status": "compliant", "lastReviewed": "2026-02-01"},
				{"area": "diploma_supplement", "status": "under_review", "lastReviewed": "2025-11-12"},
			},
		})
	}))
	defer srv.Close()

	c := client.New(client.WithBaseURL(srv.URL))
	cs, err := c.Governance().ComplianceStatus(context.Background(), "cortexa-university", "bologna_process")
	if err != nil {
		t.Fatalf("ComplianceStatus: %v", err)
	}
	if cs.OverallStatus != client.AuditCompliant {
		t.Errorf("unexpected overall status: %s", cs.OverallStatus)
	}
	if len(cs.Areas) != 2 {
		t.Fatalf("expected 2 areas, got %d", len(cs.Areas))
	}
	if cs.Areas[1].Status != client.AuditUnderReview {
		t.Errorf("unexpected area status: %s", cs.Areas[1].Status)
	}
}

func TestComplianceSummary_success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/governance/compliance/cortexa-university/summary" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"institution":    "cortexa-university",
			"complianceRate": 0.93,
			"frameworks": map[string]any{
				"gdpr":            map[string]any{"status": "compliant", "rate": 0.97, "lastAuditDate": "2026-03-01", "nextAuditDate": "2027-03-01"},
				"bologna_process": map[string]any{"status": "under_review", "rate": 0.88, "lastAuditDate": "2026-01-15", "nextAuditDate": "2026-10-15"},
			},
			"recentAudits": []map[string]any{
				{"id": 7, "framework": "gdpr", "area": "data_retention", "date": "2026-03-01", "status": "compliant"},
			},
		})
	}))
	defer srv.Close()

	c := client.New(client.WithBaseURL(srv.URL))
	s, err := c.Governance().ComplianceSummary(context.Background(), "cortexa-university")
	if err != nil {
		t.Fatalf("ComplianceSummary: %v", err)
	}
	if s.ComplianceRate != 0.93 {
		t.Errorf("unexpected compliance rate: %v", s.ComplianceRate)
	}
	if s.Frameworks["gdpr"].Rate != 0.97 {
		t.Errorf("unexpected gdpr rate: %v", s.Frameworks["gdpr"])
	}
	if len(s.RecentAudits) != 1 || s.RecentAudits[0].ID != 7 {
		t.Errorf("unexpected recent audits: %+v", s.RecentAudits)
	}
}

func TestComplianceStatus_escapesPathSegments(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		json.NewEncoder(w).Encode(map[string]any{"institution": "x"})
	}))
	defer srv.Close()

	c := client.New(client.WithBaseURL(srv.URL))
	if _, err := c.Governance().ComplianceStatus(context.Background(), "a/b", "gdpr"); err != nil {
		t.Fatalf("ComplianceStatus: %v", err)
	}
	if gotPath != "/governance/compliance/a%2Fb/gdpr" {
		t.Errorf("institution not escaped: %s", gotPath)
	}
}
