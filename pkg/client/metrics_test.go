package client

import "testing"

func TestRouteLabel(t *testing.T) {
	cases := []struct {
		path string
		want string
	}{
		{"/health", "/health"},
		{"/university/context", "/university/context"},
		{"/agents/academic_advisor/query", "/agents/:type/query"},
		{"/agents/registrar_agent/info", "/agents/:type/info"},
		{"/blockchain/credentials/42/verify", "/blockchain/credentials/:id/verify"},
		{"/blockchain/students/0x1234abcd/credentials", "/blockchain/students/:id/credentials"},
		{"/blockchain/students/stu-99/ects-total", "/blockchain/students/:id/ects-total"},
		{"/governance/audits/upcoming?days=30", "/governance/audits/upcoming"},
		{"/governance/compliance/mit/summary", "/governance/compliance/:id/summary"},
		{"/governance/compliance/mit/gdpr", "/governance/compliance/:id/gdpr"},
		{"/blockchain/credentials/42/bologna/compliance-check", "/blockchain/credentials/:id/bologna/compliance-check"},
	}
	for _, tc := range cases {
		if got := routeLabel(tc.path); got != tc.want {
			t.Errorf("routeLabel(%q) = %q, want %q", tc.path, got, tc.want)
		}
	}
}
