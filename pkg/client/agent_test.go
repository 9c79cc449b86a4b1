package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/cortexa-campus/campus-go/pkg/client"
	"github.com/cortexa-campus/campus-go/pkg/taxonomy"
)

// ── Memoization ─────────────────────────────────────────────────────────

func TestAgent_sameTypeSameInstance(t *testing.T) {
	c := client.New()

	a1 := c.Agent("academic_advisor")
	a2 := c.Agent("academic_advisor")
	if a1 != a2 {
		t.Error("same agent type must return the same instance")
	}

	b := c.Agent("admissions")
	if a1 == b {
		t.Error("different agent types must return distinct instances")
	}
	if b.Type() != "admissions" {
		t.Errorf("unexpected agent type: %s", b.Type())
	}
}

func TestAgent_concurrentFirstAccess(t *testing.T) {
	c := client.New()

	const goroutines = 32
	results := make([]*client.AgentClient, goroutines)
	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func(i int) {
			defer wg.Done()
			results[i] = c.Agent("academic_advisor")
		}(i)
	}
	wg.Wait()

	for i := 1; i < goroutines; i++ {
		if results[i] != results[0] {
			t.Fatal("concurrent first access must converge on one instance")
		}
	}
}

// ── Query ───────────────────────────────────────────────────────────────

func TestQuery_passesThroughResponse(t *testing.T) {
	var gotPayload map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/agents/academic_advisor/query" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		json.NewDecoder(r.Body).Decode(&gotPayload)
		json.NewEncoder(w).Encode(map[string]any{
			"success":       true,
			"finalResponse": "Take CS301 and CS350 next semester.",
			"confidence":    0.82,
			"reasoningTrace": []map[string]any{
				{"observation": "student is in year 2", "reasoning": "prerequisites met", "actionPlan": "recommend core courses"},
			},
			"collaboratingAgents": []string{"registrar_agent"},
			"recommendations":     []string{"Register before June 1"},
		})
	}))
	defer srv.Close()

	c := client.New(client.WithBaseURL(srv.URL))
	resp, err := c.Agent("academic_advisor").Query(context.Background(), client.QueryRequest{
		Message:  "Help me choose courses",
		UserID:   "u-17",
		UserType: taxonomy.PersonaUndergraduate,
	})
	if err != nil {
		t.Fatalf("Query: %v", err)
	}

	if resp.Confidence != 0.82 {
		t.Errorf("confidence must pass through unchanged: %v", resp.Confidence)
	}
	if resp.FinalResponse != "Take CS301 and CS350 next semester." {
		t.Errorf("unexpected response: %s", resp.FinalResponse)
	}
	if len(resp.ReasoningTrace) != 1 {
		t.Errorf("unexpected reasoning trace: %v", resp.ReasoningTrace)
	}
	if len(resp.CollaboratingAgents) != 1 || resp.CollaboratingAgents[0] != "registrar_agent" {
		t.Errorf("unexpected collaborators: %v", resp.CollaboratingAgents)
	}

	if gotPayload["message"] != "Help me choose courses" {
		t.Errorf("unexpected message: %v", gotPayload["message"])
	}
	if gotPayload["userType"] != "undergraduate_student" {
		t.Errorf("unexpected userType: %v", gotPayload["userType"])
	}
	if gotPayload["agentType"] != "academic_advisor" {
		t.Errorf("unexpected agentType: %v", gotPayload["agentType"])
	}
}

func TestQuery_collaborativeDefaultsTrue(t *testing.T) {
	var gotPayload map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&gotPayload)
		json.NewEncoder(w).Encode(map[string]any{"success": true})
	}))
	defer srv.Close()

	c := client.New(client.WithBaseURL(srv.URL))
	agent := c.Agent("admissions")

	if _, err := agent.Query(context.Background(), client.QueryRequest{Message: "hi"}); err != nil {
		t.Fatalf("Query: %v", err)
	}
	if gotPayload["collaborative"] != true {
		t.Errorf("collaborative must default to true, got %v", gotPayload["collaborative"])
	}
	if ctxField, ok := gotPayload["context"].(map[string]any); !ok || len(ctxField) != 0 {
		t.Errorf("nil context must be sent as {}, got %v", gotPayload["context"])
	}

	if _, err := agent.Query(context.Background(), client.QueryRequest{
		Message:       "hi",
		Collaborative: client.Bool(false),
	}); err != nil {
		t.Fatalf("Query: %v", err)
	}
	if gotPayload["collaborative"] != false {
		t.Errorf("explicit false must be honored, got %v", gotPayload["collaborative"])
	}
}

// ── Info / knowledge base ───────────────────────────────────────────────

func TestInfo_success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/agents/registrar_agent/info" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"name":              "Registrar Agent",
			"description":       "Handles enrollment and records",
			"capabilities":      []string{"enrollment", "transcripts"},
			"supportedPersonas": []string{"undergraduate_student", "registrar"},
		})
	}))
	defer srv.Close()

	c := client.New(client.WithBaseURL(srv.URL))
	info, err := c.Agent("registrar_agent").Info(context.Background())
	if err != nil {
		t.Fatalf("Info: %v", err)
	}
	if info.Name != "Registrar Agent" {
		t.Errorf("unexpected name: %s", info.Name)
	}
	if len(info.Capabilities) != 2 {
		t.Errorf("unexpected capabilities: %v", info.Capabilities)
	}
}

func TestUpdateKnowledgeBase_success(t *testing.T) {
	var gotKnowledge map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/agents/admissions/knowledge" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		json.NewDecoder(r.Body).Decode(&gotKnowledge)
		json.NewEncoder(w).Encode(map[string]any{"success": true})
	}))
	defer srv.Close()

	c := client.New(client.WithBaseURL(srv.URL))
	ok, err := c.Agent("admissions").UpdateKnowledgeBase(context.Background(), map[string]any{
		"deadline": "2026-01-15",
	})
	if err != nil {
		t.Fatalf("UpdateKnowledgeBase: %v", err)
	}
	if !ok {
		t.Error("expected acceptance")
	}
	if gotKnowledge["deadline"] != "2026-01-15" {
		t.Errorf("unexpected knowledge payload: %v", gotKnowledge)
	}
}
