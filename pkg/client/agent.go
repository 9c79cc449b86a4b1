package client

import (
	"context"
	"net/http"

	"github.com/cortexa-campus/campus-go/pkg/taxonomy"
)

// AgentClient is the sub-client for one deployed agent type. Obtain it via
// Client.Agent; all instances share the owning client's transport.
type AgentClient struct {
	c         *Client
	agentType string
}

// Agent returns the sub-client for agentType, creating and memoizing it on
// first access. The same agentType always yields the same instance;
// first insertion is serialized so concurrent first access converges on
// exactly one stored instance.
func (c *Client) Agent(agentType string) *AgentClient {
	if c == nil {
		return &AgentClient{agentType: agentType}
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.agents == nil {
		c.agents = make(map[string]*AgentClient)
	}
	a, ok := c.agents[agentType]
	if !ok {
		a = &AgentClient{c: c, agentType: agentType}
		c.agents[agentType] = a
	}
	return a
}

// Type returns the agent type this sub-client is bound to.
func (a *AgentClient) Type() string {
	return a.agentType
}

// QueryRequest is the payload for an agent query. Message content is not
// validated locally; the platform is authoritative, and an empty message is
// forwarded as-is.
type QueryRequest struct {
	Message string
	// Context carries arbitrary conversational context. Nil is sent as {}.
	Context map[string]any
	UserID  string
	// UserType is the persona the query is issued under.
	UserType taxonomy.PersonaType
	// Collaborative controls multi-agent collaboration. Nil defaults to true.
	Collaborative *bool
}

// Query posts a message to the agent and returns its response unchanged
// from the remote payload.
func (a *AgentClient) Query(ctx context.Context, req QueryRequest) (*AgentResponse, error) {
	queryCtx := req.Context
	if queryCtx == nil {
		queryCtx = map[string]any{}
	}
	collaborative := true
	if req.Collaborative != nil {
		collaborative = *req.Collaborative
	}

	payload := map[string]any{
		"message":       req.Message,
		"context":       queryCtx,
		"userId":        req.UserID,
		"userType":      req.UserType,
		"collaborative": collaborative,
		"agentType":     a.agentType,
	}

	var out AgentResponse
	if err := a.c.do(ctx, http.MethodPost, "/agents/"+a.agentType+"/query", payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Info fetches the agent's self-description.
func (a *AgentClient) Info(ctx context.Context) (*AgentInfo, error) {
	var out AgentInfo
	if err := a.c.do(ctx, http.MethodGet, "/agents/"+a.agentType+"/info", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateKnowledgeBase pushes an arbitrary key/value payload into the
// agent's knowledge base and reports whether the platform accepted it.
func (a *AgentClient) UpdateKnowledgeBase(ctx context.Context, knowledge map[string]any) (bool, error) {
	var out struct {
		Success bool `json:"success"`
	}
	if err := a.c.do(ctx, http.MethodPost, "/agents/"+a.agentType+"/knowledge", knowledge, &out); err != nil {
		return false, err
	}
	return out.Success, nil
}
