// Package client is the Cortexa Campus Go SDK.
//
// It exposes the platform's capabilities — conversational agent queries,
// credential issuance and verification on the ledger, and compliance
// auditing — through a single composable entry point: a root Client that
// owns transport configuration and authentication, and domain sub-clients
// that share its transport.
//
// # Creating a client
//
//	c := client.New(
//	    client.WithBaseURL("https://campus.example.edu/api"),
//	    client.WithAPIKey(os.Getenv("CAMPUS_API_KEY")),
//	)
//
// Every field has a concrete default; New never fails. Without an API key
// (or token source) no Authorization header is ever sent.
//
// # Querying an agent
//
// Agent sub-clients are created lazily and memoized per agent type — the
// same type always returns the same instance:
//
//	advisor := c.Agent("academic_advisor")
//	resp, err := advisor.Query(ctx, client.QueryRequest{
//	    Message:  "Help me choose courses",
//	    UserType: taxonomy.PersonaUndergraduate,
//	})
//	fmt.Println(resp.FinalResponse, resp.Confidence)
//
// # Credentials and the Bologna extension
//
//	issued, err := c.Blockchain().IssueCredential(ctx,
//	    client.StudentData{Address: "0xabc...", Name: "Ada Lovelace"},
//	    client.CredentialData{Title: "BSc Computer Science", Program: "CS", GraduationDate: "2025-06-01"},
//	    []taxonomy.Framework{taxonomy.FrameworkBologna},
//	)
//	verified, err := c.Blockchain().VerifyCredential(ctx, issued.CredentialID)
//
// # Failure semantics
//
// Every operation is a thin pass-through: no error is converted to a
// default value. Platform errors surface as *APIError carrying the original
// status and body; transport failures and timeouts propagate wrapped with
// the method and path. GET requests are retried up to the configured
// MaxRetries on transport errors and 5xx statuses; writes are never retried.
package client
