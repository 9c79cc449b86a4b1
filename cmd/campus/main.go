package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cortexa-campus/campus-go/pkg/client"
	"github.com/cortexa-campus/campus-go/pkg/taxonomy"
)

// version is overridden by goreleaser via -ldflags "-X main.version=...".
var version = "dev"

var (
	cfgFile    string
	baseURL    string
	apiKey     string
	debugMode  bool
	jsonOutput bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "campus",
	Short: "Cortexa Campus platform CLI",
	Long: `campus is the command-line interface for the Cortexa Campus platform.

It lets you query cognitive agents, issue and verify academic credentials,
manage Bologna Process compliance records, and run governance audits
against a Campus deployment.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if cfgFile != "" {
			viper.SetConfigFile(cfgFile)
		} else {
			home, _ := os.UserHomeDir()
			viper.AddConfigPath(home + "/.campus")
			viper.SetConfigName("config")
			viper.SetConfigType("yaml")
		}
		viper.SetEnvPrefix("campus")
		viper.AutomaticEnv()
		_ = viper.ReadInConfig()

		if baseURL == "" {
			baseURL = viper.GetString("base_url")
		}
		if baseURL == "" {
			baseURL = "http://localhost:8000/api"
		}
		if apiKey == "" {
			apiKey = viper.GetString("api_key")
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ~/.campus/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&baseURL, "base-url", "", "Campus API base URL (default http://localhost:8000/api)")
	rootCmd.PersistentFlags().StringVar(&apiKey, "api-key", "", "API key sent as a bearer token")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Log requests and responses")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output JSON instead of text")

	rootCmd.AddCommand(contextCmd)
	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(agentCmd)
	rootCmd.AddCommand(credentialCmd)
	rootCmd.AddCommand(bolognaCmd)
	rootCmd.AddCommand(auditCmd)
	rootCmd.AddCommand(complianceCmd)
	rootCmd.AddCommand(frameworksCmd)
	rootCmd.AddCommand(personasCmd)
	rootCmd.AddCommand(authCmd)
	rootCmd.AddCommand(versionCmd)
}

func newClient() *client.Client {
	opts := []client.Option{client.WithBaseURL(baseURL)}
	if apiKey != "" {
		opts = append(opts, client.WithAPIKey(apiKey))
	}
	if debugMode {
		opts = append(opts, client.WithDebug())
	}
	if d := viper.GetDuration("timeout"); d > 0 {
		opts = append(opts, client.WithTimeout(d))
	}
	return client.New(opts...)
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// ── context / health ─────────────────────────────────────────────────────────

var contextCmd = &cobra.Command{
	Use:   "context",
	Short: "Show the university context snapshot",
	RunE: func(cmd *cobra.Command, args []string) error {
		uc, err := newClient().UniversityContext(context.Background())
		if err != nil {
			return err
		}
		if jsonOutput {
			return printJSON(uc)
		}
		fmt.Printf("Name:        %s\n", uc.Name)
		fmt.Printf("Founded:     %s\n", uc.Founded)
		fmt.Printf("Location:    %s\n", uc.Location)
		fmt.Printf("Students:    %d\n", uc.Students)
		fmt.Printf("Faculty:     %d\n", uc.Faculty)
		fmt.Printf("Staff:       %d\n", uc.Staff)
		fmt.Printf("Departments: %s\n", strings.Join(uc.Departments, ", "))
		fmt.Printf("Programs:    %s\n", strings.Join(uc.Programs, ", "))
		fmt.Printf("Frameworks:  %s\n", strings.Join(uc.GovernanceFrameworks, ", "))
		return nil
	},
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Probe the platform health endpoint",
	RunE: func(cmd *cobra.Command, args []string) error {
		h, err := newClient().Health(context.Background())
		if err != nil {
			return err
		}
		if jsonOutput {
			return printJSON(h)
		}
		fmt.Printf("Status:  %s\n", h.Status)
		fmt.Printf("Version: %s\n", h.Version)
		names := make([]string, 0, len(h.Services))
		for name := range h.Services {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Printf("  %-14s %s\n", name, h.Services[name])
		}
		return nil
	},
}

// ── agent ────────────────────────────────────────────────────────────────────

var (
	queryUserID   string
	queryUserType string
	querySolo     bool
)

var agentCmd = &cobra.Command{
	Use:   "agent",
	Short: "Interact with the platform's cognitive agents",
}

var agentQueryCmd = &cobra.Command{
	Use:   "query <agent-type> <message>",
	Short: "Send a message to an agent and print its response",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		agentType := args[0]
		message := strings.Join(args[1:], " ")

		req := client.QueryRequest{
			Message:  message,
			UserID:   queryUserID,
			UserType: taxonomy.PersonaType(queryUserType),
		}
		if querySolo {
			req.Collaborative = client.Bool(false)
		}

		resp, err := newClient().Agent(agentType).Query(context.Background(), req)
		if err != nil {
			return fmt.Errorf("query agent %q: %w", agentType, err)
		}
		if jsonOutput {
			return printJSON(resp)
		}

		fmt.Println(resp.FinalResponse)
		fmt.Printf("\nConfidence: %.2f\n", resp.Confidence)
		if len(resp.CollaboratingAgents) > 0 {
			fmt.Printf("Collaborators: %s\n", strings.Join(resp.CollaboratingAgents, ", "))
		}
		for _, rec := range resp.Recommendations {
			fmt.Printf("  • %s\n", rec)
		}
		return nil
	},
}

var agentInfoCmd = &cobra.Command{
	Use:   "info <agent-type>",
	Short: "Show an agent's capabilities and supported personas",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		info, err := newClient().Agent(args[0]).Info(context.Background())
		if err != nil {
			return err
		}
		if jsonOutput {
			return printJSON(info)
		}
		fmt.Printf("Name:         %s\n", info.Name)
		fmt.Printf("Description:  %s\n", info.Description)
		fmt.Printf("Capabilities: %s\n", strings.Join(info.Capabilities, ", "))
		fmt.Printf("Personas:     %s\n", strings.Join(info.SupportedPersonas, ", "))
		return nil
	},
}

var agentLearnCmd = &cobra.Command{
	Use:   "learn <agent-type> <key=value> [key=value ...]",
	Short: "Push key/value entries into an agent's knowledge base",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		knowledge := make(map[string]any, len(args)-1)
		for _, kv := range args[1:] {
			key, value, ok := strings.Cut(kv, "=")
			if !ok {
				return fmt.Errorf("invalid entry %q: expected key=value", kv)
			}
			knowledge[key] = value
		}

		ok, err := newClient().Agent(args[0]).UpdateKnowledgeBase(context.Background(), knowledge)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("knowledge update rejected by the platform")
		}
		fmt.Printf("✓ %d entries accepted\n", len(knowledge))
		return nil
	},
}

func init() {
	agentQueryCmd.Flags().StringVar(&queryUserID, "user-id", "", "User identifier forwarded with the query")
	agentQueryCmd.Flags().StringVar(&queryUserType, "user-type", "", "Persona type (e.g. undergraduate_student)")
	agentQueryCmd.Flags().BoolVar(&querySolo, "solo", false, "Disable multi-agent collaboration")

	agentCmd.AddCommand(agentQueryCmd)
	agentCmd.AddCommand(agentInfoCmd)
	agentCmd.AddCommand(agentLearnCmd)
}

// ── credential ───────────────────────────────────────────────────────────────

var (
	issueAddress    string
	issueName       string
	issueEmail      string
	issueStudentID  string
	issueTitle      string
	issueProgram    string
	issueDegree     string
	issueGrade      string
	issueGraduation string
	issueFrameworks []string
)

var credentialCmd = &cobra.Command{
	Use:   "credential",
	Short: "Issue, verify, and list academic credentials",
}

var credentialIssueCmd = &cobra.Command{
	Use:   "issue",
	Short: "Issue a new credential on the ledger",
	RunE: func(cmd *cobra.Command, args []string) error {
		frameworks := make([]taxonomy.Framework, 0, len(issueFrameworks))
		for _, f := range issueFrameworks {
			tag := taxonomy.Framework(f)
			if !taxonomy.Known(tag) {
				fmt.Fprintf(os.Stderr, "warning: unknown framework %q\n", f)
			}
			frameworks = append(frameworks, tag)
		}

		result, err := newClient().Blockchain().IssueCredential(context.Background(),
			client.StudentData{
				Address:   issueAddress,
				Name:      issueName,
				Email:     issueEmail,
				StudentID: issueStudentID,
			},
			client.CredentialData{
				Title:          issueTitle,
				Program:        issueProgram,
				Degree:         issueDegree,
				Grade:          issueGrade,
				GraduationDate: issueGraduation,
			},
			frameworks,
		)
		if err != nil {
			return fmt.Errorf("issue credential: %w", err)
		}
		if jsonOutput {
			return printJSON(result)
		}
		fmt.Printf("✓ Credential issued\n\n")
		fmt.Printf("  ID:  %d\n", result.CredentialID)
		fmt.Printf("  Tx:  %s\n", result.TransactionHash)
		fmt.Printf("  Gas: %d\n", result.GasUsed)
		return nil
	},
}

var credentialVerifyCmd = &cobra.Command{
	Use:   "verify <credential-id>",
	Short: "Verify a credential against the ledger",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid credential id %q", args[0])
		}
		result, err := newClient().Blockchain().VerifyCredential(context.Background(), id)
		if err != nil {
			return err
		}
		if jsonOutput {
			return printJSON(result)
		}
		mark := "✗ invalid"
		if result.Valid {
			mark = "✓ valid"
		}
		fmt.Printf("%s — %s (%s, %s)\n", mark, result.Credential.Title, result.Credential.Program, result.Credential.IssueDate)
		fmt.Printf("  Ledger:         %t\n", result.Verification.LedgerVerified)
		fmt.Printf("  Compliance:     %t\n", result.Verification.ComplianceVerified)
		fmt.Printf("  Document store: %t\n", result.Verification.DocumentStoreAccessible)
		return nil
	},
}

var credentialListCmd = &cobra.Command{
	Use:   "list <student-address>",
	Short: "List the credentials held by a student address",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		creds, err := newClient().Blockchain().StudentCredentials(context.Background(), args[0])
		if err != nil {
			return err
		}
		if jsonOutput {
			return printJSON(creds)
		}
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tTITLE\tPROGRAM\tDEGREE\tISSUED")
		for _, cr := range creds {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", cr.ID, cr.Title, cr.Program, cr.Degree, cr.IssueDate)
		}
		return w.Flush()
	},
}

var credentialEctsCmd = &cobra.Command{
	Use:   "ects-total <student-address>",
	Short: "Show a student's total ECTS credits",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ects, err := newClient().Blockchain().StudentTotalEcts(context.Background(), args[0])
		if err != nil {
			return err
		}
		if jsonOutput {
			return printJSON(ects)
		}
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tTITLE\tECTS")
		for _, cr := range ects.Credentials {
			fmt.Fprintf(w, "%d\t%s\t%d\n", cr.CredentialID, cr.Title, cr.EctsCredits)
		}
		if err := w.Flush(); err != nil {
			return err
		}
		fmt.Printf("\nTotal: %d ECTS\n", ects.TotalEcts)
		return nil
	},
}

func init() {
	credentialIssueCmd.Flags().StringVar(&issueAddress, "address", "", "Student ledger address")
	credentialIssueCmd.Flags().StringVar(&issueName, "name", "", "Student full name")
	credentialIssueCmd.Flags().StringVar(&issueEmail, "email", "", "Student email")
	credentialIssueCmd.Flags().StringVar(&issueStudentID, "student-id", "", "Institutional student id")
	credentialIssueCmd.Flags().StringVar(&issueTitle, "title", "", "Credential title (e.g. \"BSc Computer Science\")")
	credentialIssueCmd.Flags().StringVar(&issueProgram, "program", "", "Program code")
	credentialIssueCmd.Flags().StringVar(&issueDegree, "degree", "", "Degree level")
	credentialIssueCmd.Flags().StringVar(&issueGrade, "grade", "", "Final grade")
	credentialIssueCmd.Flags().StringVar(&issueGraduation, "graduation", "", "Graduation date (YYYY-MM-DD)")
	credentialIssueCmd.Flags().StringSliceVar(&issueFrameworks, "framework", nil, "Governance framework tag (repeatable)")

	_ = credentialIssueCmd.MarkFlagRequired("address")
	_ = credentialIssueCmd.MarkFlagRequired("name")
	_ = credentialIssueCmd.MarkFlagRequired("title")
	_ = credentialIssueCmd.MarkFlagRequired("program")
	_ = credentialIssueCmd.MarkFlagRequired("graduation")

	credentialCmd.AddCommand(credentialIssueCmd)
	credentialCmd.AddCommand(credentialVerifyCmd)
	credentialCmd.AddCommand(credentialListCmd)
	credentialCmd.AddCommand(credentialEctsCmd)
}

// ── bologna ──────────────────────────────────────────────────────────────────

var (
	bolognaEcts       int
	bolognaEqf        int
	bolognaSupplement bool
	bolognaOutcomes   []string
	bolognaQAAgency   string
	bolognaJoint      bool
	bolognaPartners   []string
)

var bolognaCmd = &cobra.Command{
	Use:   "bologna",
	Short: "Manage Bologna Process compliance records",
}

var bolognaGetCmd = &cobra.Command{
	Use:   "get <credential-id>",
	Short: "Show a credential's Bologna compliance record",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid credential id %q", args[0])
		}
		bc, err := newClient().Blockchain().BolognaCompliance(context.Background(), id)
		if err != nil {
			return err
		}
		if jsonOutput {
			return printJSON(bc)
		}
		fmt.Printf("Credential:            %d\n", bc.CredentialID)
		fmt.Printf("ECTS credits:          %d\n", bc.EctsCredits)
		fmt.Printf("EQF level:             %d\n", bc.EqfLevel)
		fmt.Printf("Diploma supplement:    %t\n", bc.DiplomaSupplementIssued)
		fmt.Printf("QA agency:             %s\n", bc.QualityAssuranceAgency)
		fmt.Printf("Joint degree:          %t\n", bc.JointDegreeProgram)
		fmt.Printf("Mobility partners:     %s\n", strings.Join(bc.MobilityPartners, ", "))
		fmt.Printf("Automatic recognition: %t\n", bc.AutomaticRecognition)
		return nil
	},
}

var bolognaSetCmd = &cobra.Command{
	Use:   "set <credential-id>",
	Short: "Attach a Bologna compliance record to a credential",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid credential id %q", args[0])
		}
		result, err := newClient().Blockchain().SetBolognaCompliance(context.Background(), client.BolognaComplianceRequest{
			CredentialID:            id,
			EctsCredits:             bolognaEcts,
			EqfLevel:                bolognaEqf,
			DiplomaSupplementIssued: bolognaSupplement,
			LearningOutcomes:        bolognaOutcomes,
			QualityAssuranceAgency:  bolognaQAAgency,
			JointDegreeProgram:      bolognaJoint,
			MobilityPartners:        bolognaPartners,
		})
		if err != nil {
			return fmt.Errorf("set bologna compliance: %w", err)
		}
		if jsonOutput {
			return printJSON(result)
		}
		fmt.Printf("✓ Compliance recorded (tx %s, gas %d)\n", result.TransactionHash, result.GasUsed)
		return nil
	},
}

var bolognaUpdateEctsCmd = &cobra.Command{
	Use:   "update-ects <credential-id> <new-credits>",
	Short: "Replace a credential's ECTS credit value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid credential id %q", args[0])
		}
		credits, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid credit value %q", args[1])
		}
		result, err := newClient().Blockchain().UpdateEctsCredits(context.Background(), id, credits)
		if err != nil {
			return err
		}
		if jsonOutput {
			return printJSON(result)
		}
		fmt.Printf("✓ ECTS updated: %d → %d (tx %s)\n", result.OldCredits, result.NewCredits, result.TransactionHash)
		return nil
	},
}

var bolognaCheckCmd = &cobra.Command{
	Use:   "check <credential-id>",
	Short: "Run a Bologna compliance check on a credential",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid credential id %q", args[0])
		}
		check, err := newClient().Blockchain().CheckBolognaComplianceStatus(context.Background(), id)
		if err != nil {
			return err
		}
		if jsonOutput {
			return printJSON(check)
		}
		if check.Compliant {
			fmt.Println("✓ compliant")
		} else {
			fmt.Println("✗ non-compliant")
		}
		fmt.Println(check.Report)
		for _, issue := range check.Issues {
			fmt.Printf("  issue: %s\n", issue)
		}
		for _, rec := range check.Recommendations {
			fmt.Printf("  recommend: %s\n", rec)
		}
		return nil
	},
}

var bolognaEligibilityCmd = &cobra.Command{
	Use:   "eligibility <credential-id>",
	Short: "Check automatic-recognition eligibility",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid credential id %q", args[0])
		}
		el, err := newClient().Blockchain().CheckAutomaticRecognitionEligibility(context.Background(), id)
		if err != nil {
			return err
		}
		if jsonOutput {
			return printJSON(el)
		}
		if el.Eligible {
			fmt.Println("✓ eligible for automatic recognition")
		} else {
			fmt.Println("✗ not eligible")
		}
		fmt.Printf("  ECTS credits:      %t\n", el.Criteria.HasEctsCredits)
		fmt.Printf("  Valid EQF level:   %t\n", el.Criteria.ValidEqfLevel)
		fmt.Printf("  Quality assurance: %t\n", el.Criteria.HasQualityAssurance)
		fmt.Printf("  Recognition flag:  %t\n", el.Criteria.AutomaticRecognitionEnabled)
		return nil
	},
}

func init() {
	bolognaSetCmd.Flags().IntVar(&bolognaEcts, "ects", 0, "ECTS credits")
	bolognaSetCmd.Flags().IntVar(&bolognaEqf, "eqf", 0, "EQF level (1-8)")
	bolognaSetCmd.Flags().BoolVar(&bolognaSupplement, "supplement", false, "Diploma supplement issued")
	bolognaSetCmd.Flags().StringSliceVar(&bolognaOutcomes, "outcome", nil, "Learning outcome (repeatable)")
	bolognaSetCmd.Flags().StringVar(&bolognaQAAgency, "qa-agency", "", "Quality assurance agency")
	bolognaSetCmd.Flags().BoolVar(&bolognaJoint, "joint", false, "Joint degree program")
	bolognaSetCmd.Flags().StringSliceVar(&bolognaPartners, "partner", nil, "Mobility partner (repeatable)")
	_ = bolognaSetCmd.MarkFlagRequired("ects")
	_ = bolognaSetCmd.MarkFlagRequired("eqf")

	bolognaCmd.AddCommand(bolognaGetCmd)
	bolognaCmd.AddCommand(bolognaSetCmd)
	bolognaCmd.AddCommand(bolognaUpdateEctsCmd)
	bolognaCmd.AddCommand(bolognaCheckCmd)
	bolognaCmd.AddCommand(bolognaEligibilityCmd)
}

// ── audit / compliance ───────────────────────────────────────────────────────

var (
	auditInstitution     string
	auditFramework       string
	auditArea            string
	auditStatus          string
	auditFindings        []string
	auditRecommendations []string
	auditNextReview      string
	upcomingDays         int
)

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Record and list compliance audits",
}

var auditCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Record a compliance audit",
	RunE: func(cmd *cobra.Command, args []string) error {
		status := client.AuditStatus(auditStatus)
		switch status {
		case client.AuditCompliant, client.AuditNonCompliant, client.AuditUnderReview:
		default:
			return fmt.Errorf("invalid status %q: must be compliant, non_compliant, or under_review", auditStatus)
		}

		result, err := newClient().Governance().CreateAudit(context.Background(), auditInstitution, auditFramework, client.AuditData{
			Area:            auditArea,
			Status:          status,
			Findings:        auditFindings,
			Recommendations: auditRecommendations,
			NextReviewDate:  auditNextReview,
		})
		if err != nil {
			return fmt.Errorf("create audit: %w", err)
		}
		if jsonOutput {
			return printJSON(result)
		}
		fmt.Printf("✓ Audit %d recorded (tx %s)\n", result.AuditID, result.TransactionHash)
		return nil
	},
}

var auditUpcomingCmd = &cobra.Command{
	Use:   "upcoming",
	Short: "List audits scheduled within the horizon",
	RunE: func(cmd *cobra.Command, args []string) error {
		audits, err := newClient().Governance().UpcomingAudits(context.Background(), upcomingDays)
		if err != nil {
			return err
		}
		if jsonOutput {
			return printJSON(audits)
		}
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tINSTITUTION\tFRAMEWORK\tAREA\tDATE\tSTATUS")
		for _, a := range audits {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n", a.ID, a.Institution, a.Framework, a.Area, a.ScheduledDate, a.Status)
		}
		return w.Flush()
	},
}

var complianceCmd = &cobra.Command{
	Use:   "compliance",
	Short: "Inspect institutional compliance standing",
}

var complianceStatusCmd = &cobra.Command{
	Use:   "status <institution> <framework>",
	Short: "Show compliance status under one framework",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cs, err := newClient().Governance().ComplianceStatus(context.Background(), args[0], args[1])
		if err != nil {
			return err
		}
		if jsonOutput {
			return printJSON(cs)
		}
		fmt.Printf("%s / %s: %s\n\n", cs.Institution, cs.Framework, cs.OverallStatus)
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "AREA\tSTATUS\tLAST REVIEWED")
		for _, a := range cs.Areas {
			fmt.Fprintf(w, "%s\t%s\t%s\n", a.Area, a.Status, a.LastReviewed)
		}
		return w.Flush()
	},
}

var complianceSummaryCmd = &cobra.Command{
	Use:   "summary <institution>",
	Short: "Show the aggregate compliance summary",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newClient().Governance().ComplianceSummary(context.Background(), args[0])
		if err != nil {
			return err
		}
		if jsonOutput {
			return printJSON(s)
		}
		fmt.Printf("%s — compliance rate %.1f%%\n\n", s.Institution, s.ComplianceRate*100)
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "FRAMEWORK\tSTATUS\tRATE\tLAST AUDIT\tNEXT AUDIT")
		names := make([]string, 0, len(s.Frameworks))
		for name := range s.Frameworks {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			f := s.Frameworks[name]
			fmt.Fprintf(w, "%s\t%s\t%.1f%%\t%s\t%s\n", name, f.Status, f.Rate*100, f.LastAuditDate, f.NextAuditDate)
		}
		return w.Flush()
	},
}

func init() {
	auditCreateCmd.Flags().StringVar(&auditInstitution, "institution", "", "Institution identifier")
	auditCreateCmd.Flags().StringVar(&auditFramework, "framework", "", "Governance framework tag")
	auditCreateCmd.Flags().StringVar(&auditArea, "area", "", "Audited area")
	auditCreateCmd.Flags().StringVar(&auditStatus, "status", "", "compliant, non_compliant, or under_review")
	auditCreateCmd.Flags().StringSliceVar(&auditFindings, "finding", nil, "Audit finding (repeatable)")
	auditCreateCmd.Flags().StringSliceVar(&auditRecommendations, "recommend", nil, "Recommendation (repeatable)")
	auditCreateCmd.Flags().StringVar(&auditNextReview, "next-review", "", "Next review date (YYYY-MM-DD)")
	_ = auditCreateCmd.MarkFlagRequired("institution")
	_ = auditCreateCmd.MarkFlagRequired("framework")
	_ = auditCreateCmd.MarkFlagRequired("area")
	_ = auditCreateCmd.MarkFlagRequired("status")

	auditUpcomingCmd.Flags().IntVar(&upcomingDays, "days", 30, "Horizon in days")

	auditCmd.AddCommand(auditCreateCmd)
	auditCmd.AddCommand(auditUpcomingCmd)
	complianceCmd.AddCommand(complianceStatusCmd)
	complianceCmd.AddCommand(complianceSummaryCmd)
}

// ── taxonomy display ─────────────────────────────────────────────────────────

var frameworksCmd = &cobra.Command{
	Use:   "frameworks",
	Short: "List the governance frameworks the platform models",
	RunE: func(cmd *cobra.Command, args []string) error {
		if jsonOutput {
			out := make(map[taxonomy.Framework]taxonomy.FrameworkInfo)
			for _, f := range taxonomy.Frameworks() {
				out[f] = taxonomy.Info(f)
			}
			return printJSON(out)
		}
		for _, f := range taxonomy.Frameworks() {
			info := taxonomy.Info(f)
			fmt.Printf("%s — %s\n", f, info.FullName)
			fmt.Printf("  Region: %s\n", info.Region)
			fmt.Printf("  Focus:  %s\n", info.Focus)
			fmt.Printf("  Standards: %s\n\n", strings.Join(info.Standards, ", "))
		}
		return nil
	},
}

var personasCmd = &cobra.Command{
	Use:   "personas",
	Short: "List persona types by category",
	RunE: func(cmd *cobra.Command, args []string) error {
		categories := []struct {
			name     string
			personas []taxonomy.PersonaType
		}{
			{"student", taxonomy.StudentPersonas()},
			{"staff", taxonomy.StaffPersonas()},
			{"faculty", taxonomy.FacultyPersonas()},
		}
		if jsonOutput {
			out := make(map[string][]taxonomy.PersonaType, len(categories))
			for _, c := range categories {
				out[c.name] = c.personas
			}
			return printJSON(out)
		}
		for _, c := range categories {
			fmt.Printf("%s:\n", c.name)
			for _, p := range c.personas {
				fmt.Printf("  %s\n", p)
			}
		}
		return nil
	},
}

// ── auth ─────────────────────────────────────────────────────────────────────

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Inspect platform credentials",
}

var authInspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Decode the configured API key as a JWT (without verification)",
	RunE: func(cmd *cobra.Command, args []string) error {
		if apiKey == "" {
			return fmt.Errorf("no API key configured (set --api-key or api_key in the config file)")
		}

		token, _, err := jwt.NewParser().ParseUnverified(apiKey, jwt.MapClaims{})
		if err != nil {
			return fmt.Errorf("API key is not a JWT: %w", err)
		}
		claims := token.Claims.(jwt.MapClaims)
		if jsonOutput {
			return printJSON(claims)
		}

		keys := make([]string, 0, len(claims))
		for k := range claims {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Printf("%-10s %v\n", k, claims[k])
		}
		if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
			if time.Now().After(exp.Time) {
				fmt.Printf("\n✗ expired %s ago\n", time.Since(exp.Time).Round(time.Minute))
			} else {
				fmt.Printf("\n✓ valid for another %s\n", time.Until(exp.Time).Round(time.Minute))
			}
		}
		return nil
	},
}

func init() {
	authCmd.AddCommand(authInspectCmd)
}

// ── version ──────────────────────────────────────────────────────────────────

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the CLI version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("campus %s\n", version)
	},
}
