package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/codeGROOVE-dev/retry"
	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/custodia-labs/briefly-cli/internal/casestudy"
	"github.com/custodia-labs/briefly-cli/internal/core/domain"
	"github.com/custodia-labs/briefly-cli/internal/core/ports/driven"
	"github.com/custodia-labs/briefly-cli/internal/core/ports/driving"
	"github.com/custodia-labs/briefly-cli/internal/industry"
	"github.com/custodia-labs/briefly-cli/internal/logger"
	"github.com/custodia-labs/briefly-cli/internal/recovery"
)

// Ensure BriefService implements the interface.
var _ driving.BriefService = (*BriefService)(nil)

// Generation call limits. One brief means one call, but programmatic
// callers can loop over attendee lists; the bucket keeps them polite.
const (
	generateRequestsPerMinute = 6
	generateBurst             = 2

	generateAttempts  = 3
	generateDelay     = 2 * time.Second
	generateMaxJitter = time.Second

	generateMaxTokens   = 8192
	generateTemperature = 0.4
)

// defaultGTMVendor is used when the request does not name the vendor.
const defaultGTMVendor = "Next Quarter"

// BriefService assembles meeting-brief payloads and drives the
// external generation step.
type BriefService struct {
	reader  driven.DocumentReader
	llm     driven.LLMService
	store   driven.BriefStore
	prompts driven.PromptStore

	taxonomy domain.Taxonomy
	limiter  *rate.Limiter
}

// NewBriefService creates a brief service. The LLM service, brief
// store and prompt store may be nil; generation then fails with
// domain.ErrLLMUnavailable, skips persistence, or falls back to the
// embedded prompts respectively.
func NewBriefService(
	reader driven.DocumentReader,
	llm driven.LLMService,
	store driven.BriefStore,
	prompts driven.PromptStore,
) *BriefService {
	return &BriefService{
		reader:   reader,
		llm:      llm,
		store:    store,
		prompts:  prompts,
		taxonomy: domain.DefaultTaxonomy(),
		limiter:  rate.NewLimiter(rate.Limit(generateRequestsPerMinute)/60, generateBurst),
	}
}

// SetTaxonomy replaces the industry taxonomy used for case-study
// inference. Intended for tests and future config-driven taxonomies.
func (s *BriefService) SetTaxonomy(t domain.Taxonomy) {
	if len(t) > 0 {
		s.taxonomy = t
	}
}

// Generate assembles the payload, calls the configured LLM and
// persists the resulting deck.
func (s *BriefService) Generate(ctx context.Context, req domain.BriefRequest) (*domain.Brief, error) {
	if s.llm == nil {
		return nil, domain.ErrLLMUnavailable
	}
	if err := validate(req); err != nil {
		return nil, err
	}

	eventID := req.EventID
	if eventID == "" {
		eventID = domain.GenerateEventID()
	}
	companyID := req.CompanyID
	if companyID == "" && req.QPilotDoc != nil {
		companyID = domain.InferCompanyIDFromFilename(req.QPilotDoc.Filename)
	}
	if companyID == "" {
		companyID = "unknown_company"
	}

	logger.Section("Generate Brief")
	logger.Info("generating brief for %s @ %s (event %s)", req.ContactName, req.CompanyName, eventID)

	payload, err := s.AssemblePayload(ctx, req)
	if err != nil {
		return nil, err
	}

	vendor := req.GTMVendor
	if vendor == "" {
		vendor = defaultGTMVendor
	}
	system := fmt.Sprintf(s.loadPrompt(driven.PromptMeetingPrepSystem, defaultSystemPrompt), req.ContactName, vendor)

	markdown, err := s.callLLM(ctx, system, payload)
	if err != nil {
		return nil, fmt.Errorf("generate brief: %w", err)
	}

	brief := &domain.Brief{
		ID:          uuid.New().String(),
		EventID:     eventID,
		CompanyID:   companyID,
		ContactName: req.ContactName,
		Step:        domain.DefaultStep,
		Markdown:    markdown,
		CreatedAt:   time.Now(),
	}

	if s.store != nil {
		if err := s.store.SaveBrief(ctx, brief); err != nil {
			// The deck was expensive to produce; hand it back even
			// when the store is broken.
			logger.Warn("failed to persist brief %s: %v", brief.ID, err)
		}
	}

	return brief, nil
}

// callLLM runs the generation call behind the rate limiter with
// bounded retries.
func (s *BriefService) callLLM(ctx context.Context, system, payload string) (string, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return "", err
	}

	messages := []driven.ChatMessage{
		{Role: "system", Content: system},
		{Role: "user", Content: payload},
	}
	opts := driven.ChatOptions{
		MaxTokens:   generateMaxTokens,
		Temperature: generateTemperature,
	}

	return retry.DoWithData(
		func() (string, error) {
			return s.llm.Chat(ctx, messages, opts)
		},
		retry.Context(ctx),
		retry.Attempts(generateAttempts),
		retry.Delay(generateDelay),
		retry.MaxJitter(generateMaxJitter),
		retry.OnRetry(func(n uint, err error) {
			logger.Warn("generation attempt %d failed: %v", n+1, err)
		}),
	)
}

// AssemblePayload builds the single text payload for the generation
// step: meeting context fields, strategy context, each non-empty
// document section in fixed order, then the task instructions.
func (s *BriefService) AssemblePayload(ctx context.Context, req domain.BriefRequest) (string, error) {
	if err := validate(req); err != nil {
		return "", err
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	logger.Section("Assemble Payload")

	qpilotText, err := s.readDoc(req.QPilotDoc)
	if err != nil {
		return "", err
	}
	researchText, err := s.readDoc(req.ResearchDoc)
	if err != nil {
		return "", err
	}
	playbookText, err := s.readDoc(req.PlaybookDoc)
	if err != nil {
		return "", err
	}
	challengesCSV, err := s.readDoc(req.SolvedChallengesDoc)
	if err != nil {
		return "", err
	}

	// Repair PDF-split contact names so the generation step's strict
	// name matching works against the raw documents.
	if researchText != "" {
		researchText = recovery.RepairContactName(researchText, req.ContactName)
	}
	if playbookText != "" {
		playbookText = recovery.RepairContactName(playbookText, req.ContactName)
	}

	linkedIn := req.LinkedInURL
	if linkedIn == "" {
		linkedIn = recovery.ExtractProfileURL(researchText, req.ContactName)
		if linkedIn == "" {
			linkedIn = recovery.ExtractProfileURL(playbookText, req.ContactName)
		}
		if linkedIn != "" {
			logger.Info("reconstructed profile URL: %s", linkedIn)
		}
	}

	report := s.caseStudyReport(challengesCSV, qpilotText+"\n"+researchText+"\n"+playbookText)

	return buildPayload(req, payloadDocs{
		qpilot:    qpilotText,
		research:  researchText,
		playbook:  playbookText,
		caseStudy: report,
		linkedIn:  linkedIn,
		task:      s.loadPrompt(driven.PromptMeetingPrepTask, defaultTaskPrompt),
	}), nil
}

// caseStudyReport infers the target industry from the research corpus
// and renders the matching case studies.
func (s *BriefService) caseStudyReport(csvText, researchCorpus string) string {
	if strings.TrimSpace(csvText) == "" {
		return ""
	}

	label, ok := industry.Classify(researchCorpus, s.taxonomy)
	if ok {
		logger.Info("inferred industry: %s", label)
	} else {
		logger.Warn("could not infer industry from research text, including all case studies (capped)")
	}

	return casestudy.BuildReport(csvText, label, ok)
}

// List returns previously generated briefs, newest first.
func (s *BriefService) List(ctx context.Context) ([]domain.Brief, error) {
	if s.store == nil {
		return nil, domain.ErrStoreUnavailable
	}
	return s.store.ListBriefs(ctx)
}

// Get retrieves a stored brief by ID.
func (s *BriefService) Get(ctx context.Context, id string) (*domain.Brief, error) {
	if s.store == nil {
		return nil, domain.ErrStoreUnavailable
	}
	return s.store.GetBrief(ctx, id)
}

// readDoc reads an optional document; a nil ref is simply absent.
func (s *BriefService) readDoc(ref *domain.FileRef) (string, error) {
	if ref == nil {
		return "", nil
	}
	text, err := s.reader.Read(*ref)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", ref.Filename, err)
	}
	logger.Debug("read %s (%d bytes)", ref.Filename, len(text))
	return text, nil
}

// loadPrompt loads a prompt from the store, falling back to the
// embedded default if unavailable.
func (s *BriefService) loadPrompt(name, fallback string) string {
	if s.prompts == nil {
		return fallback
	}
	prompt, err := s.prompts.Load(name)
	if err != nil {
		return fallback
	}
	return prompt
}

func validate(req domain.BriefRequest) error {
	if strings.TrimSpace(req.ContactName) == "" {
		return fmt.Errorf("contact name is required: %w", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(req.CompanyName) == "" {
		return fmt.Errorf("company name is required: %w", domain.ErrInvalidInput)
	}
	return nil
}
