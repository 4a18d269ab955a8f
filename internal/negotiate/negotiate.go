package negotiate

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// Category is one of the three fixed negotiation topics.
type Category string

const (
	CategoryPayment  Category = "payment"
	CategoryDelivery Category = "delivery"
	CategoryPenalty  Category = "penalty"
)

// Categories is the fixed, ordered set the pipeline always produces.
var Categories = []Category{CategoryPayment, CategoryDelivery, CategoryPenalty}

// Objectives are the user-supplied numeric targets driving directive
// construction. Immutable once parsed at the request boundary.
type Objectives struct {
	PaymentDays  int     `json:"paymentDays"`
	DeliveryDays int     `json:"deliveryDays"`
	PenaltyRate  float64 `json:"penaltyRate"`
}

func (o Objectives) Validate() error {
	if o.PaymentDays <= 0 {
		return fmt.Errorf("paymentDays must be a positive integer")
	}
	if o.DeliveryDays <= 0 {
		return fmt.Errorf("deliveryDays must be a positive integer")
	}
	if o.PenaltyRate < 0 {
		return fmt.Errorf("penaltyRate must not be negative")
	}
	return nil
}

// SuggestionSet is the per-category bundle of alternative clause texts and
// parallel risk scores. len(Suggestions) == len(Scores), both non-empty.
type SuggestionSet struct {
	Category    Category `json:"category"`
	Suggestions []string `json:"suggestions"`
	Scores      []int    `json:"scores"`
}

// DegradedSuggestion is the visible stand-in returned when the
// language-generation call fails or its reply is unusable.
const DegradedSuggestion = "Error generating suggestions. Please try again."

const degradedScore = 5

// DegradedSet is the single-entry fallback for a failed category. A category
// failure must never abort the whole negotiation; the user sees the
// placeholder and can retry.
func DegradedSet(cat Category) SuggestionSet {
	return SuggestionSet{
		Category:    cat,
		Suggestions: []string{DegradedSuggestion},
		Scores:      []int{degradedScore},
	}
}

// Completer is the language-generation dependency: a system role directive
// plus a user message, answered with a single structured reply.
type Completer interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

// Orchestrator runs clause suggestion generation for all three categories.
type Orchestrator struct {
	llm     Completer
	log     *slog.Logger
	timeout time.Duration
}

func NewOrchestrator(llm Completer, log *slog.Logger, timeout time.Duration) *Orchestrator {
	if timeout <= 0 {
		timeout = 90 * time.Second
	}
	return &Orchestrator{llm: llm, log: log, timeout: timeout}
}

// Negotiate generates one SuggestionSet per category, always exactly three,
// always in the fixed [payment, delivery, penalty] order. The per-category
// calls are independent, so they fan out concurrently and join by fixed
// index, not by completion order.
func (o *Orchestrator) Negotiate(ctx context.Context, contractText string, obj Objectives) []SuggestionSet {
	results := make([]SuggestionSet, len(Categories))
	var wg sync.WaitGroup
	for i, cat := range Categories {
		wg.Add(1)
		go func(i int, cat Category) {
			defer wg.Done()
			results[i] = o.Generate(ctx, cat, contractText, obj)
		}(i, cat)
	}
	wg.Wait()
	return results
}

// Generate produces the SuggestionSet for a single category. It never
// returns an error: transient upstream failures are retried with backoff,
// and any terminal failure (call error, empty or malformed reply) collapses
// to the degraded fallback set.
func (o *Orchestrator) Generate(ctx context.Context, cat Category, contractText string, obj Objectives) SuggestionSet {
	callCtx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	user := BuildClausePrompt(cat, obj) + "\n\nContract text: " + contractText

	var reply string
	var err error
retry:
	for attempt := 0; attempt < MaxRetries; attempt++ {
		reply, err = o.llm.Complete(callCtx, SystemDirective, user)
		if err == nil || !IsRetryable(err) {
			break
		}
		o.log.Warn("retryable language-generation error",
			"category", cat, "attempt", attempt, "error", err)
		select {
		case <-time.After(Backoff(attempt)):
		case <-callCtx.Done():
			err = callCtx.Err()
			break retry
		}
	}
	if err != nil {
		o.log.Error("clause generation failed", "category", cat, "error", err)
		return DegradedSet(cat)
	}

	set, err := ParseReply(cat, reply)
	if err != nil {
		o.log.Error("malformed clause reply", "category", cat, "error", err)
		return DegradedSet(cat)
	}
	return set
}
