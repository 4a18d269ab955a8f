package negotiate

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// clauseReply is the only accepted reply shape: two parallel sequences.
type clauseReply struct {
	Suggestions []string `json:"suggestions"`
	Scores      []int    `json:"scores"`
}

// ParseReply validates a structured clause reply. Anything but an exact
// match of the contract — parse failure, unknown fields, length mismatch,
// empty sequences, blank suggestions, scores outside [1,10] — is rejected
// with an error; the caller collapses that to the degraded fallback.
func ParseReply(cat Category, raw string) (SuggestionSet, error) {
	raw = stripCodeBlock(raw)
	if raw == "" {
		return SuggestionSet{}, fmt.Errorf("empty reply")
	}

	dec := json.NewDecoder(strings.NewReader(raw))
	dec.DisallowUnknownFields()
	var reply clauseReply
	if err := dec.Decode(&reply); err != nil {
		return SuggestionSet{}, fmt.Errorf("decode reply: %w (raw: %s)", err, truncate(raw, 200))
	}

	if len(reply.Suggestions) == 0 {
		return SuggestionSet{}, fmt.Errorf("reply has no suggestions")
	}
	if len(reply.Suggestions) != len(reply.Scores) {
		return SuggestionSet{}, fmt.Errorf("reply field-count mismatch: %d suggestions, %d scores",
			len(reply.Suggestions), len(reply.Scores))
	}
	for i, s := range reply.Suggestions {
		if strings.TrimSpace(s) == "" {
			return SuggestionSet{}, fmt.Errorf("suggestion %d is empty", i)
		}
	}
	for i, score := range reply.Scores {
		if score < 1 || score > 10 {
			return SuggestionSet{}, fmt.Errorf("score %d out of range: %d", i, score)
		}
	}

	return SuggestionSet{
		Category:    cat,
		Suggestions: reply.Suggestions,
		Scores:      reply.Scores,
	}, nil
}

var codeBlockRe = regexp.MustCompile("(?s)^```(?:json)?\\s*(.*?)\\s*```$")

func stripCodeBlock(s string) string {
	s = strings.TrimSpace(s)
	if m := codeBlockRe.FindStringSubmatch(s); len(m) > 1 {
		return m[1]
	}
	return s
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
