package negotiate

import (
	"fmt"
	"strings"
)

// SystemDirective frames the language-generation service as a negotiation
// assistant for every clause request.
const SystemDirective = "You are a contract negotiation expert specializing in legal language optimization."

// The risk score polarity is category-relative and must be stated verbatim
// in every directive so the service's output is self-consistent.
const scoreInstruction = `For each alternative, assign a risk score from 1-10 (1 being most favorable to client, 10 being most favorable to provider).
Return ONLY a JSON object with format: {"suggestions": [string, string, string], "scores": [number, number, number]}`

// BuildClausePrompt creates the directive for one category, embedding the
// goal derived from the matching objective field.
func BuildClausePrompt(cat Category, obj Objectives) string {
	var clause, heading, goal string
	switch cat {
	case CategoryPayment:
		clause = "payment terms"
		heading = "PAYMENT TERMS"
		goal = fmt.Sprintf("optimizing for payment within %d days", obj.PaymentDays)
	case CategoryDelivery:
		clause = "delivery timeframe"
		heading = "DELIVERY TIME"
		goal = fmt.Sprintf("optimizing for delivery within %d days", obj.DeliveryDays)
	case CategoryPenalty:
		clause = "penalties"
		heading = "PENALTIES"
		goal = fmt.Sprintf("implementing a %g%% penalty rate for late delivery or services", obj.PenaltyRate)
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Analyze the following contract text and extract the %s clause.\n", clause))
	sb.WriteString(fmt.Sprintf("Then provide 3 alternative formulations for the %s clause, %s.\n", heading, goal))
	sb.WriteString(scoreInstruction)
	return sb.String()
}
