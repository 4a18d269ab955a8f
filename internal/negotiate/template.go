package negotiate

import (
	"fmt"
	"time"
)

// BaseContract synthesizes the boilerplate contract used as the negotiation
// base. Uploaded content is validated but never read (its extraction is too
// unreliable to negotiate against), so the pipeline works on this template
// instead. The three clause headings must stay recognizable by the section
// parser: all caps, trailing colon.
func BaseContract(obj Objectives, now time.Time) string {
	return fmt.Sprintf(`CONTRACT AGREEMENT

This Contract Agreement (the "Agreement") is entered into as of %s.

PARTIES:
Between the Client and the Provider.

SCOPE OF WORK:
The Provider agrees to deliver the products and/or services as described below.

PAYMENT TERMS:
The Client shall pay the Provider the agreed amount within %d days of receiving the invoice.

Payment shall be made by bank transfer to the Provider's designated account.

Late payments will incur interest at a rate of 2%% per month.

DELIVERY TIME:
The Provider shall deliver all products and complete all services within %d days from the date of this agreement.

Delivery shall be considered complete when the Client acknowledges receipt of all deliverables.

PENALTIES:
In case of late delivery, a penalty of %g%% of the total contract value will be applied for each week of delay.

The total penalties shall not exceed 10%% of the contract value.

CONFIDENTIALITY:
Both parties agree to maintain the confidentiality of any proprietary information shared during the course of this agreement.

TERMINATION:
Either party may terminate this agreement with 30 days written notice.

In case of termination, the Client shall pay for all work completed up to the termination date.

GOVERNING LAW:
This agreement shall be governed by the laws of [Jurisdiction].

SIGNATURES:
This agreement constitutes the entire understanding between the parties.
`,
		now.Format("1/2/2006"), obj.PaymentDays, obj.DeliveryDays, obj.PenaltyRate)
}
