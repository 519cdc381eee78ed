package flows

import (
	"encoding/binary"
	"fmt"

	"github.com/afrisecure/ussd/pkg/domain"
	"github.com/google/uuid"
)

// reportCategories maps option digits to report categories.
var reportCategories = map[string]string{
	"1": "Phone Theft",
	"2": "Unauthorized Transaction",
	"3": "Scam Message",
}

const reportPrompt = `AfriSecure Finance - Report Fraud

What do you want to report?

1. Phone Theft
2. Unauthorized Transaction
3. Scam Message

Reply with option number (1-3)`

// Report is the fraud-report flow: category selection followed by a submitted
// acknowledgement with a freshly minted reference number.
func Report(opts Options) *domain.Flow {
	opts = opts.withDefaults()

	return &domain.Flow{
		ID:      FlowReport,
		Initial: "selection",
		States: map[string]domain.State{
			"selection": {
				Prompt:   func(domain.Session) string { return reportPrompt },
				Validate: oneOf("1", "2", "3"),
				Next: func(domain.Session, string) domain.Target {
					return domain.Target{StateID: "submitted"}
				},
			},
			"submitted": {
				Terminal: true,
				Outcome: func(s domain.Session) (domain.Outcome, error) {
					category, ok := reportCategories[s.LastInput()]
					if !ok {
						return domain.Outcome{}, fmt.Errorf("report category missing from session")
					}
					return domain.Outcome{
						Kind: domain.OutcomeReport,
						Report: &domain.ReportResult{
							ReferenceID: newReferenceID(),
							Category:    category,
						},
					}, nil
				},
				Final: reportFinal,
			},
		},
	}
}

// newReferenceID mints a 6-digit case reference. Derived from a UUID rather
// than the wall clock so two reports in the same millisecond do not collide.
func newReferenceID() string {
	id := uuid.New()
	return fmt.Sprintf("#ASF%06d", binary.BigEndian.Uint32(id[0:4])%1000000)
}

func reportFinal(s domain.Session) string {
	r := s.Result.Report
	return fmt.Sprintf(`Report Submitted Successfully!

Report Type: %s
Reference: %s

Your report has been logged.
Account temporarily secured.
Support agent will contact you within 24h.

Thank you for using AfriSecure Finance.
Session ended.`, r.Category, r.ReferenceID)
}
