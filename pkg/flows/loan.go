package flows

import (
	"fmt"
	"strconv"

	"github.com/afrisecure/ussd/pkg/domain"
)

// Loan terms offered on approval.
const (
	loanMinRand      = 50
	loanMaxRand      = 5000
	loanInterestRate = 12 // percent per month
	loanTermDays     = 30
)

const loanPrompt = `AfriSecure Finance - Loan Application

Enter loan amount (ZAR):
Min: R50, Max: R5000

Amount: R___`

// Loan is the loan-application flow: amount entry, a "processing"
// interstitial, then an approval decision drawn from opts.Rand at
// opts.ApprovalRate. The interstitial is an auto state; it carries no real
// work and exists only so hosts can show it before resolving.
func Loan(opts Options) *domain.Flow {
	opts = opts.withDefaults()

	return &domain.Flow{
		ID:      FlowLoan,
		Initial: "amount",
		States: map[string]domain.State{
			"amount": {
				Prompt:   func(domain.Session) string { return loanPrompt },
				Validate: intBetween(loanMinRand, loanMaxRand),
				Next: func(domain.Session, string) domain.Target {
					return domain.Target{StateID: "processing"}
				},
			},
			"processing": {
				Auto: true,
				Prompt: func(s domain.Session) string {
					return fmt.Sprintf(`Processing your loan application...

Amount: R%s
Please wait while we check your eligibility...

Analyzing credit profile...`, s.LastInput())
				},
				Next: func(domain.Session, string) domain.Target {
					return domain.Target{StateID: "result"}
				},
			},
			"result": {
				Terminal: true,
				Outcome: func(s domain.Session) (domain.Outcome, error) {
					amount, err := strconv.ParseInt(s.LastInput(), 10, 64)
					if err != nil {
						return domain.Outcome{}, fmt.Errorf("loan amount missing from session: %w", err)
					}
					res := &domain.LoanResult{
						Approved:   opts.Rand.Float64() < opts.ApprovalRate,
						AmountRand: amount,
					}
					if res.Approved {
						res.InterestRate = loanInterestRate
						res.TermDays = loanTermDays
					}
					return domain.Outcome{Kind: domain.OutcomeLoan, Loan: res}, nil
				},
				Final: loanFinal,
			},
		},
	}
}

func loanFinal(s domain.Session) string {
	l := s.Result.Loan
	if l.Approved {
		return fmt.Sprintf(`Loan Application - APPROVED!

Loan Amount: R%d
Interest Rate: %d%% per month
Repayment Period: %d days

Funds sent to your wallet.
Thank you for using AfriSecure Finance.`, l.AmountRand, l.InterestRate, l.TermDays)
	}
	return fmt.Sprintf(`Loan Application - Not Approved

Amount Requested: R%d

Sorry, you don't qualify for a loan currently.
Build your credit by using AfriSecure more.

Tips to improve eligibility:
- Make regular deposits
- Complete your profile
- Refer friends

Thank you for using AfriSecure Finance.`, l.AmountRand)
}
