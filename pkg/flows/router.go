package flows

import "github.com/afrisecure/ussd/pkg/domain"

const routerMenu = `Welcome to AfriSecure Finance

1. View Balance
2. Apply for Loan
3. Report Fraud
4. Financial Tips

Reply with option number (1-4)`

const routerInvalid = `Invalid option. Please try again.

Available options: 1, 2, 3, 4

Session ended.`

// Router is the top-level *134# menu. Options 1-4 delegate the session to the
// matching sub-flow; anything else terminates the session on the invalid-
// option sink, as the real gateway would.
func Router() *domain.Flow {
	return &domain.Flow{
		ID:      FlowRouter,
		Initial: "main",
		States: map[string]domain.State{
			"main": {
				Prompt: func(domain.Session) string { return routerMenu },
				// Any input is structurally acceptable here; unknown options
				// route to the invalid sink rather than re-prompting.
				Next: func(_ domain.Session, input string) domain.Target {
					switch input {
					case "1":
						return domain.Target{FlowID: FlowBalance}
					case "2":
						return domain.Target{FlowID: FlowLoan}
					case "3":
						return domain.Target{FlowID: FlowReport}
					case "4":
						return domain.Target{FlowID: FlowTips}
					default:
						return domain.Target{StateID: "invalid"}
					}
				},
			},
			"invalid": {
				Terminal: true,
				Outcome: func(domain.Session) (domain.Outcome, error) {
					return domain.Outcome{
						Kind:   domain.OutcomeNotice,
						Notice: &domain.NoticeResult{Text: routerInvalid},
					}, nil
				},
				Final: func(domain.Session) string { return routerInvalid },
			},
		},
	}
}
