package flows

import (
	"fmt"

	"github.com/afrisecure/ussd/pkg/domain"
)

// Fixed demo ledger. There is no account backend; every session sees the
// same mock balance.
const (
	mockBalanceCents = 42000
	mockLastTxCents  = -5000
	mockLastTxKind   = "Transfer"
)

const balancePrompt = `AfriSecure Finance - View Balance

Enter your 4-digit PIN:
****`

// Balance is the balance-inquiry flow: a PIN gate followed by the result
// screen. The PIN is format-checked only; any well-formed 4-digit input
// succeeds. There is no credential store to verify against.
func Balance() *domain.Flow {
	return &domain.Flow{
		ID:      FlowBalance,
		Initial: "pin",
		States: map[string]domain.State{
			"pin": {
				Prompt:   func(domain.Session) string { return balancePrompt },
				Validate: digitsExactly(4),
				Next: func(domain.Session, string) domain.Target {
					return domain.Target{StateID: "result"}
				},
			},
			"result": {
				Terminal: true,
				Outcome: func(domain.Session) (domain.Outcome, error) {
					return domain.Outcome{
						Kind: domain.OutcomeBalance,
						Balance: &domain.BalanceResult{
							AvailableCents: mockBalanceCents,
							LastTxCents:    mockLastTxCents,
							LastTxKind:     mockLastTxKind,
						},
					}, nil
				},
				Final: balanceFinal,
			},
		},
	}
}

func balanceFinal(s domain.Session) string {
	b := s.Result.Balance
	return fmt.Sprintf(`Balance Inquiry Complete

Current Balance: %s
Available: %s
Last Transaction: %s (%s)

Thank you for using AfriSecure Finance.
Session ended.`,
		formatRand(b.AvailableCents),
		formatRand(b.AvailableCents),
		formatRand(b.LastTxCents),
		b.LastTxKind,
	)
}
