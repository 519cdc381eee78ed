package domain

// OutcomeKind tags the populated branch of an Outcome.
type OutcomeKind string

const (
	OutcomeBalance OutcomeKind = "balance"
	OutcomeLoan    OutcomeKind = "loan"
	OutcomeReport  OutcomeKind = "report"
	OutcomeTip     OutcomeKind = "tip"

	// OutcomeNotice carries free-form final text, used by data-defined
	// flow packs and the router's invalid-option sink.
	OutcomeNotice OutcomeKind = "notice"
)

// Outcome is the tagged terminal result of a session. Exactly one branch
// matching Kind is populated. A single struct (rather than an interface)
// keeps it round-trippable through JSON persistence.
type Outcome struct {
	Kind OutcomeKind `json:"kind"`

	Balance *BalanceResult `json:"balance,omitempty"`
	Loan    *LoanResult    `json:"loan,omitempty"`
	Report  *ReportResult  `json:"report,omitempty"`
	Tip     *TipResult     `json:"tip,omitempty"`
	Notice  *NoticeResult  `json:"notice,omitempty"`
}

// BalanceResult is the balance-inquiry terminal result. Amounts are in ZAR
// cents to avoid float money.
type BalanceResult struct {
	AvailableCents int64  `json:"available_cents"`
	LastTxCents    int64  `json:"last_tx_cents"`
	LastTxKind     string `json:"last_tx_kind"`
}

// LoanResult is the loan-application decision.
type LoanResult struct {
	Approved     bool  `json:"approved"`
	AmountRand   int64 `json:"amount_rand"`
	InterestRate int   `json:"interest_rate,omitempty"` // percent per month
	TermDays     int   `json:"term_days,omitempty"`
}

// ReportResult is the fraud-report acknowledgement.
type ReportResult struct {
	ReferenceID string `json:"reference_id"`
	Category    string `json:"category"`
}

// TipResult is the financial-education content for a chosen topic.
type TipResult struct {
	TopicID string `json:"topic_id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// NoticeResult is a generic terminal message.
type NoticeResult struct {
	Text string `json:"text"`
}
