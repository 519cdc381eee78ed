package flows

import (
	"fmt"

	"github.com/afrisecure/ussd/pkg/domain"
)

type tipTopic struct {
	Title   string
	Content string
}

// tipTopics is the fixed educational catalogue, keyed by option digit.
var tipTopics = map[string]tipTopic{
	"1": {
		Title: "How to avoid scams",
		Content: `Never share your OTP or PIN with anyone - even your bank.

Red flags to watch for:
- Urgent payment requests
- "Too good to be true" offers
- Requests for personal info via SMS
- Calls claiming account problems

Always verify through official channels.

Remember: AfriSecure will NEVER ask for your PIN via SMS or call.`,
	},
	"2": {
		Title: "Smart saving habits",
		Content: `Save before you spend. Automate if possible.

The 50/30/20 Rule:
- 50% - Needs (rent, food, transport)
- 30% - Wants (entertainment, clothes)
- 20% - Savings & debt repayment

Start small: Even R20 per week = R1040 per year!

Use AfriSecure's savings challenges to stay motivated.`,
	},
	"3": {
		Title: "Boost your credit score",
		Content: `Pay on time, even small amounts. It builds your score.

Credit Building Tips:
- Make payments by due date
- Keep phone active & topped up
- Use AfriSecure regularly
- Refer trusted friends
- Complete your profile 100%

Even R50 loans, repaid on time, improve your credit profile for bigger loans later.`,
	},
}

const tipsPrompt = `AfriSecure Finance - Financial Tips

Choose a topic to learn more:

1. How to avoid scams
2. Smart saving habits
3. Boost your credit score

Reply with option number (1-3)`

// Tips is the financial-education flow: topic selection followed by the fixed
// content body for the chosen topic.
func Tips() *domain.Flow {
	return &domain.Flow{
		ID:      FlowTips,
		Initial: "selection",
		States: map[string]domain.State{
			"selection": {
				Prompt:   func(domain.Session) string { return tipsPrompt },
				Validate: oneOf("1", "2", "3"),
				Next: func(domain.Session, string) domain.Target {
					return domain.Target{StateID: "viewing"}
				},
			},
			"viewing": {
				Terminal: true,
				Outcome: func(s domain.Session) (domain.Outcome, error) {
					topic, ok := tipTopics[s.LastInput()]
					if !ok {
						return domain.Outcome{}, fmt.Errorf("tip topic missing from session")
					}
					return domain.Outcome{
						Kind: domain.OutcomeTip,
						Tip: &domain.TipResult{
							TopicID: s.LastInput(),
							Title:   topic.Title,
							Content: topic.Content,
						},
					}, nil
				},
				Final: tipsFinal,
			},
		},
	}
}

func tipsFinal(s domain.Session) string {
	t := s.Result.Tip
	return fmt.Sprintf(`Financial Education - %s

%s

More tips available in the AfriSecure app.

Thank you for using AfriSecure Finance.
Session ended.`, t.Title, t.Content)
}
