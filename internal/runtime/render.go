package runtime

import (
	"fmt"

	"github.com/afrisecure/ussd/pkg/domain"
)

// Screen markers follow the USSD gateway response convention: CON keeps the
// session open and expects more input, END terminates it.
const (
	markerContinue = "CON "
	markerEnd      = "END "
)

const endedScreen = `Session ended.

Thank you for using AfriSecure Finance.`

// Render derives the display text for a session snapshot. It is pure: no
// side effects, and identical snapshots render identical text.
func (e *Engine) Render(s *domain.Session) (string, error) {
	if s.CurrentStateID == domain.StateEnded {
		return markerEnd + endedScreen, nil
	}

	_, st, err := e.resolve(s)
	if err != nil {
		return "", err
	}

	if st.Terminal {
		if s.Result == nil && st.Outcome != nil {
			return "", fmt.Errorf("session %s is terminal at %q but has no result", s.ID, s.CurrentStateID)
		}
		return markerEnd + st.Final(*s), nil
	}

	text := st.Prompt(*s)
	if s.LastError != "" {
		text = "Invalid input: " + s.LastError + "\n\n" + text
	}
	return markerContinue + text, nil
}
