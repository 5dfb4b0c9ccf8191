package dialogue

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/polymathcode/leadchat/internal/session"
)

// ---------- package-level compiled regexes ----------

// emailRE is a permissive local@domain.tld matcher, not RFC validation.
var emailRE = regexp.MustCompile(`[a-zA-Z0-9._-]+@[a-zA-Z0-9._-]+\.[a-zA-Z0-9._-]+`)

// Escalation is checked before any stage logic, on every turn.
var escalationKeywords = []string{"human", "person", "speak to", "frustrated"}

// Affirmations that confirm the captured email. Checked as substrings, so
// "yes, but..." confirms too; that literal behavior is intentional.
var affirmationKeywords = []string{"yes", "correct", "yeah", "right"}

// Result is the outcome of one handled turn.
type Result struct {
	Reply        string
	Escalation   bool
	LeadComplete bool
}

// Engine walks a session through the fixed dialogue script. It mutates the
// session (stage, lead fields, transcript) but performs no I/O: when a lead
// is confirmed it only sets LeadComplete and leaves dispatch to the caller.
type Engine struct{}

// NewEngine creates a dialogue engine.
func NewEngine() *Engine {
	return &Engine{}
}

// HandleTurn processes one user message against the session's current stage.
// Every input produces a reply; nothing escapes as an error. Exactly one user
// and one ai entry are appended to the transcript per call, escalations
// included.
func (e *Engine) HandleTurn(s *session.Session, text string) Result {
	s.AppendTurn(session.SenderUser, text)
	res := e.respond(s, text)
	s.AppendTurn(session.SenderAI, res.Reply)
	return res
}

func (e *Engine) respond(s *session.Session, text string) Result {
	lower := strings.ToLower(text)

	// Global escalation check: short-circuits stage logic, stage unchanged.
	if containsAny(lower, escalationKeywords) {
		return Result{Reply: replyEscalation, Escalation: true}
	}

	switch s.Stage {
	case session.StageGreeting:
		s.Stage = session.StageNeeds
		return Result{Reply: replyWelcome}

	case session.StageNeeds:
		s.Interest = text
		s.Stage = session.StageDeepDive
		// Priority order matters: website wins over app/custom/software.
		switch {
		case strings.Contains(lower, "website"):
			return Result{Reply: replyWebsiteObjectives}
		case strings.Contains(lower, "app") || strings.Contains(lower, "custom") || strings.Contains(lower, "software"):
			return Result{Reply: replyAppScope}
		case strings.Contains(lower, "strategy") || strings.Contains(lower, "consulting"):
			return Result{Reply: replyStrategyExploration}
		default:
			return Result{Reply: replyElaborate}
		}

	case session.StageDeepDive:
		s.Details = append(s.Details, text)
		s.Stage = session.StageContactInfo
		return Result{Reply: replyAskContact}

	case session.StageContactInfo:
		match := emailRE.FindString(text)
		if match == "" {
			// Conversational retry, not an error; stage self-loops.
			return Result{Reply: replyEmailMissing}
		}
		s.Email = match
		if name := strings.TrimSpace(strings.Replace(text, match, "", 1)); name != "" {
			s.Name = name
		}
		s.Stage = session.StageConfirmEmail
		return Result{Reply: fmt.Sprintf(replyConfirmEmailFmt, s.Email)}

	case session.StageConfirmEmail:
		if containsAny(lower, affirmationKeywords) {
			s.Stage = session.StageClosing
			return Result{Reply: replyLeadCaptured, LeadComplete: true}
		}
		// Rejected: back to contact capture. The old email stays until a new
		// one is extracted.
		s.Stage = session.StageContactInfo
		return Result{Reply: replyEmailRetry}

	case session.StageClosing:
		return Result{Reply: replyGoodbye}

	default:
		// Unknown stage value: answer without touching state.
		return Result{Reply: replyFallback}
	}
}

func containsAny(haystack string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(haystack, n) {
			return true
		}
	}
	return false
}
