package dialogue

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/polymathcode/leadchat/internal/session"
)

func newSessionAt(stage session.Stage) *session.Session {
	s := session.New("test-session")
	s.Stage = stage
	return s
}

func TestEngine_GreetingAlwaysAdvances(t *testing.T) {
	engine := NewEngine()

	for _, msg := range []string{"hi", "asdfgh", "", "I want everything"} {
		s := newSessionAt(session.StageGreeting)
		res := engine.HandleTurn(s, msg)

		assert.Equal(t, session.StageNeeds, s.Stage, "message %q", msg)
		assert.Contains(t, res.Reply, "Welcome")
		assert.False(t, res.Escalation)
	}
}

func TestEngine_NeedsBranching(t *testing.T) {
	engine := NewEngine()

	tests := []struct {
		name      string
		message   string
		wantReply string
	}{
		{"website keyword", "I need a website", "objectives"},
		{"app keyword", "we want a mobile app", "custom application"},
		{"custom keyword", "a custom build", "custom application"},
		{"software keyword", "internal software", "custom application"},
		{"strategy keyword", "digital strategy please", "strategic areas"},
		{"consulting keyword", "consulting engagement", "strategic areas"},
		{"website outranks app", "a website and an app", "objectives"},
		{"case-insensitive", "A WEBSITE", "objectives"},
		{"no keyword", "something else entirely", "elaborate"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newSessionAt(session.StageNeeds)
			res := engine.HandleTurn(s, tt.message)

			assert.Equal(t, session.StageDeepDive, s.Stage)
			assert.Equal(t, tt.message, s.Interest, "interest stores the raw message")
			assert.Contains(t, res.Reply, tt.wantReply)
		})
	}
}

func TestEngine_DeepDiveCollectsDetails(t *testing.T) {
	engine := NewEngine()
	s := newSessionAt(session.StageDeepDive)

	res := engine.HandleTurn(s, "Want online presence and leads")

	assert.Equal(t, session.StageContactInfo, s.Stage)
	require.Len(t, s.Details, 1)
	assert.Equal(t, "Want online presence and leads", s.Details[0])
	assert.Contains(t, res.Reply, "full name and preferred email")
}

func TestEngine_ContactInfoExtraction(t *testing.T) {
	engine := NewEngine()

	tests := []struct {
		name      string
		message   string
		wantEmail string
		wantName  string
	}{
		{"name then email", "Jane Doe jane@example.com", "jane@example.com", "Jane Doe"},
		{"email only", "jane@example.com", "jane@example.com", ""},
		{"email first", "john.smith@biz.co.uk John Smith", "john.smith@biz.co.uk", "John Smith"},
		{"dotted and hyphenated", "my email is first.last-x@sub.domain-y.io", "first.last-x@sub.domain-y.io", "my email is"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newSessionAt(session.StageContactInfo)
			res := engine.HandleTurn(s, tt.message)

			assert.Equal(t, session.StageConfirmEmail, s.Stage)
			assert.Equal(t, tt.wantEmail, s.Email)
			assert.Equal(t, tt.wantName, s.Name)
			assert.Contains(t, res.Reply, "**"+tt.wantEmail+"**", "reply echoes the email in bold markup")
		})
	}
}

func TestEngine_ContactInfoRetryOnMissingEmail(t *testing.T) {
	engine := NewEngine()
	s := newSessionAt(session.StageContactInfo)

	res := engine.HandleTurn(s, "no email here")

	assert.Equal(t, session.StageContactInfo, s.Stage, "stage self-loops")
	assert.Empty(t, s.Email)
	assert.Contains(t, res.Reply, "missed your email address")
	assert.False(t, res.LeadComplete)
}

func TestEngine_ConfirmEmail(t *testing.T) {
	engine := NewEngine()

	tests := []struct {
		name         string
		message      string
		wantStage    session.Stage
		wantComplete bool
	}{
		{"yes", "yes", session.StageClosing, true},
		{"correct", "that's correct", session.StageClosing, true},
		{"yeah", "yeah!", session.StageClosing, true},
		{"right", "right", session.StageClosing, true},
		{"uppercase", "YES", session.StageClosing, true},
		{"rejection", "no, it's wrong", session.StageContactInfo, false},
		{"typo rejection", "nope", session.StageContactInfo, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newSessionAt(session.StageConfirmEmail)
			s.Email = "jane@example.com"

			res := engine.HandleTurn(s, tt.message)

			assert.Equal(t, tt.wantStage, s.Stage)
			assert.Equal(t, tt.wantComplete, res.LeadComplete)
			if !tt.wantComplete {
				assert.Equal(t, "jane@example.com", s.Email, "rejection keeps the old email until a new one is extracted")
				assert.Contains(t, res.Reply, "try again")
			}
		})
	}
}

func TestEngine_ClosingIsTerminal(t *testing.T) {
	engine := NewEngine()
	s := newSessionAt(session.StageClosing)

	for i := 0; i < 3; i++ {
		res := engine.HandleTurn(s, "anything else")
		assert.Equal(t, session.StageClosing, s.Stage)
		assert.Contains(t, res.Reply, "wonderful day")
		assert.False(t, res.LeadComplete)
	}
}

func TestEngine_UnknownStageFallback(t *testing.T) {
	engine := NewEngine()
	s := newSessionAt(session.Stage("CORRUPTED"))

	res := engine.HandleTurn(s, "hello?")

	assert.Equal(t, session.Stage("CORRUPTED"), s.Stage, "fallback does not mutate stage")
	assert.Contains(t, res.Reply, "rephrase")
}

func TestEngine_EscalationOutranksStageLogic(t *testing.T) {
	engine := NewEngine()

	// Escalation fires at every stage and never advances it.
	for _, stage := range []session.Stage{
		session.StageGreeting,
		session.StageNeeds,
		session.StageDeepDive,
		session.StageContactInfo,
		session.StageConfirmEmail,
		session.StageClosing,
	} {
		s := newSessionAt(stage)
		res := engine.HandleTurn(s, "I want to speak to a HUMAN")

		assert.True(t, res.Escalation, "stage %s", stage)
		assert.Equal(t, stage, s.Stage, "escalation must not advance stage %s", stage)
		assert.Contains(t, res.Reply, "specialists")
	}
}

func TestEngine_EscalationKeywords(t *testing.T) {
	engine := NewEngine()

	tests := []struct {
		message string
		want    bool
	}{
		{"get me a human", true},
		{"a real person please", true},
		{"can I speak to someone", true},
		{"I'm getting frustrated", true},
		{"I need a website", false},
		{"humanities websites", true}, // substring match, by contract
	}

	for _, tt := range tests {
		s := newSessionAt(session.StageNeeds)
		res := engine.HandleTurn(s, tt.message)
		assert.Equal(t, tt.want, res.Escalation, "message %q", tt.message)
	}
}

func TestEngine_TranscriptGrowsTwoPerTurn(t *testing.T) {
	engine := NewEngine()
	s := newSessionAt(session.StageGreeting)

	turns := []string{"hi", "I need a website", "speak to a human", "online store", "Jane jane@example.com"}
	for i, msg := range turns {
		engine.HandleTurn(s, msg)
		require.Len(t, s.Transcript, 2*(i+1), "after turn %d", i+1)
	}

	// Alternating user/ai entries, in order.
	for i, turn := range s.Transcript {
		if i%2 == 0 {
			assert.Equal(t, session.SenderUser, turn.Sender, "entry %d", i)
			assert.Equal(t, turns[i/2], turn.Text)
		} else {
			assert.Equal(t, session.SenderAI, turn.Sender, "entry %d", i)
			assert.NotEmpty(t, turn.Text)
		}
	}
}

func TestEngine_EndToEndScenario(t *testing.T) {
	engine := NewEngine()
	s := session.New("e2e")

	res := engine.HandleTurn(s, "init")
	require.Contains(t, res.Reply, "Welcome")
	require.Equal(t, session.StageNeeds, s.Stage)

	res = engine.HandleTurn(s, "I need a website")
	require.Equal(t, session.StageDeepDive, s.Stage)
	require.Contains(t, res.Reply, "objectives")

	res = engine.HandleTurn(s, "Want online presence and leads")
	require.Equal(t, session.StageContactInfo, s.Stage)

	res = engine.HandleTurn(s, "John Smith john@biz.com")
	require.Equal(t, session.StageConfirmEmail, s.Stage)
	require.Contains(t, res.Reply, "john@biz.com")
	require.False(t, res.LeadComplete)

	res = engine.HandleTurn(s, "yes correct")
	require.Equal(t, session.StageClosing, s.Stage)
	require.True(t, res.LeadComplete)

	assert.Equal(t, "John Smith", s.Name)
	assert.Equal(t, "john@biz.com", s.Email)
	assert.Equal(t, "I need a website", s.Interest)
	assert.Equal(t, []string{"Want online presence and leads"}, s.Details)
	assert.Len(t, s.Transcript, 10)
}

func TestEngine_EmailRejectionRoundTrip(t *testing.T) {
	engine := NewEngine()
	s := newSessionAt(session.StageContactInfo)

	engine.HandleTurn(s, "Jane Doe jane@exmaple.com")
	require.Equal(t, session.StageConfirmEmail, s.Stage)

	engine.HandleTurn(s, "no that's a typo")
	require.Equal(t, session.StageContactInfo, s.Stage)
	assert.Equal(t, "jane@exmaple.com", s.Email, "old email kept until replaced")

	res := engine.HandleTurn(s, "jane@example.com")
	require.Equal(t, session.StageConfirmEmail, s.Stage)
	assert.Equal(t, "jane@example.com", s.Email)
	assert.True(t, strings.Contains(res.Reply, "jane@example.com"))
}
