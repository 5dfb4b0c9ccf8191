package notify

import (
	"context"
	"fmt"
	"strings"

	"github.com/polymathcode/leadchat/internal/observability/metrics"
	"github.com/polymathcode/leadchat/internal/session"
	"github.com/polymathcode/leadchat/pkg/logging"
)

// LeadMailer emails completed leads to the business inbox. Delivery is
// fire-and-forget from the caller's perspective: failures are logged, never
// surfaced, never retried, and never touch the session.
type LeadMailer struct {
	sender  EmailSender
	to      string
	logger  *logging.Logger
	metrics *metrics.ChatMetrics
}

// NewLeadMailer creates a lead mailer that delivers to the given recipient.
// metrics may be nil.
func NewLeadMailer(sender EmailSender, to string, m *metrics.ChatMetrics, logger *logging.Logger) *LeadMailer {
	if logger == nil {
		logger = logging.Default()
	}
	return &LeadMailer{
		sender:  sender,
		to:      to,
		logger:  logger,
		metrics: m,
	}
}

// NotifyLead formats and dispatches the new-lead email for a completed session.
func (m *LeadMailer) NotifyLead(ctx context.Context, s *session.Session) {
	if m.sender == nil || m.to == "" {
		m.logger.Warn("notify: lead mailer not configured, dropping lead notification", "session_id", s.ID, "email", s.Email)
		m.metrics.ObserveLeadEmail("dropped")
		return
	}

	msg := EmailMessage{
		To:      m.to,
		Subject: LeadSubject(s),
		Body:    leadPlainBody(s),
		HTML:    LeadHTMLBody(s),
	}

	if err := m.sender.Send(ctx, msg); err != nil {
		m.logger.Error("notify: failed to send lead email", "error", err, "session_id", s.ID, "lead_email", s.Email)
		m.metrics.ObserveLeadEmail("error")
		return
	}

	m.metrics.ObserveLeadEmail("sent")
	m.logger.Info("notify: lead email sent", "session_id", s.ID, "lead_email", s.Email)
}

// LeadSubject builds the notification subject line.
// Format: "NEW LEAD: {interest or 'Inquiry'} - {name or email}", with an
// " (Urgent)" suffix when the interest mentions urgency.
func LeadSubject(s *session.Session) string {
	interest := s.Interest
	if interest == "" {
		interest = "Inquiry"
	}
	who := s.Name
	if who == "" {
		who = s.Email
	}
	subject := fmt.Sprintf("NEW LEAD: %s - %s", interest, who)
	if strings.Contains(strings.ToLower(s.Interest), "urgent") {
		subject += " (Urgent)"
	}
	return subject
}

// LeadHTMLBody renders the lead summary plus the full conversation transcript.
func LeadHTMLBody(s *session.Session) string {
	name := s.Name
	if name == "" {
		name = "Not provided"
	}
	interest := s.Interest
	if interest == "" {
		interest = "General"
	}

	var b strings.Builder
	b.WriteString("<h2>New Client Inquiry for Polymath Code</h2>\n")
	fmt.Fprintf(&b, "<p><strong>Client Name:</strong> %s</p>\n", name)
	fmt.Fprintf(&b, "<p><strong>Email Address:</strong> %s</p>\n", s.Email)
	fmt.Fprintf(&b, "<p><strong>Primary Interest:</strong> %s</p>\n", interest)
	b.WriteString("<p><strong>Client Objectives/Needs:</strong></p>\n<ul>\n")
	for _, d := range s.Details {
		fmt.Fprintf(&b, "<li>%s</li>\n", d)
	}
	b.WriteString("</ul>\n<hr />\n")
	b.WriteString("<p><strong>AI Conversation Transcript:</strong></p>\n<pre>")
	b.WriteString(TranscriptText(s))
	b.WriteString("</pre>\n<p>Sent via Polymath AI Contact</p>")
	return b.String()
}

// TranscriptText renders the transcript as "SENDER: text" lines in order.
func TranscriptText(s *session.Session) string {
	lines := make([]string, 0, len(s.Transcript))
	for _, t := range s.Transcript {
		lines = append(lines, fmt.Sprintf("%s: %s", strings.ToUpper(t.Sender), t.Text))
	}
	return strings.Join(lines, "\n")
}

func leadPlainBody(s *session.Session) string {
	name := s.Name
	if name == "" {
		name = "Not provided"
	}
	interest := s.Interest
	if interest == "" {
		interest = "General"
	}

	var b strings.Builder
	b.WriteString("New Client Inquiry for Polymath Code\n\n")
	fmt.Fprintf(&b, "Client Name: %s\n", name)
	fmt.Fprintf(&b, "Email Address: %s\n", s.Email)
	fmt.Fprintf(&b, "Primary Interest: %s\n\n", interest)
	b.WriteString("Client Objectives/Needs:\n")
	for _, d := range s.Details {
		fmt.Fprintf(&b, "- %s\n", d)
	}
	b.WriteString("\nAI Conversation Transcript:\n")
	b.WriteString(TranscriptText(s))
	return b.String()
}
