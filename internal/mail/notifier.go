package mail

import (
	"log/slog"

	"github.com/legacylifegroup/funnel-backend/internal/models"
	"gorm.io/gorm"
)

// Notifier composes branded completion emails. Sender address derives from
// the brand's domain; results are soft — callers log, they never fail.
type Notifier struct {
	client     *Client
	db         *gorm.DB
	adminEmail string
}

func NewNotifier(client *Client, db *gorm.DB, adminEmail string) *Notifier {
	return &Notifier{client: client, db: db, adminEmail: adminEmail}
}

func (n *Notifier) IsConfigured() bool { return n.client.IsConfigured() }

// SendCompletionEmail notifies the applicant that their funnel submission
// is complete, then copies the rep inbox when one is configured.
func (n *Notifier) SendCompletionEmail(lead *models.Lead, b *models.Brand) SendResult {
	if !n.client.IsConfigured() {
		return SendResult{Skipped: true}
	}
	if lead.Email == "" {
		return SendResult{Skipped: true}
	}

	result := n.sendTemplated(models.TemplateClientCompletion, lead.Email, lead, b)

	if n.adminEmail != "" {
		if rep := n.sendTemplated(models.TemplateRepCompletion, n.adminEmail, lead, b); rep.Failed {
			slog.Error("rep completion email failed",
				"session_id", lead.SessionID, "action", "send_rep_email", "error", rep.Error)
		}
	}
	return result
}

// SendTest sends the client completion template to an arbitrary address
// with sample data, for the admin panel's email-test utility.
func (n *Notifier) SendTest(to string, b *models.Brand) SendResult {
	sample := &models.Lead{
		SessionID: "test-session",
		FirstName: "Test",
		LastName:  "Recipient",
		Email:     to,
	}
	return n.sendTemplated(models.TemplateClientCompletion, to, sample, b)
}

func (n *Notifier) sendTemplated(templateID, to string, lead *models.Lead, b *models.Brand) SendResult {
	tmpl := LoadTemplate(n.db, templateID)
	vars := TemplateVars(lead, b)

	return n.client.Send(Message{
		From:    n.senderFor(b),
		To:      to,
		Subject: Render(tmpl.Subject, vars),
		HTML:    Render(tmpl.HTMLBody, vars),
	})
}

func (n *Notifier) senderFor(b *models.Brand) string {
	if b != nil && b.Domain != "" {
		return "no-reply@" + b.Domain
	}
	return n.client.FromFallback()
}
