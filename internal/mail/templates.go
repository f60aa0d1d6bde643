package mail

import (
	"fmt"
	"strings"

	"github.com/legacylifegroup/funnel-backend/internal/models"
	"gorm.io/gorm"
)

// Hardcoded defaults used when the email_templates table has no row for a
// key (or the table itself is missing in older deployments).
var DefaultTemplates = map[string]models.EmailTemplate{
	models.TemplateClientCompletion: {
		TemplateID: models.TemplateClientCompletion,
		Subject:    "{{brand_name}}: your coverage application is complete",
		HTMLBody: `<div style="font-family:Arial,sans-serif;max-width:600px;margin:0 auto">
<h2 style="color:{{brand_color}}">Thank you, {{first_name}}!</h2>
<p>Your application with {{brand_name}} has been received. A licensed
representative will reach out shortly to finalize your coverage of
{{coverage_amount}}.</p>
<p>Questions? Call us at {{contact_phone}} or reply to this email.</p>
<p style="color:#888;font-size:12px">{{brand_tagline}}</p>
</div>`,
	},
	models.TemplateRepCompletion: {
		TemplateID: models.TemplateRepCompletion,
		Subject:    "New completed lead: {{first_name}} {{last_name}} ({{brand_name}})",
		HTMLBody: `<div style="font-family:Arial,sans-serif">
<h3>Completed funnel submission</h3>
<ul>
<li>Name: {{first_name}} {{last_name}}</li>
<li>Email: {{email}}</li>
<li>Phone: {{phone}}</li>
<li>Coverage: {{coverage_amount}}</li>
<li>Brand: {{brand_name}}</li>
<li>Session: {{session_id}}</li>
</ul>
</div>`,
	},
}

// LoadTemplate returns the stored template for a key, falling back to the
// hardcoded default when no row exists (or the table itself is missing).
func LoadTemplate(db *gorm.DB, templateID string) models.EmailTemplate {
	if db != nil {
		var tmpl models.EmailTemplate
		if err := db.Where("template_id = ?", templateID).First(&tmpl).Error; err == nil {
			return tmpl
		}
	}
	if fallback, ok := DefaultTemplates[templateID]; ok {
		return fallback
	}
	return models.EmailTemplate{TemplateID: templateID}
}

// Render substitutes {{placeholder}} tokens in a template string.
func Render(s string, vars map[string]string) string {
	for key, val := range vars {
		s = strings.ReplaceAll(s, "{{"+key+"}}", val)
	}
	return s
}

// TemplateVars builds the placeholder set for a lead/brand pair. The brand
// may be nil when resolution failed; placeholders then render empty rather
// than leaking raw tokens into the mail.
func TemplateVars(lead *models.Lead, b *models.Brand) map[string]string {
	vars := map[string]string{
		"first_name":      lead.FirstName,
		"last_name":       lead.LastName,
		"email":           lead.Email,
		"phone":           lead.Phone,
		"session_id":      lead.SessionID,
		"coverage_amount": FormatCurrency(lead.CoverageAmount),
		"brand_name":      "",
		"brand_tagline":   "",
		"brand_color":     "#1a1a2e",
		"contact_phone":   "",
		"contact_email":   "",
	}
	if b != nil {
		vars["brand_name"] = b.Name
		vars["brand_tagline"] = b.Tagline
		vars["contact_phone"] = b.ContactPhone
		vars["contact_email"] = b.ContactEmail
		if b.PrimaryColor != "" {
			vars["brand_color"] = b.PrimaryColor
		}
	}
	return vars
}

// FormatCurrency renders a coverage amount for display. A nil amount means
// the applicant never specified one and must stay distinguishable from $0.
func FormatCurrency(amount *float64) string {
	if amount == nil {
		return "N/A"
	}
	return fmt.Sprintf("$%s", addThousands(fmt.Sprintf("%.0f", *amount)))
}

func addThousands(digits string) string {
	neg := strings.HasPrefix(digits, "-")
	if neg {
		digits = digits[1:]
	}
	var b strings.Builder
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}
