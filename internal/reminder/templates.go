package reminder

import (
	"bytes"
	"fmt"
	"html/template"
)

// logoContentID is the CID under which the company logo is embedded when
// the file is available.
const logoContentID = "logo"

var warrantyTmpl = template.Must(template.New("warranty").Parse(`<html>
<body style="font-family: Arial, sans-serif; color: #333;">
{{if .HasLogo}}<img src="cid:logo" alt="logo" style="max-height: 60px;"/>{{end}}
<p>Dear {{.ClientName}},</p>
<p>The equipment below has reached its <b>{{.Interval}}</b> warranty review:</p>
<table cellpadding="4">
<tr><td><b>Equipment</b></td><td>{{.Equipment}}</td></tr>
<tr><td><b>Model</b></td><td>{{.Model}}</td></tr>
{{if .Serial}}<tr><td><b>Serial number</b></td><td>{{.Serial}}</td></tr>{{end}}
</table>
<p>Our team will contact you to schedule the review visit.</p>
{{if .HasNext}}<p>The next scheduled review is on <b>{{.NextDate}}</b>.</p>{{end}}
<p>Kind regards,<br/>Technical Support</p>
</body>
</html>`))

type warrantyEmailData struct {
	ClientName string
	Equipment  string
	Model      string
	Serial     string
	Interval   string
	NextDate   string
	HasNext    bool
	HasLogo    bool
}

// renderEmail produces the subject and HTML body for one due notification.
// The warranty milestone email is the full templated one; maintenance and
// renewal notices use short inline bodies.
func renderEmail(n Notification, hasLogo bool) (string, string, error) {
	switch n.Due.Kind {
	case KindWarrantyMilestone:
		subject := fmt.Sprintf("Warranty review: %s — %d months", n.Equipment.Name, n.Due.Milestone)
		data := warrantyEmailData{
			ClientName: n.Client.Name,
			Equipment:  n.Equipment.Name,
			Model:      n.Equipment.Model,
			Serial:     n.Equipment.SerialNumber,
			Interval:   fmt.Sprintf("%d month", n.Due.Milestone),
			HasLogo:    hasLogo,
		}
		if n.Due.Milestone != 1 {
			data.Interval += "s"
		}
		if !n.Due.NextDate.IsZero() {
			data.HasNext = true
			data.NextDate = FormatDisplay(n.Due.NextDate)
		}
		var buf bytes.Buffer
		if err := warrantyTmpl.Execute(&buf, data); err != nil {
			return "", "", fmt.Errorf("render warranty template: %w", err)
		}
		return subject, buf.String(), nil

	case KindMaintenanceReminder:
		label := "Preventive maintenance"
		if n.Due.Offset == 365 {
			label = "End of warranty / annual preventive maintenance"
		}
		subject := fmt.Sprintf("%s: %s in %d days", label, n.Equipment.Name, n.Due.DaysLeft)
		body := fmt.Sprintf(
			"<html><body><p>Dear %s,</p><p>%s for equipment <b>%s</b> (%s) is scheduled for <b>%s</b>, %d days from now.</p><p>Kind regards,<br/>Technical Support</p></body></html>",
			template.HTMLEscapeString(n.Client.Name),
			label,
			template.HTMLEscapeString(n.Equipment.Name),
			template.HTMLEscapeString(n.Equipment.Model),
			FormatDisplay(n.Due.Date),
			n.Due.DaysLeft,
		)
		return subject, body, nil

	case KindRenewalNotice:
		subject := fmt.Sprintf("Warranty renewal: %s", n.Equipment.Name)
		body := fmt.Sprintf(
			"<html><body><p>Dear %s,</p><p>The warranty for equipment <b>%s</b> (%s) ends on <b>%s</b>, %d days from now. Contact us to renew your coverage and keep preventive maintenance active.</p><p>Kind regards,<br/>Technical Support</p></body></html>",
			template.HTMLEscapeString(n.Client.Name),
			template.HTMLEscapeString(n.Equipment.Name),
			template.HTMLEscapeString(n.Equipment.Model),
			FormatDisplay(n.Due.Date),
			n.Due.DaysLeft,
		)
		return subject, body, nil

	default:
		return "", "", fmt.Errorf("unknown notification kind %q", n.Due.Kind)
	}
}
