package delivery

import (
	"fmt"
	"html/template"
	"sort"
	"strings"

	"github.com/datavruti/formgate/pkg/submission"
)

// knownFields are rendered as labeled rows in a fixed order. Anything else
// in the payload lands in the additional-fields section so no submitted data
// is silently dropped from the notification.
var knownFields = []struct {
	key   string
	label string
}{
	{"name", "Name"},
	{"fullName", "Full Name"},
	{"email", "Email"},
	{"phone", "Phone"},
	{"mobile", "Mobile"},
	{"company", "Company"},
	{"skills", "Skills"},
	{"experience", "Experience"},
}

// discriminatorFields steer classification and carry no information staff
// need to read.
var discriminatorFields = map[string]bool{
	"type":     true,
	"formType": true,
}

type notificationRow struct {
	Label string
	Value string
}

type notificationData struct {
	Heading      string
	Rows         []notificationRow
	MessageLabel string
	Message      string
	Extras       []notificationRow
	Submitted    string
	Receipt      string
}

var notificationTmpl = template.Must(template.New("notification").Parse(notificationHTML))

// renderNotification builds the staff notification HTML for a record.
// Field values are already sanitized; html/template escaping is the second
// layer, so even a scrubber miss cannot inject markup into the email.
func renderNotification(rec *submission.Record) (string, error) {
	data := notificationData{
		Heading:      rec.Kind.Label(),
		MessageLabel: "Message",
		Submitted:    rec.ReceivedAtDisplay,
		Receipt:      rec.ReceiptID,
	}
	if rec.Kind == submission.KindCandidate {
		data.MessageLabel = "About Candidate"
	}

	rendered := map[string]bool{"message": true}
	for field := range discriminatorFields {
		rendered[field] = true
	}

	for _, f := range knownFields {
		if value, ok := rec.Fields[f.key].(string); ok && value != "" {
			data.Rows = append(data.Rows, notificationRow{Label: f.label, Value: value})
			rendered[f.key] = true
		}
	}

	if message, ok := rec.Fields["message"].(string); ok && message != "" {
		data.Message = message
	}

	extras := make([]string, 0, len(rec.Fields))
	for key := range rec.Fields {
		if !rendered[key] {
			extras = append(extras, key)
		}
	}
	sort.Strings(extras)
	for _, key := range extras {
		data.Extras = append(data.Extras, notificationRow{
			Label: key,
			Value: stringify(rec.Fields[key]),
		})
	}

	var sb strings.Builder
	if err := notificationTmpl.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("%w: %v", ErrRenderFailed, err)
	}
	return sb.String(), nil
}

func stringify(v any) string {
	switch value := v.(type) {
	case string:
		return value
	case nil:
		return ""
	case []any:
		parts := make([]string, len(value))
		for i, item := range value {
			parts[i] = stringify(item)
		}
		return strings.Join(parts, ", ")
	default:
		return fmt.Sprintf("%v", value)
	}
}

const notificationHTML = `<!DOCTYPE html>
<html>
  <head>
    <style>
      body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
      .container { max-width: 600px; margin: 0 auto; padding: 20px; }
      .header { background: #1f2a44; color: white; padding: 30px; text-align: center; border-radius: 10px 10px 0 0; }
      .content { background: #f9f9f9; padding: 30px; border: 1px solid #ddd; }
      .field { margin-bottom: 20px; }
      .label { font-weight: bold; color: #666; margin-bottom: 5px; }
      .value { background: white; padding: 10px; border-radius: 5px; border-left: 4px solid #1f2a44; white-space: pre-line; }
      .footer { background: #666; color: white; padding: 20px; text-align: center; border-radius: 0 0 10px 10px; font-size: 12px; }
    </style>
  </head>
  <body>
    <div class="container">
      <div class="header">
        <h2>{{.Heading}}</h2>
        <p>DataVruti Website</p>
      </div>
      <div class="content">
        {{range .Rows}}
        <div class="field">
          <div class="label">{{.Label}}:</div>
          <div class="value">{{.Value}}</div>
        </div>
        {{end}}
        {{if .Message}}
        <div class="field">
          <div class="label">{{.MessageLabel}}:</div>
          <div class="value">{{.Message}}</div>
        </div>
        {{end}}
        {{if .Extras}}
        <div class="field">
          <div class="label">Additional fields:</div>
          {{range .Extras}}
          <div class="value">{{.Label}}: {{.Value}}</div>
          {{end}}
        </div>
        {{end}}
        <div class="field">
          <div class="label">Submitted:</div>
          <div class="value">{{.Submitted}}</div>
        </div>
      </div>
      <div class="footer">
        <p>This email was sent from the DataVruti website contact form</p>
        <p>Reference: {{.Receipt}}</p>
      </div>
    </div>
  </body>
</html>
`
