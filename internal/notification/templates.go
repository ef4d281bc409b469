// internal/notification/templates.go
// Rendered email bodies for match notifications.

package notifications

import (
	"bytes"
	"fmt"
	"html/template"
	"log"
)

var matchEmailTemplate = template.Must(template.New("new_match").Parse(`
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
	<h2>You have a new flatmate match!</h2>
	<p>Hi {{.UserName}},</p>
	<p><strong>{{.MatchName}}</strong> looks like a great fit for you with a
	<strong>{{.MatchScore}}%</strong> compatibility score.</p>
	<p>Log in to see the full compatibility breakdown and start a conversation.</p>
	<p>Happy flat hunting!</p>
</body>
</html>
`))

// NewMatchEmail renders the notification sent when a high-quality match is
// found. MatchScore is truncated to a whole percentage for display.
func NewMatchEmail(toEmail, userName, matchName string, matchScore int) *EmailMessage {
	data := struct {
		UserName   string
		MatchName  string
		MatchScore int
	}{
		UserName:   userName,
		MatchName:  matchName,
		MatchScore: matchScore,
	}

	var html bytes.Buffer
	if err := matchEmailTemplate.Execute(&html, data); err != nil {
		log.Printf("Failed to render match email template: %v", err)
	}

	plain := fmt.Sprintf(
		"Hi %s,\n\n%s looks like a great fit for you with a %d%% compatibility score.\n\nLog in to see the full compatibility breakdown.\n",
		userName, matchName, matchScore,
	)

	return &EmailMessage{
		To:        toEmail,
		ToName:    userName,
		Subject:   fmt.Sprintf("New match: %s (%d%% compatible)", matchName, matchScore),
		PlainText: plain,
		HTML:      html.String(),
	}
}
