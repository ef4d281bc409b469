// internal/matching/notifier.go

package matching

import (
	"context"
	"log"

	notifications "github.com/johnbekele/pokojowo-web-project/internal/notification"
)

// NotifyMinScore is the lowest compatibility score worth an email.
const NotifyMinScore = 70

// NotifyTopMatches bounds how many matches one notification run reports.
const NotifyTopMatches = 5

// Notifier delivers match notifications to a user.
type Notifier interface {
	NotifyMatches(ctx context.Context, seeker *Profile, email string, matches []MatchResult) error
}

// EmailNotifier sends one email per qualifying match through an EmailSender.
type EmailNotifier struct {
	sender notifications.EmailSender
}

func NewEmailNotifier(sender notifications.EmailSender) *EmailNotifier {
	return &EmailNotifier{sender: sender}
}

// NotifyMatches emails the seeker about their top matches. Matches below
// NotifyMinScore are skipped; a failed send is logged and does not stop the
// rest of the batch.
func (n *EmailNotifier) NotifyMatches(ctx context.Context, seeker *Profile, email string, matches []MatchResult) error {
	if email == "" {
		return nil
	}

	sent := 0
	for _, match := range matches {
		if sent >= NotifyTopMatches {
			break
		}
		if match.CompatibilityScore < NotifyMinScore {
			continue
		}

		msg := notifications.NewMatchEmail(
			email,
			displayName(seeker.Firstname, seeker.Username),
			abbreviatedName(match.Firstname, match.Lastname),
			int(match.CompatibilityScore),
		)
		if err := n.sender.SendEmail(ctx, msg); err != nil {
			log.Printf("matching: failed to notify %s about match %s: %v", seeker.ID, match.UserID, err)
			continue
		}
		recordNotification()
		sent++
	}
	return nil
}

func displayName(firstname *string, username string) string {
	if firstname != nil && *firstname != "" {
		return *firstname
	}
	return username
}

// abbreviatedName renders "Firstname L." so the email never exposes a full
// surname before the users have connected.
func abbreviatedName(firstname, lastname *string) string {
	name := "Someone"
	if firstname != nil && *firstname != "" {
		name = *firstname
	}
	if lastname != nil && *lastname != "" {
		name += " " + (*lastname)[:1] + "."
	}
	return name
}
