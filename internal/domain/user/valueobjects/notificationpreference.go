package valueobjects

import "fmt"

// NotificationPreference controls which ticket emails a user receives.
type NotificationPreference string

const (
	// NotifyAll delivers an email for every ticket update.
	NotifyAll NotificationPreference = "all"
	// NotifyImportant delivers emails only for high and urgent priority tickets.
	NotifyImportant NotificationPreference = "important"
	// NotifyNone suppresses all ticket emails.
	NotifyNone NotificationPreference = "none"
)

var validNotificationPreferences = map[NotificationPreference]bool{
	NotifyAll:       true,
	NotifyImportant: true,
	NotifyNone:      true,
}

func (p NotificationPreference) String() string {
	return string(p)
}

func (p NotificationPreference) IsValid() bool {
	return validNotificationPreferences[p]
}

func NewNotificationPreference(s string) (NotificationPreference, error) {
	p := NotificationPreference(s)
	if !p.IsValid() {
		return "", fmt.Errorf("invalid notification preference: %s", s)
	}
	return p, nil
}
