package email

// Provider sends transactional mail. A nil provider disables email entirely,
// which is the default when SMTP is not configured.
type Provider interface {
	// SendWelcome greets a freshly registered user.
	SendWelcome(to, name, role string) error

	Close() error
}

// Config holds SMTP settings.
type Config struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromEmail string
	FromName  string
}
