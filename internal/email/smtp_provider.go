package email

import (
	"bytes"
	"fmt"
	"html/template"

	gomail "gopkg.in/gomail.v2"
)

const welcomeTemplate = `<p>Hi {{.Name}},</p>
<p>Your {{.Role}} account has been created. You can now sign in and
{{if eq .Role "employer"}}post your first job opening{{else}}start applying for jobs{{end}}.</p>
<p>The team</p>`

// SMTPProvider sends mail through a plain SMTP relay via gomail.
type SMTPProvider struct {
	cfg    Config
	dialer *gomail.Dialer
	tmpl   *template.Template
}

func NewSMTPProvider(cfg Config) (*SMTPProvider, error) {
	if cfg.Host == "" {
		return nil, fmt.Errorf("smtp host is required")
	}
	if cfg.Port == 0 {
		cfg.Port = 587
	}

	tmpl, err := template.New("welcome").Parse(welcomeTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse welcome template: %w", err)
	}

	return &SMTPProvider{
		cfg:    cfg,
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		tmpl:   tmpl,
	}, nil
}

func (p *SMTPProvider) SendWelcome(to, name, role string) error {
	var body bytes.Buffer
	data := struct {
		Name string
		Role string
	}{Name: name, Role: role}

	if err := p.tmpl.Execute(&body, data); err != nil {
		return fmt.Errorf("failed to render welcome template: %w", err)
	}

	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", p.cfg.FromEmail, p.cfg.FromName)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", "Welcome aboard")
	msg.SetBody("text/html", body.String())

	if err := p.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send welcome email: %w", err)
	}
	return nil
}

func (p *SMTPProvider) Close() error {
	return nil
}
