package mail

import (
	"bytes"
	"fmt"
	"text/template"

	"gopkg.in/gomail.v2"
)

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

type OutreachEmailData struct {
	FirstName    string
	LastName     string
	CampaignName string
}

var outreachTemplate = template.Must(template.New("outreach").Parse(
	`Hi {{.FirstName}},

I'm reaching out as part of our {{.CampaignName}} campaign and would love to
connect. If this isn't relevant to you, just ignore this message.

Best regards`))

func NewEmailSender(host string, port int, user, password, from string) *EmailSender {
	return &EmailSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		From:     from,
	}
}

// SendOutreach delivers the first-touch message for a lead.
func (s *EmailSender) SendOutreach(to, firstName, lastName, campaignName string) error {
	var body bytes.Buffer
	data := OutreachEmailData{
		FirstName:    firstName,
		LastName:     lastName,
		CampaignName: campaignName,
	}
	if err := outreachTemplate.Execute(&body, data); err != nil {
		return fmt.Errorf("render outreach template: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", fmt.Sprintf("Reaching out: %s", campaignName))
	m.SetBody("text/plain", body.String())

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("send outreach email: %w", err)
	}
	return nil
}
