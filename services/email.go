package services

import (
	"bytes"
	"fmt"
	"html/template"
	"net/smtp"
	"os"
	"time"

	"github.com/lac-hong-legacy/folio_api/dto"

	"github.com/alphabatem/common/context"
	log "github.com/sirupsen/logrus"
)

// EmailService delivers contact form submissions to the site owner over
// SMTP. Reply-To is set to the visitor's address so the owner can answer
// directly.
type EmailService struct {
	context.DefaultService

	smtpHost     string
	smtpPort     string
	smtpUsername string
	smtpPassword string
	fromEmail    string
	fromName     string
	ownerEmail   string

	templates map[string]*template.Template
}

const EMAIL_SVC = "email_svc"

func (svc EmailService) Id() string {
	return EMAIL_SVC
}

func (svc *EmailService) Configure(ctx *context.Context) error {
	svc.smtpHost = os.Getenv("SMTP_HOST")
	svc.smtpPort = os.Getenv("SMTP_PORT")
	svc.smtpUsername = os.Getenv("SMTP_USERNAME")
	svc.smtpPassword = os.Getenv("SMTP_PASSWORD")
	svc.fromEmail = os.Getenv("FROM_EMAIL")
	svc.fromName = os.Getenv("FROM_NAME")
	svc.ownerEmail = os.Getenv("OWNER_EMAIL")

	if svc.smtpPort == "" {
		svc.smtpPort = "587"
	}
	if svc.fromName == "" {
		svc.fromName = "Folio"
	}
	if svc.ownerEmail == "" {
		svc.ownerEmail = svc.fromEmail
	}

	svc.templates = make(map[string]*template.Template)

	return svc.DefaultService.Configure(ctx)
}

func (svc *EmailService) Start() error {
	err := svc.loadTemplates()
	if err != nil {
		log.WithError(err).Error("Failed to load email templates")
		// Don't fail startup, just log the error
	}

	return nil
}

const contactEmailHTML = `
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>New Contact Message</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background-color: #4F46E5; color: white; padding: 20px; text-align: center; }
        .content { padding: 20px; background-color: #f9f9f9; }
        .details { background-color: white; padding: 15px; border-radius: 5px; margin: 15px 0; }
        .message { background-color: white; padding: 15px; border-left: 4px solid #4F46E5; margin: 15px 0; white-space: pre-wrap; }
        .footer { padding: 20px; text-align: center; color: #666; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>New Contact Message</h1>
        </div>
        <div class="content">
            <div class="details">
                <strong>From:</strong> {{.Fullname}} &lt;{{.Address}}&gt;<br>
                <strong>Subject:</strong> {{.Subject}}<br>
                <strong>Received:</strong> {{.ReceivedAt}}
            </div>
            <div class="message">{{.Message}}</div>
        </div>
        <div class="footer">
            <p>Sent by the portfolio contact form. Reply to this email to answer {{.Fullname}} directly.</p>
        </div>
    </div>
</body>
</html>
`

type contactEmailData struct {
	Fullname   string
	Address    string
	Subject    string
	Message    string
	ReceivedAt string
}

func (svc *EmailService) loadTemplates() error {
	var err error

	svc.templates["contact"], err = template.New("contact").Parse(contactEmailHTML)
	if err != nil {
		return fmt.Errorf("failed to parse contact email template: %v", err)
	}

	return nil
}

// SendContactEmail forwards one contact form submission to the owner.
func (svc *EmailService) SendContactEmail(req dto.ContactRequest) error {
	if svc.smtpHost == "" {
		log.Warn("SMTP not configured, skipping contact email")
		return nil
	}

	tmpl, exists := svc.templates["contact"]
	if !exists {
		return fmt.Errorf("template contact not found")
	}

	data := contactEmailData{
		Fullname:   req.Fullname,
		Address:    req.Address,
		Subject:    req.Subject,
		Message:    req.Message,
		ReceivedAt: time.Now().Format(time.RFC1123),
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return fmt.Errorf("failed to execute template: %v", err)
	}

	subject := fmt.Sprintf("[Contact] %s", req.Subject)
	return svc.sendEmail(svc.ownerEmail, req.Address, subject, body.String())
}

func (svc *EmailService) sendEmail(to, replyTo, subject, body string) error {
	if svc.smtpHost == "" {
		return fmt.Errorf("SMTP not configured")
	}

	auth := smtp.PlainAuth("", svc.smtpUsername, svc.smtpPassword, svc.smtpHost)

	msg := []byte(fmt.Sprintf(
		"From: %s <%s>\r\n"+
			"To: %s\r\n"+
			"Reply-To: %s\r\n"+
			"Subject: %s\r\n"+
			"MIME-Version: 1.0\r\n"+
			"Content-Type: text/html; charset=UTF-8\r\n"+
			"\r\n"+
			"%s",
		svc.fromName, svc.fromEmail, to, replyTo, subject, body))

	err := smtp.SendMail(
		svc.smtpHost+":"+svc.smtpPort,
		auth,
		svc.fromEmail,
		[]string{to},
		msg,
	)

	if err != nil {
		log.WithError(err).WithFields(log.Fields{"to": to, "subject": subject}).Error("Failed to send email")
		return fmt.Errorf("failed to send email: %v", err)
	}

	log.WithFields(log.Fields{"to": to, "subject": subject}).Info("Email sent successfully")
	return nil
}

// TestEmailConfig sends a plain message to the owner address to verify the
// SMTP settings.
func (svc *EmailService) TestEmailConfig() error {
	if svc.smtpHost == "" {
		return fmt.Errorf("SMTP host not configured")
	}
	if svc.ownerEmail == "" {
		return fmt.Errorf("owner email not configured")
	}

	subject := "Test Email Configuration - Folio"
	body := "This is a test email to verify SMTP configuration."

	return svc.sendEmail(svc.ownerEmail, svc.fromEmail, subject, body)
}
