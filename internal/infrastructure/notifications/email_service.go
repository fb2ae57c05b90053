package notifications

import (
	"fmt"
	"log"
	"net/smtp"
	"strconv"

	"github.com/Subham0803a/AWS-RDS-and-Azure-Blob-Setup/domain"
)

// EmailServiceImpl implements domain.EmailService over SMTP with
// STARTTLS. When no SMTP host is configured the message is logged
// instead of sent, which keeps local development working without a
// mail account.
type EmailServiceImpl struct {
	host      string
	port      int
	username  string
	password  string
	fromEmail string
	fromName  string
}

// NewEmailService creates a new SMTP email service
func NewEmailService(host string, port int, username, password, fromEmail, fromName string) domain.EmailService {
	return &EmailServiceImpl{
		host:      host,
		port:      port,
		username:  username,
		password:  password,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

// SendOTP implements domain.EmailService
func (e *EmailServiceImpl) SendOTP(to, userName, code string) error {
	subject := "Your OTP Code - Skynet"
	body := otpBody(userName, code)
	return e.send(to, subject, body)
}

// SendWelcome implements domain.EmailService
func (e *EmailServiceImpl) SendWelcome(to, userName string) error {
	subject := "Welcome to Skynet!"
	body := welcomeBody(userName)
	return e.send(to, subject, body)
}

func (e *EmailServiceImpl) send(to, subject, body string) error {
	if e.host == "" {
		log.Printf("[MOCK EMAIL] To: %s, Subject: %s", to, subject)
		return nil
	}

	msg := []byte(
		fmt.Sprintf("From: %s <%s>\r\n", e.fromName, e.fromEmail) +
			fmt.Sprintf("To: %s\r\n", to) +
			fmt.Sprintf("Subject: %s\r\n", subject) +
			"MIME-Version: 1.0\r\n" +
			"Content-Type: text/html; charset=\"utf-8\"\r\n" +
			"\r\n" +
			body,
	)

	addr := e.host + ":" + strconv.Itoa(e.port)
	auth := smtp.PlainAuth("", e.username, e.password, e.host)

	// smtp.SendMail negotiates STARTTLS when the server advertises it.
	if err := smtp.SendMail(addr, auth, e.fromEmail, []string{to}, msg); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", to, err)
	}
	return nil
}

func otpBody(userName, code string) string {
	if userName == "" {
		userName = "there"
	}
	return fmt.Sprintf(
		"<html><body>"+
			"<p>Hi %s,</p>"+
			"<p>Your verification code is: <strong>%s</strong></p>"+
			"<p>The code expires shortly, so please use it right away.</p>"+
			"</body></html>", userName, code)
}

func welcomeBody(userName string) string {
	if userName == "" {
		userName = "there"
	}
	return fmt.Sprintf(
		"<html><body>"+
			"<p>Hi %s,</p>"+
			"<p>Your account has been verified. Welcome to Skynet!</p>"+
			"</body></html>", userName)
}
