package smtp

import (
	"errors"
	"fmt"
	"mime"
	smtpPkg "net/smtp"
	"os"
	"strings"
)

var ErrNoRecipients = errors.New("smtp: no recipients")

type ItfSmtp interface {
	SendMail(to []string, subject string, body string) error
}

type smtp struct {
	auth smtpPkg.Auth
	mail string
	addr string
}

func New() ItfSmtp {
	mail := os.Getenv("SMTP_MAIL")
	password := os.Getenv("SMTP_PASSWORD")

	host := os.Getenv("SMTP_HOST")
	if host == "" {
		host = "smtp.gmail.com"
	}
	port := os.Getenv("SMTP_PORT")
	if port == "" {
		port = "587"
	}

	auth := smtpPkg.PlainAuth("", mail, password, host)

	return &smtp{auth: auth, mail: mail, addr: host + ":" + port}
}

// SendMail sends a plain UTF-8 message to every address in to.
func (s *smtp) SendMail(to []string, subject string, body string) error {
	if len(to) == 0 {
		return ErrNoRecipients
	}

	message := []byte(fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/plain; charset=\"UTF-8\"\r\n\r\n%s",
		s.mail, strings.Join(to, ", "), mime.QEncoding.Encode("utf-8", subject), strings.ReplaceAll(body, "\n", "\r\n")))

	return smtpPkg.SendMail(s.addr, s.auth, s.mail, to, message)
}
