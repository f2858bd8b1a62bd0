// Package email provides the SMTP client used to deliver reminder emails.
package email

import (
	"bytes"
	"fmt"

	"gopkg.in/mail.v2"
)

// Attachment is a binary part embedded inline in the email body and
// referenced by its Content-ID (cid:...) from the HTML.
type Attachment struct {
	Filename  string
	Content   []byte
	ContentID string
}

type Client struct {
	smtpHost string
	smtpPort int
	username string
	password string
	from     string
}

func NewClient(smtpHost string, smtpPort int, username, password, from string) *Client {
	return &Client{
		smtpHost: smtpHost,
		smtpPort: smtpPort,
		username: username,
		password: password,
		from:     from,
	}
}

// Send delivers one HTML email to the given recipients.
func (c *Client) Send(to []string, subject, html string, attachments []Attachment) error {
	message := mail.NewMessage()

	message.SetHeader("From", c.from)
	message.SetHeader("To", to...)
	message.SetHeader("Subject", subject)
	message.SetBody("text/html", html)

	for _, a := range attachments {
		message.EmbedReader(a.Filename, bytes.NewReader(a.Content), mail.SetHeader(map[string][]string{
			"Content-ID": {fmt.Sprintf("<%s>", a.ContentID)},
		}))
	}

	dialer := mail.NewDialer(c.smtpHost, c.smtpPort, c.username, c.password)

	return dialer.DialAndSend(message)
}
