package mailer

import (
	"bytes"
	"errors"
	"log"
	"net/smtp"
	"os"
	"testing"

	"hopebridge/internal/worker"

	"github.com/stretchr/testify/require"
)

func TestNotify(t *testing.T) {
	orig := smtpSendMail
	defer func() { smtpSendMail = orig }()

	t.Run("sends via smtp", func(t *testing.T) {
		var gotAddr, gotFrom string
		var gotTo []string
		var gotMsg []byte
		smtpSendMail = func(addr string, _ smtp.Auth, from string, to []string, msg []byte) error {
			gotAddr = addr
			gotFrom = from
			gotTo = to
			gotMsg = msg
			return nil
		}
		pool := worker.NewPool(1)
		m := New(Config{
			Host:     "smtp.example.org",
			Port:     587,
			Username: "bot",
			Password: "secret",
			From:     "noreply@example.org",
			To:       "staff@example.org,lead@example.org",
		}, pool)

		m.Notify("New contact message", "From: Ada")
		pool.Stop()

		require.Equal(t, "smtp.example.org:587", gotAddr)
		require.Equal(t, "noreply@example.org", gotFrom)
		require.Equal(t, []string{"staff@example.org", "lead@example.org"}, gotTo)
		require.Contains(t, string(gotMsg), "Subject: New contact message")
		require.Contains(t, string(gotMsg), "From: Ada")
	})

	t.Run("send failure logs the body", func(t *testing.T) {
		smtpSendMail = func(string, smtp.Auth, string, []string, []byte) error {
			return errors.New("connection refused")
		}
		var logged bytes.Buffer
		log.SetOutput(&logged)
		defer log.SetOutput(os.Stderr)

		pool := worker.NewPool(1)
		m := New(Config{Host: "smtp.example.org", Port: 587, From: "a@b", To: "c@d"}, pool)
		m.Notify("subject", "From: Ada\n\nplease call back")
		pool.Stop()

		require.Contains(t, logged.String(), "connection refused")
		require.Contains(t, logged.String(), "please call back")
	})

	t.Run("disabled without host", func(t *testing.T) {
		called := false
		smtpSendMail = func(string, smtp.Auth, string, []string, []byte) error {
			called = true
			return nil
		}
		pool := worker.NewPool(1)
		m := New(Config{To: "c@d"}, pool)
		require.False(t, m.Enabled())
		m.Notify("subject", "body")
		pool.Stop()
		require.False(t, called)
	})
}
