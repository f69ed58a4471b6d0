// File: internal/mailer/mailer.go

// Package mailer delivers staff notification mails for incoming contact
// messages and volunteer applications. Delivery happens on a worker pool
// and a failed send is logged, never surfaced to the site visitor.
package mailer

import (
	"fmt"
	"log"
	"net/smtp"
	"strings"

	"hopebridge/internal/worker"
)

// 測試可覆寫此變數。
var smtpSendMail = smtp.SendMail

type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	To       string
}

type Mailer struct {
	cfg  Config
	pool worker.Pool
}

func New(cfg Config, pool worker.Pool) *Mailer {
	return &Mailer{cfg: cfg, pool: pool}
}

// Enabled reports whether SMTP delivery is configured. When false, Notify
// only logs the message.
func (m *Mailer) Enabled() bool {
	return m.cfg.Host != "" && m.cfg.To != ""
}

// Notify queues a notification mail. It returns immediately; the send runs
// on the pool.
func (m *Mailer) Notify(subject, body string) {
	if !m.Enabled() {
		log.Printf("mailer: delivery disabled, logging %q instead:\n%s", subject, body)
		return
	}
	if !m.pool.Submit(func() { m.send(subject, body) }) {
		log.Printf("mailer: queue full, dropping %q", subject)
	}
}

func (m *Mailer) send(subject, body string) {
	to := strings.Split(m.cfg.To, ",")
	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/plain; charset=UTF-8\r\n\r\n%s\r\n",
		m.cfg.From, m.cfg.To, subject, body)

	addr := fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port)
	var auth smtp.Auth
	if m.cfg.Username != "" {
		auth = smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	}
	// 寄送失敗時把內容留在 log，訊息本身已入庫，不影響請求
	if err := smtpSendMail(addr, auth, m.cfg.From, to, []byte(msg)); err != nil {
		log.Printf("mailer: send %q: %v; body follows:\n%s", subject, err, body)
	}
}
