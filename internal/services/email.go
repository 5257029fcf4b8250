package services

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/sportsmatch/backend/internal/config"
	"github.com/sportsmatch/backend/internal/models"
	"github.com/sportsmatch/backend/pkg/logger"
)

// EmailService renders and delivers outbound mail. Rendering happens in the
// caller's request; delivery goes through the task queue.
type EmailService struct {
	cfg   *config.SMTPConfig
	queue TaskQueue
}

func NewEmailService(cfg *config.SMTPConfig, queue TaskQueue) *EmailService {
	return &EmailService{cfg: cfg, queue: queue}
}

// Enabled reports whether outbound mail is configured.
func (s *EmailService) Enabled() bool {
	return s.cfg.Enabled && s.cfg.Host != ""
}

// SendOTP queues the one-time verification code mail for a new signup.
func (s *EmailService) SendOTP(to, name, code string) error {
	subject := "[SportsMatch] Your verification code"

	var sb strings.Builder
	sb.WriteString("<html><body style=\"font-family: Arial, sans-serif;\">")
	sb.WriteString(fmt.Sprintf("<h2>Hi %s,</h2>", name))
	sb.WriteString("<p>Use this code to verify your SportsMatch account:</p>")
	sb.WriteString(fmt.Sprintf("<p style=\"font-size: 28px; letter-spacing: 6px; font-weight: bold;\">%s</p>", code))
	sb.WriteString("<p>The code expires in 10 minutes. If you didn't sign up, you can ignore this email.</p>")
	sb.WriteString("</body></html>")

	return s.enqueue([]string{to}, subject, sb.String())
}

// SendGameInvite queues an invitation mail for a game.
func (s *EmailService) SendGameInvite(to, inviter string, game *models.Game) error {
	subject := fmt.Sprintf("[SportsMatch] %s invited you to %s", inviter, game.Name)

	var sb strings.Builder
	sb.WriteString("<html><body style=\"font-family: Arial, sans-serif;\">")
	sb.WriteString(fmt.Sprintf("<h2>%s invited you to a game</h2>", inviter))
	sb.WriteString("<table style=\"border-collapse: collapse; margin-bottom: 20px;\">")

	rows := []struct{ label, value string }{
		{"Game", game.Name},
		{"Sport", game.SportType},
		{"Location", game.Location},
		{"Starts", game.StartAt.Format("Mon, 02 Jan 2006 15:04 MST")},
	}
	for _, r := range rows {
		sb.WriteString(fmt.Sprintf("<tr><td style=\"padding: 8px; border: 1px solid #ddd; font-weight: bold;\">%s</td><td style=\"padding: 8px; border: 1px solid #ddd;\">%s</td></tr>", r.label, r.value))
	}
	sb.WriteString("</table>")
	sb.WriteString("<p>Sign in to SportsMatch to accept or decline the invitation.</p>")
	sb.WriteString("</body></html>")

	return s.enqueue([]string{to}, subject, sb.String())
}

// SendJoinRequest queues a mail telling the game creator someone asked to join.
func (s *EmailService) SendJoinRequest(to, requester string, game *models.Game) error {
	subject := fmt.Sprintf("[SportsMatch] %s wants to join %s", requester, game.Name)

	var sb strings.Builder
	sb.WriteString("<html><body style=\"font-family: Arial, sans-serif;\">")
	sb.WriteString(fmt.Sprintf("<h2>%s asked to join your game</h2>", requester))
	sb.WriteString(fmt.Sprintf("<p><b>%s</b> (%s) at %s</p>", game.Name, game.SportType, game.Location))
	sb.WriteString("<p>Sign in to SportsMatch to accept or reject the request.</p>")
	sb.WriteString("</body></html>")

	return s.enqueue([]string{to}, subject, sb.String())
}

func (s *EmailService) enqueue(to []string, subject, body string) error {
	if !s.Enabled() {
		return nil
	}
	if s.queue == nil {
		return s.Deliver(context.Background(), &EmailTask{To: to, Subject: subject, Body: body})
	}
	return s.queue.Enqueue(&EmailTask{To: to, Subject: subject, Body: body})
}

// Deliver sends a rendered email over SMTP. It is the processor behind both
// the sync queue and the asynq worker.
func (s *EmailService) Deliver(ctx context.Context, task *EmailTask) error {
	if !s.Enabled() || len(task.To) == 0 {
		return nil
	}

	from := s.cfg.From
	if from == "" {
		from = s.cfg.Username
	}

	headers := make(map[string]string)
	headers["From"] = from
	headers["To"] = strings.Join(task.To, ",")
	headers["Subject"] = task.Subject
	headers["MIME-Version"] = "1.0"
	headers["Content-Type"] = "text/html; charset=UTF-8"

	var message strings.Builder
	for k, v := range headers {
		message.WriteString(fmt.Sprintf("%s: %s\r\n", k, v))
	}
	message.WriteString("\r\n")
	message.WriteString(task.Body)

	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)

	var auth smtp.Auth
	if s.cfg.Username != "" && s.cfg.Password != "" {
		auth = smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	}

	var err error
	if s.cfg.UseTLS {
		err = s.deliverTLS(addr, auth, from, task.To, message.String())
	} else {
		err = smtp.SendMail(addr, auth, from, task.To, []byte(message.String()))
	}

	if err != nil {
		logger.Errorf("[Email] Failed to send email: %v", err)
		return err
	}

	logger.Infof("[Email] Sent %q to %v", task.Subject, task.To)
	return nil
}

func (s *EmailService) deliverTLS(addr string, auth smtp.Auth, from string, to []string, message string) error {
	tlsConfig := &tls.Config{
		ServerName: s.cfg.Host,
	}

	conn, err := tls.Dial("tcp", addr, tlsConfig)
	if err != nil {
		return err
	}
	defer conn.Close()

	client, err := smtp.NewClient(conn, s.cfg.Host)
	if err != nil {
		return err
	}
	defer client.Close()

	if auth != nil {
		if err := client.Auth(auth); err != nil {
			return err
		}
	}

	if err := client.Mail(from); err != nil {
		return err
	}

	for _, rcpt := range to {
		if err := client.Rcpt(rcpt); err != nil {
			return err
		}
	}

	w, err := client.Data()
	if err != nil {
		return err
	}

	_, err = w.Write([]byte(message))
	if err != nil {
		return err
	}

	return w.Close()
}
