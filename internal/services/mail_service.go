package services

import (
	"bytes"
	"crypto/tls"
	"fmt"
	"html/template"
	"log"
	"mime"
	"net"
	"net/smtp"
	"os"
	"strconv"
	"time"
)

type IMailService interface {
	SendResetCode(toEmail string, toName string, code string) error
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	FromName string
	// UseSSL selects implicit TLS (port 465). When false the dialer
	// upgrades the connection with STARTTLS.
	UseSSL bool
}

func LoadSMTPConfigFromEnv() SMTPConfig {
	port, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err != nil || port == 0 {
		port = 587
	}

	return SMTPConfig{
		Host:     os.Getenv("SMTP_HOST"),
		Port:     port,
		Username: os.Getenv("SMTP_USERNAME"),
		Password: os.Getenv("SMTP_PASSWORD"),
		From:     os.Getenv("SMTP_FROM"),
		FromName: envOrDefault("SMTP_FROM_NAME", "SOCCOM Choir"),
		UseSSL:   port == 465,
	}
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

type smtpMailService struct {
	config SMTPConfig
}

func NewSMTPMailService(config SMTPConfig) IMailService {
	return &smtpMailService{config: config}
}

var resetCodeTemplate = template.Must(template.New("reset").Parse(`<!DOCTYPE html>
<html>
<body style="margin:0;padding:0;background-color:#f4f4f7;font-family:Arial,Helvetica,sans-serif;">
  <div style="max-width:560px;margin:24px auto;background:#ffffff;border-radius:8px;overflow:hidden;">
    <div style="background:#3b2f63;color:#ffffff;padding:20px 28px;">
      <h2 style="margin:0;">SOCCOM Choir Lineup</h2>
    </div>
    <div style="padding:28px;color:#333333;line-height:1.6;">
      <p>Hi {{.Name}},</p>
      <p>We received a request to reset the password for your account. Use the code below to continue:</p>
      <p style="font-size:28px;letter-spacing:6px;font-weight:bold;text-align:center;margin:24px 0;">{{.Code}}</p>
      <p>This code expires in {{.TTLMinutes}} minutes. If you did not request a reset, you can ignore this message.</p>
      <p style="color:#888888;font-size:12px;margin-top:32px;">Sent {{.SentAt}}</p>
    </div>
  </div>
</body>
</html>`))

func (m *smtpMailService) SendResetCode(toEmail string, toName string, code string) error {
	if toName == "" {
		toName = toEmail
	}

	var body bytes.Buffer
	err := resetCodeTemplate.Execute(&body, map[string]interface{}{
		"Name":       toName,
		"Code":       code,
		"TTLMinutes": 15,
		"SentAt":     time.Now().UTC().Format(time.RFC1123),
	})
	if err != nil {
		return fmt.Errorf("render reset mail: %w", err)
	}

	subject := mime.QEncoding.Encode("utf-8", "SOCCOM password reset code")
	headers := fmt.Sprintf("From: %s <%s>\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=utf-8\r\n\r\n",
		mime.QEncoding.Encode("utf-8", m.config.FromName), m.config.From, toEmail, subject)

	message := append([]byte(headers), body.Bytes()...)

	if err := m.send(toEmail, message); err != nil {
		log.Printf("send reset mail to %s failed: %v", toEmail, err)
		return fmt.Errorf("send reset mail: %w", err)
	}
	return nil
}

func (m *smtpMailService) send(to string, message []byte) error {
	addr := fmt.Sprintf("%s:%d", m.config.Host, m.config.Port)
	auth := smtp.PlainAuth("", m.config.Username, m.config.Password, m.config.Host)

	if !m.config.UseSSL {
		return smtp.SendMail(addr, auth, m.config.From, []string{to}, message)
	}

	// Implicit TLS: smtp.SendMail only speaks STARTTLS, so dial the
	// TLS socket ourselves and drive the client by hand.
	conn, err := tls.Dial("tcp", addr, &tls.Config{ServerName: m.config.Host})
	if err != nil {
		return err
	}
	defer conn.Close()

	host, _, _ := net.SplitHostPort(addr)
	client, err := smtp.NewClient(conn, host)
	if err != nil {
		return err
	}
	defer client.Quit()

	if err := client.Auth(auth); err != nil {
		return err
	}
	if err := client.Mail(m.config.From); err != nil {
		return err
	}
	if err := client.Rcpt(to); err != nil {
		return err
	}

	w, err := client.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write(message); err != nil {
		return err
	}
	return w.Close()
}
