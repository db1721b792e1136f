package utils

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/gomail.v2"
)

// EmailConfig holds email configuration
type EmailConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

func emailConfigFromEnv() EmailConfig {
	port := 587
	if v := os.Getenv("SMTP_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			port = p
		}
	}
	return EmailConfig{
		Host:     os.Getenv("SMTP_HOST"),
		Port:     port,
		Username: os.Getenv("SMTP_USERNAME"),
		Password: os.Getenv("SMTP_PASSWORD"),
		From:     os.Getenv("SMTP_FROM"),
	}
}

func sendMail(to, subject, body string) error {
	config := emailConfigFromEnv()
	if config.Host == "" {
		return fmt.Errorf("smtp not configured")
	}

	m := gomail.NewMessage()
	m.SetHeader("From", config.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(config.Host, config.Port, config.Username, config.Password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %v", err)
	}
	return nil
}

// SendWelcomeEmail sends a welcome email to a newly registered user
func SendWelcomeEmail(to, fullName string) error {
	body := fmt.Sprintf(`
		<h2>Welcome to fashionArt!</h2>
		<p>Hi %s, your account has been created successfully.</p>
		<p>You can now log in and start shopping.</p>
	`, fullName)
	return sendMail(to, "Welcome to fashionArt", body)
}

// SendPasswordChangedEmail notifies a user that their password was changed
func SendPasswordChangedEmail(to string) error {
	body := `
		<h2>Password changed</h2>
		<p>Your fashionArt account password was just changed.</p>
		<p>If this wasn't you, please contact support immediately.</p>
	`
	return sendMail(to, "Your password was changed", body)
}
