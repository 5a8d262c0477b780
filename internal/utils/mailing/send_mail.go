package mailing

import (
	"fmt"
	"strconv"

	"RecipeShare-Backend/internal/utils"

	"gopkg.in/gomail.v2"
)

type MailConfig struct {
	AppURL       string
	SMTPHost     string
	SMTPPort     string
	SMTPSender   string
	SMTPEmail    string
	SMTPPassword string
}

func LoadMailConfig() MailConfig {
	return MailConfig{
		AppURL:       utils.GetConfig("APP_URL"),
		SMTPHost:     utils.GetConfig("SMTP_HOST"),
		SMTPPort:     utils.GetConfig("SMTP_PORT"),
		SMTPSender:   utils.GetConfig("SMTP_SENDER_NAME"),
		SMTPEmail:    utils.GetConfig("SMTP_AUTH_EMAIL"),
		SMTPPassword: utils.GetConfig("SMTP_AUTH_PASSWORD"),
	}
}

func SendMail(toEmail string, subject string, body string) error {
	emailConfig := LoadMailConfig()

	mailer := gomail.NewMessage()
	mailer.SetHeader("From", emailConfig.SMTPEmail)
	mailer.SetHeader("To", toEmail)
	mailer.SetHeader("Subject", subject)
	mailer.SetBody("text/html", body)

	port, err := strconv.Atoi(emailConfig.SMTPPort)
	if err != nil {
		return err
	}
	dialer := gomail.NewDialer(
		emailConfig.SMTPHost,
		port,
		emailConfig.SMTPEmail,
		emailConfig.SMTPPassword,
	)

	return dialer.DialAndSend(mailer)
}

// SendPasswordResetEmail mails the reset link built from APP_URL.
func SendPasswordResetEmail(toEmail string, token string) error {
	emailConfig := LoadMailConfig()
	resetLink := fmt.Sprintf("%s/reset-password?token=%s", emailConfig.AppURL, token)
	body := fmt.Sprintf(
		"<p>We received a request to reset your password.</p>"+
			"<p><a href=\"%s\">Reset your password</a></p>"+
			"<p>The link expires in 15 minutes. If you did not request this, ignore this email.</p>",
		resetLink,
	)
	return SendMail(toEmail, "Reset your password", body)
}
