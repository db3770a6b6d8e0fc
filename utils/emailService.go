package utils

import (
	"fmt"
	"log"
	"net/smtp"
	"strings"

	"learnhub/config"
)

// Generic Send Email
func SendEmail(to []string, subject string, htmlBody string) error {
	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	from := config.AppConfig.EmailSender
	password := config.AppConfig.Password

	if from == "" || password == "" {
		log.Println("Email sender not configured, skipping email:", subject)
		return nil
	}

	// MIME basics
	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: LearnHub <%s>\r\n", from)
	msg += fmt.Sprintf("To: %s\r\n", strings.Join(to, ","))
	msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
	msg += htmlBody

	auth := smtp.PlainAuth("", from, password, smtpHost)

	err := smtp.SendMail(smtpHost+":"+smtpPort, auth, from, to, []byte(msg))
	if err != nil {
		log.Println("Error sending email:", err)
		return err
	}
	return nil
}

// HTML wrapper shared by all outgoing mail
func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; box-shadow: 0 4px 15px rgba(0,0,0,0.05); }
			.header { background-color: #1B2A4A; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #1B2A4A; line-height: 1.6; }
			.content h2 { color: #1B2A4A; margin-top: 0; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; border-top: 1px solid #E0E0E0; }
			.info-box { background: #E8F0FE; padding: 15px; border-radius: 4px; border-left: 4px solid #5A8DEE; margin: 20px 0; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>LEARNHUB</h1>
			</div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">
				&copy; 2026 LearnHub. All rights reserved.
			</div>
		</div>
	</body>
	</html>`, title, bodyContent)
}

// SendWelcomeEmail greets a freshly registered user
func SendWelcomeEmail(email, name string) error {
	body := fmt.Sprintf(`
		<p>Hi %s,</p>
		<p>Your LearnHub account is ready. Browse the catalog, enroll in a course and start learning.</p>`, name)

	return SendEmail([]string{email}, "Welcome to LearnHub", getEmailTemplate("Welcome aboard!", body))
}

// SendEnrollmentConfirmation confirms a successful course enrollment
func SendEnrollmentConfirmation(email, name, courseTitle string) error {
	body := fmt.Sprintf(`
		<p>Hi %s,</p>
		<p>Your payment went through and you are now enrolled in:</p>
		<div class="info-box"><strong>%s</strong></div>
		<p>Head over to My Learning to pick up where you left off.</p>`, name, courseTitle)

	return SendEmail([]string{email}, "Enrollment confirmed: "+courseTitle, getEmailTemplate("You're enrolled!", body))
}

// SendEnrollmentDigest mails the daily activity summary to the admin
func SendEnrollmentDigest(newEnrollments, completions int64) error {
	body := fmt.Sprintf(`
		<p>Activity for the last 24 hours:</p>
		<div class="info-box">
			New enrollments: <strong>%d</strong><br>
			Courses completed: <strong>%d</strong>
		</div>`, newEnrollments, completions)

	return SendEmail([]string{config.AppConfig.AdminEmail}, "LearnHub daily enrollment digest", getEmailTemplate("Daily Digest", body))
}
