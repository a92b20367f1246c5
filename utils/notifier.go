package utils

import (
	"fmt"
	"log"
	"net/smtp"
	"shata-admin/config"
	"shata-admin/models"

	"github.com/go-resty/resty/v2"
)

func decisionMessage(stageName, outcome, reason string) string {
	switch outcome {
	case "approve":
		return fmt.Sprintf("Your %s has been approved.", stageName)
	case "reupload":
		return fmt.Sprintf("Your %s needs a document reupload. Reason: %s", stageName, reason)
	default:
		return fmt.Sprintf("Your %s has been declined. Reason: %s", stageName, reason)
	}
}

// NotifyDecision sends the partner a best-effort email and SMS about a stage
// decision. Called on its own goroutine; failures are logged and never block
// or fail the decision itself.
func NotifyDecision(partner models.Partner, stageName, outcome, reason string) {
	message := decisionMessage(stageName, outcome, reason)

	if partner.PersonalEmail != "" {
		if err := SendDecisionEmail(partner.PersonalEmail, partner.Name, stageName, message); err != nil {
			log.Printf("Failed to email decision to partner %d: %v", partner.ID, err)
		}
	}
	if partner.MobileNo != "" {
		if err := SendDecisionSMS(partner.MobileNo, message); err != nil {
			log.Printf("Failed to text decision to partner %d: %v", partner.ID, err)
		}
	}
}

// SendDecisionEmail sends the stage decision notice over SMTP.
func SendDecisionEmail(email, name, stageName, message string) error {
	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	from := config.AppConfig.EmailSender
	password := config.AppConfig.Password

	to := []string{email}

	subject := fmt.Sprintf("Subject: %s update from Shata\nMIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n\n", stageName)

	body := fmt.Sprintf(`
		<html>
			<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px;">
				<div style="max-width: 500px; margin: auto; background-color: #ffffff; border-radius: 8px; padding: 30px;">
					<h2 style="color: #333;">Hello %s,</h2>
					<p style="color: #555; font-size: 16px;">%s</p>
					<p style="color: #999; font-size: 13px;">Log in to the partner app to see the details.</p>
				</div>
			</body>
		</html>`, name, message)

	msg := []byte(subject + body)

	auth := smtp.PlainAuth("", from, password, smtpHost)
	if err := smtp.SendMail(smtpHost+":"+smtpPort, auth, from, to, msg); err != nil {
		return err
	}

	log.Println("Decision email sent to", email)
	return nil
}

// SendDecisionSMS pushes the notice through the SMS gateway.
func SendDecisionSMS(mobile, message string) error {
	client := resty.New()
	resp, err := client.R().
		SetQueryParams(map[string]string{
			"authorization": config.AppConfig.SmsApiKey,
			"route":         "q",
			"message":       message,
			"numbers":       mobile,
			"flash":         "0",
		}).
		Get(config.AppConfig.SmsApiUrl)
	if err != nil {
		return err
	}
	if resp.StatusCode() != 200 {
		return fmt.Errorf("failed to send SMS, code: %d", resp.StatusCode())
	}

	log.Println("Decision SMS sent to", mobile)
	return nil
}
