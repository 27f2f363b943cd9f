package utils

import (
	"assisthub/config"
	"fmt"
	"log"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendTicketUpdateEmail mails the submitter about a ticket status change.
// Without a SendGrid key the mail is logged and skipped, so the workflow
// never depends on the mail provider being reachable.
func SendTicketUpdateEmail(toEmail, toName, ticketID, status string) error {
	subject := fmt.Sprintf("Update on your support ticket %s", ticketID)
	plain := fmt.Sprintf("Hi %s,\n\nYour ticket %s is now %s.\n\n- NIAT Assist Hub", toName, ticketID, status)
	html := fmt.Sprintf(`
		<html>
			<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px;">
				<div style="max-width: 500px; margin: auto; background-color: #ffffff; border-radius: 8px; padding: 30px;">
					<h2 style="color: #06b6d4;">NIAT Assist Hub</h2>
					<p>Hi %s,</p>
					<p>Your support ticket <b>%s</b> is now <b>%s</b>.</p>
					<p style="color: #888; font-size: 12px;">You receive this mail because ticket updates are enabled in your notification preferences.</p>
				</div>
			</body>
		</html>`, toName, ticketID, status)

	if config.AppConfig.SendGridKey == "" {
		log.Printf("[MAIL] SENDGRID_API_KEY not set, skipping mail to %s: %s", toEmail, subject)
		return nil
	}

	from := mail.NewEmail("NIAT Assist Hub", config.AppConfig.EmailSender)
	to := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, to, plain, html)

	client := sendgrid.NewSendClient(config.AppConfig.SendGridKey)
	response, err := client.Send(message)
	if err != nil {
		log.Printf("[MAIL] failed to send ticket update to %s: %v", toEmail, err)
		return err
	}
	if response.StatusCode >= 400 {
		log.Printf("[MAIL] provider rejected ticket update mail: %d %s", response.StatusCode, response.Body)
		return fmt.Errorf("mail provider returned status %d", response.StatusCode)
	}

	log.Printf("[MAIL] ticket update sent to %s for %s", toEmail, ticketID)
	return nil
}
