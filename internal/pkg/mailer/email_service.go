package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendGuestReply(toEmail, guestName, replyText string) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
	senderName  string
	replyTo     string
}

func NewEmailService(host string, port int, username, password, senderEmail, senderName, replyTo string) IEmailService {
	d := gomail.NewDialer(host, port, username, password)

	return &emailService{
		dialer:      d,
		senderEmail: senderEmail,
		senderName:  senderName,
		replyTo:     replyTo,
	}
}

// SendGuestReply notifies the guest that staff answered their chat.
// Callers treat failures as non-fatal; the reply itself is already saved.
func (s *emailService) SendGuestReply(toEmail, guestName, replyText string) error {
	if guestName == "" {
		guestName = "there"
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.senderEmail, s.senderName)
	m.SetHeader("To", toEmail)
	if s.replyTo != "" {
		m.SetHeader("Reply-To", s.replyTo)
	}
	m.SetHeader("Subject", fmt.Sprintf("💬 Reply from %s", s.senderName))

	body := fmt.Sprintf(`
		<div style="font-family: Georgia, serif; line-height: 1.8; color: #2d3e2f; background: #faf8f5; padding: 20px;">
			<div style="max-width: 500px; margin: 0 auto; background: white; padding: 30px; border-radius: 12px;">
				<p>Hi %s!</p>
				<p>We have replied to your message:</p>
				<div style="background: #f0fdf4; border-left: 4px solid #2d3e2f; padding: 20px; margin: 20px 0;">
					<p style="margin: 0; white-space: pre-wrap;">%s</p>
				</div>
				<p>Have more questions? Just reply to this email.</p>
				<p>Warm regards,<br><em>The %s team</em></p>
			</div>
		</div>
	`, guestName, replyText, s.senderName)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send guest reply to %s: %v\n", toEmail, err)
		return err
	}

	fmt.Printf("[MAILER] Guest reply sent to %s\n", toEmail)
	return nil
}
