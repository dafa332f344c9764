package delivery

import (
	"context"
	"fmt"
	"html"
	"log"
	"time"

	gomail "github.com/wneessen/go-mail"

	"dermalead-api/config"
)

// EmailChannel delivers lead notifications to the site owner over SMTP.
type EmailChannel struct {
	cfg config.EmailConfig
}

func NewEmailChannel(cfg config.EmailConfig) *EmailChannel {
	return &EmailChannel{cfg: cfg}
}

func (c *EmailChannel) Name() string { return "email" }

// Send builds the HTML notification and submits it. Missing credentials
// are a configuration error: logged server-side, reported generically.
func (c *EmailChannel) Send(ctx context.Context, lead ContactLead) Result {
	if !c.cfg.Configured() {
		log.Println("email channel: credentials not properly configured")
		return Result{Success: false, Message: "Email configuration error"}
	}

	msg := gomail.NewMsg()
	if err := msg.From(c.cfg.Username); err != nil {
		log.Printf("email channel: invalid sender: %v", err)
		return Result{Success: false, Message: "Email configuration error"}
	}
	if err := msg.To(c.cfg.Recipient); err != nil {
		log.Printf("email channel: invalid recipient: %v", err)
		return Result{Success: false, Message: "Email configuration error"}
	}
	msg.Subject(fmt.Sprintf("New form submission from %s", lead.Name))
	msg.SetMessageID()
	msg.SetBodyString(gomail.TypeTextHTML, leadBody(lead))

	client, err := gomail.NewClient(
		c.cfg.Host,
		gomail.WithPort(c.cfg.Port),
		gomail.WithSSL(),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(c.cfg.Username),
		gomail.WithPassword(c.cfg.Password),
	)
	if err != nil {
		log.Printf("email channel: failed to build client: %v", err)
		return Result{Success: false, Message: "Email configuration error"}
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		log.Printf("email channel: send failed: %v", err)
		return Result{Success: false, Message: "Email sending failed"}
	}

	return Result{
		Success:   true,
		Message:   "Email sent successfully",
		MessageID: msg.GetMessageID(),
	}
}

// leadBody renders the notification the owner receives.
func leadBody(lead ContactLead) string {
	return fmt.Sprintf(`
	<h2>New Form Submission</h2>
	<p><strong>Name:</strong> %s</p>
	<p><strong>Email:</strong> %s</p>
	<p><strong>Phone number:</strong> %s</p>
	<p><strong>Profession:</strong> %s</p>
	<p><em>Sent from the website on %s</em></p>
	`,
		html.EscapeString(lead.Name),
		html.EscapeString(lead.Email),
		html.EscapeString(lead.Phone),
		html.EscapeString(lead.Profession),
		time.Now().Format(time.RFC1123),
	)
}
