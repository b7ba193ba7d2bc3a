package email

import (
	"fmt"
	"html"

	"gopkg.in/gomail.v2"

	"github.com/reqtrack/reqtrack/internal/shared/config"
)

type SMTPConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	FromAddress string
	FromName    string
	BaseURL     string // links in mails point here, e.g. "http://localhost:5000"
}

func ConfigFrom(cfg config.EmailConfig, baseURL string) SMTPConfig {
	return SMTPConfig{
		Host:        cfg.SMTPHost,
		Port:        cfg.SMTPPort,
		Username:    cfg.SMTPUser,
		Password:    cfg.SMTPPassword,
		FromAddress: cfg.FromAddress,
		FromName:    cfg.FromName,
		BaseURL:     baseURL,
	}
}

// sender is satisfied by *gomail.Dialer.
type sender interface {
	DialAndSend(m ...*gomail.Message) error
}

type SMTPEmailService struct {
	config SMTPConfig
	dialer sender
}

func NewSMTPEmailService(config SMTPConfig) *SMTPEmailService {
	dialer := gomail.NewDialer(config.Host, config.Port, config.Username, config.Password)

	return &SMTPEmailService{
		config: config,
		dialer: dialer,
	}
}

func (s *SMTPEmailService) requestURL(requestID uint) string {
	return fmt.Sprintf("%s/requests/%d", s.config.BaseURL, requestID)
}

// SendStatusChanged tells the request creator that someone moved their
// request to a new status.
func (s *SMTPEmailService) SendStatusChanged(to string, requestID uint, number, title, oldStatus, newStatus string) error {
	link := s.requestURL(requestID)
	subject := fmt.Sprintf("[%s] Status changed: %s → %s", number, oldStatus, newStatus)

	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>%s %s</h2>
			<p>The status of this request changed from <b>%s</b> to <b>%s</b>.</p>
			<p><a href="%s">Open the request</a></p>
		</body>
		</html>
	`, html.EscapeString(number), html.EscapeString(title), html.EscapeString(oldStatus), html.EscapeString(newStatus), link)

	plainBody := fmt.Sprintf(`
%s %s

The status of this request changed from %s to %s.

%s
	`, number, title, oldStatus, newStatus, link)

	return s.sendEmail(to, subject, htmlBody, plainBody)
}

// SendCommentAdded tells the request creator about a comment left by
// someone else.
func (s *SMTPEmailService) SendCommentAdded(to string, requestID uint, number, title, author, content string) error {
	link := s.requestURL(requestID)
	subject := fmt.Sprintf("[%s] New comment from %s", number, author)

	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>%s %s</h2>
			<p>%s commented:</p>
			<blockquote>%s</blockquote>
			<p><a href="%s">Open the request</a></p>
		</body>
		</html>
	`, html.EscapeString(number), html.EscapeString(title), html.EscapeString(author), html.EscapeString(content), link)

	plainBody := fmt.Sprintf(`
%s %s

%s commented:

%s

%s
	`, number, title, author, content, link)

	return s.sendEmail(to, subject, htmlBody, plainBody)
}

func (s *SMTPEmailService) sendEmail(to, subject, htmlBody, plainBody string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.config.FromAddress, s.config.FromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
