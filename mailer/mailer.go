package mailer

import (
	"fmt"
	"strings"

	"gopkg.in/gomail.v2"

	"github.com/Jrgn63/keyking/config"
	"github.com/Jrgn63/keyking/models"
)

// Mailer sends order confirmation mail. A nil Mailer (no SMTP configured)
// is valid and sends nothing.
type Mailer struct {
	dialer *gomail.Dialer
	from   string
}

func NewMailer(cfg config.SMTPConfig) *Mailer {
	if cfg.Host == "" {
		return nil
	}
	return &Mailer{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.From,
	}
}

func (m *Mailer) SendOrderConfirmation(order models.Order) error {
	if m == nil || order.CustomerEmail == "" {
		return nil
	}

	var body strings.Builder
	fmt.Fprintf(&body, "Thanks for your order %s!\n\n", order.Ref)
	for _, it := range order.Items {
		fmt.Fprintf(&body, "%d x %s — %.2f\n", it.Quantity, it.Name, float64(it.UnitPrice)/100)
	}
	fmt.Fprintf(&body, "\nTotal: %.2f\n", float64(order.Amount)/100)

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", order.CustomerEmail)
	msg.SetHeader("Subject", fmt.Sprintf("Order confirmation %s", order.Ref))
	msg.SetBody("text/plain", body.String())

	return m.dialer.DialAndSend(msg)
}
