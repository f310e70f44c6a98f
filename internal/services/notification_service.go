// internal/services/notification_service.go
package services

import (
	"bytes"
	"fmt"
	"html/template"
	"net/smtp"

	"github.com/sirupsen/logrus"

	"github.com/printcraft/store-backend/internal/config"
	"github.com/printcraft/store-backend/internal/models"
)

// NotificationService sends transactional email. All public methods
// return immediately and deliver in the background; a storefront
// request never waits on SMTP.
type NotificationService struct {
	config *config.Config
}

type EmailTemplate struct {
	Subject string
	Body    string
}

func NewNotificationService(config *config.Config) *NotificationService {
	return &NotificationService{config: config}
}

// OrderPlaced emails the customer a confirmation and the business a
// copy. Implements OrderNotifier.
func (s *NotificationService) OrderPlaced(order *models.Order) {
	go func() {
		data := s.orderTemplateData(order)

		subject := fmt.Sprintf("Order Confirmed - %s", order.OrderNumber)
		tmpl := s.getEmailTemplate("order_placed")
		body, err := s.renderTemplate(tmpl.Body, data)
		if err != nil {
			logrus.WithError(err).Error("Failed to render order confirmation email")
			return
		}

		if err := s.sendEmail(order.CustomerEmail, subject, body); err != nil {
			logrus.WithError(err).WithField("order_number", order.OrderNumber).
				Error("Failed to send order confirmation email")
		}

		if s.config.Email.BusinessEmail != "" {
			businessSubject := fmt.Sprintf("New Order %s - %s%s", order.OrderNumber,
				s.config.Store.CurrencySymbol, order.Total.StringFixed(2))
			if err := s.sendEmail(s.config.Email.BusinessEmail, businessSubject, body); err != nil {
				logrus.WithError(err).Error("Failed to send order notification to business")
			}
		}
	}()
}

// OrderStatusChanged emails the customer when an admin advances the
// order. Implements OrderNotifier.
func (s *NotificationService) OrderStatusChanged(order *models.Order) {
	go func() {
		data := s.orderTemplateData(order)

		subject := fmt.Sprintf("Order %s - %s", order.OrderNumber, statusHeadline(order.Status))
		tmpl := s.getEmailTemplate("order_status")
		body, err := s.renderTemplate(tmpl.Body, data)
		if err != nil {
			logrus.WithError(err).Error("Failed to render order status email")
			return
		}

		if err := s.sendEmail(order.CustomerEmail, subject, body); err != nil {
			logrus.WithError(err).WithField("order_number", order.OrderNumber).
				Error("Failed to send order status email")
		}
	}()
}

// InquiryReceived forwards a contact-form submission to the business
// mailbox. Implements InquiryNotifier.
func (s *NotificationService) InquiryReceived(inquiry *models.Inquiry) {
	go func() {
		to := s.config.Email.BusinessEmail
		if to == "" {
			to = s.config.Email.FromEmail
		}
		if to == "" {
			return
		}

		data := map[string]interface{}{
			"Name":      inquiry.Name,
			"Email":     inquiry.Email,
			"Phone":     inquiry.Phone,
			"Subject":   inquiry.Subject,
			"Message":   inquiry.Message,
			"StoreName": s.config.Store.Name,
		}

		subject := fmt.Sprintf("New Inquiry: %s", inquiry.Subject)
		tmpl := s.getEmailTemplate("inquiry_received")
		body, err := s.renderTemplate(tmpl.Body, data)
		if err != nil {
			logrus.WithError(err).Error("Failed to render inquiry email")
			return
		}

		if err := s.sendEmail(to, subject, body); err != nil {
			logrus.WithError(err).Error("Failed to forward inquiry email")
		}
	}()
}

// Helper methods

func (s *NotificationService) orderTemplateData(order *models.Order) map[string]interface{} {
	type lineData struct {
		Name      string
		Quantity  int
		LineTotal string
	}
	lines := make([]lineData, 0, len(order.Items))
	for i := range order.Items {
		item := &order.Items[i]
		lines = append(lines, lineData{
			Name:      item.ProductName,
			Quantity:  item.Quantity,
			LineTotal: item.LineTotal().StringFixed(2),
		})
	}

	return map[string]interface{}{
		"CustomerName":   order.CustomerName,
		"OrderNumber":    order.OrderNumber,
		"Status":         statusHeadline(order.Status),
		"Items":          lines,
		"Subtotal":       order.Subtotal.StringFixed(2),
		"DeliveryCharge": order.DeliveryCharge.StringFixed(2),
		"Total":          order.Total.StringFixed(2),
		"Currency":       s.config.Store.CurrencySymbol,
		"StoreName":      s.config.Store.Name,
		"TrackingURL":    fmt.Sprintf("%s/track-order?number=%s", s.config.Frontend.BaseURL, order.OrderNumber),
	}
}

func statusHeadline(status models.OrderStatus) string {
	switch status {
	case models.OrderStatusPending:
		return "Order Received"
	case models.OrderStatusConfirmed:
		return "Order Confirmed"
	case models.OrderStatusProcessing:
		return "Being Printed"
	case models.OrderStatusShipped:
		return "Shipped"
	case models.OrderStatusDelivered:
		return "Delivered"
	case models.OrderStatusCancelled:
		return "Cancelled"
	default:
		return "Update"
	}
}

func (s *NotificationService) sendEmail(to, subject, body string) error {
	if s.config.Email.SMTPHost == "" {
		// Email not configured, just log
		logrus.WithFields(logrus.Fields{
			"to":      to,
			"subject": subject,
		}).Info("Email delivery skipped, SMTP not configured")
		return nil
	}

	auth := smtp.PlainAuth("", s.config.Email.SMTPUsername, s.config.Email.SMTPPassword, s.config.Email.SMTPHost)

	from := s.config.Email.FromEmail
	msg := []byte(fmt.Sprintf("From: %s <%s>\r\nTo: %s\r\nSubject: %s\r\nContent-Type: text/html; charset=\"UTF-8\"\r\n\r\n%s",
		s.config.Email.FromName, from, to, subject, body))

	addr := fmt.Sprintf("%s:%s", s.config.Email.SMTPHost, s.config.Email.SMTPPort)
	return smtp.SendMail(addr, auth, from, []string{to}, msg)
}

func (s *NotificationService) renderTemplate(templateStr string, data interface{}) (string, error) {
	tmpl, err := template.New("email").Parse(templateStr)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}

	return buf.String(), nil
}

func (s *NotificationService) getEmailTemplate(templateType string) EmailTemplate {
	templates := map[string]EmailTemplate{
		"order_placed": {
			Subject: "Order Confirmed",
			Body: `
<!DOCTYPE html>
<html>
<body>
	<h2>Thank you for your order, {{.CustomerName}}!</h2>
	<p>Your order <strong>{{.OrderNumber}}</strong> has been received.</p>
	<table>
		{{range .Items}}<tr><td>{{.Name}} × {{.Quantity}}</td><td>{{$.Currency}}{{.LineTotal}}</td></tr>
		{{end}}
		<tr><td>Subtotal</td><td>{{.Currency}}{{.Subtotal}}</td></tr>
		<tr><td>Delivery</td><td>{{.Currency}}{{.DeliveryCharge}}</td></tr>
		<tr><td><strong>Total</strong></td><td><strong>{{.Currency}}{{.Total}}</strong></td></tr>
	</table>
	<p><a href="{{.TrackingURL}}">Track your order</a></p>
	<p>Best regards,<br>{{.StoreName}}</p>
</body>
</html>`,
		},
		"order_status": {
			Subject: "Order Update",
			Body: `
<!DOCTYPE html>
<html>
<body>
	<h2>{{.Status}}</h2>
	<p>Hello {{.CustomerName}},</p>
	<p>Your order <strong>{{.OrderNumber}}</strong> is now: {{.Status}}.</p>
	<p><a href="{{.TrackingURL}}">Track your order</a></p>
	<p>Best regards,<br>{{.StoreName}}</p>
</body>
</html>`,
		},
		"inquiry_received": {
			Subject: "New Inquiry",
			Body: `
<!DOCTYPE html>
<html>
<body>
	<h2>New inquiry via {{.StoreName}}</h2>
	<p><strong>From:</strong> {{.Name}} ({{.Email}}{{if .Phone}}, {{.Phone}}{{end}})</p>
	<p><strong>Subject:</strong> {{.Subject}}</p>
	<p>{{.Message}}</p>
</body>
</html>`,
		},
	}

	if tmpl, exists := templates[templateType]; exists {
		return tmpl
	}

	return EmailTemplate{
		Subject: "Notification",
		Body:    "<p>{{.Message}}</p>",
	}
}
