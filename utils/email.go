package utils

import (
	"bytes"
	"html/template"
	"log"
	"os"
	"strconv"

	"gopkg.in/gomail.v2"
)

type PurchaseConfirmationData struct {
	TicketCodes []string
	RouteCode   string
	Departure   string
	Passengers  string
	TotalAmount float64
}

// SendPurchaseConfirmationEmail gửi email xác nhận vé (async)
func SendPurchaseConfirmationEmail(to string, data PurchaseConfirmationData) {
	go func() {
		tmplPath := "templates/purchase_confirmation.html"
		tmpl, err := template.ParseFiles(tmplPath)
		if err != nil {
			log.Printf("Error loading email template: %v", err)
			return
		}

		var body bytes.Buffer
		if err := tmpl.Execute(&body, data); err != nil {
			log.Printf("Error rendering email template: %v", err)
			return
		}

		host := os.Getenv("SMTP_HOST")
		portStr := os.Getenv("SMTP_PORT")
		username := os.Getenv("SMTP_USERNAME")
		password := os.Getenv("SMTP_PASSWORD")
		from := os.Getenv("SMTP_FROM")

		port, _ := strconv.Atoi(portStr)

		m := gomail.NewMessage()
		m.SetHeader("From", from)
		m.SetHeader("To", to)
		m.SetHeader("Subject", "Your flight tickets")
		m.SetBody("text/html", body.String())

		d := gomail.NewDialer(host, port, username, password)
		if err := d.DialAndSend(m); err != nil {
			log.Printf("Error sending confirmation email to %s: %v", to, err)
		}
	}()
}
