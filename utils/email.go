package utils

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"log"
	"os"

	"gopkg.in/gomail.v2"
)

type BookingConfirmationData struct {
	PNR           string
	TrainName     string
	Source        string
	Destination   string
	Departure     string
	SeatClass     string
	Passengers    int
	TotalFare     string
	PaymentMethod string
}

const bookingConfirmationTmpl = `
<h2>Booking confirmed</h2>
<p>Your PNR is <b>{{.PNR}}</b>.</p>
<table>
  <tr><td>Train</td><td>{{.TrainName}}</td></tr>
  <tr><td>Route</td><td>{{.Source}} &rarr; {{.Destination}}</td></tr>
  <tr><td>Departure</td><td>{{.Departure}}</td></tr>
  <tr><td>Class</td><td>{{.SeatClass}}</td></tr>
  <tr><td>Passengers</td><td>{{.Passengers}}</td></tr>
  <tr><td>Total fare</td><td>{{.TotalFare}}</td></tr>
  <tr><td>Paid via</td><td>{{.PaymentMethod}}</td></tr>
</table>
<p><img src="cid:pnr_qr_code" alt="PNR QR"/></p>
`

const bookingCancelledTmpl = `
<h2>Booking cancelled</h2>
<p>Your booking <b>{{.PNR}}</b> on {{.TrainName}} ({{.Source}} &rarr; {{.Destination}},
{{.Departure}}) has been cancelled.</p>
`

// SendBookingEmail delivers a confirmation or cancellation mail with the PNR QR
// embedded. Intended to run in a goroutine after the transaction commits.
func SendBookingEmail(to string, data BookingConfirmationData, cancelled bool) {
	if to == "" || os.Getenv("SMTP_HOST") == "" {
		return
	}

	tmplBody := bookingConfirmationTmpl
	subject := fmt.Sprintf("Booking confirmed - PNR %s", data.PNR)
	if cancelled {
		tmplBody = bookingCancelledTmpl
		subject = fmt.Sprintf("Booking cancelled - PNR %s", data.PNR)
	}

	tmpl, err := template.New("booking").Parse(tmplBody)
	if err != nil {
		log.Printf("failed to parse booking email template: %v", err)
		return
	}
	var htmlBody bytes.Buffer
	if err := tmpl.Execute(&htmlBody, data); err != nil {
		log.Printf("failed to render booking email: %v", err)
		return
	}

	m := gomail.NewMessage()
	m.SetHeader("From", os.Getenv("SMTP_FROM"))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody.String())

	if !cancelled {
		qrBytes, err := GenerateQRCode(data.PNR, 256)
		if err == nil {
			m.Embed("pnr_qr.png", gomail.SetCopyFunc(func(w io.Writer) error {
				_, err := w.Write(qrBytes)
				return err
			}), gomail.SetHeader(map[string][]string{
				"Content-Type":        {"image/png"},
				"Content-ID":          {"<pnr_qr_code>"},
				"Content-Disposition": {"inline"},
			}))
		} else {
			log.Printf("failed to build QR for PNR %s: %v", data.PNR, err)
		}
	}

	d := gomail.NewDialer(os.Getenv("SMTP_HOST"), 587, os.Getenv("SMTP_USERNAME"), os.Getenv("SMTP_PASSWORD"))
	if err := d.DialAndSend(m); err != nil {
		log.Printf("failed to send booking email to %s: %v", to, err)
	}
}
