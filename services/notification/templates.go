package notification

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"hillescape/models"
)

// emailData is the view model both templates render from.
type emailData struct {
	Reference    string
	CustomerName string
	Phone        string
	Email        string
	ResortName   string
	RoomType     string
	CheckIn      string
	CheckOut     string
	Nights       int
	Adults       int
	Children     int
	Rooms        int
	TotalAmount  string
	Year         int
}

var customerTmpl = template.Must(template.New("customer").Parse(`<!DOCTYPE html>
<html>
<head>
  <style>
    body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
    .container { max-width: 600px; margin: 0 auto; padding: 20px; }
    .header { background: linear-gradient(135deg, #0d9488, #059669); color: white; padding: 30px; text-align: center; }
    .content { background: #f9f9f9; padding: 30px; }
    .booking-info { background: white; padding: 20px; border-radius: 8px; margin: 20px 0; border-left: 4px solid #0d9488; }
    table { width: 100%; border-collapse: collapse; margin: 15px 0; }
    td { padding: 10px; text-align: left; border-bottom: 1px solid #ddd; }
    .total { font-weight: bold; background: #ecfdf5; }
    .footer { text-align: center; margin-top: 30px; color: #666; font-size: 12px; }
  </style>
</head>
<body>
  <div class="container">
    <div class="header">
      <h1>Booking Request Received</h1>
      <p>HillEscape Luxury Resorts</p>
    </div>
    <div class="content">
      <p>Dear <strong>{{.CustomerName}}</strong>,</p>
      <p>Thank you for choosing HillEscape! Your booking request has been received.</p>
      <div class="booking-info">
        <h3>Booking Summary</h3>
        <table>
          <tr><td><strong>Booking Reference:</strong></td><td><strong style="color: #059669;">{{.Reference}}</strong></td></tr>
          <tr><td><strong>Resort:</strong></td><td>{{.ResortName}}</td></tr>
          <tr><td><strong>Room Type:</strong></td><td>{{.RoomType}}</td></tr>
          <tr><td><strong>Check-in:</strong></td><td>{{.CheckIn}} (2:00 PM)</td></tr>
          <tr><td><strong>Check-out:</strong></td><td>{{.CheckOut}} (11:00 AM)</td></tr>
          <tr><td><strong>Duration:</strong></td><td>{{.Nights}} night(s)</td></tr>
          <tr><td><strong>Rooms:</strong></td><td>{{.Rooms}}</td></tr>
          <tr><td><strong>Guests:</strong></td><td>{{.Adults}} Adult(s), {{.Children}} Child(ren)</td></tr>
          <tr class="total"><td><strong>Total Amount:</strong></td><td>&#8377;{{.TotalAmount}}</td></tr>
        </table>
      </div>
      <p>Our team will contact you at <strong>{{.Phone}}</strong> within 2 hours to confirm. Payment is collected at the resort during check-in.</p>
      <p><strong>The HillEscape Team</strong></p>
    </div>
    <div class="footer">
      <p><strong>HillEscape Luxury Resorts</strong></p>
      <p>support@hillescape.com &middot; &copy; {{.Year}} HillEscape. All rights reserved.</p>
    </div>
  </div>
</body>
</html>
`))

var adminTmpl = template.Must(template.New("admin").Parse(`<!DOCTYPE html>
<html>
<head>
  <style>
    body { font-family: Arial, sans-serif; margin: 0; padding: 20px; background: #f8f9fa; color: #333; }
    .container { max-width: 600px; margin: 0 auto; background: white; border-radius: 8px; overflow: hidden; }
    .header { background: linear-gradient(135deg, #dc2626, #991b1b); color: white; padding: 30px; text-align: center; }
    .content { padding: 30px; }
    .info-card { background: #fef2f2; border-radius: 8px; padding: 15px; margin: 10px 0; border-left: 4px solid #dc2626; }
    .amount { font-size: 28px; color: #065f46; font-weight: bold; text-align: center; margin: 20px 0; }
    .footer { background: #1f2937; color: white; padding: 20px; text-align: center; font-size: 12px; }
  </style>
</head>
<body>
  <div class="container">
    <div class="header">
      <h1>NEW BOOKING RECEIVED</h1>
      <p>Reference {{.Reference}}</p>
    </div>
    <div class="content">
      <div class="info-card"><strong>Customer:</strong> {{.CustomerName}}<br>
        <strong>Phone:</strong> {{.Phone}}<br>
        <strong>Email:</strong> {{.Email}}</div>
      <div class="info-card"><strong>Resort:</strong> {{.ResortName}}<br>
        <strong>Room Type:</strong> {{.RoomType}}<br>
        <strong>Dates:</strong> {{.CheckIn}} to {{.CheckOut}} ({{.Nights}} night(s))<br>
        <strong>Guests:</strong> {{.Adults}} Adult(s), {{.Children}} Child(ren), {{.Rooms}} Room(s)</div>
      <div class="amount">&#8377;{{.TotalAmount}}</div>
      <p><strong>Required action:</strong> contact the customer within 2 hours to verify details and confirm availability.</p>
    </div>
    <div class="footer">Automated Notification | HillEscape Booking System</div>
  </div>
</body>
</html>
`))

// BuildCustomerEmail renders the confirmation sent to the booking submitter.
func BuildCustomerEmail(b models.Booking) (models.EmailMessage, error) {
	body, err := render(customerTmpl, b)
	if err != nil {
		return models.EmailMessage{}, err
	}
	return models.EmailMessage{
		To:       b.Customer.Email,
		Subject:  fmt.Sprintf("Booking Confirmation #%s - HillEscape Resorts", b.BookingReference),
		HTMLBody: body,
	}, nil
}

// BuildAdminEmail renders the operator alert for a new booking.
func BuildAdminEmail(b models.Booking, adminEmail string) (models.EmailMessage, error) {
	body, err := render(adminTmpl, b)
	if err != nil {
		return models.EmailMessage{}, err
	}
	return models.EmailMessage{
		To:       adminEmail,
		Subject:  fmt.Sprintf("New Booking: %s", b.BookingReference),
		HTMLBody: body,
	}, nil
}

func render(tmpl *template.Template, b models.Booking) (string, error) {
	data := emailData{
		Reference:    b.BookingReference,
		CustomerName: b.Customer.Name,
		Phone:        b.Customer.Phone,
		Email:        b.Customer.Email,
		ResortName:   b.ResortName,
		RoomType:     b.RoomType,
		CheckIn:      b.CheckIn.Format("Mon, 02 Jan 2006"),
		CheckOut:     b.CheckOut.Format("Mon, 02 Jan 2006"),
		Nights:       b.PriceBreakdown.Nights,
		Adults:       b.Guests.Adults,
		Children:     b.Guests.Children,
		Rooms:        b.Guests.Rooms,
		TotalAmount:  fmt.Sprintf("%.0f", b.TotalAmount),
		Year:         time.Now().Year(),
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("template render failed: %w", err)
	}
	return buf.String(), nil
}
