package mailer

import (
	"fmt"
	"strings"
)

// Body line per order status. Unknown statuses fall back to an empty line
// instead of failing the send.
var statusMessages = map[string]string{
	"pending":   "We have received your order and will begin processing it soon.",
	"preparing": "Your order is now being prepared.",
	"ready":     "Your order is ready for pickup!",
	"delivered": "Your order has been delivered. Bon appetit!",
}

func OTPMessage(code string) (subject, body string) {
	subject = "Smart Cafeteria - OTP Verification"
	body = fmt.Sprintf(`<div style="font-family: sans-serif; line-height: 1.5">
  <h2>Your OTP for Smart Cafeteria</h2>
  <p>Use the following One-Time Password to verify your email:</p>
  <div style="font-size: 24px; font-weight: bold; margin: 10px 0;">%s</div>
  <p>This OTP is valid for only a short time. Do not share it with anyone.</p>
</div>`, code)
	return subject, body
}

func OrderStatusMessage(status, name string, itemNames []string) (subject, body string) {
	subject = fmt.Sprintf("Order Update: Your order is now %s", strings.ToUpper(status))

	var items strings.Builder
	for _, n := range itemNames {
		items.WriteString("<li>" + n + "</li>")
	}

	body = fmt.Sprintf(`<div style="font-family: Arial, sans-serif; padding: 20px;">
  <h2>Hi %s,</h2>
  <p>%s</p>
  <h3>Your Order Items:</h3>
  <ul>%s</ul>
  <p style="margin-top:20px;">Thank you for choosing <strong>Smart Cafeteria</strong>!</p>
</div>`, name, statusMessages[status], items.String())
	return subject, body
}
