package mailer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOTPMessage(t *testing.T) {
	subject, body := OTPMessage("123456")

	assert.Equal(t, "Smart Cafeteria - OTP Verification", subject)
	assert.Contains(t, body, "123456")
}

func TestOrderStatusMessage_KnownStatus(t *testing.T) {
	subject, body := OrderStatusMessage("ready", "Alice", []string{"Coffee", "Cake"})

	assert.Contains(t, subject, "READY")
	assert.Contains(t, body, "Hi Alice")
	assert.Contains(t, body, "Your order is ready for pickup!")
	assert.Contains(t, body, "<li>Coffee</li>")
	assert.Contains(t, body, "<li>Cake</li>")
}

func TestOrderStatusMessage_UnknownStatusFallsBackToEmptyLine(t *testing.T) {
	subject, body := OrderStatusMessage("archived", "Bob", nil)

	assert.Contains(t, subject, "ARCHIVED")
	assert.Contains(t, body, "<p></p>")
}

func TestOrderStatusMessage_AllStatusesHaveBodyLines(t *testing.T) {
	for _, s := range []string{"pending", "preparing", "ready", "delivered"} {
		_, body := OrderStatusMessage(s, "X", nil)
		assert.False(t, strings.Contains(body, "<p></p>"), "missing body line for %q", s)
	}
}
