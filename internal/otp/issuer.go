package otp

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/SmartCafeteriaHQ/cafeteria-api/internal/httperr"
	"github.com/SmartCafeteriaHQ/cafeteria-api/internal/mailer"
)

// Issuer generates, mails and verifies one-time passwords per email address.
type Issuer struct {
	store  Store
	mail   mailer.Mailer
	ttl    time.Duration
	random func() string
}

func NewIssuer(store Store, mail mailer.Mailer, ttl time.Duration) *Issuer {
	return &Issuer{
		store:  store,
		mail:   mail,
		ttl:    ttl,
		random: generateCode,
	}
}

// 6 digits, uniform over [100000, 999999].
func generateCode() string {
	return fmt.Sprintf("%d", 100000+rand.Intn(900000))
}

// Send issues a fresh code for email, replacing any prior unconsumed one,
// and dispatches it by mail. The stored code stays valid even when delivery
// fails; the caller only learns about the transport failure.
func (i *Issuer) Send(ctx context.Context, email string) error {
	if email == "" {
		return httperr.ErrBusiness("email_required")
	}

	code := i.random()
	if err := i.store.Put(ctx, email, code, i.ttl); err != nil {
		return err
	}

	subject, body := mailer.OTPMessage(code)
	if err := i.mail.Send(email, subject, body); err != nil {
		return httperr.ErrBusiness("otp_delivery_failed")
	}

	return nil
}

// Verify consumes the stored code for email. Absence and mismatch fail the
// same way; success is single-use.
func (i *Issuer) Verify(ctx context.Context, email, code string) error {
	if email == "" || code == "" {
		return httperr.ErrBusiness("email_and_otp_required")
	}

	ok, err := i.store.Consume(ctx, email, code)
	if err != nil {
		return err
	}
	if !ok {
		return httperr.ErrBusiness("invalid_otp")
	}
	return nil
}
