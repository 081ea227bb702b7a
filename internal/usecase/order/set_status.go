package order

import (
	"context"

	"github.com/SmartCafeteriaHQ/cafeteria-api/internal/audit"
	domain "github.com/SmartCafeteriaHQ/cafeteria-api/internal/domain/order"
	"github.com/SmartCafeteriaHQ/cafeteria-api/internal/httperr"
	"github.com/SmartCafeteriaHQ/cafeteria-api/internal/mailer"
	"github.com/SmartCafeteriaHQ/cafeteria-api/internal/models"
)

type SetStatus struct {
	repo  domain.Repository
	mail  mailer.Mailer
	audit *audit.Dispatcher
}

func NewSetStatus(
	repo domain.Repository,
	mail mailer.Mailer,
	audit *audit.Dispatcher,
) *SetStatus {
	return &SetStatus{
		repo:  repo,
		mail:  mail,
		audit: audit,
	}
}

// Execute moves an order of the admin's own cafeteria to status. Transitions
// are unrestricted, backward ones included. The customer notification runs
// as a post-commit step: a mail failure is reported but the status stays.
func (uc *SetStatus) Execute(
	ctx context.Context,
	adminID uint,
	orderID uint,
	status domain.Status,
) (*models.Order, []StepResult, error) {

	if !domain.IsValidStatus(status) {
		return nil, nil, httperr.ErrBusiness("invalid_status")
	}

	caf, err := uc.repo.GetCafeteriaByOwner(ctx, adminID)
	if err != nil {
		return nil, nil, httperr.ErrBusiness("cafeteria_not_found")
	}

	// An order of another cafeteria is invisible here, not forbidden.
	o, err := uc.repo.GetOrderForCafeteria(ctx, orderID, caf.ID)
	if err != nil {
		return nil, nil, httperr.ErrBusiness("order_not_found")
	}

	if err := uc.repo.UpdateOrderStatus(ctx, o.ID, status); err != nil {
		return nil, nil, err
	}
	o.Status = string(status)

	itemNames := make([]string, 0, len(o.Items))
	for _, line := range o.Items {
		itemNames = append(itemNames, line.Name)
	}

	subject, body := mailer.OrderStatusMessage(string(status), o.User.Name, itemNames)
	steps := []StepResult{{
		Step: "notify_customer",
		Err:  uc.mail.Send(o.User.Email, subject, body),
	}}

	uc.audit.Dispatch(audit.Event{
		CafeteriaID: caf.ID,
		UserID:      &adminID,
		Action:      "order_status_changed",
		Entity:      "order",
		EntityID:    &o.ID,
		Metadata:    map[string]any{"status": status},
	})

	return o, steps, nil
}
