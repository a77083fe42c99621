package impl

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"biaresh/internal/domain/entity"
	"biaresh/internal/domain/service"
	"biaresh/internal/errors"
	"biaresh/internal/usecase"
)

type notificationService struct {
	logger   *slog.Logger
	notifier service.OwnerNotifier
}

// NewNotificationService creates the owner notification flow run by the notifier
func NewNotificationService(logger *slog.Logger, notifier service.OwnerNotifier) usecase.NotificationUsecase {
	return &notificationService{
		logger:   logger,
		notifier: notifier,
	}
}

func (srv *notificationService) HandleStoreEvent(ctx context.Context, event *entity.StoreEvent) error {
	var (
		subject string
		body    string
		err     error
	)

	switch event.Type {
	case entity.EventOrderPlaced:
		subject, body, err = orderPlacedMail(event.Payload)
	case entity.EventContactMessageReceived:
		subject, body, err = contactMessageMail(event.Payload)
	default:
		srv.log(ctx).Info("Ignoring store event", slog.String("event_type", string(event.Type)))

		return nil
	}
	if err != nil {
		return err
	}

	if err := srv.notifier.NotifyOwner(ctx, subject, body); err != nil {
		return errors.Wrapf(err, "notify owner of %s", event.Type)
	}

	srv.log(ctx).Info("Owner notified", slog.String("event_type", string(event.Type)))

	return nil
}

func (srv *notificationService) log(ctx context.Context) *slog.Logger {
	return requestLogger(ctx, srv.logger, "notification")
}

func orderPlacedMail(payload json.RawMessage) (subject, body string, err error) {
	var order entity.Order
	if err := json.Unmarshal(payload, &order); err != nil {
		return "", "", errors.Wrap(usecase.ErrMalformedEvent, err.Error())
	}

	var b strings.Builder
	fmt.Fprintf(&b, "سفارش جدید به شماره %d ثبت شد.\n\n", order.ID)
	fmt.Fprintf(&b, "مشتری: %s %s\n", order.Customer.FirstName, order.Customer.LastName)
	fmt.Fprintf(&b, "تلفن: %s\n", order.Customer.Phone)
	fmt.Fprintf(&b, "ایمیل: %s\n", order.Customer.Email)
	fmt.Fprintf(&b, "آدرس: %s، %s، کد پستی %s\n\n", order.Customer.Address, order.Customer.City, order.Customer.PostalCode)
	for _, item := range order.Items {
		fmt.Fprintf(&b, "- %s × %d = %s\n", item.ProductName, item.Quantity, FormatToman(item.Total))
	}
	fmt.Fprintf(&b, "\nمبلغ کل: %s\n", FormatToman(order.Total))
	if order.Notes != "" {
		fmt.Fprintf(&b, "توضیحات: %s\n", order.Notes)
	}

	return fmt.Sprintf("سفارش جدید #%d", order.ID), b.String(), nil
}

func contactMessageMail(payload json.RawMessage) (subject, body string, err error) {
	var message entity.ContactMessage
	if err := json.Unmarshal(payload, &message); err != nil {
		return "", "", errors.Wrap(usecase.ErrMalformedEvent, err.Error())
	}

	var b strings.Builder
	fmt.Fprintf(&b, "نام: %s\n", message.Name)
	fmt.Fprintf(&b, "تلفن: %s\n", message.Phone)
	if message.Email != "" {
		fmt.Fprintf(&b, "ایمیل: %s\n", message.Email)
	}
	fmt.Fprintf(&b, "نوع پیام: %s\n\n", message.Type)
	b.WriteString(message.Message)
	b.WriteString("\n")

	return "پیام جدید از " + message.Name, b.String(), nil
}

// FormatToman renders an amount with thousands separators, e.g. "1,250,000 تومان"
func FormatToman(amount int64) string {
	digits := strconv.FormatInt(amount, 10)
	sign := ""
	if strings.HasPrefix(digits, "-") {
		sign, digits = "-", digits[1:]
	}

	var b strings.Builder
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}

	return sign + b.String() + " تومان"
}
