package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/GollaBharath/Vijaya-Xerox-and-Stationery/internal/client"
	"github.com/GollaBharath/Vijaya-Xerox-and-Stationery/internal/repository"
	"github.com/shopspring/decimal"
)

// OrderNotification is the summary pushed to admin devices after a checkout
// commits.
type OrderNotification struct {
	OrderID      string
	TotalPrice   decimal.Decimal
	CustomerName string
	ItemCount    int
}

// Notifier delivers admin notifications from a detached worker goroutine.
// Dispatch never blocks and never fails the caller; a full queue drops the
// notification with a log line.
type Notifier interface {
	NotifyNewOrder(n OrderNotification)
	Close()
}

type notifierImpl struct {
	push     client.PushClient
	userRepo repository.UserRepository
	queue    chan OrderNotification
	done     chan struct{}
}

func NewNotifier(push client.PushClient, userRepo repository.UserRepository) Notifier {
	n := &notifierImpl{
		push:     push,
		userRepo: userRepo,
		queue:    make(chan OrderNotification, 64),
		done:     make(chan struct{}),
	}
	go n.run()
	return n
}

func (n *notifierImpl) NotifyNewOrder(notification OrderNotification) {
	select {
	case n.queue <- notification:
	default:
		log.Println("notification queue full, dropping order notification", notification.OrderID)
	}
}

func (n *notifierImpl) Close() {
	close(n.queue)
	<-n.done
}

func (n *notifierImpl) run() {
	defer close(n.done)
	for notification := range n.queue {
		n.send(notification)
	}
}

func (n *notifierImpl) send(notification OrderNotification) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	tokens, err := n.userRepo.AdminFcmTokens(ctx)
	if err != nil {
		log.Println("load admin fcm tokens:", err)
		return
	}
	if len(tokens) == 0 {
		log.Println("no admin fcm tokens available, skipping notification")
		return
	}

	title := "New Order Received!"
	body := fmt.Sprintf("%s placed an order for ₹%s (%d items)",
		notification.CustomerName,
		notification.TotalPrice.StringFixed(2),
		notification.ItemCount,
	)
	data := map[string]string{
		"type":       "new_order",
		"orderId":    notification.OrderID,
		"totalPrice": notification.TotalPrice.String(),
		"itemCount":  fmt.Sprintf("%d", notification.ItemCount),
	}

	if err := n.push.SendToTokens(ctx, tokens, title, body, data); err != nil {
		log.Println("send order notification:", err)
	}
}
