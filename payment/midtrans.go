// Package payment wraps the Midtrans Snap gateway: checkout produces a
// hosted payment page URL and settlement is confirmed back through the
// transaction status API.
package payment

import (
	"fmt"

	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/coreapi"
	"github.com/midtrans/midtrans-go/snap"
	"github.com/sony/gobreaker/v2"

	"github.com/Jrgn63/keyking/config"
	"github.com/Jrgn63/keyking/models"
	"github.com/Jrgn63/keyking/pkg/errs"
)

type Client struct {
	snap    snap.Client
	core    coreapi.Client
	breaker *gobreaker.CircuitBreaker[string]
}

func NewClient(cfg config.MidtransConfig) *Client {
	env := midtrans.Sandbox
	if cfg.Environment == "production" {
		env = midtrans.Production
	}

	c := &Client{}
	c.snap.New(cfg.ServerKey, env)
	c.core.New(cfg.ServerKey, env)

	var st gobreaker.Settings
	st.Name = "midtrans"
	st.ReadyToTrip = func(counts gobreaker.Counts) bool {
		failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
		return counts.Requests >= 3 && failureRatio >= 0.6
	}
	c.breaker = gobreaker.NewCircuitBreaker[string](st)

	return c
}

// CreatePaymentURL opens a hosted payment session for the order and returns
// the redirect target. Any failure here leaves the caller's cart untouched.
func (c *Client) CreatePaymentURL(order models.Order) (string, error) {
	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  order.Ref,
			GrossAmt: order.Amount,
		},
	}

	items := make([]midtrans.ItemDetails, 0, len(order.Items))
	for _, it := range order.Items {
		items = append(items, midtrans.ItemDetails{
			ID:    it.ProductID,
			Name:  truncateItemName(it.Name),
			Price: it.UnitPrice,
			Qty:   int32(it.Quantity),
		})
	}
	req.Items = &items

	if order.CustomerEmail != "" {
		req.CustomerDetail = &midtrans.CustomerDetails{Email: order.CustomerEmail}
	}

	url, err := c.breaker.Execute(func() (string, error) {
		resp, snapErr := c.snap.CreateTransaction(req)
		if snapErr != nil {
			return "", snapErr
		}
		return resp.RedirectURL, nil
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", errs.ErrGateway, err)
	}
	return url, nil
}

// TransactionStatus asks the gateway for the authoritative status of an
// order, so notification payloads are never trusted on their own.
func (c *Client) TransactionStatus(orderRef string) (string, error) {
	resp, apiErr := c.core.CheckTransaction(orderRef)
	if apiErr != nil {
		return "", fmt.Errorf("%w: %v", errs.ErrGateway, apiErr)
	}
	return resp.TransactionStatus, nil
}

// Midtrans rejects item names over 50 characters.
func truncateItemName(name string) string {
	if len(name) > 50 {
		return name[:50]
	}
	return name
}
