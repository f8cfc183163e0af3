package resend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/tmoeller732/five-star-flame-grill-api/internal/model"
)

type ResendMailer struct {
	apiKey  string
	from    string
	client  *http.Client
	baseURL string
}

func NewResendMailer(apiKey, from string) (*ResendMailer, error) {
	if apiKey == "" {
		return nil, errors.New("resend api key not set")
	}

	return &ResendMailer{
		apiKey: apiKey,
		from:   from,
		client: &http.Client{
			Timeout: 5 * time.Second,
		},
		baseURL: "https://api.resend.com",
	}, nil
}

type sendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

func (m *ResendMailer) SendOrderConfirmation(ctx context.Context, toEmail string, order *model.Order) error {
	body := sendRequest{
		From:    m.from,
		To:      []string{toEmail},
		Subject: fmt.Sprintf("Order #%d confirmed — ready around %s", order.OrderID, order.PickupTime.Format("3:04 PM")),
		HTML:    orderHTML(order),
	}

	b, _ := json.Marshal(body)

	req, _ := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		m.baseURL+"/emails",
		bytes.NewBuffer(b),
	)

	req.Header.Set("Authorization", "Bearer "+m.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		buf := new(bytes.Buffer)
		buf.ReadFrom(resp.Body)
		return errors.New(
			"failed to send order confirmation: " + buf.String(),
		)
	}

	return nil
}

func orderHTML(order *model.Order) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "<p>Thanks, %s! Your order is in.</p>", order.FirstName)
	sb.WriteString("<ul>")
	for _, it := range order.Items {
		fmt.Fprintf(&sb, "<li>%d &times; %s — %s</li>", it.Quantity, it.Name, dollars(it.TotalCents))
		for _, c := range it.Customizations {
			fmt.Fprintf(&sb, "<li style=\"margin-left:1em\">+ %s</li>", c.Name)
		}
	}
	sb.WriteString("</ul>")
	fmt.Fprintf(&sb, "<p>Subtotal %s, tax %s, total <strong>%s</strong>.</p>",
		dollars(order.SubtotalCents), dollars(order.TaxCents), dollars(order.GrandTotalCents))
	fmt.Fprintf(&sb, "<p>Estimated wait: %d minutes. Pickup around %s. Payment is collected at the counter.</p>",
		order.EstimatedWaitMinutes, order.PickupTime.Format("3:04 PM"))
	return sb.String()
}

func dollars(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s$%d.%02d", sign, cents/100, cents%100)
}
