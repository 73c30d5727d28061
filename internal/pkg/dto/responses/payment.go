package responses

// GatewayOrder mirrors the payment provider's order object. Order creation
// returns it to the caller verbatim so the frontend can open the checkout.
type GatewayOrder struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status"`
}
