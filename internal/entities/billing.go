package entities

type CheckoutResponse struct {
	URL       string `json:"url"`
	SessionID string `json:"session_id"`
}
