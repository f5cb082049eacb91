package domain

// Статусы payment intent на стороне платёжного шлюза.
const (
	IntentSucceeded  = "succeeded"
	IntentProcessing = "processing"
	IntentRequiresPM = "requires_payment_method"
	IntentCanceled   = "canceled"
)

// PaymentIntent — снимок состояния платежа в платёжном шлюзе.
type PaymentIntent struct {
	ID       string
	Status   string
	Amount   int64 // в центах
	Currency string
}
