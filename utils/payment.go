package utils

import (
	"errors"
	"fmt"
	"time"
)

// PaymentProvider settles a booking total and returns a provider transaction
// reference. There is exactly one booking-creation path and it charges through
// this interface; swapping in a real gateway means swapping the provider.
type PaymentProvider interface {
	Charge(amount float64, method string) (string, error)
}

// SimulatedProvider approves every charge after a short processing delay.
type SimulatedProvider struct {
	Delay time.Duration
}

func (p SimulatedProvider) Charge(amount float64, method string) (string, error) {
	if amount <= 0 {
		return "", errors.New("charge amount must be positive")
	}
	time.Sleep(p.Delay)
	return fmt.Sprintf("PAY-%d", time.Now().UnixNano()), nil
}

// Payments is the provider used by the booking flow. Tests swap it for one
// with zero delay.
var Payments PaymentProvider = SimulatedProvider{Delay: 500 * time.Millisecond}

// DescribeMethod renders a human-readable payment method for confirmations.
func DescribeMethod(method, detail string) string {
	switch method {
	case "card":
		if len(detail) >= 4 {
			return "Credit Card ending in " + detail[len(detail)-4:]
		}
		return "Credit Card"
	case "upi":
		return "UPI: " + detail
	case "wallet":
		return detail + " Wallet"
	default:
		return "Online Payment"
	}
}
