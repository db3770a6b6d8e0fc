package utils

import (
	"encoding/json"
	"fmt"
	"log"

	"learnhub/config"

	"github.com/go-resty/resty/v2"
)

// PaymentVerification is the gateway's answer for a checkout reference
type PaymentVerification struct {
	Status    string  `json:"status"`
	Reference string  `json:"reference"`
	Amount    float64 `json:"amount"`
}

// VerifyPayment confirms a checkout reference with the payment
// gateway before the enrollment is created. When no gateway is
// configured the check is skipped, which keeps local development and
// tests free of external calls.
func VerifyPayment(reference string) error {
	if config.AppConfig.PaymentApiURL == "" {
		return nil
	}

	if reference == "" {
		return fmt.Errorf("payment reference is required")
	}

	client := resty.New()
	resp, err := client.R().
		SetHeader("Authorization", "Bearer "+config.AppConfig.PaymentApiKey).
		SetQueryParam("reference", reference).
		Get(config.AppConfig.PaymentApiURL)
	if err != nil {
		log.Printf("Payment gateway unreachable: %v", err)
		return fmt.Errorf("payment verification failed")
	}

	if resp.StatusCode() != 200 {
		log.Printf("Payment verification rejected: %s", resp.String())
		return fmt.Errorf("payment verification failed")
	}

	var verification PaymentVerification
	if err := json.Unmarshal(resp.Body(), &verification); err != nil {
		log.Printf("Failed to parse payment gateway response: %v", err)
		return fmt.Errorf("payment verification failed")
	}

	if verification.Status != "paid" {
		return fmt.Errorf("payment not completed: %s", verification.Status)
	}

	return nil
}
