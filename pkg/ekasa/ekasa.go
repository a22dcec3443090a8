package ekasa

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/sirupsen/logrus"
)

const defaultURL = "https://ekasa.financnasprava.sk/mdu/api/v1/opd/receipt/find"

// ItfEkasa looks up receipt details in the national eKasa registry by the
// receipt id printed on the paper receipt.
type ItfEkasa interface {
	FetchReceipt(ctx context.Context, receiptID string) (*ReceiptData, error)
}

type Organization struct {
	Name string `json:"name"`
	ICO  string `json:"ico"`
	DIC  string `json:"dic"`
}

type Item struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Price    float64 `json:"price"`
	VatRate  float64 `json:"vatRate"`
	ItemType string  `json:"itemType"`
}

type ReceiptData struct {
	ReceiptID    string       `json:"receiptId"`
	IssueDate    string       `json:"issueDate"` // DD.MM.YYYY HH:MM:SS
	TotalPrice   float64      `json:"totalPrice"`
	ICO          string       `json:"ico"`
	DIC          string       `json:"dic"`
	Organization Organization `json:"organization"`
	Items        []Item       `json:"items"`
}

type findResponse struct {
	ReturnValue int          `json:"returnValue"`
	Receipt     *ReceiptData `json:"receipt"`
}

type ekasaService struct {
	url    string
	client *http.Client
	log    *logrus.Logger
}

func New(log *logrus.Logger) ItfEkasa {
	url := os.Getenv("EKASA_URL")
	if url == "" {
		url = defaultURL
	}

	return &ekasaService{
		url: url,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		log: log,
	}
}

func (e *ekasaService) FetchReceipt(ctx context.Context, receiptID string) (*ReceiptData, error) {
	body, err := json.Marshal(map[string]string{"receiptId": receiptID})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.client.Do(req)
	if err != nil {
		e.log.WithFields(logrus.Fields{
			"receipt_id": receiptID,
			"error":      err.Error(),
		}).Error("Failed to connect to eKasa API")
		return nil, fmt.Errorf("failed to connect to eKasa API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		e.log.WithFields(logrus.Fields{
			"receipt_id": receiptID,
			"status":     resp.StatusCode,
		}).Warn("eKasa API returned non-200 status")
		return nil, fmt.Errorf("eKasa API returned %d", resp.StatusCode)
	}

	var parsed findResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, err
	}

	if parsed.ReturnValue != 0 || parsed.Receipt == nil {
		return nil, fmt.Errorf("invalid receiptId or not found")
	}

	return parsed.Receipt, nil
}
