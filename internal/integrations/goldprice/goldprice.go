package goldprice

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/beevik/etree"
	"github.com/sirupsen/logrus"
	"github.com/zakatech/zakat-service/internal/config"
)

// NisabGrams is the gold weight defining the Nisab threshold.
const NisabGrams = 85.0

// Client fetches the daily gold price from the national rates feed
type Client struct {
	url    string
	client *http.Client
	log    *logrus.Logger
}

// NewClient initializes a new gold price client
func NewClient(cfg *config.Config, log *logrus.Logger) *Client {
	return &Client{
		url: cfg.GoldPriceURL,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		log: log,
	}
}

// buildRequest creates a request for the daily gold price per gram
func (c *Client) buildRequest() string {
	fromDate := time.Now().AddDate(0, 0, -7).Format("2006-01-02")
	toDate := time.Now().Format("2006-01-02")
	return fmt.Sprintf(`<?xml version="1.0" encoding="utf-8"?>
		<soap12:Envelope xmlns:soap12="http://www.w3.org/2003/05/soap-envelope">
			<soap12:Body>
				<GoldPrice xmlns="http://rates.zakatech.example/">
					<fromDate>%s</fromDate>
					<ToDate>%s</ToDate>
				</GoldPrice>
			</soap12:Body>
		</soap12:Envelope>`, fromDate, toDate)
}

// sendRequest sends the price request to the feed
func (c *Client) sendRequest(request string) ([]byte, error) {
	req, err := http.NewRequest("POST", c.url, bytes.NewBuffer([]byte(request)))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %v", err)
	}

	req.Header.Set("Content-Type", "application/soap+xml; charset=utf-8")
	req.Header.Set("SOAPAction", "http://rates.zakatech.example/GoldPrice")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %v", err)
	}

	c.log.Debugf("Gold price XML response: %s", string(body))

	return body, nil
}

// parseResponse extracts the latest per-gram price from the XML response
func (c *Client) parseResponse(rawBody []byte) (float64, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(rawBody); err != nil {
		return 0, fmt.Errorf("failed to parse XML: %v", err)
	}

	priceElements := doc.FindElements("//diffgram/GoldPrice/GP")
	if len(priceElements) == 0 {
		return 0, fmt.Errorf("no gold price data found in XML")
	}

	// Latest price comes first
	latest := priceElements[0]
	priceElement := latest.FindElement("./PricePerGram")
	if priceElement == nil {
		return 0, fmt.Errorf("price element not found in XML")
	}

	var price float64
	if _, err := fmt.Sscanf(priceElement.Text(), "%f", &price); err != nil {
		return 0, fmt.Errorf("failed to parse price: %v", err)
	}
	if price <= 0 {
		return 0, fmt.Errorf("non-positive gold price in feed: %f", price)
	}

	return price, nil
}

// GetNisabThreshold retrieves the current per-gram gold price and converts it
// to the Nisab threshold (85 grams of gold in local currency).
func (c *Client) GetNisabThreshold() (float64, error) {
	body, err := c.sendRequest(c.buildRequest())
	if err != nil {
		return 0, err
	}

	price, err := c.parseResponse(body)
	if err != nil {
		return 0, err
	}

	threshold := price * NisabGrams
	c.log.Infof("Retrieved gold price %.2f/gram, Nisab threshold %.2f", price, threshold)
	return threshold, nil
}
