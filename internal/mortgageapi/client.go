package mortgageapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-logr/logr"

	"github.com/roivaz/mortgage-mcp/internal/logging"
	"github.com/roivaz/mortgage-mcp/internal/mcp/tools/types"
)

const (
	headerAPIKey = "x-api-key"
	contentJSON  = "application/json"
)

// Client issues one HTTP request per call against the mortgage API. It keeps
// no state between calls: no retries, no caching.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
	to      time.Duration
	log     logging.Logger
}

func New(cfg Config) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	log := cfg.Logger
	if log.Logr().GetSink() == nil {
		log = logging.New(logr.Discard())
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		http:    httpClient,
		to:      cfg.Timeout,
		log:     log.WithName("mortgageapi"),
	}
}

// GetRates fetches the current rate quote set for a two-letter state code.
func (c *Client) GetRates(ctx context.Context, state string) (types.RateQuoteSet, error) {
	state = strings.ToUpper(state)
	query := url.Values{"state": []string{state}}

	body, err := c.do(ctx, "get rates", http.MethodGet, "/rates?"+query.Encode(), nil)
	if err != nil {
		return types.RateQuoteSet{}, err
	}

	quotes, err := parseRates(body, state)
	if err != nil {
		return types.RateQuoteSet{}, &RemoteError{Op: "get rates", Err: err}
	}
	return quotes, nil
}

// Calculate posts a mortgage request and returns the provider's response body
// unchanged.
func (c *Client) Calculate(ctx context.Context, req types.MortgageRequest) (types.MortgageResult, error) {
	loanTerm := req.LoanTerm
	if loanTerm == 0 {
		loanTerm = types.DefaultLoanTerm
	}
	payload, err := json.Marshal(calculateBody{
		HomePrice:         req.HomePrice,
		DownPayment:       req.DownPayment,
		DownPaymentUnit:   req.DownPaymentType,
		State:             strings.ToUpper(req.State),
		LoanTerm:          loanTerm,
		InterestRate:      req.InterestRate,
		YearlyInsurance:   req.YearlyInsurance,
		YearlyPropertyTax: req.YearlyPropertyTax,
		MonthlyPMI:        req.MonthlyPMI,
		MonthlyHOA:        req.MonthlyHOA,
	})
	if err != nil {
		return nil, fmt.Errorf("encode calculate request: %w", err)
	}

	body, err := c.do(ctx, "calculate mortgage", http.MethodPost, "/calculate", payload)
	if err != nil {
		return nil, err
	}
	return types.MortgageResult(body), nil
}

func (c *Client) do(ctx context.Context, op, method, path string, payload []byte) ([]byte, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, &RemoteError{Op: op, Err: err}
	}
	req.Header.Set(headerAPIKey, c.apiKey)
	req.Header.Set("Accept", contentJSON)
	if payload != nil {
		req.Header.Set("Content-Type", contentJSON)
	}

	start := time.Now()
	c.log.Debug("sending request", "method", method, "path", path)

	resp, err := c.http.Do(req)
	if err != nil {
		annotated := c.annotateError(err)
		c.log.Debug("request failed", "method", method, "path", path, "elapsed", time.Since(start), "error", annotated.Error())
		return nil, &RemoteError{Op: op, Err: annotated}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &RemoteError{Op: op, Err: fmt.Errorf("read response body: %w", err)}
	}

	c.log.Debug("received response", "method", method, "path", path, "status", resp.StatusCode, "elapsed", time.Since(start))
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &RemoteError{Op: op, Status: resp.StatusCode, StatusText: statusText(resp)}
	}
	return body, nil
}

func (c *Client) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.to <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, c.to)
}

func (c *Client) annotateError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("request timed out after %s: %w", c.to, err)
	}
	return err
}

// statusText strips the numeric code from resp.Status ("500 Internal Server
// Error" -> "Internal Server Error").
func statusText(resp *http.Response) string {
	code := fmt.Sprintf("%d ", resp.StatusCode)
	if text := strings.TrimPrefix(resp.Status, code); text != resp.Status && text != "" {
		return text
	}
	return http.StatusText(resp.StatusCode)
}
