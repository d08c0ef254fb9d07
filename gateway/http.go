package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/zkmesh/relay/shared"
)

// HTTPClient talks JSON over HTTP to a single verification network
// gateway. Transient transport failures are retried by the underlying
// retryable client; application-level errors are mapped to the sentinel
// errors of this package.
type HTTPClient struct {
	baseURL *url.URL
	apiKey  string
	client  *retryablehttp.Client
}

type HTTPOption func(*HTTPClient)

// WithAPIKey sets the credential passed to the gateway on every request.
func WithAPIKey(key string) HTTPOption {
	return func(c *HTTPClient) {
		c.apiKey = key
	}
}

// WithRetryMax bounds the number of transport-level retries.
func WithRetryMax(retries int) HTTPOption {
	return func(c *HTTPClient) {
		c.client.RetryMax = retries
	}
}

// NewHTTPClient returns a client for the gateway at the given base URL.
func NewHTTPClient(baseURL string, opts ...HTTPOption) (*HTTPClient, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing gateway address: %w", err)
	}
	if parsed.Scheme == "" {
		parsed.Scheme = "http"
	}

	client := retryablehttp.NewClient()
	client.Logger = nil

	c := &HTTPClient{
		baseURL: parsed,
		client:  client,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Target returns the base URL this client talks to.
func (c *HTTPClient) Target() string {
	return c.baseURL.String()
}

type accountsResponse struct {
	Accounts []string `json:"accounts"`
}

type createAccountResponse struct {
	Account string `json:"account"`
}

type balanceResponse struct {
	Balance float64 `json:"balance"`
}

type topUpRequest struct {
	Amount float64 `json:"amount"`
}

type topUpResponse struct {
	TxHash string  `json:"tx_hash"`
	Amount float64 `json:"amount"`
}

type submitProofRequest struct {
	Proof   []byte `json:"proof"`
	Account string `json:"account"`
}

type submitProofResponse struct {
	JobID string `json:"job_id"`
}

type proofStatusResponse struct {
	Status         string `json:"status"`
	RequestID      string `json:"request_id"`
	AdditionalInfo string `json:"additional_info,omitempty"`
	Error          string `json:"error,omitempty"`
}

func (c *HTTPClient) Accounts(ctx context.Context) ([]shared.AccountID, error) {
	resBody := accountsResponse{}
	if err := c.req(ctx, http.MethodGet, "/v1/accounts", nil, &resBody); err != nil {
		return nil, fmt.Errorf("listing accounts: %w", err)
	}
	accounts := make([]shared.AccountID, 0, len(resBody.Accounts))
	for _, hexID := range resBody.Accounts {
		id, err := shared.ParseAccountID(hexID)
		if err != nil {
			return nil, fmt.Errorf("gateway returned %q: %w", hexID, err)
		}
		accounts = append(accounts, id)
	}
	return accounts, nil
}

func (c *HTTPClient) CreateAccount(ctx context.Context) (shared.AccountID, error) {
	resBody := createAccountResponse{}
	if err := c.req(ctx, http.MethodPost, "/v1/accounts", struct{}{}, &resBody); err != nil {
		return shared.AccountID{}, fmt.Errorf("creating account: %w", err)
	}
	id, err := shared.ParseAccountID(resBody.Account)
	if err != nil {
		return shared.AccountID{}, fmt.Errorf("gateway returned %q: %w", resBody.Account, err)
	}
	return id, nil
}

func (c *HTTPClient) Balance(ctx context.Context, account shared.AccountID) (float64, error) {
	resBody := balanceResponse{}
	path := fmt.Sprintf("/v1/accounts/%s/balance", account)
	if err := c.req(ctx, http.MethodGet, path, nil, &resBody); err != nil {
		return 0, fmt.Errorf("querying balance: %w", err)
	}
	return resBody.Balance, nil
}

func (c *HTTPClient) TopUp(ctx context.Context, account shared.AccountID, amount float64) (*shared.TopUpReceipt, error) {
	resBody := topUpResponse{}
	path := fmt.Sprintf("/v1/accounts/%s/topup", account)
	if err := c.req(ctx, http.MethodPost, path, &topUpRequest{Amount: amount}, &resBody); err != nil {
		return nil, fmt.Errorf("topping up: %w", err)
	}
	return &shared.TopUpReceipt{
		TxHash: resBody.TxHash,
		Amount: resBody.Amount,
	}, nil
}

func (c *HTTPClient) SubmitProof(ctx context.Context, proof []byte, account shared.AccountID) (*shared.Submission, error) {
	resBody := submitProofResponse{}
	request := submitProofRequest{
		Proof:   proof,
		Account: account.String(),
	}
	if err := c.req(ctx, http.MethodPost, "/v1/proofs", &request, &resBody); err != nil {
		return nil, fmt.Errorf("submitting proof: %w", err)
	}
	return &shared.Submission{JobID: resBody.JobID}, nil
}

func (c *HTTPClient) ProofStatus(ctx context.Context, jobID string) (*shared.JobStatus, error) {
	resBody := proofStatusResponse{}
	path := fmt.Sprintf("/v1/jobs/%s", url.PathEscape(jobID))
	if err := c.req(ctx, http.MethodGet, path, nil, &resBody); err != nil {
		return nil, fmt.Errorf("querying job status: %w", err)
	}
	return &shared.JobStatus{
		State:          shared.ParseJobState(resBody.Status),
		RequestID:      resBody.RequestID,
		AdditionalInfo: resBody.AdditionalInfo,
		Error:          resBody.Error,
	}, nil
}

func (c *HTTPClient) req(ctx context.Context, method, path string, reqBody, resBody any) error {
	var body io.Reader
	if reqBody != nil {
		jsonReqBody, err := json.Marshal(reqBody)
		if err != nil {
			return fmt.Errorf("marshaling request body: %w", err)
		}
		body = bytes.NewReader(jsonReqBody)
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, method, c.baseURL.JoinPath(path).String(), body)
	if err != nil {
		return fmt.Errorf("creating HTTP request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	res, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return fmt.Errorf("reading response body: %w", err)
	}

	switch res.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, string(data))
	case http.StatusServiceUnavailable:
		return fmt.Errorf("%w: %s", ErrUnavailable, string(data))
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrInvalidRequest, string(data))
	default:
		return fmt.Errorf("unrecognized error: status code: %s, body: %s", res.Status, string(data))
	}

	if resBody != nil {
		if err := json.Unmarshal(data, resBody); err != nil {
			return fmt.Errorf("decoding response body: %w", err)
		}
	}
	return nil
}
