package registrar

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/iulianpascalau/polly-api-client/services/client/common"
	logger "github.com/multiversx/mx-chain-logger-go"
)

const registerPath = "/register"

var log = logger.GetOrCreate("registrar")

type registrationPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type httpRegistrar struct {
	baseURL string
	client  *http.Client
}

// NewHTTPRegistrar creates a new registrar that posts new users to the /register endpoint
func NewHTTPRegistrar(baseURL string, timeout time.Duration) *httpRegistrar {
	return &httpRegistrar{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// Register creates a new user on the remote service. No local validation is
// performed on the username or password, the service decides what is allowed.
// A duplicate username surfaces as an *common.APIError with status code 400.
func (r *httpRegistrar) Register(ctx context.Context, username string, password string) (*common.RegisteredUser, error) {
	payload := registrationPayload{
		Username: username,
		Password: password,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal registration payload: %w", err)
	}

	endpoint := r.baseURL + registerPath
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create registration request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		log.Warn("register endpoint unreachable", "url", endpoint, "error", err)
		return nil, &common.ConnectionError{URL: r.baseURL, Err: err}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &common.ConnectionError{URL: r.baseURL, Err: err}
	}

	if resp.StatusCode != http.StatusOK {
		apiErr := common.NewAPIError(resp.StatusCode, respBody)
		log.Warn("registration rejected", "username", username, "status code", resp.StatusCode, "detail", apiErr.Detail)
		return nil, apiErr
	}

	var user common.RegisteredUser
	err = json.Unmarshal(respBody, &user)
	if err != nil {
		return nil, &common.DecodeError{Err: err}
	}

	log.Debug("user registered", "username", username, "id", user.ID)

	return &user, nil
}

// IsInterfaceNil returns true if the value under the interface is nil
func (r *httpRegistrar) IsInterfaceNil() bool {
	return r == nil
}
