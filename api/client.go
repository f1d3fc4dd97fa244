package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"fitness-app/entities"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	connectTimeout = 60 * time.Second
	requestTimeout = 90 * time.Second
)

// Client talks to the fitness backend. All calls are single request/response
// exchanges; connection-level failures are retried once, application-level
// errors never are.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     zerolog.Logger
}

func NewClient(baseURL string, logger zerolog.Logger) *Client {
	transport := &http.Transport{
		DialContext: (&net.Dialer{Timeout: connectTimeout}).DialContext,
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout:   requestTimeout,
			Transport: transport,
		},
		logger: logger,
	}
}

// Login authenticates with email and password. Credentials are sent as-is;
// the backend is the sole validator.
func (c *Client) Login(ctx context.Context, email, password string) (*entities.LoginResponse, error) {
	var res entities.LoginResponse
	req := entities.LoginRequest{Email: email, Password: password}
	if err := c.do(ctx, http.MethodPost, "/login", nil, req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// GetUser fetches a user by id.
func (c *Client) GetUser(ctx context.Context, id int) (*entities.User, error) {
	var user entities.User
	if err := c.do(ctx, http.MethodGet, "/users/"+strconv.Itoa(id), nil, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// GetLatestWeight fetches the most recent weight reading for a user. When no
// reading exists the response has Found set to false.
func (c *Client) GetLatestWeight(ctx context.Context, userID int) (*entities.LatestWeight, error) {
	var lw entities.LatestWeight
	path := "/users/" + strconv.Itoa(userID) + "/latest-weight"
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &lw); err != nil {
		return nil, err
	}
	return &lw, nil
}

// GetActivities lists a user's activities, most recent first.
func (c *Client) GetActivities(ctx context.Context, userID int) ([]entities.Activity, error) {
	var activities []entities.Activity
	query := url.Values{"user_id": {strconv.Itoa(userID)}}
	if err := c.do(ctx, http.MethodGet, "/activities", query, nil, &activities); err != nil {
		return nil, err
	}
	return activities, nil
}

// GetBiometrics lists a user's biometric entries.
func (c *Client) GetBiometrics(ctx context.Context, userID int) ([]entities.Biometric, error) {
	var biometrics []entities.Biometric
	query := url.Values{"user_id": {strconv.Itoa(userID)}}
	if err := c.do(ctx, http.MethodGet, "/biometrics", query, nil, &biometrics); err != nil {
		return nil, err
	}
	return biometrics, nil
}

// CreateBiometric posts a new biometric entry and returns the persisted row,
// which carries the server-assigned id.
func (c *Client) CreateBiometric(ctx context.Context, biometric entities.Biometric) (*entities.Biometric, error) {
	var saved entities.Biometric
	if err := c.do(ctx, http.MethodPost, "/biometrics", nil, biometric, &saved); err != nil {
		return nil, err
	}
	return &saved, nil
}

// GetRecipes lists recipes, optionally filtered by type and category tag.
// Empty filters are omitted from the query.
func (c *Client) GetRecipes(ctx context.Context, recipeType, extraCategories string) ([]entities.Recipe, error) {
	var recipes []entities.Recipe
	query := url.Values{}
	if recipeType != "" {
		query.Set("recipe_type", recipeType)
	}
	if extraCategories != "" {
		query.Set("extra_categories", extraCategories)
	}
	if err := c.do(ctx, http.MethodGet, "/recipes", query, nil, &recipes); err != nil {
		return nil, err
	}
	return recipes, nil
}

// GenerateRecipe asks the backend to build a recipe from free-text directions.
func (c *Client) GenerateRecipe(ctx context.Context, req entities.RecipeGenerationRequest) (*entities.GenerateRecipeResponse, error) {
	var res entities.GenerateRecipeResponse
	if err := c.do(ctx, http.MethodPost, "/generate-recipe", nil, req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// do performs one exchange: marshal, send with retry-once, classify failures
// and decode the result.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, payload, result any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var body []byte
	if payload != nil {
		var err error
		body, err = json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("marshaling payload: %w", err)
		}
	}

	resp, err := c.send(ctx, method, u, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail := readDetail(resp.Body)
		c.logger.Error().Str("method", method).Str("url", u).Int("status", resp.StatusCode).Str("detail", detail).Msg("request returned error status")
		return &StatusError{StatusCode: resp.StatusCode, Detail: detail}
	}

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			c.logger.Error().Err(err).Str("url", u).Msg("failed to decode response")
			return &DecodeError{Err: err}
		}
	}

	c.logger.Info().Str("method", method).Str("url", u).Int("status", resp.StatusCode).Msg("request completed")
	return nil
}

// send issues the request, retrying once on a connection-level failure.
// Application-level error statuses are never retried, and neither is a
// request whose context is already done.
func (c *Client) send(ctx context.Context, method, u string, body []byte) (*http.Response, error) {
	requestID := uuid.New().String()

	attempt := func() (*http.Response, error) {
		var reader io.Reader
		if body != nil {
			reader = bytes.NewReader(body)
		}
		req, err := http.NewRequestWithContext(ctx, method, u, reader)
		if err != nil {
			return nil, fmt.Errorf("creating request: %w", err)
		}
		if body != nil {
			req.Header.Set("Content-Type", "application/json")
		}
		req.Header.Set("X-Request-ID", requestID)
		return c.httpClient.Do(req)
	}

	c.logger.Info().Str("method", method).Str("url", u).Str("request_id", requestID).Msg("making request")

	resp, err := attempt()
	if err == nil {
		return resp, nil
	}
	if ctx.Err() != nil {
		return nil, &TransportError{Err: err}
	}

	c.logger.Warn().Err(err).Str("url", u).Msg("connection failed, retrying once")
	resp, err = attempt()
	if err != nil {
		c.logger.Error().Err(err).Str("url", u).Msg("request failed after retry")
		return nil, &TransportError{Err: err}
	}
	return resp, nil
}

// readDetail pulls a human-readable message out of an error body. The backend
// uses {"detail": ...} and {"error": ...}; anything else is passed through as
// trimmed text.
func readDetail(r io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(r, 4096))
	if err != nil || len(raw) == 0 {
		return ""
	}
	var shaped struct {
		Detail string `json:"detail"`
		Error  string `json:"error"`
	}
	if err := json.Unmarshal(raw, &shaped); err == nil {
		if shaped.Detail != "" {
			return shaped.Detail
		}
		if shaped.Error != "" {
			return shaped.Error
		}
	}
	return strings.TrimSpace(string(raw))
}
