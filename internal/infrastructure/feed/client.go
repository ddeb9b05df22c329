package feed

import (
	"context"
	stderrors "errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/radityasurya/cricket-arena/internal/platform/logging"
	"github.com/radityasurya/cricket-arena/internal/platform/resilience"
	"github.com/radityasurya/cricket-arena/internal/usecase"
	"github.com/valyala/bytebufferpool"
	"github.com/valyala/fasthttp"
)

const defaultTimeout = 20 * time.Second

var errFeedTransient = crerr.New("score feed transient failure")

type ClientConfig struct {
	BaseURL        string
	Token          string
	Timeout        time.Duration
	MaxRetries     int
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client pulls complete tournament bundles from the upstream score feed.
type Client struct {
	httpClient     *fasthttp.Client
	baseURL        string
	token          string
	timeout        time.Duration
	maxRetries     int
	logger         *logging.Logger
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
	flight         resilience.SingleFlight
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	maxRetries := cfg.MaxRetries
	if maxRetries < 0 {
		maxRetries = 0
	}

	breakerCfg := resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)

	return &Client{
		httpClient:     &fasthttp.Client{ReadTimeout: timeout, WriteTimeout: timeout},
		baseURL:        strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/"),
		token:          strings.TrimSpace(cfg.Token),
		timeout:        timeout,
		maxRetries:     maxRetries,
		logger:         logger,
		breaker:        resilience.NewCircuitBreaker(breakerCfg.FailureThreshold, breakerCfg.OpenTimeout, breakerCfg.HalfOpenMaxReq),
		circuitEnabled: breakerCfg.Enabled,
	}
}

// FetchTournamentBundle fetches the full read model for one tournament.
// Concurrent calls for the same tournament share a single upstream request.
func (c *Client) FetchTournamentBundle(ctx context.Context, tournamentID string) (usecase.TournamentBundle, error) {
	if strings.TrimSpace(tournamentID) == "" {
		return usecase.TournamentBundle{}, crerr.New("tournament id is required")
	}
	if c.baseURL == "" {
		return usecase.TournamentBundle{}, crerr.New("score feed base url is not configured")
	}

	if c.circuitEnabled {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "score feed circuit breaker rejected request", "state", c.breaker.State())
			return usecase.TournamentBundle{}, fmt.Errorf("%w: score feed is temporarily unavailable", usecase.ErrDependencyUnavailable)
		}
	}

	fullURL := c.bundleURL(tournamentID)
	out, err, _ := c.flight.Do(fullURL, func() (any, error) {
		raw, reqErr := c.executeRequest(ctx, fullURL)
		if c.circuitEnabled {
			if reqErr != nil && stderrors.Is(reqErr, errFeedTransient) {
				c.breaker.RecordFailure()
			} else {
				c.breaker.RecordSuccess()
			}
		}
		return raw, reqErr
	})
	if err != nil {
		return usecase.TournamentBundle{}, err
	}

	raw, ok := out.([]byte)
	if !ok {
		return usecase.TournamentBundle{}, fmt.Errorf("unexpected response payload type %T", out)
	}

	var envelope bundleEnvelope
	if err := sonic.Unmarshal(raw, &envelope); err != nil {
		return usecase.TournamentBundle{}, fmt.Errorf("decode score feed payload: %w", err)
	}

	bundle, err := envelope.toDomain()
	if err != nil {
		return usecase.TournamentBundle{}, fmt.Errorf("map score feed payload: %w", err)
	}

	return bundle, nil
}

func (c *Client) bundleURL(tournamentID string) string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	_, _ = buf.WriteString(c.baseURL)
	_, _ = buf.WriteString("/v1/tournaments/")
	_, _ = buf.WriteString(tournamentID)
	_, _ = buf.WriteString("/bundle")

	return buf.String()
}

func (c *Client) executeRequest(ctx context.Context, fullURL string) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		raw, err := c.doOnce(fullURL)
		if err == nil {
			return raw, nil
		}
		lastErr = err
		if !stderrors.Is(err, errFeedTransient) {
			return nil, err
		}
		if attempt == c.maxRetries {
			break
		}

		backoff := time.Duration(attempt+1) * time.Second
		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	return nil, lastErr
}

func (c *Client) doOnce(fullURL string) ([]byte, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(fullURL)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	if err := c.httpClient.DoTimeout(req, resp, c.timeout); err != nil {
		return nil, fmt.Errorf("%w: send request: %v", errFeedTransient, err)
	}

	status := resp.StatusCode()
	body := append([]byte(nil), resp.Body()...)
	if status >= 200 && status < 300 {
		return body, nil
	}
	if isRetryableStatus(status) {
		return nil, fmt.Errorf("%w: score feed status=%d", errFeedTransient, status)
	}

	return nil, fmt.Errorf("score feed status=%d", status)
}

func isRetryableStatus(statusCode int) bool {
	return statusCode == http.StatusRequestTimeout ||
		statusCode == http.StatusTooManyRequests ||
		statusCode >= http.StatusInternalServerError
}
