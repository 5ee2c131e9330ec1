// Package upstream оборачивает исходящие HTTP вызовы в circuit breaker.
// Каждый вызов делает ровно одну попытку, повторов нет.
package upstream

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/sony/gobreaker/v2"
)

const maxErrorBody = 4 << 10

type Client struct {
	name    string
	http    *http.Client
	breaker *gobreaker.CircuitBreaker[*http.Response]
}

func New(name string, timeout time.Duration) *Client {
	return NewWithHTTPClient(name, &http.Client{Timeout: timeout})
}

func NewWithHTTPClient(name string, httpClient *http.Client) *Client {
	cb := gobreaker.NewCircuitBreaker[*http.Response](gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Interval:    60 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures > 5
		},
	})

	return &Client{
		name:    name,
		http:    httpClient,
		breaker: cb,
	}
}

func (c *Client) Name() string {
	return c.name
}

// Do выполняет запрос. Ответы 5xx считаются отказом для breaker,
// но возвращаются вызывающему как есть.
func (c *Client) Do(req *http.Request) (*http.Response, error) {
	var passthrough *http.Response

	resp, err := c.breaker.Execute(func() (*http.Response, error) {
		resp, err := c.http.Do(req)
		if err != nil {
			return nil, err
		}
		if resp.StatusCode >= http.StatusInternalServerError {
			passthrough = resp
			return nil, errServerStatus
		}
		return resp, nil
	})

	if errors.Is(err, errServerStatus) {
		return passthrough, nil
	}
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return nil, fmt.Errorf("%s unavailable: %w", c.name, err)
	}
	if err != nil {
		return nil, fmt.Errorf("%s request failed: %w", c.name, redactQuery(err))
	}
	return resp, nil
}

// redactQuery убирает query из URL в транспортной ошибке: там бывают ключи доступа
func redactQuery(err error) error {
	var urlErr *url.Error
	if !errors.As(err, &urlErr) {
		return err
	}

	u, parseErr := url.Parse(urlErr.URL)
	if parseErr != nil {
		return &url.Error{Op: urlErr.Op, URL: "<redacted>", Err: urlErr.Err}
	}
	u.RawQuery = ""
	u.User = nil
	return &url.Error{Op: urlErr.Op, URL: u.String(), Err: urlErr.Err}
}

var errServerStatus = errors.New("upstream server error")

// StatusError неуспешный статус от внешнего сервиса
type StatusError struct {
	Service    string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s returned status %d", e.Service, e.StatusCode)
	}
	return fmt.Sprintf("%s returned status %d: %s", e.Service, e.StatusCode, e.Body)
}

// NewStatusError читает тело ответа (с ограничением) для диагностики
func NewStatusError(service string, resp *http.Response) *StatusError {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	return &StatusError{
		Service:    service,
		StatusCode: resp.StatusCode,
		Body:       string(body),
	}
}
