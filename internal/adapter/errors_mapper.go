package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// maxErrorBody bounds how much of an upstream error body ends up in logs.
const maxErrorBody = 256

func mapHTTPError(resp *resty.Response) error {
	status := resp.StatusCode()
	if status >= http.StatusOK && status < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if len(body) > maxErrorBody {
		body = body[:maxErrorBody]
	}
	if body == "" {
		body = http.StatusText(status)
	}

	switch {
	case status == http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrProfileNotFound, body)
	case status >= http.StatusBadRequest && status < http.StatusInternalServerError:
		return fmt.Errorf("%w: http %d: %s", ErrUpstreamRejected, status, body)
	case status >= http.StatusInternalServerError:
		return fmt.Errorf("%w: http %d: %s", ErrUpstreamUnavailable, status, body)
	default:
		return fmt.Errorf("%w: http %d: %s", ErrUnexpectedStatus, status, body)
	}
}
