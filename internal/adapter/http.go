package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/jsonc"

	"github.com/MKhiriev/go-sub-merger/internal/config"
	"github.com/MKhiriev/go-sub-merger/internal/logger"
	"github.com/MKhiriev/go-sub-merger/internal/utils"
)

const traceIDHeader = "X-Trace-ID"

type httpSourceAdapter struct {
	client *utils.HTTPClient

	maxBodyBytes  int64
	allowComments bool

	logger *logger.Logger
}

// NewHTTPSourceAdapter constructs an HTTP implementation of [SourceAdapter].
// The underlying client takes its timeout, retry count, redirect limit and
// User-Agent from adapterCfg; a zero value keeps resty's default.
//
// A non-positive adapterCfg.MaxBodyBytes disables the body size check.
func NewHTTPSourceAdapter(adapterCfg config.Adapter, logger *logger.Logger) SourceAdapter {
	client := utils.NewHTTPClient(utils.HTTPClientOptions{
		Timeout:      adapterCfg.RequestTimeout,
		RetryCount:   adapterCfg.RetryCount,
		MaxRedirects: adapterCfg.MaxRedirects,
		UserAgent:    adapterCfg.UserAgent,
	})

	return &httpSourceAdapter{
		client:        client,
		maxBodyBytes:  adapterCfg.MaxBodyBytes,
		allowComments: adapterCfg.AllowComments,
		logger:        logger,
	}
}

// FetchJSON implements [SourceAdapter]. It GETs rawURL, reads at most the
// configured number of bytes, checks for a 2xx status and decodes the body.
// The request trace ID, when present in ctx, is forwarded as X-Trace-ID.
func (h *httpSourceAdapter) FetchJSON(ctx context.Context, rawURL string) (any, error) {
	host, err := checkURL(rawURL)
	if err != nil {
		return nil, err
	}

	req := h.client.R().
		SetContext(ctx).
		SetDoNotParseResponse(true).
		SetHeader("Accept", "application/json")

	traceID, _ := utils.GetTraceIDFromContext(ctx)
	if traceID != "" {
		req.SetHeader(traceIDHeader, traceID)
	}

	start := time.Now()
	resp, err := req.Get(rawURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTransport, err)
	}

	body, err := h.readBody(resp)
	if err != nil {
		return nil, err
	}

	h.logger.Debug().
		Str("trace_id", traceID).
		Str("host", host).
		Int("status", resp.StatusCode()).
		Int("size", len(body)).
		Dur("duration", time.Since(start)).
		Msg("document fetched")

	if err = mapHTTPError(resp.StatusCode(), body); err != nil {
		return nil, err
	}

	return decodeJSON(body, h.allowComments)
}

func (h *httpSourceAdapter) readBody(resp *resty.Response) ([]byte, error) {
	raw := resp.RawBody()
	if raw == nil {
		return nil, nil
	}
	defer raw.Close()

	var reader io.Reader = raw
	if h.maxBodyBytes > 0 {
		// one extra byte tells an exact fit from an overflow
		reader = io.LimitReader(raw, h.maxBodyBytes+1)
	}

	body, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("%w: reading body: %w", ErrTransport, err)
	}

	if h.maxBodyBytes > 0 && int64(len(body)) > h.maxBodyBytes {
		return nil, fmt.Errorf("%w: limit is %d bytes", ErrBodyTooLarge, h.maxBodyBytes)
	}

	return body, nil
}

// decodeJSON decodes exactly one JSON value from body. Numbers are kept as
// json.Number so they are re-encoded with their original text.
func decodeJSON(body []byte, allowComments bool) (any, error) {
	if allowComments {
		body = jsonc.ToJSON(body)
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var value any
	if err := dec.Decode(&value); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty body", ErrDecode)
		}
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: unexpected data after the top-level value", ErrDecode)
	}

	return value, nil
}

// checkURL accepts absolute http and https URLs and returns their host.
func checkURL(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("%w: scheme must be http or https", ErrInvalidURL)
	}
	if u.Host == "" {
		return "", fmt.Errorf("%w: missing host", ErrInvalidURL)
	}

	return u.Host, nil
}
