package source

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	deliverycontext "storelocator/internal/delivery/context"
	domainerrors "storelocator/internal/domain/errors"
	"storelocator/internal/domain/entity"
	"storelocator/internal/domain/repository"

	"github.com/pkg/errors"
)

const (
	defaultHTTPTimeout = 10 * time.Second
	filterPath         = "Filter"
	// maxErrorBody caps how much of a failed response is kept for logging.
	maxErrorBody = 512
)

// httpSource reads locations from the backend's JSON API:
// POST {baseURL}/Filter for pages and GET {baseURL}/{id} for single locations.
type httpSource struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

type filterRequest struct {
	Filter   repository.SourceFilter `json:"filter"`
	Sort     repository.SortField    `json:"sort,omitempty"`
	Page     int                     `json:"page"`
	PageSize int                     `json:"pageSize"`
}

type filterResponse struct {
	Items []*entity.Location `json:"items"`
	Total int                `json:"total"`
}

// NewHTTPSource creates a LocationSource backed by the HTTP API at baseURL.
func NewHTTPSource(baseURL string, timeout time.Duration, logger *slog.Logger) (repository.LocationSource, error) {
	parsed, err := url.Parse(strings.TrimSpace(baseURL))
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, errors.Errorf("invalid source base URL %q", baseURL)
	}

	if timeout <= 0 {
		timeout = defaultHTTPTimeout
	}

	return &httpSource{
		baseURL: strings.TrimRight(parsed.String(), "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}, nil
}

func (s *httpSource) FetchPage(ctx context.Context, req repository.PageRequest) (*repository.Page, error) {
	body, err := json.Marshal(filterRequest{
		Filter:   req.Filter,
		Sort:     req.Sort,
		Page:     req.Page,
		PageSize: req.PageSize,
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/"+filterPath, bytes.NewReader(body))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	var payload filterResponse
	if err := s.do(httpReq, &payload); err != nil {
		if errors.Is(err, domainerrors.ErrLocationNotFound) {
			return nil, domainerrors.ErrSourceUnavailable.WrapMessage("filter endpoint not found")
		}

		return nil, err
	}

	s.logger.Debug("fetched location page",
		slog.Int("page", req.Page),
		slog.Int("items", len(payload.Items)),
		slog.Int("total", payload.Total),
	)

	return &repository.Page{Items: payload.Items, Total: payload.Total}, nil
}

func (s *httpSource) FetchByID(ctx context.Context, id string) (*entity.Location, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	var location entity.Location
	if err := s.do(httpReq, &location); err != nil {
		if errors.Is(err, domainerrors.ErrLocationNotFound) {
			return nil, errors.Wrapf(err, "location %s", id)
		}

		return nil, err
	}
	if location.ID == "" {
		return nil, errors.Wrapf(domainerrors.ErrLocationNotFound, "location %s", id)
	}

	return &location, nil
}

// do sends req and decodes a 2xx JSON body into out.
func (s *httpSource) do(req *http.Request, out any) error {
	req.Header.Set("Accept", "application/json")
	if requestID := deliverycontext.GetRequestIDFromContext(req.Context()); requestID != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, requestID)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return domainerrors.ErrSourceUnavailable.WrapMessage(err.Error())
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return domainerrors.ErrLocationNotFound
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		s.logger.Warn("location source returned an error status",
			slog.String("method", req.Method),
			slog.String("url", req.URL.String()),
			slog.Int("status", resp.StatusCode),
			slog.String("body", string(snippet)),
		)

		return domainerrors.ErrSourceUnavailable.WrapMessage(resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return domainerrors.ErrSourceUnavailable.WrapMessage("decode response: " + err.Error())
	}

	return nil
}
