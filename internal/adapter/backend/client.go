package backend

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-resty/resty/v2"
	"github.com/shopspring/decimal"

	"emerald-ads/internal/config/configs"
	"emerald-ads/internal/core/domain"
	"emerald-ads/internal/core/port"
)

// Client implements port.CampaignBackend over the backend's REST API.
// Only GET requests are retried: a retried balance write could be applied
// twice.
type Client struct {
	http   *resty.Client
	logger *slog.Logger
}

var _ port.CampaignBackend = (*Client)(nil)

// NewClient returns a client for the backend described by cfg.
func NewClient(cfg configs.Backend, logger *slog.Logger) *Client {
	c := resty.New().
		SetBaseURL(cfg.Addr).
		SetTimeout(cfg.Timeout).
		SetRetryCount(cfg.ReadRetries).
		SetRetryWaitTime(cfg.RetryWait).
		SetRetryMaxWaitTime(cfg.RetryMaxWait).
		AddRetryCondition(retryReads).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")
	return &Client{http: c, logger: logger}
}

func retryReads(r *resty.Response, err error) bool {
	if r == nil || r.Request == nil || r.Request.Method != http.MethodGet {
		return false
	}
	if r.Request.Context().Err() != nil {
		return false
	}
	return err != nil || r.StatusCode() >= http.StatusInternalServerError
}

type errorBody struct {
	Message string `json:"message"`
}

type balanceRequest struct {
	AccountBalance json.Number `json:"accountBalance"`
}

type campaignRequest struct {
	ID           *int64      `json:"id,omitempty"`
	Name         string      `json:"name"`
	Keywords     string      `json:"keywords"`
	BidAmount    json.Number `json:"bidAmount"`
	CampaignFund json.Number `json:"campaignFund"`
	Status       bool        `json:"status"`
	Town         string      `json:"town"`
	Radius       int         `json:"radius"`
	UserID       int64       `json:"userId"`
}

func newCampaignRequest(p domain.CampaignPayload) campaignRequest {
	return campaignRequest{
		ID:           p.ID,
		Name:         p.Name,
		Keywords:     p.Keywords,
		BidAmount:    number(p.BidAmount),
		CampaignFund: number(p.CampaignFund),
		Status:       p.Status,
		Town:         p.Town,
		Radius:       p.Radius,
		UserID:       p.UserID,
	}
}

// number renders d as a bare JSON number; the backend does not accept
// quoted amounts.
func number(d decimal.Decimal) json.Number {
	return json.Number(d.String())
}

// do executes the request and classifies failures. Only a request that got
// no response at all is unreachable; a response that arrived but could not
// be decoded keeps its status code, since the server may have applied it.
// A non-2xx response carries the server message.
func (c *Client) do(ctx context.Context, op string, req *resty.Request, method, url string) (*resty.Response, error) {
	resp, err := req.
		SetContext(ctx).
		SetError(&errorBody{}).
		Execute(method, url)
	if err != nil {
		if resp != nil && resp.RawResponse != nil {
			c.logger.Warn("backend response not understood", slog.String("op", op), slog.Int("status_code", resp.StatusCode()), slog.Any("error", err))
			return nil, &port.BackendError{Op: op, StatusCode: resp.StatusCode(), Err: err}
		}
		c.logger.Debug("backend request failed", slog.String("op", op), slog.Any("error", err))
		return nil, &port.BackendError{Op: op, Unreachable: true, Err: err}
	}
	if resp.IsError() {
		be := &port.BackendError{Op: op, StatusCode: resp.StatusCode()}
		if body, ok := resp.Error().(*errorBody); ok && body != nil {
			be.Message = body.Message
		}
		c.logger.Debug("backend rejected request", slog.String("op", op), slog.Int("status_code", be.StatusCode), slog.String("message", be.Message))
		return nil, be
	}
	return resp, nil
}

func (c *Client) ListTowns(ctx context.Context) ([]domain.Town, error) {
	var towns []domain.Town
	if _, err := c.do(ctx, "list towns", c.http.R().SetResult(&towns), http.MethodGet, "/api/towns"); err != nil {
		return nil, err
	}
	return towns, nil
}

func (c *Client) SearchKeywords(ctx context.Context, search string) ([]string, error) {
	var keywords []string
	req := c.http.R().SetQueryParam("search", search).SetResult(&keywords)
	if _, err := c.do(ctx, "search keywords", req, http.MethodGet, "/api/keywords"); err != nil {
		return nil, err
	}
	return keywords, nil
}

func (c *Client) UpdateBalance(ctx context.Context, userID int64, balance decimal.Decimal) error {
	req := c.http.R().
		SetPathParam("id", strconv.FormatInt(userID, 10)).
		SetBody(balanceRequest{AccountBalance: number(balance)})
	_, err := c.do(ctx, "update balance", req, http.MethodPut, "/api/users/{id}/update-balance")
	return err
}

func (c *Client) CreateCampaign(ctx context.Context, p domain.CampaignPayload) (*domain.Campaign, error) {
	var stored domain.Campaign
	req := c.http.R().SetBody(newCampaignRequest(p)).SetResult(&stored)
	if _, err := c.do(ctx, "create campaign", req, http.MethodPost, "/api/campaigns"); err != nil {
		return nil, err
	}
	return &stored, nil
}

func (c *Client) UpdateCampaign(ctx context.Context, id int64, p domain.CampaignPayload) (*domain.Campaign, error) {
	var stored domain.Campaign
	body := newCampaignRequest(p)
	body.ID = &id
	req := c.http.R().
		SetPathParam("id", strconv.FormatInt(id, 10)).
		SetBody(body).
		SetResult(&stored)
	if _, err := c.do(ctx, "update campaign", req, http.MethodPut, "/api/campaigns/{id}"); err != nil {
		return nil, err
	}
	return &stored, nil
}

func (c *Client) ListCampaigns(ctx context.Context) ([]domain.Campaign, error) {
	var campaigns []domain.Campaign
	if _, err := c.do(ctx, "list campaigns", c.http.R().SetResult(&campaigns), http.MethodGet, "/api/campaigns"); err != nil {
		return nil, err
	}
	return campaigns, nil
}
