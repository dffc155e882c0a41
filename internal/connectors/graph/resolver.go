package graph

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/lorenzomotta/AUSER/internal/core/domain"
	"github.com/lorenzomotta/AUSER/internal/logger"
)

// resolveList resolves the configured site URL to a Graph site ID, then
// the display name to a list ID.
func (c *Client) resolveList(ctx context.Context, token, siteURL, listName string) (siteID, listID string, err error) {
	siteID, err = c.resolveSite(ctx, token, siteURL)
	if err != nil {
		return "", "", err
	}
	listID, err = c.resolveListID(ctx, token, siteID, listName)
	if err != nil {
		return "", "", err
	}
	return siteID, listID, nil
}

func (c *Client) resolveSite(ctx context.Context, token, siteURL string) (string, error) {
	const op = "graph: resolve site"

	u, err := url.Parse(strings.TrimSuffix(siteURL, "/"))
	if err != nil || u.Host == "" {
		return "", domain.E(domain.KindConfig, op, fmt.Sprintf("invalid site URL %q", siteURL))
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return "", domain.Wrap(domain.KindUpstream, op, err)
	}
	resp, err := c.rest.R().
		SetContext(ctx).
		SetAuthToken(token).
		Get(fmt.Sprintf("%s/sites/%s:%s", c.graphBase, u.Host, u.Path))
	if err != nil {
		return "", domain.Wrap(domain.KindUpstream, op, err)
	}
	if resp.IsError() {
		return "", apiError(op, resp.StatusCode(), resp.String())
	}

	var site struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(resp.Body(), &site); err != nil {
		return "", domain.Wrap(domain.KindParse, op, err)
	}
	if site.ID == "" {
		return "", domain.E(domain.KindParse, op, "site response has no id")
	}
	logger.Debug("site resolved: %s", site.ID)
	return site.ID, nil
}

func (c *Client) resolveListID(ctx context.Context, token, siteID, listName string) (string, error) {
	const op = "graph: resolve list"

	if err := c.limiter.Wait(ctx); err != nil {
		return "", domain.Wrap(domain.KindUpstream, op, err)
	}
	resp, err := c.rest.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetQueryParam("$filter", fmt.Sprintf("displayName eq '%s'", listName)).
		Get(fmt.Sprintf("%s/sites/%s/lists", c.graphBase, siteID))
	if err != nil {
		return "", domain.Wrap(domain.KindUpstream, op, err)
	}
	if resp.IsError() {
		return "", apiError(op, resp.StatusCode(), resp.String())
	}

	var lists struct {
		Value []struct {
			ID string `json:"id"`
		} `json:"value"`
	}
	if err := json.Unmarshal(resp.Body(), &lists); err != nil {
		return "", domain.Wrap(domain.KindParse, op, err)
	}
	if len(lists.Value) == 0 {
		return "", domain.E(domain.KindNotFound, op, fmt.Sprintf("list %q not found", listName))
	}
	logger.Debug("list %q resolved: %s", listName, lists.Value[0].ID)
	return lists.Value[0].ID, nil
}
