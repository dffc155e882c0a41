package graph

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/lorenzomotta/AUSER/internal/core/domain"
	"github.com/lorenzomotta/AUSER/internal/logger"
)

// itemsPage is one page of the list items endpoint. The continuation
// link has appeared under both keys across Graph versions.
type itemsPage struct {
	Value    []domain.RawItem `json:"value"`
	NextLink string           `json:"@odata.nextLink"`
	Next     string           `json:"@odata.next"`
}

// FetchItems returns every item of the named list, following the
// continuation link until the server stops returning one. filter, when
// non-empty, is translated from the legacy REST syntax and applied
// server-side; a 400 then comes back as a filter-kind error so the
// caller can retry unfiltered.
func (c *Client) FetchItems(ctx context.Context, listName, filter string) ([]domain.RawItem, error) {
	const op = "graph: fetch items"

	cred, err := c.EnsureValid(ctx)
	if err != nil {
		return nil, err
	}

	siteID, listID, err := c.resolveList(ctx, cred.AccessToken, cred.SiteURL, listName)
	if err != nil {
		return nil, err
	}

	pageURL := fmt.Sprintf(
		"%s/sites/%s/lists/%s/items?$expand=fields&$select=id,fields,createdDateTime&$top=%d",
		c.graphBase, siteID, listID, PageSize,
	)
	if filter != "" {
		translated := TranslateFilter(filter)
		logger.Debug("server-side filter: %s", translated)
		pageURL += "&$filter=" + url.QueryEscape(translated)
	}

	var items []domain.RawItem
	for page := 1; ; page++ {
		if page > MaxPages {
			logger.Warn("stopping after %d pages, result may be truncated", MaxPages)
			break
		}

		if err := c.limiter.Wait(ctx); err != nil {
			return nil, domain.Wrap(domain.KindUpstream, op, err)
		}
		resp, err := c.rest.R().
			SetContext(ctx).
			SetAuthToken(cred.AccessToken).
			Get(pageURL)
		if err != nil {
			return nil, domain.Wrap(domain.KindUpstream, op, err)
		}
		if resp.IsError() {
			if resp.StatusCode() == http.StatusBadRequest && filter != "" {
				return nil, filterRejectedError(op, resp.StatusCode(), resp.String())
			}
			return nil, apiError(op, resp.StatusCode(), resp.String())
		}

		// UseNumber keeps numeric columns intact instead of going
		// through float64.
		var pageData itemsPage
		dec := json.NewDecoder(bytes.NewReader(resp.Body()))
		dec.UseNumber()
		if err := dec.Decode(&pageData); err != nil {
			return nil, domain.Wrap(domain.KindParse, op, err)
		}
		if pageData.Value == nil {
			return nil, domain.E(domain.KindParse, op, "items response has no value array")
		}

		logger.Debug("page %d: %d items", page, len(pageData.Value))
		if len(pageData.Value) == 0 {
			break
		}
		items = append(items, pageData.Value...)

		next := pageData.NextLink
		if next == "" {
			next = pageData.Next
		}
		if next == "" {
			break
		}
		pageURL = next
	}

	logger.Info("fetched %d items from %q", len(items), listName)
	return items, nil
}
