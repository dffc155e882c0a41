package graph

import (
	"context"
	"fmt"
	"strings"

	"github.com/lorenzomotta/AUSER/internal/core/domain"
	"github.com/lorenzomotta/AUSER/internal/logger"
)

// updateColumns maps the logical update field names to the site's
// column names. Only these fields are writable; anything else is
// silently ignored.
var updateColumns = map[string]string{
	"operator":         "Operatore",
	"date":             "Data",
	"counterpart_name": "TRASP",
	"pickup_time":      "OraSottoCasa",
	"dropoff_time":     "OraDestinazione",
	"service_type":     "TipoServizio",
}

// UpdateItem merges the given logical field values into one list item.
// The site's own REST endpoint is used because Graph cannot address
// items of this list by numeric ID; MERGE with IF-MATCH: * is the
// endpoint's partial-update convention.
func (c *Client) UpdateItem(ctx context.Context, listName string, itemID int, fields map[string]string) error {
	const op = "graph: update item"

	cred, err := c.EnsureValid(ctx)
	if err != nil {
		return err
	}

	body := make(map[string]any, len(fields))
	for name, value := range fields {
		col, ok := updateColumns[name]
		if !ok {
			logger.Warn("ignoring unknown update field %q", name)
			continue
		}
		body[col] = value
	}
	if len(body) == 0 {
		logger.Debug("no writable fields in update for item %d", itemID)
		return nil
	}

	endpoint := fmt.Sprintf(
		"%s/_api/web/lists/getbytitle('%s')/items(%d)",
		strings.TrimSuffix(cred.SiteURL, "/"), listName, itemID,
	)

	if err := c.limiter.Wait(ctx); err != nil {
		return domain.Wrap(domain.KindUpstream, op, err)
	}
	resp, err := c.rest.R().
		SetContext(ctx).
		SetAuthToken(cred.AccessToken).
		SetHeader("Accept", "application/json;odata=verbose").
		SetHeader("Content-Type", "application/json;odata=verbose").
		SetHeader("X-HTTP-Method", "MERGE").
		SetHeader("IF-MATCH", "*").
		SetBody(body).
		Post(endpoint)
	if err != nil {
		return domain.Wrap(domain.KindUpstream, op, err)
	}
	if resp.IsError() {
		return apiError(op, resp.StatusCode(), resp.String())
	}

	logger.Info("item %d updated in %q (%d fields)", itemID, listName, len(body))
	return nil
}
