package sheets

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"

	"github.com/hosteldesk/outpass-api/pkg/config"
)

// Client wraps the Sheets values API behind the three tabular-store
// operations the repositories need: ranged read, append, ranged update.
type Client struct {
	svc *sheetsapi.Service
}

// New builds a Sheets client from a service-account credentials file.
func New(ctx context.Context, cfg config.SheetsConfig) (*Client, error) {
	svc, err := sheetsapi.NewService(ctx,
		option.WithCredentialsFile(cfg.CredentialsFile),
		option.WithScopes(sheetsapi.SpreadsheetsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("init sheets service: %w", err)
	}
	return &Client{svc: svc}, nil
}

// Get reads the addressed range and returns it as string rows. Sheets returns
// loosely typed cells; everything is rendered to its string form.
func (c *Client) Get(ctx context.Context, spreadsheetID, readRange string) ([][]string, error) {
	resp, err := c.svc.Spreadsheets.Values.Get(spreadsheetID, readRange).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("sheets get %s: %w", readRange, err)
	}
	return fromValues(resp.Values), nil
}

// Append writes rows after the last non-empty row of the addressed table.
func (c *Client) Append(ctx context.Context, spreadsheetID, writeRange string, rows [][]string) error {
	body := &sheetsapi.ValueRange{Values: toValues(rows)}
	_, err := c.svc.Spreadsheets.Values.
		Append(spreadsheetID, writeRange, body).
		ValueInputOption("USER_ENTERED").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("sheets append %s: %w", writeRange, err)
	}
	return nil
}

// Update overwrites the addressed range with the given rows.
func (c *Client) Update(ctx context.Context, spreadsheetID, writeRange string, rows [][]string) error {
	body := &sheetsapi.ValueRange{Values: toValues(rows)}
	_, err := c.svc.Spreadsheets.Values.
		Update(spreadsheetID, writeRange, body).
		ValueInputOption("RAW").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("sheets update %s: %w", writeRange, err)
	}
	return nil
}

func fromValues(values [][]interface{}) [][]string {
	rows := make([][]string, 0, len(values))
	for _, raw := range values {
		row := make([]string, 0, len(raw))
		for _, cell := range raw {
			if cell == nil {
				row = append(row, "")
				continue
			}
			row = append(row, fmt.Sprint(cell))
		}
		rows = append(rows, row)
	}
	return rows
}

func toValues(rows [][]string) [][]interface{} {
	values := make([][]interface{}, 0, len(rows))
	for _, row := range rows {
		cells := make([]interface{}, 0, len(row))
		for _, cell := range row {
			cells = append(cells, cell)
		}
		values = append(values, cells)
	}
	return values
}
