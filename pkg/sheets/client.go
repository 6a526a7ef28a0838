package sheets

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// Config defines Google Sheets client credentials. Exactly one of
// CredentialsPath or CredentialsJSON must be set.
type Config struct {
	CredentialsPath string
	CredentialsJSON []byte
}

// Client writes tabular data to Google Sheets
type Client struct {
	service *sheets.Service
}

func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	var opts []option.ClientOption

	switch {
	case cfg.CredentialsPath != "":
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	case len(cfg.CredentialsJSON) > 0:
		opts = append(opts, option.WithCredentialsJSON(cfg.CredentialsJSON))
	default:
		return nil, fmt.Errorf("sheets: credentials path or JSON is required")
	}

	service, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("sheets: create service: %w", err)
	}

	return &Client{service: service}, nil
}

// ReplaceValues clears the range and writes the given rows into it.
func (c *Client) ReplaceValues(ctx context.Context, spreadsheetID, valueRange string, values [][]interface{}) error {
	if err := c.ClearValues(ctx, spreadsheetID, valueRange); err != nil {
		return err
	}
	return c.UpdateValues(ctx, spreadsheetID, valueRange, values)
}

// UpdateValues overwrites the range with the given rows.
func (c *Client) UpdateValues(ctx context.Context, spreadsheetID, valueRange string, values [][]interface{}) error {
	if c.service == nil {
		return fmt.Errorf("sheets: service is nil")
	}

	_, err := c.service.Spreadsheets.Values.Update(spreadsheetID, valueRange, &sheets.ValueRange{Values: values}).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("sheets: update values: %w", err)
	}
	return nil
}

// AppendValues inserts the given rows after the last row of the range.
func (c *Client) AppendValues(ctx context.Context, spreadsheetID, valueRange string, values [][]interface{}) error {
	if c.service == nil {
		return fmt.Errorf("sheets: service is nil")
	}

	_, err := c.service.Spreadsheets.Values.Append(spreadsheetID, valueRange, &sheets.ValueRange{Values: values}).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("sheets: append values: %w", err)
	}
	return nil
}

// ClearValues empties the range.
func (c *Client) ClearValues(ctx context.Context, spreadsheetID, valueRange string) error {
	if c.service == nil {
		return fmt.Errorf("sheets: service is nil")
	}

	_, err := c.service.Spreadsheets.Values.Clear(spreadsheetID, valueRange, &sheets.ClearValuesRequest{}).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("sheets: clear values: %w", err)
	}
	return nil
}
