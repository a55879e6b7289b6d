package sheets

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/knaito/naraigoto-api/pkg/config"
)

// Client wraps the Google Sheets API for the one-way lesson mirror.
type Client struct {
	svc           *sheets.Service
	spreadsheetID string
	worksheet     string
}

// NewClient builds a Sheets client from service-account credentials.
func NewClient(ctx context.Context, cfg config.SheetsConfig) (*Client, error) {
	svc, err := sheets.NewService(ctx, option.WithCredentialsFile(cfg.CredentialsFile))
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}
	return &Client{
		svc:           svc,
		spreadsheetID: cfg.SpreadsheetID,
		worksheet:     cfg.WorksheetTitle,
	}, nil
}

// ReplaceRows clears the worksheet and rewrites it with the provided rows,
// creating the worksheet when it does not exist yet.
func (c *Client) ReplaceRows(ctx context.Context, rows [][]string) error {
	if err := c.ensureWorksheet(ctx); err != nil {
		return err
	}

	clearRange := fmt.Sprintf("%s!A:Z", c.worksheet)
	if _, err := c.svc.Spreadsheets.Values.Clear(c.spreadsheetID, clearRange, &sheets.ClearValuesRequest{}).Context(ctx).Do(); err != nil {
		return fmt.Errorf("clear worksheet %s: %w", c.worksheet, err)
	}

	values := make([][]interface{}, len(rows))
	for i, row := range rows {
		cells := make([]interface{}, len(row))
		for j, cell := range row {
			cells[j] = cell
		}
		values[i] = cells
	}

	rangeRef := fmt.Sprintf("%s!A1", c.worksheet)
	body := &sheets.ValueRange{Values: values}
	if _, err := c.svc.Spreadsheets.Values.Update(c.spreadsheetID, rangeRef, body).
		ValueInputOption("RAW").Context(ctx).Do(); err != nil {
		return fmt.Errorf("update worksheet %s: %w", c.worksheet, err)
	}

	return nil
}

func (c *Client) ensureWorksheet(ctx context.Context) error {
	spreadsheet, err := c.svc.Spreadsheets.Get(c.spreadsheetID).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("get spreadsheet: %w", err)
	}
	for _, sheet := range spreadsheet.Sheets {
		if sheet.Properties != nil && sheet.Properties.Title == c.worksheet {
			return nil
		}
	}

	req := &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{{
			AddSheet: &sheets.AddSheetRequest{
				Properties: &sheets.SheetProperties{Title: c.worksheet},
			},
		}},
	}
	if _, err := c.svc.Spreadsheets.BatchUpdate(c.spreadsheetID, req).Context(ctx).Do(); err != nil {
		return fmt.Errorf("add worksheet %s: %w", c.worksheet, err)
	}
	return nil
}
