package sheets

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
	gsheets "google.golang.org/api/sheets/v4"
)

const spreadsheetMimeType = "application/vnd.google-apps.spreadsheet"

// googleRemote реализация Remote поверх Google Sheets API v4 и Drive API v3.
// Drive нужен только для поиска таблицы по имени.
type googleRemote struct {
	sheets *gsheets.Service
	drive  *drive.Service
}

// DialGoogle создает клиентов Sheets и Drive по ключу сервисного аккаунта
func DialGoogle(ctx context.Context, credentialsPath string) (Remote, error) {
	opts := []option.ClientOption{
		option.WithCredentialsFile(credentialsPath),
		option.WithScopes(gsheets.SpreadsheetsScope, drive.DriveScope),
	}

	sheetsSvc, err := gsheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}

	driveSvc, err := drive.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create drive service: %w", err)
	}

	return &googleRemote{
		sheets: sheetsSvc,
		drive:  driveSvc,
	}, nil
}

func (g *googleRemote) FindSpreadsheet(ctx context.Context, name string) (string, bool, error) {
	query := fmt.Sprintf("name = '%s' and mimeType = '%s' and trashed = false",
		escapeQueryValue(name), spreadsheetMimeType)

	list, err := g.drive.Files.List().
		Q(query).
		Fields("files(id, name)").
		PageSize(1).
		SupportsAllDrives(true).
		IncludeItemsFromAllDrives(true).
		Context(ctx).
		Do()
	if err != nil {
		return "", false, err
	}

	if len(list.Files) == 0 {
		return "", false, nil
	}
	return list.Files[0].Id, true, nil
}

func (g *googleRemote) CreateSpreadsheet(ctx context.Context, name string) (string, error) {
	created, err := g.sheets.Spreadsheets.Create(&gsheets.Spreadsheet{
		Properties: &gsheets.SpreadsheetProperties{Title: name},
	}).Context(ctx).Do()
	if err != nil {
		return "", err
	}
	return created.SpreadsheetId, nil
}

func (g *googleRemote) HasWorksheet(ctx context.Context, spreadsheetID, title string) (bool, error) {
	spreadsheet, err := g.sheets.Spreadsheets.Get(spreadsheetID).
		Fields("sheets.properties.title").
		Context(ctx).
		Do()
	if err != nil {
		return false, err
	}

	for _, sheet := range spreadsheet.Sheets {
		if sheet.Properties != nil && sheet.Properties.Title == title {
			return true, nil
		}
	}
	return false, nil
}

func (g *googleRemote) AddWorksheet(ctx context.Context, spreadsheetID, title string, rows, cols int64) error {
	_, err := g.sheets.Spreadsheets.BatchUpdate(spreadsheetID, &gsheets.BatchUpdateSpreadsheetRequest{
		Requests: []*gsheets.Request{
			{
				AddSheet: &gsheets.AddSheetRequest{
					Properties: &gsheets.SheetProperties{
						Title: title,
						GridProperties: &gsheets.GridProperties{
							RowCount:    rows,
							ColumnCount: cols,
						},
					},
				},
			},
		},
	}).Context(ctx).Do()
	return err
}

func (g *googleRemote) AppendRow(ctx context.Context, spreadsheetID, title string, row []interface{}) error {
	_, err := g.sheets.Spreadsheets.Values.Append(spreadsheetID, a1Range(title), &gsheets.ValueRange{
		Values: [][]interface{}{row},
	}).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	return err
}

// escapeQueryValue экранирует строку для запроса Drive (q=...)
func escapeQueryValue(v string) string {
	v = strings.ReplaceAll(v, `\`, `\\`)
	return strings.ReplaceAll(v, `'`, `\'`)
}

// a1Range диапазон начала листа в A1-нотации, название листа в кавычках
func a1Range(title string) string {
	return "'" + strings.ReplaceAll(title, "'", "''") + "'!A1"
}
