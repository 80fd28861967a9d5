package sheets

import (
	"context"
	"fmt"
	"os"
	"time"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"

	"github.com/suchimauz/engineer-availability-resolver/internal/config"
	"github.com/suchimauz/engineer-availability-resolver/internal/core/domain"
	"github.com/suchimauz/engineer-availability-resolver/internal/core/ports/out"
)

const (
	rulesReadRange    = "!A2:M"
	sessionsReadRange = "!A2:E"
	rulesAppendRange  = "!A:M"
)

type SheetsAdapter struct {
	service       *sheetsapi.Service
	spreadsheetID string
	rulesSheet    string
	sessionsSheet string
	batchSize     int
	location      *time.Location
	logger        out.LoggerPort
}

func NewSheetsAdapter(ctx context.Context, cfg *config.Config, logger out.LoggerPort) (*SheetsAdapter, error) {
	data, err := os.ReadFile(cfg.Sheets.CredentialsFile)
	if err != nil {
		logger.Error("sheets.credentials.read_failed", out.LogFields{
			"file":  cfg.Sheets.CredentialsFile,
			"error": err.Error(),
		})
		return nil, err
	}

	creds, err := google.CredentialsFromJSON(ctx, data, sheetsapi.SpreadsheetsScope)
	if err != nil {
		logger.Error("sheets.credentials.parse_failed", out.LogFields{
			"error": err.Error(),
		})
		return nil, err
	}

	service, err := sheetsapi.NewService(ctx, option.WithCredentials(creds))
	if err != nil {
		logger.Error("sheets.service.init_failed", out.LogFields{
			"error": err.Error(),
		})
		return nil, err
	}

	return &SheetsAdapter{
		service:       service,
		spreadsheetID: cfg.Sheets.SpreadsheetID,
		rulesSheet:    cfg.Sheets.RulesSheet,
		sessionsSheet: cfg.Sheets.SessionsSheet,
		batchSize:     cfg.Sheets.AppendBatchSize,
		location:      cfg.App.Location,
		logger:        logger,
	}, nil
}

func (a *SheetsAdapter) GetRules(ctx context.Context, engineerID string) ([]domain.AvailabilityRule, error) {
	allRules, err := a.GetAllRules(ctx)
	if err != nil {
		return nil, err
	}

	rules, exists := allRules[engineerID]
	if !exists {
		return []domain.AvailabilityRule{}, nil
	}
	return rules, nil
}

func (a *SheetsAdapter) GetAllRules(ctx context.Context) (map[string][]domain.AvailabilityRule, error) {
	a.logger.Debug("sheets.rules.fetch", out.LogFields{
		"sheet": a.rulesSheet,
	})

	resp, err := a.service.Spreadsheets.Values.
		Get(a.spreadsheetID, a.rulesSheet+rulesReadRange).
		Context(ctx).Do()
	if err != nil {
		a.logger.Error("sheets.rules.fetch_failed", out.LogFields{
			"error": err.Error(),
		})
		return nil, fmt.Errorf("sheets.rules.fetch_failed: %w", err)
	}

	rules := make(map[string][]domain.AvailabilityRule)
	for i, row := range resp.Values {
		rule, err := a.parseRuleRow(row)
		if err != nil {
			// Кривая строка - ошибка контракта хранилища, не пропускаем молча
			return nil, fmt.Errorf("sheets.rules.row_malformed: row %d: %w", i+2, err)
		}
		rules[rule.EngineerID] = append(rules[rule.EngineerID], rule)
	}

	return rules, nil
}

func (a *SheetsAdapter) CreateRules(ctx context.Context, rules []domain.AvailabilityRule) error {
	// API ограничивает размер одного append, пишем пачками
	for offset := 0; offset < len(rules); offset += a.batchSize {
		end := offset + a.batchSize
		if end > len(rules) {
			end = len(rules)
		}

		values := make([][]interface{}, 0, end-offset)
		for _, rule := range rules[offset:end] {
			values = append(values, a.ruleToRow(rule))
		}

		_, err := a.service.Spreadsheets.Values.
			Append(a.spreadsheetID, a.rulesSheet+rulesAppendRange, &sheetsapi.ValueRange{Values: values}).
			ValueInputOption("RAW").
			Context(ctx).Do()
		if err != nil {
			a.logger.Error("sheets.rules.append_failed", out.LogFields{
				"offset": offset,
				"count":  len(values),
				"error":  err.Error(),
			})
			return fmt.Errorf("sheets.rules.append_failed: %w", err)
		}

		a.logger.Debug("sheets.rules.append_batch", out.LogFields{
			"offset": offset,
			"count":  len(values),
		})
	}

	return nil
}

func (a *SheetsAdapter) DeleteRule(ctx context.Context, ruleID string) (string, error) {
	resp, err := a.service.Spreadsheets.Values.
		Get(a.spreadsheetID, a.rulesSheet+"!A2:B").
		Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("sheets.rules.fetch_failed: %w", err)
	}

	// Ищем строку с нужным id, +1 за строку заголовка.
	// Инженера забираем сразу, он нужен для точечной инвалидации кэша
	rowIndex := -1
	engineerID := ""
	for i, row := range resp.Values {
		if cellString(row, 0) == ruleID {
			rowIndex = i + 1
			engineerID = cellString(row, 1)
			break
		}
	}
	if rowIndex == -1 {
		return "", fmt.Errorf("sheets.rules.not_found: %s: %w", ruleID, out.ErrRuleNotFound)
	}

	sheetID, err := a.sheetIDByTitle(ctx, a.rulesSheet)
	if err != nil {
		return "", err
	}

	_, err = a.service.Spreadsheets.BatchUpdate(a.spreadsheetID, &sheetsapi.BatchUpdateSpreadsheetRequest{
		Requests: []*sheetsapi.Request{
			{
				DeleteDimension: &sheetsapi.DeleteDimensionRequest{
					Range: &sheetsapi.DimensionRange{
						SheetId:    sheetID,
						Dimension:  "ROWS",
						StartIndex: int64(rowIndex),
						EndIndex:   int64(rowIndex + 1),
					},
				},
			},
		},
	}).Context(ctx).Do()
	if err != nil {
		a.logger.Error("sheets.rules.delete_failed", out.LogFields{
			"ruleId": ruleID,
			"error":  err.Error(),
		})
		return "", fmt.Errorf("sheets.rules.delete_failed: %w", err)
	}

	a.logger.Info("sheets.rules.deleted", out.LogFields{
		"ruleId":     ruleID,
		"engineerId": engineerID,
	})
	return engineerID, nil
}

func (a *SheetsAdapter) GetSessions(ctx context.Context, engineerID string, startDate, endDate time.Time) ([]domain.Session, error) {
	a.logger.Debug("sheets.sessions.fetch", out.LogFields{
		"sheet":      a.sessionsSheet,
		"engineerId": engineerID,
	})

	resp, err := a.service.Spreadsheets.Values.
		Get(a.spreadsheetID, a.sessionsSheet+sessionsReadRange).
		Context(ctx).Do()
	if err != nil {
		a.logger.Error("sheets.sessions.fetch_failed", out.LogFields{
			"error": err.Error(),
		})
		return nil, fmt.Errorf("sheets.sessions.fetch_failed: %w", err)
	}

	sessions := make([]domain.Session, 0)
	for i, row := range resp.Values {
		session, err := a.parseSessionRow(row)
		if err != nil {
			return nil, fmt.Errorf("sheets.sessions.row_malformed: row %d: %w", i+2, err)
		}

		if session.EngineerID != engineerID {
			continue
		}

		// Интересуют только сессии, пересекающие диапазон [startDate, endDate)
		if !session.End.Date.After(startDate) || !session.Start.Date.Before(endDate) {
			continue
		}

		sessions = append(sessions, session)
	}

	return sessions, nil
}

func (a *SheetsAdapter) sheetIDByTitle(ctx context.Context, title string) (int64, error) {
	spreadsheet, err := a.service.Spreadsheets.Get(a.spreadsheetID).Context(ctx).Do()
	if err != nil {
		return 0, fmt.Errorf("sheets.spreadsheet.fetch_failed: %w", err)
	}

	for _, sheet := range spreadsheet.Sheets {
		if sheet.Properties != nil && sheet.Properties.Title == title {
			return sheet.Properties.SheetId, nil
		}
	}

	return 0, fmt.Errorf("sheets.sheet.not_found: %s", title)
}
