package config

import (
	"context"
	"log"

	"github.com/tpeo/attendbot/services/logger"
	"github.com/tpeo/attendbot/sheetstore"
)

// ConnectSheets creates the Sheets-backed store client.
func ConnectSheets(ctx context.Context, cfg *Config, lg logger.Logger) (*sheetstore.Client, error) {
	client, err := sheetstore.NewClient(ctx, sheetstore.ClientOptions{
		CredentialsFile: cfg.CredentialsFile,
		SpreadsheetID:   cfg.SpreadsheetID,
		Logger:          lg,
	})
	if err != nil {
		return nil, err
	}
	log.Println("Sheets client initialized for spreadsheet " + cfg.SpreadsheetID)
	return client, nil
}

// Schemas returns the expected layout of the three sheets, validated at
// startup and periodically by the schema cron job.
func Schemas(cfg *Config) []sheetstore.Schema {
	return []sheetstore.Schema{
		{
			Table:     cfg.UsersSheet,
			Header:    []string{"Name", "Slack ID"},
			KeyColumn: "B",
		},
		{
			Table:     cfg.EventsSheet,
			Header:    []string{"Name", "Abbreviation", "Day", "Start Time"},
			KeyColumn: "B",
		},
		{
			Table:     cfg.SemesterSheet,
			Header:    []string{"Slack ID", "Name", "Check In Time", "Event", "Slug"},
			KeyColumn: "E",
		},
	}
}
