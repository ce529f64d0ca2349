// Package export renders transactions into flat interchange formats.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"fintrack/internal/finance/domain"
)

var csvHeader = []string{"id", "date", "amount", "type", "description", "user_id", "category_id"}

// WriteTransactionsCSV writes the transactions as CSV: ISO dates, two-decimal
// amounts, header row first.
func WriteTransactionsCSV(w io.Writer, transactions []domain.Transaction) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for _, transaction := range transactions {
		record := []string{
			fmt.Sprintf("%d", transaction.ID),
			transaction.Date.Format("2006-01-02"),
			fmt.Sprintf("%.2f", transaction.Amount),
			transaction.Type,
			transaction.Description,
			fmt.Sprintf("%d", transaction.UserID),
			fmt.Sprintf("%d", transaction.CategoryID),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("write csv record: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// Filename builds the attachment name for a user's export, e.g.
// transactions_42_20250601_120000.csv.
func Filename(userID int64, now time.Time) string {
	return fmt.Sprintf("transactions_%d_%s.csv", userID, now.Format("20060102_150405"))
}
