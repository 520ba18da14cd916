package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/tidebooks/tidebooks/constants"
)

// LedgerItem is one categorized line on a ledger entry. Price keeps the
// currency-formatted string as captured ("$12.34"); the category is assigned
// once at creation time and never re-derived.
type LedgerItem struct {
	Name     string             `json:"name"`
	Price    string             `json:"price"`
	Category constants.Category `json:"category"`
}

// LedgerEntry is a single recorded transaction derived from one processed
// document (or one manual entry). Entries are append-only: corrections create
// new entries, they never rewrite existing rows.
type LedgerEntry struct {
	ID          uuid.UUID    `json:"id"`
	CompanyID   uuid.UUID    `json:"company_id"`
	CompanyName string       `json:"company_name"`
	Date        string       `json:"date"`
	StoreName   string       `json:"store_name"`
	Total       float64      `json:"total"`
	Items       []LedgerItem `json:"items"`
	NeedsReview bool         `json:"needs_review"`
	CreatedAt   time.Time    `json:"created_at"`
}
