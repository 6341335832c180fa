package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type ContractStats struct {
	Total          int64
	ByStatus       map[ContractStatus]int64
	ActiveToday    int64
	ExpiringSoon   int64
	ExpiringWithin int
	CollectedTotal decimal.Decimal
}

// ContractDocument is everything the PDF renderer needs for one contract.
type ContractDocument struct {
	Contract    Contract
	Balance     Balance
	GeneratedAt time.Time
}

// ContractSheet is the tabular export of a list of contracts.
type ContractSheet struct {
	GeneratedAt time.Time
	Rows        []ContractSheetRow
}

type ContractSheetRow struct {
	Contract Contract
	Balance  Balance
}
