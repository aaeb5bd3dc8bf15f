package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountingEntry is a single journal line sent to the accounting API.
type AccountingEntry struct {
	Description  string          `json:"descripcion"`
	AuxiliaryID  int64           `json:"auxiliar_id"`
	AccountID    int64           `json:"cuenta_id"`
	MovementType string          `json:"tipo_movimiento"`
	Amount       decimal.Decimal `json:"monto"`
	Date         time.Time       `json:"fecha"`
}
