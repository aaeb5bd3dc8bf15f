package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/AlenaMolokova/masterdata/internal/constants"
	"github.com/AlenaMolokova/masterdata/internal/models"
)

type AccountingClient interface {
	ListAccounts(ctx context.Context) (json.RawMessage, error)
	ListEntries(ctx context.Context) (json.RawMessage, error)
	CreateEntry(ctx context.Context, entry models.AccountingEntry) (json.RawMessage, error)
}

type AccountingUseCase struct {
	client AccountingClient
	now    func() time.Time
}

// NewAccountingUseCase accepts a nil client; every call then fails with ErrAccountingDisabled.
func NewAccountingUseCase(client AccountingClient) *AccountingUseCase {
	return &AccountingUseCase{client: client, now: time.Now}
}

func (uc *AccountingUseCase) ListAccounts(ctx context.Context) (json.RawMessage, error) {
	if uc.client == nil {
		return nil, ErrAccountingDisabled
	}
	return uc.client.ListAccounts(ctx)
}

func (uc *AccountingUseCase) ListEntries(ctx context.Context) (json.RawMessage, error) {
	if uc.client == nil {
		return nil, ErrAccountingDisabled
	}
	return uc.client.ListEntries(ctx)
}

func (uc *AccountingUseCase) CreateEntry(ctx context.Context, entry models.AccountingEntry) (json.RawMessage, error) {
	if uc.client == nil {
		return nil, ErrAccountingDisabled
	}

	description, err := requireText("description", entry.Description, 200)
	if err != nil {
		return nil, err
	}
	entry.Description = description
	entry.MovementType = strings.ToUpper(strings.TrimSpace(entry.MovementType))
	if entry.MovementType != constants.MovementDebit && entry.MovementType != constants.MovementCredit {
		return nil, invalidInput("movement type must be DB or CR")
	}
	if entry.AccountID <= 0 {
		return nil, invalidInput("account id is required")
	}
	if !entry.Amount.IsPositive() {
		return nil, invalidInput("amount must be positive")
	}
	if entry.Date.IsZero() {
		entry.Date = uc.now().UTC().Truncate(24 * time.Hour)
	}

	created, err := uc.client.CreateEntry(ctx, entry)
	if err != nil {
		return nil, fmt.Errorf("failed to create accounting entry: %w", err)
	}
	return created, nil
}
