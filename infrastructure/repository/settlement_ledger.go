package repository

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"talent-stake/domain/entities"
	"talent-stake/domain/errors"
	"talent-stake/domain/interfaces"
)

// settlementLedger keeps token balances and allowances in the ledger database so
// transfers commit or roll back together with the escrow state they fund.
type settlementLedger struct {
	db    *gorm.DB
	nowFn func() time.Time
}

// NewSettlementLedger creates a token ledger over db.
func NewSettlementLedger(db *gorm.DB) interfaces.TokenLedger {
	return &settlementLedger{db: db, nowFn: time.Now}
}

// BalanceOf returns the balance held by owner. Unknown owners hold zero.
func (l *settlementLedger) BalanceOf(ctx context.Context, owner common.Address) (entities.Amount, error) {
	var row tokenAccountRow
	err := l.db.WithContext(ctx).Where("owner = ?", owner.Hex()).Take(&row).Error
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return entities.ZeroAmount(), nil
		}
		return entities.Amount{}, l.wrap("BalanceOf", err)
	}
	return row.Balance, nil
}

// Allowance returns how much spender may pull from owner.
func (l *settlementLedger) Allowance(ctx context.Context, owner, spender common.Address) (entities.Amount, error) {
	var row tokenAllowanceRow
	err := l.db.WithContext(ctx).
		Where("owner = ? AND spender = ?", owner.Hex(), spender.Hex()).
		Take(&row).Error
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return entities.ZeroAmount(), nil
		}
		return entities.Amount{}, l.wrap("Allowance", err)
	}
	return row.Amount, nil
}

// Mint credits amount to owner.
func (l *settlementLedger) Mint(ctx context.Context, owner common.Address, amount entities.Amount) error {
	if amount.IsZero() {
		return errors.NewDomainError(errors.ErrInvalidAmount, "mint amount must be positive")
	}
	return l.credit(ctx, owner, amount)
}

// Approve sets spender's allowance over owner's balance.
func (l *settlementLedger) Approve(ctx context.Context, owner, spender common.Address, amount entities.Amount) error {
	row := &tokenAllowanceRow{
		Owner:     owner.Hex(),
		Spender:   spender.Hex(),
		Amount:    amount,
		UpdatedAt: l.nowFn(),
	}
	err := l.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "owner"}, {Name: "spender"}},
		DoUpdates: clause.AssignmentColumns([]string{"amount", "updated_at"}),
	}).Create(row).Error
	if err != nil {
		return l.wrap("Approve", err)
	}
	return nil
}

// TransferFrom pulls amount from from to to, consuming spender's allowance.
// An owner moving its own funds needs no allowance.
func (l *settlementLedger) TransferFrom(ctx context.Context, spender, from, to common.Address, amount entities.Amount) error {
	if spender != from {
		if err := l.spendAllowance(ctx, from, spender, amount); err != nil {
			return err
		}
	}
	return l.Transfer(ctx, from, to, amount)
}

// Transfer moves amount from from to to.
func (l *settlementLedger) Transfer(ctx context.Context, from, to common.Address, amount entities.Amount) error {
	if amount.IsZero() {
		return nil
	}
	if err := l.debit(ctx, from, amount); err != nil {
		return err
	}
	return l.credit(ctx, to, amount)
}

func (l *settlementLedger) spendAllowance(ctx context.Context, owner, spender common.Address, amount entities.Amount) error {
	var row tokenAllowanceRow
	err := l.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("owner = ? AND spender = ?", owner.Hex(), spender.Hex()).
		Take(&row).Error
	if err != nil && !stderrors.Is(err, gorm.ErrRecordNotFound) {
		return l.wrap("TransferFrom", err)
	}

	remaining, subErr := row.Amount.Sub(amount)
	if subErr != nil {
		return errors.NewDomainError(errors.ErrInsufficientFunds,
			fmt.Sprintf("allowance %s of %s for %s is below %s", row.Amount, owner.Hex(), spender.Hex(), amount))
	}

	err = l.db.WithContext(ctx).
		Model(&tokenAllowanceRow{}).
		Where("owner = ? AND spender = ?", owner.Hex(), spender.Hex()).
		Updates(map[string]interface{}{"amount": remaining, "updated_at": l.nowFn()}).Error
	if err != nil {
		return l.wrap("TransferFrom", err)
	}
	return nil
}

func (l *settlementLedger) debit(ctx context.Context, owner common.Address, amount entities.Amount) error {
	row, exists, err := l.lockAccount(ctx, owner)
	if err != nil {
		return err
	}

	remaining, subErr := row.Balance.Sub(amount)
	if !exists || subErr != nil {
		return errors.NewDomainError(errors.ErrInsufficientFunds,
			fmt.Sprintf("balance %s of %s is below %s", row.Balance, owner.Hex(), amount))
	}
	row.Balance = remaining
	return l.saveAccount(ctx, row, exists)
}

func (l *settlementLedger) credit(ctx context.Context, owner common.Address, amount entities.Amount) error {
	row, exists, err := l.lockAccount(ctx, owner)
	if err != nil {
		return err
	}

	total, addErr := row.Balance.Add(amount)
	if addErr != nil {
		return errors.NewDomainError(errors.ErrInvalidAmount, fmt.Sprintf("balance of %s overflows", owner.Hex()))
	}
	row.Balance = total
	return l.saveAccount(ctx, row, exists)
}

func (l *settlementLedger) lockAccount(ctx context.Context, owner common.Address) (*tokenAccountRow, bool, error) {
	var row tokenAccountRow
	err := l.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("owner = ?", owner.Hex()).
		Take(&row).Error
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return &tokenAccountRow{Owner: owner.Hex()}, false, nil
		}
		return nil, false, l.wrap("LockAccount", err)
	}
	return &row, true, nil
}

func (l *settlementLedger) saveAccount(ctx context.Context, row *tokenAccountRow, exists bool) error {
	row.UpdatedAt = l.nowFn()
	var err error
	if exists {
		err = l.db.WithContext(ctx).
			Model(&tokenAccountRow{}).
			Where("owner = ?", row.Owner).
			Updates(map[string]interface{}{"balance": row.Balance, "updated_at": row.UpdatedAt}).Error
	} else {
		err = l.db.WithContext(ctx).Create(row).Error
	}
	if err != nil {
		return l.wrap("SaveAccount", err)
	}
	return nil
}

func (l *settlementLedger) wrap(operation string, err error) error {
	return &errors.RepositoryError{
		Operation: operation,
		Entity:    "TokenAccount",
		Err:       err,
	}
}
