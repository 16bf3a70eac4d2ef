package services

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"talent-stake/domain/dto"
	"talent-stake/domain/entities"
	"talent-stake/domain/errors"
	"talent-stake/domain/interfaces"
)

// fundingService implements the FundingService interface.
type fundingService struct {
	txm          interfaces.TransactionManager
	escrowHolder common.Address
	logger       interfaces.Logger
}

// NewFundingService creates a funding service for the ledger-backed token.
func NewFundingService(txm interfaces.TransactionManager, escrowHolder common.Address, logger interfaces.Logger) interfaces.FundingService {
	return &fundingService{
		txm:          txm,
		escrowHolder: escrowHolder,
		logger:       logger,
	}
}

// Fund credits amount to owner.
func (s *fundingService) Fund(ctx context.Context, owner common.Address, amount entities.Amount) error {
	if err := s.checkOwner(owner); err != nil {
		return err
	}
	err := s.txm.WithinTransaction(ctx, func(uow interfaces.UnitOfWork) error {
		return uow.Settlement().Mint(ctx, owner, amount)
	})
	if err != nil {
		return err
	}
	s.logger.Info("Account funded", "owner", owner.Hex(), "amount", amount.String())
	return nil
}

// ApproveEscrow sets the escrow holder's allowance over owner's balance.
func (s *fundingService) ApproveEscrow(ctx context.Context, owner common.Address, amount entities.Amount) error {
	if err := s.checkOwner(owner); err != nil {
		return err
	}
	err := s.txm.WithinTransaction(ctx, func(uow interfaces.UnitOfWork) error {
		return uow.Settlement().Approve(ctx, owner, s.escrowHolder, amount)
	})
	if err != nil {
		return err
	}
	s.logger.Info("Escrow allowance set", "owner", owner.Hex(), "amount", amount.String())
	return nil
}

// Balance returns owner's balance and escrow allowance.
func (s *fundingService) Balance(ctx context.Context, owner common.Address) (*dto.AccountBalance, error) {
	result := &dto.AccountBalance{Owner: owner}
	err := s.txm.WithinTransaction(ctx, func(uow interfaces.UnitOfWork) error {
		var err error
		result.Balance, err = uow.Settlement().BalanceOf(ctx, owner)
		if err != nil {
			return err
		}
		result.EscrowAllowance, err = uow.Settlement().Allowance(ctx, owner, s.escrowHolder)
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *fundingService) checkOwner(owner common.Address) error {
	verr := &errors.ValidationError{}
	checkPrincipal(verr, "owner", owner, s.escrowHolder)
	if verr.HasErrors() {
		return verr
	}
	return nil
}
