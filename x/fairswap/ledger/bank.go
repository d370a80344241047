package ledger

import (
	"context"
	"errors"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/fairswap-labs/fairswap/x/fairswap/types"
)

// BankLedger adapts a Cosmos bank keeper to the Ledger contract. Minting and
// burning move coins through the module account named moduleName, which needs
// the Minter and Burner permissions.
type BankLedger struct {
	bank       types.BankKeeper
	moduleName string
}

var _ types.Ledger = BankLedger{}

// NewBankLedger returns a bank-backed ledger.
func NewBankLedger(bank types.BankKeeper, moduleName string) BankLedger {
	return BankLedger{bank: bank, moduleName: moduleName}
}

func coins(asset string, amount uint64) sdk.Coins {
	return sdk.NewCoins(sdk.NewCoin(asset, sdkmath.NewIntFromUint64(amount)))
}

// Balance implements types.Ledger. Balances beyond 64 bits report the maximum.
func (l BankLedger) Balance(ctx context.Context, asset string, owner sdk.AccAddress) uint64 {
	amt := l.bank.GetBalance(ctx, owner, asset).Amount
	if amt.IsNil() || !amt.IsPositive() {
		return 0
	}
	if !amt.IsUint64() {
		return ^uint64(0)
	}
	return amt.Uint64()
}

// Transfer implements types.Ledger.
func (l BankLedger) Transfer(ctx context.Context, asset string, from, to sdk.AccAddress, amount uint64) error {
	if amount == 0 {
		return nil
	}
	return mapBankErr(l.bank.SendCoins(ctx, from, to, coins(asset, amount)))
}

// Mint implements types.Ledger.
func (l BankLedger) Mint(ctx context.Context, asset string, to sdk.AccAddress, amount uint64) error {
	if amount == 0 {
		return nil
	}
	amt := coins(asset, amount)
	if err := l.bank.MintCoins(ctx, l.moduleName, amt); err != nil {
		return mapBankErr(err)
	}
	return mapBankErr(l.bank.SendCoinsFromModuleToAccount(ctx, l.moduleName, to, amt))
}

// Burn implements types.Ledger.
func (l BankLedger) Burn(ctx context.Context, asset string, from sdk.AccAddress, amount uint64) error {
	if amount == 0 {
		return nil
	}
	amt := coins(asset, amount)
	if err := l.bank.SendCoinsFromAccountToModule(ctx, from, l.moduleName, amt); err != nil {
		return mapBankErr(err)
	}
	return mapBankErr(l.bank.BurnCoins(ctx, l.moduleName, amt))
}

func mapBankErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sdkerrors.ErrInsufficientFunds) {
		return types.ErrInsufficientBalance.Wrap(err.Error())
	}
	return err
}
