package ledger_test

import (
	"context"
	"testing"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/address"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	"github.com/stretchr/testify/require"

	"github.com/fairswap-labs/fairswap/x/fairswap/ledger"
	"github.com/fairswap-labs/fairswap/x/fairswap/simulation"
	"github.com/fairswap-labs/fairswap/x/fairswap/types"
)

// mockBankKeeper keeps balances in memory, keyed by address then denom.
type mockBankKeeper struct {
	balances map[string]map[string]sdkmath.Int
}

func newMockBankKeeper() *mockBankKeeper {
	return &mockBankKeeper{balances: make(map[string]map[string]sdkmath.Int)}
}

func moduleAddr(name string) sdk.AccAddress {
	return sdk.AccAddress(address.Module(name))
}

func (m *mockBankKeeper) get(addr sdk.AccAddress, denom string) sdkmath.Int {
	if amt, ok := m.balances[addr.String()][denom]; ok {
		return amt
	}
	return sdkmath.ZeroInt()
}

func (m *mockBankKeeper) set(addr sdk.AccAddress, denom string, amt sdkmath.Int) {
	if m.balances[addr.String()] == nil {
		m.balances[addr.String()] = make(map[string]sdkmath.Int)
	}
	m.balances[addr.String()][denom] = amt
}

func (m *mockBankKeeper) GetBalance(_ context.Context, addr sdk.AccAddress, denom string) sdk.Coin {
	return sdk.NewCoin(denom, m.get(addr, denom))
}

func (m *mockBankKeeper) SendCoins(_ context.Context, from, to sdk.AccAddress, amt sdk.Coins) error {
	for _, c := range amt {
		if m.get(from, c.Denom).LT(c.Amount) {
			return sdkerrors.ErrInsufficientFunds.Wrapf("%s < %s", m.get(from, c.Denom), c)
		}
	}
	for _, c := range amt {
		m.set(from, c.Denom, m.get(from, c.Denom).Sub(c.Amount))
		m.set(to, c.Denom, m.get(to, c.Denom).Add(c.Amount))
	}
	return nil
}

func (m *mockBankKeeper) MintCoins(_ context.Context, moduleName string, amt sdk.Coins) error {
	for _, c := range amt {
		addr := moduleAddr(moduleName)
		m.set(addr, c.Denom, m.get(addr, c.Denom).Add(c.Amount))
	}
	return nil
}

func (m *mockBankKeeper) BurnCoins(ctx context.Context, moduleName string, amt sdk.Coins) error {
	addr := moduleAddr(moduleName)
	for _, c := range amt {
		if m.get(addr, c.Denom).LT(c.Amount) {
			return sdkerrors.ErrInsufficientFunds
		}
		m.set(addr, c.Denom, m.get(addr, c.Denom).Sub(c.Amount))
	}
	return nil
}

func (m *mockBankKeeper) SendCoinsFromModuleToAccount(ctx context.Context, moduleName string, to sdk.AccAddress, amt sdk.Coins) error {
	return m.SendCoins(ctx, moduleAddr(moduleName), to, amt)
}

func (m *mockBankKeeper) SendCoinsFromAccountToModule(ctx context.Context, from sdk.AccAddress, moduleName string, amt sdk.Coins) error {
	return m.SendCoins(ctx, from, moduleAddr(moduleName), amt)
}

func TestBankLedger(t *testing.T) {
	bank := newMockBankKeeper()
	l := ledger.NewBankLedger(bank, types.ModuleName)
	ctx := context.Background()

	alice := simulation.AccountAddress("alice")
	bob := simulation.AccountAddress("bob")
	lpDenom := types.NewPoolID("uatom", "uosmo", 0).LPDenom()

	require.NoError(t, l.Mint(ctx, lpDenom, alice, 100))
	require.Equal(t, uint64(100), l.Balance(ctx, lpDenom, alice))
	require.Zero(t, l.Balance(ctx, lpDenom, moduleAddr(types.ModuleName)))

	require.NoError(t, l.Transfer(ctx, lpDenom, alice, bob, 30))
	require.Equal(t, uint64(70), l.Balance(ctx, lpDenom, alice))
	require.Equal(t, uint64(30), l.Balance(ctx, lpDenom, bob))

	err := l.Transfer(ctx, lpDenom, alice, bob, 71)
	require.ErrorIs(t, err, types.ErrInsufficientBalance)

	require.ErrorIs(t, l.Burn(ctx, lpDenom, bob, 31), types.ErrInsufficientBalance)
	require.NoError(t, l.Burn(ctx, lpDenom, bob, 30))
	require.Zero(t, l.Balance(ctx, lpDenom, bob))

	// Zero amounts never reach the bank.
	require.NoError(t, l.Transfer(ctx, "uatom", alice, bob, 0))
	require.NoError(t, l.Mint(ctx, "uatom", alice, 0))
	require.NoError(t, l.Burn(ctx, "uatom", alice, 0))
}

func TestBankLedgerBalanceBeyond64Bits(t *testing.T) {
	bank := newMockBankKeeper()
	alice := simulation.AccountAddress("alice")
	huge, ok := sdkmath.NewIntFromString("100000000000000000000000")
	require.True(t, ok)
	bank.set(alice, "uatom", huge)

	l := ledger.NewBankLedger(bank, types.ModuleName)
	require.Equal(t, ^uint64(0), l.Balance(context.Background(), "uatom", alice))
}
