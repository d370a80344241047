package simulation

import (
	"github.com/fairswap-labs/fairswap/x/fairswap/types"
)

// NormalPool is a plain constant product pool on the same curve, without the
// price ratchet.
type NormalPool struct {
	ReserveX uint64
	ReserveY uint64
	LPSupply uint64
	FeeBps   uint16
}

// Swap trades amountIn of X (inputX) or Y and returns the amount paid out.
func (p *NormalPool) Swap(inputX bool, amountIn, minAmountOut uint64) (uint64, error) {
	reserveIn, reserveOut := p.ReserveY, p.ReserveX
	if inputX {
		reserveIn, reserveOut = p.ReserveX, p.ReserveY
	}
	q, err := types.QuoteSwap(reserveIn, reserveOut, p.LPSupply, p.FeeBps, amountIn, minAmountOut)
	if err != nil {
		return 0, err
	}
	newIn, err := types.AddUint64(reserveIn, q.Deposit)
	if err != nil {
		return 0, err
	}
	newOut, err := types.SubUint64(reserveOut, q.Withdraw)
	if err != nil {
		return 0, err
	}
	if inputX {
		p.ReserveX, p.ReserveY = newIn, newOut
	} else {
		p.ReserveY, p.ReserveX = newIn, newOut
	}
	return q.Withdraw, nil
}
