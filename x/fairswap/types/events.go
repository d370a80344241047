package types

// Event types for the fairswap module
const (
	EventTypeInitialize   = "fairswap_initialize"
	EventTypeDeposit      = "fairswap_deposit"
	EventTypeWithdraw     = "fairswap_withdraw"
	EventTypeSwap         = "fairswap_swap"
	EventTypePriceClamped = "fairswap_price_clamped"
	EventTypeLock         = "fairswap_lock"
	EventTypeUnlock       = "fairswap_unlock"

	AttributeKeyPool           = "pool"
	AttributeKeyCaller         = "caller"
	AttributeKeyAmountX        = "amount_x"
	AttributeKeyAmountY        = "amount_y"
	AttributeKeyLPAmount       = "lp_amount"
	AttributeKeyAssetIn        = "asset_in"
	AttributeKeyAssetOut       = "asset_out"
	AttributeKeyAmountIn       = "amount_in"
	AttributeKeyAmountOut      = "amount_out"
	AttributeKeyQuotedOut      = "quoted_out"
	AttributeKeyQuotedPrice    = "quoted_price"
	AttributeKeyEffectivePrice = "effective_price"
	AttributeKeyWindow         = "window"
	AttributeKeyFee            = "fee_bps"
)
