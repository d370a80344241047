package types

// SwapResult is the settled (or simulated) outcome of a swap.
type SwapResult struct {
	InputAsset     string     `json:"input_asset"`
	OutputAsset    string     `json:"output_asset"`
	Deposit        uint64     `json:"deposit"`
	Withdraw       uint64     `json:"withdraw"`
	QuotedWithdraw uint64     `json:"quoted_withdraw"`
	QuotedPrice    FixedPrice `json:"quoted_price"`
	EffectivePrice FixedPrice `json:"effective_price"`
	Clamped        bool       `json:"clamped"`
	WindowID       uint64     `json:"window_id"`
}
