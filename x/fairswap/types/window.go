package types

// PriceWindow is the ratchet state a pool persists between swaps.
// A ceiling is unset until a trade in its direction (or the window reset
// seeding) happens in the current window; once set it only rises.
type PriceWindow struct {
	WindowID       uint64  `json:"window_id"`
	BuyingXCeiling Ceiling `json:"buying_x_ceiling"`
	BuyingYCeiling Ceiling `json:"buying_y_ceiling"`
}

// NewPriceWindow returns an empty window at window 0.
func NewPriceWindow() PriceWindow {
	return PriceWindow{}
}

// Ceiling returns the ceiling for the given buy direction.
func (w PriceWindow) Ceiling(buyingX bool) Ceiling {
	if buyingX {
		return w.BuyingXCeiling
	}
	return w.BuyingYCeiling
}

// SetCeiling replaces the ceiling for the given buy direction.
func (w *PriceWindow) SetCeiling(buyingX bool, c Ceiling) {
	if buyingX {
		w.BuyingXCeiling = c
		return
	}
	w.BuyingYCeiling = c
}

// Validate checks that the two ceilings are either both set or both unset.
// Every ratchet update leaves the window that way.
func (w PriceWindow) Validate() error {
	if w.BuyingXCeiling.IsSet() != w.BuyingYCeiling.IsSet() {
		return ErrInvalidState.Wrapf("window %d has one ceiling set: buying x %s, buying y %s",
			w.WindowID, w.BuyingXCeiling, w.BuyingYCeiling)
	}
	return nil
}
