package types

const (
	DefaultLimit uint64 = 100
	MaxLimit     uint64 = 500
)

// Page is the skip/limit window applied after filtering.
type Page struct {
	Skip  uint64 `json:"skip"`
	Limit uint64 `json:"limit"`
}

// Normalize applies the default limit and caps it at MaxLimit.
func (p Page) Normalize() Page {
	if p.Limit == 0 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	return p
}
