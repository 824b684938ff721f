package domain

import "sync"

// ErrorCategory names a slot of the form's error surface.
type ErrorCategory string

const (
	CategoryTowns     ErrorCategory = "towns"
	CategoryKeywords  ErrorCategory = "keywords"
	CategoryBalance   ErrorCategory = "balance"
	CategoryBidAmount ErrorCategory = "bidAmount"
	CategoryNetwork   ErrorCategory = "network"
)

// ErrorCategories lists every category in display order.
var ErrorCategories = []ErrorCategory{
	CategoryTowns,
	CategoryKeywords,
	CategoryBalance,
	CategoryBidAmount,
	CategoryNetwork,
}

// User-facing messages.
const (
	MsgRequiredFields      = "Please fill all required fields"
	MsgBidExceedsFund      = "Bid amount cannot be greater than campaign fund"
	MsgInsufficientBalance = "Insufficient account balance. Cannot go below 0."
	MsgInvalidBid          = "Bid amount must be at least 0.01"
	MsgInvalidFund         = "Campaign fund must be a non-negative amount"
	MsgInvalidRadius       = "Radius must be a positive whole number"
	MsgTownsLoad           = "Failed to load towns"
	MsgKeywordsLoad        = "Failed to load keyword suggestions"
	MsgConnectivity        = "Cannot connect to server. Please check your connection."
)

// ValidationErrors maps each category to an optional message. A present
// entry must describe a condition that is currently true: whoever
// re-evaluates a condition either sets or clears its slot. It is safe for
// concurrent use because keyword lookups and town loads resolve on their own
// goroutines.
type ValidationErrors struct {
	mu sync.RWMutex
	m  map[ErrorCategory]string
}

func NewValidationErrors() *ValidationErrors {
	return &ValidationErrors{m: make(map[ErrorCategory]string)}
}

func (v *ValidationErrors) Set(c ErrorCategory, msg string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.m[c] = msg
}

// Clear removes the given categories, or every category when none is given.
func (v *ValidationErrors) Clear(cs ...ErrorCategory) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if len(cs) == 0 {
		clear(v.m)
		return
	}
	for _, c := range cs {
		delete(v.m, c)
	}
}

func (v *ValidationErrors) Get(c ErrorCategory) (string, bool) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	msg, ok := v.m[c]
	return msg, ok
}

func (v *ValidationErrors) Has(c ErrorCategory) bool {
	_, ok := v.Get(c)
	return ok
}

// Snapshot returns every category with nil for the empty ones, which is the
// shape the presentation layer renders.
func (v *ValidationErrors) Snapshot() map[ErrorCategory]*string {
	v.mu.RLock()
	defer v.mu.RUnlock()
	out := make(map[ErrorCategory]*string, len(ErrorCategories))
	for _, c := range ErrorCategories {
		if msg, ok := v.m[c]; ok {
			out[c] = &msg
		} else {
			out[c] = nil
		}
	}
	return out
}
