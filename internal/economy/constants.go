package economy

// Provider keys
const (
	ProviderMemory = "memory"
	NoProviderName = "none"
)

// DefaultCurrencyName is appended to formatted amounts by the memory provider
const DefaultCurrencyName = "coins"

// Error messages
const (
	ErrMsgProviderNotFoundFmt = "economy provider %q"
	ErrMsgNegativeAmountFmt   = "amount %.2f"
	ErrMsgBalanceFmt          = "need %.2f, have %.2f"
)

// Log messages
const (
	LogMsgProviderRegistered = "Economy provider registered"
	LogMsgProviderActivated  = "Economy provider activated"
	LogMsgProviderFallback   = "Preferred economy provider unavailable, using fallback"
	LogMsgNoProvider         = "No economy provider available, cost checks are skipped"
	LogMsgWithdraw           = "Economy withdraw"
	LogMsgDeposit            = "Economy deposit"
)
