package ratesrv

const (
	// DefaultBaseURL is the public endpoint serving latest rates per base currency.
	DefaultBaseURL = "https://open.er-api.com/v6"
	// DefaultTimeout is the request timeout in seconds.
	DefaultTimeout = 10
)
