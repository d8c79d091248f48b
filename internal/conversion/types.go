package conversion

// ConvertInput carries one currency conversion request.
type ConvertInput struct {
	Amount float64
	From   string
	To     string
}

// ConvertOutput carries the converted amount plus the rate that produced it.
type ConvertOutput struct {
	Amount    float64
	From      string
	To        string
	Rate      float64
	Converted float64
	CacheHit  bool
}
