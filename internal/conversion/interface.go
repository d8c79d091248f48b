package conversion

import "context"

// UseCase is the currency conversion domain interface.
type UseCase interface {
	Convert(ctx context.Context, input ConvertInput) (ConvertOutput, error)
}
