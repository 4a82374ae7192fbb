package validate

import (
	"context"
	"errors"
	"fmt"

	"github.com/nkiryanov/cardcheck/internal/apperrors"
	"github.com/nkiryanov/cardcheck/internal/card"
	"github.com/nkiryanov/cardcheck/internal/logger"
)

// Result of successful validation. Number is masked.
type Result struct {
	Number string
	Length int
	Type   card.Type
}

type BatchResult struct {
	Result Result
	Err    error
}

type Service struct {
	logger logger.Logger
}

func NewService(l logger.Logger) *Service {
	if l == nil {
		l = logger.NewNoOpLogger()
	}

	return &Service{logger: l}
}

// Validate normalizes and classifies raw card number
// Returned error matches card.ErrInvalidLength or card.ErrBadCheckDigit (and apperrors.ErrCardNumberInvalid)
func (s *Service) Validate(_ context.Context, raw string) (Result, error) {
	n, err := card.New(raw)
	if err != nil {
		s.logger.Info("card number rejected", "reason", reason(err), "digits", len(card.Normalize(raw)))
		return Result{}, fmt.Errorf("construct card number: %w", err)
	}

	typ, err := n.Classify()
	if err != nil {
		s.logger.Info("card number rejected", "reason", reason(err), "number", n.Masked())
		return Result{}, fmt.Errorf("classify card %s: %w", n, err)
	}

	s.logger.Debug("card number accepted", "number", n.Masked(), "type", typ)

	return Result{
		Number: n.Masked(),
		Length: n.Len(),
		Type:   typ,
	}, nil
}

// ValidateBatch validates every number independently, keeping input order.
// When ctx is done, the rest of numbers get ctx.Err() as their error.
func (s *Service) ValidateBatch(ctx context.Context, raws []string) []BatchResult {
	results := make([]BatchResult, len(raws))

	for i, raw := range raws {
		if err := ctx.Err(); err != nil {
			results[i].Err = err
			continue
		}
		results[i].Result, results[i].Err = s.Validate(ctx, raw)
	}

	return results
}

// CheckDigit returns Luhn check digit for the given digits (non-digits ignored)
func (s *Service) CheckDigit(digits string) (int, error) {
	if card.Normalize(digits) == "" {
		return 0, apperrors.ErrNoDigits
	}

	return card.CheckDigit(digits), nil
}

func reason(err error) string {
	var vErr *card.ValidationError
	if errors.As(err, &vErr) {
		return vErr.Kind.String()
	}
	return "unknown"
}
