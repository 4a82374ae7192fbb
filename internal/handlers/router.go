package handlers

import (
	"context"
	"net/http"

	"github.com/nkiryanov/cardcheck/internal/handlers/middleware"
	"github.com/nkiryanov/cardcheck/internal/logger"
	"github.com/nkiryanov/cardcheck/internal/service/validate"
)

const DefaultMaxBodyBytes = 4096

// chain applies middlewares in the given order: m1(m2(...(h)))
func chain(h http.Handler, mds ...func(next http.Handler) http.Handler) http.Handler {
	for i := len(mds) - 1; i >= 0; i-- {
		h = mds[i](h)
	}
	return h
}

// limitBody rejects request bodies larger than n bytes
func limitBody(n int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, n)
			next.ServeHTTP(w, r)
		})
	}
}

func NewRouter(validateService validateService, logger logger.Logger, maxBodyBytes int64) http.Handler {
	if maxBodyBytes <= 0 {
		maxBodyBytes = DefaultMaxBodyBytes
	}

	apicards := http.NewServeMux()

	apicards.Handle("POST /validate", handleValidate(validateService, logger))
	apicards.Handle("POST /validate/batch", handleValidateBatch(validateService, logger))
	apicards.Handle("POST /check-digit", handleCheckDigit(validateService, logger))

	root := http.NewServeMux()
	root.Handle("/api/cards/", http.StripPrefix("/api/cards", apicards))

	handler := chain(root,
		middleware.RequestIDMiddleware,
		middleware.LoggerMiddleware(logger),
		limitBody(maxBodyBytes),
	)

	return handler
}

type validateService interface {
	// Validate card number
	// Has to return error matching card.ErrInvalidLength or card.ErrBadCheckDigit if number rejected
	Validate(ctx context.Context, raw string) (validate.Result, error)

	// Validate every number independently, result order matches input order
	ValidateBatch(ctx context.Context, raws []string) []validate.BatchResult

	// Luhn check digit for digits
	// Has to return apperrors.ErrNoDigits if there are no digits at all
	CheckDigit(digits string) (int, error)
}
