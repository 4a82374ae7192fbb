package handlers

import (
	"errors"
	"net/http"

	"github.com/nkiryanov/cardcheck/internal/apperrors"
	"github.com/nkiryanov/cardcheck/internal/card"
	"github.com/nkiryanov/cardcheck/internal/handlers/render"
	"github.com/nkiryanov/cardcheck/internal/logger"
	"github.com/nkiryanov/cardcheck/internal/service/validate"
)

type cardResponse struct {
	Number string    `json:"number"`
	Length int       `json:"length"`
	Type   card.Type `json:"type"`
}

func newCardResponse(res validate.Result) cardResponse {
	return cardResponse{Number: res.Number, Length: res.Length, Type: res.Type}
}

func handleValidate(s validateService, l logger.Logger) http.Handler {
	type request struct {
		Number string `json:"number" validate:"required,max=64"`
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, err := render.BindAndValidate[request](w, r)
		if err != nil {
			return
		}

		res, err := s.Validate(r.Context(), data.Number)
		if err != nil {
			renderCardError(w, err, l)
			return
		}

		render.JSON(w, newCardResponse(res))
	})
}

func handleValidateBatch(s validateService, l logger.Logger) http.Handler {
	type request struct {
		Numbers []string `json:"numbers" validate:"required,min=1,max=100,dive,max=64"`
	}
	type item struct {
		Number  string     `json:"number,omitempty"`
		Length  int        `json:"length,omitempty"`
		Type    *card.Type `json:"type,omitempty"`
		Error   string     `json:"error,omitempty"`
		Message string     `json:"message,omitempty"`
	}
	type response struct {
		Results []item `json:"results"`
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, err := render.BindAndValidate[request](w, r)
		if err != nil {
			return
		}

		batch := s.ValidateBatch(r.Context(), data.Numbers)
		res := response{Results: make([]item, 0, len(batch))}
		for _, b := range batch {
			if b.Err != nil {
				errorType, message, _ := describeCardError(b.Err)
				res.Results = append(res.Results, item{Error: errorType, Message: message})
				continue
			}
			res.Results = append(res.Results, item{
				Number: b.Result.Number,
				Length: b.Result.Length,
				Type:   &b.Result.Type,
			})
		}

		l.Debug("batch validated", "size", len(batch))
		render.JSON(w, res)
	})
}

func handleCheckDigit(s validateService, l logger.Logger) http.Handler {
	type request struct {
		Digits string `json:"digits" validate:"required,max=64,digits"`
	}
	type response struct {
		CheckDigit int `json:"check_digit"`
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, err := render.BindAndValidate[request](w, r)
		if err != nil {
			return
		}

		digit, err := s.CheckDigit(data.Digits)
		if err != nil {
			renderCardError(w, err, l)
			return
		}

		render.JSON(w, response{CheckDigit: digit})
	})
}

func renderCardError(w http.ResponseWriter, err error, l logger.Logger) {
	errorType, message, code := describeCardError(err)
	if code == http.StatusInternalServerError {
		l.Error("Failed to validate card", "error", err)
	}
	render.Error(w, errorType, message, code)
}

// describeCardError maps service errors to response error type, message and status code
func describeCardError(err error) (string, string, int) {
	var vErr *card.ValidationError

	switch {
	case errors.As(err, &vErr) && vErr.Kind == card.KindInvalidLength:
		return vErr.Kind.String(), "Card number has invalid length", http.StatusUnprocessableEntity
	case errors.As(err, &vErr) && vErr.Kind == card.KindBadCheckDigit:
		return vErr.Kind.String(), "Card number has bad check digit", http.StatusUnprocessableEntity
	case errors.Is(err, apperrors.ErrCardNumberInvalid):
		return "invalid_card_number", "Card number is invalid", http.StatusUnprocessableEntity
	case errors.Is(err, apperrors.ErrNoDigits):
		return "no_digits", "Input contains no digits", http.StatusUnprocessableEntity
	default:
		return render.ServiceErrorType, "Internal server error", http.StatusInternalServerError
	}
}
