package server

import (
	"errors"
	"net/http"

	"github.com/jonathan/trustguard/internal/aggregate"
	"github.com/jonathan/trustguard/internal/dispatch"
	"github.com/jonathan/trustguard/internal/upstream"
)

// HTTPStatus returns the appropriate HTTP status code for a pipeline error.
func HTTPStatus(err error) int {
	var (
		validationErr *dispatch.ValidationError
		upstreamErr   *upstream.UpstreamError
		networkErr    *upstream.NetworkError
		malformedErr  *upstream.MalformedResponseError
	)

	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest
	case errors.Is(err, aggregate.ErrSuperseded):
		return http.StatusConflict
	case errors.As(err, &networkErr):
		return http.StatusGatewayTimeout
	case errors.As(err, &upstreamErr), errors.As(err, &malformedErr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// userMessage returns the single user-visible message for a pipeline error.
// Internals (stack traces, wrapped causes) never leak to the client.
func userMessage(err error) string {
	var (
		validationErr *dispatch.ValidationError
		upstreamErr   *upstream.UpstreamError
		networkErr    *upstream.NetworkError
		malformedErr  *upstream.MalformedResponseError
	)

	switch {
	case errors.As(err, &validationErr):
		return validationErr.Message
	case errors.Is(err, aggregate.ErrSuperseded):
		return "Superseded by a newer submission."
	case errors.As(err, &networkErr):
		return "Could not reach the analysis service."
	case errors.As(err, &upstreamErr):
		return upstreamErr.Message()
	case errors.As(err, &malformedErr):
		return "The analysis service returned an unusable response."
	default:
		return "Something went wrong. Please try again."
	}
}
