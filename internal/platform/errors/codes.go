// Package errors provides structured domain errors with localized messages.
package errors

import "google.golang.org/grpc/codes"

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Movie request errors
	CodeMovieQueryRequired Code = "MOVIE_QUERY_REQUIRED"
	CodeMovieIDRequired    Code = "MOVIE_ID_REQUIRED"
	CodeMovieNotFound      Code = "MOVIE_NOT_FOUND"
)

// GRPCCode maps domain codes to gRPC status codes.
func (c Code) GRPCCode() codes.Code {
	switch c {
	case CodeMovieQueryRequired, CodeMovieIDRequired:
		return codes.InvalidArgument
	case CodeMovieNotFound:
		return codes.NotFound
	default:
		return codes.Internal
	}
}

// Field returns the request field a required-field code refers to.
func (c Code) Field() string {
	switch c {
	case CodeMovieQueryRequired:
		return "query"
	case CodeMovieIDRequired:
		return "id"
	default:
		return ""
	}
}
