package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestCodeGRPCCode(t *testing.T) {
	testCases := map[Code]codes.Code{
		CodeMovieQueryRequired: codes.InvalidArgument,
		CodeMovieIDRequired:    codes.InvalidArgument,
		CodeMovieNotFound:      codes.NotFound,
		CodeUnknown:            codes.Internal,
		Code("SOMETHING_ELSE"): codes.Internal,
	}
	for code, want := range testCases {
		if got := code.GRPCCode(); got != want {
			t.Fatalf("%s.GRPCCode() = %v, want %v", code, got, want)
		}
	}
}

func TestErrorIsAndUnwrap(t *testing.T) {
	cause := stderrors.New("boom")
	err := fmt.Errorf("outer: %w", Wrap(CodeMovieNotFound, "movie not found", cause))

	if !stderrors.Is(err, New(CodeMovieNotFound, "")) {
		t.Fatal("expected code match")
	}
	if stderrors.Is(err, New(CodeMovieIDRequired, "")) {
		t.Fatal("unexpected match on different code")
	}
	if !stderrors.Is(err, cause) {
		t.Fatal("expected cause in chain")
	}
}

func TestToGRPCStatus_RequiredField(t *testing.T) {
	err := New(CodeMovieQueryRequired, "query is required").ToGRPCStatus("sv-SE")

	st := status.Convert(err)
	if st.Code() != codes.InvalidArgument {
		t.Fatalf("code = %v, want %v", st.Code(), codes.InvalidArgument)
	}
	if st.Message() != "query is required" {
		t.Fatalf("message = %q", st.Message())
	}

	var sawInfo, sawBadRequest, sawLocalized bool
	for _, detail := range st.Details() {
		switch d := detail.(type) {
		case *errdetails.ErrorInfo:
			sawInfo = d.GetReason() == string(CodeMovieQueryRequired) && d.GetDomain() == Domain
		case *errdetails.BadRequest:
			violations := d.GetFieldViolations()
			sawBadRequest = len(violations) == 1 && violations[0].GetField() == "query"
		case *errdetails.LocalizedMessage:
			sawLocalized = d.GetLocale() == "sv-SE" && d.GetMessage() == "Ange en text att söka efter."
		}
	}
	if !sawInfo || !sawBadRequest || !sawLocalized {
		t.Fatalf("details info=%v bad_request=%v localized=%v", sawInfo, sawBadRequest, sawLocalized)
	}
}

func TestToGRPCStatus_NotFoundUsesMetadata(t *testing.T) {
	err := WithMetadata(CodeMovieNotFound, "movie not found", map[string]string{"MovieID": "m-1"}).ToGRPCStatus("")

	st := status.Convert(err)
	if st.Code() != codes.NotFound {
		t.Fatalf("code = %v, want %v", st.Code(), codes.NotFound)
	}
	for _, detail := range st.Details() {
		switch d := detail.(type) {
		case *errdetails.BadRequest:
			t.Fatal("not found must not carry field violations")
		case *errdetails.LocalizedMessage:
			if d.GetMessage() != "No movie with id m-1 was found." {
				t.Fatalf("localized = %q", d.GetMessage())
			}
		case *errdetails.ErrorInfo:
			if d.GetMetadata()["MovieID"] != "m-1" {
				t.Fatalf("metadata = %v", d.GetMetadata())
			}
		}
	}
}
