// Package errors provides the structured error type shared by every layer of
// the sheet service.
//
// Errors carry a Code, a user-facing Message, an optional Cause and metadata:
//
//	err := errors.NotFound("character not found").
//	    WithMeta("character_id", id)
//
// Wrapping keeps the code of the wrapped error:
//
//	if err := repo.Save(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to save character")
//	}
//
// # Taxonomy
//
// Three kinds of failure reach callers:
//   - Validation failures (empty or duplicate skill names, bad ids) use
//     CodeInvalidArgument, usually built with a ValidationBuilder so the
//     offending fields travel in the "validation_errors" metadata.
//   - Transport failures of the spreadsheet endpoint or another storage
//     backend (network errors, bad status codes, malformed bodies, a missing
//     endpoint) use CodeUnavailable and are created with Transport.
//   - Missing documents use CodeNotFound.
//
// Attribute values are never range checked, so there is no numeric range
// error.
//
// # gRPC
//
// Handlers return ToGRPCError(err); clients turn a status back into an
// *Error with FromGRPCError. Metadata crosses the wire as an ErrorInfo detail.
package errors
