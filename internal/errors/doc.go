// Package errors provides structured error handling for the character
// assistant.
//
// Errors carry a machine-readable code, a user-presentable message, and
// optional metadata so the command layer can render actionable feedback
// (for example the signed point difference of a failed dice distribution)
// without parsing message strings.
//
// Creating errors:
//
//	err := errors.NotFound("race not found")
//	err := errors.InvalidArgumentf("invalid dice expression: %s", expr)
//
// Adding metadata:
//
//	err := errors.InvalidArgument("point mismatch").
//	    WithMeta("point_difference", diff)
//
// Wrapping errors:
//
//	if err := repo.Get(ctx, ownerID); err != nil {
//	    return errors.Wrap(err, "failed to load creation session")
//	}
//
// Checking errors:
//
//	if errors.IsNotFound(err) {
//	    // report and continue
//	}
//
// Layer guidelines: repositories return NotFound/AlreadyExists with the
// relevant IDs in metadata; orchestrators return InvalidArgument for bad
// input and FailedPrecondition when a step is attempted out of order; the
// command layer extracts messages with GetMessage and never sees a panic.
package errors
