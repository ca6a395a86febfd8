// Package errors is the error vocabulary of the character sheet service.
//
// Reported failures (a level-up that cannot start, a document that cannot be
// parsed) are *Error values with a Code; silent ledger no-ops never produce
// one. Codes map onto gRPC status codes at the handler boundary:
//
//	err := errors.FailedPreconditionf("no level definition for level %d in %s", 4, "Fighter")
//	return nil, errors.ToGRPCError(err)
//
// Wrap keeps the code of the wrapped error and falls back to INTERNAL:
//
//	if err := repo.Save(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to persist character")
//	}
//
// InvalidFile marks import failures so the presentation layer can show the
// single "invalid file" message.
package errors
