package errs

import "errors"

// Cross-layer sentinels. Usecases mark with these; handlers and the CLI match with errs.Is.
var (
	// Rail verdicts that surface as errors
	ErrRailTransport  = errors.New("rail transport error")
	ErrAmountMismatch = errors.New("amount mismatch")
	ErrSuspectedReorg = errors.New("rail no longer confirms a completed payment")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
