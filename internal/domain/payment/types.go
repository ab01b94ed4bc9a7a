package payment

import "errors"

const (
	MaxReferenceLength     = 128
	MaxFailureReasonLength = 255
)

var (
	ErrInvalidRail        = errors.New("invalid rail")
	ErrInvalidReference   = errors.New("invalid transaction reference")
	ErrInvalidAsset       = errors.New("invalid asset")
	ErrNegativeAmount     = errors.New("amount cannot be negative")
	ErrAmountPrecision    = errors.New("amount has more decimal places than the asset allows")
	ErrAssetMismatch      = errors.New("money assets differ")
	ErrInvalidStatus      = errors.New("invalid payment status")
	ErrInvalidTransition  = errors.New("invalid payment status transition")
	ErrRefundUnsupported  = errors.New("refund is only supported on the card rail")
	ErrRefundExceedsTotal = errors.New("refund amount exceeds the settled amount")
)

type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
	StatusRefunded   Status = "refunded"
	StatusCancelled  Status = "cancelled"
)

var transitions = map[Status][]Status{
	StatusPending:    {StatusProcessing, StatusFailed, StatusCancelled},
	StatusProcessing: {StatusCompleted, StatusFailed, StatusCancelled},
	StatusCompleted:  {StatusRefunded},
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusCompleted, StatusFailed, StatusRefunded, StatusCancelled:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether the ledger gate may answer from the stored row without
// contacting the rail again.
func (s Status) IsTerminal() bool {
	switch s {
	case StatusCompleted, StatusFailed, StatusRefunded, StatusCancelled:
		return true
	default:
		return false
	}
}

func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}
