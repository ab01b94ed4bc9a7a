package payment

type VerifyState string

const (
	VerifyConfirmed VerifyState = "confirmed"
	VerifyPending   VerifyState = "pending"
	VerifyFailed    VerifyState = "failed"
	VerifyNotFound  VerifyState = "not_found"
)

func (s VerifyState) String() string {
	return string(s)
}

// VerifyResult is a rail's answer about one transaction reference. Settled is the amount the
// rail reports as actually transferred to us, zero when the rail cannot tell.
type VerifyResult struct {
	State   VerifyState
	Settled Money
	Detail  string
}

func Confirmed(settled Money, detail string) VerifyResult {
	return VerifyResult{State: VerifyConfirmed, Settled: settled, Detail: detail}
}

func Pending(detail string) VerifyResult {
	return VerifyResult{State: VerifyPending, Detail: detail}
}

func Failed(detail string) VerifyResult {
	return VerifyResult{State: VerifyFailed, Detail: detail}
}

func NotFound(detail string) VerifyResult {
	return VerifyResult{State: VerifyNotFound, Detail: detail}
}
