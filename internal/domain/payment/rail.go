package payment

import (
	"encoding/hex"
	"strings"
)

type Rail string

const (
	RailCard         Rail = "card"
	RailFastChain    Rail = "fast-chain"
	RailUTXOChain    Rail = "utxo-chain"
	RailAccountChain Rail = "account-chain"
)

var railAliases = map[string]Rail{
	"card":          RailCard,
	"stripe":        RailCard,
	"fast-chain":    RailFastChain,
	"solana":        RailFastChain,
	"sol":           RailFastChain,
	"utxo-chain":    RailUTXOChain,
	"bitcoin":       RailUTXOChain,
	"btc":           RailUTXOChain,
	"account-chain": RailAccountChain,
	"ethereum":      RailAccountChain,
	"eth":           RailAccountChain,
}

func Rails() []Rail {
	return []Rail{RailCard, RailFastChain, RailUTXOChain, RailAccountChain}
}

func (r Rail) String() string {
	return string(r)
}

func (r Rail) IsValid() bool {
	switch r {
	case RailCard, RailFastChain, RailUTXOChain, RailAccountChain:
		return true
	default:
		return false
	}
}

// ParseRail accepts the canonical rail names and the chain/processor names clients tend to send.
func ParseRail(s string) (Rail, error) {
	rail, ok := railAliases[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return "", ErrInvalidRail
	}
	return rail, nil
}

func (r Rail) Asset() Asset {
	switch r {
	case RailCard:
		return AssetUSD
	case RailFastChain:
		return AssetSOL
	case RailUTXOChain:
		return AssetBTC
	case RailAccountChain:
		return AssetETH
	default:
		return ""
	}
}

func (r Rail) SupportsRefund() bool {
	return r == RailCard
}

func (r Rail) IsChain() bool {
	return r == RailFastChain || r == RailUTXOChain || r == RailAccountChain
}

// NormalizeReference trims the reference and brings it into the rail's canonical form.
// The stored form is what the (rail, external_ref) uniqueness constraint sees, so two
// spellings of the same transaction must normalize to the same string.
func NormalizeReference(rail Rail, ref string) (string, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" || len(ref) > MaxReferenceLength {
		return "", ErrInvalidReference
	}

	switch rail {
	case RailCard:
		if !strings.HasPrefix(ref, "pi_") {
			return "", ErrInvalidReference
		}
		return ref, nil
	case RailFastChain:
		// Signatures are case-sensitive base58; decoding is left to the verifier, which
		// reports an undecodable signature as not found on chain.
		if strings.ContainsAny(ref, " \t\n") {
			return "", ErrInvalidReference
		}
		return ref, nil
	case RailUTXOChain:
		ref = strings.ToLower(ref)
		if !isHex(ref, 64) {
			return "", ErrInvalidReference
		}
		return ref, nil
	case RailAccountChain:
		ref = strings.ToLower(ref)
		if !strings.HasPrefix(ref, "0x") {
			ref = "0x" + ref
		}
		if !isHex(ref[2:], 64) {
			return "", ErrInvalidReference
		}
		return ref, nil
	default:
		return "", ErrInvalidRail
	}
}

func isHex(s string, length int) bool {
	if len(s) != length {
		return false
	}
	_, err := hex.DecodeString(s)
	return err == nil
}
