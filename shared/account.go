package shared

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

// AccountIDSize is the size of a billing account identifier in bytes.
const AccountIDSize = 32

var ErrMalformedAccount = errors.New("malformed account identifier")

// AccountID identifies a prepaid billing account on the verification
// network. It is immutable once chosen for a submission.
type AccountID [AccountIDSize]byte

// ParseAccountID decodes a hex encoded account identifier. An optional
// "0x" prefix is stripped and inputs shorter than 64 hex characters are
// left-padded with zeroes. Inputs longer than 64 hex characters or
// containing non-hex characters fail with ErrMalformedAccount.
func ParseAccountID(s string) (AccountID, error) {
	var id AccountID
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if len(s) > AccountIDSize*2 {
		return id, fmt.Errorf("%w: %d hex characters exceed the maximum of %d", ErrMalformedAccount, len(s), AccountIDSize*2)
	}
	if len(s)%2 == 1 {
		s = "0" + s
	}
	decoded, err := hex.DecodeString(s)
	if err != nil {
		return id, fmt.Errorf("%w: %v", ErrMalformedAccount, err)
	}
	copy(id[AccountIDSize-len(decoded):], decoded)
	return id, nil
}

func (id AccountID) Bytes() []byte {
	return id[:]
}

// String returns the canonical 0x-prefixed hex form.
func (id AccountID) String() string {
	return "0x" + hex.EncodeToString(id[:])
}
