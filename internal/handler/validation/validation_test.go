//go:build unit

package validation_test

import (
	"strings"
	"testing"

	"tourpay/internal/handler/validation"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type claimForm struct {
	Rail      string `json:"rail" binding:"required,rail"`
	Reference string `json:"reference" binding:"required,txref"`
}

func TestRegister(t *testing.T) {
	require.NoError(t, validation.Register())
	require.NoError(t, validation.Register(), "second registration is a no-op")

	testCases := []struct {
		name        string
		form        claimForm
		expectField string
		expectMsg   string
	}{
		{name: "valid canonical rail", form: claimForm{Rail: "fast-chain", Reference: "5VERv8NMvzbJMEkV8xnrLkEaWRtSz9CosKDYjCJjBRnb"}},
		{name: "valid alias", form: claimForm{Rail: "Bitcoin", Reference: strings.Repeat("a", 64)}},
		{name: "unknown rail", form: claimForm{Rail: "paypal", Reference: "pi_1"}, expectField: "rail", expectMsg: `unknown rail "paypal"`},
		{name: "reference with whitespace", form: claimForm{Rail: "card", Reference: "pi_1 2"}, expectField: "reference", expectMsg: "is not a valid transaction reference"},
		{name: "reference with non-ascii", form: claimForm{Rail: "card", Reference: "pi_ü"}, expectField: "reference", expectMsg: "is not a valid transaction reference"},
		{name: "reference too long", form: claimForm{Rail: "card", Reference: "pi_" + strings.Repeat("x", 200)}, expectField: "reference", expectMsg: "is not a valid transaction reference"},
		{name: "missing reference", form: claimForm{Rail: "card"}, expectField: "reference", expectMsg: "is required"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := binding.Validator.ValidateStruct(&tc.form)
			if tc.expectField == "" {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			details := validation.Details(err)
			require.Len(t, details, 1)
			assert.Equal(t, tc.expectField, details[0].Field)
			assert.Equal(t, tc.expectMsg, details[0].Message)
		})
	}
}

func TestDetails_NonValidationError(t *testing.T) {
	assert.Nil(t, validation.Details(assert.AnError))
}
