package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify_EveryKindAffectsAtLeastOneLedger(t *testing.T) {
	for _, kind := range Kinds {
		effect, err := Classify(kind)
		assert.NoError(t, err, string(kind))

		affected := effect.Affects(LedgerBank) ||
			effect.Affects(LedgerOutstanding) ||
			effect.Affects(LedgerAachiMasala)
		assert.True(t, affected, "%s affects no ledger", kind)
	}
}

func TestClassify_Table(t *testing.T) {
	expected := map[Kind]Effect{
		KindCustomerPurchase:    {Outstanding: +1},
		KindPaymentReceived:     {Bank: +1, Outstanding: -1},
		KindOwnPurchase:         {Bank: -1},
		KindBankCredit:          {Bank: +1},
		KindBankDebit:           {Bank: -1},
		KindAachiMasalaCredit:   {AachiMasala: +1},
		KindAachiMasalaPurchase: {AachiMasala: -1},
	}

	for kind, want := range expected {
		got, err := Classify(kind)
		assert.NoError(t, err)
		assert.Equal(t, want, got, string(kind))
	}
}

func TestClassify_AachiMasalaKindsLeaveBankUntouched(t *testing.T) {
	// The old dashboard code subtracted AACHI_MASALA_CREDIT from the bank
	// balance while the stored flags said otherwise. The table is the only
	// rule set now: aachi-masala kinds touch only the aachi-masala ledger.
	for _, kind := range []Kind{KindAachiMasalaCredit, KindAachiMasalaPurchase} {
		effect, err := Classify(kind)
		assert.NoError(t, err)
		assert.False(t, effect.Affects(LedgerBank), string(kind))
		assert.False(t, effect.Affects(LedgerOutstanding), string(kind))
		assert.True(t, effect.Affects(LedgerAachiMasala), string(kind))
	}
}

func TestClassify_UnknownKind(t *testing.T) {
	_, err := Classify(Kind("REFUND"))
	assert.Error(t, err)
	assert.ErrorAs(t, err, &ErrUnknownKind{})
}

func TestParseKind(t *testing.T) {
	kind, err := ParseKind("BANK_CREDIT")
	assert.NoError(t, err)
	assert.Equal(t, KindBankCredit, kind)

	_, err = ParseKind("bank_credit")
	assert.Error(t, err, "kinds are case sensitive wire strings")

	_, err = ParseKind("")
	assert.Error(t, err)
}

func TestKind_RequiresCustomer(t *testing.T) {
	assert.True(t, KindCustomerPurchase.RequiresCustomer())
	assert.True(t, KindPaymentReceived.RequiresCustomer())
	assert.False(t, KindOwnPurchase.RequiresCustomer())
	assert.False(t, KindBankCredit.RequiresCustomer())
	assert.False(t, KindBankDebit.RequiresCustomer())
	assert.False(t, KindAachiMasalaCredit.RequiresCustomer())
	assert.False(t, KindAachiMasalaPurchase.RequiresCustomer())
}
