package ledger

// Ledger identifies one of the three independent ledgers a transaction can
// affect.
type Ledger int8

const (
	LedgerBank Ledger = iota
	LedgerOutstanding
	LedgerAachiMasala
)

func (l Ledger) String() string {
	switch l {
	case LedgerBank:
		return "bank"
	case LedgerOutstanding:
		return "outstanding"
	case LedgerAachiMasala:
		return "aachi-masala"
	}
	return "unknown"
}

// Effect describes which ledgers a kind affects and with what sign.
// A sign of 0 means the ledger is untouched.
type Effect struct {
	Bank        int8
	Outstanding int8
	AachiMasala int8
}

// Sign returns the signed unit effect on the given ledger: +1, -1, or 0.
func (e Effect) Sign(l Ledger) int8 {
	switch l {
	case LedgerBank:
		return e.Bank
	case LedgerOutstanding:
		return e.Outstanding
	case LedgerAachiMasala:
		return e.AachiMasala
	}
	return 0
}

// Affects reports whether the given ledger is touched at all.
func (e Effect) Affects(l Ledger) bool {
	return e.Sign(l) != 0
}

// classification is the single authoritative rule set. It is deliberately
// the only place in the codebase that maps kinds to ledger effects; the
// database stores no derived membership flags.
var classification = map[Kind]Effect{
	KindCustomerPurchase:    {Outstanding: +1},
	KindPaymentReceived:     {Bank: +1, Outstanding: -1},
	KindOwnPurchase:         {Bank: -1},
	KindBankCredit:          {Bank: +1},
	KindBankDebit:           {Bank: -1},
	KindAachiMasalaCredit:   {AachiMasala: +1},
	KindAachiMasalaPurchase: {AachiMasala: -1},
}

// Classify returns the ledger effects of a transaction kind. Unrecognized
// kinds are an integration error and are reported, never skipped.
func Classify(k Kind) (Effect, error) {
	effect, ok := classification[k]
	if !ok {
		return Effect{}, ErrUnknownKind{Kind: k}
	}
	return effect, nil
}
