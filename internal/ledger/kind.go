package ledger

import "fmt"

// Kind is the closed set of transaction kinds. The string values are the
// wire/database representation.
type Kind string

const (
	KindCustomerPurchase    Kind = "CUSTOMER_PURCHASE"
	KindPaymentReceived     Kind = "PAYMENT_RECEIVED"
	KindOwnPurchase         Kind = "OWN_PURCHASE"
	KindBankCredit          Kind = "BANK_CREDIT"
	KindBankDebit           Kind = "BANK_DEBIT"
	KindAachiMasalaCredit   Kind = "AACHI_MASALA_CREDIT"
	KindAachiMasalaPurchase Kind = "AACHI_MASALA_PURCHASE"
)

// Kinds lists every recognized kind, in declaration order.
var Kinds = []Kind{
	KindCustomerPurchase,
	KindPaymentReceived,
	KindOwnPurchase,
	KindBankCredit,
	KindBankDebit,
	KindAachiMasalaCredit,
	KindAachiMasalaPurchase,
}

// ErrUnknownKind is returned when an unrecognized kind reaches the engine.
// Boundary validation should have rejected it; the engine fails rather than
// silently dropping the transaction, since that would corrupt balances.
type ErrUnknownKind struct {
	Kind Kind
}

func (e ErrUnknownKind) Error() string {
	return fmt.Sprintf("ledger: unknown transaction kind %q", string(e.Kind))
}

// ParseKind validates a wire string against the recognized kinds.
func ParseKind(s string) (Kind, error) {
	k := Kind(s)
	if !k.Valid() {
		return "", ErrUnknownKind{Kind: k}
	}
	return k, nil
}

// Valid reports whether k is one of the recognized kinds.
func (k Kind) Valid() bool {
	switch k {
	case KindCustomerPurchase, KindPaymentReceived, KindOwnPurchase,
		KindBankCredit, KindBankDebit,
		KindAachiMasalaCredit, KindAachiMasalaPurchase:
		return true
	}
	return false
}

// RequiresCustomer reports whether transactions of this kind must carry a
// customer reference.
func (k Kind) RequiresCustomer() bool {
	return k == KindCustomerPurchase || k == KindPaymentReceived
}
