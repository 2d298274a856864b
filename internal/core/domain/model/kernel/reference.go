package kernel

import (
	"strings"

	"github.com/google/uuid"
)

// NewReference returns "<prefix>-XXXXXX" built from a random UUID, used for
// records that arrive without their own identifier.
func NewReference(prefix string) string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return prefix + "-" + strings.ToUpper(raw[:6])
}

// NewInvoiceReference returns the fiscal folio attached to an invoiced order.
func NewInvoiceReference() string {
	return uuid.NewString()
}
