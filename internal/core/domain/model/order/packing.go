package order

import (
	"fmt"

	"logistics/internal/core/domain/model/customer"
)

// WarningCode identifies a soft compliance gate of the packing-list validation.
type WarningCode string

const (
	WarningAddressModifiedByEmail  WarningCode = "address_modified_by_email"
	WarningPortalUploadRequired    WarningCode = "portal_upload_required"
	WarningPurchaseOrderRequired   WarningCode = "purchase_order_required"
	WarningInsurancePolicyRequired WarningCode = "insurance_policy_required"
)

// Warning is an operator-confirmable concern raised before locking the
// packing list.
type Warning struct {
	Code    WarningCode
	Message string
}

// PackingValidation is the outcome of a validate-and-lock attempt. Locked is
// false when warnings were raised and not acknowledged.
type PackingValidation struct {
	Locked   bool
	Warnings []Warning
}

func complianceWarnings(addressStatus AddressStatus, specs customer.Specs) []Warning {
	warnings := make([]Warning, 0, 4)
	if addressStatus == AddressModifiedByEmail {
		warnings = append(warnings, Warning{
			Code:    WarningAddressModifiedByEmail,
			Message: "delivery address was changed by email, confirm the shipping guide matches",
		})
	}
	if specs.RequiresPortalUpload {
		msg := "customer requires documents uploaded to its portal"
		if specs.PortalURL != "" {
			msg = fmt.Sprintf("%s %s", msg, specs.PortalURL)
		}
		warnings = append(warnings, Warning{Code: WarningPortalUploadRequired, Message: msg})
	}
	if specs.RequiresPurchaseOrderOnInvoice {
		warnings = append(warnings, Warning{
			Code:    WarningPurchaseOrderRequired,
			Message: "customer requires its purchase order number on the invoice",
		})
	}
	if specs.RequiresInsurancePolicy {
		warnings = append(warnings, Warning{
			Code:    WarningInsurancePolicyRequired,
			Message: "customer requires an insurance policy for the shipment",
		})
	}
	return warnings
}
