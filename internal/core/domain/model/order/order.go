package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"logistics/internal/core/domain/model/customer"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through NewSaleOrder, NewPurchaseOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewSaleOrder, NewPurchaseOrder or RestoreOrder")

	// ErrPackingListNotValidated is the hard gate on invoicing.
	ErrPackingListNotValidated = errors.New("packing list must be validated before invoicing")

	// ErrPackingListLocked is returned when bundles are changed after validation.
	ErrPackingListLocked = errors.New("packing list is locked")

	// ErrNoBundles is returned when validation is attempted on an order without bundles.
	ErrNoBundles = errors.New("order has no bundles")
)

// Destination is the resolved delivery point of a sale order.
type Destination struct {
	ID      string
	Address string
}

// AddressChange is one entry of the address mutation log.
type AddressChange struct {
	At         time.Time
	EmailID    string
	OldAddress string
	NewAddress string
}

// Order is the aggregate root of a sale or purchase. It owns its bundles and
// drives the fulfilment lifecycle.
//
// Order follows these invariants:
//   - packingListValidated only moves from false to true
//   - invoicing requires packingListValidated
//   - bundle numbers are 1..n without gaps
type Order struct {
	id                   string
	kind                 Kind
	partyID              string
	items                kernel.Items
	issuedAt             time.Time
	status               Status
	total                decimal.Decimal
	destination          Destination
	addressStatus        AddressStatus
	freightPayer         FreightPayer
	preferredCarrierID   string
	packingListValidated bool
	bundles              []Bundle
	invoiceRef           string
	routeID              string
	addressHistory       []AddressChange

	isConstructed bool
}

// NewSaleOrder creates a pending sale order with the address status set to
// original and no bundles.
func NewSaleOrder(
	id string,
	customerID string,
	destination Destination,
	items kernel.Items,
	total decimal.Decimal,
	freightPayer FreightPayer,
	preferredCarrierID string,
	issuedAt time.Time,
) (*Order, error) {
	o := &Order{
		kind:               Sale,
		status:             Pending,
		addressStatus:      AddressOriginal,
		preferredCarrierID: strings.TrimSpace(preferredCarrierID),
		issuedAt:           issuedAt.UTC(),
		bundles:            []Bundle{},
		isConstructed:      true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setParty(customerID),
		o.setItems(items),
		o.setTotal(total),
		o.setDestination(destination),
		o.setFreightPayer(freightPayer),
	); err != nil {
		return nil, err
	}
	return o, nil
}

// NewPurchaseOrder creates a pending purchase order from a supplier.
func NewPurchaseOrder(id, supplierID string, items kernel.Items, total decimal.Decimal, issuedAt time.Time) (*Order, error) {
	o := &Order{
		kind:          Purchase,
		status:        Pending,
		addressStatus: AddressOriginal,
		freightPayer:  FreightSupplier,
		issuedAt:      issuedAt.UTC(),
		bundles:       []Bundle{},
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setParty(supplierID),
		o.setItems(items),
		o.setTotal(total),
	); err != nil {
		return nil, err
	}
	return o, nil
}

// State is the full persisted form of an order, used by repositories.
type State struct {
	ID                   string
	Kind                 Kind
	PartyID              string
	Items                kernel.Items
	IssuedAt             time.Time
	Status               Status
	Total                decimal.Decimal
	Destination          Destination
	AddressStatus        AddressStatus
	FreightPayer         FreightPayer
	PreferredCarrierID   string
	PackingListValidated bool
	Bundles              []Bundle
	InvoiceRef           string
	RouteID              string
	AddressHistory       []AddressChange
}

// RestoreOrder rebuilds an order from storage, checking the invariants that
// must hold for any persisted state.
func RestoreOrder(s State) (*Order, error) {
	o := &Order{
		items:                s.Items.Clone(),
		issuedAt:             s.IssuedAt.UTC(),
		preferredCarrierID:   s.PreferredCarrierID,
		packingListValidated: s.PackingListValidated,
		invoiceRef:           s.InvoiceRef,
		routeID:              s.RouteID,
		destination:          s.Destination,
		isConstructed:        true,
	}

	if err := errors.Join(
		o.setID(s.ID),
		o.setParty(s.PartyID),
		o.setTotal(s.Total),
		s.Kind.Validate(),
		s.Status.Validate(),
		s.AddressStatus.Validate(),
		s.FreightPayer.Validate(),
		o.setBundles(s.ID, s.Bundles),
	); err != nil {
		return nil, err
	}

	if s.Status == Invoiced || s.Status == Shipped || s.Status == Completed {
		if !s.PackingListValidated {
			return nil, errs.NewValueIsInvalidErrorWithCause(
				"status is invalid",
				fmt.Errorf("%s requires a validated packing list", s.Status),
			)
		}
	}

	o.kind = s.Kind
	o.status = s.Status
	o.addressStatus = s.AddressStatus
	o.freightPayer = s.FreightPayer
	o.addressHistory = append([]AddressChange{}, s.AddressHistory...)
	return o, nil
}

func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

func (o *Order) ID() string { return o.id }
func (o *Order) Kind() Kind { return o.kind }
func (o *Order) PartyID() string { return o.partyID }
func (o *Order) Items() kernel.Items { return o.items.Clone() }
func (o *Order) IssuedAt() time.Time { return o.issuedAt }
func (o *Order) Status() Status { return o.status }
func (o *Order) Total() decimal.Decimal { return o.total }
func (o *Order) Destination() Destination { return o.destination }
func (o *Order) AddressStatus() AddressStatus { return o.addressStatus }
func (o *Order) FreightPayer() FreightPayer { return o.freightPayer }
func (o *Order) PreferredCarrierID() string { return o.preferredCarrierID }
func (o *Order) IsPackingListValidated() bool { return o.packingListValidated }
func (o *Order) InvoiceRef() string { return o.invoiceRef }
func (o *Order) RouteID() string { return o.routeID }

func (o *Order) Bundles() []Bundle {
	out := make([]Bundle, len(o.bundles))
	copy(out, o.bundles)
	return out
}

func (o *Order) AddressHistory() []AddressChange {
	out := make([]AddressChange, len(o.addressHistory))
	copy(out, o.addressHistory)
	return out
}

// State exports the order for persistence.
func (o *Order) State() State {
	return State{
		ID:                   o.id,
		Kind:                 o.kind,
		PartyID:              o.partyID,
		Items:                o.items.Clone(),
		IssuedAt:             o.issuedAt,
		Status:               o.status,
		Total:                o.total,
		Destination:          o.destination,
		AddressStatus:        o.addressStatus,
		FreightPayer:         o.freightPayer,
		PreferredCarrierID:   o.preferredCarrierID,
		PackingListValidated: o.packingListValidated,
		Bundles:              o.Bundles(),
		InvoiceRef:           o.invoiceRef,
		RouteID:              o.routeID,
		AddressHistory:       o.AddressHistory(),
	}
}

// Release hands a pending order to the warehouse floor.
func (o *Order) Release() error {
	next, err := o.status.Release()
	if err != nil {
		return err
	}
	o.status = next
	return nil
}

// StartPicking marks a released order as being picked.
func (o *Order) StartPicking() error {
	next, err := o.status.StartPicking()
	if err != nil {
		return err
	}
	o.status = next
	return nil
}

// AddBundle appends a bundle numbered count+1 and moves the order to Packed.
// Quantities are not checked against the order lines.
func (o *Order) AddBundle(weight float64, items kernel.Items) (Bundle, error) {
	if o.packingListValidated {
		return Bundle{}, errs.NewConflictError(ErrPackingListLocked)
	}
	if len(items) == 0 {
		return Bundle{}, errs.NewValueIsRequiredError("bundle items")
	}

	next, err := o.status.Pack()
	if err != nil {
		return Bundle{}, err
	}

	bundle, err := RestoreBundle(o.id, len(o.bundles)+1, weight, items)
	if err != nil {
		return Bundle{}, err
	}

	o.bundles = append(o.bundles, bundle)
	o.status = next
	return bundle, nil
}

// PackingWarnings lists the soft compliance gates without changing the order.
func (o *Order) PackingWarnings(specs customer.Specs) []Warning {
	return complianceWarnings(o.addressStatus, specs)
}

// LockPackingList validates the bundle breakdown and sets the one-way lock.
// Compliance concerns come back as warnings; when there are any and the
// operator has not acknowledged them the order is left untouched.
func (o *Order) LockPackingList(specs customer.Specs, acknowledged bool) (PackingValidation, error) {
	if o.packingListValidated {
		return PackingValidation{Locked: true, Warnings: []Warning{}}, nil
	}
	if o.status.IsTerminal() {
		return PackingValidation{}, o.status.invalidTransition(o.status)
	}
	if len(o.bundles) == 0 {
		return PackingValidation{}, errs.NewConflictError(ErrNoBundles)
	}

	warnings := complianceWarnings(o.addressStatus, specs)
	if len(warnings) > 0 && !acknowledged {
		return PackingValidation{Locked: false, Warnings: warnings}, nil
	}

	o.packingListValidated = true
	return PackingValidation{Locked: true, Warnings: warnings}, nil
}

// Invoice stamps the invoice reference. It is rejected outright while the
// packing list is not validated.
func (o *Order) Invoice(reference string) error {
	if !o.packingListValidated {
		return errs.NewConflictError(ErrPackingListNotValidated)
	}
	if strings.TrimSpace(reference) == "" {
		return errs.NewValueIsRequiredError("invoice reference")
	}

	next, err := o.status.Invoice()
	if err != nil {
		return err
	}
	o.status = next
	o.invoiceRef = reference
	return nil
}

// ApplyAddressChange overwrites the delivery address with one requested by
// email. Applying the same address twice changes nothing and reports false.
func (o *Order) ApplyAddressChange(newAddress, emailID string, at time.Time) (bool, error) {
	newAddress = strings.TrimSpace(newAddress)
	if newAddress == "" {
		return false, errs.NewValueIsRequiredError("new address")
	}
	if o.addressStatus == AddressModifiedByEmail && o.destination.Address == newAddress {
		return false, nil
	}

	o.addressHistory = append(o.addressHistory, AddressChange{
		At:         at.UTC(),
		EmailID:    emailID,
		OldAddress: o.destination.Address,
		NewAddress: newAddress,
	})
	o.destination.Address = newAddress
	o.addressStatus = AddressModifiedByEmail
	return true, nil
}

// OverrideAddress records an address typed in by an operator.
func (o *Order) OverrideAddress(newAddress string) error {
	newAddress = strings.TrimSpace(newAddress)
	if newAddress == "" {
		return errs.NewValueIsRequiredError("new address")
	}
	o.destination.Address = newAddress
	o.addressStatus = AddressManualOverride
	return nil
}

// AssignRoute puts an invoiced order on a delivery route.
func (o *Order) AssignRoute(routeID string) error {
	if strings.TrimSpace(routeID) == "" {
		return errs.NewValueIsRequiredError("route id")
	}
	next, err := o.status.Ship()
	if err != nil {
		return err
	}
	o.status = next
	o.routeID = routeID
	return nil
}

// Complete closes a shipped order.
func (o *Order) Complete() error {
	next, err := o.status.Complete()
	if err != nil {
		return err
	}
	o.status = next
	return nil
}

// Cancel drops an order that has not been locked for packing yet.
func (o *Order) Cancel() error {
	if o.packingListValidated {
		return errs.NewConflictError(ErrPackingListLocked)
	}
	next, err := o.status.Cancel()
	if err != nil {
		return err
	}
	o.status = next
	return nil
}

func (o *Order) setID(id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return errs.NewValueIsRequiredError("order id")
	}
	o.id = id
	return nil
}

func (o *Order) setParty(partyID string) error {
	partyID = strings.TrimSpace(partyID)
	if partyID == "" {
		return errs.NewValueIsRequiredError("party id")
	}
	o.partyID = partyID
	return nil
}

func (o *Order) setItems(items kernel.Items) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("order items")
	}
	for _, item := range items {
		if item.Quantity() <= 0 {
			return errs.NewValueIsInvalidErrorWithCause(
				"quantity is invalid",
				fmt.Errorf("%d is not greater than 0", item.Quantity()),
			)
		}
	}
	o.items = items.Clone()
	return nil
}

func (o *Order) setTotal(total decimal.Decimal) error {
	if total.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("total is invalid", fmt.Errorf("%s is negative", total))
	}
	o.total = total
	return nil
}

func (o *Order) setDestination(destination Destination) error {
	if strings.TrimSpace(destination.ID) == "" {
		return errs.NewValueIsRequiredError("destination")
	}
	o.destination = Destination{ID: destination.ID, Address: strings.TrimSpace(destination.Address)}
	return nil
}

func (o *Order) setFreightPayer(payer FreightPayer) error {
	if err := payer.Validate(); err != nil {
		return err
	}
	o.freightPayer = payer
	return nil
}

func (o *Order) setBundles(orderID string, bundles []Bundle) error {
	o.bundles = make([]Bundle, 0, len(bundles))
	for idx, b := range bundles {
		if b.number != idx+1 {
			return errs.NewValueIsInvalidErrorWithCause(
				"bundle sequence is invalid",
				fmt.Errorf("bundle %d found at position %d", b.number, idx+1),
			)
		}
		if b.orderID != orderID {
			return errs.NewValueIsInvalidErrorWithCause(
				"bundle is invalid",
				fmt.Errorf("bundle %s belongs to %s", b.id, b.orderID),
			)
		}
		o.bundles = append(o.bundles, b)
	}
	return nil
}
