package services

import (
	"encoding/csv"
	"errors"
	"io"
	"strconv"
	"strings"

	"logistics/internal/core/domain/model/inbound"
	"logistics/internal/core/domain/model/kernel"
)

const inboundCSVColumns = 5

// InboundCSVParser reads the published receiving sheet. Each line is
// lot id, supplier id, arrival date, product id, quantity. Lines of one lot
// are grouped into a single customs lot, keeping first-seen order.
type InboundCSVParser struct{}

func NewInboundCSVParser() InboundCSVParser {
	return InboundCSVParser{}
}

// InboundParseResult lists the parsed lots and the number of lines ignored.
type InboundParseResult struct {
	Lots    []*inbound.Lot
	Skipped int
}

// Parse skips the header, short lines, lines with a blank lot or product id
// and lines that are not valid CSV. Non-numeric quantities become 0 and
// fractional ones are truncated to whole units.
func (InboundCSVParser) Parse(r io.Reader) (InboundParseResult, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	var result InboundParseResult
	var seen []string
	grouped := make(map[string]*lotDraft)
	header := true

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) {
			result.Skipped++
			continue
		}
		if err != nil {
			return InboundParseResult{}, err
		}
		if header {
			header = false
			continue
		}

		if len(record) < inboundCSVColumns {
			result.Skipped++
			continue
		}
		id := strings.TrimSpace(record[0])
		if id == "" {
			result.Skipped++
			continue
		}

		qty, err := strconv.ParseFloat(strings.TrimSpace(record[4]), 64)
		if err != nil || qty < 0 {
			qty = 0
		}
		item, err := kernel.NewLineItem(record[3], int(qty))
		if err != nil {
			result.Skipped++
			continue
		}

		draft, ok := grouped[id]
		if !ok {
			draft = &lotDraft{
				supplierID:  strings.TrimSpace(record[1]),
				arrivalDate: strings.TrimSpace(record[2]),
			}
			grouped[id] = draft
			seen = append(seen, id)
		}
		draft.items = append(draft.items, item)
	}

	for _, id := range seen {
		draft := grouped[id]
		lot, err := inbound.NewLot(id, draft.supplierID, draft.arrivalDate, draft.items)
		if err != nil {
			result.Skipped += len(draft.items)
			continue
		}
		result.Lots = append(result.Lots, lot)
	}
	return result, nil
}

type lotDraft struct {
	supplierID  string
	arrivalDate string
	items       kernel.Items
}
