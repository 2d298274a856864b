package commands

import (
	"errors"
	"net/url"
	"strings"

	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var (
	ErrImportInboundCSVCommandIsNotConstructed = errors.New(
		"ImportInboundCSVCommand must be created via NewImportInboundCSVCommand constructor",
	)
	ErrSourceURLIsRequired = errors.New("csv url is required")
)

// ImportInboundCSVCommand pulls the published receiving sheet.
type ImportInboundCSVCommand struct { //nolint:recvcheck //using for validation
	sourceURL string

	guard guard.ConstructorGuard
}

func NewImportInboundCSVCommand(sourceURL string) (ImportInboundCSVCommand, error) {
	sourceURL = strings.TrimSpace(sourceURL)
	if sourceURL == "" {
		return ImportInboundCSVCommand{}, ErrSourceURLIsRequired
	}
	u, err := url.Parse(sourceURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return ImportInboundCSVCommand{}, errs.NewValueIsInvalidErrorWithCause("csv url", err)
	}
	return ImportInboundCSVCommand{sourceURL: sourceURL, guard: guard.NewConstructorGuard()}, nil
}

func (c ImportInboundCSVCommand) Validate() error {
	return c.guard.Validate(ErrImportInboundCSVCommandIsNotConstructed)
}

func (c ImportInboundCSVCommand) SourceURL() string { return c.sourceURL }
