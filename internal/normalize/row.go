// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package normalize

import "github.com/pdiddy/funnel-normalize/pkg/types"

// Normalizer turns header-normalized export rows into Applications using
// an alias table.
type Normalizer struct {
	aliases AliasTable
}

// NewNormalizer returns a Normalizer over aliases. A nil table selects
// DefaultAliases.
func NewNormalizer(aliases AliasTable) *Normalizer {
	if aliases == nil {
		aliases = DefaultAliases()
	}
	return &Normalizer{aliases: aliases}
}

// Aliases returns the table the normalizer resolves against.
func (n *Normalizer) Aliases() AliasTable {
	return n.aliases
}

// Row normalizes one raw export row keyed by its original headers.
func (n *Normalizer) Row(raw map[string]string, source string) types.Application {
	return n.Normalized(Header(raw), source)
}

// Normalized builds an Application from a row already passed through
// Header or HeaderPairs.
func (n *Normalizer) Normalized(row map[string]string, source string) types.Application {
	status := n.aliases.Resolve(row, types.FieldStatus)
	if status == "" {
		status = types.DefaultStatus
	}
	return types.Application{
		Company:     n.aliases.Resolve(row, types.FieldCompany),
		Role:        n.aliases.Resolve(row, types.FieldRole),
		Location:    n.aliases.Resolve(row, types.FieldLocation),
		AppliedDate: Date(n.aliases.Resolve(row, types.FieldAppliedDate)),
		Status:      status,
		JobURL:      n.aliases.Resolve(row, types.FieldJobURL),
		Source:      source,
	}
}
