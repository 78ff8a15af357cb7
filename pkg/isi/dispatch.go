// Copyright 2025 Irohad Authors

package isi

import (
	"github.com/irohad/irohad-core/pkg/domain"
	"github.com/irohad/irohad-core/pkg/telemetry"
	"github.com/irohad/irohad-core/pkg/wsv"
)

// VerbName names instr by its instruction kind, for metrics labels and
// log fields. Unknown implementers (there are none outside this
// package) fall back to "unknown" rather than panicking.
func VerbName(instr Instruction) string {
	switch instr.(type) {
	case AddDomain:
		return "add_domain"
	case RegisterAccount:
		return "register_account"
	case RegisterAssetDefinition:
		return "register_asset_definition"
	case MintAsset:
		return "mint_asset"
	case TransferAsset:
		return "transfer_asset"
	default:
		return "unknown"
	}
}

// Dispatch executes instr as authority against view and records the
// outcome against tel: a counter increment on success, a warning log
// and no increment on failure. tel may be nil, in which case a
// throwaway Telemetry is used so callers never need a nil check of
// their own.
func Dispatch(instr Instruction, authority domain.AccountID, view *wsv.WorldStateView, tel *telemetry.Telemetry) (*wsv.WorldStateView, error) {
	if tel == nil {
		tel = telemetry.New()
	}

	next, err := instr.Execute(authority, view)
	verb := VerbName(instr)
	if err != nil {
		tel.Log.WithError(err).WithField("verb", verb).Warn("isi: instruction execution failed")
		return nil, err
	}

	tel.InstructionsExecuted.WithLabelValues(verb).Inc()
	return next, nil
}
