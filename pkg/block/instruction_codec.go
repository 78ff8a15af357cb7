// Copyright 2025 Irohad Authors
//
// Wire encoding for the closed ISI sum. Each variant is tagged by a
// single byte so identifiers stay stable across versions, per the
// "closed-sum instruction dispatch" design note: a tagged union with one
// variant per (verb, source-kind, dest-kind) triple rather than open
// polymorphism.

package block

import (
	"fmt"

	"github.com/irohad/irohad-core/pkg/domain"
	"github.com/irohad/irohad-core/pkg/isi"
)

const (
	tagAddDomain               byte = 1
	tagRegisterAccount         byte = 2
	tagRegisterAssetDefinition byte = 3
	tagMintAsset               byte = 4
	tagTransferAsset           byte = 5
)

func writeDomainID(w *writer, id domain.DomainID) {
	w.str(string(id))
}

func readDomainID(r *reader) (domain.DomainID, error) {
	s, err := r.str()
	if err != nil {
		return "", err
	}
	return domain.DomainID(s), nil
}

func writeAccountID(w *writer, id domain.AccountID) {
	w.str(id.Name)
	writeDomainID(w, id.Domain)
}

func readAccountID(r *reader) (domain.AccountID, error) {
	name, err := r.str()
	if err != nil {
		return domain.AccountID{}, err
	}
	dom, err := readDomainID(r)
	if err != nil {
		return domain.AccountID{}, err
	}
	return domain.AccountID{Name: name, Domain: dom}, nil
}

func writeAssetDefinitionID(w *writer, id domain.AssetDefinitionID) {
	w.str(id.Name)
	writeDomainID(w, id.Domain)
}

func readAssetDefinitionID(r *reader) (domain.AssetDefinitionID, error) {
	name, err := r.str()
	if err != nil {
		return domain.AssetDefinitionID{}, err
	}
	dom, err := readDomainID(r)
	if err != nil {
		return domain.AssetDefinitionID{}, err
	}
	return domain.AssetDefinitionID{Name: name, Domain: dom}, nil
}

func writeAssetID(w *writer, id domain.AssetID) {
	writeAssetDefinitionID(w, id.Definition)
	writeAccountID(w, id.Account)
}

func readAssetID(r *reader) (domain.AssetID, error) {
	def, err := readAssetDefinitionID(r)
	if err != nil {
		return domain.AssetID{}, err
	}
	acc, err := readAccountID(r)
	if err != nil {
		return domain.AssetID{}, err
	}
	return domain.AssetID{Definition: def, Account: acc}, nil
}

func encodeInstruction(w *writer, instr isi.Instruction) error {
	switch v := instr.(type) {
	case isi.AddDomain:
		w.byte(tagAddDomain)
		writeDomainID(w, v.Object.Name)
	case isi.RegisterAccount:
		w.byte(tagRegisterAccount)
		writeDomainID(w, v.DestinationDomain)
		writeAccountID(w, v.Object.ID)
	case isi.RegisterAssetDefinition:
		w.byte(tagRegisterAssetDefinition)
		writeDomainID(w, v.DestinationDomain)
		writeAssetDefinitionID(w, v.Object.ID)
	case isi.MintAsset:
		w.byte(tagMintAsset)
		writeAssetID(w, v.AssetID)
		w.u32(v.Quantity)
	case isi.TransferAsset:
		w.byte(tagTransferAsset)
		writeAccountID(w, v.Source)
		writeAssetDefinitionID(w, v.Definition)
		w.u32(v.Quantity)
		writeAccountID(w, v.Destination)
	default:
		return fmt.Errorf("block: codec: unrecognized instruction type %T", instr)
	}
	return nil
}

func decodeInstruction(r *reader) (isi.Instruction, error) {
	tag, err := r.readByte()
	if err != nil {
		return nil, err
	}
	switch tag {
	case tagAddDomain:
		name, err := readDomainID(r)
		if err != nil {
			return nil, err
		}
		return isi.AddDomain{Object: *domain.NewDomain(name)}, nil
	case tagRegisterAccount:
		dest, err := readDomainID(r)
		if err != nil {
			return nil, err
		}
		accID, err := readAccountID(r)
		if err != nil {
			return nil, err
		}
		return isi.RegisterAccount{DestinationDomain: dest, Object: *domain.NewAccount(accID)}, nil
	case tagRegisterAssetDefinition:
		dest, err := readDomainID(r)
		if err != nil {
			return nil, err
		}
		defID, err := readAssetDefinitionID(r)
		if err != nil {
			return nil, err
		}
		return isi.RegisterAssetDefinition{DestinationDomain: dest, Object: *domain.NewAssetDefinition(defID)}, nil
	case tagMintAsset:
		assetID, err := readAssetID(r)
		if err != nil {
			return nil, err
		}
		qty, err := r.u32()
		if err != nil {
			return nil, err
		}
		return isi.MintAsset{AssetID: assetID, Quantity: qty}, nil
	case tagTransferAsset:
		source, err := readAccountID(r)
		if err != nil {
			return nil, err
		}
		def, err := readAssetDefinitionID(r)
		if err != nil {
			return nil, err
		}
		qty, err := r.u32()
		if err != nil {
			return nil, err
		}
		dest, err := readAccountID(r)
		if err != nil {
			return nil, err
		}
		return isi.TransferAsset{Source: source, Definition: def, Quantity: qty, Destination: dest}, nil
	default:
		return nil, fmt.Errorf("block: codec: unrecognized instruction tag 0x%02x", tag)
	}
}
