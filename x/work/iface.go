package work

import (
	"encoding/binary"

	"golang.org/x/crypto/sha3"
)

// ERC721InterfaceID is the identifier of the non fungible token capability.
const ERC721InterfaceID uint32 = 0x80ac58cd

// workEntryPoints are the names composing the work capability identifier.
var workEntryPoints = []string{
	"createRecord",
	"getWorkContributorByAddress",
	"findWorkContributorByAddress",
	"setWorkContributor",
	"setBatchWorkContributors",
	"getRecordContributorByAddress",
	"findRecordContributorByAddress",
	"getWorkPayeesContract",
	"setWorkPayeesContract",
	"getRecordPayeesContract",
}

// WorkInterfaceID is the identifier of the work capability. It is the xor
// of the selectors of all work entry points.
var WorkInterfaceID = interfaceID(workEntryPoints...)

// Selector returns the first four bytes of the keccak256 hash of the name.
func Selector(name string) uint32 {
	h := sha3.NewLegacyKeccak256()
	h.Write([]byte(name))
	return binary.BigEndian.Uint32(h.Sum(nil)[:4])
}

func interfaceID(names ...string) uint32 {
	var id uint32
	for _, n := range names {
		id ^= Selector(n)
	}
	return id
}

// SupportsInterface returns true for the work and the ERC721 capability.
func SupportsInterface(id uint32) bool {
	return id == WorkInterfaceID || id == ERC721InterfaceID
}
