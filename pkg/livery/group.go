package livery

import (
	"github.com/arthur-debert/skinmanager/pkg/jsondoc"
	"github.com/arthur-debert/skinmanager/pkg/logging"
	"github.com/arthur-debert/skinmanager/pkg/types"
	"github.com/tidwall/gjson"
)

// ForeignKeyField is the descriptor field naming the livery folder
const ForeignKeyField = "customSkinName"

// ForeignKey returns the livery folder a descriptor points at.
// ok is false when the document cannot be parsed or the field is absent,
// not a string, or not usable as a folder name.
func ForeignKey(descriptor []byte) (string, bool) {
	text, _, err := jsondoc.Decode(descriptor)
	if err != nil || !gjson.ValidBytes(text) {
		return "", false
	}
	res := gjson.GetBytes(text, ForeignKeyField)
	if res.Type != gjson.String || !types.SafeName(res.Str) {
		return "", false
	}
	return res.Str, true
}

// Group builds liveries from raw entries. Every entry ends up in exactly
// one livery; the input slice is not modified.
func Group(entries []types.RawEntry) []types.Livery {
	logger := logging.GetLogger("livery.group")
	var liveries []types.Livery

	for i := range entries {
		entry := entries[i]

		if entry.Placement.IsDescriptor() {
			key, ok := ForeignKey(entry.Data)
			if !ok {
				logger.Debug().Str("descriptor", entry.Name).Msg("Descriptor names no livery folder, keeping it standalone")
				liveries = append(liveries, types.Livery{Descriptor: &entry})
				continue
			}
			if slot := openDescriptorSlot(liveries, key); slot >= 0 {
				liveries[slot].Descriptor = &entry
				continue
			}
			if folderSlot(liveries, key) >= 0 {
				logger.Warn().Str("descriptor", entry.Name).Str("folder", key).
					Msg("Folder already claimed by another descriptor")
			}
			liveries = append(liveries, types.Livery{Folder: key, Descriptor: &entry})
			continue
		}

		folder := entry.Placement.Folder
		if slot := folderSlot(liveries, folder); slot >= 0 {
			liveries[slot].Assets = append(liveries[slot].Assets, entry)
			continue
		}
		liveries = append(liveries, types.Livery{Folder: folder, Assets: []types.RawEntry{entry}})
	}

	logger.Debug().Int("entries", len(entries)).Int("liveries", len(liveries)).Msg("Grouped entries")
	return liveries
}

// openDescriptorSlot returns the first livery for folder still waiting for a descriptor
func openDescriptorSlot(liveries []types.Livery, folder string) int {
	for i := range liveries {
		if liveries[i].Descriptor == nil && liveries[i].Folder == folder {
			return i
		}
	}
	return -1
}

func folderSlot(liveries []types.Livery, folder string) int {
	for i := range liveries {
		if liveries[i].Folder == folder {
			return i
		}
	}
	return -1
}
