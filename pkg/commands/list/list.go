package list

import (
	"github.com/arthur-debert/skinmanager/pkg/installtree"
	"github.com/arthur-debert/skinmanager/pkg/logging"
	"github.com/arthur-debert/skinmanager/pkg/paths"
	"github.com/arthur-debert/skinmanager/pkg/types"
)

// ListLiveriesOptions defines the options for the ListLiveries command.
type ListLiveriesOptions struct {
	FileSystem types.FS
	Paths      paths.Paths
}

// ListLiveries reports every livery in the install tree.
func ListLiveries(opts ListLiveriesOptions) (*types.ListResult, error) {
	log := logging.GetLogger("core.commands")
	log.Debug().Str("command", "ListLiveries").Msg("Executing command")

	liveries, err := installtree.NewReader(opts.FileSystem, opts.Paths).Liveries()
	if err != nil {
		return nil, err
	}

	result := &types.ListResult{
		Root:     opts.Paths.Root(),
		Liveries: make([]types.LiveryInfo, len(liveries)),
	}

	for i, l := range liveries {
		info := types.LiveryInfo{
			Key:    l.Key(),
			Folder: l.Folder,
			Assets: len(l.Assets),
		}
		if l.Descriptor != nil {
			info.Descriptor = l.Descriptor.Name
		}
		for _, e := range l.Entries() {
			info.Size += int64(len(e.Data))
		}
		result.Liveries[i] = info
	}

	log.Info().Str("command", "ListLiveries").Int("liveryCount", len(result.Liveries)).Msg("Command finished")
	return result, nil
}
