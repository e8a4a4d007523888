package types_test

import (
	"testing"

	"github.com/arthur-debert/skinmanager/pkg/types"
	"github.com/stretchr/testify/assert"
)

func TestImportResult_Counts(t *testing.T) {
	result := &types.ImportResult{Liveries: []types.LiveryImport{
		{Key: "a", Status: types.ImportWritten},
		{Key: "b", Status: types.ImportUpToDate},
		{Key: "c", Status: types.ImportWritten},
	}}
	assert.Equal(t, 2, result.Count(types.ImportWritten))
	assert.Equal(t, 0, result.Count(types.ImportSkipped))
	assert.False(t, result.HasFailures())

	result.FailedArchives = []types.ArchiveFailure{{Archive: "bad.zip", Error: "not a zip"}}
	assert.True(t, result.HasFailures())

	result.FailedArchives = nil
	result.Liveries = append(result.Liveries, types.LiveryImport{Key: "d", Status: types.ImportFailed})
	assert.True(t, result.HasFailures())
}
