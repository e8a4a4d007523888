package types

// ImportStatus is the outcome of importing one livery
type ImportStatus string

const (
	ImportWritten  ImportStatus = "written"
	ImportRenamed  ImportStatus = "renamed"
	ImportPartial  ImportStatus = "partial"
	ImportUpToDate ImportStatus = "up-to-date"
	ImportSkipped  ImportStatus = "skipped"
	ImportFailed   ImportStatus = "failed"
)

// LiveryImport reports what happened to one livery of an import
type LiveryImport struct {
	Archive    string       `json:"archive" yaml:"archive"`
	Key        string       `json:"key" yaml:"key"`
	Verdict    string       `json:"verdict" yaml:"verdict"`
	Status     ImportStatus `json:"status" yaml:"status"`
	Descriptor string       `json:"descriptor,omitempty" yaml:"descriptor,omitempty"`
	Files      int          `json:"files" yaml:"files"`
	Error      string       `json:"error,omitempty" yaml:"error,omitempty"`
}

// SkippedEntry is an archive member that was not imported
type SkippedEntry struct {
	Archive string `json:"archive" yaml:"archive"`
	Path    string `json:"path" yaml:"path"`
	Reason  string `json:"reason" yaml:"reason"`
}

// ArchiveFailure is an archive that could not be read at all
type ArchiveFailure struct {
	Archive string `json:"archive" yaml:"archive"`
	Error   string `json:"error" yaml:"error"`
}

// ImportResult holds the result of the 'import' command
type ImportResult struct {
	Liveries       []LiveryImport   `json:"liveries" yaml:"liveries"`
	SkippedEntries []SkippedEntry   `json:"skippedEntries,omitempty" yaml:"skipped_entries,omitempty"`
	FailedArchives []ArchiveFailure `json:"failedArchives,omitempty" yaml:"failed_archives,omitempty"`
}

// Count returns how many liveries ended with status
func (r *ImportResult) Count(status ImportStatus) int {
	n := 0
	for _, l := range r.Liveries {
		if l.Status == status {
			n++
		}
	}
	return n
}

// HasFailures reports whether any archive or livery failed
func (r *ImportResult) HasFailures() bool {
	return len(r.FailedArchives) > 0 || r.Count(ImportFailed) > 0
}

// ExportResult holds the result of the 'export' command
type ExportResult struct {
	Output   string   `json:"output" yaml:"output"`
	Liveries []string `json:"liveries" yaml:"liveries"`
	Files    int      `json:"files" yaml:"files"`
	Bytes    int      `json:"bytes" yaml:"bytes"`
}

// LiveryInfo contains summary information about an installed livery
type LiveryInfo struct {
	Key        string `json:"key" yaml:"key"`
	Folder     string `json:"folder,omitempty" yaml:"folder,omitempty"`
	Descriptor string `json:"descriptor,omitempty" yaml:"descriptor,omitempty"`
	Assets     int    `json:"assets" yaml:"assets"`
	Size       int64  `json:"size" yaml:"size"`
}

// ListResult holds the result of the 'list' command
type ListResult struct {
	Root     string       `json:"root" yaml:"root"`
	Liveries []LiveryInfo `json:"liveries" yaml:"liveries"`
}

// ModeCommand names the mode operation a ModeResult comes from
type ModeCommand string

const (
	ModeCommandStatus ModeCommand = "status"
	ModeCommandSwitch ModeCommand = "switch"
	ModeCommandSet    ModeCommand = "set"
)

// ModeResult holds the result of the 'mode' command. Changed means the mode
// switched for ModeCommandSwitch and the stored values changed for ModeCommandSet.
type ModeResult struct {
	Command      ModeCommand `json:"command" yaml:"command"`
	Mode         string      `json:"mode" yaml:"mode"`
	Changed      bool        `json:"changed" yaml:"changed"`
	ModeSettings FieldSet    `json:"modeSettings" yaml:"mode_settings"`
	Backup       *FieldSet   `json:"backup,omitempty" yaml:"backup,omitempty"`
}

// GenConfigResult holds the result of the 'config init' command
type GenConfigResult struct {
	ConfigContent string   `json:"configContent" yaml:"config_content"`
	FilesWritten  []string `json:"filesWritten" yaml:"files_written"`
}
