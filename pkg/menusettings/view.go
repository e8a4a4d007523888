// Package menusettings is a typed view over the fields of the game's
// menuSettings.json that livery mode manages.
//
// Setters mutate the in-memory document and return the value they replaced,
// even when the new value equals the old one. Nothing reaches the disk until
// Commit, which writes once and only when some field actually changed.
package menusettings

import (
	"github.com/arthur-debert/skinmanager/pkg/jsondoc"
	"github.com/arthur-debert/skinmanager/pkg/logging"
	"github.com/arthur-debert/skinmanager/pkg/types"
)

// Field paths inside menuSettings.json
const (
	FieldDDS         = "texDDS"
	FieldFullscreen  = "graphicOptions.useFullscreen"
	FieldResolutionX = "graphicOptions.resolution.x"
	FieldResolutionY = "graphicOptions.resolution.y"
	FieldMasterVol   = "audio.main"
	FieldMusicVol    = "audio.music"
)

// View gives typed access to the managed fields of one menu settings file
type View struct {
	fs   types.FS
	path string
	doc  *jsondoc.Document
}

// Open loads the menu settings file at path
func Open(filesystem types.FS, path string) (*View, error) {
	doc, err := jsondoc.Load(filesystem, path)
	if err != nil {
		return nil, err
	}
	return &View{fs: filesystem, path: path, doc: doc}, nil
}

// Path returns the file the view was opened from
func (v *View) Path() string {
	return v.path
}

// Pending reports whether the view holds uncommitted changes
func (v *View) Pending() bool {
	return v.doc.Dirty()
}

// DDSGeneration reports whether the game generates DDS textures. Stored as 0/1.
func (v *View) DDSGeneration() (bool, error) {
	n, err := v.doc.Int(FieldDDS)
	if err != nil {
		return false, err
	}
	return n != 0, nil
}

// SetDDSGeneration sets texDDS and returns the previous value
func (v *View) SetDDSGeneration(on bool) (bool, error) {
	old, err := v.DDSGeneration()
	if err != nil {
		return false, err
	}
	var n int64
	if on {
		n = 1
	}
	return old, v.doc.SetInt(FieldDDS, n)
}

func (v *View) Fullscreen() (bool, error) {
	return v.doc.Bool(FieldFullscreen)
}

// SetFullscreen sets useFullscreen and returns the previous value
func (v *View) SetFullscreen(on bool) (bool, error) {
	old, err := v.Fullscreen()
	if err != nil {
		return false, err
	}
	return old, v.doc.SetBool(FieldFullscreen, on)
}

// Resolution reads both resolution components
func (v *View) Resolution() (types.Resolution, error) {
	x, err := v.doc.Uint32(FieldResolutionX)
	if err != nil {
		return types.Resolution{}, err
	}
	y, err := v.doc.Uint32(FieldResolutionY)
	if err != nil {
		return types.Resolution{}, err
	}
	return types.Resolution{X: x, Y: y}, nil
}

// SetResolution sets both resolution components and returns the previous resolution.
// Both components are validated before either is written.
func (v *View) SetResolution(r types.Resolution) (types.Resolution, error) {
	old, err := v.Resolution()
	if err != nil {
		return types.Resolution{}, err
	}
	if err := v.doc.SetInt(FieldResolutionX, int64(r.X)); err != nil {
		return old, err
	}
	return old, v.doc.SetInt(FieldResolutionY, int64(r.Y))
}

func (v *View) MasterVolume() (float64, error) {
	return v.doc.Float(FieldMasterVol)
}

// SetMasterVolume sets audio.main and returns the previous value
func (v *View) SetMasterVolume(vol float64) (float64, error) {
	old, err := v.MasterVolume()
	if err != nil {
		return 0, err
	}
	return old, v.doc.SetFloat(FieldMasterVol, vol)
}

func (v *View) MusicVolume() (float64, error) {
	return v.doc.Float(FieldMusicVol)
}

// SetMusicVolume sets audio.music and returns the previous value
func (v *View) SetMusicVolume(vol float64) (float64, error) {
	old, err := v.MusicVolume()
	if err != nil {
		return 0, err
	}
	return old, v.doc.SetFloat(FieldMusicVol, vol)
}

// VolumeText returns the volume literals that are not in shortest form
func (v *View) VolumeText() (types.VolumeText, error) {
	master, err := v.doc.NumberText(FieldMasterVol)
	if err != nil {
		return types.VolumeText{}, err
	}
	music, err := v.doc.NumberText(FieldMusicVol)
	if err != nil {
		return types.VolumeText{}, err
	}
	return types.VolumeText{Master: types.LiteralText(master), Music: types.LiteralText(music)}, nil
}

// RestoreVolumeText writes the literals of t back where the document still
// holds exactly their value. Empty literals are left alone.
func (v *View) RestoreVolumeText(t types.VolumeText) error {
	for _, f := range []struct{ path, text string }{
		{FieldMasterVol, t.Master},
		{FieldMusicVol, t.Music},
	} {
		if f.text == "" {
			continue
		}
		current, err := v.doc.Float(f.path)
		if err != nil {
			return err
		}
		if !types.MatchesText(current, f.text) {
			continue
		}
		if err := v.doc.SetNumberText(f.path, f.text); err != nil {
			return err
		}
	}
	return nil
}

// Fields reads all managed fields
func (v *View) Fields() (types.FieldSet, error) {
	var fs types.FieldSet
	var err error
	if fs.DDSGeneration, err = v.DDSGeneration(); err != nil {
		return fs, err
	}
	if fs.Resolution, err = v.Resolution(); err != nil {
		return fs, err
	}
	if fs.Fullscreen, err = v.Fullscreen(); err != nil {
		return fs, err
	}
	if fs.MasterVolume, err = v.MasterVolume(); err != nil {
		return fs, err
	}
	if fs.MusicVolume, err = v.MusicVolume(); err != nil {
		return fs, err
	}
	return fs, nil
}

// Apply sets every managed field and returns the values it replaced.
// All fields are read first, so a missing or mistyped field leaves the document untouched.
func (v *View) Apply(next types.FieldSet) (types.FieldSet, error) {
	prev, err := v.Fields()
	if err != nil {
		return types.FieldSet{}, err
	}
	if _, err := v.SetDDSGeneration(next.DDSGeneration); err != nil {
		return prev, err
	}
	if _, err := v.SetResolution(next.Resolution); err != nil {
		return prev, err
	}
	if _, err := v.SetFullscreen(next.Fullscreen); err != nil {
		return prev, err
	}
	if _, err := v.SetMasterVolume(next.MasterVolume); err != nil {
		return prev, err
	}
	if _, err := v.SetMusicVolume(next.MusicVolume); err != nil {
		return prev, err
	}
	return prev, nil
}

// Commit writes pending changes. It reports whether the file was written.
func (v *View) Commit() (bool, error) {
	written, err := v.doc.Save(v.fs, v.path)
	if err != nil {
		return false, err
	}
	logger := logging.GetLogger("menusettings")
	if written {
		logger.Info().Str("path", v.path).Msg("Menu settings updated")
	} else {
		logger.Debug().Str("path", v.path).Msg("Menu settings unchanged, nothing written")
	}
	return written, nil
}
