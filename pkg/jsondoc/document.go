package jsondoc

import (
	"io/fs"
	"math"
	"strconv"

	"github.com/arthur-debert/skinmanager/pkg/errors"
	"github.com/arthur-debert/skinmanager/pkg/types"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// Document is an opaque JSON document with typed access to single values
type Document struct {
	text     []byte
	encoding Encoding
	dirty    bool
}

// Parse decodes and validates a JSON document
func Parse(data []byte) (*Document, error) {
	text, enc, err := Decode(data)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrSettingsParse, "cannot decode %s text", enc)
	}
	if !gjson.ValidBytes(text) {
		return nil, errors.New(errors.ErrSettingsParse, "document is not valid JSON")
	}
	return &Document{text: text, encoding: enc}, nil
}

// Load reads and parses the document at path
func Load(filesystem types.FS, path string) (*Document, error) {
	data, err := filesystem.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrapf(err, errors.ErrFileNotFound, "settings document not found").
				WithDetail("path", path)
		}
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot read settings document").
			WithDetail("path", path)
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrSettingsParse, "cannot parse %s", path).
			WithDetail("path", path)
	}
	return doc, nil
}

// Save writes the document to path if it was modified since it was parsed or last saved.
// It reports whether anything was written.
func (d *Document) Save(filesystem types.FS, path string) (bool, error) {
	if !d.dirty {
		return false, nil
	}
	data, err := d.Bytes()
	if err != nil {
		return false, err
	}
	if err := filesystem.WriteFile(path, data, 0644); err != nil {
		return false, errors.Wrapf(err, errors.ErrFileWrite, "cannot write settings document").
			WithDetail("path", path)
	}
	d.dirty = false
	return true, nil
}

// Bytes returns the document in its source encoding
func (d *Document) Bytes() ([]byte, error) {
	data, err := encode(d.text, d.encoding)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInternal, "cannot encode document as %s", d.encoding)
	}
	return data, nil
}

// Text returns the UTF-8 text of the document
func (d *Document) Text() []byte {
	return d.text
}

// Encoding returns the source encoding
func (d *Document) Encoding() Encoding {
	return d.encoding
}

// Dirty reports whether the document has unsaved edits
func (d *Document) Dirty() bool {
	return d.dirty
}

// Get returns the raw value at path
func (d *Document) Get(path string) gjson.Result {
	return gjson.GetBytes(d.text, path)
}

func (d *Document) lookup(path string, want ...gjson.Type) (gjson.Result, error) {
	res := d.Get(path)
	if !res.Exists() {
		return res, errors.Newf(errors.ErrSettingsField, "field %s is missing", path).
			WithDetail("field", path)
	}
	for _, t := range want {
		if res.Type == t {
			return res, nil
		}
	}
	return res, errors.Newf(errors.ErrSettingsField, "field %s has unexpected type %s", path, res.Type).
		WithDetail("field", path)
}

// Bool returns the boolean at path
func (d *Document) Bool(path string) (bool, error) {
	res, err := d.lookup(path, gjson.True, gjson.False)
	if err != nil {
		return false, err
	}
	return res.Bool(), nil
}

// Int returns the integer at path; fractional numbers are rejected
func (d *Document) Int(path string) (int64, error) {
	res, err := d.lookup(path, gjson.Number)
	if err != nil {
		return 0, err
	}
	if res.Num != math.Trunc(res.Num) {
		return 0, errors.Newf(errors.ErrSettingsField, "field %s is not an integer", path).
			WithDetail("field", path)
	}
	return res.Int(), nil
}

// Uint32 returns the non-negative 32 bit integer at path
func (d *Document) Uint32(path string) (uint32, error) {
	n, err := d.Int(path)
	if err != nil {
		return 0, err
	}
	if n < 0 || n > math.MaxUint32 {
		return 0, errors.Newf(errors.ErrSettingsField, "field %s is out of range", path).
			WithDetail("field", path)
	}
	return uint32(n), nil
}

// Float returns the number at path
func (d *Document) Float(path string) (float64, error) {
	res, err := d.lookup(path, gjson.Number)
	if err != nil {
		return 0, err
	}
	return res.Num, nil
}

// SetBool replaces the boolean at path. The field must already exist with a boolean value.
func (d *Document) SetBool(path string, value bool) error {
	old, err := d.Bool(path)
	if err != nil {
		return err
	}
	if old == value {
		return nil
	}
	return d.setRaw(path, strconv.FormatBool(value))
}

// SetInt replaces the integer at path
func (d *Document) SetInt(path string, value int64) error {
	old, err := d.Int(path)
	if err != nil {
		return err
	}
	if old == value {
		return nil
	}
	return d.setRaw(path, strconv.FormatInt(value, 10))
}

// SetFloat replaces the number at path. Numerically equal values leave the text untouched.
func (d *Document) SetFloat(path string, value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return errors.Newf(errors.ErrInvalidInput, "cannot store %v in %s", value, path)
	}
	old, err := d.Float(path)
	if err != nil {
		return err
	}
	if old == value {
		return nil
	}
	return d.setRaw(path, strconv.FormatFloat(value, 'f', -1, 64))
}

// NumberText returns the literal text of the number at path
func (d *Document) NumberText(path string) (string, error) {
	res, err := d.lookup(path, gjson.Number)
	if err != nil {
		return "", err
	}
	return res.Raw, nil
}

// SetNumberText replaces the number at path with the literal text, which is
// written as is. text must be a JSON number.
func (d *Document) SetNumberText(path, text string) error {
	if !gjson.Valid(text) || gjson.Parse(text).Type != gjson.Number {
		return errors.Newf(errors.ErrInvalidInput, "%q is not a JSON number", text).
			WithDetail("field", path)
	}
	old, err := d.lookup(path, gjson.Number)
	if err != nil {
		return err
	}
	if old.Raw == text {
		return nil
	}
	return d.setRaw(path, text)
}

func (d *Document) setRaw(path, raw string) error {
	updated, err := sjson.SetRawBytes(d.text, path, []byte(raw))
	if err != nil {
		return errors.Wrapf(err, errors.ErrSettingsField, "cannot set field %s", path).
			WithDetail("field", path)
	}
	d.text = updated
	d.dirty = true
	return nil
}
