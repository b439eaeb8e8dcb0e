package service

import (
	"github.com/MKhiriev/go-prefs-keeper/internal/codec"
	"github.com/MKhiriev/go-prefs-keeper/internal/prefs"
	"github.com/MKhiriev/go-prefs-keeper/models"
)

// typedOps runs the generic prefs operations for one value type on plain
// text input and output.
type typedOps struct {
	set     func(p *prefs.Prefs, key, text string, encrypt bool, keyIndex int) error
	get     func(p *prefs.Prefs, key string, encrypted bool, keyIndex int) (string, error)
	encrypt func(p *prefs.Prefs, text string, keyIndex int) (string, error)
}

var valueTypeOps = map[models.ValueType]typedOps{
	models.TypeBool:        opsFor[bool](),
	models.TypeInt:         opsFor[int32](),
	models.TypeFloat:       opsFor[float32](),
	models.TypeString:      opsFor[string](),
	models.TypeBoolArray:   opsFor[[]bool](),
	models.TypeIntArray:    opsFor[[]int32](),
	models.TypeFloatArray:  opsFor[[]float32](),
	models.TypeStringArray: opsFor[[]string](),
}

func opsFor[T codec.Value]() typedOps {
	return typedOps{
		set: func(p *prefs.Prefs, key, text string, encrypt bool, keyIndex int) error {
			v, err := parseText[T](p, text)
			if err != nil {
				return err
			}
			if encrypt {
				return prefs.SaveEncrypted(p, key, v, keyIndex)
			}
			prefs.Save(p, key, v)
			return nil
		},
		get: func(p *prefs.Prefs, key string, encrypted bool, keyIndex int) (string, error) {
			var (
				v   T
				err error
			)
			if encrypted {
				v, err = prefs.FetchEncrypted[T](p, key, keyIndex)
			} else {
				v, err = prefs.Fetch[T](p, key)
			}
			if err != nil {
				return "", err
			}
			return codec.EncodeValue(v, p.Keys().Delimiter()), nil
		},
		encrypt: func(p *prefs.Prefs, text string, keyIndex int) (string, error) {
			v, err := parseText[T](p, text)
			if err != nil {
				return "", err
			}
			return prefs.Encrypt(p, v, keyIndex)
		},
	}
}

func parseText[T codec.Value](p *prefs.Prefs, text string) (T, error) {
	v, err := codec.DecodeValue[T](text, p.Keys().Delimiter())
	if err != nil {
		return v, &invalidValueError{err: err}
	}
	return v, nil
}

// invalidValueError marks a failure to parse caller input, as opposed to a
// stored value that can't be read back.
type invalidValueError struct {
	err error
}

func (e *invalidValueError) Error() string { return e.err.Error() }
func (e *invalidValueError) Unwrap() error { return e.err }
