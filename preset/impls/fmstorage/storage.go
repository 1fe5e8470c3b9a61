package fmstorage

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/godruoyi/go-snowflake"
	"github.com/sgostarter/i/commerr"
	"github.com/sgostarter/i/stg"
	"github.com/sgostarter/libeasygo/stg/fs/rawfs"
	"github.com/sgostarter/libeasygo/stg/mwf"
	"github.com/sgostarter/libfuzzy/fis/builder"
	"github.com/sgostarter/libfuzzy/preset"
)

func NewFMPresetStorage(root string, storage stg.FileStorage) preset.Storage {
	if storage == nil {
		storage = rawfs.NewFSStorage("")
	}

	return &fmPresetStorageImpl{
		presets: mwf.NewMemWithFile[map[string]*preset.Preset, mwf.Serial, mwf.Lock](
			make(map[string]*preset.Preset), &mwf.JSONSerial{MarshalIndent: true}, &sync.RWMutex{},
			filepath.Join(root, "presets.json"), storage),
	}
}

type fmPresetStorageImpl struct {
	presets *mwf.MemWithFile[map[string]*preset.Preset, mwf.Serial, mwf.Lock]
}

func (impl *fmPresetStorageImpl) Save(name string, def *builder.Definition) (id uint64, err error) {
	err = impl.presets.Change(func(oldM map[string]*preset.Preset) (newM map[string]*preset.Preset, err error) {
		newM = oldM
		if len(newM) == 0 {
			newM = make(map[string]*preset.Preset)
		}

		now := time.Now().Unix()

		if p, ok := newM[name]; ok {
			id = p.ID
			newM[name] = &preset.Preset{
				ID:       p.ID,
				Name:     name,
				CreateAt: p.CreateAt,
				UpdateAt: now,
				Def:      def.Clone(),
			}

			return
		}

		id = snowflake.ID()
		newM[name] = &preset.Preset{
			ID:       id,
			Name:     name,
			CreateAt: now,
			UpdateAt: now,
			Def:      def.Clone(),
		}

		return
	})

	return
}

func (impl *fmPresetStorageImpl) Load(name string) (p *preset.Preset, err error) {
	impl.presets.Read(func(m map[string]*preset.Preset) {
		if v, ok := m[name]; ok {
			cp := *v
			cp.Def = v.Def.Clone()
			p = &cp
		} else {
			err = commerr.ErrNotFound
		}
	})

	return
}

func (impl *fmPresetStorageImpl) List() (names []string, err error) {
	impl.presets.Read(func(m map[string]*preset.Preset) {
		for name := range m {
			names = append(names, name)
		}
	})

	return
}

func (impl *fmPresetStorageImpl) Delete(name string) error {
	return impl.presets.Change(func(oldM map[string]*preset.Preset) (newM map[string]*preset.Preset, err error) {
		newM = oldM

		if _, ok := newM[name]; !ok {
			err = commerr.ErrNotFound

			return
		}

		delete(newM, name)

		return
	})
}
