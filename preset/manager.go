package preset

import (
	"sort"
	"strings"

	"github.com/sgostarter/i/l"
	"github.com/sgostarter/libfuzzy/fis"
	"github.com/sgostarter/libfuzzy/fis/builder"
	"github.com/spf13/cast"
)

// Manager stores only definitions that build, and hands out systems through the
// shared cache so repeated loads of an unchanged preset reuse one system.
type Manager struct {
	logger  l.Wrapper
	storage Storage
	cache   *builder.Cache
}

func NewManager(storage Storage, cache *builder.Cache, logger l.Wrapper) *Manager {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	logger = logger.WithFields(l.StringField(l.ClsKey, "presetManager"))

	if storage == nil {
		logger.Fatal("no storage")
	}

	if cache == nil {
		cache = builder.NewCache(0, logger)
	}

	return &Manager{
		logger:  logger,
		storage: storage,
		cache:   cache,
	}
}

func (m *Manager) Save(name string, def *builder.Definition) (id uint64, err error) {
	name = strings.TrimSpace(name)
	if name == "" {
		err = ErrNoName

		return
	}

	if _, err = m.cache.GetOrBuild(def); err != nil {
		m.logger.WithFields(l.StringField("name", name), l.ErrorField(err)).Error("reject invalid definition")

		return
	}

	id, err = m.storage.Save(name, def)
	if err != nil {
		m.logger.WithFields(l.StringField("name", name), l.ErrorField(err)).Error("save failed")

		return
	}

	m.logger.WithFields(l.StringField("name", name), l.StringField("id", cast.ToString(id))).Debug("saved")

	return
}

func (m *Manager) Load(name string) (*Preset, *fis.System, error) {
	p, err := m.storage.Load(name)
	if err != nil {
		return nil, nil, err
	}

	s, err := m.cache.GetOrBuild(p.Def)
	if err != nil {
		return p, nil, err
	}

	return p, s, nil
}

func (m *Manager) List() ([]string, error) {
	names, err := m.storage.List()
	if err != nil {
		return nil, err
	}

	sort.Strings(names)

	return names, nil
}

func (m *Manager) Delete(name string) error {
	return m.storage.Delete(name)
}
