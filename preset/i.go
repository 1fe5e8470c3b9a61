package preset

import (
	"github.com/sgostarter/libfuzzy/fis/builder"
)

type Preset struct {
	ID       uint64              `yaml:"id" json:"id"`
	Name     string              `yaml:"name" json:"name"`
	CreateAt int64               `yaml:"createAt" json:"createAt"`
	UpdateAt int64               `yaml:"updateAt" json:"updateAt"`
	Def      *builder.Definition `yaml:"def" json:"def"`
}

// Storage keeps named definitions. Saving an existing name replaces the
// definition and keeps its id.
type Storage interface {
	Save(name string, def *builder.Definition) (id uint64, err error)
	Load(name string) (p *Preset, err error)
	List() (names []string, err error)
	Delete(name string) error
}
