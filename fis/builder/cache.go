package builder

import (
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/patrickmn/go-cache"
	"github.com/sgostarter/i/l"
	"github.com/sgostarter/libfuzzy/fis"
	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"
)

// Cache keeps built systems by definition content, so equal definitions share
// one immutable system and any parameter change yields a new one.
type Cache struct {
	logger l.Wrapper
	opts   []fis.Option
	c      *cache.Cache
}

// NewCache expiration <= 0 keeps entries until the process exits.
func NewCache(expiration time.Duration, logger l.Wrapper, opts ...fis.Option) *Cache {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	cleanupInterval := expiration * 2
	if expiration <= 0 {
		expiration = cache.NoExpiration
		cleanupInterval = 0
	}

	return &Cache{
		logger: logger.WithFields(l.StringField(l.ClsKey, "builderCache")),
		opts:   append([]fis.Option(nil), opts...),
		c:      cache.New(expiration, cleanupInterval),
	}
}

func (c *Cache) GetOrBuild(def *Definition) (*fis.System, error) {
	key, err := Key(def)
	if err != nil {
		return nil, err
	}

	if i, ok := c.c.Get(key); ok {
		c.logger.WithFields(l.StringField("key", key)).Debug("hit")

		s, _ := i.(*fis.System)

		return s, nil
	}

	s, err := Build(def, c.opts...)
	if err != nil {
		return nil, err
	}

	// a concurrent miss may have won, hand out its instance
	if err = c.c.Add(key, s, cache.DefaultExpiration); err != nil {
		if i, ok := c.c.Get(key); ok {
			s, _ = i.(*fis.System)
		}
	}

	c.logger.WithFields(l.StringField("key", key), l.StringField("system", cast.ToString(s.ID()))).Debug("miss")

	return s, nil
}

func (c *Cache) Len() int {
	return c.c.ItemCount()
}

func (c *Cache) Flush() {
	c.c.Flush()
}

// Key is the content address of a definition: xxhash of its canonical yaml.
// Parameter values are normalised to float64 first so 5, "5" and 5.0 agree.
func Key(def *Definition) (string, error) {
	if def == nil {
		return "", ErrNoDefinition
	}

	d, err := yaml.Marshal(canonical(def))
	if err != nil {
		return "", err
	}

	return strconv.FormatUint(xxhash.Sum64(d), 16), nil
}

func canonical(def *Definition) *Definition {
	cp := *def
	cp.Input = canonicalVariable(def.Input)
	cp.Output = canonicalVariable(def.Output)

	cp.Rules = make([]RuleDef, 0, len(def.Rules))
	for _, rd := range def.Rules {
		if connective, err := fis.ParseConnective(rd.Connective); err == nil {
			rd.Connective = connective.String()
		}

		rd.If = append([]string(nil), rd.If...)
		cp.Rules = append(cp.Rules, rd)
	}

	// empty defers to the cache's options, so it stays distinct from an explicit name
	if def.Defuzzifier != "" {
		if d, err := fis.ParseDefuzzifier(def.Defuzzifier); err == nil {
			cp.Defuzzifier = string(d)
		}
	}

	return &cp
}

func canonicalVariable(vd VariableDef) VariableDef {
	terms := make([]TermDef, 0, len(vd.Terms))

	for _, td := range vd.Terms {
		params := make(map[string]interface{}, len(td.Params))

		for k, v := range td.Params {
			if f, err := cast.ToFloat64E(v); err == nil {
				params[k] = f
			} else {
				params[k] = v
			}
		}

		td.Params = params
		terms = append(terms, td)
	}

	vd.Terms = terms

	return vd
}
