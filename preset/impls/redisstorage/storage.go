package redisstorage

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/godruoyi/go-snowflake"
	"github.com/sgostarter/i/commerr"
	"github.com/sgostarter/i/l"
	"github.com/sgostarter/libfuzzy/fis/builder"
	"github.com/sgostarter/libfuzzy/preset"
	"gopkg.in/yaml.v3"
)

var savePresetScript = redis.NewScript(`
	local idsKey = KEYS[1]
	local defsKey = KEYS[2]
	local createAtKey = KEYS[3]

	local vName = ARGV[1]
	local vID = ARGV[2]
	local vDef = ARGV[3]
	local vNow = ARGV[4]

	local id = redis.call("HGET", idsKey, vName)
	if id == false then
		id = vID
		redis.call("HSET", idsKey, vName, id)
		redis.call("HSET", createAtKey, vName, vNow)
	end

	redis.call("HSET", defsKey, vName, vDef)

	return id
`)

var deletePresetScript = redis.NewScript(`
	local n = redis.call("HDEL", KEYS[1], ARGV[1])
	redis.call("HDEL", KEYS[2], ARGV[1])
	redis.call("HDEL", KEYS[3], ARGV[1])

	return n
`)

type record struct {
	UpdateAt int64               `yaml:"updateAt"`
	Def      *builder.Definition `yaml:"def"`
}

func NewRedisPresetStorage(preKey string, redisCli *redis.Client, logger l.Wrapper) preset.Storage {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	logger = logger.WithFields(l.StringField(l.ClsKey, "presetStorage"))

	if redisCli == nil {
		logger.Fatal("no redis client")
	}

	return &presetStorage{
		logger:   logger,
		preKey:   preKey,
		redisCli: redisCli,
	}
}

type presetStorage struct {
	logger   l.Wrapper
	preKey   string
	redisCli *redis.Client
}

func (impl *presetStorage) idsKey() string {
	return impl.preKey + ":presets:ids"
}

func (impl *presetStorage) defsKey() string {
	return impl.preKey + ":presets:defs"
}

func (impl *presetStorage) createAtKey() string {
	return impl.preKey + ":presets:createAt"
}

func (impl *presetStorage) keys() []string {
	return []string{impl.idsKey(), impl.defsKey(), impl.createAtKey()}
}

func (impl *presetStorage) Save(name string, def *builder.Definition) (id uint64, err error) {
	now := time.Now().Unix()

	d, err := yaml.Marshal(&record{UpdateAt: now, Def: def})
	if err != nil {
		return
	}

	id, err = savePresetScript.Run(context.Background(), impl.redisCli, impl.keys(),
		name, snowflake.ID(), string(d), now).Uint64()

	return
}

func (impl *presetStorage) Load(name string) (p *preset.Preset, err error) {
	is, err := impl.redisCli.Pipelined(context.Background(), func(pipe redis.Pipeliner) error {
		pipe.HGet(context.Background(), impl.idsKey(), name)
		pipe.HGet(context.Background(), impl.defsKey(), name)
		pipe.HGet(context.Background(), impl.createAtKey(), name)

		return nil
	})
	if errors.Is(err, redis.Nil) {
		err = commerr.ErrNotFound

		return
	}

	if err != nil {
		return
	}

	id, err := is[0].(*redis.StringCmd).Uint64()
	if err != nil {
		return
	}

	d, err := is[1].(*redis.StringCmd).Bytes()
	if err != nil {
		return
	}

	createAt, err := is[2].(*redis.StringCmd).Int64()
	if err != nil {
		return
	}

	var r record

	if err = yaml.Unmarshal(d, &r); err != nil {
		impl.logger.WithFields(l.StringField("name", name), l.ErrorField(err)).Error("broken preset")

		return
	}

	p = &preset.Preset{
		ID:       id,
		Name:     name,
		CreateAt: createAt,
		UpdateAt: r.UpdateAt,
		Def:      r.Def,
	}

	return
}

func (impl *presetStorage) List() (names []string, err error) {
	names, err = impl.redisCli.HKeys(context.Background(), impl.idsKey()).Result()

	return
}

func (impl *presetStorage) Delete(name string) error {
	n, err := deletePresetScript.Run(context.Background(), impl.redisCli, impl.keys(), name).Int()
	if err != nil {
		return err
	}

	if n == 0 {
		return commerr.ErrNotFound
	}

	return nil
}
