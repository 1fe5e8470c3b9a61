package main

import (
	"fmt"

	"github.com/go-redis/redis/v8"
	"github.com/sgostarter/libfuzzy/fis/builder"
	"github.com/sgostarter/libfuzzy/preset"
	"github.com/sgostarter/libfuzzy/preset/impls/fmstorage"
	"github.com/sgostarter/libfuzzy/preset/impls/redisstorage"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func presetManager() (*preset.Manager, error) {
	cache := builder.NewCache(cfg.CacheExpiration, logger)

	if cfg.RedisDSN == "" {
		return preset.NewManager(fmstorage.NewFMPresetStorage(cfg.PresetRoot, nil), cache, logger), nil
	}

	opts, err := redis.ParseURL(cfg.RedisDSN)
	if err != nil {
		return nil, err
	}

	return preset.NewManager(redisstorage.NewRedisPresetStorage(cfg.RedisPreKey, redis.NewClient(opts), logger),
		cache, logger), nil
}

func presetCmd() *cobra.Command {
	var redisDSN, root string

	cmd := &cobra.Command{
		Use:   "preset",
		Short: "Store named system definitions in a json file or in redis",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := rootCmd.PersistentPreRunE(cmd, args); err != nil {
				return err
			}

			if redisDSN != "" {
				cfg.RedisDSN = redisDSN
			}

			if root != "" {
				cfg.PresetRoot = root
			}

			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&redisDSN, "redis", "", "redis url, e.g. redis://:@127.0.0.1:6379/0")
	cmd.PersistentFlags().StringVar(&root, "root", "", "directory of the json preset file")

	cmd.AddCommand(presetSaveCmd(), presetListCmd(), presetShowCmd(), presetDeleteCmd())

	return cmd
}

func presetSaveCmd() *cobra.Command {
	var (
		sf      systemFlags
		anchors int
	)

	cmd := &cobra.Command{
		Use:   "save name",
		Short: "Validate and save a definition",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := presetManager()
			if err != nil {
				return err
			}

			var def *builder.Definition

			if anchors > 0 {
				def, err = builder.AnchorConfig{Points: builder.SquareAnchors(anchors)}.Definition()
			} else {
				def, err = sf.resolve()
			}

			if err != nil {
				return err
			}

			if sf.defuzzifier != "" {
				def.Defuzzifier = sf.defuzzifier
			}

			id, err := m.Save(args[0], def)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\n", args[0], id)

			return nil
		},
	}

	sf.register(cmd)
	cmd.Flags().IntVar(&anchors, "anchors", 0, "save the anchor variant with n anchors instead")

	return cmd
}

func presetListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List preset names",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := presetManager()
			if err != nil {
				return err
			}

			names, err := m.List()
			if err != nil {
				return err
			}

			for _, name := range names {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}

			return nil
		},
	}
}

func presetShowCmd() *cobra.Command {
	var xs string

	cmd := &cobra.Command{
		Use:   "show name",
		Short: "Print a preset's definition, optionally evaluating it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := presetManager()
			if err != nil {
				return err
			}

			p, s, err := m.Load(args[0])
			if err != nil {
				return err
			}

			if xs != "" {
				vs, err := parseFloats(xs)
				if err != nil {
					return err
				}

				return evaluateAll(cmd.OutOrStdout(), s, vs)
			}

			return yaml.NewEncoder(cmd.OutOrStdout()).Encode(p)
		},
	}

	cmd.Flags().StringVar(&xs, "x", "", "comma separated inputs to evaluate")

	return cmd
}

func presetDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete name",
		Short: "Delete a preset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := presetManager()
			if err != nil {
				return err
			}

			return m.Delete(args[0])
		},
	}
}
