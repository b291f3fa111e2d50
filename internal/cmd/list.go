package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/mlsblk/mlsblk/internal/blockdev"
	"github.com/mlsblk/mlsblk/internal/config"
	"github.com/mlsblk/mlsblk/internal/contextual"
	"github.com/mlsblk/mlsblk/internal/diskutil"
	"github.com/mlsblk/mlsblk/internal/diskutil/identifier"
	"github.com/mlsblk/mlsblk/internal/mounts"
	"github.com/mlsblk/mlsblk/internal/render"
)

// listOptions holds all flag values for the listing run.
type listOptions struct {
	fs         bool
	output     string
	json       bool
	list       bool
	bytes      bool
	noHeadings bool
	configPath string
}

// configureListing wires the device listing behavior onto the root command.
func configureListing(cmd *cobra.Command) {
	opts := listOptions{}

	cmd.Flags().BoolVarP(&opts.fs, "fs", "f", false, "fetch filesystem metadata per device and widen the default columns")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "comma separated list of columns (NAME,SIZE,TYPE,MOUNTPOINT,FSTYPE,LABEL,UUID)")
	cmd.Flags().BoolVarP(&opts.json, "json", "J", false, "print devices as a JSON document")
	cmd.Flags().BoolVarP(&opts.list, "list", "l", false, "print devices as a flat list instead of a tree")
	cmd.Flags().BoolVarP(&opts.bytes, "bytes", "b", false, "print sizes in bytes instead of human readable form")
	cmd.Flags().BoolVarP(&opts.noHeadings, "noheadings", "n", false, "suppress the header row")
	cmd.Flags().StringVar(&opts.configPath, "config", "", "config file to use instead of the default search path")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		product := contextual.Product(ctx)
		if product == nil {
			return errors.New("product required in context")
		}

		cfg, err := loadConfig(opts.configPath)
		if err != nil {
			return err
		}

		// Column problems are reported before diskutil is ever invoked.
		cols, err := resolveColumns(opts, cfg)
		if err != nil {
			return err
		}

		if !cmd.Flags().Changed("bytes") {
			opts.bytes = cfg.Bytes
		}

		listArgs, err := deviceArgs(args)
		if err != nil {
			return err
		}

		logrus.WithField("product", product).Debug("Configuring diskutil for product")
		du, err := diskutil.ForProduct(product)
		if err != nil {
			return err
		}

		ropts := render.Options{
			Columns:    cols,
			Bytes:      opts.bytes,
			NoHeadings: opts.noHeadings,
		}

		return runList(ctx, du, mounts.SystemSource{}, listArgs, opts, ropts, cmd.OutOrStdout())
	}
}

// runList fetches the device listing, builds and enriches the forest, and
// renders it. JSON mode wins when both -J and -l are given.
func runList(ctx context.Context, du diskutil.DiskUtil, mountSrc mounts.Source, listArgs []string, opts listOptions, ropts render.Options, w io.Writer) error {
	logrus.WithField("args", listArgs).Debug("Fetching device listing...")
	parts, err := du.List(ctx, listArgs)
	if err != nil {
		return fmt.Errorf("cannot list block devices: %w", err)
	}

	forest, err := blockdev.Build(parts)
	if err != nil {
		return fmt.Errorf("cannot build device hierarchy: %w", err)
	}

	if entries, err := mountSrc.Mounts(ctx); err != nil {
		logrus.WithError(err).Debug("Skipping mount table enrichment")
	} else {
		blockdev.ApplyMounts(forest.Roots(), entries)
	}

	if opts.fs {
		logrus.Debug("Fetching per-device metadata...")
		blockdev.EnrichInfo(ctx, du, forest)
	}

	switch {
	case opts.json:
		return render.JSON(w, forest.Roots())
	case opts.list:
		return render.List(w, forest.Roots(), ropts)
	default:
		return render.Tree(w, forest.Roots(), ropts)
	}
}

// loadConfig reads the config file. An explicit path must exist, the default
// search paths may all be absent.
func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
		return config.Load(path)
	}

	return config.Load(config.DefaultPaths()...)
}

// resolveColumns picks the column selection: an explicit -o wins, then the
// -f expansion, then configured defaults, then the built-in defaults.
func resolveColumns(opts listOptions, cfg *config.Config) ([]render.Column, error) {
	if opts.output != "" {
		return render.ParseColumns(opts.output)
	}
	if opts.fs {
		return render.MetadataColumns(), nil
	}
	if len(cfg.Columns) > 0 {
		return render.ParseColumns(strings.Join(cfg.Columns, ","))
	}

	return render.DefaultColumns(), nil
}

// deviceArgs validates the optional device argument and normalizes it to a
// bare identifier for diskutil to filter on.
func deviceArgs(args []string) ([]string, error) {
	if len(args) == 0 {
		return nil, nil
	}

	id := identifier.ParseDiskID(args[0])
	if id == "" {
		return nil, fmt.Errorf("invalid device identifier %q", args[0])
	}

	return []string{id}, nil
}
