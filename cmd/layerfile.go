package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"gpspoint-tools/gptools/config"
	"gpspoint-tools/gptools/gpspoint"
	"gpspoint-tools/gptools/layer"

	opentracing "github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
	otlog "github.com/opentracing/opentracing-go/log"
)

// loadLayer reads a gpspoint file in a new layer
func loadLayer(ctx context.Context, cfg *config.Config, path string) (*layer.Layer, bool, error) {
	span, _ := opentracing.StartSpanFromContext(ctx, "gpspoint.read")
	defer span.Finish()
	span.SetTag("file", path)

	l := layer.New(cfg.CoordMode)
	found, err := gpspoint.ReadFile(path, l)
	if err != nil {
		failSpan(span, err)
		return nil, false, err
	}
	span.SetTag("found", found)
	span.SetTag("waypoints", len(l.Waypoints()))

	return l, found, nil
}

// saveLayer writes the layer to path through a temporary file in the same
// directory, renamed over path once complete.
func saveLayer(ctx context.Context, cfg *config.Config, path string, l *layer.Layer) (err error) {
	span, _ := opentracing.StartSpanFromContext(ctx, "gpspoint.write")
	defer span.Finish()
	span.SetTag("file", path)
	defer func() {
		if err != nil {
			failSpan(span, err)
		}
	}()

	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	dir := filepath.Dir(abs)

	f, err := os.CreateTemp(dir, ".gpspoint-*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer func() {
		if err != nil {
			os.Remove(tmp)
		}
	}()
	if fi, statErr := os.Stat(abs); statErr == nil {
		if err := f.Chmod(fi.Mode().Perm()); err != nil {
			f.Close()
			return err
		}
	}

	var opts []gpspoint.WriteOption
	if cfg.RelativeRefs {
		opts = append(opts, gpspoint.WithRelativeTo(dir))
	}
	if err := gpspoint.NewWriter(f, opts...).Write(l); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmp, abs); err != nil {
		return fmt.Errorf("replacing %s: %w", path, err)
	}

	return nil
}

func failSpan(span opentracing.Span, err error) {
	ext.Error.Set(span, true)
	span.LogFields(otlog.Error(err))
}
