package main

import (
	"context"
	"flag"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"

	"github.com/platinummonkey/syspropc/pkg/codegen"
	"github.com/platinummonkey/syspropc/pkg/config"
)

func main() {
	configPath := flag.String("config", "", "Path to YAML config file")
	workers := flag.Int("workers", 4, "Max parallel compilations during the initial scan")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logrus.Fatalf("loading config: %v", err)
	}

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logrus.Fatalf("parsing log level: %v", err)
	}
	logrus.SetLevel(level)

	compiler, err := NewCompiler(cfg)
	if err != nil {
		logrus.Fatalf("creating compiler: %v", err)
	}
	compiler.Start()
	defer compiler.Stop()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		logrus.Fatalf("creating watcher: %v", err)
	}
	defer watcher.Close()

	for _, dir := range cfg.Watch.Dirs {
		if err := watchRecursive(watcher, dir); err != nil {
			logrus.Fatalf("watching %s: %v", dir, err)
		}
	}

	compileExisting(cfg, compiler, *workers)

	logrus.WithField("dirs", cfg.Watch.Dirs).Info("watching for schema changes")
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			handleEvent(watcher, compiler, event)
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			logrus.WithError(err).Error("watcher error")
		}
	}
}

func handleEvent(watcher *fsnotify.Watcher, compiler *Compiler, event fsnotify.Event) {
	if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
		return
	}

	// New directories need their own watch to see files created inside.
	if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
		if err := watchRecursive(watcher, event.Name); err != nil {
			logrus.WithError(err).WithField("dir", event.Name).Error("watching new directory")
		}
		return
	}

	if filepath.Ext(event.Name) == ".sysprop" {
		compiler.Queue(event.Name)
	}
}

func watchRecursive(watcher *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return watcher.Add(path)
		}
		return nil
	})
}

// compileExisting compiles every schema file already present under the
// watch roots, in parallel, and seeds the change-detection cache so the
// first watcher events for untouched files are no-ops.
func compileExisting(cfg *config.Config, compiler *Compiler, workers int) {
	var reqs []*codegen.Request
	for _, dir := range cfg.Watch.Dirs {
		_ = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && filepath.Ext(path) == ".sysprop" {
				reqs = append(reqs, newRequest(cfg, path))
			}
			return nil
		})
	}
	if len(reqs) == 0 {
		return
	}

	results, err := codegen.CompileBatch(context.Background(), reqs, workers)
	if err != nil {
		logrus.WithError(err).Error("initial compilation")
	}
	for i, result := range results {
		if result == nil {
			continue
		}
		for _, warning := range result.Warnings {
			logrus.WithField("api", warning.Location).Warn(warning.Message)
		}
		logrus.WithFields(logrus.Fields{
			"schema": reqs[i].SchemaPath,
			"module": result.Module,
		}).Info("compiled")
		compiler.SeedHash(reqs[i].SchemaPath, result.InputHash)
	}
}
