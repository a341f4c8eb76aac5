package main

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/sirupsen/logrus"

	"github.com/platinummonkey/syspropc/pkg/codegen"
	"github.com/platinummonkey/syspropc/pkg/config"
)

// compileRequest is one queued schema file recompilation.
type compileRequest struct {
	Path      string
	Timestamp time.Time
}

// Compiler debounces schema file changes and recompiles them after the
// configured delay, so editor write bursts coalesce into one compilation.
type Compiler struct {
	cfg          *config.Config
	queue        map[string]*compileRequest
	pendingMutex sync.Mutex
	compileMutex sync.Mutex
	stopChan     chan struct{}
	ticker       *time.Ticker

	// hashes remembers the input hash of the last successful compile per
	// schema path; identical input means identical output, so those events
	// are skipped.
	hashes *lru.Cache[string, string]
}

// NewCompiler creates a compiler for the given configuration.
func NewCompiler(cfg *config.Config) (*Compiler, error) {
	hashes, err := lru.New[string, string](1024)
	if err != nil {
		return nil, err
	}
	return &Compiler{
		cfg:      cfg,
		queue:    make(map[string]*compileRequest),
		stopChan: make(chan struct{}),
		hashes:   hashes,
	}, nil
}

// Start begins processing the queue.
func (c *Compiler) Start() {
	c.ticker = time.NewTicker(500 * time.Millisecond)
	go c.processQueue()
}

// Stop stops processing.
func (c *Compiler) Stop() {
	if c.ticker != nil {
		c.ticker.Stop()
	}
	close(c.stopChan)
}

// Queue adds a schema file to the compilation queue. A file already queued
// has its timestamp refreshed, restarting the debounce window.
func (c *Compiler) Queue(path string) {
	c.pendingMutex.Lock()
	defer c.pendingMutex.Unlock()

	if existing, ok := c.queue[path]; ok {
		existing.Timestamp = time.Now()
		return
	}
	c.queue[path] = &compileRequest{Path: path, Timestamp: time.Now()}
	logrus.WithField("schema", path).Debug("queued recompilation")
}

// SeedHash records a known input hash so startup compilations are not
// immediately repeated when the watcher reports stale events.
func (c *Compiler) SeedHash(path, hash string) {
	c.hashes.Add(path, hash)
}

func (c *Compiler) processQueue() {
	for {
		select {
		case <-c.stopChan:
			return
		case <-c.ticker.C:
			c.checkQueue()
		}
	}
}

func (c *Compiler) checkQueue() {
	c.pendingMutex.Lock()
	var ready []string
	now := time.Now()
	for path, request := range c.queue {
		if now.Sub(request.Timestamp) >= c.cfg.Watch.Delay {
			ready = append(ready, path)
			delete(c.queue, path)
		}
	}
	c.pendingMutex.Unlock()

	for _, path := range ready {
		c.compile(path)
	}
}

func (c *Compiler) compile(path string) {
	c.compileMutex.Lock()
	defer c.compileMutex.Unlock()

	log := logrus.WithField("schema", path)

	content, err := os.ReadFile(path)
	if err != nil {
		log.WithError(err).Error("reading schema file")
		return
	}

	hash := codegen.HashSchema(content)
	if prev, ok := c.hashes.Get(path); ok && prev == hash {
		log.Debug("unchanged, skipping")
		return
	}

	result, err := codegen.Compile(newRequest(c.cfg, path))
	if err != nil {
		log.WithError(err).Error("compilation failed")
		return
	}

	for _, warning := range result.Warnings {
		log.WithField("api", warning.Location).Warn(warning.Message)
	}
	log.WithFields(logrus.Fields{
		"module":   result.Module,
		"files":    len(result.Files),
		"duration": result.Duration,
	}).Info("compiled")

	c.hashes.Add(path, result.InputHash)
}

// newRequest maps a schema path to a compile request using the configured
// output layout. The include path follows the schema file's own base name,
// matching where the declaration artifact lands.
func newRequest(cfg *config.Config, path string) *codegen.Request {
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return &codegen.Request{
		SchemaPath:  path,
		DeclDir:     cfg.Output.DeclDir,
		DefDir:      cfg.Output.DefDir,
		IncludePath: cfg.Output.IncludePrefix + "/" + base + ".sysprop.h",
		Language:    cfg.Language,
	}
}
