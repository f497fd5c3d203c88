// CLASSIFICATION: COMMUNITY
// Filename: watcher.go v0.2
// Author: Lukas Bower
// Date Modified: 2026-08-01
// License: SPDX-License-Identifier: MIT OR Apache-2.0

package reload

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/time/rate"
)

// Broadcaster receives coalesced change notifications.
type Broadcaster interface {
	Broadcast(path string)
}

// Watcher observes the document root and forwards change events to a
// Broadcaster, collapsing editor event bursts into one notification per
// limiter window.
type Watcher struct {
	root  string
	dest  Broadcaster
	fw    *fsnotify.Watcher
	limit *rate.Limiter
}

// NewWatcher sets up recursive watches over root. Dot-directories are
// skipped; directories created later are picked up as they appear.
func NewWatcher(root string, dest Broadcaster) (*Watcher, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("watch root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("watch root %s is not a directory", root)
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	w := &Watcher{
		root:  root,
		dest:  dest,
		fw:    fw,
		limit: rate.NewLimiter(rate.Every(100*time.Millisecond), 1),
	}
	if err := w.addTree(root); err != nil {
		fw.Close()
		return nil, err
	}
	return w, nil
}

func (w *Watcher) addTree(dir string) error {
	return filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			// Unreadable entries are not fatal for a watcher.
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if strings.HasPrefix(d.Name(), ".") && path != dir {
			return filepath.SkipDir
		}
		if err := w.fw.Add(path); err != nil {
			log.Printf("watch %s: %v", path, err)
		}
		return nil
	})
}

// Run forwards events until ctx is done.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.fw.Close()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.fw.Events:
			if !ok {
				return nil
			}
			w.handle(ev)
		case err, ok := <-w.fw.Errors:
			if !ok {
				return nil
			}
			log.Printf("watch error: %v", err)
		}
	}
}

func (w *Watcher) handle(ev fsnotify.Event) {
	if ev.Op.Has(fsnotify.Create) {
		if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
			if !strings.HasPrefix(filepath.Base(ev.Name), ".") {
				w.addTree(ev.Name)
			}
		}
	}
	if !ev.Op.Has(fsnotify.Write) && !ev.Op.Has(fsnotify.Create) &&
		!ev.Op.Has(fsnotify.Remove) && !ev.Op.Has(fsnotify.Rename) {
		return
	}
	// Editors emit several events per save; one reload per window is enough.
	if !w.limit.Allow() {
		return
	}
	rel, err := filepath.Rel(w.root, ev.Name)
	if err != nil {
		rel = ev.Name
	}
	w.dest.Broadcast(rel)
}
