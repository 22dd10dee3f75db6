// Copyright 2025 Florian Zenker (flo@znkr.io)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"znkr.io/linediff/internal/logger"
)

// debounce is how long to wait for more changes before comparing again. Editors often write a
// file in several steps.
const debounce = 100 * time.Millisecond

// watchFiles calls fn once and then again every time one of the files changes, until ctx is done.
func watchFiles(ctx context.Context, files []string, fn func() error) error {
	w, err := newWatcher(files)
	if err != nil {
		return err
	}
	defer w.Close()

	if err := fn(); err != nil {
		return err
	}
	return w.run(ctx, debounce, fn)
}

type watcher struct {
	*fsnotify.Watcher
	files map[string]bool // absolute paths of the watched files
}

// newWatcher watches the directories containing files. Watching the directories instead of the
// files themselves keeps working when an editor replaces a file instead of writing to it.
func newWatcher(files []string) (*watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	w := &watcher{Watcher: fw, files: make(map[string]bool)}
	for _, f := range files {
		abs, err := filepath.Abs(f)
		if err != nil {
			w.Close()
			return nil, err
		}
		w.files[abs] = true
		if err := w.Add(filepath.Dir(abs)); err != nil {
			w.Close()
			return nil, fmt.Errorf("watching %s: %w", f, err)
		}
		logger.Debug("watching %s", abs)
	}
	return w, nil
}

// run calls fn after changes to the watched files settled for the debounce duration.
func (w *watcher) run(ctx context.Context, debounce time.Duration, fn func() error) error {
	var fire <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !w.files[filepath.Clean(ev.Name)] || ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			logger.Debug("%s: %v", ev.Name, ev.Op)
			fire = time.After(debounce)

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error: %v", err)

		case <-fire:
			fire = nil
			if err := fn(); err != nil {
				return err
			}
		}
	}
}
