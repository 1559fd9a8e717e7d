package traits

import (
	"fmt"
	"log"
	"os"
	"reflect"

	"github.com/fsnotify/fsnotify"
	"gopkg.in/yaml.v3"
)

// Overrides is a YAML document of per-type trait overrides, keyed by
// a human-chosen type name rather than a reflect.Type (the file
// format has no way to name a Go type directly).
type Overrides map[string]ComponentTraits

// LoadOverrides reads and parses a YAML overrides document.
func LoadOverrides(path string) (Overrides, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("traits: read %s: %w", path, err)
	}
	var out Overrides
	if err := yaml.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("traits: parse %s: %w", path, err)
	}
	return out, nil
}

// Apply writes each override into r, resolving its name through
// named. A name in o with no corresponding entry in named is skipped
// rather than treated as an error, since a config file may carry
// entries for component types this process does not register.
func (o Overrides) Apply(r *Registry, named map[string]reflect.Type) {
	for name, t := range o {
		if rt, ok := named[name]; ok {
			r.Set(IDOf(rt), t)
		}
	}
}

// Watcher re-applies an Overrides file to a Registry every time the
// file changes on disk, logging (and otherwise ignoring) reload
// failures so a malformed edit can't take down whatever process is
// holding the Registry.
type Watcher struct {
	watcher *fsnotify.Watcher
	path    string
	named   map[string]reflect.Type
	reg     *Registry
	done    chan struct{}
}

// WatchFile loads path once, applies it to reg, and starts watching
// path for further changes. The caller must call Close when done.
func WatchFile(path string, named map[string]reflect.Type, reg *Registry) (*Watcher, error) {
	overrides, err := LoadOverrides(path)
	if err != nil {
		return nil, err
	}
	overrides.Apply(reg, named)

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("traits: new watcher: %w", err)
	}
	if err := fw.Add(path); err != nil {
		fw.Close()
		return nil, fmt.Errorf("traits: watch %s: %w", path, err)
	}

	w := &Watcher{watcher: fw, path: path, named: named, reg: reg, done: make(chan struct{})}
	go w.loop()
	return w, nil
}

func (w *Watcher) loop() {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			overrides, err := LoadOverrides(w.path)
			if err != nil {
				log.Printf("traits: reload %s failed: %v", w.path, err)
				continue
			}
			overrides.Apply(w.reg, w.named)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("traits: watch %s: %v", w.path, err)
		case <-w.done:
			return
		}
	}
}

// Close stops the watch goroutine and releases the underlying OS
// watch handle.
func (w *Watcher) Close() error {
	close(w.done)
	return w.watcher.Close()
}
