package catalog

import (
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// ChangeKind describes the type of file change detected.
type ChangeKind int

const (
	ChangeModified ChangeKind = iota // Skill file created or edited
	ChangeRemoved                    // Skill file deleted
	ChangeManifest                   // catalog.toml created, edited, or deleted
)

// String returns a short label for log output.
func (k ChangeKind) String() string {
	switch k {
	case ChangeModified:
		return "modified"
	case ChangeRemoved:
		return "removed"
	case ChangeManifest:
		return "manifest"
	}
	return "unknown"
}

// Change represents a detected change in the catalog directory.
type Change struct {
	Kind    ChangeKind
	SkillID string // Parsed from the file; empty on removal or parse failure
	File    string // Absolute path
	Err     error  // Parse error for a modified file that no longer loads
}

// Watcher monitors a catalog directory for skill and manifest changes
// using fsnotify. Bursts of events on the same file are debounced.
type Watcher struct {
	Dir     string
	Changes <-chan Change // Read-only external channel

	changes chan Change // Internal write channel
	done    chan struct{}
	watcher *fsnotify.Watcher
	logger  *zap.Logger
}

// debounce is how long a file must stay quiet before its change is emitted.
const debounce = 100 * time.Millisecond

// NewWatcher creates a new watcher for the given catalog directory.
func NewWatcher(dir string, logger *zap.Logger) (*Watcher, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	ch := make(chan Change, 16)
	return &Watcher{
		Dir:     dir,
		Changes: ch,
		changes: ch,
		done:    make(chan struct{}),
		watcher: fw,
		logger:  logger,
	}, nil
}

// Start begins watching the catalog directory and its immediate
// subdirectories.
func (w *Watcher) Start() error {
	if err := w.watcher.Add(w.Dir); err != nil {
		return err
	}
	entries, err := os.ReadDir(w.Dir)
	if err != nil {
		return err
	}
	for _, e := range entries {
		if !e.IsDir() || e.Name()[0] == '.' {
			continue
		}
		if err := w.watcher.Add(filepath.Join(w.Dir, e.Name())); err != nil {
			return err
		}
	}

	go w.loop()
	return nil
}

// Stop closes the watcher and the Changes channel.
func (w *Watcher) Stop() {
	w.watcher.Close()
	<-w.done // Wait for loop to exit
	close(w.changes)
}

func (w *Watcher) loop() {
	defer close(w.done)

	pending := make(map[string]time.Time)
	ticker := time.NewTicker(debounce)
	defer ticker.Stop()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !w.isCatalogFile(event.Name) {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) ||
				event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
				pending[event.Name] = time.Now()
			}

		case now := <-ticker.C:
			for file, t := range pending {
				if now.Sub(t) >= debounce {
					w.emitChange(file)
					delete(pending, file)
				}
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("catalog watch error", zap.Error(err))
		}
	}
}

func (w *Watcher) isCatalogFile(name string) bool {
	base := filepath.Base(name)
	return base == ManifestFile || isSkillFile(base)
}

func (w *Watcher) emitChange(file string) {
	if filepath.Base(file) == ManifestFile {
		w.send(Change{Kind: ChangeManifest, File: file})
		return
	}

	if _, err := os.Stat(file); os.IsNotExist(err) {
		w.send(Change{Kind: ChangeRemoved, File: file})
		return
	}

	s, err := parseSkillFile(file, Defaults{})
	w.send(Change{Kind: ChangeModified, SkillID: s.ID, File: file, Err: err})
}

func (w *Watcher) send(c Change) {
	w.logger.Debug("catalog change",
		zap.Stringer("kind", c.Kind),
		zap.String("file", c.File),
		zap.String("skill", c.SkillID))
	w.changes <- c
}
