package config

import (
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	json "github.com/goccy/go-json"

	"github.com/Didieffe-Ecommerce/didieffe-storefront-backend/cache/search_cache"
	"github.com/Didieffe-Ecommerce/didieffe-storefront-backend/models"
)

var Catalog *CatalogStore

// CatalogSnapshot is one immutable view of the catalog and its filter
// declarations. The search pipeline only ever sees snapshots; a reload swaps
// in a new one and bumps the version, it never mutates a published snapshot.
type CatalogSnapshot struct {
	Version    uint64
	Products   []models.Product
	Filters    []models.FilterDefinition
	Categories []models.CategoryDefinition
}

// CatalogStore loads the admin-written JSON files and republishes them when
// the admin backend rewrites them.
type CatalogStore struct {
	catalogPath string
	filtersPath string

	mu      sync.RWMutex
	snap    *CatalogSnapshot
	watcher *fsnotify.Watcher
}

// InitCatalog loads the catalog and filter files and starts the file
// watcher. A broken file at startup is fatal; a broken rewrite while
// serving keeps the last good snapshot.
func InitCatalog() {
	store := &CatalogStore{
		catalogPath: getEnv("CATALOG_PATH", "./data/catalogo.json"),
		filtersPath: getEnv("FILTERS_PATH", "./data/filtri.json"),
	}

	if err := store.reload(); err != nil {
		log.Fatalf("❌ Failed to load catalog: %v", err)
	}
	if err := store.watch(); err != nil {
		log.Printf("⚠️ Catalog watcher unavailable, hot reload disabled: %v", err)
	}

	Catalog = store
	snap := store.Snapshot()
	log.Printf("✅ Catalog loaded: %d products, %d filters, %d categories",
		len(snap.Products), len(snap.Filters), len(snap.Categories))
}

// Snapshot returns the current immutable catalog view.
func (s *CatalogStore) Snapshot() *CatalogSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap
}

func (s *CatalogStore) reload() error {
	catalogRaw, err := os.ReadFile(s.catalogPath)
	if err != nil {
		return err
	}
	var products []models.Product
	if err := json.Unmarshal(catalogRaw, &products); err != nil {
		return err
	}

	filtersRaw, err := os.ReadFile(s.filtersPath)
	if err != nil {
		return err
	}
	var cfg models.FilterConfig
	if err := json.Unmarshal(filtersRaw, &cfg); err != nil {
		return err
	}

	s.mu.Lock()
	version := uint64(1)
	if s.snap != nil {
		version = s.snap.Version + 1
	}
	s.snap = &CatalogSnapshot{
		Version:    version,
		Products:   products,
		Filters:    cfg.Filters,
		Categories: cfg.Categories,
	}
	s.mu.Unlock()
	return nil
}

// watch republishes the snapshot when either file changes. Admin saves
// often arrive as multiple write events, so reloads are debounced.
func (s *CatalogStore) watch() error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	s.watcher = watcher

	dirs := map[string]bool{}
	for _, p := range []string{s.catalogPath, s.filtersPath} {
		dirs[filepath.Dir(p)] = true
	}
	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			watcher.Close()
			return err
		}
	}

	watched := map[string]bool{
		filepath.Clean(s.catalogPath): true,
		filepath.Clean(s.filtersPath): true,
	}

	go func() {
		var pending *time.Timer
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if !watched[filepath.Clean(event.Name)] {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
					continue
				}
				if pending != nil {
					pending.Stop()
				}
				pending = time.AfterFunc(200*time.Millisecond, func() {
					if err := s.reload(); err != nil {
						log.Printf("⚠️ Catalog reload failed, keeping previous snapshot: %v", err)
						return
					}
					search_cache.Flush()
					snap := s.Snapshot()
					log.Printf("✅ Catalog reloaded (version %d): %d products", snap.Version, len(snap.Products))
				})
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Printf("⚠️ Catalog watcher error: %v", err)
			}
		}
	}()
	return nil
}

// Close stops the file watcher.
func (s *CatalogStore) Close() {
	if s.watcher != nil {
		_ = s.watcher.Close()
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
