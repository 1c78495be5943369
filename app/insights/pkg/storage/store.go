package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	jsoniter "github.com/json-iterator/go"

	"github.com/iWorld-y/culture_radar/app/insights/pkg/logger"
	"github.com/iWorld-y/culture_radar/app/insights/pkg/model"
)

// ErrNotFound 品牌或研究不存在
var ErrNotFound = errors.New("not found")

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Catalog 一个品牌及其研究列表
type Catalog struct {
	Brand   string   `json:"brand"`
	Studies []string `json:"studies"`
}

// Store 基于目录的洞察数据仓库，布局为 <dir>/<brand>/<study>.json
type Store struct {
	dir string

	mu      sync.RWMutex
	bundles map[string]map[string]*model.InsightBundle

	watchMu sync.Mutex
	watcher *fsnotify.Watcher
}

// NewStore 打开数据目录并加载全部洞察文件
func NewStore(dir string) (*Store, error) {
	s := &Store{dir: dir}
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// Dir 返回数据目录
func (s *Store) Dir() string { return s.dir }

// Reload 重新扫描数据目录，格式错误的文件跳过并记录警告
func (s *Store) Reload() error {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return fmt.Errorf("failed to read data dir %s: %w", s.dir, err)
	}

	bundles := make(map[string]map[string]*model.InsightBundle)
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		brand := strings.ToLower(e.Name())
		studies, err := loadBrand(filepath.Join(s.dir, e.Name()))
		if err != nil {
			logger.Log.Warnf("skip brand %s: %v", e.Name(), err)
			continue
		}
		if existing, ok := bundles[brand]; ok {
			for k, v := range studies {
				existing[k] = v
			}
			continue
		}
		bundles[brand] = studies
	}

	s.mu.Lock()
	s.bundles = bundles
	s.mu.Unlock()

	logger.Log.Debugf("loaded %d brands from %s", len(bundles), s.dir)
	return nil
}

func loadBrand(dir string) (map[string]*model.InsightBundle, error) {
	files, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	studies := make(map[string]*model.InsightBundle)
	for _, f := range files {
		if f.IsDir() || !strings.EqualFold(filepath.Ext(f.Name()), ".json") {
			continue
		}
		path := filepath.Join(dir, f.Name())
		b, err := LoadBundle(path)
		if err != nil {
			logger.Log.Warnf("skip malformed insight file %s: %v", path, err)
			continue
		}
		if err := b.Validate(); err != nil {
			logger.Log.Warnf("insight file %s has problems: %v", path, err)
		}
		studies[strings.TrimSuffix(f.Name(), filepath.Ext(f.Name()))] = b
	}
	return studies, nil
}

// LoadBundle 解码单个洞察文件
func LoadBundle(path string) (*model.InsightBundle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var b model.InsightBundle
	if err := json.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return &b, nil
}

// Brands 返回排序后的品牌列表
func (s *Store) Brands() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	brands := make([]string, 0, len(s.bundles))
	for b := range s.bundles {
		brands = append(brands, b)
	}
	sort.Strings(brands)
	return brands
}

// Studies 返回品牌下排序后的研究列表
func (s *Store) Studies(brand string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	studies, ok := s.bundles[normalizeBrand(brand)]
	if !ok {
		return nil, fmt.Errorf("brand %q: %w", brand, ErrNotFound)
	}
	out := make([]string, 0, len(studies))
	for name := range studies {
		out = append(out, name)
	}
	sort.Strings(out)
	return out, nil
}

// Catalogs 返回全部品牌及研究
func (s *Store) Catalogs() []Catalog {
	var out []Catalog
	for _, brand := range s.Brands() {
		studies, err := s.Studies(brand)
		if err != nil {
			// 两次读取之间被重新加载
			continue
		}
		out = append(out, Catalog{Brand: brand, Studies: studies})
	}
	return out
}

// Bundle 返回指定品牌/研究的洞察数据
func (s *Store) Bundle(brand, study string) (*model.InsightBundle, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	studies, ok := s.bundles[normalizeBrand(brand)]
	if !ok {
		return nil, fmt.Errorf("brand %q: %w", brand, ErrNotFound)
	}
	b, ok := studies[strings.TrimSpace(study)]
	if !ok {
		return nil, fmt.Errorf("study %q of brand %q: %w", study, brand, ErrNotFound)
	}
	return b, nil
}

// Watch 监听数据目录，文件变化时重新加载，ctx 取消或 Close 后退出
func (s *Store) Watch(ctx context.Context) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := addTree(w, s.dir); err != nil {
		w.Close()
		return err
	}

	s.watchMu.Lock()
	if s.watcher != nil {
		s.watchMu.Unlock()
		w.Close()
		return errors.New("store is already watching")
	}
	s.watcher = w
	s.watchMu.Unlock()

	go s.watchLoop(ctx, w)
	return nil
}

func addTree(w *fsnotify.Watcher, dir string) error {
	if err := w.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("failed to read data dir %s: %w", dir, err)
	}
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		if err := w.Add(filepath.Join(dir, e.Name())); err != nil {
			return fmt.Errorf("failed to watch %s: %w", e.Name(), err)
		}
	}
	return nil
}

func (s *Store) watchLoop(ctx context.Context, w *fsnotify.Watcher) {
	defer func() {
		s.watchMu.Lock()
		if s.watcher == w {
			s.watcher = nil
		}
		s.watchMu.Unlock()
		w.Close()
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-w.Events:
			if !ok {
				return
			}
			if !relevant(ev) {
				continue
			}
			if ev.Has(fsnotify.Create) {
				if fi, err := os.Stat(ev.Name); err == nil && fi.IsDir() {
					if err := w.Add(ev.Name); err != nil {
						logger.Log.Warnf("watch %s: %v", ev.Name, err)
					}
				}
			}
			logger.Log.Infof("data changed (%s), reloading", ev)
			if err := s.Reload(); err != nil {
				logger.Log.Errorf("reload failed: %v", err)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			logger.Log.Warnf("watcher error: %v", err)
		}
	}
}

// relevant 过滤掉 chmod 和非 json 文件的事件
func relevant(ev fsnotify.Event) bool {
	if ev.Op == fsnotify.Chmod {
		return false
	}
	ext := filepath.Ext(ev.Name)
	return ext == "" || strings.EqualFold(ext, ".json")
}

// Close 停止监听
func (s *Store) Close() error {
	s.watchMu.Lock()
	defer s.watchMu.Unlock()

	if s.watcher == nil {
		return nil
	}
	err := s.watcher.Close()
	s.watcher = nil
	return err
}

func normalizeBrand(brand string) string {
	return strings.ToLower(strings.TrimSpace(brand))
}
