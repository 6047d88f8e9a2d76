package theme

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sync"
	"time"
)

// Conventional names inside a theme directory.
const (
	DescriptorFile = "theme.json"
	ConfigFile     = "config.json"
	AssetsDir      = "assets"
	TemplatesDir   = "templates"
)

// Theme configuration is memoized under a fixed cache key. The key is
// deliberately not scoped by theme id: the registry assumes one theme
// per process lifetime, so switching themes within the TTL window
// serves the previous theme's cached configuration.
const (
	ConfigCacheKey   = "theme.config"
	DefaultConfigTTL = 24 * time.Hour
)

// ConfigPrefix is prepended to every top-level config.json key before
// it is written into the global configuration namespace.
const ConfigPrefix = "theme."

// ErrAlreadyActivated is returned by Activate when a theme is already
// current for this registry instance.
var ErrAlreadyActivated = errors.New("theme already activated")

// ParseError reports a theme file that exists but is not valid JSON.
// A missing file is never a ParseError; the two conditions stay
// distinct so a corrupt theme is not mistaken for an absent one.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Descriptor is a theme's parsed theme.json. No schema is enforced;
// the accessors below read the conventional fields and return "" when
// a field is missing or not a string.
type Descriptor map[string]any

func (d Descriptor) str(key string) string {
	if v, ok := d[key].(string); ok {
		return v
	}
	return ""
}

func (d Descriptor) Name() string    { return d.str("name") }
func (d Descriptor) Version() string { return d.str("version") }
func (d Descriptor) Author() string  { return d.str("author") }

// ViewFinder is the consumed surface of the view engine: registering a
// directory as the highest-priority template search root.
type ViewFinder interface {
	Prepend(dir string)
}

// ConfigWriter is the consumed surface of the global configuration
// namespace. Keys are dotted; last write wins.
type ConfigWriter interface {
	Set(key string, value any)
}

// Cache memoizes the theme configuration document. Remember returns
// the cached document if one is stored and unexpired, otherwise it
// invokes fill and stores the result for ttl. A nil document from fill
// is a valid cached state, not a bypass signal.
type Cache interface {
	Remember(key string, ttl time.Duration, fill func() (map[string]any, error)) (map[string]any, error)
}

// Options configure a Registry. Both roots are fixed for the life of
// the registry.
type Options struct {
	// ThemesRoot holds one subdirectory per installed theme.
	ThemesRoot string
	// PublicRoot is the web-servable directory asset links are placed in.
	PublicRoot string
	// ConfigTTL is the cache validity for config.json reads.
	// DefaultConfigTTL when zero.
	ConfigTTL time.Duration
	// Filesystem defaults to the real OS filesystem when nil.
	Filesystem Filesystem
}

// Registry tracks the single active theme of the process. Activation
// is write-once: constructed with no current theme, assigned at most
// once by Activate. Construct one Registry at bootstrap and hand it to
// consumers; it is not a hidden global.
type Registry struct {
	fs    Filesystem
	views ViewFinder
	conf  ConfigWriter
	cache Cache

	themesRoot string
	publicRoot string
	ttl        time.Duration

	mu      sync.Mutex
	current string
}

// NewRegistry wires a Registry to its collaborators.
func NewRegistry(views ViewFinder, conf ConfigWriter, cache Cache, opts Options) *Registry {
	fsys := opts.Filesystem
	if fsys == nil {
		fsys = OSFilesystem{}
	}
	ttl := opts.ConfigTTL
	if ttl <= 0 {
		ttl = DefaultConfigTTL
	}
	return &Registry{
		fs:         fsys,
		views:      views,
		conf:       conf,
		cache:      cache,
		themesRoot: opts.ThemesRoot,
		publicRoot: opts.PublicRoot,
		ttl:        ttl,
	}
}

// Activate makes id the current theme. It registers the theme's
// template directory as the highest-priority view search root, merges
// the theme configuration into the global namespace under "theme.",
// and publishes the theme's assets under the public root. A second
// call returns ErrAlreadyActivated without mutating anything.
func (r *Registry) Activate(id string) error {
	if id == "" {
		return errors.New("theme: empty theme id")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.current != "" {
		return fmt.Errorf("%w: %q is current", ErrAlreadyActivated, r.current)
	}
	r.current = id

	r.views.Prepend(filepath.Join(r.themesRoot, id, TemplatesDir))
	if err := r.loadConfig(id); err != nil {
		return err
	}
	return r.ensureAssetsLink(id)
}

// Current returns the active theme id, if one has been activated.
func (r *Registry) Current() (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current, r.current != ""
}

// HasActive reports whether a theme has been activated.
func (r *Registry) HasActive() bool {
	_, ok := r.Current()
	return ok
}

// Path resolves <themesRoot>/<id>/<sub>. An empty id substitutes the
// current theme; with no current theme either, ok is false and no path
// is built. Path never touches the filesystem.
func (r *Registry) Path(id, sub string) (string, bool) {
	id = r.orCurrent(id)
	if id == "" {
		return "", false
	}
	return filepath.Join(r.themesRoot, id, sub), true
}

// PublicPath is Path for the web-servable mirror of the theme assets.
func (r *Registry) PublicPath(id, sub string) (string, bool) {
	id = r.orCurrent(id)
	if id == "" {
		return "", false
	}
	return filepath.Join(r.publicRoot, id, sub), true
}

func (r *Registry) orCurrent(id string) string {
	if id != "" {
		return id
	}
	cur, _ := r.Current()
	return cur
}

// List enumerates installed theme ids: the basenames of the immediate
// subdirectories of the themes root, in directory order.
func (r *Registry) List() ([]string, error) {
	dirs, err := r.fs.ListDirs(r.themesRoot)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(dirs))
	for _, d := range dirs {
		ids = append(ids, filepath.Base(d))
	}
	return ids, nil
}

// Describe reads and parses a theme's theme.json. A missing file (or,
// with an empty id, no current theme) yields a nil Descriptor and nil
// error. A file that fails to decode yields a *ParseError.
func (r *Registry) Describe(id string) (Descriptor, error) {
	p, ok := r.Path(id, DescriptorFile)
	if !ok {
		return nil, nil
	}
	data, err := r.fs.ReadFile(p)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var d Descriptor
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, &ParseError{Path: p, Err: err}
	}
	return d, nil
}

// DescribeAll maps every installed theme id to its descriptor, with a
// nil entry for themes that have none. A malformed descriptor aborts
// with a *ParseError rather than being substituted with nil.
func (r *Registry) DescribeAll() (map[string]Descriptor, error) {
	ids, err := r.List()
	if err != nil {
		return nil, err
	}
	all := make(map[string]Descriptor, len(ids))
	for _, id := range ids {
		d, err := r.Describe(id)
		if err != nil {
			return nil, err
		}
		all[id] = d
	}
	return all, nil
}

// Remove deletes a theme's published assets and then its source
// directory. A theme directory without a descriptor is treated as not
// installed: nothing is deleted. A failure after the assets are gone
// propagates so the partial state stays visible to the caller.
func (r *Registry) Remove(id string) error {
	if id == "" {
		return errors.New("theme: empty theme id")
	}
	d, err := r.Describe(id)
	if err != nil {
		return err
	}
	if d == nil {
		return nil
	}
	if err := r.fs.RemoveAll(filepath.Join(r.publicRoot, id)); err != nil {
		return err
	}
	return r.fs.RemoveAll(filepath.Join(r.themesRoot, id))
}

// loadConfig merges the theme's config.json into the global namespace
// under the "theme." prefix. The read is memoized under the fixed
// cache key; a missing or empty file contributes no entries and the
// absence itself is cached for the TTL.
func (r *Registry) loadConfig(id string) error {
	path := filepath.Join(r.themesRoot, id, ConfigFile)
	doc, err := r.cache.Remember(ConfigCacheKey, r.ttl, func() (map[string]any, error) {
		data, err := r.fs.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		if err != nil {
			return nil, err
		}
		var m map[string]any
		if err := json.Unmarshal(data, &m); err != nil {
			return nil, &ParseError{Path: path, Err: err}
		}
		return m, nil
	})
	if err != nil {
		return err
	}
	for k, v := range doc {
		r.conf.Set(ConfigPrefix+k, v)
	}
	return nil
}

// ensureAssetsLink publishes <theme>/assets under the public root. The
// only idempotence check is entry existence at the public path; an
// existing entry is left alone even when it is not a link to the
// current source. A theme without an assets directory publishes
// nothing, which is not an error.
func (r *Registry) ensureAssetsLink(id string) error {
	pub := filepath.Join(r.publicRoot, id)
	if r.fs.Exists(pub) {
		return nil
	}
	src := filepath.Join(r.themesRoot, id, AssetsDir)
	if !r.fs.Exists(src) {
		return nil
	}
	return r.fs.Symlink(src, pub)
}
