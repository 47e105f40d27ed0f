package settings

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/lambda-feedback/buildsettings/util/conf"
)

// ResolverParams defines the dependencies for the resolver.
type ResolverParams struct {
	fx.In

	// Config is the resolver configuration
	Config Config

	// Loader reads the settings sources
	Loader Loader

	// Clock provides the build timestamps, defaults to the system clock
	Clock Clock `optional:"true"`

	// Log is the logger to use for the resolver
	Log *zap.Logger `optional:"true"`
}

// Resolver resolves named builds from a base settings source and an
// optional local override source. It holds no mutable state.
type Resolver struct {
	source  string
	baseDir string
	loader  Loader
	clock   Clock
	log     *zap.Logger
}

// Catalog lists the builds known after applying local overrides.
type Catalog struct {
	Builds       []string
	DefaultBuild string
	Localfile    string
}

// layers is the base source with local overrides applied.
type layers struct {
	defaults     map[string]any
	builds       map[string]Profile
	defaultBuild string
	localfile    string
}

// NewResolver creates a new resolver.
func NewResolver(params ResolverParams) (*Resolver, error) {
	if params.Config.Source == "" {
		return nil, errors.New("settings source not configured")
	}

	if params.Loader == nil {
		return nil, errors.New("settings loader not configured")
	}

	clock := params.Clock
	if clock == nil {
		clock = SystemClock
	}

	log := params.Log
	if log == nil {
		log = zap.NewNop()
	}

	baseDir := params.Config.BaseDir
	if baseDir == "" {
		baseDir = filepath.Dir(params.Config.Source)
	}

	return &Resolver{
		source:  params.Config.Source,
		baseDir: baseDir,
		loader:  params.Loader,
		clock:   clock,
		log:     log,
	}, nil
}

// Resolve returns the settings of the named build. An empty buildName
// selects the default build; an empty localfile selects the local
// override source named by the base source, which may be absent.
func (r *Resolver) Resolve(buildName, localfile string) (*Resolved, error) {
	l, err := r.load(localfile)
	if err != nil {
		return nil, err
	}

	name := buildName
	if name == "" {
		name = l.defaultBuild
	}

	if name == "" {
		return nil, errBuildNotSpecified
	}

	profile, ok := l.builds[name]
	if !ok {
		return nil, &BuildNotFoundError{
			Name:      name,
			Available: sortedNames(l.builds),
		}
	}

	sourceDir := r.baseDir
	if l.localfile != "" {
		sourceDir = filepath.Dir(l.localfile)
	}

	now := r.clock.Now()

	values := conf.Overlay(
		map[string]any{
			KeyBuildDate:      BuildDate(now),
			KeyBuildTimestamp: BuildTimestamp(now),
		},
		l.defaults,
		map[string]any(profile),
	)

	r.log.Debug("resolved build",
		zap.String("build", name),
		zap.String("source_dir", sourceDir),
		zap.String("localfile", l.localfile),
		zap.Int("settings", len(values)),
	)

	return &Resolved{
		BuildName: name,
		SourceDir: sourceDir,
		TargetDir: filepath.Join(sourceDir, "build", name),
		Localfile: l.localfile,
		values:    values,
	}, nil
}

// Builds lists the builds available after applying local overrides.
func (r *Resolver) Builds(localfile string) (*Catalog, error) {
	l, err := r.load(localfile)
	if err != nil {
		return nil, err
	}

	return &Catalog{
		Builds:       sortedNames(l.builds),
		DefaultBuild: l.defaultBuild,
		Localfile:    l.localfile,
	}, nil
}

func (r *Resolver) load(localfile string) (*layers, error) {
	log := r.log.With(zap.String("source", r.source))

	log.Debug("loading settings source")

	raw, err := r.loader.Load(r.source)
	if err != nil {
		return nil, fmt.Errorf("load settings source: %w", err)
	}

	src, err := DecodeSource(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", r.source, err)
	}

	l := &layers{
		defaults:     src.Defaults,
		builds:       src.Builds,
		defaultBuild: src.DefaultBuild,
	}

	explicit := localfile != ""

	path := localfile
	if !explicit && src.Localfile != "" {
		path = r.relativeToSource(src.Localfile)
	}

	if path == "" {
		return l, nil
	}

	log = log.With(zap.String("localfile", path), zap.Bool("explicit", explicit))

	rawLocal, err := r.loader.Load(path)
	if err != nil {
		if !explicit && errors.Is(err, ErrMissingResource) {
			log.Debug("local settings not found, skipping")
			return l, nil
		}
		return nil, fmt.Errorf("load local settings: %w", err)
	}

	ovr, err := DecodeOverrides(rawLocal)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	l.defaults = conf.Overlay(l.defaults, ovr.Defaults)
	l.builds = conf.Overlay(l.builds, ovr.Builds)
	if ovr.DefaultBuild != "" {
		l.defaultBuild = ovr.DefaultBuild
	}
	l.localfile = path

	log.Debug("applied local settings",
		zap.Int("defaults", len(ovr.Defaults)),
		zap.Int("builds", len(ovr.Builds)),
	)

	return l, nil
}

// relativeToSource resolves a path named by the base source against the
// directory of the base source.
func (r *Resolver) relativeToSource(path string) string {
	if filepath.IsAbs(path) {
		return path
	}

	return filepath.Join(filepath.Dir(r.source), path)
}

func sortedNames(builds map[string]Profile) []string {
	names := make([]string, 0, len(builds))
	for name := range builds {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
