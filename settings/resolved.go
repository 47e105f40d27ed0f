package settings

import (
	"fmt"
	"sort"

	"github.com/knadh/koanf/maps"

	"github.com/lambda-feedback/buildsettings/util/conf"
)

const (
	KeyBuildName      = "build_name"
	KeyBuildSourceDir = "build_source_dir"
	KeyBuildTargetDir = "build_target_dir"
	KeyLocalfile      = "localfile"
	KeyBuildDate      = "build_date"
	KeyBuildTimestamp = "build_timestamp"
)

// Resolved is the outcome of resolving a build. It is not modified after
// it has been returned by the resolver.
type Resolved struct {
	// BuildName is the name of the selected build.
	BuildName string

	// SourceDir is the directory the build is configured from.
	SourceDir string

	// TargetDir is SourceDir/build/BuildName.
	TargetDir string

	// Localfile is the local override source that was applied, if any.
	Localfile string

	values map[string]any
}

// Get returns the setting stored under key.
func (r *Resolved) Get(key string) (any, bool) {
	v, ok := r.values[key]
	return v, ok
}

// String returns the setting stored under key formatted as a string.
func (r *Resolved) String(key string) string {
	v, ok := r.values[key]
	if !ok || v == nil {
		return ""
	}

	if s, ok := v.(string); ok {
		return s
	}

	return fmt.Sprint(v)
}

// Keys returns the setting names in ascending order.
func (r *Resolved) Keys() []string {
	keys := make([]string, 0, len(r.values))
	for k := range r.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}

// Values returns a copy of the merged settings, without build metadata.
func (r *Resolved) Values() map[string]any {
	return maps.Copy(r.values)
}

// Flatten returns the merged settings together with the build metadata
// as a single namespace. Settings named build_name, build_source_dir or
// build_target_dir replace the metadata of the same name; localfile is
// always the applied local override source, nil when there is none.
func (r *Resolved) Flatten() map[string]any {
	flat := conf.Overlay(
		map[string]any{
			KeyBuildName:      r.BuildName,
			KeyBuildSourceDir: r.SourceDir,
			KeyBuildTargetDir: r.TargetDir,
		},
		r.Values(),
	)

	if r.Localfile != "" {
		flat[KeyLocalfile] = r.Localfile
	} else {
		flat[KeyLocalfile] = nil
	}

	return flat
}
