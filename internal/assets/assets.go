// Package assets loads the versioned shader manifest and the shader sources
// it references. The default set is embedded; any fs.FS laid out the same
// way can replace it.
package assets

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"

	"github.com/kjkrol/gomesh/pkg/gfx"
)

const (
	ManifestName  = "manifest.yaml"
	SchemaVersion = 1
)

//go:embed shaders
var embedded embed.FS

var ErrMissingStage = errors.New("manifest has no shader for stage")

// Entry is one versioned shader asset.
type Entry struct {
	Name     string `yaml:"name"`
	Stage    string `yaml:"stage"`
	Revision int    `yaml:"revision"`
	Path     string `yaml:"path"`
}

type Manifest struct {
	Schema  int     `yaml:"schema"`
	Program string  `yaml:"program"`
	Shaders []Entry `yaml:"shaders"`
}

// Bundle is a decoded manifest together with the shader texts it names.
type Bundle struct {
	Manifest Manifest
	sources  map[gfx.Stage]gfx.ShaderSource
}

// Embedded returns the shader set compiled into the binary.
func Embedded() fs.FS {
	sub, err := fs.Sub(embedded, "shaders")
	if err != nil {
		panic(err)
	}
	return sub
}

// Load reads ManifestName from fsys and every shader file it references.
func Load(fsys fs.FS) (*Bundle, error) {
	data, err := fs.ReadFile(fsys, ManifestName)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	var manifest Manifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("decode manifest: %w", err)
	}
	if manifest.Schema != SchemaVersion {
		return nil, fmt.Errorf("unsupported manifest schema %d (want %d)", manifest.Schema, SchemaVersion)
	}

	bundle := &Bundle{
		Manifest: manifest,
		sources:  make(map[gfx.Stage]gfx.ShaderSource, len(manifest.Shaders)),
	}
	for _, entry := range manifest.Shaders {
		stage, err := gfx.ParseStage(entry.Stage)
		if err != nil {
			return nil, fmt.Errorf("shader %q: %w", entry.Name, err)
		}
		if _, dup := bundle.sources[stage]; dup {
			return nil, fmt.Errorf("shader %q: duplicate %s stage", entry.Name, stage)
		}
		text, err := fs.ReadFile(fsys, entry.Path)
		if err != nil {
			return nil, fmt.Errorf("shader %q: %w", entry.Name, err)
		}
		if len(text) == 0 {
			return nil, fmt.Errorf("shader %q: %w", entry.Name, gfx.ErrEmptySource)
		}
		bundle.sources[stage] = gfx.ShaderSource{Stage: stage, Text: string(text)}
	}
	return bundle, nil
}

// Source returns the shader text registered for stage.
func (b *Bundle) Source(stage gfx.Stage) (gfx.ShaderSource, error) {
	src, ok := b.sources[stage]
	if !ok {
		return gfx.ShaderSource{}, fmt.Errorf("%w %s", ErrMissingStage, stage)
	}
	return src, nil
}
