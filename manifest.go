// SPDX-License-Identifier: EPL-2.0

package sfx

import (
	"errors"
	"fmt"
	"io"
	"maps"
	"math"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Manifest describes a set of sounds in YAML:
//
//	volume: 0.5
//	sounds:
//	  click: sounds/click.wav
//	samples:
//	  click:
//	    - {start: 0, duration: 0.25}
//
// Sample offsets are seconds.
type Manifest struct {
	Volume  *float64                    `yaml:"volume,omitempty"`
	Sounds  map[string]string           `yaml:"sounds"`
	Samples map[string][]ManifestSample `yaml:"samples,omitempty"`
}

type ManifestSample struct {
	Start    float64 `yaml:"start"`
	Duration float64 `yaml:"duration"`
}

// LoadManifest decodes and validates a manifest. Unknown keys are errors.
func LoadManifest(r io.Reader) (*Manifest, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var m Manifest
	if err := dec.Decode(&m); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidManifest)
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidManifest, err)
	}

	if err := m.Validate(); err != nil {
		return nil, err
	}

	return &m, nil
}

// ReadManifestFile loads the manifest at path. Relative file locations are
// resolved against the manifest's directory; URLs are kept as they are.
func ReadManifestFile(path string) (*Manifest, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := LoadManifest(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	dir := filepath.Dir(path)
	for id, location := range m.Sounds {
		if strings.Contains(location, "://") || filepath.IsAbs(location) {
			continue
		}
		m.Sounds[id] = filepath.Join(dir, location)
	}

	return m, nil
}

// Validate checks locations, sample ranges and the volume, and that every
// sample collection belongs to a known sound.
func (m *Manifest) Validate() error {
	if m.Volume != nil {
		v := *m.Volume
		if math.IsNaN(v) || v < 0 || v > 1 {
			return fmt.Errorf("%w: volume %v outside [0, 1]", ErrInvalidManifest, v)
		}
	}

	if len(m.Sounds) == 0 {
		return fmt.Errorf("%w: no sounds", ErrInvalidManifest)
	}

	for _, id := range slices.Sorted(maps.Keys(m.Sounds)) {
		if strings.TrimSpace(m.Sounds[id]) == "" {
			return fmt.Errorf("%w: sound %q has no location", ErrInvalidManifest, id)
		}
	}

	for _, id := range slices.Sorted(maps.Keys(m.Samples)) {
		if _, ok := m.Sounds[id]; !ok {
			return fmt.Errorf("%w: samples for unknown sound %q", ErrInvalidManifest, id)
		}
		for i, s := range m.Samples[id] {
			if !representable(s.Start) || !representable(s.Duration) {
				return fmt.Errorf("%w: sample %d of %q is not a finite number of seconds", ErrInvalidManifest, i, id)
			}
			if s.Start < 0 {
				return fmt.Errorf("%w: sample %d of %q starts before zero", ErrInvalidManifest, i, id)
			}
			if s.Duration <= 0 {
				return fmt.Errorf("%w: sample %d of %q has no duration", ErrInvalidManifest, i, id)
			}
		}
	}

	return nil
}

// maxSeconds is the longest offset a time.Duration can hold.
const maxSeconds = math.MaxInt64 / float64(time.Second)

// representable reports whether secs converts to a time.Duration without
// overflow.
func representable(secs float64) bool {
	return !math.IsNaN(secs) && !math.IsInf(secs, 0) && math.Abs(secs) < maxSeconds
}

// Registry returns the sound locations as a Registry.
func (m *Manifest) Registry() Registry {
	return Registry(maps.Clone(m.Sounds))
}

// Collections converts the sample sections to Samples.
func (m *Manifest) Collections() map[string][]Sample {
	out := make(map[string][]Sample, len(m.Samples))
	for id, list := range m.Samples {
		samples := make([]Sample, len(list))
		for i, s := range list {
			samples[i] = SampleAt(s.Start, s.Duration)
		}
		out[id] = samples
	}
	return out
}

// Apply creates a manager on ctx with the manifest's sounds, volume and
// sample collections. Options given here are applied after the manifest's
// volume.
func (m *Manifest) Apply(ctx *Context, opts ...Option) *Manager {
	if m.Volume != nil {
		opts = append([]Option{WithVolume(*m.Volume)}, opts...)
	}

	mgr := New(ctx, m.Registry(), opts...)
	for id, samples := range m.Collections() {
		mgr.RegisterSampleCollection(id, samples)
	}

	return mgr
}
