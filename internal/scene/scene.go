// Package scene loads scene description files: where particle and tracer
// data live, which frame is under analysis, and the scalar properties of
// the recording (frame rate, particle diameter and density).
package scene

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alexlib/postptv/internal/frameio"
	"github.com/alexlib/postptv/internal/ptv"
)

// Config represents a scene description file. Fields are pointers so that
// partial configs are distinguishable from explicit zero values; the Get*
// accessors supply defaults where one exists.
type Config struct {
	ParticleDiameter *float64 `json:"particle_diameter,omitempty"` // meters
	ParticleDensity  *float64 `json:"particle_density,omitempty"`  // kg/m^3

	Frame      *int     `json:"frame,omitempty"`
	FrameRate  *float64 `json:"frame_rate,omitempty"`
	PartFile   *string  `json:"part_file,omitempty"`
	TracerFile *string  `json:"tracer_file,omitempty"`
}

// LoadConfig loads a scene Config from a JSON file.
func LoadConfig(path string) (*Config, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("scene config must have .json extension, got %q", ext)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene config: %w", err)
	}

	cfg := &Config{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse scene config JSON: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scene config: %w", err)
	}
	return cfg, nil
}

// Validate checks that the configuration names everything frame data
// loading needs.
func (c *Config) Validate() error {
	if c.Frame == nil {
		return fmt.Errorf("frame must be set")
	}
	if c.PartFile == nil || *c.PartFile == "" {
		return fmt.Errorf("part_file must be set")
	}
	if c.TracerFile == nil || *c.TracerFile == "" {
		return fmt.Errorf("tracer_file must be set")
	}
	if c.FrameRate != nil && *c.FrameRate <= 0 {
		return fmt.Errorf("frame_rate must be positive, got %f", *c.FrameRate)
	}
	if c.ParticleDiameter != nil && *c.ParticleDiameter <= 0 {
		return fmt.Errorf("particle_diameter must be positive, got %f", *c.ParticleDiameter)
	}
	if c.ParticleDensity != nil && *c.ParticleDensity <= 0 {
		return fmt.Errorf("particle_density must be positive, got %f", *c.ParticleDensity)
	}
	return nil
}

// GetFrameRate returns the frame_rate value or the default.
func (c *Config) GetFrameRate() float64 {
	if c.FrameRate == nil {
		return 1.0
	}
	return *c.FrameRate
}

// GetParticle returns the particle properties described by the config.
func (c *Config) GetParticle() ptv.Particle {
	var p ptv.Particle
	if c.ParticleDiameter != nil {
		p.Diameter = *c.ParticleDiameter
	}
	if c.ParticleDensity != nil {
		p.Density = *c.ParticleDensity
	}
	return p
}

// SegmentTable is a two-layer particle table: the state of every particle
// at the scene's frame, index-aligned with its state at the next frame.
type SegmentTable struct {
	Current []ptv.ParticleState
	Next    []ptv.ParticleState
}

// FrameData is the fully loaded scene: physical constants plus the matched
// path-segment tables for the inertial particles and the tracers.
type FrameData struct {
	Particle  ptv.Particle
	FrameRate float64
	Frame     int

	PartSegments   SegmentTable
	TracerSegments SegmentTable
}

// ReadFrameData loads a scene config and assembles the segment tables for
// both data sets at the configured frame. One extra frame past the target
// is read so the target frame still has path segments.
func ReadFrameData(confPath string) (*FrameData, error) {
	cfg, err := LoadConfig(confPath)
	if err != nil {
		return nil, err
	}

	frame := *cfg.Frame
	frate := cfg.GetFrameRate()

	data := &FrameData{
		Particle:  cfg.GetParticle(),
		FrameRate: frate,
		Frame:     frame,
	}

	for _, set := range []struct {
		file string
		dst  *SegmentTable
	}{
		{*cfg.PartFile, &data.PartSegments},
		{*cfg.TracerFile, &data.TracerSegments},
	} {
		trajects, err := frameio.Trajectories(set.file, frame, frame+1, frate, "")
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", set.file, err)
		}
		set.dst.Current, set.dst.Next = ptv.CollectSegmentsFromTrajectories(trajects, frame)
	}

	return data, nil
}
