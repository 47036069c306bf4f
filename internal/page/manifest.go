package page

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/ziadkadry99/folio/internal/animate"
	"github.com/ziadkadry99/folio/internal/splash"
	"github.com/ziadkadry99/folio/internal/theme"
)

// Outcome is what happened to one section during a build.
type Outcome string

const (
	OutcomeRendered Outcome = "rendered"
	OutcomeSkipped  Outcome = "skipped"
)

// SectionResult records one section's outcome.
type SectionResult struct {
	Name       string  `json:"name"`
	Outcome    Outcome `json:"outcome"`
	Containers int     `json:"containers"`
}

// Manifest describes a finished build.
type Manifest struct {
	BuildID    string            `json:"build_id"`
	BuiltAt    time.Time         `json:"built_at"`
	Width      int               `json:"width"`
	Device     theme.DeviceClass `json:"device"`
	Settled    bool              `json:"settled"`
	Sections   []SectionResult   `json:"sections"`
	Loader     bool              `json:"loader"`
	CTA        bool              `json:"cta"`
	Hero       string            `json:"hero"`
	Animations animate.Bound     `json:"animations"`

	hero   *theme.Controller
	splash *splash.Splash
}

// Controller returns the page's hero controller. It keeps handling resizes
// after the build.
func (m *Manifest) Controller() *theme.Controller { return m.hero }

// Splash returns the loader left running on the page, or nil when the page
// has no loader or the build settled it.
func (m *Manifest) Splash() *splash.Splash { return m.splash }

// Rendered returns the number of sections that rendered at least one
// container.
func (m *Manifest) Rendered() int {
	n := 0
	for _, s := range m.Sections {
		if s.Outcome == OutcomeRendered {
			n++
		}
	}
	return n
}

// Section returns the result for name.
func (m *Manifest) Section(name string) (SectionResult, bool) {
	for _, s := range m.Sections {
		if s.Name == name {
			return s, true
		}
	}
	return SectionResult{}, false
}

// WriteFile writes the manifest as indented JSON.
func (m *Manifest) WriteFile(path string) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling manifest: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("writing manifest: %w", err)
	}
	return nil
}
