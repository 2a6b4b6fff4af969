package slideshot

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// DefaultOutputRoot is the directory slide images are written under,
// relative to the working directory, one subdirectory per input file.
const DefaultOutputRoot = "output_images"

// BatchConfig configures a [Batch] run.
//
// Zero values fall back to defaults that reproduce the tool's standard
// behavior: scan the current directory, write under "output_images",
// capture one file at a time.
type BatchConfig struct {
	// SourceDir is the directory scanned for *.html files. Defaults to
	// the current working directory.
	SourceDir string `yaml:"source_dir"`

	// OutputRoot is the directory image subfolders are created under.
	// Defaults to "output_images". Existing files at the derived paths
	// are silently overwritten; the tool keeps no backups.
	OutputRoot string `yaml:"output_root"`

	// Deck controls slide selection and screenshot parameters.
	Deck DeckConfig `yaml:"deck"`

	// Workers is the number of files captured concurrently, each in its
	// own browser tab. Defaults to 1 (strictly sequential). Slide order
	// within a deck is always document order regardless of Workers.
	Workers int `yaml:"workers"`

	// AssemblePDF additionally combines each deck's captured images, in
	// slide order, into <output>/<base>/<base>.pdf.
	AssemblePDF bool `yaml:"assemble_pdf"`

	// Logger receives progress and per-file error reports. The zero
	// value discards all output.
	Logger zerolog.Logger `yaml:"-"`
}

func (c *BatchConfig) defaults() {
	if c.SourceDir == "" {
		c.SourceDir = "."
	}
	if c.OutputRoot == "" {
		c.OutputRoot = DefaultOutputRoot
	}
	if c.Workers <= 0 {
		c.Workers = 1
	}
}

// UnmarshalYAML decodes a deck section. settle_wait accepts Go duration
// strings ("1s", "500ms"); yaml cannot decode those into a time.Duration
// on its own.
func (d *DeckConfig) UnmarshalYAML(value *yaml.Node) error {
	var raw struct {
		Selector   string  `yaml:"selector"`
		SettleWait string  `yaml:"settle_wait"`
		Scale      float64 `yaml:"scale"`
	}
	if err := value.Decode(&raw); err != nil {
		return err
	}
	d.Selector = raw.Selector
	d.Scale = raw.Scale
	if raw.SettleWait != "" {
		wait, err := time.ParseDuration(raw.SettleWait)
		if err != nil {
			return fmt.Errorf("invalid settle_wait %q: %w", raw.SettleWait, err)
		}
		d.SettleWait = wait
	}
	return nil
}

// LoadBatchConfig reads a YAML batch configuration from path.
// Fields absent from the file keep their zero values and are defaulted
// when the batch runs.
func LoadBatchConfig(path string) (*BatchConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("slideshot: reading config %s: %w", path, err)
	}
	var cfg BatchConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("slideshot: parsing config %s: %w", path, err)
	}
	return &cfg, nil
}
