package config

import (
	"fmt"
	"os"

	"github.com/route-assist/app/models"
	"gopkg.in/yaml.v3"
)

// PipelineCfg tunes the batch preparation step.
type PipelineCfg struct {
	// SubtotalMarker excludes the aggregate rows the carrier export mixes
	// into the data: any row whose address starts with this literal.
	SubtotalMarker string `yaml:"subtotal_marker" json:"subtotal_marker"`
}

// OCRCfg tunes the label reader.
type OCRCfg struct {
	Language      string    `yaml:"language" json:"language"`
	CropFractions []float64 `yaml:"crop_fractions" json:"crop_fractions"`
}

// AppCfg is the domain configuration: the route name table and the two
// knob groups. Server-level settings (port, paths, endpoints) live in viper.
type AppCfg struct {
	RouteNames models.RouteNames `yaml:"route_names" json:"route_names"`
	Pipeline   PipelineCfg       `yaml:"pipeline" json:"pipeline"`
	OCR        OCRCfg            `yaml:"ocr" json:"ocr"`
}

var C AppCfg

// Load fills C with defaults, overlays the yaml file at path when it exists,
// then applies env overrides. A missing file is not an error; an unreadable
// or malformed one is.
func Load(path string) error {
	C = defaults()

	b, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("read config: %w", err)
		}
	} else if err := yaml.Unmarshal(b, &C); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}

	// ENV overrides
	if lang := os.Getenv("OCR_LANGUAGE"); lang != "" {
		C.OCR.Language = lang
	}
	if marker := os.Getenv("SUBTOTAL_MARKER"); marker != "" {
		C.Pipeline.SubtotalMarker = marker
	}
	return nil
}

// defaults returns the built-in configuration: the Bordeaux route table and
// the markers of the carrier's export format. Id 4 is reserved and keeps
// the placeholder name, which excludes it from the selector.
func defaults() AppCfg {
	return AppCfg{
		RouteNames: models.RouteNames{
			"1":  "intersport",
			"2":  "monoprix",
			"3":  "grand theatre",
			"4":  models.PlaceholderName,
			"5":  "chartron",
			"6":  "GRAND PARC",
			"7":  "VERDUN",
			"8":  "AUCHAN LAC - 1",
			"9":  "QUAI DE BACALAN",
			"10": "AUCHAN LAC - 2",
			"11": "BACALAN ZONE",
			"13": "CAUDERAN - 1",
			"14": "CAUDERAN - 2",
			"15": "HOPITAL",
			"16": "MERIADEK",
			"17": "ST GENES",
			"18": "FONDUDAUGE",
			"19": "LA GARE - 1",
			"20": "LA GARE - 2",
		},
		Pipeline: PipelineCfg{
			SubtotalMarker: "Total pour",
		},
		OCR: OCRCfg{
			Language:      "fr",
			CropFractions: []float64{0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9, 1.0},
		},
	}
}
