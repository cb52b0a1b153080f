// SPDX-License-Identifier: MPL-2.0

package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// GenerateCUE renders cfg as a config.cue file that passes the schema.
func GenerateCUE(cfg *Config) string {
	var sb strings.Builder

	sb.WriteString("// shipcalc configuration file\n")
	sb.WriteString("// Every value can also be set with a SHIPCALC_* environment variable,\n")
	sb.WriteString("// e.g. " + EnvName("limits.max_weight") + "=50.\n\n")

	sb.WriteString("limits: {\n")
	fmt.Fprintf(&sb, "\tmax_weight:     %s\n", cueNumber(cfg.Limits.MaxWeight))
	fmt.Fprintf(&sb, "\tmax_total_size: %s\n", cueNumber(cfg.Limits.MaxTotalSize))
	sb.WriteString("}\n\n")

	sb.WriteString("pricing: {\n")
	fmt.Fprintf(&sb, "\trate_divisor: %s\n", cueNumber(cfg.Pricing.RateDivisor))
	fmt.Fprintf(&sb, "\tcurrency:     %q\n", cfg.Pricing.Currency)
	sb.WriteString("}\n\n")

	sb.WriteString("session: {\n")
	fmt.Fprintf(&sb, "\ton_reject: %q\n", cfg.Session.OnReject)
	sb.WriteString("}\n\n")

	sb.WriteString("ui: {\n")
	fmt.Fprintf(&sb, "\tcolor_scheme: %q\n", cfg.UI.ColorScheme)
	fmt.Fprintf(&sb, "\tverbose:      %v\n", cfg.UI.Verbose)
	sb.WriteString("}\n")

	return sb.String()
}

// GenerateTOML renders cfg as TOML, mainly for sharing a resolved
// configuration with tools that do not speak CUE.
func GenerateTOML(cfg *Config) (string, error) {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return "", fmt.Errorf("failed to encode config as TOML: %w", err)
	}
	return string(data), nil
}

// cueNumber formats v so CUE reads it back as the same number.
func cueNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
