package cli

import (
	"strings"

	"github.com/alexshd/extrucal"
	"github.com/spf13/pflag"
)

// globalFlags are never calculation parameters.
var globalFlags = map[string]bool{
	"log-level": true,
	"format":    true,
	"workers":   true,
	"out":       true,
}

// paramsFromFlags collects every numeric flag set on the command line into
// Params, renaming kebab-case flags to the snake_case parameter names
// (--w-flight → w_flight). Flags left at their default are absent, so
// library defaults apply.
func paramsFromFlags(fs *pflag.FlagSet) (extrucal.Params, error) {
	p := extrucal.Params{}
	var err error
	fs.Visit(func(f *pflag.Flag) {
		if err != nil || globalFlags[f.Name] {
			return
		}
		key := strings.ReplaceAll(f.Name, "-", "_")
		switch f.Value.Type() {
		case "float64":
			var v float64
			if v, err = fs.GetFloat64(f.Name); err == nil {
				p[key] = v
			}
		case "int":
			var v int
			if v, err = fs.GetInt(f.Name); err == nil {
				p[key] = v
			}
		}
	})
	return p, err
}

// floatFlags declares float64 flags with zero defaults; only flags the user
// sets reach Params.
func floatFlags(fs *pflag.FlagSet, usage map[string]string) {
	for name, u := range usage {
		fs.Float64(name, 0, u)
	}
}

var screwFlags = map[string]string{
	"size":     "outer screw diameter [mm]",
	"density":  "melt density [kg/m³]",
	"pitch":    "screw pitch [mm] (default: size)",
	"w-flight": "flight width [mm] (default: 10% of size)",
}

var throughputSweepFlags = map[string]string{
	"min-depth":   "shallowest channel depth [mm] (default: 2% of size)",
	"max-depth":   "deepest channel depth [mm] (default: 9% of size)",
	"delta-depth": "channel depth step [mm] (default: 1% of size)",
	"min-rpm":     "lowest screw speed (default: 5, chart 0)",
	"max-rpm":     "highest screw speed (default: 50)",
	"delta-rpm":   "screw speed step (default: 5, chart 1)",
}

var productFlags = map[extrucal.ProductKind]map[string]string{
	extrucal.KindRod: {
		"rod-dia": "rod diameter [mm]",
	},
	extrucal.KindTube: {
		"outer-d": "tube outer diameter [mm]",
		"inner-d": "tube inner diameter [mm]",
	},
	extrucal.KindSheet: {
		"width":     "sheet width [mm]",
		"thickness": "sheet thickness [mm]",
	},
	extrucal.KindCable: {
		"outer-d":   "finished cable diameter [mm]",
		"thickness": "insulation thickness [mm]",
	},
}

var rpmSweepFlags = map[string]string{
	"density-ratio": "melt density / solid density (default: 0.85)",
	"depth-percent": "channel depth as a fraction of extruder size (default: 0.05)",
	"min-size":      "smallest extruder [mm] (default: 20)",
	"max-size":      "largest extruder [mm] (default: 100)",
	"delta-size":    "extruder size step [mm] (default: 20, chart 1)",
}
