package config

// Presets are ready-made spacings for common regimes: "dense" packs the
// emitters deep inside a wavelength, "subwavelength" sits at the default
// spacing, "dilute" separates them by a full wavelength.
var Presets = map[string]map[string]*Config{
	"chain-orthogonal": {
		"dense":         {Shape: "chain-orthogonal", A: 0.05, N: 10, MaxN: 40},
		"subwavelength": {Shape: "chain-orthogonal", A: 0.2, N: 10, MaxN: 20},
		"dilute":        {Shape: "chain-orthogonal", A: 1.0, N: 10, MaxN: 20},
	},
	"chain": {
		"magic-angle": {Shape: "chain", A: 0.2, Theta: 0.9553166181245093, N: 10, MaxN: 20},
		"axial":       {Shape: "chain", A: 0.2, Theta: 1.5707963267948966, N: 10, MaxN: 20},
	},
	"square-lattice": {
		"dense":         {Shape: "square-lattice", A: 0.05, N: 8, MaxN: 16},
		"subwavelength": {Shape: "square-lattice", A: 0.2, N: 8, MaxN: 16},
	},
	"hexagonal-lattice": {
		"dense":         {Shape: "hexagonal-lattice", A: 0.05, N: 8, MaxN: 16},
		"subwavelength": {Shape: "hexagonal-lattice", A: 0.2, N: 8, MaxN: 16},
	},
	"cubic-lattice": {
		"subwavelength": {Shape: "cubic-lattice", A: 0.2, N: 5, MaxN: 10},
	},
	"tetragonal-lattice": {
		"layered": {Shape: "tetragonal-lattice", A: 0.2, B: 0.5, N: 5, MaxN: 10},
	},
	"hexagonal-lattice-3d": {
		"layered": {Shape: "hexagonal-lattice-3d", A: 0.2, B: 0.5, N: 4, MaxN: 8},
	},
	"triangle": {
		"tight": {Shape: "triangle", A: 0.1},
		"loose": {Shape: "triangle", A: 0.5},
	},
	"polygon": {
		"ring12": {Shape: "polygon", A: 0.2, Vertices: 12},
		"ring24": {Shape: "polygon", A: 0.1, Vertices: 24},
	},
	"cube": {
		"tight": {Shape: "cube", A: 0.1},
	},
}

func GetPreset(shape, preset string) *Config {
	shapePresets, ok := Presets[shape]
	if !ok {
		return nil
	}
	cfg, ok := shapePresets[preset]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets(shape string) []string {
	shapePresets, ok := Presets[shape]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(shapePresets))
	for name := range shapePresets {
		names = append(names, name)
	}
	return names
}
