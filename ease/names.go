package ease

// byName maps declarative curve names (as used in animation content files)
// to their Method. Discrete curves are parameterized and handled separately
var byName = map[string]Method{
	"linear":         Linear,
	"quad_in":        QuadIn,
	"quad_out":       QuadOut,
	"quad_in_out":    QuadInOut,
	"cubic_in":       CubicIn,
	"cubic_out":      CubicOut,
	"cubic_in_out":   CubicInOut,
	"quart_in":       QuartIn,
	"quart_out":      QuartOut,
	"quart_in_out":   QuartInOut,
	"quint_in":       QuintIn,
	"quint_out":      QuintOut,
	"quint_in_out":   QuintInOut,
	"sine_in":        SineIn,
	"sine_out":       SineOut,
	"sine_in_out":    SineInOut,
	"circ_in":        CircIn,
	"circ_out":       CircOut,
	"circ_in_out":    CircInOut,
	"expo_in":        ExpoIn,
	"expo_out":       ExpoOut,
	"expo_in_out":    ExpoInOut,
	"elastic_in":     ElasticIn,
	"elastic_out":    ElasticOut,
	"elastic_in_out": ElasticInOut,
	"back_in":        BackIn,
	"back_out":       BackOut,
	"back_in_out":    BackInOut,
	"bounce_in":      BounceIn,
	"bounce_out":     BounceOut,
	"bounce_in_out":  BounceInOut,
}

// ByName returns the named curve, or false if the name is unknown
func ByName(name string) (Method, bool) {
	m, ok := byName[name]
	return m, ok
}

// Names returns all registered curve names (unordered)
func Names() []string {
	names := make([]string, 0, len(byName))
	for n := range byName {
		names = append(names, n)
	}
	return names
}
