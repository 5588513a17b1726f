package common

// Texturing mode names shared by the YAML configuration and the renderer.
const (
	TexturingAddition           = "addition"
	TexturingSubtraction        = "subtraction"
	TexturingReverseSubtraction = "reverse_subtraction"
	TexturingModulation         = "modulation"
	TexturingDecaling           = "decaling"
)

// TexturingModes lists the names in shader order: TEXTURING_MODE_* n is
// TexturingModes[n].
var TexturingModes = [...]string{
	TexturingAddition,
	TexturingSubtraction,
	TexturingReverseSubtraction,
	TexturingModulation,
	TexturingDecaling,
}

func IsTexturingMode(name string) bool {
	for _, m := range TexturingModes {
		if m == name {
			return true
		}
	}
	return false
}
