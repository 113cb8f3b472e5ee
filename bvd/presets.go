package bvd

// Presets returns the built-in catalog of measured transducers. The
// parameter sets are equivalent-circuit measurements taken near each
// transducer's series resonance.
func Presets() Library {
	return presetLibrary
}

var presetLibrary = Library{entries: map[string]*Transducer{
	"SMBLTD45F40H_1": {
		rs: 21.05, ls: 35.15e-3, cs: 448.62e-12, c0: 4075.69e-12,
		name:         "SMBLTD45F40H_1",
		manufacturer: "STEINER & MARTINS INC., Davenport, USA",
	},
	"GB-4540-4SH": {
		rs: 17.2, ls: 32.52e-3, cs: 464.1e-12, c0: 3.397e-9,
		name:         "GB-4540-4SH",
		manufacturer: "Granbo Ultrasonic, Shenzhen, China",
	},
}}
