package viceverser

// Form is an inflected form produced by a Model, with its full analysis.
type Form struct {
	Surface string
	Morph   string
}

// inflect applies the rules of m to base and returns the produced forms,
// each analysed with st:<base>. Rules stripping more than base holds are
// skipped.
func (m *Model) inflect(base string) []Form {
	runes := []rune(base)
	var forms []Form
	seen := make(map[Form]bool)
	for _, r := range m.Rules {
		if r.Strip > len(runes) {
			continue
		}
		surface := string(runes[:len(runes)-r.Strip]) + r.Append
		if surface == "" {
			continue
		}
		morph := "st:" + base
		if r.Morph != "" {
			morph += " " + r.Morph
		}
		f := Form{Surface: surface, Morph: morph}
		if !seen[f] {
			seen[f] = true
			forms = append(forms, f)
		}
	}
	return forms
}
