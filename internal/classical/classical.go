// Package classical holds the transliterated vocabulary of the classical
// syllogistic tradition (Mantiq). Diagnostics use it to give every broken
// condition its traditional reading next to the technical one.
package classical

// Letter returns the classical reading of a letter type: quantity
// (kamiyyah) then quality (kayfiyyah), in the traditional order.
func Letter(letter string) string {
	switch letter {
	case "A":
		return "kulliyah mujibah"
	case "E":
		return "kulliyah salibah"
	case "I":
		return "juziyyah mujibah"
	case "O":
		return "juziyyah salibah"
	default:
		return ""
	}
}

// Figure returns the traditional name of a figure.
func Figure(n int) string {
	switch n {
	case 1:
		return "al-shakl al-awwal"
	case 2:
		return "al-shakl al-thani"
	case 3:
		return "al-shakl al-thalith"
	case 4:
		return "al-shakl al-rabi"
	default:
		return ""
	}
}

// roleNames maps proposition and term roles to their classical names.
var roleNames = map[string]string{
	"syllogism":     "qiyas",
	"minor premise": "sughra",
	"major premise": "kubra",
	"conclusion":    "natija",
	"minor term":    "hadd-e-asghar",
	"major term":    "hadd-e-akbar",
	"middle term":   "hadd-e-awsat",
	"term":          "hadd",
}

// Role returns the classical name of a proposition or term role, or the
// empty string for an unknown role.
func Role(role string) string {
	return roleNames[role]
}

// Quantity returns the classical name of a quantity value.
func Quantity(quantity string) string {
	switch quantity {
	case "universal":
		return "kulliyah"
	case "particular":
		return "juziyyah"
	default:
		return ""
	}
}

// Quality returns the classical name of a quality value.
func Quality(quality string) string {
	switch quality {
	case "affirmative":
		return "mujibah"
	case "negative":
		return "salibah"
	default:
		return ""
	}
}

// conditions maps rule identifiers to the classical statement of the
// condition of productivity (shurut al-intaj) the rule enforces.
var conditions = map[string]string{
	"undistributed-middle":         "the hadd-e-awsat must be taken kulliyah (distributed) in at least one premise",
	"illicit-major":                "a hadd-e-akbar that is kulliyah in the natija must be kulliyah in the kubra",
	"illicit-minor":                "a hadd-e-asghar that is kulliyah in the natija must be kulliyah in the sughra",
	"exclusive-premises":           "two salibah premises are 'aqim (sterile): nothing follows from them",
	"quality-mismatch":             "the natija follows the weaker premise in kayfiyyah: one salibah premise demands a salibah natija, and a salibah natija demands a salibah premise",
	"no-universal-premise":         "two juziyyah premises are 'aqim (sterile): at least one premise must be kulliyah",
	"illicit-universal-conclusion": "the natija follows the weaker premise in kamiyyah: a juziyyah premise demands a juziyyah natija",
	"existential-fallacy":          "a juziyyah natija from two kulliyah premises presumes the subject class is occupied, which this import convention does not grant",
}

// Condition returns the classical statement of the productivity condition
// behind a rule identifier, or the empty string for an unknown rule.
func Condition(rule string) string {
	return conditions[rule]
}

// Productive returns the classical name for a productive or sterile
// premise pair.
func Productive(ok bool) string {
	if ok {
		return "muntij"
	}
	return "'aqim"
}
