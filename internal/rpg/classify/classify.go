package classify

import "strings"

// Category is the semantic bucket an exercise falls into, used by the
// class bonus rules.
type Category string

const (
	Compound    Category = "compound"
	Strength    Category = "strength"
	Bodyweight  Category = "bodyweight"
	Cardio      Category = "cardio"
	Flexibility Category = "flexibility"
	Recovery    Category = "recovery"
)

var Categories = []Category{
	Compound, Strength, Bodyweight, Cardio, Flexibility, Recovery,
}

// typeToCategory maps known exercise types straight to a category.
var typeToCategory = map[string]Category{
	"barbell":       Compound,
	"olympic":       Compound,
	"powerlifting":  Compound,
	"machine":       Strength,
	"dumbbell":      Strength,
	"cable":         Strength,
	"kettlebell":    Strength,
	"calisthenics":  Bodyweight,
	"bodyweight":    Bodyweight,
	"plyometrics":   Bodyweight,
	"cardio":        Cardio,
	"conditioning":  Cardio,
	"hiit":          Cardio,
	"stretching":    Flexibility,
	"yoga":          Flexibility,
	"mobility":      Flexibility,
	"foam rolling":  Recovery,
	"recovery":      Recovery,
	"physiotherapy": Recovery,
}

// keyword fallback, checked in this order; first category with a
// matching keyword wins
var keywordOrder = []Category{Compound, Bodyweight, Cardio, Flexibility, Recovery}

var categoryKeywords = map[Category][]string{
	Compound: {
		"agachamento", "squat",
		"levantamento terra", "deadlift",
		"supino", "bench press",
		"desenvolvimento militar", "overhead press",
		"remada curvada", "barbell row",
		"clean", "snatch", "thruster",
	},
	Bodyweight: {
		"flexao", "push up", "push-up",
		"barra fixa", "pull up", "pull-up", "chin up",
		"paralelas", "dip",
		"prancha", "plank",
		"burpee", "afundo", "lunge", "pistol",
	},
	Cardio: {
		"corrida", "run", "sprint",
		"bike", "bicicleta", "ciclismo", "spinning",
		"natacao", "swim",
		"remo ergometro", "rowing",
		"esteira", "treadmill", "eliptico",
		"pular corda", "jump rope", "hiit",
	},
	Flexibility: {
		"alongamento", "stretch",
		"yoga", "pilates", "mobilidade", "mobility",
	},
	Recovery: {
		"liberacao miofascial", "foam roll",
		"massagem", "massage",
		"caminhada leve", "recovery", "regenerativo",
	},
}

// Classify maps an exercise to its category. Resolution: exact type
// table first, then keyword match on the name, then Strength as the
// default. It never fails.
func Classify(exerciseType, name string) Category {
	if cat, ok := typeToCategory[fold(exerciseType)]; ok {
		return cat
	}

	foldedName := fold(name)
	for _, cat := range keywordOrder {
		for _, kw := range categoryKeywords[cat] {
			if strings.Contains(foldedName, kw) {
				return cat
			}
		}
	}

	return Strength
}

var diacriticsReplacer = strings.NewReplacer(
	"á", "a", "à", "a", "â", "a", "ã", "a", "ä", "a",
	"é", "e", "è", "e", "ê", "e", "ë", "e",
	"í", "i", "ì", "i", "î", "i", "ï", "i",
	"ó", "o", "ò", "o", "ô", "o", "õ", "o", "ö", "o",
	"ú", "u", "ù", "u", "û", "u", "ü", "u",
	"ç", "c", "ñ", "n",
)

func fold(s string) string {
	return diacriticsReplacer.Replace(strings.ToLower(strings.TrimSpace(s)))
}
