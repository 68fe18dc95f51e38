package classes

import "github.com/treinorpg/backend/internal/rpg/classify"

// Class is the user-selected character archetype. The set is closed,
// each class carries its own passive skill rules.
type Class string

const (
	ClassNone      Class = ""
	ClassGuerreiro Class = "guerreiro"
	ClassMonge     Class = "monge"
	ClassNinja     Class = "ninja"
	ClassBruxo     Class = "bruxo"
	ClassPaladino  Class = "paladino"
)

func ParseClass(s string) Class {
	switch Class(s) {
	case ClassGuerreiro, ClassMonge, ClassNinja, ClassBruxo, ClassPaladino:
		return Class(s)
	default:
		return ClassNone
	}
}

// HasStreakPreservation reports whether the class can keep a streak
// alive across a single missed day (Bruxo's Pijama Arcano).
func (c Class) HasStreakPreservation() bool {
	return c == ClassBruxo
}

// affinity returns the exercise categories the class draws manual
// activity bonuses from.
func (c Class) affinity() []classify.Category {
	switch c {
	case ClassGuerreiro:
		return []classify.Category{classify.Compound, classify.Strength}
	case ClassMonge:
		return []classify.Category{classify.Bodyweight}
	case ClassNinja:
		return []classify.Category{classify.Cardio}
	case ClassBruxo:
		return []classify.Category{classify.Flexibility, classify.Recovery}
	default:
		return nil
	}
}
