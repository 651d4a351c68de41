package model

// Gender values match the gender column of the first names table, which is
// normalized to lower case at load time.
const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

type Gender string

func (g Gender) IsMale() bool {
	return g == GenderMale
}

func (g Gender) IsFemale() bool {
	return g == GenderFemale
}

func (g Gender) Opposite() Gender {
	if g == GenderMale {
		return GenderFemale
	}
	return GenderMale
}
