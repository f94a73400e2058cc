package model

import "strconv"

const (
	GenderFemale = "Female"
	GenderMale   = "Male"
)

type Programmer struct {
	ID          int    `gorm:"column:id;primaryKey"`
	FirstName   string `gorm:"column:first_name"`
	LastName    string `gorm:"column:last_name"`
	Gender      string `gorm:"column:gender"`
	Nationality string `gorm:"column:nationality"`
	FamousFor   string `gorm:"column:famous_for"`
}

func (Programmer) TableName() string { return "Programmer" }

func (p Programmer) FullName() string {
	return p.FirstName + " " + p.LastName
}

func (p Programmer) Fields() []string {
	return []string{strconv.Itoa(p.ID), p.FullName(), p.Gender, p.Nationality, p.FamousFor}
}

// NormalizeGender maps the short gender codes to their long form. ok is
// false for anything other than "F" or "M", long forms included.
func NormalizeGender(g string) (string, bool) {
	switch g {
	case "F":
		return GenderFemale, true
	case "M":
		return GenderMale, true
	default:
		return g, false
	}
}

// SeedProgrammers is the sample data set the programmers command can insert.
func SeedProgrammers() []Programmer {
	return []Programmer{
		{FirstName: "Ada", LastName: "Lovelace", Gender: "F", Nationality: "British", FamousFor: "First Programmer"},
		{FirstName: "Alan", LastName: "Turing", Gender: "M", Nationality: "British", FamousFor: "Modern Computing"},
		{FirstName: "Grace", LastName: "Hopper", Gender: "F", Nationality: "American", FamousFor: "COBOL Language"},
		{FirstName: "Margaret", LastName: "Hamilton", Gender: "F", Nationality: "American", FamousFor: "Apollo 11"},
		{FirstName: "Bill", LastName: "Gates", Gender: "M", Nationality: "American", FamousFor: "Microsoft"},
		{FirstName: "Tim", LastName: "Berners-Lee", Gender: "M", Nationality: "British", FamousFor: "World Wide Web"},
		{FirstName: "Maurizio", LastName: "Loffredo", Gender: "M", Nationality: "Italian", FamousFor: "Natural Language Programming"},
	}
}
