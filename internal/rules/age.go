package rules

// MinimumAge is the youngest age with an advisory
const MinimumAge = 15

type ageRule struct {
	from int
	text string
}

// checked from the oldest band down
var ageRules = []ageRule{
	{from: 80, text: "80+: deduct 80 points among STR, CON and DEX. Reduce APP by 25. Make 4 improvement checks for EDU."},
	{from: 70, text: "70-79: deduct 40 points among STR, CON and DEX. Reduce APP by 20. Make 4 improvement checks for EDU."},
	{from: 60, text: "60-69: deduct 20 points among STR, CON and DEX. Reduce APP by 15. Make 4 improvement checks for EDU."},
	{from: 50, text: "50-59: deduct 10 points among STR, CON and DEX. Reduce APP by 10. Make 3 improvement checks for EDU."},
	{from: 40, text: "40-49: deduct 5 points among STR, CON and DEX. Reduce APP by 5. Make 2 improvement checks for EDU."},
	{from: 20, text: "20-39: make 1 improvement check for EDU."},
	{from: MinimumAge, text: "15-19: deduct 5 points among STR and SIZ. Reduce EDU by 5. Roll Luck twice and keep the higher result."},
}

// AgeRuleText returns the age advisory for the player to apply by hand, or an
// empty string below MinimumAge. Attributes are never adjusted automatically.
func AgeRuleText(age int) string {
	for _, rule := range ageRules {
		if age >= rule.from {
			return rule.text
		}
	}
	return ""
}
