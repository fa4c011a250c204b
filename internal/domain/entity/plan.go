package entity

// WorkoutPlan is a weekly training schedule produced by the coaching
// capability.
type WorkoutPlan struct {
	WeeklyPlan []WorkoutDay `json:"weeklyPlan"`
}

// WorkoutDay is one day of the workout schedule. Rest days carry an empty
// exercise list.
type WorkoutDay struct {
	Day       string     `json:"day"`
	Exercises []Exercise `json:"exercises"`
}

// Exercise keeps sets and reps as free text: plans use values like "falha"
// (to failure) and "60s" alongside plain numbers.
type Exercise struct {
	Name string `json:"name"`
	Sets string `json:"sets"`
	Reps string `json:"reps"`
}

// DietPlan is a weekly meal schedule with daily calorie and macro targets.
type DietPlan struct {
	DailyCalories int       `json:"dailyCalories"`
	Macros        Macros    `json:"macros"`
	WeeklyPlan    []DietDay `json:"weeklyPlan"`
}

// DietDay is one day (or a repeating template day) of the diet schedule.
type DietDay struct {
	Day   string `json:"day"`
	Meals []Meal `json:"meals"`
}

// Meal is a named meal with a free-text description.
type Meal struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Macros is a macronutrient breakdown in grams.
type Macros struct {
	Protein int `json:"protein"`
	Carbs   int `json:"carbs"`
	Fat     int `json:"fat"`
}

// Recommendation is the three-valued verdict of a food analysis.
type Recommendation string

// Allowed recommendation values, in the application's locale.
const (
	RecommendationRecommended    Recommendation = "Recomendada"
	RecommendationAcceptable     Recommendation = "Aceitável"
	RecommendationNotRecommended Recommendation = "Não Recomendada"
)

// Valid reports whether the value is one of the three allowed literals.
func (r Recommendation) Valid() bool {
	switch r {
	case RecommendationRecommended, RecommendationAcceptable, RecommendationNotRecommended:
		return true
	default:
		return false
	}
}

// FoodAnalysis is the structured nutrition estimate for a food photo.
type FoodAnalysis struct {
	IdentifiedFoods []string       `json:"identifiedFoods"`
	Calories        int            `json:"calories"`
	Macros          Macros         `json:"macros"`
	Recommendation  Recommendation `json:"recommendation"`
}
