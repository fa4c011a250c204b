package entity

// OnboardingData holds the questionnaire answers collected once per account.
// Field names follow the persisted JSON document layout.
type OnboardingData struct {
	Goal                string       `json:"goal"`
	Name                string       `json:"name"`
	Age                 int          `json:"age"`
	Sex                 string       `json:"sex"`
	Height              int          `json:"height"`
	CurrentWeight       float64      `json:"currentWeight"`
	TargetWeight        float64      `json:"targetWeight"`
	HealthConditions    []string     `json:"healthConditions"`
	OtherCondition      string       `json:"otherCondition"`
	Experience          string       `json:"experience"`
	Frequency           string       `json:"frequency"`
	WorkoutLocation     string       `json:"workoutLocation"`
	WorkoutStyle        string       `json:"workoutStyle"`
	Availability        Availability `json:"availability"`
	MealsPerDay         int          `json:"mealsPerDay"`
	DietaryRestrictions []string     `json:"dietaryRestrictions"`
	DislikedFoods       string       `json:"dislikedFoods"`
	SleepQuality        string       `json:"sleepQuality"`
	StressLevel         string       `json:"stressLevel"`
	FoodBudget          string       `json:"foodBudget"`
}

// Availability describes training time: days per week and minutes per session.
type Availability struct {
	Days int `json:"days"`
	Time int `json:"time"`
}

// WeightEntry is a single progress measurement. Entries are append-only and
// keep insertion order, which is assumed but not enforced to be chronological.
type WeightEntry struct {
	Date   string  `json:"date"` // ISO-8601 timestamp
	Weight float64 `json:"weight"`
}

// HabitState maps a habit name to its ordered completion flags,
// e.g. {"Beber 2L de água": [true, false, true]}.
type HabitState map[string][]bool

// UserProfile is the full per-account aggregate. It is always read and
// written wholesale; there are no partial updates.
type UserProfile struct {
	HasOnboarded bool           `json:"hasOnboarded"`
	Onboarding   OnboardingData `json:"onboarding"`
	Progress     Progress       `json:"progress"`
	Plans        Plans          `json:"plans"`
	Tools        Tools          `json:"tools"`
}

// Progress groups the tracking data shown on the dashboard.
type Progress struct {
	WeightHistory []WeightEntry `json:"weightHistory"`
}

// Plans holds the generated plans, nil when not generated yet.
type Plans struct {
	WorkoutPlan *WorkoutPlan `json:"workoutPlan"`
	DietPlan    *DietPlan    `json:"dietPlan"`
}

// Tools holds the state of the dashboard's auxiliary tools.
type Tools struct {
	Habits HabitState `json:"habits"`
}

// NewUserProfile returns the default empty profile created for every account
// at registration, and returned whenever no profile has been stored yet.
func NewUserProfile() *UserProfile {
	return &UserProfile{
		Onboarding: OnboardingData{
			HealthConditions:    []string{},
			DietaryRestrictions: []string{},
			Availability:        Availability{Days: 3, Time: 60},
			MealsPerDay:         3,
		},
		Progress: Progress{WeightHistory: []WeightEntry{}},
		Tools:    Tools{Habits: HabitState{}},
	}
}
