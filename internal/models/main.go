// Package models defines the core data structures for exercises, users and workouts.
package models

import "time"

// Location is where an exercise can be performed.
type Location string

const (
	// LocationHome is an exercise meant for home.
	LocationHome Location = "Home"
	// LocationGym requires a gym.
	LocationGym Location = "Gym"
	// LocationOutdoor is performed outside.
	LocationOutdoor Location = "Outdoor"
	// LocationAny can be performed anywhere.
	LocationAny Location = "Any"
)

// NoEquipment is the equipment tag meaning the exercise needs nothing.
const NoEquipment = "None"

// Exercise is a catalog entry used for recommendations.
// Catalog rows carry Title; fallback entries only carry Name.
type Exercise struct {
	// ID is the store identifier, empty for fallback entries.
	ID string `json:"id,omitempty" yaml:"-"`
	// Name is the short label used by fallback entries.
	Name string `json:"name,omitempty" yaml:"name,omitempty"`
	// Title is the display title of a catalog exercise.
	Title string `json:"title,omitempty" yaml:"title"`
	// Subtitle is a short secondary label.
	Subtitle string `json:"subtitle,omitempty" yaml:"subtitle"`
	// Goals lists the fitness goals the exercise serves.
	Goals []string `json:"goals" yaml:"goals"`
	// EquipmentNeeded lists required equipment; "None" means no equipment.
	EquipmentNeeded []string `json:"equipmentNeeded" yaml:"equipmentNeeded"`
	// Location is where the exercise can be done.
	Location Location `json:"location" yaml:"location"`
	// Intensity is Low, Medium or High.
	Intensity string `json:"intensity,omitempty" yaml:"intensity"`
	// IsInjurySafe marks exercises suitable for users reporting injuries.
	IsInjurySafe bool `json:"isInjurySafe" yaml:"isInjurySafe"`
	// Difficulty is Beginner, Intermediate or Advanced.
	Difficulty string `json:"difficulty,omitempty" yaml:"difficulty"`
	// Steps are the ordered instructions.
	Steps []string `json:"steps,omitempty" yaml:"steps"`
	// Description is free text.
	Description string `json:"description,omitempty" yaml:"description"`
}

// DisplayName returns Title, or Name for fallback entries.
func (e Exercise) DisplayName() string {
	if e.Title != "" {
		return e.Title
	}
	return e.Name
}

// User is a stored user profile. Email is the identity key.
type User struct {
	// ID is the store identifier.
	ID string `json:"id"`
	// Email uniquely identifies the user.
	Email string `json:"email"`
	// Username is the display name; it may collide between users.
	Username string `json:"username"`
	Age      *int     `json:"age,omitempty"`
	Gender   *string  `json:"gender,omitempty"`
	HeightCm *float64 `json:"heightCm,omitempty"`
	WeightKg *float64 `json:"weightKg,omitempty"`
	// FitnessProfile holds the raw questionnaire answers.
	FitnessProfile map[string]any `json:"fitnessProfile,omitempty"`
	// TotalScore accumulates workout points.
	TotalScore int64 `json:"totalScore"`
	// CreatedAt is set once on first sync.
	CreatedAt time.Time `json:"createdAt"`
}

// UserSync carries the user fields submitted by a client. Nil fields keep
// the stored value.
type UserSync struct {
	Email    string   `json:"email"`
	Username *string  `json:"username,omitempty"`
	Age      *int     `json:"age,omitempty"`
	Gender   *string  `json:"gender,omitempty"`
	HeightCm *float64 `json:"heightCm,omitempty"`
	WeightKg *float64 `json:"weightKg,omitempty"`
}

// Workout is a single synced workout. (Username, Timestamp) is its identity.
type Workout struct {
	// ID is the store identifier.
	ID string `json:"id,omitempty"`
	// Username references the user by value.
	Username string `json:"username"`
	// ExerciseName is the performed exercise.
	ExerciseName string `json:"exerciseName"`
	// Reps is the number of repetitions, a whole number.
	Reps int `json:"reps"`
	// DurationSec is the workout length in whole seconds.
	DurationSec int `json:"durationSec"`
	// Accuracy is the form score, roughly in [0,1].
	Accuracy float64 `json:"accuracy"`
	// CaloriesBurned is the client estimate.
	CaloriesBurned float64 `json:"caloriesBurned"`
	// Timestamp is an opaque client-supplied identity component.
	Timestamp string `json:"timestamp"`
}
