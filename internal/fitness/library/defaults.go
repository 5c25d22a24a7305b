package library

import "github.com/2beens/liftstats/internal/strength"

// Defaults is the starter library: every exercise that takes part in an
// imbalance comparison or has a strength standard, with the aliases seen in
// gym apps and machine screenshots.
func Defaults() []strength.ExerciseDocument {
	return []strength.ExerciseDocument{
		{Name: "Bench Press", LegacyNames: []string{"Barbell Bench Press", "Flat Bench", "Bench"}, Category: strength.CategoryUpperBody},
		{Name: "Dumbbell Bench Press", LegacyNames: []string{"DB Bench Press"}, Category: strength.CategoryUpperBody},
		{Name: "Chest Press", LegacyNames: []string{"Machine Chest Press", "Seated Chest Press"}, Category: strength.CategoryUpperBody},
		{Name: "Bent Over Row", LegacyNames: []string{"Barbell Row", "Bent-Over Row"}, Category: strength.CategoryUpperBody},
		{Name: "Seated Cable Row", LegacyNames: []string{"Cable Row"}, Category: strength.CategoryUpperBody},
		{Name: "Seated Row", LegacyNames: []string{"Rowing"}, Category: strength.CategoryUpperBody},
		{Name: "Dumbbell Row", LegacyNames: []string{"DB Row", "One Arm Row"}, Category: strength.CategoryUpperBody},
		{Name: "Overhead Press", LegacyNames: []string{"OHP", "Standing Press"}, Category: strength.CategoryUpperBody},
		{Name: "Shoulder Press", LegacyNames: []string{"Seated Shoulder Press"}, Category: strength.CategoryUpperBody},
		{Name: "Military Press", Category: strength.CategoryUpperBody},
		{Name: "Lat Pulldown", LegacyNames: []string{"Lat Pull Down", "Pulldown"}, Category: strength.CategoryUpperBody},
		{Name: "Pull Up", LegacyNames: []string{"Pull-Up", "Pullup"}, Category: strength.CategoryUpperBody},
		{Name: "Chin Up", LegacyNames: []string{"Chin-Up", "Chinup"}, Category: strength.CategoryUpperBody},
		{Name: "Squat", LegacyNames: []string{"Back Squat", "Barbell Squat"}, Category: strength.CategoryLowerBody},
		{Name: "Deadlift", LegacyNames: []string{"Conventional Deadlift"}, Category: strength.CategoryFullBody},
		{Name: "Leg Press", Category: strength.CategoryLowerBody},
		{Name: "Leg Extension", LegacyNames: []string{"Leg Extensions", "Quad Extension"}, Category: strength.CategoryLowerBody},
		{Name: "Leg Curl", LegacyNames: []string{"Hamstring Curl"}, Category: strength.CategoryLowerBody},
		{Name: "Seated Leg Curl", Category: strength.CategoryLowerBody},
		{Name: "Lying Leg Curl", Category: strength.CategoryLowerBody},
		{Name: "Hip Adduction", LegacyNames: []string{"Adductor", "Adductor Machine", "Inner Thigh"}, Category: strength.CategoryLowerBody},
		{Name: "Hip Abduction", LegacyNames: []string{"Abductor", "Abductor Machine", "Outer Thigh"}, Category: strength.CategoryLowerBody},
	}
}
