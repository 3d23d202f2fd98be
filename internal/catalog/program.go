package catalog

import "github.com/deniableproductions-arch/dumbbell-tracker-pwa/internal/models"

// program is the three-day split every installation ships with.
var program = []models.WorkoutTemplate{
	{
		ID:    Push,
		Title: "Push (Chest, Shoulders, Triceps)",
		Exercises: []models.Exercise{
			{ID: "db_bench_press", Name: "Dumbbell Bench Press", MuscleGroup: "Chest", IsMain: true, DefaultSets: 4, RepRange: "6–8"},
			{ID: "db_incline_press", Name: "Incline Dumbbell Press", MuscleGroup: "Upper Chest", DefaultSets: 3, RepRange: "8–10"},
			{ID: "db_shoulder_press", Name: "Seated Dumbbell Shoulder Press", MuscleGroup: "Shoulders", DefaultSets: 3, RepRange: "8–10"},
			{ID: "db_lateral_raise", Name: "Lateral Raise", MuscleGroup: "Side Delts", Superset: "A", DefaultSets: 3, RepRange: "12–15"},
			{ID: "db_overhead_triceps_ext", Name: "Overhead Triceps Extension", MuscleGroup: "Triceps", Superset: "A", DefaultSets: 3, RepRange: "10–12"},
		},
	},
	{
		ID:    Pull,
		Title: "Pull (Back, Biceps)",
		Exercises: []models.Exercise{
			{ID: "db_row", Name: "One-Arm Dumbbell Row", MuscleGroup: "Lats", IsMain: true, DefaultSets: 4, RepRange: "6–8"},
			{ID: "db_pullover", Name: "Dumbbell Pullover", MuscleGroup: "Lats", DefaultSets: 3, RepRange: "10–12"},
			{ID: "db_rear_delt_fly", Name: "Rear Delt Fly", MuscleGroup: "Rear Delts", Superset: "A", DefaultSets: 3, RepRange: "12–15"},
			{ID: "db_hammer_curl", Name: "Hammer Curl", MuscleGroup: "Biceps", Superset: "A", DefaultSets: 3, RepRange: "10–12"},
			{ID: "db_shrug", Name: "Dumbbell Shrug", MuscleGroup: "Traps", DefaultSets: 3, RepRange: "12–15"},
		},
	},
	{
		ID:    Legs,
		Title: "Legs (Quads, Hamstrings, Glutes)",
		Exercises: []models.Exercise{
			{ID: "db_goblet_squat", Name: "Goblet Squat", MuscleGroup: "Quads", IsMain: true, DefaultSets: 4, RepRange: "8–10"},
			{ID: "db_rdl", Name: "Dumbbell Romanian Deadlift", MuscleGroup: "Hamstrings", DefaultSets: 3, RepRange: "8–10"},
			{ID: "db_split_squat", Name: "Bulgarian Split Squat", MuscleGroup: "Quads", DefaultSets: 3, RepRange: "8–10"},
			{ID: "db_calf_raise", Name: "Standing Calf Raise", MuscleGroup: "Calves", Superset: "A", DefaultSets: 3, RepRange: "12–15"},
			{ID: "db_glute_bridge", Name: "Dumbbell Glute Bridge", MuscleGroup: "Glutes", Superset: "A", DefaultSets: 3, RepRange: "10–12"},
		},
	},
}

// Default returns the built-in program.
func Default() *Catalog {
	c, err := New(program...)
	if err != nil {
		panic("catalog: built-in program is invalid: " + err.Error())
	}
	return c
}
