// ABOUTME: Fixed exercise catalog grouped by muscle group.
// ABOUTME: Exercise names are UPPER_SNAKE identifiers shared with the server.
package models

import (
	"sort"
	"strings"
)

// ExercisesByGroup is the fixed catalog of exercise names the client offers,
// keyed by muscle group. The server accepts any of these names verbatim.
var ExercisesByGroup = map[string][]string{
	"Chest": {
		"BENCH_PRESS", "INCLINE_BENCH_PRESS", "DUMBBELL_PRESS",
		"CHEST_FLY", "CABLE_CROSSOVER", "PUSH_UP", "DIP",
	},
	"Back": {
		"DEADLIFT", "PULL_UP", "CHIN_UP", "BARBELL_ROW",
		"LAT_PULLDOWN", "SEATED_CABLE_ROW", "T_BAR_ROW",
	},
	"Legs": {
		"SQUAT", "FRONT_SQUAT", "LEG_PRESS", "ROMANIAN_DEADLIFT",
		"LUNGE", "LEG_EXTENSION", "LEG_CURL", "CALF_RAISE",
	},
	"Shoulders": {
		"OVERHEAD_PRESS", "ARNOLD_PRESS", "LATERAL_RAISE",
		"FRONT_RAISE", "REAR_DELT_FLY", "FACE_PULL", "SHRUG",
	},
	"Arms": {
		"BARBELL_CURL", "DUMBBELL_CURL", "HAMMER_CURL",
		"TRICEP_PUSHDOWN", "SKULL_CRUSHER", "PREACHER_CURL",
	},
	"Core": {
		"PLANK", "CRUNCH", "HANGING_LEG_RAISE",
		"RUSSIAN_TWIST", "AB_WHEEL_ROLLOUT", "CABLE_WOODCHOP",
	},
}

// MuscleGroups returns the catalog's group names in stable sorted order.
func MuscleGroups() []string {
	groups := make([]string, 0, len(ExercisesByGroup))
	for g := range ExercisesByGroup {
		groups = append(groups, g)
	}
	sort.Strings(groups)
	return groups
}

// IsValidExercise reports whether name appears anywhere in the catalog.
func IsValidExercise(name string) bool {
	for _, exercises := range ExercisesByGroup {
		for _, e := range exercises {
			if e == name {
				return true
			}
		}
	}
	return false
}

// FormatExerciseName renders a catalog identifier for display:
// "INCLINE_BENCH_PRESS" becomes "Incline Bench Press".
func FormatExerciseName(name string) string {
	words := strings.Split(strings.ToLower(name), "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
