package mapping

import "strings"

// folders maps exercise identifiers to Free Exercise DB folder names.
// Compiled in and never mutated; an absent identifier means the static
// resolver cannot serve it.
var folders = map[string]string{
	// Chest
	"bench-press":         "Barbell_Bench_Press_-_Medium_Grip",
	"incline-bench-press": "Barbell_Incline_Bench_Press_-_Medium_Grip",
	"decline-bench-press": "Decline_Barbell_Bench_Press",
	"dumbbell-bench-press": "Dumbbell_Bench_Press",
	"incline-dumbbell-press": "Incline_Dumbbell_Press",
	"dumbbell-flyes":  "Dumbbell_Flyes",
	"cable-crossover": "Cable_Crossover",
	"pec-deck-fly":    "Butterfly",
	"push-ups":        "Pushups",

	// Back
	"deadlift":     "Barbell_Deadlift",
	"pull-ups":     "Pullups",
	"chin-ups":     "Chin-Up",
	"lat-pulldown": "Wide-Grip_Lat_Pulldown",
	"barbell-row":  "Bent_Over_Barbell_Row",
	"dumbbell-row": "One-Arm_Dumbbell_Row",
	"t-bar-row":    "T-Bar_Row_with_Handle",
	"cable-row":    "Seated_Cable_Rows",
	"face-pulls":   "Face_Pull",

	// Legs
	"squat":             "Barbell_Squat",
	"front-squat":       "Front_Barbell_Squat",
	"hack-squat":        "Barbell_Hack_Squat",
	"leg-press":         "Leg_Press",
	"lunges":            "Barbell_Lunge",
	"dumbbell-lunges":   "Dumbbell_Lunges_Walking",
	"leg-extension":     "Leg_Extensions",
	"leg-curl":          "Lying_Leg_Curls",
	"romanian-deadlift": "Romanian_Deadlift",
	"calf-raises":       "Standing_Calf_Raises",
	"goblet-squat":      "Goblet_Squat",

	// Shoulders
	"overhead-press":          "Standing_Military_Press",
	"dumbbell-shoulder-press": "Dumbbell_Shoulder_Press",
	"arnold-press":            "Arnold_Dumbbell_Press",
	"lateral-raises":          "Side_Lateral_Raise",
	"front-raises":            "Front_Dumbbell_Raise",
	"rear-delt-fly":           "Seated_Bent-Over_Rear_Delt_Raise",
	"upright-row":             "Upright_Barbell_Row",
	"machine-shoulder-press":  "Leverage_Shoulder_Press",

	// Biceps
	"barbell-curl":       "Barbell_Curl",
	"dumbbell-curl":      "Dumbbell_Bicep_Curl",
	"hammer-curl":        "Hammer_Curls",
	"preacher-curl":      "Preacher_Curl",
	"concentration-curl": "Concentration_Curls",
	"ez-bar-curl":        "EZ-Bar_Curl",
	"cable-curl":         "Cable_Hammer_Curls_-_Rope_Attachment",

	// Triceps
	"tricep-pushdown":            "Triceps_Pushdown",
	"skull-crushers":             "Lying_Triceps_Press",
	"tricep-dips":                "Dips_-_Triceps_Version",
	"dips":                       "Dips_-_Triceps_Version",
	"overhead-tricep-extension":  "Standing_Dumbbell_Triceps_Extension",
	"close-grip-bench-press":     "Close-Grip_Barbell_Bench_Press",
	"tricep-kickback":            "Tricep_Dumbbell_Kickback",

	// Core
	"crunches":           "Crunches",
	"sit-ups":            "3_4_Sit-Up",
	"plank":              "Plank",
	"russian-twist":      "Russian_Twist",
	"hanging-leg-raises": "Hanging_Leg_Raise",
	"decline-crunches":   "Decline_Crunch",
	"cable-crunch":       "Cable_Crunch",
	"ab-wheel":           "Ab_Roller",

	// Other
	"shrugs":         "Dumbbell_Shrug",
	"barbell-shrugs": "Barbell_Shrug",
	"farmers-walk":   "Farmers_Walk",
	"hip-thrust":     "Barbell_Hip_Thrust",
}

// terms maps exercise identifiers to catalog search phrases. Identifiers
// not listed here fall back to the identifier itself with separators
// normalized to spaces.
var terms = map[string]string{
	"bench-press":                "bench press",
	"incline-bench-press":        "incline bench press",
	"decline-bench-press":        "decline bench press",
	"dumbbell-bench-press":       "dumbbell bench press",
	"incline-dumbbell-press":     "incline dumbbell press",
	"decline-dumbbell-press":     "decline dumbbell press",
	"dumbbell-flyes":             "dumbbell flyes",
	"incline-dumbbell-flyes":     "incline dumbbell flyes",
	"push-ups":                   "push ups",
	"cable-crossover":            "cable crossover",
	"machine-chest-press":        "chest press machine",
	"pec-deck-fly":               "pec deck",
	"squat":                      "squat",
	"front-squat":                "front squat",
	"goblet-squat":               "goblet squat",
	"leg-press":                  "leg press",
	"hack-squat":                 "hack squat",
	"leg-extension":              "leg extension",
	"lunges":                     "lunges",
	"dumbbell-lunges":            "dumbbell lunges",
	"deadlift":                   "deadlift",
	"romanian-deadlift":          "romanian deadlift",
	"dumbbell-romanian-deadlift": "dumbbell romanian deadlift",
	"leg-curl":                   "leg curl",
	"pull-ups":                   "pull ups",
	"chin-ups":                   "chin ups",
	"assisted-pull-ups":          "assisted pull ups",
	"lat-pulldown":               "lat pulldown",
	"machine-lat-pulldown":       "lat pulldown",
	"barbell-row":                "barbell row",
	"dumbbell-row":               "dumbbell row",
	"cable-row":                  "cable row",
	"t-bar-row":                  "t-bar row",
	"face-pulls":                 "face pulls",
	"overhead-press":             "overhead press",
	"dumbbell-shoulder-press":    "dumbbell shoulder press",
	"machine-shoulder-press":     "shoulder press machine",
	"lateral-raises":             "lateral raises",
	"front-raises":               "front raises",
	"reverse-flyes":              "reverse flyes",
	"barbell-curl":               "barbell curl",
	"dumbbell-curl":              "dumbbell curl",
	"hammer-curl":                "hammer curl",
	"preacher-curl":              "preacher curl",
	"ez-bar-curl":                "ez bar curl",
	"cable-curl":                 "cable curl",
	"tricep-pushdown":            "tricep pushdown",
	"skull-crushers":             "skull crushers",
	"overhead-tricep-extension":  "tricep extension",
	"dips":                       "dips",
	"close-grip-bench-press":     "close grip bench press",
	"calf-raises":                "calf raises",
	"seated-calf-raises":         "seated calf raises",
	"hip-thrust":                 "hip thrust",
	"glute-bridge":               "glute bridge",
	"hip-abduction":              "hip abduction",
	"hip-adduction":              "hip adduction",
	"cable-kickback":             "cable kickback",
	"plank":                      "plank",
	"crunches":                   "crunches",
	"decline-situps":             "sit ups",
	"decline-crunches":           "crunches",
	"hanging-leg-raises":         "hanging leg raises",
	"cable-crunch":               "cable crunch",
	"russian-twist":              "russian twist",
	"shrugs":                     "shrugs",
	"barbell-shrugs":             "barbell shrugs",
	"wrist-curls":                "wrist curls",
	"farmers-walk":               "farmers walk",
	"kettlebell-swing":           "kettlebell swing",
	"kettlebell-goblet-squat":    "goblet squat",
	"smith-machine-bench-press":  "smith machine bench press",
	"smith-machine-incline-press": "smith machine incline press",
	"smith-machine-squat":          "smith machine squat",
	"smith-machine-shoulder-press": "smith machine shoulder press",
}

var normalizer = strings.NewReplacer("-", " ", "_", " ")

// Folder returns the static image folder for an identifier. The second
// return is false when the static provider has no image for it.
func Folder(identifier string) (string, bool) {
	folder, ok := folders[identifier]
	return folder, ok
}

// Term returns the catalog search phrase for an identifier. Identifiers
// without a curated phrase are normalized (separators become spaces) and
// used as-is; that fallback is expected, not an error.
func Term(identifier string) string {
	if term, ok := terms[identifier]; ok {
		return term
	}
	return normalizer.Replace(identifier)
}
