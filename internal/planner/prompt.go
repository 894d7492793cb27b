// Package planner turns a stored user profile into a generation prompt and
// recovers day-by-day structure from the generated free text.
package planner

import (
	"fmt"
	"strconv"
	"time"

	"github.com/example/fitplanner-backend/internal/models"
)

var dobLayouts = []string{"2006-01-02", time.RFC3339}

// ComputeAge returns the user's age in whole years at `now`. The second
// return value is false when dob is empty or unparseable; that is the lenient
// "unknown age" path, not an error.
func ComputeAge(dob string, now time.Time) (int, bool) {
	if dob == "" {
		return 0, false
	}

	var born time.Time
	var err error
	for _, layout := range dobLayouts {
		born, err = time.Parse(layout, dob)
		if err == nil {
			break
		}
	}
	if err != nil {
		return 0, false
	}

	years := now.Year() - born.Year()
	// Not yet had the birthday this year.
	if now.Month() < born.Month() || (now.Month() == born.Month() && now.Day() < born.Day()) {
		years--
	}
	if years < 0 {
		years = 0
	}
	return years, true
}

// ageLabel formats the age for prompt embedding, falling back to "unknown".
func ageLabel(dob string, now time.Time) string {
	age, ok := ComputeAge(dob, now)
	if !ok {
		return "unknown"
	}
	return strconv.Itoa(age)
}

// BuildPrompt produces the natural-language instruction for the given plan
// kind. Pure function; malformed dob degrades to an "unknown" age rather
// than failing.
func BuildPrompt(user *models.User, kind models.PlanKind, now time.Time) string {
	age := ageLabel(user.DOB, now)

	if kind == models.PlanKindMeal {
		return fmt.Sprintf(`Hi, my name is %s.
Create a 7-day personalized meal plan for me based on:
- Age: %s
- Height: %.0f cm
- Weight: %.0f kg
- Fitness Goal: %s

The meal plan should include 3 meals per day (breakfast, lunch, dinner), and be specific with portion size and nutrition if possible.`,
			user.FullName(), age, user.Height, user.Weight, user.Goal)
	}

	return fmt.Sprintf(`Hi my name is %s,
Create me a detailed 7-day workout plan.
Here are some information regarding me:
- Age: %s
- Height: %.0f cm
- Weight: %.0f kg
- Fitness Goal: %s

The plan should include different workouts per day, rest days if needed, and brief instructions for each.`,
		user.FullName(), age, user.Height, user.Weight, user.Goal)
}

// ChatPrompt formats one assistant turn: the running transcript followed by
// the new user message, with the "AI:" cue the stop sequences pair with.
func ChatPrompt(history, input string) string {
	return history + "\nUser: " + input + "\nAI:"
}
