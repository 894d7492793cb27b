package planner

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/fitplanner-backend/internal/models"
)

func date(value string) time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return t
}

func TestComputeAge_BeforeBirthdayThisYear(t *testing.T) {
	age, ok := ComputeAge("2000-06-15", date("2024-01-01"))

	require.True(t, ok)
	assert.Equal(t, 23, age)
}

func TestComputeAge_AfterBirthdayThisYear(t *testing.T) {
	age, ok := ComputeAge("2000-01-01", date("2024-06-01"))

	require.True(t, ok)
	assert.Equal(t, 24, age)
}

func TestComputeAge_OnBirthday(t *testing.T) {
	age, ok := ComputeAge("2000-06-15", date("2024-06-15"))

	require.True(t, ok)
	assert.Equal(t, 24, age)
}

func TestComputeAge_RFC3339Timestamp(t *testing.T) {
	age, ok := ComputeAge("2000-06-15T00:00:00Z", date("2024-07-01"))

	require.True(t, ok)
	assert.Equal(t, 24, age)
}

func TestComputeAge_Unknown(t *testing.T) {
	for _, dob := range []string{"", "not-a-date", "15/06/2000"} {
		_, ok := ComputeAge(dob, date("2024-01-01"))
		assert.False(t, ok, "dob %q should be unknown", dob)
	}
}

func TestBuildPrompt_WorkoutIncludesProfile(t *testing.T) {
	user := &models.User{
		FirstName: "Jane",
		LastName:  "Doe",
		DOB:       "2000-06-15",
		Height:    170,
		Weight:    65,
		Goal:      "build muscle",
	}

	prompt := BuildPrompt(user, models.PlanKindWorkout, date("2024-01-01"))

	assert.Contains(t, prompt, "Jane Doe")
	assert.Contains(t, prompt, "Age: 23")
	assert.Contains(t, prompt, "Height: 170 cm")
	assert.Contains(t, prompt, "Weight: 65 kg")
	assert.Contains(t, prompt, "build muscle")
	assert.Contains(t, prompt, "workout plan")
}

func TestBuildPrompt_MealMentionsMeals(t *testing.T) {
	user := &models.User{
		FirstName: "Jane",
		LastName:  "Doe",
		DOB:       "2000-06-15",
		Height:    170,
		Weight:    65,
		Goal:      "lose weight",
	}

	prompt := BuildPrompt(user, models.PlanKindMeal, date("2024-01-01"))

	assert.Contains(t, prompt, "meal plan")
	assert.Contains(t, prompt, "breakfast, lunch, dinner")
	assert.NotContains(t, prompt, "workout")
}

func TestBuildPrompt_MissingDOBFallsBackToUnknown(t *testing.T) {
	user := &models.User{FirstName: "Sam", LastName: "Lee", Goal: "stay fit"}

	prompt := BuildPrompt(user, models.PlanKindWorkout, date("2024-01-01"))

	assert.Contains(t, prompt, "Age: unknown")
}

func TestChatPrompt(t *testing.T) {
	got := ChatPrompt("User: hi\nAI: hello", "how do I squat?")

	assert.Equal(t, "User: hi\nAI: hello\nUser: how do I squat?\nAI:", got)
}
