package bot

import (
	"MacroTrackr-Bot/domain"
	"MacroTrackr-Bot/pkg/progress"
	"fmt"
)

// FormatProgressMessage renders a snapshot as a Markdown progress card.
func FormatProgressMessage(snap domain.ProgressSnapshot, barLength int) string {
	return fmt.Sprintf(
		"📊 *Daily Calorie Progress*\n%s %d / %d kcal (%d%%)\n\n🎯 Remaining: %d kcal",
		progress.Bar(snap.Percentage, barLength),
		snap.TotalCalories,
		snap.TargetCalories,
		snap.Percentage,
		snap.RemainingCalories,
	)
}

func HelpText() string {
	return "🍽 *Meal Tracker Bot*\n\n" +
		"Send a meal photo with a short caption describing it and I'll estimate the calories and macros.\n\n" +
		"*Commands:*\n" +
		"/progress - Show today's calorie progress\n" +
		"/resetprogress - Reset today's calorie count\n" +
		"/deletelast - Remove your most recent meal entry"
}
