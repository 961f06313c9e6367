package plan

import (
	"fmt"
	"strconv"
	"strings"
)

// BuildUserContext renders preferences as the single free-text query the
// recipe service expects. Household size and budget are always present; the
// zip, restriction, health and notes clauses are omitted when empty. Clauses
// are joined with ". " in that fixed order.
func BuildUserContext(p Preferences) string {
	parts := []string{
		fmt.Sprintf("I have a family of %d people", p.FamilySize),
		"and we have a weekly budget of $" + strconv.FormatFloat(p.WeeklyBudget, 'f', -1, 64),
	}
	if p.ZipCode != "" {
		parts = append(parts, fmt.Sprintf("(ZIP: %s)", p.ZipCode))
	}
	if len(p.DietaryRestrictions) > 0 {
		parts = append(parts, "Dietary restrictions: "+strings.Join(p.DietaryRestrictions, ", "))
	}
	if len(p.HealthComplications) > 0 {
		parts = append(parts, "Health complications: "+strings.Join(p.HealthComplications, ", "))
	}
	if notes := strings.TrimSpace(p.Notes); notes != "" {
		parts = append(parts, "Notes: "+notes)
	}
	return strings.Join(parts, ". ")
}
