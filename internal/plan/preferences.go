package plan

import "strings"

// MaxNotesLength bounds the free-text notes, in runes.
const MaxNotesLength = 500

// Preferences is what the household tells us before a plan is generated.
type Preferences struct {
	ZipCode             string   `json:"zipCode"`
	FamilySize          int      `json:"familySize" binding:"gte=1"`
	WeeklyBudget        float64  `json:"weeklyBudget" binding:"gte=0"`
	DietaryRestrictions []string `json:"dietaryRestrictions"`
	HealthComplications []string `json:"healthComplications"`
	Notes               string   `json:"notes"`
}

// DefaultPreferences returns the values a new session starts with.
func DefaultPreferences() Preferences {
	return Preferences{
		ZipCode:             "",
		FamilySize:          4,
		WeeklyBudget:        50,
		DietaryRestrictions: []string{},
		HealthComplications: []string{},
		Notes:               "",
	}
}

// PreferencesPatch is a partial update; nil fields are left untouched.
type PreferencesPatch struct {
	ZipCode             *string   `json:"zipCode"`
	FamilySize          *int      `json:"familySize" binding:"omitempty,gte=1"`
	WeeklyBudget        *float64  `json:"weeklyBudget" binding:"omitempty,gte=0"`
	DietaryRestrictions *[]string `json:"dietaryRestrictions"`
	HealthComplications *[]string `json:"healthComplications"`
	Notes               *string   `json:"notes"`
}

// Apply returns p with the patch merged in, normalized.
func (p Preferences) Apply(patch PreferencesPatch) Preferences {
	out := p.Clone()
	if patch.ZipCode != nil {
		out.ZipCode = *patch.ZipCode
	}
	if patch.FamilySize != nil {
		out.FamilySize = *patch.FamilySize
	}
	if patch.WeeklyBudget != nil {
		out.WeeklyBudget = *patch.WeeklyBudget
	}
	if patch.DietaryRestrictions != nil {
		out.DietaryRestrictions = append([]string{}, (*patch.DietaryRestrictions)...)
	}
	if patch.HealthComplications != nil {
		out.HealthComplications = append([]string{}, (*patch.HealthComplications)...)
	}
	if patch.Notes != nil {
		out.Notes = *patch.Notes
	}
	return out.Normalize()
}

// Normalize keeps only the digits of the zip code (at most five), drops
// duplicate and blank restriction entries keeping the first occurrence, and
// truncates notes to MaxNotesLength runes.
func (p Preferences) Normalize() Preferences {
	out := p.Clone()
	out.ZipCode = NormalizeZip(p.ZipCode)
	out.DietaryRestrictions = dedupe(p.DietaryRestrictions)
	out.HealthComplications = dedupe(p.HealthComplications)
	if r := []rune(p.Notes); len(r) > MaxNotesLength {
		out.Notes = string(r[:MaxNotesLength])
	}
	return out
}

// Clone returns a deep copy of p.
func (p Preferences) Clone() Preferences {
	out := p
	out.DietaryRestrictions = append([]string{}, p.DietaryRestrictions...)
	out.HealthComplications = append([]string{}, p.HealthComplications...)
	return out
}

// NormalizeZip keeps the first five digits of s.
func NormalizeZip(s string) string {
	var b strings.Builder
	for _, r := range s {
		if b.Len() == 5 {
			break
		}
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func dedupe(items []string) []string {
	out := make([]string, 0, len(items))
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	return out
}
