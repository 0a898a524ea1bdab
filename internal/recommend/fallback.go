package recommend

import "github.com/hyperpulsex/hyperpulse/internal/models"

var fallbackCatalog = []models.Exercise{
	{
		Name:            "Push-ups",
		Goals:           []string{"Muscle Building", "Weight Loss"},
		EquipmentNeeded: []string{models.NoEquipment},
		Location:        models.LocationAny,
		IsInjurySafe:    true,
	},
	{
		Name:            "Squats",
		Goals:           []string{"Muscle Building", "Weight Loss", "Toning"},
		EquipmentNeeded: []string{models.NoEquipment},
		Location:        models.LocationAny,
		IsInjurySafe:    true,
	},
	{
		Name:            "Lunges",
		Goals:           []string{"Weight Loss", "Toning"},
		EquipmentNeeded: []string{models.NoEquipment},
		Location:        models.LocationAny,
		IsInjurySafe:    true,
	},
	{
		Name:            "Sprint in Place",
		Goals:           []string{"Weight Loss", "Cardio"},
		EquipmentNeeded: []string{models.NoEquipment},
		Location:        models.LocationAny,
		IsInjurySafe:    true,
	},
}

// FallbackCatalog returns a copy of the built-in exercise list served when
// the catalog store is empty or unreachable.
func FallbackCatalog() []models.Exercise {
	out := make([]models.Exercise, len(fallbackCatalog))
	for i, ex := range fallbackCatalog {
		ex.Goals = append([]string(nil), ex.Goals...)
		ex.EquipmentNeeded = append([]string(nil), ex.EquipmentNeeded...)
		out[i] = ex
	}
	return out
}

// FailSafe returns the response served when recommending fails.
func FailSafe() []models.Exercise {
	return FallbackCatalog()[:FailSafeResults]
}
