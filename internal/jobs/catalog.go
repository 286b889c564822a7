// internal/jobs/catalog.go
package jobs

import (
	"qsrhire/internal/common/logger"
	"qsrhire/internal/models"
	"qsrhire/pkg/catalog"
)

// Default returns the built-in job catalog used when no external
// catalog file is configured.
func Default() []models.JobListing {
	return []models.JobListing{
		{
			ID:             "1",
			RestaurantName: "McDonald's India",
			Role:           "Waiter",
			PayRate:        "₹12,000/month",
			ShiftTiming:    "Morning (9am–5pm)",
			Location:       "Bengaluru, Indiranagar",
		},
		{
			ID:             "2",
			RestaurantName: "Starbucks",
			Role:           "Barista",
			PayRate:        "₹15,000/month",
			ShiftTiming:    "Evening (2pm–10pm)",
			Location:       "Mumbai, Bandra",
		},
		{
			ID:             "3",
			RestaurantName: "Domino's Pizza",
			Role:           "Kitchen Staff",
			PayRate:        "₹10,000/month",
			ShiftTiming:    "Night (6pm–2am)",
			Location:       "Delhi, Connaught Place",
		},
		{
			ID:             "4",
			RestaurantName: "KFC India",
			Role:           "Cashier",
			PayRate:        "₹11,500/month",
			ShiftTiming:    "Flexible",
			Location:       "Pune, Koregaon Park",
		},
		{
			ID:             "5",
			RestaurantName: "Cafe Coffee Day",
			Role:           "Barista",
			PayRate:        "₹13,000/month",
			ShiftTiming:    "Morning (8am–4pm)",
			Location:       "Hyderabad, HITEC City",
		},
		{
			ID:             "6",
			RestaurantName: "Subway",
			Role:           "Helper",
			PayRate:        "₹9,500/month",
			ShiftTiming:    "Evening (3pm–11pm)",
			Location:       "Chennai, T Nagar",
		},
	}
}

// LoadOrDefault loads a schema-validated catalog file, falling back to
// the built-in catalog when no path is configured. A configured path
// that fails to load is an error, not a silent fallback.
func LoadOrDefault(path string, log logger.Logger) ([]models.JobListing, error) {
	if path == "" {
		return Default(), nil
	}
	listings, err := catalog.Load(path)
	if err != nil {
		return nil, err
	}
	log.Info("job catalog loaded", map[string]interface{}{
		"path":  path,
		"count": len(listings),
	})
	return listings, nil
}
