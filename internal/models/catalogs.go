// internal/models/catalogs.go
package models

// Fixed selection catalogs shared by the registration forms and the job
// filter. Roles is the single canonical list used both for worker skill
// selection and for job-role filtering.
var (
	Genders = []string{"Male", "Female", "Other"}

	Languages = []string{
		"English", "Hindi", "Tamil", "Telugu",
		"Kannada", "Malayalam", "Bengali", "Marathi",
	}

	Regions = []string{
		"Mumbai", "Delhi", "Bangalore", "Hyderabad",
		"Chennai", "Kolkata", "Pune", "Ahmedabad",
	}

	Roles = []string{
		"Barista", "Helper", "Cleaner", "Waiter", "Kitchen Staff", "Cashier",
	}

	Shifts = []string{"Morning", "Evening", "Night", "Flexible"}
)

// InCatalog reports whether value is a member of the given catalog.
func InCatalog(catalog []string, value string) bool {
	for _, v := range catalog {
		if v == value {
			return true
		}
	}
	return false
}
