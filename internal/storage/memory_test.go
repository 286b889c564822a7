// internal/storage/memory_test.go
package storage

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qsrhire/internal/models"
)

func createValidWorkerDraft() models.WorkerDraft {
	return models.WorkerDraft{
		FullName:       "Ravi Kumar",
		Age:            24,
		Gender:         "Male",
		PhoneNumber:    "9876543210",
		Email:          "ravi@example.com",
		Password:       "secret1",
		LanguagesKnown: []string{"Hindi", "English"},
		Region:         "Bangalore",
		Skills:         []string{"Barista"},
		AadhaarNumber:  "1234-5678-9012",
		IDProofURL:     "uploaded/id-proof.jpg",
		TermsAccepted:  true,
	}
}

func TestMemoryCreateWorkerRegistration(t *testing.T) {
	gw := NewMemory()
	ctx := context.Background()

	first, err := gw.CreateWorkerRegistration(ctx, createValidWorkerDraft())
	require.NoError(t, err)
	second, err := gw.CreateWorkerRegistration(ctx, createValidWorkerDraft())
	require.NoError(t, err)

	assert.NotEmpty(t, first.ID)
	assert.NotEmpty(t, second.ID)
	assert.NotEqual(t, first.ID, second.ID, "equal drafts must still get distinct ids")
	assert.Equal(t, models.RegistrationPending, first.Status)
	assert.Equal(t, models.RegistrationPending, second.Status)
}

func TestMemoryGetWorkerRegistration(t *testing.T) {
	gw := NewMemory()
	ctx := context.Background()

	created, err := gw.CreateWorkerRegistration(ctx, createValidWorkerDraft())
	require.NoError(t, err)

	fetched, err := gw.GetWorkerRegistration(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, fetched.ID)
	assert.Equal(t, "Ravi Kumar", fetched.FullName)
	assert.Equal(t, []string{"Barista"}, fetched.Skills)
}

func TestMemoryGetWorkerRegistration_NotFound(t *testing.T) {
	gw := NewMemory()

	_, err := gw.GetWorkerRegistration(context.Background(), "missing-id")
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
}

func TestMemoryEmployerAndFranchiseeRoundTrip(t *testing.T) {
	gw := NewMemory()
	ctx := context.Background()

	employer, err := gw.CreateEmployerRegistration(ctx, models.EmployerDraft{
		PhoneNumber:         "9876543210",
		RestaurantBrandName: "Cafe Aroma",
		POCFullName:         "Meera Shah",
		POCEmail:            "meera@cafearoma.in",
	})
	require.NoError(t, err)
	assert.Equal(t, models.RegistrationPending, employer.Status)

	gotEmployer, err := gw.GetEmployerRegistration(ctx, employer.ID)
	require.NoError(t, err)
	assert.Equal(t, "Cafe Aroma", gotEmployer.RestaurantBrandName)

	franchisee, err := gw.CreateFranchiseeRegistration(ctx, models.FranchiseeDraft{
		PhoneNumber:            "9876501234",
		FranchiseeBusinessName: "Aroma Franchising",
		RegisteredCompanyName:  "Aroma Franchising Pvt Ltd",
	})
	require.NoError(t, err)

	gotFranchisee, err := gw.GetFranchiseeRegistration(ctx, franchisee.ID)
	require.NoError(t, err)
	assert.Equal(t, "Aroma Franchising Pvt Ltd", gotFranchisee.RegisteredCompanyName)

	_, err = gw.GetEmployerRegistration(ctx, franchisee.ID)
	assert.True(t, IsNotFound(err), "record types must not share a namespace")
}

func TestMemoryConcurrentCreates(t *testing.T) {
	gw := NewMemory()
	ctx := context.Background()

	const n = 50
	ids := make(chan string, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			record, err := gw.CreateWorkerRegistration(ctx, createValidWorkerDraft())
			assert.NoError(t, err)
			ids <- record.ID
		}()
	}
	wg.Wait()
	close(ids)

	seen := map[string]bool{}
	for id := range ids {
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
	assert.Len(t, seen, n)
}
