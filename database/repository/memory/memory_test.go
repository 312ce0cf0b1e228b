package memory

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"hiredaily/database"
	accountRepo "hiredaily/database/repository/account"
	bookingRepo "hiredaily/database/repository/booking"
	customerRepo "hiredaily/database/repository/customer"
	workerRepo "hiredaily/database/repository/worker"
	"hiredaily/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	_ customerRepo.CustomerRepository = (*CustomerRepo)(nil)
	_ workerRepo.WorkerRepository     = (*WorkerRepo)(nil)
	_ bookingRepo.BookingRepository   = (*BookingRepo)(nil)
	_ accountRepo.EmailRegistry       = (*EmailRegistry)(nil)
)

func seedBooking(t *testing.T, repo *BookingRepo, id string, status models.BookingStatus) {
	t.Helper()
	require.NoError(t, repo.Create(context.Background(), &models.Booking{
		ID:             id,
		CustomerID:     "c-1",
		WorkerID:       "w-1",
		ServiceType:    "plumber",
		ScheduledDate:  time.Now().Add(48 * time.Hour),
		EstimatedHours: 3,
		HourlyRate:     40,
		Status:         status,
		PaymentStatus:  models.PaymentPending,
	}))
}

func TestEmailClaimIsExclusiveAcrossKinds(t *testing.T) {
	emails := NewStore().Emails()
	ctx := context.Background()

	require.NoError(t, emails.Claim(ctx, "Sam@Example.com", models.KindCustomer, "c-1"))
	err := emails.Claim(ctx, "sam@example.com", models.KindWorker, "w-1")
	assert.ErrorIs(t, err, database.ErrDuplicate)

	require.NoError(t, emails.Release(ctx, "SAM@example.com"))
	assert.NoError(t, emails.Claim(ctx, "sam@example.com", models.KindWorker, "w-1"))
}

func TestCustomerEmailIsUniqueAndCaseInsensitive(t *testing.T) {
	repo := NewStore().Customers()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.Customer{ID: "c-1", Email: "Ann@Example.com", PasswordHash: "h"}))
	err := repo.Create(ctx, &models.Customer{ID: "c-2", Email: "ann@example.com"})
	assert.ErrorIs(t, err, database.ErrDuplicate)

	exists, err := repo.ExistsByEmail(ctx, "ANN@example.com")
	require.NoError(t, err)
	assert.True(t, exists)

	byEmail, err := repo.GetByEmail(ctx, "ann@example.com")
	require.NoError(t, err)
	assert.Equal(t, "h", byEmail.PasswordHash)

	byID, err := repo.GetByID(ctx, "c-1")
	require.NoError(t, err)
	assert.Empty(t, byID.PasswordHash)
}

func TestCreateComputesTotalCost(t *testing.T) {
	repo := NewStore().Bookings()
	seedBooking(t, repo, "b-1", models.StatusPending)

	b, err := repo.GetByID(context.Background(), "b-1")
	require.NoError(t, err)
	assert.Equal(t, 120.0, b.TotalCost)
}

func TestUpdateStatusIsConditional(t *testing.T) {
	repo := NewStore().Bookings()
	ctx := context.Background()
	seedBooking(t, repo, "b-1", models.StatusPending)

	_, err := repo.UpdateStatus(ctx, bookingRepo.StatusChange{
		BookingID: "b-1",
		WorkerID:  "w-2",
		From:      []models.BookingStatus{models.StatusPending},
		To:        models.StatusConfirmed,
	})
	assert.ErrorIs(t, err, database.ErrNoMatch, "another worker's booking")

	_, err = repo.UpdateStatus(ctx, bookingRepo.StatusChange{
		BookingID: "b-1",
		WorkerID:  "w-1",
		From:      []models.BookingStatus{models.StatusConfirmed},
		To:        models.StatusInProgress,
	})
	assert.ErrorIs(t, err, database.ErrNoMatch, "stale from-status")

	b, err := repo.UpdateStatus(ctx, bookingRepo.StatusChange{
		BookingID: "b-1",
		WorkerID:  "w-1",
		From:      []models.BookingStatus{models.StatusPending},
		To:        models.StatusConfirmed,
	})
	require.NoError(t, err)
	assert.Equal(t, models.StatusConfirmed, b.Status)
}

func TestConcurrentTransitionsHaveOneWinner(t *testing.T) {
	repo := NewStore().Bookings()
	seedBooking(t, repo, "b-1", models.StatusPending)

	var wins atomic.Int32
	var wg sync.WaitGroup
	for _, to := range []models.BookingStatus{models.StatusConfirmed, models.StatusCancelled, models.StatusConfirmed, models.StatusCancelled} {
		wg.Add(1)
		go func(to models.BookingStatus) {
			defer wg.Done()
			_, err := repo.UpdateStatus(context.Background(), bookingRepo.StatusChange{
				BookingID: "b-1",
				WorkerID:  "w-1",
				From:      []models.BookingStatus{models.StatusPending},
				To:        to,
			})
			if err == nil {
				wins.Add(1)
			}
		}(to)
	}
	wg.Wait()
	assert.Equal(t, int32(1), wins.Load())
}

func TestSetRatingOnlyOnceAfterCompletion(t *testing.T) {
	repo := NewStore().Bookings()
	ctx := context.Background()
	seedBooking(t, repo, "b-1", models.StatusConfirmed)
	seedBooking(t, repo, "b-2", models.StatusCompleted)

	rating := models.BookingRating{Score: 4, ReviewDate: time.Now()}
	_, err := repo.SetRating(ctx, "b-1", "c-1", rating)
	assert.ErrorIs(t, err, database.ErrNoMatch)

	_, err = repo.SetRating(ctx, "b-2", "c-2", rating)
	assert.ErrorIs(t, err, database.ErrNoMatch)

	b, err := repo.SetRating(ctx, "b-2", "c-1", rating)
	require.NoError(t, err)
	assert.Equal(t, 4, b.Rating.Score)

	_, err = repo.SetRating(ctx, "b-2", "c-1", models.BookingRating{Score: 1})
	assert.ErrorIs(t, err, database.ErrNoMatch)

	scores, err := repo.RatedScores(ctx, "w-1")
	require.NoError(t, err)
	assert.Equal(t, []int{4}, scores)
}

func TestMarkPaidConfirmsOnlyPending(t *testing.T) {
	repo := NewStore().Bookings()
	ctx := context.Background()
	seedBooking(t, repo, "b-1", models.StatusPending)
	seedBooking(t, repo, "b-2", models.StatusInProgress)

	b, err := repo.MarkPaid(ctx, "b-1")
	require.NoError(t, err)
	assert.Equal(t, models.StatusConfirmed, b.Status)
	assert.Equal(t, models.PaymentPaid, b.PaymentStatus)

	b, err = repo.MarkPaid(ctx, "b-2")
	require.NoError(t, err)
	assert.Equal(t, models.StatusInProgress, b.Status)
	assert.Equal(t, models.PaymentPaid, b.PaymentStatus)

	_, err = repo.MarkPaid(ctx, "missing")
	assert.ErrorIs(t, err, database.ErrNotFound)
}

func TestListSortsByParty(t *testing.T) {
	repo := NewStore().Bookings()
	ctx := context.Background()
	base := time.Now().Add(24 * time.Hour)
	for i, id := range []string{"b-1", "b-2", "b-3"} {
		require.NoError(t, repo.Create(ctx, &models.Booking{
			ID:            id,
			CustomerID:    "c-1",
			WorkerID:      "w-1",
			ScheduledDate: base.Add(time.Duration(i) * time.Hour),
			Status:        models.StatusPending,
		}))
	}

	asCustomer, total, err := repo.List(ctx, models.BookingFilter{CustomerID: "c-1", Page: models.Page{Limit: 2}})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, asCustomer, 2)
	assert.Equal(t, "b-3", asCustomer[0].ID)

	asWorker, _, err := repo.List(ctx, models.BookingFilter{WorkerID: "w-1", Page: models.Page{Page: 2, Limit: 2}})
	require.NoError(t, err)
	require.Len(t, asWorker, 1)
	assert.Equal(t, "b-3", asWorker[0].ID)

	none, total, err := repo.List(ctx, models.BookingFilter{CustomerID: "c-1", Status: "completed"})
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, none)
}

func TestWorkerSearchMatchesMongoSemantics(t *testing.T) {
	repo := NewStore().Workers()
	ctx := context.Background()
	add := func(id, name, city string, rate, avg float64, available bool, skills ...models.Skill) {
		w := &models.Worker{
			ID:           id,
			Name:         name,
			Email:        id + "@example.com",
			Skills:       skills,
			Location:     models.Location{City: city, State: "KA", ZipCode: "560001"},
			HourlyRate:   rate,
			Rating:       models.Rating{Average: avg},
			Availability: models.Availability{IsAvailable: available},
		}
		require.NoError(t, repo.Create(ctx, w))
	}
	add("w-1", "Ravi", "Bengaluru", 30, 4.5, true, models.SkillPlumber)
	add("w-2", "Asha", "Mysuru", 60, 4.9, true, models.SkillPlumber, models.SkillPainter)
	add("w-3", "Off Duty", "Bengaluru", 20, 5, false, models.SkillPlumber)

	all, total, err := repo.Search(ctx, models.WorkerSearchCriteria{Skill: "plumber"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Equal(t, "w-2", all[0].ID)

	maxRate := 50.0
	cheap, _, err := repo.Search(ctx, models.WorkerSearchCriteria{Location: "bengal", MaxRate: &maxRate})
	require.NoError(t, err)
	require.Len(t, cheap, 1)
	assert.Equal(t, "w-1", cheap[0].ID)

	painters, _, err := repo.Search(ctx, models.WorkerSearchCriteria{Search: "PAINT"})
	require.NoError(t, err)
	require.Len(t, painters, 1)
	assert.Equal(t, "w-2", painters[0].ID)
}
