package firestore

import (
	"context"
	"os"
	"testing"

	"lifelink/internal/domain/entity"
	"lifelink/internal/domain/repository"

	fs "cloud.google.com/go/firestore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// These tests run against the Firestore emulator and are skipped otherwise:
//
//	gcloud emulators firestore start --host-port=127.0.0.1:8900
//	FIRESTORE_EMULATOR_HOST=127.0.0.1:8900 go test ./internal/infra/persistence/firestore/...
func newEmulatorClient(t *testing.T) *fs.Client {
	t.Helper()

	if os.Getenv("FIRESTORE_EMULATOR_HOST") == "" {
		t.Skip("FIRESTORE_EMULATOR_HOST not set")
	}

	client, err := fs.NewClient(context.Background(), "lifelink-test")
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })

	return client
}

func createPendingRequest(t *testing.T, repo repository.RequestRepository, units int) string {
	t.Helper()

	id, err := repo.Create(context.Background(), &entity.BloodRequest{
		BloodType:    entity.BloodType("A+"),
		Units:        units,
		Urgency:      entity.UrgencyNormal,
		HospitalID:   "hospital-1",
		HospitalName: "City General",
		Location:     "Springfield",
		Status:       entity.StatusPending,
	})
	require.NoError(t, err)

	return id
}

func donorOffer(donorID string) *entity.DonorResponse {
	return &entity.DonorResponse{
		DonorID:      donorID,
		UnitsDonated: 1,
		Availability: "weekends",
	}
}

func TestSubmitResponse_RejectsDuplicateDonor(t *testing.T) {
	client := newEmulatorClient(t)
	repo := NewRequestRepository(client)
	ctx := context.Background()

	requestID := createPendingRequest(t, repo, 3)

	outcome, err := repo.SubmitResponse(ctx, requestID, donorOffer("donor-1"), true)
	require.NoError(t, err)
	assert.NotEmpty(t, outcome.ResponseID)

	_, err = repo.SubmitResponse(ctx, requestID, donorOffer("donor-1"), true)
	assert.ErrorIs(t, err, repository.ErrAlreadyResponded)
}

func TestSubmitResponse_AutoFulfillFlipsStatusAtThreshold(t *testing.T) {
	client := newEmulatorClient(t)
	repo := NewRequestRepository(client)
	ctx := context.Background()

	requestID := createPendingRequest(t, repo, 2)

	// Below threshold the outcome must not report fulfillment.
	outcome, err := repo.SubmitResponse(ctx, requestID, donorOffer("donor-1"), true)
	require.NoError(t, err)
	assert.False(t, outcome.Fulfilled)

	request, err := repo.FindByID(ctx, requestID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPending, request.Status)

	// The reported outcome and the stored status flip together.
	outcome, err = repo.SubmitResponse(ctx, requestID, donorOffer("donor-2"), true)
	require.NoError(t, err)
	assert.True(t, outcome.Fulfilled)

	request, err = repo.FindByID(ctx, requestID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusFulfilled, request.Status)

	_, err = repo.SubmitResponse(ctx, requestID, donorOffer("donor-3"), true)
	assert.ErrorIs(t, err, repository.ErrRequestNotPending)
}

func TestSubmitResponse_AutoFulfillDisabled(t *testing.T) {
	client := newEmulatorClient(t)
	repo := NewRequestRepository(client)
	ctx := context.Background()

	requestID := createPendingRequest(t, repo, 1)

	outcome, err := repo.SubmitResponse(ctx, requestID, donorOffer("donor-1"), false)
	require.NoError(t, err)
	assert.False(t, outcome.Fulfilled)

	request, err := repo.FindByID(ctx, requestID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPending, request.Status)
}

func TestSubmitResponse_RequestNotFound(t *testing.T) {
	client := newEmulatorClient(t)
	repo := NewRequestRepository(client)

	_, err := repo.SubmitResponse(context.Background(), "missing-request", donorOffer("donor-1"), true)
	assert.ErrorIs(t, err, repository.ErrRequestNotFound)
}

func TestDelete_CascadesResponses(t *testing.T) {
	client := newEmulatorClient(t)
	repo := NewRequestRepository(client)
	responseRepo := NewResponseRepository(client)
	ctx := context.Background()

	requestID := createPendingRequest(t, repo, 5)
	_, err := repo.SubmitResponse(ctx, requestID, donorOffer("donor-1"), true)
	require.NoError(t, err)
	_, err = repo.SubmitResponse(ctx, requestID, donorOffer("donor-2"), true)
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, requestID))

	_, err = repo.FindByID(ctx, requestID)
	assert.ErrorIs(t, err, repository.ErrRequestNotFound)

	responses, err := responseRepo.ListByRequest(ctx, requestID)
	require.NoError(t, err)
	assert.Empty(t, responses)
}
