package service_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wanderwise/backend/internal/domain"
	"github.com/wanderwise/backend/internal/repo"
	"github.com/wanderwise/backend/internal/service"
)

func traveler(id, email string, owner *string) domain.User {
	return domain.User{
		ID:            id,
		Email:         email,
		Name:          "Existing Name",
		Roles:         []string{domain.RoleTraveler},
		IsActive:      true,
		Profile:       domain.Profile{"phone": "111", "notes": "old"},
		TravelAgentID: owner,
	}
}

func claimReq(email string) domain.ClaimRequest {
	return domain.ClaimRequest{Email: email, Name: "Jane"}
}

// ---- outcomes --------------------------------------------------------------

func TestTravelerService_Resolve_CreatesWhenEmailUnknown(t *testing.T) {
	store := newMemUserRepo()
	svc := service.NewTravelerService(store, discardLogger())

	req := claimReq("new@ex.com")
	req.Phone = "555-1111"
	res, err := svc.Resolve(context.Background(), "agentA", req)

	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeCreated, res.Outcome)
	assert.Equal(t, []string{domain.RoleTraveler}, res.User.Roles)
	require.NotNil(t, res.User.TravelAgentID)
	assert.Equal(t, "agentA", *res.User.TravelAgentID)
	assert.NotEmpty(t, res.User.ID)
	assert.True(t, res.User.IsActive)
	assert.Equal(t, "555-1111", res.User.Profile["phone"])
	assert.Contains(t, res.User.Profile, "notes")
	assert.Nil(t, res.User.Profile["notes"])
	assert.Equal(t, 1, store.count())
}

func TestTravelerService_Resolve_CreateHonorsIsActiveAndProfile(t *testing.T) {
	store := newMemUserRepo()
	svc := service.NewTravelerService(store, discardLogger())

	req := claimReq("new@ex.com")
	req.IsActive = boolPtr(false)
	req.Profile = domain.Profile{"company": "Acme"}
	res, err := svc.Resolve(context.Background(), "agentA", req)

	require.NoError(t, err)
	assert.False(t, res.User.IsActive)
	assert.Equal(t, "Acme", res.User.Profile["company"])
}

func TestTravelerService_Resolve_CreateTopLevelPhoneBeatsProfile(t *testing.T) {
	store := newMemUserRepo()
	svc := service.NewTravelerService(store, discardLogger())

	req := claimReq("new@ex.com")
	req.Phone = "555-1111"
	req.Profile = domain.Profile{"phone": 5552222, "notes": 7}
	res, err := svc.Resolve(context.Background(), "agentA", req)

	require.NoError(t, err)
	assert.Equal(t, "555-1111", res.User.Profile["phone"])
	assert.Equal(t, 7, res.User.Profile["notes"])
}

func TestTravelerService_Resolve_ClaimsUnownedTraveler(t *testing.T) {
	store := newMemUserRepo(traveler("u1", "sam@ex.com", nil))
	svc := service.NewTravelerService(store, discardLogger())

	res, err := svc.Resolve(context.Background(), "agentA", claimReq("sam@ex.com"))

	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeClaimed, res.Outcome)
	assert.Equal(t, "u1", res.User.ID)
	assert.Equal(t, "Jane", res.User.Name)
	require.NotNil(t, store.get("u1").TravelAgentID)
	assert.Equal(t, "agentA", *store.get("u1").TravelAgentID)
	assert.Equal(t, 1, store.count())
}

func TestTravelerService_Resolve_RejectsAlreadyOwnedByYou(t *testing.T) {
	before := traveler("u1", "sam@ex.com", strPtr("agentA"))
	store := newMemUserRepo(before)
	svc := service.NewTravelerService(store, discardLogger())

	res, err := svc.Resolve(context.Background(), "agentA", claimReq("sam@ex.com"))

	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeRejectedAlreadyOwnedByYou, res.Outcome)
	assert.Equal(t, before, res.User)
	assert.Equal(t, before, store.get("u1"))
	assert.Zero(t, store.writes)
}

func TestTravelerService_Resolve_RejectsOwnedByOther(t *testing.T) {
	before := traveler("u1", "bob@ex.com", strPtr("agentB"))
	store := newMemUserRepo(before)
	svc := service.NewTravelerService(store, discardLogger())

	res, err := svc.Resolve(context.Background(), "agentA", claimReq("bob@ex.com"))

	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeRejectedOwnedByOther, res.Outcome)
	assert.True(t, res.Outcome.IsRejection())
	assert.Equal(t, before, store.get("u1"))
	assert.Equal(t, "agentB", *store.get("u1").TravelAgentID)
	assert.Zero(t, store.writes)
}

func TestTravelerService_Resolve_SecondCallIsRejectedNotClaimedTwice(t *testing.T) {
	store := newMemUserRepo(traveler("u1", "sam@ex.com", nil))
	svc := service.NewTravelerService(store, discardLogger())

	first, err := svc.Resolve(context.Background(), "agentA", claimReq("sam@ex.com"))
	require.NoError(t, err)
	second, err := svc.Resolve(context.Background(), "agentA", claimReq("sam@ex.com"))
	require.NoError(t, err)

	assert.Equal(t, domain.OutcomeClaimed, first.Outcome)
	assert.Equal(t, domain.OutcomeRejectedAlreadyOwnedByYou, second.Outcome)
	assert.Equal(t, 1, store.writes)
}

func TestTravelerService_Resolve_SecondCreateIsRejectedNotDuplicated(t *testing.T) {
	store := newMemUserRepo()
	svc := service.NewTravelerService(store, discardLogger())

	first, err := svc.Resolve(context.Background(), "agentA", claimReq("new@ex.com"))
	require.NoError(t, err)
	second, err := svc.Resolve(context.Background(), "agentA", claimReq("new@ex.com"))
	require.NoError(t, err)

	assert.Equal(t, domain.OutcomeCreated, first.Outcome)
	assert.Equal(t, domain.OutcomeRejectedAlreadyOwnedByYou, second.Outcome)
	assert.Equal(t, 1, store.count())
}

// ---- profile merge ---------------------------------------------------------

func TestTravelerService_Resolve_ClaimMergesProfile(t *testing.T) {
	store := newMemUserRepo(traveler("u1", "sam@ex.com", nil))
	svc := service.NewTravelerService(store, discardLogger())

	req := claimReq("sam@ex.com")
	req.Notes = "new"
	res, err := svc.Resolve(context.Background(), "agentA", req)

	require.NoError(t, err)
	assert.Equal(t, domain.Profile{"phone": "111", "notes": "new"}, res.User.Profile)
}

func TestTravelerService_Resolve_ClaimKeepsUnrelatedProfileKeys(t *testing.T) {
	existing := traveler("u1", "sam@ex.com", nil)
	existing.Profile["address"] = "1 Main St"
	store := newMemUserRepo(existing)
	svc := service.NewTravelerService(store, discardLogger())

	req := claimReq("sam@ex.com")
	req.Phone = "222"
	req.Profile = domain.Profile{"company": "Acme"}
	res, err := svc.Resolve(context.Background(), "agentA", req)

	require.NoError(t, err)
	assert.Equal(t, domain.Profile{
		"phone":   "222",
		"notes":   "old",
		"address": "1 Main St",
		"company": "Acme",
	}, res.User.Profile)
}

func TestTravelerService_Resolve_ClaimProfileValuesWinOverStored(t *testing.T) {
	tests := []struct {
		name    string
		phone   string
		profile domain.Profile
		want    any
	}{
		{"non-string phone in profile", "", domain.Profile{"phone": 5551111}, 5551111},
		{"string phone in profile", "", domain.Profile{"phone": "333"}, "333"},
		{"empty phone in profile clears", "", domain.Profile{"phone": ""}, nil},
		{"top-level phone beats profile", "444", domain.Profile{"phone": 5551111}, "444"},
		{"absent falls back to stored", "", domain.Profile{"company": "Acme"}, "111"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			store := newMemUserRepo(traveler("u1", "sam@ex.com", nil))
			svc := service.NewTravelerService(store, discardLogger())

			req := claimReq("sam@ex.com")
			req.Phone = tc.phone
			req.Profile = tc.profile
			res, err := svc.Resolve(context.Background(), "agentA", req)

			require.NoError(t, err)
			assert.Equal(t, tc.want, res.User.Profile["phone"])
			assert.Equal(t, "old", res.User.Profile["notes"])
		})
	}
}

func TestTravelerService_Resolve_ClaimKeepsIsActiveUnlessGiven(t *testing.T) {
	existing := traveler("u1", "sam@ex.com", nil)
	existing.IsActive = false
	store := newMemUserRepo(existing)
	svc := service.NewTravelerService(store, discardLogger())

	res, err := svc.Resolve(context.Background(), "agentA", claimReq("sam@ex.com"))

	require.NoError(t, err)
	assert.False(t, res.User.IsActive)
}

// ---- validation ------------------------------------------------------------

func TestTravelerService_Resolve_Validation(t *testing.T) {
	tests := []struct {
		name      string
		requester string
		req       domain.ClaimRequest
		missing   string
	}{
		{"no requester", "", claimReq("a@ex.com"), "requester"},
		{"blank email", "agentA", domain.ClaimRequest{Email: "  ", Name: "Jane"}, "email"},
		{"blank name", "agentA", domain.ClaimRequest{Email: "a@ex.com", Name: " "}, "name"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			// Any store access would panic on the nil function fields.
			svc := service.NewTravelerService(&mockUserRepo{}, discardLogger())

			_, err := svc.Resolve(context.Background(), tc.requester, tc.req)

			require.ErrorIs(t, err, domain.ErrValidation)
			assert.Contains(t, err.Error(), tc.missing)
		})
	}
}

func TestTravelerService_Resolve_TrimsEmail(t *testing.T) {
	store := newMemUserRepo(traveler("u1", "sam@ex.com", strPtr("agentA")))
	svc := service.NewTravelerService(store, discardLogger())

	res, err := svc.Resolve(context.Background(), "agentA", claimReq("  sam@ex.com "))

	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeRejectedAlreadyOwnedByYou, res.Outcome)
}

// ---- store failures --------------------------------------------------------

func TestTravelerService_Resolve_LookupFailed(t *testing.T) {
	storeErr := errors.New("connection refused")
	svc := service.NewTravelerService(&mockUserRepo{
		getByEmail: func(context.Context, string) (domain.User, error) { return domain.User{}, storeErr },
	}, discardLogger())

	res, err := svc.Resolve(context.Background(), "agentA", claimReq("a@ex.com"))

	assert.Equal(t, domain.OutcomeLookupFailed, res.Outcome)
	assert.ErrorIs(t, err, domain.ErrLookupFailed)
	assert.ErrorIs(t, err, storeErr)
	assert.Empty(t, res.User.ID)
}

func TestTravelerService_Resolve_CreateWriteFailed(t *testing.T) {
	storeErr := errors.New("disk full")
	svc := service.NewTravelerService(&mockUserRepo{
		getByEmail: func(context.Context, string) (domain.User, error) { return domain.User{}, domain.ErrNotFound },
		create:     func(context.Context, domain.User) (domain.User, error) { return domain.User{}, storeErr },
	}, discardLogger())

	res, err := svc.Resolve(context.Background(), "agentA", claimReq("a@ex.com"))

	assert.Equal(t, domain.OutcomeWriteFailed, res.Outcome)
	assert.ErrorIs(t, err, domain.ErrWriteFailed)
	assert.ErrorIs(t, err, storeErr)
}

func TestTravelerService_Resolve_ClaimWriteFailed(t *testing.T) {
	storeErr := errors.New("timeout")
	svc := service.NewTravelerService(&mockUserRepo{
		getByEmail: func(context.Context, string) (domain.User, error) {
			return traveler("u1", "a@ex.com", nil), nil
		},
		claimUnowned: func(context.Context, repo.Claim) (domain.User, error) { return domain.User{}, storeErr },
	}, discardLogger())

	res, err := svc.Resolve(context.Background(), "agentA", claimReq("a@ex.com"))

	assert.Equal(t, domain.OutcomeWriteFailed, res.Outcome)
	assert.ErrorIs(t, err, domain.ErrWriteFailed)
	assert.ErrorIs(t, err, storeErr)
}

// ---- races -----------------------------------------------------------------

func TestTravelerService_Resolve_ClaimLostToOtherAgent(t *testing.T) {
	reads := 0
	svc := service.NewTravelerService(&mockUserRepo{
		getByEmail: func(context.Context, string) (domain.User, error) {
			reads++
			if reads == 1 {
				return traveler("u1", "a@ex.com", nil), nil
			}
			return traveler("u1", "a@ex.com", strPtr("agentB")), nil
		},
		claimUnowned: func(context.Context, repo.Claim) (domain.User, error) {
			return domain.User{}, domain.ErrNotFound
		},
	}, discardLogger())

	res, err := svc.Resolve(context.Background(), "agentA", claimReq("a@ex.com"))

	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeRejectedOwnedByOther, res.Outcome)
	assert.Equal(t, 2, reads)
}

func TestTravelerService_Resolve_ClaimMatchedNothingAndStillUnowned(t *testing.T) {
	svc := service.NewTravelerService(&mockUserRepo{
		getByEmail: func(context.Context, string) (domain.User, error) {
			return traveler("u1", "a@ex.com", nil), nil
		},
		claimUnowned: func(context.Context, repo.Claim) (domain.User, error) {
			return domain.User{}, domain.ErrNotFound
		},
	}, discardLogger())

	res, err := svc.Resolve(context.Background(), "agentA", claimReq("a@ex.com"))

	assert.Equal(t, domain.OutcomeWriteFailed, res.Outcome)
	assert.ErrorIs(t, err, domain.ErrWriteFailed)
}

func TestTravelerService_Resolve_CreateLostToConcurrentCreate(t *testing.T) {
	reads := 0
	svc := service.NewTravelerService(&mockUserRepo{
		getByEmail: func(context.Context, string) (domain.User, error) {
			reads++
			if reads == 1 {
				return domain.User{}, domain.ErrNotFound
			}
			return traveler("u9", "a@ex.com", strPtr("agentB")), nil
		},
		create: func(context.Context, domain.User) (domain.User, error) {
			return domain.User{}, fmt.Errorf("repo: %w", domain.ErrConflict)
		},
	}, discardLogger())

	res, err := svc.Resolve(context.Background(), "agentA", claimReq("a@ex.com"))

	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeRejectedOwnedByOther, res.Outcome)
	assert.Equal(t, "u9", res.User.ID)
}

func TestTravelerService_Resolve_ConcurrentAgentsExactlyOneClaims(t *testing.T) {
	store := newMemUserRepo(traveler("u1", "sam@ex.com", nil))
	svc := service.NewTravelerService(store, discardLogger())

	agents := []string{"agentA", "agentB", "agentC", "agentD", "agentE", "agentF"}
	outcomes := make([]domain.ClaimOutcome, len(agents))
	var wg sync.WaitGroup
	for i, agent := range agents {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := svc.Resolve(context.Background(), agent, claimReq("sam@ex.com"))
			assert.NoError(t, err)
			outcomes[i] = res.Outcome
		}()
	}
	wg.Wait()

	claimed := 0
	for _, o := range outcomes {
		switch o {
		case domain.OutcomeClaimed:
			claimed++
		default:
			assert.Equal(t, domain.OutcomeRejectedOwnedByOther, o)
		}
	}
	assert.Equal(t, 1, claimed)
	assert.Equal(t, 1, store.writes)
}

func TestTravelerService_Resolve_ConcurrentCreatesProduceOneRecord(t *testing.T) {
	store := newMemUserRepo()
	svc := service.NewTravelerService(store, discardLogger())

	var wg sync.WaitGroup
	for _, agent := range []string{"agentA", "agentB", "agentC", "agentD"} {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Resolve(context.Background(), agent, claimReq("new@ex.com"))
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, store.count())
}
