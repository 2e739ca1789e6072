package webapi

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/sahla-platform/sahla/pkg/sdb/smodel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReviewsAggregateFreelancerRate(t *testing.T) {
	tc := newTestCase(t)
	controller := NewReviewController(tc.stors)

	freelancerUser := tc.createUser("rated@test.com", smodel.RoleFreelancer, false)
	freelancer, err := tc.stors.FreelancerStor.CreateFreelancer(&smodel.Freelancer{UserID: freelancerUser.ID})
	require.NoError(t, err)

	firstClient := tc.createUser("client1@test.com", smodel.RoleClient, false)
	_, err = tc.stors.ClientStor.CreateClient(&smodel.Client{UserID: firstClient.ID})
	require.NoError(t, err)

	secondClient := tc.createUser("client2@test.com", smodel.RoleClient, false)
	_, err = tc.stors.ClientStor.CreateClient(&smodel.Client{UserID: secondClient.ID})
	require.NoError(t, err)

	body := fmt.Sprintf(`{"freelancer_id":%d,"rating":5,"feedback":"great work"}`, freelancer.ID)
	rec := tc.doJSON(http.MethodPost, "/api/reviews", body, firstClient, controller.CreateReview)
	requireStatus(t, rec, http.StatusCreated)

	body = fmt.Sprintf(`{"freelancer_id":%d,"rating":2}`, freelancer.ID)
	rec = tc.doJSON(http.MethodPost, "/api/reviews", body, secondClient, controller.CreateReview)
	requireStatus(t, rec, http.StatusCreated)

	updated, err := tc.stors.FreelancerStor.GetFreelancerByID(freelancer.ID)
	require.NoError(t, err)
	assert.InDelta(t, 3.5, updated.Rate, 0.001)

	// A second review from the same client is refused.
	rec = tc.doJSON(http.MethodPost, "/api/reviews", body, secondClient, controller.CreateReview)
	requireStatus(t, rec, http.StatusBadRequest)
}

func TestReviewValidation(t *testing.T) {
	tc := newTestCase(t)
	controller := NewReviewController(tc.stors)

	freelancerUser := tc.createUser("fr@test.com", smodel.RoleFreelancer, false)
	freelancer, err := tc.stors.FreelancerStor.CreateFreelancer(&smodel.Freelancer{UserID: freelancerUser.ID})
	require.NoError(t, err)

	clientUser := tc.createUser("cl@test.com", smodel.RoleClient, false)
	_, err = tc.stors.ClientStor.CreateClient(&smodel.Client{UserID: clientUser.ID})
	require.NoError(t, err)

	// Out-of-range rating.
	body := fmt.Sprintf(`{"freelancer_id":%d,"rating":6}`, freelancer.ID)
	rec := tc.doJSON(http.MethodPost, "/api/reviews", body, clientUser, controller.CreateReview)
	requireStatus(t, rec, http.StatusBadRequest)

	// Freelancers can't post reviews.
	body = fmt.Sprintf(`{"freelancer_id":%d,"rating":4}`, freelancer.ID)
	rec = tc.doJSON(http.MethodPost, "/api/reviews", body, freelancerUser, controller.CreateReview)
	requireStatus(t, rec, http.StatusForbidden)
}
