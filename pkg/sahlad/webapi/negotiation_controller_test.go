package webapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/sahla-platform/sahla/pkg/sdb/smodel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNegotiationAgreeEndpoint(t *testing.T) {
	tc := newTestCase(t)
	controller := NewNegotiationController(tc.negotiationService)

	clientUser := tc.createUser("client@test.com", smodel.RoleClient, false)
	_, err := tc.stors.ClientStor.CreateClient(&smodel.Client{UserID: clientUser.ID})
	require.NoError(t, err)

	freelancerUser := tc.createUser("freelancer@test.com", smodel.RoleFreelancer, false)
	freelancer, err := tc.stors.FreelancerStor.CreateFreelancer(&smodel.Freelancer{UserID: freelancerUser.ID})
	require.NoError(t, err)

	outsider := tc.createUser("outsider@test.com", smodel.RoleClient, false)

	body := fmt.Sprintf(`{"freelancer_id":%d,"description":"logo design"}`, freelancer.ID)
	rec := tc.doJSON(http.MethodPost, "/api/negotiations/directhire", body, clientUser, controller.CreateDirectHire)
	requireStatus(t, rec, http.StatusCreated)

	var negotiation smodel.Negotiation
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &negotiation))

	negotiationID := fmt.Sprintf("%d", negotiation.ID)

	// An unrelated user gets a 403 with a detail body.
	rec = tc.doJSON(http.MethodPost, "/api/negotiations/"+negotiationID+"/agree", "",
		outsider, controller.Agree, "id", negotiationID)
	requireStatus(t, rec, http.StatusForbidden)

	var detail map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &detail))
	assert.Contains(t, detail, "detail")

	// The freelancer's agreement closes the deal.
	rec = tc.doJSON(http.MethodPost, "/api/negotiations/"+negotiationID+"/agree", "",
		freelancerUser, controller.Agree, "id", negotiationID)
	requireStatus(t, rec, http.StatusOK)

	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &negotiation))
	assert.Equal(t, smodel.NegotiationStatusAgreed, negotiation.Status)

	// Declining after a decline is a 400 conflict.
	rec = tc.doJSON(http.MethodPost, "/api/negotiations/"+negotiationID+"/decline",
		`{"reason":"scope changed"}`, clientUser, controller.Decline, "id", negotiationID)
	requireStatus(t, rec, http.StatusOK)

	rec = tc.doJSON(http.MethodPost, "/api/negotiations/"+negotiationID+"/decline",
		`{"reason":"again"}`, clientUser, controller.Decline, "id", negotiationID)
	requireStatus(t, rec, http.StatusBadRequest)
}

func TestGetNegotiationNotFound(t *testing.T) {
	tc := newTestCase(t)
	controller := NewNegotiationController(tc.negotiationService)

	user := tc.createUser("someone@test.com", smodel.RoleClient, false)

	rec := tc.doJSON(http.MethodGet, "/api/negotiations/999", "", user, controller.GetNegotiation, "id", "999")
	requireStatus(t, rec, http.StatusNotFound)
}
