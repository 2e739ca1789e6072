package service

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/sahla-platform/sahla/pkg/sdb/smodel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateDirectHireSetsInitiatorAgreement(t *testing.T) {
	tc := newTestCase(t)

	negotiation := tc.createNegotiation()

	assert.Equal(t, smodel.NegotiationOriginDirectHire, negotiation.OriginType)
	assert.Equal(t, smodel.NegotiationStatusInProgress, negotiation.Status)
	assert.True(t, negotiation.ClientAgreed)
	assert.False(t, negotiation.FreelancerAgreed)
}

func TestOnlyClientsCanDirectHire(t *testing.T) {
	tc := newTestCase(t)

	_, err := tc.negotiationService.CreateDirectHire(tc.freelancerUser, CreateDirectHireRequest{
		FreelancerID: tc.freelancer.ID,
	})
	assert.True(t, errors.Is(err, ErrForbidden))
}

func TestAgreedRequiresBothFlags(t *testing.T) {
	tc := newTestCase(t)
	negotiation := tc.createNegotiation()

	// Client already agreed on creation; the status must not move until the
	// freelancer does too.
	negotiation, err := tc.negotiationService.Agree(tc.clientUser, negotiation.ID)
	require.NoError(t, err)
	assert.Equal(t, smodel.NegotiationStatusInProgress, negotiation.Status)

	negotiation, err = tc.negotiationService.Agree(tc.freelancerUser, negotiation.ID)
	require.NoError(t, err)
	assert.Equal(t, smodel.NegotiationStatusAgreed, negotiation.Status)
	assert.True(t, negotiation.ClientAgreed)
	assert.True(t, negotiation.FreelancerAgreed)
}

func TestAgreeIsIdempotentPerParty(t *testing.T) {
	tc := newTestCase(t)
	negotiation := tc.createNegotiation()

	for i := 0; i < 3; i++ {
		updated, err := tc.negotiationService.Agree(tc.clientUser, negotiation.ID)
		require.NoError(t, err)
		assert.True(t, updated.ClientAgreed)
		assert.Equal(t, smodel.NegotiationStatusInProgress, updated.Status)
	}
}

func TestUnrelatedUserCannotAgree(t *testing.T) {
	tc := newTestCase(t)
	negotiation := tc.createNegotiation()

	_, err := tc.negotiationService.Agree(tc.otherUser, negotiation.ID)
	assert.True(t, errors.Is(err, ErrForbidden))

	// Staff aren't a party either.
	_, err = tc.negotiationService.Agree(tc.staffUser, negotiation.ID)
	assert.True(t, errors.Is(err, ErrForbidden))
}

func TestDeclineIsTerminalAndRecorded(t *testing.T) {
	tc := newTestCase(t)
	negotiation := tc.createNegotiation()

	declined, err := tc.negotiationService.Decline(tc.freelancerUser, negotiation.ID, "rate too low")
	require.NoError(t, err)
	assert.Equal(t, smodel.NegotiationStatusDeclined, declined.Status)
	require.NotNil(t, declined.DeclinedByID)
	assert.Equal(t, tc.freelancerUser.ID, *declined.DeclinedByID)
	assert.Equal(t, "rate too low", declined.DeclineReason)

	// No coming back from declined.
	_, err = tc.negotiationService.Agree(tc.clientUser, negotiation.ID)
	assert.True(t, errors.Is(err, ErrConflict))

	_, err = tc.negotiationService.Decline(tc.clientUser, negotiation.ID, "changed my mind")
	assert.True(t, errors.Is(err, ErrConflict))
}

func TestDeclineRestrictedToParticipantsAndStaff(t *testing.T) {
	tc := newTestCase(t)

	negotiation := tc.createNegotiation()
	_, err := tc.negotiationService.Decline(tc.otherUser, negotiation.ID, "not mine")
	assert.True(t, errors.Is(err, ErrForbidden))

	// Staff can decline on the platform's behalf.
	negotiation = tc.createNegotiation()
	declined, err := tc.negotiationService.Decline(tc.staffUser, negotiation.ID, "terms violation")
	require.NoError(t, err)
	assert.Equal(t, smodel.NegotiationStatusDeclined, declined.Status)
}

func TestGetNegotiationGuarded(t *testing.T) {
	tc := newTestCase(t)
	negotiation := tc.createNegotiation()

	_, err := tc.negotiationService.GetNegotiation(tc.otherUser, negotiation.ID)
	assert.True(t, errors.Is(err, ErrForbidden))

	detail, err := tc.negotiationService.GetNegotiation(tc.freelancerUser, negotiation.ID)
	require.NoError(t, err)
	assert.Equal(t, negotiation.ID, detail.Negotiation.ID)

	_, err = tc.negotiationService.GetNegotiation(tc.clientUser, negotiation.ID+100)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestNegotiationPhases(t *testing.T) {
	tc := newTestCase(t)
	negotiation := tc.createNegotiation()

	phase1, err := tc.negotiationService.AddPhase(tc.clientUser, negotiation.ID, PhaseRequest{Title: "Design"})
	require.NoError(t, err)
	assert.Equal(t, smodel.NegotiationPhaseStatusPending, phase1.Status)

	_, err = tc.negotiationService.AddPhase(tc.freelancerUser, negotiation.ID, PhaseRequest{Title: "Build"})
	require.NoError(t, err)

	_, err = tc.negotiationService.AddPhase(tc.otherUser, negotiation.ID, PhaseRequest{Title: "Sneaky"})
	assert.True(t, errors.Is(err, ErrForbidden))

	_, err = tc.negotiationService.AddPhase(tc.clientUser, negotiation.ID, PhaseRequest{})
	assert.True(t, errors.Is(err, ErrValidation))

	detail, err := tc.negotiationService.GetNegotiation(tc.clientUser, negotiation.ID)
	require.NoError(t, err)
	require.Len(t, detail.Phases, 2)
	assert.Equal(t, "Design", detail.Phases[0].Title)
	assert.Equal(t, "Build", detail.Phases[1].Title)

	err = tc.negotiationService.DeletePhase(tc.clientUser, phase1.ID)
	require.NoError(t, err)

	detail, err = tc.negotiationService.GetNegotiation(tc.clientUser, negotiation.ID)
	require.NoError(t, err)
	require.Len(t, detail.Phases, 1)
}

func TestDeclinedNegotiationRefusesNewPhases(t *testing.T) {
	tc := newTestCase(t)
	negotiation := tc.createNegotiation()

	_, err := tc.negotiationService.Decline(tc.clientUser, negotiation.ID, "nevermind")
	require.NoError(t, err)

	_, err = tc.negotiationService.AddPhase(tc.clientUser, negotiation.ID, PhaseRequest{Title: "Too late"})
	assert.True(t, errors.Is(err, ErrConflict))
}

func TestAgreementNotifiesBothParties(t *testing.T) {
	tc := newTestCase(t)
	tc.createAgreedNegotiation()

	clientNotifications, err := tc.stors.NotificationStor.ListNotificationsForUser(tc.clientUser.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, clientNotifications)

	freelancerNotifications, err := tc.stors.NotificationStor.ListNotificationsForUser(tc.freelancerUser.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, freelancerNotifications)
}

func (tc *testCase) createRequest() *smodel.Request {
	request, err := tc.stors.RequestStor.CreateRequest(&smodel.Request{
		ClientID: tc.client.ID,
		Title:    "Landing page",
	})
	require.NoErrorf(tc.T, err, "Failed creating request: %s", err)
	return request
}

func TestCreateFromRequestStartsUnagreedNegotiation(t *testing.T) {
	tc := newTestCase(t)
	request := tc.createRequest()

	negotiation, err := tc.negotiationService.CreateFromRequest(tc.clientUser, CreateFromRequestRequest{
		RequestID:    request.ID,
		FreelancerID: tc.freelancer.ID,
	})
	require.NoError(t, err)

	assert.Equal(t, smodel.NegotiationOriginRequest, negotiation.OriginType)
	require.NotNil(t, negotiation.RequestID)
	assert.Equal(t, request.ID, *negotiation.RequestID)
	assert.Equal(t, tc.client.ID, negotiation.ClientID)
	assert.Equal(t, tc.freelancer.ID, negotiation.FreelancerID)
	assert.Equal(t, smodel.NegotiationStatusInProgress, negotiation.Status)

	// Neither side has agreed yet; the bilateral protocol starts from zero.
	assert.False(t, negotiation.ClientAgreed)
	assert.False(t, negotiation.FreelancerAgreed)

	negotiation, err = tc.negotiationService.Agree(tc.clientUser, negotiation.ID)
	require.NoError(t, err)
	assert.Equal(t, smodel.NegotiationStatusInProgress, negotiation.Status)

	negotiation, err = tc.negotiationService.Agree(tc.freelancerUser, negotiation.ID)
	require.NoError(t, err)
	assert.Equal(t, smodel.NegotiationStatusAgreed, negotiation.Status)
}

func TestCreateFromRequestRestrictedToRequestClientOrStaff(t *testing.T) {
	tc := newTestCase(t)
	request := tc.createRequest()

	req := CreateFromRequestRequest{RequestID: request.ID, FreelancerID: tc.freelancer.ID}

	_, err := tc.negotiationService.CreateFromRequest(tc.freelancerUser, req)
	assert.True(t, errors.Is(err, ErrForbidden))

	_, err = tc.negotiationService.CreateFromRequest(tc.otherUser, req)
	assert.True(t, errors.Is(err, ErrForbidden))

	negotiation, err := tc.negotiationService.CreateFromRequest(tc.staffUser, req)
	require.NoError(t, err)
	assert.Equal(t, tc.client.ID, negotiation.ClientID)
}

func TestCreateFromRequestValidatesRequestAndFreelancer(t *testing.T) {
	tc := newTestCase(t)
	request := tc.createRequest()

	_, err := tc.negotiationService.CreateFromRequest(tc.clientUser, CreateFromRequestRequest{
		RequestID:    request.ID + 100,
		FreelancerID: tc.freelancer.ID,
	})
	assert.True(t, errors.Is(err, ErrNotFound))

	_, err = tc.negotiationService.CreateFromRequest(tc.clientUser, CreateFromRequestRequest{
		RequestID:    request.ID,
		FreelancerID: tc.freelancer.ID + 100,
	})
	assert.True(t, errors.Is(err, ErrNotFound))

	require.NoError(t, tc.stors.RequestStor.CancelRequest(request.ID))

	_, err = tc.negotiationService.CreateFromRequest(tc.clientUser, CreateFromRequestRequest{
		RequestID:    request.ID,
		FreelancerID: tc.freelancer.ID,
	})
	assert.True(t, errors.Is(err, ErrConflict))
}
