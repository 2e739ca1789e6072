package stor

import (
	"sync"
	"testing"

	"github.com/sahla-platform/sahla/pkg/sdb/smodel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestNegotiation(t *testing.T, s *InMemoryNegotiationStor) *smodel.Negotiation {
	negotiation, err := s.CreateNegotiation(&smodel.Negotiation{
		OriginType:   smodel.NegotiationOriginDirectHire,
		ClientID:     1,
		FreelancerID: 1,
	})
	require.NoError(t, err)

	s.SetPartySet(negotiation.ID, PartySet{
		ClientID: 1, FreelancerID: 1, ClientUserID: 10, FreelancerUserID: 20,
	})

	return negotiation
}

func TestInMemoryAgreeTransitions(t *testing.T) {
	s := NewInMemoryNegotiationStor()
	negotiation := newTestNegotiation(t, s)

	updated, err := s.Agree(negotiation.ID, PartyClient)
	require.NoError(t, err)
	assert.Equal(t, smodel.NegotiationStatusInProgress, updated.Status)

	updated, err = s.Agree(negotiation.ID, PartyFreelancer)
	require.NoError(t, err)
	assert.Equal(t, smodel.NegotiationStatusAgreed, updated.Status)
}

// Both parties agree at the same time from many goroutines; the agreed
// transition must happen exactly once and every call must observe a
// consistent row.
func TestInMemoryConcurrentAgreeFiresOnce(t *testing.T) {
	s := NewInMemoryNegotiationStor()
	negotiation := newTestNegotiation(t, s)

	const goroutines = 50

	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		party := PartyClient
		if i%2 == 1 {
			party = PartyFreelancer
		}

		wg.Add(1)
		go func(p Party) {
			defer wg.Done()
			_, err := s.Agree(negotiation.ID, p)
			assert.NoError(t, err)
		}(party)
	}
	wg.Wait()

	final, err := s.GetNegotiationByID(negotiation.ID)
	require.NoError(t, err)
	assert.Equal(t, smodel.NegotiationStatusAgreed, final.Status)
	assert.True(t, final.ClientAgreed)
	assert.True(t, final.FreelancerAgreed)
}

func TestInMemoryDeclineTerminal(t *testing.T) {
	s := NewInMemoryNegotiationStor()
	negotiation := newTestNegotiation(t, s)

	declined, err := s.Decline(negotiation.ID, 10, "no longer needed")
	require.NoError(t, err)
	assert.Equal(t, smodel.NegotiationStatusDeclined, declined.Status)

	_, err = s.Agree(negotiation.ID, PartyFreelancer)
	assert.ErrorIs(t, err, ErrInvalidState)

	_, err = s.Decline(negotiation.ID, 20, "me neither")
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestInMemoryCompleteRequiresAgreed(t *testing.T) {
	s := NewInMemoryNegotiationStor()
	negotiation := newTestNegotiation(t, s)

	_, err := s.Complete(negotiation.ID)
	assert.ErrorIs(t, err, ErrInvalidState)

	_, err = s.Agree(negotiation.ID, PartyClient)
	require.NoError(t, err)
	_, err = s.Agree(negotiation.ID, PartyFreelancer)
	require.NoError(t, err)

	completed, err := s.Complete(negotiation.ID)
	require.NoError(t, err)
	assert.Equal(t, smodel.NegotiationStatusCompleted, completed.Status)

	// Completed negotiations accept no further agreement.
	_, err = s.Agree(negotiation.ID, PartyClient)
	assert.ErrorIs(t, err, ErrInvalidState)
}
