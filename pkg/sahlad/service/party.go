package service

import (
	"github.com/sahla-platform/sahla/pkg/sdb/smodel"
	"github.com/sahla-platform/sahla/pkg/sdb/stor"
)

// isParticipant reports whether the user is one of the two parties in the
// party set.
func isParticipant(user *smodel.User, partySet *stor.PartySet) bool {
	return user.ID == partySet.ClientUserID || user.ID == partySet.FreelancerUserID
}

// canAccess reports whether the user may view or act on something owned by
// the party set: the two parties plus staff.
func canAccess(user *smodel.User, partySet *stor.PartySet) bool {
	return user.IsStaff || isParticipant(user, partySet)
}

// partyOf resolves which side of the negotiation the user is on. Staff are
// not a party; bilateral actions like agreeing are reserved for participants.
func partyOf(user *smodel.User, partySet *stor.PartySet) (stor.Party, bool) {
	switch user.ID {
	case partySet.ClientUserID:
		return stor.PartyClient, true
	case partySet.FreelancerUserID:
		return stor.PartyFreelancer, true
	default:
		return 0, false
	}
}
