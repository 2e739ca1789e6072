package stor

import (
	"fmt"
	"strings"
	"testing"

	"github.com/sahla-platform/sahla/pkg/sdb/smodel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newGormTestStors(t *testing.T) *Stors {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoErrorf(t, err, "gorm.Open failed: %s", err)

	sqlitedb, err := db.DB()
	require.NoError(t, err)
	sqlitedb.SetMaxOpenConns(1)

	// Migrate just what these tests touch; the service tests cover the full
	// schema through sdb.RunMigrations.
	err = db.AutoMigrate(
		&smodel.User{}, &smodel.Client{}, &smodel.Freelancer{},
		&smodel.Request{}, &smodel.Negotiation{}, &smodel.NegotiationPhase{},
		&smodel.Project{}, &smodel.ProjectPhase{}, &smodel.Deliverable{},
		&smodel.Review{}, &smodel.CommunityPost{}, &smodel.CommunityComment{},
		&smodel.CommunityLike{},
	)
	require.NoErrorf(t, err, "Migration failed with: %s", err)

	return NewGormStors(db)
}

func createTestParties(t *testing.T, stors *Stors) (*smodel.Client, *smodel.Freelancer) {
	clientUser, err := stors.UserStor.CreateUser(&smodel.User{Email: "client@stor.test", Role: smodel.RoleClient})
	require.NoError(t, err)
	client, err := stors.ClientStor.CreateClient(&smodel.Client{UserID: clientUser.ID})
	require.NoError(t, err)

	freelancerUser, err := stors.UserStor.CreateUser(&smodel.User{Email: "freelancer@stor.test", Role: smodel.RoleFreelancer})
	require.NoError(t, err)
	freelancer, err := stors.FreelancerStor.CreateFreelancer(&smodel.Freelancer{UserID: freelancerUser.ID})
	require.NoError(t, err)

	return client, freelancer
}

func createTestNegotiation(t *testing.T, stors *Stors) *smodel.Negotiation {
	client, freelancer := createTestParties(t, stors)

	negotiation, err := stors.NegotiationStor.CreateNegotiation(&smodel.Negotiation{
		OriginType:   smodel.NegotiationOriginDirectHire,
		ClientID:     client.ID,
		FreelancerID: freelancer.ID,
	})
	require.NoError(t, err)
	return negotiation
}

func TestProjectSlugDeduplication(t *testing.T) {
	stors := newGormTestStors(t)

	n1 := createTestNegotiation(t, stors)
	p1, err := stors.ProjectStor.CreateProject(&smodel.Project{NegotiationID: n1.ID, Title: "Mobile App"})
	require.NoError(t, err)
	assert.Equal(t, "mobile-app", p1.Slug)

	// Same title on a different negotiation gets a suffixed slug.
	n2, err := stors.NegotiationStor.CreateNegotiation(&smodel.Negotiation{
		OriginType:   smodel.NegotiationOriginDirectHire,
		ClientID:     n1.ClientID,
		FreelancerID: n1.FreelancerID,
	})
	require.NoError(t, err)

	p2, err := stors.ProjectStor.CreateProject(&smodel.Project{NegotiationID: n2.ID, Title: "Mobile App"})
	require.NoError(t, err)
	assert.Equal(t, "mobile-app-1", p2.Slug)
}

func TestProjectOnePerNegotiation(t *testing.T) {
	stors := newGormTestStors(t)

	negotiation := createTestNegotiation(t, stors)
	_, err := stors.ProjectStor.CreateProject(&smodel.Project{NegotiationID: negotiation.ID, Title: "First"})
	require.NoError(t, err)

	_, err = stors.ProjectStor.CreateProject(&smodel.Project{NegotiationID: negotiation.ID, Title: "Second"})
	assert.Error(t, err)
}

func TestGormAgreeReadModifyWrite(t *testing.T) {
	stors := newGormTestStors(t)
	negotiation := createTestNegotiation(t, stors)

	updated, err := stors.NegotiationStor.Agree(negotiation.ID, PartyClient)
	require.NoError(t, err)
	assert.True(t, updated.ClientAgreed)
	assert.Equal(t, smodel.NegotiationStatusInProgress, updated.Status)

	updated, err = stors.NegotiationStor.Agree(negotiation.ID, PartyFreelancer)
	require.NoError(t, err)
	assert.Equal(t, smodel.NegotiationStatusAgreed, updated.Status)

	// Terminal states refuse further flags.
	_, err = stors.NegotiationStor.Decline(negotiation.ID, 1, "late decline")
	require.NoError(t, err)
	_, err = stors.NegotiationStor.Agree(negotiation.ID, PartyClient)
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestGetPartySetResolvesBothSides(t *testing.T) {
	stors := newGormTestStors(t)
	negotiation := createTestNegotiation(t, stors)

	partySet, err := stors.NegotiationStor.GetPartySet(negotiation.ID)
	require.NoError(t, err)
	assert.Equal(t, negotiation.ClientID, partySet.ClientID)
	assert.Equal(t, negotiation.FreelancerID, partySet.FreelancerID)
	assert.NotZero(t, partySet.ClientUserID)
	assert.NotZero(t, partySet.FreelancerUserID)
	assert.NotEqual(t, partySet.ClientUserID, partySet.FreelancerUserID)

	_, err = stors.NegotiationStor.GetPartySet(negotiation.ID + 50)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestReviewUniquePerPair(t *testing.T) {
	stors := newGormTestStors(t)
	client, freelancer := createTestParties(t, stors)

	_, err := stors.ReviewStor.CreateReview(&smodel.Review{
		ClientID: client.ID, FreelancerID: freelancer.ID, Rating: 5,
	})
	require.NoError(t, err)

	_, err = stors.ReviewStor.CreateReview(&smodel.Review{
		ClientID: client.ID, FreelancerID: freelancer.ID, Rating: 1,
	})
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestLikeOncePerUser(t *testing.T) {
	stors := newGormTestStors(t)

	user, err := stors.UserStor.CreateUser(&smodel.User{Email: "poster@stor.test"})
	require.NoError(t, err)

	post, err := stors.CommunityStor.CreatePost(&smodel.CommunityPost{OwnerID: user.ID, Description: "hello"})
	require.NoError(t, err)

	_, err = stors.CommunityStor.AddLike(post.ID, user.ID)
	require.NoError(t, err)

	_, err = stors.CommunityStor.AddLike(post.ID, user.ID)
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	require.NoError(t, stors.CommunityStor.RemoveLike(post.ID, user.ID))

	likes, err := stors.CommunityStor.ListLikes(post.ID)
	require.NoError(t, err)
	assert.Len(t, likes, 0)
}
