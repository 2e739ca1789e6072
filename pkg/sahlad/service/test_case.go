package service

import (
	"fmt"
	"strings"
	"testing"

	"github.com/sahla-platform/sahla/pkg/sdb"
	"github.com/sahla-platform/sahla/pkg/sdb/smodel"
	"github.com/sahla-platform/sahla/pkg/sdb/stor"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type testCase struct {
	*testing.T
	stors *stor.Stors
	db    *gorm.DB

	clientUser     *smodel.User
	client         *smodel.Client
	freelancerUser *smodel.User
	freelancer     *smodel.Freelancer
	staffUser      *smodel.User
	otherUser      *smodel.User

	negotiationService *NegotiationService
	projectService     *ProjectService
	phaseService       *PhaseService
	commentService     *CommentService
}

func newTestCase(t *testing.T) *testCase {
	// Each test gets its own named in-memory database so unique indexes
	// don't collide across tests sharing the process.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoErrorf(t, err, "gorm.Open failed: %s", err)

	sqlitedb, err := db.DB()
	require.NoError(t, err)
	sqlitedb.SetMaxOpenConns(1)

	err = sdb.RunMigrations(db)
	require.NoErrorf(t, err, "Migration failed with: %s", err)

	tc := &testCase{
		T:  t,
		db: db,
	}

	tc.populateDatabase()

	tc.negotiationService = NewNegotiationService(tc.stors)
	tc.projectService = NewProjectService(tc.stors)
	tc.phaseService = NewPhaseService(tc.stors)
	tc.commentService = NewCommentService(tc.stors)

	return tc
}

func (tc *testCase) populateDatabase() {
	var err error

	tc.stors = stor.NewGormStors(tc.db)

	tc.clientUser, err = tc.stors.UserStor.CreateUser(&smodel.User{
		FirstName: "Amine", LastName: "B", Email: "client@test.com", Role: smodel.RoleClient,
	})
	require.NoErrorf(tc.T, err, "Failed creating client user: %s", err)

	tc.client, err = tc.stors.ClientStor.CreateClient(&smodel.Client{UserID: tc.clientUser.ID})
	require.NoErrorf(tc.T, err, "Failed creating client profile: %s", err)

	tc.freelancerUser, err = tc.stors.UserStor.CreateUser(&smodel.User{
		FirstName: "Sara", LastName: "K", Email: "freelancer@test.com", Role: smodel.RoleFreelancer,
	})
	require.NoErrorf(tc.T, err, "Failed creating freelancer user: %s", err)

	tc.freelancer, err = tc.stors.FreelancerStor.CreateFreelancer(&smodel.Freelancer{UserID: tc.freelancerUser.ID})
	require.NoErrorf(tc.T, err, "Failed creating freelancer profile: %s", err)

	tc.staffUser, err = tc.stors.UserStor.CreateUser(&smodel.User{
		FirstName: "Staff", LastName: "S", Email: "staff@test.com", Role: smodel.RoleAdmin, IsStaff: true,
	})
	require.NoErrorf(tc.T, err, "Failed creating staff user: %s", err)

	tc.otherUser, err = tc.stors.UserStor.CreateUser(&smodel.User{
		FirstName: "Nadir", LastName: "O", Email: "other@test.com", Role: smodel.RoleClient,
	})
	require.NoErrorf(tc.T, err, "Failed creating other user: %s", err)

	_, err = tc.stors.ClientStor.CreateClient(&smodel.Client{UserID: tc.otherUser.ID})
	require.NoErrorf(tc.T, err, "Failed creating other client profile: %s", err)
}

// createNegotiation starts a direct hire from the fixture client to the
// fixture freelancer.
func (tc *testCase) createNegotiation() *smodel.Negotiation {
	negotiation, err := tc.negotiationService.CreateDirectHire(tc.clientUser, CreateDirectHireRequest{
		FreelancerID: tc.freelancer.ID,
		Description:  "Build the thing",
	})
	require.NoErrorf(tc.T, err, "Failed creating negotiation: %s", err)
	return negotiation
}

// createAgreedNegotiation runs the bilateral agreement to completion.
func (tc *testCase) createAgreedNegotiation() *smodel.Negotiation {
	negotiation := tc.createNegotiation()

	negotiation, err := tc.negotiationService.Agree(tc.freelancerUser, negotiation.ID)
	require.NoErrorf(tc.T, err, "Freelancer agree failed: %s", err)
	require.Equal(tc.T, smodel.NegotiationStatusAgreed, negotiation.Status)

	return negotiation
}

// createProject creates a project from a fresh agreed negotiation.
func (tc *testCase) createProject() *smodel.Project {
	negotiation := tc.createAgreedNegotiation()

	project, err := tc.projectService.CreateFromNegotiation(tc.clientUser, CreateProjectRequest{
		NegotiationID: negotiation.ID,
		Title:         "The Thing",
	})
	require.NoErrorf(tc.T, err, "Failed creating project: %s", err)
	return project
}

// createPhase adds a phase to the project.
func (tc *testCase) createPhase(projectID int, title string) *smodel.ProjectPhase {
	phase, err := tc.phaseService.AddPhase(tc.clientUser, projectID, AddProjectPhaseRequest{Title: title})
	require.NoErrorf(tc.T, err, "Failed creating phase %s: %s", title, err)
	return phase
}
