package service

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/sahla-platform/sahla/pkg/sdb/smodel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateProjectRequiresAgreedNegotiation(t *testing.T) {
	tc := newTestCase(t)
	negotiation := tc.createNegotiation()

	_, err := tc.projectService.CreateFromNegotiation(tc.clientUser, CreateProjectRequest{
		NegotiationID: negotiation.ID,
		Title:         "Too early",
	})
	assert.True(t, errors.Is(err, ErrConflict))
}

func TestCreateProjectCompletesNegotiation(t *testing.T) {
	tc := newTestCase(t)
	negotiation := tc.createAgreedNegotiation()

	project, err := tc.projectService.CreateFromNegotiation(tc.clientUser, CreateProjectRequest{
		NegotiationID: negotiation.ID,
		Title:         "Website Redesign",
	})
	require.NoError(t, err)
	assert.Equal(t, "website-redesign", project.Slug)
	assert.Equal(t, smodel.ProjectStatusInProgress, project.Status)

	completed, err := tc.stors.NegotiationStor.GetNegotiationByID(negotiation.ID)
	require.NoError(t, err)
	assert.Equal(t, smodel.NegotiationStatusCompleted, completed.Status)
}

func TestNegotiationGetsAtMostOneProject(t *testing.T) {
	tc := newTestCase(t)
	negotiation := tc.createAgreedNegotiation()

	_, err := tc.projectService.CreateFromNegotiation(tc.clientUser, CreateProjectRequest{
		NegotiationID: negotiation.ID,
		Title:         "First",
	})
	require.NoError(t, err)

	_, err = tc.projectService.CreateFromNegotiation(tc.freelancerUser, CreateProjectRequest{
		NegotiationID: negotiation.ID,
		Title:         "Second",
	})
	assert.True(t, errors.Is(err, ErrConflict))
}

func TestCreateProjectCarriesOverBargainedPhases(t *testing.T) {
	tc := newTestCase(t)
	negotiation := tc.createNegotiation()

	_, err := tc.negotiationService.AddPhase(tc.clientUser, negotiation.ID, PhaseRequest{Title: "Design"})
	require.NoError(t, err)
	_, err = tc.negotiationService.AddPhase(tc.clientUser, negotiation.ID, PhaseRequest{Title: "Build"})
	require.NoError(t, err)

	_, err = tc.negotiationService.Agree(tc.freelancerUser, negotiation.ID)
	require.NoError(t, err)

	project, err := tc.projectService.CreateFromNegotiation(tc.clientUser, CreateProjectRequest{
		NegotiationID: negotiation.ID,
		Title:         "The Thing",
	})
	require.NoError(t, err)

	detail, err := tc.projectService.GetProject(tc.clientUser, project.ID)
	require.NoError(t, err)
	require.Len(t, detail.Phases, 2)
	assert.Equal(t, "Design", detail.Phases[0].Title)
	assert.Equal(t, "Build", detail.Phases[1].Title)
	assert.Equal(t, smodel.PhaseStatusPending, detail.Phases[0].Status)
}

func TestProjectAccessDerivedFromNegotiation(t *testing.T) {
	tc := newTestCase(t)
	project := tc.createProject()

	_, err := tc.projectService.GetProject(tc.otherUser, project.ID)
	assert.True(t, errors.Is(err, ErrForbidden))

	_, err = tc.projectService.GetProject(tc.freelancerUser, project.ID)
	require.NoError(t, err)

	_, err = tc.projectService.GetProject(tc.staffUser, project.ID)
	require.NoError(t, err)
}

func TestGetProjectBySlug(t *testing.T) {
	tc := newTestCase(t)
	project := tc.createProject()

	detail, err := tc.projectService.GetProjectBySlug(tc.clientUser, project.Slug)
	require.NoError(t, err)
	assert.Equal(t, project.ID, detail.Project.ID)

	_, err = tc.projectService.GetProjectBySlug(tc.clientUser, "no-such-project")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestListProjectsForUser(t *testing.T) {
	tc := newTestCase(t)
	project := tc.createProject()

	projects, err := tc.projectService.ListProjectsForUser(tc.clientUser)
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, project.ID, projects[0].ID)

	projects, err = tc.projectService.ListProjectsForUser(tc.freelancerUser)
	require.NoError(t, err)
	assert.Len(t, projects, 1)

	projects, err = tc.projectService.ListProjectsForUser(tc.otherUser)
	require.NoError(t, err)
	assert.Len(t, projects, 0)
}
