package service

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/sahla-platform/sahla/pkg/sdb/smodel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPhaseHappyPath(t *testing.T) {
	tc := newTestCase(t)
	project := tc.createProject()
	phase := tc.createPhase(project.ID, "Design")

	started, err := tc.phaseService.Start(tc.freelancerUser, phase.ID)
	require.NoError(t, err)
	assert.Equal(t, smodel.PhaseStatusInProgress, started.Status)

	submitted, err := tc.phaseService.Submit(tc.freelancerUser, phase.ID, SubmitPhaseRequest{
		Title:       "Mockups",
		TextContent: "See attached mockups",
	})
	require.NoError(t, err)
	assert.Equal(t, smodel.PhaseStatusWaitingClientReview, submitted.Status)

	done, err := tc.phaseService.Approve(tc.clientUser, phase.ID)
	require.NoError(t, err)
	assert.Equal(t, smodel.PhaseStatusDone, done.Status)

	deliverables, err := tc.phaseService.ListDeliverables(tc.clientUser, phase.ID)
	require.NoError(t, err)
	require.Len(t, deliverables, 1)
	assert.Equal(t, "Mockups", deliverables[0].Title)
}

func TestOnlyFreelancerStartsAndSubmits(t *testing.T) {
	tc := newTestCase(t)
	project := tc.createProject()
	phase := tc.createPhase(project.ID, "Design")

	_, err := tc.phaseService.Start(tc.clientUser, phase.ID)
	assert.True(t, errors.Is(err, ErrForbidden))

	_, err = tc.phaseService.Start(tc.freelancerUser, phase.ID)
	require.NoError(t, err)

	_, err = tc.phaseService.Submit(tc.clientUser, phase.ID, SubmitPhaseRequest{})
	assert.True(t, errors.Is(err, ErrForbidden))
}

func TestOnlyClientReviews(t *testing.T) {
	tc := newTestCase(t)
	project := tc.createProject()
	phase := tc.createPhase(project.ID, "Design")

	_, err := tc.phaseService.Start(tc.freelancerUser, phase.ID)
	require.NoError(t, err)
	_, err = tc.phaseService.Submit(tc.freelancerUser, phase.ID, SubmitPhaseRequest{})
	require.NoError(t, err)

	_, err = tc.phaseService.Approve(tc.freelancerUser, phase.ID)
	assert.True(t, errors.Is(err, ErrForbidden))

	_, err = tc.phaseService.Reject(tc.freelancerUser, phase.ID)
	assert.True(t, errors.Is(err, ErrForbidden))
}

func TestApproveOnlyFromWaitingClientReview(t *testing.T) {
	tc := newTestCase(t)
	project := tc.createProject()
	phase := tc.createPhase(project.ID, "Design")

	// pending
	_, err := tc.phaseService.Approve(tc.clientUser, phase.ID)
	assert.True(t, errors.Is(err, ErrConflict))

	_, err = tc.phaseService.Start(tc.freelancerUser, phase.ID)
	require.NoError(t, err)

	// in_progress
	_, err = tc.phaseService.Approve(tc.clientUser, phase.ID)
	assert.True(t, errors.Is(err, ErrConflict))

	_, err = tc.phaseService.Submit(tc.freelancerUser, phase.ID, SubmitPhaseRequest{})
	require.NoError(t, err)

	done, err := tc.phaseService.Approve(tc.clientUser, phase.ID)
	require.NoError(t, err)
	assert.Equal(t, smodel.PhaseStatusDone, done.Status)

	// done, approving again conflicts
	_, err = tc.phaseService.Approve(tc.clientUser, phase.ID)
	assert.True(t, errors.Is(err, ErrConflict))
}

func TestRejectSendsPhaseBackToInProgress(t *testing.T) {
	tc := newTestCase(t)
	project := tc.createProject()
	phase := tc.createPhase(project.ID, "Design")

	_, err := tc.phaseService.Start(tc.freelancerUser, phase.ID)
	require.NoError(t, err)
	_, err = tc.phaseService.Submit(tc.freelancerUser, phase.ID, SubmitPhaseRequest{Title: "v1"})
	require.NoError(t, err)

	rejected, err := tc.phaseService.Reject(tc.clientUser, phase.ID)
	require.NoError(t, err)
	assert.Equal(t, smodel.PhaseStatusInProgress, rejected.Status)

	// Resubmission appends a second deliverable.
	_, err = tc.phaseService.Submit(tc.freelancerUser, phase.ID, SubmitPhaseRequest{Title: "v2"})
	require.NoError(t, err)

	deliverables, err := tc.phaseService.ListDeliverables(tc.freelancerUser, phase.ID)
	require.NoError(t, err)
	require.Len(t, deliverables, 2)
	assert.Equal(t, "v1", deliverables[0].Title)
	assert.Equal(t, "v2", deliverables[1].Title)
}

func TestEmptySubmitRecordsNoDeliverable(t *testing.T) {
	tc := newTestCase(t)
	project := tc.createProject()
	phase := tc.createPhase(project.ID, "Design")

	_, err := tc.phaseService.Start(tc.freelancerUser, phase.ID)
	require.NoError(t, err)

	submitted, err := tc.phaseService.Submit(tc.freelancerUser, phase.ID, SubmitPhaseRequest{})
	require.NoError(t, err)
	assert.Equal(t, smodel.PhaseStatusWaitingClientReview, submitted.Status)

	deliverables, err := tc.phaseService.ListDeliverables(tc.freelancerUser, phase.ID)
	require.NoError(t, err)
	assert.Len(t, deliverables, 0)
}

func TestNextPhaseFollowsCreationOrder(t *testing.T) {
	tc := newTestCase(t)
	project := tc.createProject()
	phase1 := tc.createPhase(project.ID, "Design")
	phase2 := tc.createPhase(project.ID, "Build")
	phase3 := tc.createPhase(project.ID, "Ship")

	next, err := tc.phaseService.Next(tc.clientUser, phase1.ID)
	require.NoError(t, err)
	assert.Equal(t, phase2.ID, next.ID)

	next, err = tc.phaseService.Next(tc.clientUser, phase2.ID)
	require.NoError(t, err)
	assert.Equal(t, phase3.ID, next.ID)

	// The last phase has no successor.
	_, err = tc.phaseService.Next(tc.clientUser, phase3.ID)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestNextPhaseSkipsSoftDeleted(t *testing.T) {
	tc := newTestCase(t)
	project := tc.createProject()
	phase1 := tc.createPhase(project.ID, "Design")
	phase2 := tc.createPhase(project.ID, "Build")
	phase3 := tc.createPhase(project.ID, "Ship")

	err := tc.phaseService.SoftDeletePhase(tc.clientUser, phase2.ID)
	require.NoError(t, err)

	next, err := tc.phaseService.Next(tc.clientUser, phase1.ID)
	require.NoError(t, err)
	assert.Equal(t, phase3.ID, next.ID)
}

func TestSoftDeletedPhaseExcludedButStored(t *testing.T) {
	tc := newTestCase(t)
	project := tc.createProject()
	phase1 := tc.createPhase(project.ID, "Design")
	phase2 := tc.createPhase(project.ID, "Build")

	err := tc.phaseService.SoftDeletePhase(tc.clientUser, phase1.ID)
	require.NoError(t, err)

	phases, err := tc.phaseService.ListPhases(tc.clientUser, project.ID)
	require.NoError(t, err)
	require.Len(t, phases, 1)
	assert.Equal(t, phase2.ID, phases[0].ID)

	// The tombstoned row is still in storage.
	stored, err := tc.stors.ProjectPhaseStor.GetPhaseByID(phase1.ID)
	require.NoError(t, err)
	assert.Equal(t, smodel.PhaseStatusDeleted, stored.Status)

	// But the phase surface treats it as gone.
	_, err = tc.phaseService.Start(tc.freelancerUser, phase1.ID)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestUnrelatedUserGets403OnPhaseSurface(t *testing.T) {
	tc := newTestCase(t)
	project := tc.createProject()
	phase := tc.createPhase(project.ID, "Design")

	_, err := tc.phaseService.Start(tc.otherUser, phase.ID)
	assert.True(t, errors.Is(err, ErrForbidden))

	_, err = tc.phaseService.Next(tc.otherUser, phase.ID)
	assert.True(t, errors.Is(err, ErrForbidden))

	_, err = tc.phaseService.ListPhases(tc.otherUser, project.ID)
	assert.True(t, errors.Is(err, ErrForbidden))

	err = tc.phaseService.SoftDeletePhase(tc.otherUser, phase.ID)
	assert.True(t, errors.Is(err, ErrForbidden))
}

func TestStaffCanDriveEveryTransition(t *testing.T) {
	tc := newTestCase(t)
	project := tc.createProject()
	phase := tc.createPhase(project.ID, "Design")

	started, err := tc.phaseService.Start(tc.staffUser, phase.ID)
	require.NoError(t, err)
	assert.Equal(t, smodel.PhaseStatusInProgress, started.Status)

	_, err = tc.phaseService.Submit(tc.staffUser, phase.ID, SubmitPhaseRequest{Title: "v1"})
	require.NoError(t, err)

	rejected, err := tc.phaseService.Reject(tc.staffUser, phase.ID)
	require.NoError(t, err)
	assert.Equal(t, smodel.PhaseStatusInProgress, rejected.Status)

	_, err = tc.phaseService.Submit(tc.staffUser, phase.ID, SubmitPhaseRequest{Title: "v2"})
	require.NoError(t, err)

	done, err := tc.phaseService.Approve(tc.staffUser, phase.ID)
	require.NoError(t, err)
	assert.Equal(t, smodel.PhaseStatusDone, done.Status)
}

func TestNextStartsTheSuccessor(t *testing.T) {
	tc := newTestCase(t)
	project := tc.createProject()
	phase1 := tc.createPhase(project.ID, "Design")
	phase2 := tc.createPhase(project.ID, "Build")

	// Advancing is a client decision, not the freelancer's.
	_, err := tc.phaseService.Next(tc.freelancerUser, phase1.ID)
	assert.True(t, errors.Is(err, ErrForbidden))

	next, err := tc.phaseService.Next(tc.clientUser, phase1.ID)
	require.NoError(t, err)
	assert.Equal(t, phase2.ID, next.ID)
	assert.Equal(t, smodel.PhaseStatusInProgress, next.Status)

	// The transition is persisted, not just reported.
	stored, err := tc.stors.ProjectPhaseStor.GetPhaseByID(phase2.ID)
	require.NoError(t, err)
	assert.Equal(t, smodel.PhaseStatusInProgress, stored.Status)

	// Staff may advance as well.
	phase3 := tc.createPhase(project.ID, "Ship")
	next, err = tc.phaseService.Next(tc.staffUser, phase2.ID)
	require.NoError(t, err)
	assert.Equal(t, phase3.ID, next.ID)
	assert.Equal(t, smodel.PhaseStatusInProgress, next.Status)
}
