package services_test

import (
	"testing"

	"naukri-api/internal/models"
	"naukri-api/internal/services"
	"naukri-api/internal/transport/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessageService_GatedConversation(t *testing.T) {
	env := newEnv(t)
	candidate := env.register(t, "c@example.com", models.RoleCandidate)
	recruiter := env.register(t, "r@example.com", models.RoleRecruiter)
	job := env.postJob(t, recruiter.ID, "Go Developer", "2026-04-01")
	app := env.apply(t, candidate.ID, job.ID)

	send := func(from, to uuid.UUID, text string) (*models.Message, error) {
		return env.messages.Send(env.ctx, &dto.SendMessageRequest{FromID: from, ToID: to, Text: text})
	}

	_, err := send(candidate.ID, recruiter.ID, "hello")
	assert.ErrorIs(t, err, services.ErrForbidden, "applied only")

	_, err = env.applications.SetStatus(env.ctx, &dto.SetStatusRequest{ID: app.ID, RecruiterID: recruiter.ID, Status: models.ApplicationStatusShortlisted})
	require.NoError(t, err)

	_, err = send(recruiter.ID, candidate.ID, "hello")
	assert.ErrorIs(t, err, services.ErrForbidden, "shortlisted but pending")

	_, err = env.applications.SetApproval(env.ctx, &dto.SetApprovalRequest{ID: app.ID, ActorID: recruiter.ID, Approve: ptrBool(true)})
	require.NoError(t, err)

	first, err := send(recruiter.ID, candidate.ID, "Are you free on Friday?")
	require.NoError(t, err)
	second, err := send(candidate.ID, recruiter.ID, "Yes")
	require.NoError(t, err)

	for _, user := range []uuid.UUID{candidate.ID, recruiter.ID} {
		msgs, err := env.messages.ListForUser(env.ctx, &dto.ListMessagesRequest{UserID: user})
		require.NoError(t, err)
		require.Len(t, msgs, 2)
		assert.Equal(t, first.ID, msgs[0].ID)
		assert.Equal(t, second.ID, msgs[1].ID)
		assert.True(t, msgs[0].Timestamp.Before(msgs[1].Timestamp))
	}

	_, err = env.applications.SetApproval(env.ctx, &dto.SetApprovalRequest{ID: app.ID, ActorID: recruiter.ID, Approve: ptrBool(false)})
	require.NoError(t, err)
	_, err = send(candidate.ID, recruiter.ID, "Still there?")
	assert.ErrorIs(t, err, services.ErrForbidden, "blocked again")
}

func TestMessageService_SendRules(t *testing.T) {
	env := newEnv(t)
	admin := env.register(t, "root@example.com", models.RoleAdmin)
	c1 := env.register(t, "c1@example.com", models.RoleCandidate)
	c2 := env.register(t, "c2@example.com", models.RoleCandidate)

	tests := []struct {
		name          string
		req           *dto.SendMessageRequest
		expectedError error
	}{
		{name: "admin to candidate", req: &dto.SendMessageRequest{FromID: admin.ID, ToID: c1.ID, Text: "Welcome"}},
		{name: "candidate to admin", req: &dto.SendMessageRequest{FromID: c1.ID, ToID: admin.ID, Text: "Thanks"}},
		{name: "candidate to candidate", req: &dto.SendMessageRequest{FromID: c1.ID, ToID: c2.ID, Text: "hi"}, expectedError: services.ErrForbidden},
		{name: "to self", req: &dto.SendMessageRequest{FromID: c1.ID, ToID: c1.ID, Text: "hi"}, expectedError: services.ErrValidation},
		{name: "blank text", req: &dto.SendMessageRequest{FromID: admin.ID, ToID: c1.ID, Text: "  "}, expectedError: services.ErrValidation},
		{name: "unknown receiver", req: &dto.SendMessageRequest{FromID: admin.ID, ToID: uuid.New(), Text: "hi"}, expectedError: services.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, err := env.messages.Send(env.ctx, tt.req)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.req.Text, msg.Text)
		})
	}
}

func TestMessageService_Ungated(t *testing.T) {
	env := newEnv(t, ungated)
	c1 := env.register(t, "c1@example.com", models.RoleCandidate)
	c2 := env.register(t, "c2@example.com", models.RoleCandidate)
	recruiter := env.register(t, "r@example.com", models.RoleRecruiter)

	_, err := env.messages.Send(env.ctx, &dto.SendMessageRequest{FromID: c1.ID, ToID: recruiter.ID, Text: "hi"})
	require.NoError(t, err)
	_, err = env.messages.Send(env.ctx, &dto.SendMessageRequest{FromID: c2.ID, ToID: c1.ID, Text: "hey"})
	require.NoError(t, err)

	withRecruiter, err := env.messages.ListForUser(env.ctx, &dto.ListMessagesRequest{UserID: c1.ID, PeerID: &recruiter.ID})
	require.NoError(t, err)
	require.Len(t, withRecruiter, 1)
	assert.Equal(t, "hi", withRecruiter[0].Text)

	none, err := env.messages.ListForUser(env.ctx, &dto.ListMessagesRequest{UserID: uuid.New()})
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}
