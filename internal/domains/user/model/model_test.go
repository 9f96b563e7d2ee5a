package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Sravanvenkat03/library/internal/domains/user/model"
)

func TestMergeProgressUpdatesExistingEntry(t *testing.T) {
	user := model.User{
		ID: 1,
		ReadingProgress: []model.ReadingProgress{
			{BookID: 10, PercentageRead: 20},
			{BookID: 11, PercentageRead: 90},
		},
	}

	user.MergeProgress([]model.ReadingProgress{{BookID: 10, PercentageRead: 55}})

	assert.Len(t, user.ReadingProgress, 2)
	assert.Equal(t, 55, user.ReadingProgress[0].PercentageRead)
	assert.Equal(t, 90, user.ReadingProgress[1].PercentageRead)
}

func TestMergeProgressAppendsNewEntry(t *testing.T) {
	user := model.User{
		ID:              1,
		ReadingProgress: []model.ReadingProgress{{BookID: 10, PercentageRead: 20}},
	}

	user.MergeProgress([]model.ReadingProgress{{BookID: 12, PercentageRead: 5}})

	assert.Len(t, user.ReadingProgress, 2)
	assert.Equal(t, 12, user.ReadingProgress[1].BookID)
}

func TestMergeProgressTwiceKeepsOneEntryPerBook(t *testing.T) {
	user := model.User{ID: 1}

	user.MergeProgress([]model.ReadingProgress{{BookID: 10, PercentageRead: 30}})
	user.MergeProgress([]model.ReadingProgress{{BookID: 10, PercentageRead: 80}})

	assert.Len(t, user.ReadingProgress, 1)
	assert.Equal(t, 80, user.ReadingProgress[0].PercentageRead)
}

func TestCreateUserRequestToEntityDefaults(t *testing.T) {
	user := model.CreateUserRequest{ID: 1, Name: "Ana"}.ToEntity()

	assert.NotNil(t, user.FavoriteBooks)
	assert.NotNil(t, user.ReadingProgress)
	assert.Empty(t, user.FavoriteBooks)
}

func TestTrackProgressRequestValidate(t *testing.T) {
	assert.NoError(t, model.TrackProgressRequest{BookID: 1, PercentageRead: 50}.Validate())
	assert.Error(t, model.TrackProgressRequest{PercentageRead: 50}.Validate())
	assert.Error(t, model.TrackProgressRequest{BookID: 1, PercentageRead: 120}.Validate())
}
