package services

import (
	"testing"

	"github.com/asifnewaz/blogsphere/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLikeCreatesNotification(t *testing.T) {
	env := newTestEnv(t)
	owner := createTestUser(t, env.db, "owner")
	liker := createTestUser(t, env.db, "liker")
	blog := createTestBlog(t, env.db, owner.ID, "first post")

	_, err := env.interactions.AddLike(blog.ID, liker.ID)
	require.NoError(t, err)

	list, err := env.notifications.ListRecent(owner.ID, 10)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, models.NotificationTypeLike, list[0].Type)
	assert.Equal(t, "liker liked your post.", list[0].Message)
	assert.Equal(t, liker.ID, list[0].ActorID)
	require.NotNil(t, list[0].BlogID)
	assert.Equal(t, blog.ID, *list[0].BlogID)
	assert.False(t, list[0].IsRead)
}

func TestSelfActionsProduceNoNotification(t *testing.T) {
	env := newTestEnv(t)
	owner := createTestUser(t, env.db, "owner")
	blog := createTestBlog(t, env.db, owner.ID, "first post")

	_, err := env.interactions.AddLike(blog.ID, owner.ID)
	require.NoError(t, err)
	_, err = env.interactions.AddComment(blog.ID, owner.ID, "my own comment")
	require.NoError(t, err)

	assert.Equal(t, int64(0), countRows(t, env.db, &models.Notification{}, ""))
}

func TestLikeCommitsWhenNotificationWriteFails(t *testing.T) {
	env := newTestEnv(t)
	owner := createTestUser(t, env.db, "owner")
	liker := createTestUser(t, env.db, "liker")
	blog := createTestBlog(t, env.db, owner.ID, "first post")

	// With the notifications table gone the fan-out insert errors; the
	// savepoint must contain the failure so the like still commits.
	require.NoError(t, env.db.Migrator().DropTable(&models.Notification{}))

	_, err := env.interactions.AddLike(blog.ID, liker.ID)
	require.NoError(t, err)

	liked, count, err := env.interactions.LikeStatus(blog.ID, liker.ID)
	require.NoError(t, err)
	assert.True(t, liked)
	assert.Equal(t, int64(1), count)
}

func TestFollowCreatesNotification(t *testing.T) {
	env := newTestEnv(t)
	alice := createTestUser(t, env.db, "alice")
	bob := createTestUser(t, env.db, "bob")

	require.NoError(t, env.follows.Follow(alice.ID, bob.ID))

	list, err := env.notifications.ListRecent(bob.ID, 10)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, models.NotificationTypeFollow, list[0].Type)
	assert.Equal(t, "alice started following you.", list[0].Message)
	assert.Nil(t, list[0].BlogID)
}

func TestListRecentClampsLimit(t *testing.T) {
	env := newTestEnv(t)
	owner := createTestUser(t, env.db, "owner")
	liker := createTestUser(t, env.db, "liker")

	for i := 0; i < 3; i++ {
		blog := createTestBlog(t, env.db, owner.ID, "post")
		_, err := env.interactions.AddLike(blog.ID, liker.ID)
		require.NoError(t, err)
	}

	list, err := env.notifications.ListRecent(owner.ID, 500)
	require.NoError(t, err)
	assert.Len(t, list, 3)

	list, err = env.notifications.ListRecent(owner.ID, 0)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestMarkRead(t *testing.T) {
	env := newTestEnv(t)
	owner := createTestUser(t, env.db, "owner")
	liker := createTestUser(t, env.db, "liker")
	blog := createTestBlog(t, env.db, owner.ID, "first post")

	_, err := env.interactions.AddLike(blog.ID, liker.ID)
	require.NoError(t, err)

	list, err := env.notifications.ListRecent(owner.ID, 10)
	require.NoError(t, err)
	require.Len(t, list, 1)

	count, err := env.notifications.UnreadCount(owner.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	require.NoError(t, env.notifications.MarkRead(owner.ID, list[0].ID))

	count, err = env.notifications.UnreadCount(owner.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestMarkReadRequiresOwnership(t *testing.T) {
	env := newTestEnv(t)
	owner := createTestUser(t, env.db, "owner")
	liker := createTestUser(t, env.db, "liker")
	blog := createTestBlog(t, env.db, owner.ID, "first post")

	_, err := env.interactions.AddLike(blog.ID, liker.ID)
	require.NoError(t, err)

	list, err := env.notifications.ListRecent(owner.ID, 10)
	require.NoError(t, err)
	require.Len(t, list, 1)

	err = env.notifications.MarkRead(liker.ID, list[0].ID)
	assert.Equal(t, KindNotFound, KindOf(err))
}

func TestMarkAllRead(t *testing.T) {
	env := newTestEnv(t)
	owner := createTestUser(t, env.db, "owner")
	liker := createTestUser(t, env.db, "liker")

	for i := 0; i < 2; i++ {
		blog := createTestBlog(t, env.db, owner.ID, "post")
		_, err := env.interactions.AddLike(blog.ID, liker.ID)
		require.NoError(t, err)
	}

	require.NoError(t, env.notifications.MarkAllRead(owner.ID))

	count, err := env.notifications.UnreadCount(owner.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	// Nothing unread left; a second sweep is a no-op.
	require.NoError(t, env.notifications.MarkAllRead(owner.ID))
}
