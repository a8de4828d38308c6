package repositories_test

import (
	"fmt"
	"testing"

	"questify/internal/models"
	"questify/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newTestDB opens a per-test in-memory sqlite database. The shared
// cache keeps all pooled connections on the same database; the test
// name keeps databases of different tests apart.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Quest{}, &models.Task{}))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, userName string) *models.User {
	t.Helper()
	user := &models.User{UserName: userName, PasswordHash: "irrelevant"}
	require.NoError(t, repositories.NewGORMUserRepository(db).Create(user))
	return user
}

func seedQuest(t *testing.T, db *gorm.DB, userID uint, name string) *models.Quest {
	t.Helper()
	quest := &models.Quest{UserID: userID, QuestName: name, QuestDesc: "desc"}
	require.NoError(t, repositories.NewGORMQuestRepository(db).Create(quest))
	return quest
}

func seedTask(t *testing.T, db *gorm.DB, questID, userID uint, name string, completed bool) *models.Task {
	t.Helper()
	task := &models.Task{QuestID: questID, UserID: userID, TaskName: name, TaskDesc: "desc", Completed: completed}
	require.NoError(t, repositories.NewGORMTaskRepository(db).Create(task))
	return task
}

func TestUserRepository_DuplicateUserName(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewGORMUserRepository(db)

	require.NoError(t, repo.Create(&models.User{UserName: "alice", PasswordHash: "h1"}))

	err := repo.Create(&models.User{UserName: "alice", PasswordHash: "h2"})
	assert.ErrorIs(t, err, repositories.ErrDuplicateUserName)

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestQuestRepository_ListByUserAggregatesCounts(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewGORMQuestRepository(db)

	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")

	withTasks := seedQuest(t, db, alice.ID, "with tasks")
	seedTask(t, db, withTasks.ID, alice.ID, "done", true)
	seedTask(t, db, withTasks.ID, alice.ID, "pending", false)
	empty := seedQuest(t, db, alice.ID, "empty")
	seedQuest(t, db, bob.ID, "bob's quest")

	quests, err := repo.ListByUser(alice.ID)
	require.NoError(t, err)
	require.Len(t, quests, 2)

	byID := map[uint]models.QuestSummary{}
	for _, q := range quests {
		byID[q.ID] = q
	}
	assert.EqualValues(t, 2, byID[withTasks.ID].TotalTasks)
	assert.EqualValues(t, 1, byID[withTasks.ID].CompletedTasks)
	assert.EqualValues(t, 0, byID[empty.ID].TotalTasks)
	assert.EqualValues(t, 0, byID[empty.ID].CompletedTasks)
}

func TestQuestRepository_ListByUserEmpty(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewGORMQuestRepository(db)
	alice := seedUser(t, db, "alice")

	quests, err := repo.ListByUser(alice.ID)
	require.NoError(t, err)
	assert.Empty(t, quests)
	assert.NotNil(t, quests)
}

func TestQuestRepository_GetByIDScopedToOwner(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewGORMQuestRepository(db)

	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	quest := seedQuest(t, db, bob.ID, "bob's quest")

	// A quest owned by someone else looks exactly like a missing one.
	_, err := repo.GetByID(alice.ID, quest.ID)
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	_, err = repo.GetByID(alice.ID, quest.ID+1000)
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	got, err := repo.GetByID(bob.ID, quest.ID)
	require.NoError(t, err)
	assert.Equal(t, quest.ID, got.ID)
}

func TestQuestRepository_UpdateIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewGORMQuestRepository(db)

	alice := seedUser(t, db, "alice")
	quest := seedQuest(t, db, alice.ID, "old name")

	fields := map[string]interface{}{"quest_name": "new name", "completed": true}
	require.NoError(t, repo.Update(quest.ID, fields))
	require.NoError(t, repo.Update(quest.ID, fields))

	got, err := repo.GetByID(alice.ID, quest.ID)
	require.NoError(t, err)
	assert.Equal(t, "new name", got.QuestName)
	assert.True(t, got.Completed)
}

func TestQuestRepository_DeleteCascadesTasks(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewGORMQuestRepository(db)

	alice := seedUser(t, db, "alice")
	target := seedQuest(t, db, alice.ID, "target")
	keep1 := seedQuest(t, db, alice.ID, "keep 1")
	keep2 := seedQuest(t, db, alice.ID, "keep 2")
	seedTask(t, db, target.ID, alice.ID, "child", false)
	surviving := seedTask(t, db, keep1.ID, alice.ID, "unrelated", false)

	require.NoError(t, repo.Delete(target.ID))

	_, err := repo.GetByID(alice.ID, target.ID)
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	// Only the target quest disappeared.
	quests, err := repo.ListByUser(alice.ID)
	require.NoError(t, err)
	require.Len(t, quests, 2)
	ids := []uint{quests[0].ID, quests[1].ID}
	assert.ElementsMatch(t, []uint{keep1.ID, keep2.ID}, ids)

	// The target's tasks went with it; unrelated tasks survived.
	var orphans int64
	require.NoError(t, db.Model(&models.Task{}).Where("quest_id = ?", target.ID).Count(&orphans).Error)
	assert.EqualValues(t, 0, orphans)
	_, err = repositories.NewGORMTaskRepository(db).GetByID(surviving.ID)
	assert.NoError(t, err)
}

func TestQuestRepository_DeleteMissing(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewGORMQuestRepository(db)

	err := repo.Delete(12345)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestTaskRepository_UpdateMissing(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewGORMTaskRepository(db)

	err := repo.Update(12345, map[string]interface{}{"completed": true})
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestTaskRepository_ListByQuest(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewGORMTaskRepository(db)

	alice := seedUser(t, db, "alice")
	quest := seedQuest(t, db, alice.ID, "quest")
	other := seedQuest(t, db, alice.ID, "other")
	seedTask(t, db, quest.ID, alice.ID, "one", false)
	seedTask(t, db, quest.ID, alice.ID, "two", true)
	seedTask(t, db, other.ID, alice.ID, "elsewhere", false)

	tasks, err := repo.ListByQuest(quest.ID)
	require.NoError(t, err)
	assert.Len(t, tasks, 2)
}
